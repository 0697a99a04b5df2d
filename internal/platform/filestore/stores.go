package filestore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/study-coordinator/internal/platform/logger"
	"github.com/phrazzld/study-coordinator/internal/store"
)

// Stores bundles the five collection stores sharing one data directory.
// It is built once at startup and handed to the services.
type Stores struct {
	Dir         string
	Users       *FileUserStore
	Groups      *FileGroupStore
	Sessions    *FileSessionStore
	Resources   *FileResourceStore
	Discussions *FileDiscussionStore

	logger *slog.Logger
}

// Open prepares the stores over dataDir, creating the directory if needed.
// The stores start empty; call LoadAll to read the persisted collections.
func Open(dataDir string, log *slog.Logger) (*Stores, error) {
	if log == nil {
		log = slog.Default()
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}

	return &Stores{
		Dir:         dataDir,
		Users:       NewFileUserStore(dataDir, log),
		Groups:      NewFileGroupStore(dataDir, log),
		Sessions:    NewFileSessionStore(dataDir, log),
		Resources:   NewFileResourceStore(dataDir, log),
		Discussions: NewFileDiscussionStore(dataDir, log),
		logger:      log.With(slog.String("component", "filestore")),
	}, nil
}

// LoadAll loads every collection and returns one result per collection, in
// the order users, groups, sessions, resources, discussions. References
// between collections that no longer resolve are logged but kept.
func (s *Stores) LoadAll(ctx context.Context) []store.LoadResult {
	results := []store.LoadResult{
		s.Users.Load(ctx),
		s.Groups.Load(ctx),
		s.Sessions.Load(ctx),
		s.Resources.Load(ctx),
		s.Discussions.Load(ctx),
	}

	s.checkReferences(ctx)

	return results
}

// SaveAll writes every collection, continuing past failures.
// The returned error joins all individual save errors.
func (s *Stores) SaveAll(ctx context.Context) error {
	return errors.Join(
		s.Users.Save(ctx),
		s.Groups.Save(ctx),
		s.Sessions.Save(ctx),
		s.Resources.Save(ctx),
		s.Discussions.Save(ctx),
	)
}

func (s *Stores) checkReferences(ctx context.Context) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for _, user := range s.Users.All() {
		if !user.HasGroup() {
			continue
		}
		if _, err := s.Groups.FindByName(user.GroupName); err != nil {
			log.Warn("user references unknown study group",
				slog.Int("user_id", user.ID),
				slog.String("group", user.GroupName))
		}
	}

	for _, group := range s.Groups.All() {
		for _, id := range group.MemberIDs {
			if _, err := s.Users.FindByID(id); err != nil {
				log.Warn("study group references unknown user",
					slog.String("group", group.Name),
					slog.Int("user_id", id))
			}
		}
	}
}
