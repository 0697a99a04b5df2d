package filestore

import (
	"context"
	"log/slog"

	"github.com/phrazzld/study-coordinator/internal/domain"
	"github.com/phrazzld/study-coordinator/internal/store"
)

// FileSessionStore implements the store.SessionStore interface
// using Sessions.bin in the data directory as the storage backend.
type FileSessionStore struct {
	c *collection[domain.Session]
}

// NewFileSessionStore creates a new session store persisting to dir.
func NewFileSessionStore(dir string, logger *slog.Logger) *FileSessionStore {
	return &FileSessionStore{c: newCollection[domain.Session](dir, SessionsFile, KindSessions, logger)}
}

// Ensure FileSessionStore implements store.SessionStore interface
var _ store.SessionStore = (*FileSessionStore)(nil)

// Add implements store.SessionStore.Add
func (s *FileSessionStore) Add(session *domain.Session) {
	s.c.add(session)
}

// All implements store.SessionStore.All
func (s *FileSessionStore) All() []*domain.Session {
	return s.c.all()
}

// FindByGroup implements store.SessionStore.FindByGroup
func (s *FileSessionStore) FindByGroup(groupName string) []*domain.Session {
	return inGroup(s.c, groupName)
}

// FindByTitle implements store.SessionStore.FindByTitle
func (s *FileSessionStore) FindByTitle(groupName, title string) (*domain.Session, error) {
	session, ok := byKey(s.c, groupName, title)
	if !ok {
		return nil, store.ErrSessionNotFound
	}
	return session, nil
}

// Load implements store.SessionStore.Load
func (s *FileSessionStore) Load(ctx context.Context) store.LoadResult {
	return s.c.load(ctx)
}

// Save implements store.SessionStore.Save
func (s *FileSessionStore) Save(ctx context.Context) error {
	return s.c.save(ctx)
}
