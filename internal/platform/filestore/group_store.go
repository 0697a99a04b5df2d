package filestore

import (
	"context"
	"log/slog"

	"github.com/phrazzld/study-coordinator/internal/domain"
	"github.com/phrazzld/study-coordinator/internal/store"
)

// FileGroupStore implements the store.GroupStore interface
// using Studygroups.bin in the data directory as the storage backend.
type FileGroupStore struct {
	c *collection[domain.StudyGroup]
}

// NewFileGroupStore creates a new study group store persisting to dir.
func NewFileGroupStore(dir string, logger *slog.Logger) *FileGroupStore {
	return &FileGroupStore{c: newCollection[domain.StudyGroup](dir, GroupsFile, KindGroups, logger)}
}

// Ensure FileGroupStore implements store.GroupStore interface
var _ store.GroupStore = (*FileGroupStore)(nil)

// Add implements store.GroupStore.Add
func (s *FileGroupStore) Add(group *domain.StudyGroup) {
	s.c.add(group)
}

// All implements store.GroupStore.All
func (s *FileGroupStore) All() []*domain.StudyGroup {
	return s.c.all()
}

// FindByName implements store.GroupStore.FindByName
func (s *FileGroupStore) FindByName(name string) (*domain.StudyGroup, error) {
	group, ok := s.c.first(func(g *domain.StudyGroup) bool { return g.Name == name })
	if !ok {
		return nil, store.ErrGroupNotFound
	}
	return group, nil
}

// Load implements store.GroupStore.Load
func (s *FileGroupStore) Load(ctx context.Context) store.LoadResult {
	return s.c.load(ctx)
}

// Save implements store.GroupStore.Save
func (s *FileGroupStore) Save(ctx context.Context) error {
	return s.c.save(ctx)
}
