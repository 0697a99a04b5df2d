package filestore

import (
	"context"
	"log/slog"

	"github.com/phrazzld/study-coordinator/internal/domain"
	"github.com/phrazzld/study-coordinator/internal/store"
)

// FileResourceStore implements the store.ResourceStore interface
// using Resources.bin in the data directory as the storage backend.
type FileResourceStore struct {
	c *collection[domain.Resource]
}

// NewFileResourceStore creates a new resource store persisting to dir.
func NewFileResourceStore(dir string, logger *slog.Logger) *FileResourceStore {
	return &FileResourceStore{c: newCollection[domain.Resource](dir, ResourcesFile, KindResources, logger)}
}

// Ensure FileResourceStore implements store.ResourceStore interface
var _ store.ResourceStore = (*FileResourceStore)(nil)

// Add implements store.ResourceStore.Add
func (s *FileResourceStore) Add(resource *domain.Resource) {
	s.c.add(resource)
}

// All implements store.ResourceStore.All
func (s *FileResourceStore) All() []*domain.Resource {
	return s.c.all()
}

// FindByGroup implements store.ResourceStore.FindByGroup
func (s *FileResourceStore) FindByGroup(groupName string) []*domain.Resource {
	return inGroup(s.c, groupName)
}

// FindByTitle implements store.ResourceStore.FindByTitle
func (s *FileResourceStore) FindByTitle(groupName, title string) (*domain.Resource, error) {
	resource, ok := byKey(s.c, groupName, title)
	if !ok {
		return nil, store.ErrResourceNotFound
	}
	return resource, nil
}

// Load implements store.ResourceStore.Load
func (s *FileResourceStore) Load(ctx context.Context) store.LoadResult {
	return s.c.load(ctx)
}

// Save implements store.ResourceStore.Save
func (s *FileResourceStore) Save(ctx context.Context) error {
	return s.c.save(ctx)
}
