package filestore

import (
	"context"
	"log/slog"

	"github.com/phrazzld/study-coordinator/internal/domain"
	"github.com/phrazzld/study-coordinator/internal/store"
)

// FileDiscussionStore implements the store.DiscussionStore interface
// using Discussions.bin in the data directory as the storage backend.
type FileDiscussionStore struct {
	c *collection[domain.Discussion]
}

// NewFileDiscussionStore creates a new discussion store persisting to dir.
func NewFileDiscussionStore(dir string, logger *slog.Logger) *FileDiscussionStore {
	return &FileDiscussionStore{c: newCollection[domain.Discussion](dir, DiscussionsFile, KindDiscussions, logger)}
}

// Ensure FileDiscussionStore implements store.DiscussionStore interface
var _ store.DiscussionStore = (*FileDiscussionStore)(nil)

// Add implements store.DiscussionStore.Add
func (s *FileDiscussionStore) Add(discussion *domain.Discussion) {
	s.c.add(discussion)
}

// All implements store.DiscussionStore.All
func (s *FileDiscussionStore) All() []*domain.Discussion {
	return s.c.all()
}

// FindByGroup implements store.DiscussionStore.FindByGroup
func (s *FileDiscussionStore) FindByGroup(groupName string) []*domain.Discussion {
	return inGroup(s.c, groupName)
}

// FindByTopic implements store.DiscussionStore.FindByTopic
func (s *FileDiscussionStore) FindByTopic(groupName, topic string) (*domain.Discussion, error) {
	discussion, ok := byKey(s.c, groupName, topic)
	if !ok {
		return nil, store.ErrDiscussionNotFound
	}
	return discussion, nil
}

// Load implements store.DiscussionStore.Load
func (s *FileDiscussionStore) Load(ctx context.Context) store.LoadResult {
	return s.c.load(ctx)
}

// Save implements store.DiscussionStore.Save
func (s *FileDiscussionStore) Save(ctx context.Context) error {
	return s.c.save(ctx)
}
