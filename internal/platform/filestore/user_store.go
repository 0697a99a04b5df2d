package filestore

import (
	"context"
	"log/slog"

	"github.com/phrazzld/study-coordinator/internal/domain"
	"github.com/phrazzld/study-coordinator/internal/store"
)

// FileUserStore implements the store.UserStore interface
// using users.bin in the data directory as the storage backend.
type FileUserStore struct {
	c *collection[domain.User]
}

// NewFileUserStore creates a new user store persisting to dir.
// The store starts empty; call Load to read the persisted users.
func NewFileUserStore(dir string, logger *slog.Logger) *FileUserStore {
	return &FileUserStore{c: newCollection[domain.User](dir, UsersFile, KindUsers, logger)}
}

// Ensure FileUserStore implements store.UserStore interface
var _ store.UserStore = (*FileUserStore)(nil)

// Add implements store.UserStore.Add
func (s *FileUserStore) Add(user *domain.User) {
	s.c.add(user)
}

// All implements store.UserStore.All
func (s *FileUserStore) All() []*domain.User {
	return s.c.all()
}

// FindByID implements store.UserStore.FindByID
func (s *FileUserStore) FindByID(id int) (*domain.User, error) {
	user, ok := s.c.first(func(u *domain.User) bool { return u.ID == id })
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// FindByUsername implements store.UserStore.FindByUsername
func (s *FileUserStore) FindByUsername(username string) (*domain.User, error) {
	user, ok := s.c.first(func(u *domain.User) bool { return u.Username == username })
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// Load implements store.UserStore.Load
func (s *FileUserStore) Load(ctx context.Context) store.LoadResult {
	return s.c.load(ctx)
}

// Save implements store.UserStore.Save
func (s *FileUserStore) Save(ctx context.Context) error {
	return s.c.save(ctx)
}
