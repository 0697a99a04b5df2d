package store

import (
	"context"

	"github.com/phrazzld/study-coordinator/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Add appends a user to the collection.
	// Uniqueness of ID and username is the caller's responsibility.
	Add(user *domain.User)

	// All returns the users in insertion order.
	// The returned slice shares its elements with the store: modifying a
	// user through it modifies the stored user. Appending to the slice does
	// not add users to the store.
	All() []*domain.User

	// FindByID retrieves a user by numeric ID.
	// Returns ErrUserNotFound if the user does not exist.
	FindByID(id int) (*domain.User, error)

	// FindByUsername retrieves a user by exact, case-sensitive username.
	// Returns ErrUserNotFound if the user does not exist.
	FindByUsername(username string) (*domain.User, error)

	// Load replaces the collection with the persisted one.
	// A missing or corrupt file yields an empty collection; see LoadResult.
	Load(ctx context.Context) LoadResult

	// Save overwrites the persisted collection with the in-memory one.
	Save(ctx context.Context) error
}
