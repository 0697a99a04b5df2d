package store

import (
	"context"

	"github.com/phrazzld/study-coordinator/internal/domain"
)

// SessionStore defines the interface for session persistence.
type SessionStore interface {
	// Add appends a session to the collection. Titles are not required to be
	// unique within a group.
	Add(session *domain.Session)

	// All returns every session in insertion order, sharing elements with the store.
	All() []*domain.Session

	// FindByGroup returns the sessions whose group name equals groupName
	// exactly, in insertion order. Returns an empty slice if none match.
	FindByGroup(groupName string) []*domain.Session

	// FindByTitle returns the first session of the group whose title matches
	// case-insensitively. Returns ErrSessionNotFound if none match.
	FindByTitle(groupName, title string) (*domain.Session, error)

	// Load replaces the collection with the persisted one.
	Load(ctx context.Context) LoadResult

	// Save overwrites the persisted collection with the in-memory one.
	Save(ctx context.Context) error
}
