package store

import (
	"context"

	"github.com/phrazzld/study-coordinator/internal/domain"
)

// DiscussionStore defines the interface for discussion board persistence.
type DiscussionStore interface {
	// Add appends a discussion to the collection.
	Add(discussion *domain.Discussion)

	// All returns every discussion in insertion order, sharing elements with the store.
	All() []*domain.Discussion

	// FindByGroup returns the discussions of the named group in insertion
	// order, each with its comments.
	FindByGroup(groupName string) []*domain.Discussion

	// FindByTopic returns the first discussion of the group whose topic
	// matches case-insensitively. Returns ErrDiscussionNotFound if none match.
	FindByTopic(groupName, topic string) (*domain.Discussion, error)

	// Load replaces the collection with the persisted one.
	Load(ctx context.Context) LoadResult

	// Save overwrites the persisted collection with the in-memory one.
	Save(ctx context.Context) error
}
