package store

import (
	"context"

	"github.com/phrazzld/study-coordinator/internal/domain"
)

// ResourceStore defines the interface for shared resource persistence.
type ResourceStore interface {
	// Add appends a resource to the collection.
	Add(resource *domain.Resource)

	// All returns every resource in insertion order, sharing elements with the store.
	All() []*domain.Resource

	// FindByGroup returns the resources of the named group in insertion order.
	FindByGroup(groupName string) []*domain.Resource

	// FindByTitle returns the first resource of the group whose title matches
	// case-insensitively. Returns ErrResourceNotFound if none match.
	FindByTitle(groupName, title string) (*domain.Resource, error)

	// Load replaces the collection with the persisted one.
	Load(ctx context.Context) LoadResult

	// Save overwrites the persisted collection with the in-memory one.
	Save(ctx context.Context) error
}
