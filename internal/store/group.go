package store

import (
	"context"

	"github.com/phrazzld/study-coordinator/internal/domain"
)

// GroupStore defines the interface for study group persistence.
type GroupStore interface {
	// Add appends a study group to the collection.
	Add(group *domain.StudyGroup)

	// All returns the groups in insertion order, sharing elements with the store.
	All() []*domain.StudyGroup

	// FindByName retrieves the first group with exactly the given name.
	// Returns ErrGroupNotFound if no group matches.
	FindByName(name string) (*domain.StudyGroup, error)

	// Load replaces the collection with the persisted one.
	Load(ctx context.Context) LoadResult

	// Save overwrites the persisted collection with the in-memory one.
	Save(ctx context.Context) error
}
