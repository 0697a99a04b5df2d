package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrUserNotFound, ErrSessionNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same username).
	ErrDuplicate = errors.New("entity already exists")

	// ErrDecode is returned when a persisted collection exists but its bytes
	// are not a valid encoding of the expected collection.
	ErrDecode = errors.New("invalid data format")

	// ErrWriteFailed is returned when a collection could not be written.
	ErrWriteFailed = errors.New("write failed")

	// ErrFileNotFound indicates that the file backing a collection does not exist.
	ErrFileNotFound = fmt.Errorf("%w: file", ErrNotFound)

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrGroupNotFound indicates that the requested study group does not exist in the store.
	ErrGroupNotFound = fmt.Errorf("%w: study group", ErrNotFound)

	// ErrSessionNotFound indicates that no session with the given title exists in the group.
	ErrSessionNotFound = fmt.Errorf("%w: session", ErrNotFound)

	// ErrResourceNotFound indicates that no resource with the given title exists in the group.
	ErrResourceNotFound = fmt.Errorf("%w: resource", ErrNotFound)

	// ErrDiscussionNotFound indicates that no discussion with the given topic exists in the group.
	ErrDiscussionNotFound = fmt.Errorf("%w: discussion", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrDuplicateID indicates that a user with the given numeric ID already exists.
	ErrDuplicateID = fmt.Errorf("%w: user id", ErrDuplicate)

	// ErrDuplicateUsername indicates that a user with the given username already exists.
	ErrDuplicateUsername = fmt.Errorf("%w: username", ErrDuplicate)

	// ErrGroupExists indicates that a study group with the given name already exists.
	ErrGroupExists = fmt.Errorf("%w: study group", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// All entity-specific not found errors wrap ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
// All entity-specific duplicate errors wrap ErrDuplicate.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "user", "session")
	Operation string // The operation that failed (e.g., "load", "save")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
