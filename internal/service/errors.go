package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is; store errors such as
// store.ErrUserNotFound or store.ErrDuplicateID pass through wrapped.
var (
	// ErrAuthFailed indicates that the username is unknown or the password
	// does not match. The two cases are deliberately indistinguishable.
	ErrAuthFailed = errors.New("invalid username or password")

	// ErrNoGroup indicates that the acting user has not been added to a
	// study group and so cannot use group-scoped operations.
	ErrNoGroup = errors.New("you don't have a group")

	// ErrAlreadyAdded indicates that a user id was given more than once
	// when creating a group.
	ErrAlreadyAdded = errors.New("user already added to the group")
)

// ServiceError wraps an unexpected failure with the service and operation
// it happened in.
type ServiceError struct {
	Service string
	Op      string
	Err     error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s service %s operation failed", e.Service, e.Op)
	}
	return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Op, e.Err)
}

// Unwrap returns the wrapped error.
func (e *ServiceError) Unwrap() error {
	return e.Err
}
