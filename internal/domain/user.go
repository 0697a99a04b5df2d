package domain

import (
	"fmt"
)

// Common validation errors
var (
	ErrEmptyPassword = fmt.Errorf("%w: password cannot be empty", ErrValidation)
)

// User represents a registered member of the coordinator.
//
// GroupName is the back-reference to the study group the user belongs to.
// It holds the group's key rather than the group itself; the group is
// resolved through the group store when needed. An empty GroupName means the
// user has not been added to any group yet.
type User struct {
	ID             int    `json:"id"       validate:"gt=0"`
	Username       string `json:"username" validate:"required"`
	Password       string `json:"-"` // Plaintext password, used temporarily during registration/updates
	HashedPassword string `json:"-"` // Never expose password hash in output
	Name           string `json:"name"`
	Surname        string `json:"surname"`
	GroupName      string `json:"group_name,omitempty"`
}

// NewUser creates a new User with the given identity and credentials.
// Returns an error if validation fails.
//
// NOTE: This function only sets up the user structure with the plaintext password.
// The caller is responsible for hashing the password before storing the user.
func NewUser(id int, username, password, name, surname string) (*User, error) {
	user := &User{
		ID:       id,
		Username: username,
		Password: password, // Plaintext password - must be hashed before storage
		Name:     name,
		Surname:  surname,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error wrapping ErrValidation if any field fails validation.
// IDs must be positive: session tokens carry the id and zero is "unset".
func (u *User) Validate() error {
	if u.ID <= 0 {
		return fmt.Errorf("%w: %w", ErrValidation, ErrInvalidID)
	}

	if err := validateStruct(u); err != nil {
		return err
	}

	// A stored user carries only the hash, a user being registered only the
	// plaintext; one of the two must be present.
	if u.Password == "" && u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// HasGroup reports whether the user has been added to a study group.
func (u *User) HasGroup() bool {
	return u.GroupName != ""
}

// JoinGroup points the user's back-reference at the named group.
// A later group creation that includes the user again moves the reference.
func (u *User) JoinGroup(groupName string) {
	u.GroupName = groupName
}

// FullName returns the user's name and surname separated by a space.
func (u *User) FullName() string {
	switch {
	case u.Name == "":
		return u.Surname
	case u.Surname == "":
		return u.Name
	default:
		return u.Name + " " + u.Surname
	}
}
