package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a scheduled study meeting of one group.
// Date is free text entered by the user and is not interpreted.
type Session struct {
	ID          uuid.UUID `json:"id"         validate:"required"`
	Title       string    `json:"title"      validate:"required"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	GroupName   string    `json:"group_name" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewSession creates a new Session for the named group.
// It generates a new UUID and sets the creation timestamp.
// Returns an error if validation fails.
func NewSession(groupName, title, date, description string) (*Session, error) {
	session := &Session{
		ID:          uuid.New(),
		Title:       title,
		Date:        date,
		Description: description,
		GroupName:   groupName,
		CreatedAt:   time.Now().UTC(),
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

// Validate checks if the Session has valid data.
func (s *Session) Validate() error {
	return validateStruct(s)
}

// Key returns the value the session is looked up by within its group.
func (s *Session) Key() string {
	return s.Title
}

// Group returns the name of the group the session belongs to.
func (s *Session) Group() string {
	return s.GroupName
}
