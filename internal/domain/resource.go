package domain

import (
	"time"

	"github.com/google/uuid"
)

// Resource represents a link shared with a study group.
type Resource struct {
	ID          uuid.UUID `json:"id"         validate:"required"`
	Title       string    `json:"title"      validate:"required"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	GroupName   string    `json:"group_name" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewResource creates a new Resource for the named group.
// Returns an error if validation fails.
func NewResource(groupName, title, description, link string) (*Resource, error) {
	resource := &Resource{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Link:        link,
		GroupName:   groupName,
		CreatedAt:   time.Now().UTC(),
	}

	if err := resource.Validate(); err != nil {
		return nil, err
	}

	return resource, nil
}

// Validate checks if the Resource has valid data.
func (r *Resource) Validate() error {
	return validateStruct(r)
}

// Key returns the value the resource is looked up by within its group.
func (r *Resource) Key() string {
	return r.Title
}

// Group returns the name of the group the resource belongs to.
func (r *Resource) Group() string {
	return r.GroupName
}
