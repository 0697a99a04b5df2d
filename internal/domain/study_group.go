package domain

import "slices"

// StudyGroup represents a named group of users that share sessions,
// resources and discussions.
//
// The group name is the key used by every group-scoped lookup. Members are
// held as user IDs in the order they were added and resolved through the
// user store when displayed.
type StudyGroup struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	MemberIDs   []int  `json:"member_ids"`
}

// NewStudyGroup creates a new StudyGroup with no members.
// Returns an error if validation fails.
func NewStudyGroup(name, description string) (*StudyGroup, error) {
	group := &StudyGroup{
		Name:        name,
		Description: description,
		MemberIDs:   []int{},
	}

	if err := group.Validate(); err != nil {
		return nil, err
	}

	return group, nil
}

// Validate checks if the StudyGroup has valid data.
func (g *StudyGroup) Validate() error {
	return validateStruct(g)
}

// AddMember appends the user ID to the member list.
// It returns false, leaving the list untouched, if the ID is already a member.
func (g *StudyGroup) AddMember(userID int) bool {
	if g.HasMember(userID) {
		return false
	}
	g.MemberIDs = append(g.MemberIDs, userID)
	return true
}

// HasMember reports whether the user ID is in the member list.
func (g *StudyGroup) HasMember(userID int) bool {
	return slices.Contains(g.MemberIDs, userID)
}
