package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudyGroup(t *testing.T) {
	group, err := NewStudyGroup("Algorithms", "Weekly problem solving")
	require.NoError(t, err)
	assert.Equal(t, "Algorithms", group.Name)
	assert.Equal(t, "Weekly problem solving", group.Description)
	assert.Empty(t, group.MemberIDs)

	_, err = NewStudyGroup("", "no name")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStudyGroupAddMember(t *testing.T) {
	group, err := NewStudyGroup("Algorithms", "")
	require.NoError(t, err)

	assert.True(t, group.AddMember(2))
	assert.True(t, group.AddMember(1))
	assert.False(t, group.AddMember(2), "re-adding a member should be refused")

	// Insertion order is kept
	assert.Equal(t, []int{2, 1}, group.MemberIDs)
	assert.True(t, group.HasMember(1))
	assert.False(t, group.HasMember(3))
}
