package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/study-coordinator/internal/domain"
	"github.com/phrazzld/study-coordinator/internal/events"
	"github.com/phrazzld/study-coordinator/internal/store"
)

// CreateGroupInput carries the fields of a new study group.
type CreateGroupInput struct {
	Name        string
	Description string
	MemberIDs   []int
}

// MemberIssue reports a member id that was skipped during group creation.
// Err is store.ErrUserNotFound or ErrAlreadyAdded.
type MemberIssue struct {
	UserID int
	Err    error
}

// GroupCreation is the outcome of creating a group.
type GroupCreation struct {
	Group   *domain.StudyGroup
	Members []*domain.User
	Issues  []MemberIssue
}

// GroupDetails is a group together with its resolved members.
type GroupDetails struct {
	Group   *domain.StudyGroup
	Members []*domain.User
}

// GroupService binds users to study groups.
type GroupService interface {
	// CreateGroup creates a group and adds the given users to it.
	// Unknown and repeated ids are skipped and reported in the result;
	// they never abort the creation.
	CreateGroup(ctx context.Context, in CreateGroupInput) (*GroupCreation, error)

	// ListGroups returns all groups in creation order.
	ListGroups(ctx context.Context) []*domain.StudyGroup

	// GetGroupDetails returns the named group and its members.
	GetGroupDetails(ctx context.Context, name string) (*GroupDetails, error)
}

type groupService struct {
	groups store.GroupStore
	users  store.UserStore
	events events.EventEmitter
	logger *slog.Logger
}

// NewGroupService creates a new GroupService
func NewGroupService(
	groups store.GroupStore,
	users store.UserStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) GroupService {
	return &groupService{
		groups: groups,
		users:  users,
		events: emitter,
		logger: logger.With("component", "group_service"),
	}
}

// CreateGroup implements GroupService.CreateGroup
func (s *groupService) CreateGroup(ctx context.Context, in CreateGroupInput) (*GroupCreation, error) {
	group, err := domain.NewStudyGroup(in.Name, in.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	if _, err := s.groups.FindByName(in.Name); err == nil {
		s.logger.Debug("attempted to create existing group", "group", in.Name)
		return nil, fmt.Errorf("failed to create group %q: %w", in.Name, store.ErrGroupExists)
	}

	result := &GroupCreation{
		Group:   group,
		Members: []*domain.User{},
		Issues:  []MemberIssue{},
	}

	for _, id := range in.MemberIDs {
		user, err := s.users.FindByID(id)
		if err != nil {
			s.logger.Warn("skipping unknown member", "group", in.Name, "user_id", id)
			result.Issues = append(result.Issues, MemberIssue{UserID: id, Err: store.ErrUserNotFound})
			continue
		}

		if !group.AddMember(id) {
			s.logger.Warn("skipping repeated member", "group", in.Name, "user_id", id)
			result.Issues = append(result.Issues, MemberIssue{UserID: id, Err: ErrAlreadyAdded})
			continue
		}

		if user.HasGroup() {
			s.logger.Info("moving user to new group",
				"user_id", id,
				"previous_group", user.GroupName,
				"group", in.Name)
		}
		user.JoinGroup(group.Name)
		result.Members = append(result.Members, user)
	}

	if len(result.Members) > 0 {
		persist(ctx, s.logger, s.users, "users")
	}

	s.groups.Add(group)
	persist(ctx, s.logger, s.groups, "study_groups")

	s.logger.Info("study group created",
		"group", group.Name,
		"members", len(result.Members),
		"skipped", len(result.Issues))
	emit(ctx, s.logger, s.events, events.TypeGroupCreated, events.GroupPayload{
		Name:      group.Name,
		MemberIDs: group.MemberIDs,
		Skipped:   len(result.Issues),
	})

	return result, nil
}

// ListGroups implements GroupService.ListGroups
func (s *groupService) ListGroups(ctx context.Context) []*domain.StudyGroup {
	return s.groups.All()
}

// GetGroupDetails implements GroupService.GetGroupDetails
func (s *groupService) GetGroupDetails(ctx context.Context, name string) (*GroupDetails, error) {
	group, err := s.groups.FindByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to find group %q: %w", name, err)
	}

	members := make([]*domain.User, 0, len(group.MemberIDs))
	for _, id := range group.MemberIDs {
		user, err := s.users.FindByID(id)
		if err != nil {
			s.logger.Warn("group member not found", "group", name, "user_id", id)
			continue
		}
		members = append(members, user)
	}

	return &GroupDetails{Group: group, Members: members}, nil
}
