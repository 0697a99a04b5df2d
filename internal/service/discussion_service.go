package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/study-coordinator/internal/domain"
	"github.com/phrazzld/study-coordinator/internal/events"
	"github.com/phrazzld/study-coordinator/internal/store"
)

// DiscussionService runs the discussion board of the actor's group.
// Every operation fails with ErrNoGroup if the actor has no group, and
// topics are matched case-insensitively within that group.
type DiscussionService interface {
	AddDiscussion(ctx context.Context, actor *domain.User, topic string) (*domain.Discussion, error)
	ListDiscussions(ctx context.Context, actor *domain.User) ([]*domain.Discussion, error)
	FindDiscussion(ctx context.Context, actor *domain.User, topic string) (*domain.Discussion, error)
	AddComment(ctx context.Context, actor *domain.User, topic, comment string) (*domain.Discussion, error)
	EditDiscussionTopic(ctx context.Context, actor *domain.User, topic, newTopic string) (*domain.Discussion, error)
}

type discussionService struct {
	discussions store.DiscussionStore
	events      events.EventEmitter
	logger      *slog.Logger
}

// NewDiscussionService creates a new DiscussionService
func NewDiscussionService(
	discussions store.DiscussionStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) DiscussionService {
	return &discussionService{
		discussions: discussions,
		events:      emitter,
		logger:      logger.With("component", "discussion_service"),
	}
}

func (s *discussionService) AddDiscussion(
	ctx context.Context,
	actor *domain.User,
	topic string,
) (*domain.Discussion, error) {
	group, err := groupOf(actor)
	if err != nil {
		return nil, err
	}

	discussion, err := domain.NewDiscussion(group, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to create discussion: %w", err)
	}

	s.discussions.Add(discussion)
	persist(ctx, s.logger, s.discussions, "discussions")

	s.logger.Info("discussion created", "group", group, "topic", discussion.Topic)
	s.emit(ctx, events.TypeDiscussionCreated, actor, discussion, "")

	return discussion, nil
}

func (s *discussionService) ListDiscussions(ctx context.Context, actor *domain.User) ([]*domain.Discussion, error) {
	group, err := groupOf(actor)
	if err != nil {
		return nil, err
	}
	return s.discussions.FindByGroup(group), nil
}

func (s *discussionService) FindDiscussion(
	ctx context.Context,
	actor *domain.User,
	topic string,
) (*domain.Discussion, error) {
	group, err := groupOf(actor)
	if err != nil {
		return nil, err
	}

	discussion, err := s.discussions.FindByTopic(group, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to find discussion %q: %w", topic, err)
	}
	return discussion, nil
}

func (s *discussionService) AddComment(
	ctx context.Context,
	actor *domain.User,
	topic, comment string,
) (*domain.Discussion, error) {
	discussion, err := s.FindDiscussion(ctx, actor, topic)
	if err != nil {
		return nil, err
	}

	if err := discussion.AddComment(actor, comment); err != nil {
		return nil, fmt.Errorf("failed to comment on %q: %w", topic, err)
	}

	persist(ctx, s.logger, s.discussions, "discussions")

	s.logger.Info("comment added",
		"group", discussion.GroupName,
		"topic", discussion.Topic,
		"author_id", actor.ID,
		"comments", len(discussion.Comments))
	s.emit(ctx, events.TypeDiscussionCommented, actor, discussion, "")

	return discussion, nil
}

func (s *discussionService) EditDiscussionTopic(
	ctx context.Context,
	actor *domain.User,
	topic, newTopic string,
) (*domain.Discussion, error) {
	group, err := groupOf(actor)
	if err != nil {
		return nil, err
	}

	var before string
	discussion, err := editByKey(
		func() (*domain.Discussion, error) {
			found, err := s.discussions.FindByTopic(group, topic)
			if err == nil {
				before = found.Topic
			}
			return found, err
		},
		func(d *domain.Discussion) { d.Topic = newTopic },
	)
	if err != nil {
		return nil, fmt.Errorf("failed to rename discussion %q: %w", topic, err)
	}

	persist(ctx, s.logger, s.discussions, "discussions")

	s.logger.Info("discussion renamed", "group", group, "from", topic, "to", discussion.Topic)
	s.emit(ctx, events.TypeDiscussionRenamed, actor, discussion, previousKey(before, discussion.Topic))

	return discussion, nil
}

func (s *discussionService) emit(
	ctx context.Context,
	eventType string,
	actor *domain.User,
	d *domain.Discussion,
	previous string,
) {
	emit(ctx, s.logger, s.events, eventType, events.GroupItemPayload{
		ItemID:   d.ID,
		Group:    d.GroupName,
		Key:      d.Topic,
		Previous: previous,
		ActorID:  actor.ID,
	})
}
