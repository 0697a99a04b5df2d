package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/study-coordinator/internal/domain"
	"github.com/phrazzld/study-coordinator/internal/events"
	"github.com/phrazzld/study-coordinator/internal/store"
)

// ResourceInput carries the fields of a new resource.
type ResourceInput struct {
	Title       string
	Description string
	Link        string
}

// ResourceUpdate carries the resource fields to change. Nil fields are kept.
type ResourceUpdate struct {
	Title       *string
	Description *string
	Link        *string
}

// ResourceService shares study resources with the actor's group.
// Every operation fails with ErrNoGroup if the actor has no group.
type ResourceService interface {
	AddResource(ctx context.Context, actor *domain.User, in ResourceInput) (*domain.Resource, error)
	ListResources(ctx context.Context, actor *domain.User) ([]*domain.Resource, error)
	// FindResource matches the title case-insensitively within the actor's group.
	FindResource(ctx context.Context, actor *domain.User, title string) (*domain.Resource, error)
	EditResource(ctx context.Context, actor *domain.User, title string, upd ResourceUpdate) (*domain.Resource, error)
}

type resourceService struct {
	resources store.ResourceStore
	events    events.EventEmitter
	logger    *slog.Logger
}

// NewResourceService creates a new ResourceService
func NewResourceService(resources store.ResourceStore, emitter events.EventEmitter, logger *slog.Logger) ResourceService {
	return &resourceService{
		resources: resources,
		events:    emitter,
		logger:    logger.With("component", "resource_service"),
	}
}

func (s *resourceService) AddResource(ctx context.Context, actor *domain.User, in ResourceInput) (*domain.Resource, error) {
	group, err := groupOf(actor)
	if err != nil {
		return nil, err
	}

	resource, err := domain.NewResource(group, in.Title, in.Description, in.Link)
	if err != nil {
		return nil, fmt.Errorf("failed to share resource: %w", err)
	}

	s.resources.Add(resource)
	persist(ctx, s.logger, s.resources, "resources")

	s.logger.Info("resource shared", "group", group, "title", resource.Title)
	emit(ctx, s.logger, s.events, events.TypeResourceShared, events.GroupItemPayload{
		ItemID:  resource.ID,
		Group:   group,
		Key:     resource.Title,
		ActorID: actor.ID,
	})

	return resource, nil
}

func (s *resourceService) ListResources(ctx context.Context, actor *domain.User) ([]*domain.Resource, error) {
	group, err := groupOf(actor)
	if err != nil {
		return nil, err
	}
	return s.resources.FindByGroup(group), nil
}

func (s *resourceService) FindResource(ctx context.Context, actor *domain.User, title string) (*domain.Resource, error) {
	group, err := groupOf(actor)
	if err != nil {
		return nil, err
	}

	resource, err := s.resources.FindByTitle(group, title)
	if err != nil {
		return nil, fmt.Errorf("failed to find resource %q: %w", title, err)
	}
	return resource, nil
}

func (s *resourceService) EditResource(
	ctx context.Context,
	actor *domain.User,
	title string,
	upd ResourceUpdate,
) (*domain.Resource, error) {
	group, err := groupOf(actor)
	if err != nil {
		return nil, err
	}

	var before string
	resource, err := editByKey(
		func() (*domain.Resource, error) {
			found, err := s.resources.FindByTitle(group, title)
			if err == nil {
				before = found.Title
			}
			return found, err
		},
		func(d *domain.Resource) {
			set(&d.Title, upd.Title)
			set(&d.Description, upd.Description)
			set(&d.Link, upd.Link)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to edit resource %q: %w", title, err)
	}

	persist(ctx, s.logger, s.resources, "resources")

	s.logger.Info("resource edited", "group", group, "title", resource.Title)
	emit(ctx, s.logger, s.events, events.TypeResourceEdited, events.GroupItemPayload{
		ItemID:   resource.ID,
		Group:    group,
		Key:      resource.Title,
		Previous: previousKey(before, resource.Title),
		ActorID:  actor.ID,
	})

	return resource, nil
}
