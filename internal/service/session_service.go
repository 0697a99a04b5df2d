package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/study-coordinator/internal/domain"
	"github.com/phrazzld/study-coordinator/internal/events"
	"github.com/phrazzld/study-coordinator/internal/store"
)

// SessionInput carries the fields of a new session.
type SessionInput struct {
	Title       string
	Date        string
	Description string
}

// SessionUpdate carries the session fields to change. Nil fields are kept.
type SessionUpdate struct {
	Title       *string
	Date        *string
	Description *string
}

// SessionService schedules study sessions for the actor's group.
// Every operation fails with ErrNoGroup if the actor has no group.
type SessionService interface {
	AddSession(ctx context.Context, actor *domain.User, in SessionInput) (*domain.Session, error)
	ListSessions(ctx context.Context, actor *domain.User) ([]*domain.Session, error)
	// FindSession matches the title case-insensitively within the actor's group.
	FindSession(ctx context.Context, actor *domain.User, title string) (*domain.Session, error)
	EditSession(ctx context.Context, actor *domain.User, title string, upd SessionUpdate) (*domain.Session, error)
}

type sessionService struct {
	sessions store.SessionStore
	events   events.EventEmitter
	logger   *slog.Logger
}

// NewSessionService creates a new SessionService
func NewSessionService(sessions store.SessionStore, emitter events.EventEmitter, logger *slog.Logger) SessionService {
	return &sessionService{
		sessions: sessions,
		events:   emitter,
		logger:   logger.With("component", "session_service"),
	}
}

func (s *sessionService) AddSession(ctx context.Context, actor *domain.User, in SessionInput) (*domain.Session, error) {
	group, err := groupOf(actor)
	if err != nil {
		return nil, err
	}

	session, err := domain.NewSession(group, in.Title, in.Date, in.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule session: %w", err)
	}

	s.sessions.Add(session)
	persist(ctx, s.logger, s.sessions, "sessions")

	s.logger.Info("session scheduled", "group", group, "title", session.Title)
	emit(ctx, s.logger, s.events, events.TypeSessionScheduled, events.GroupItemPayload{
		ItemID:  session.ID,
		Group:   group,
		Key:     session.Title,
		ActorID: actor.ID,
	})

	return session, nil
}

func (s *sessionService) ListSessions(ctx context.Context, actor *domain.User) ([]*domain.Session, error) {
	group, err := groupOf(actor)
	if err != nil {
		return nil, err
	}
	return s.sessions.FindByGroup(group), nil
}

func (s *sessionService) FindSession(ctx context.Context, actor *domain.User, title string) (*domain.Session, error) {
	group, err := groupOf(actor)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.FindByTitle(group, title)
	if err != nil {
		return nil, fmt.Errorf("failed to find session %q: %w", title, err)
	}
	return session, nil
}

func (s *sessionService) EditSession(
	ctx context.Context,
	actor *domain.User,
	title string,
	upd SessionUpdate,
) (*domain.Session, error) {
	group, err := groupOf(actor)
	if err != nil {
		return nil, err
	}

	var before string
	session, err := editByKey(
		func() (*domain.Session, error) {
			found, err := s.sessions.FindByTitle(group, title)
			if err == nil {
				before = found.Title
			}
			return found, err
		},
		func(d *domain.Session) {
			set(&d.Title, upd.Title)
			set(&d.Date, upd.Date)
			set(&d.Description, upd.Description)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to edit session %q: %w", title, err)
	}

	persist(ctx, s.logger, s.sessions, "sessions")

	s.logger.Info("session edited", "group", group, "title", session.Title)
	emit(ctx, s.logger, s.events, events.TypeSessionEdited, events.GroupItemPayload{
		ItemID:   session.ID,
		Group:    group,
		Key:      session.Title,
		Previous: previousKey(before, session.Title),
		ActorID:  actor.ID,
	})

	return session, nil
}
