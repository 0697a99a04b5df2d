package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/study-coordinator/internal/domain"
	"github.com/phrazzld/study-coordinator/internal/events"
)

type saver interface {
	Save(ctx context.Context) error
}

// persist saves a collection after a mutation. Saving is best effort: a
// failure is logged and the in-memory change stands.
func persist(ctx context.Context, log *slog.Logger, s saver, collection string) {
	if err := s.Save(ctx); err != nil {
		log.Error("failed to persist collection, keeping in-memory state",
			"collection", collection,
			"error", err)
	}
}

// emit publishes an event. Failures never undo the operation that caused it.
func emit(ctx context.Context, log *slog.Logger, emitter events.EventEmitter, eventType string, payload any) {
	if emitter == nil {
		return
	}

	event, err := events.NewEvent(eventType, payload)
	if err != nil {
		log.Error("failed to build event", "event_type", eventType, "error", err)
		return
	}

	if err := emitter.EmitEvent(ctx, event); err != nil {
		log.Warn("event handler failed", "event_type", eventType, "error", err)
	}
}

// groupOf returns the name of the actor's group, or ErrNoGroup.
func groupOf(actor *domain.User) (string, error) {
	if actor == nil || !actor.HasGroup() {
		return "", ErrNoGroup
	}
	return actor.GroupName, nil
}
