package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the services.
const (
	TypeUserRegistered      = "user.registered"
	TypeGroupCreated        = "group.created"
	TypeSessionScheduled    = "session.scheduled"
	TypeSessionEdited       = "session.edited"
	TypeResourceShared      = "resource.shared"
	TypeResourceEdited      = "resource.edited"
	TypeDiscussionCreated   = "discussion.created"
	TypeDiscussionCommented = "discussion.commented"
	TypeDiscussionRenamed   = "discussion.renamed"
)

// Event records something that happened to the coordinator's collections.
type Event struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the Type* constants
	Type string `json:"type"`

	// Payload contains the event-specific data serialized as JSON
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *Event) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewEvent creates a new Event with the specified type and payload.
func NewEvent(eventType string, payload interface{}) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// UserPayload is the payload of user events.
type UserPayload struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}

// GroupPayload is the payload of group.created.
type GroupPayload struct {
	Name      string `json:"name"`
	MemberIDs []int  `json:"member_ids"`
	Skipped   int    `json:"skipped"`
}

// GroupItemPayload is the payload of session, resource and discussion events.
// Key is the title or topic the item is looked up by; Previous is set when
// an edit changed it.
type GroupItemPayload struct {
	ItemID   uuid.UUID `json:"item_id"`
	Group    string    `json:"group"`
	Key      string    `json:"key"`
	Previous string    `json:"previous,omitempty"`
	ActorID  int       `json:"actor_id"`
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *Event) error
}

// HandlerFunc adapts an ordinary function to the EventHandler interface.
type HandlerFunc func(ctx context.Context, event *Event) error

// HandleEvent calls f(ctx, event).
func (f HandlerFunc) HandleEvent(ctx context.Context, event *Event) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *Event) error
}
