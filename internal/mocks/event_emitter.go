package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/study-coordinator/internal/events"
)

// MockEventEmitter is a mock of events.EventEmitter for use with testify/mock
type MockEventEmitter struct {
	mock.Mock
}

var _ events.EventEmitter = (*MockEventEmitter)(nil)

// EmitEvent is a mock implementation of events.EventEmitter.EmitEvent
func (m *MockEventEmitter) EmitEvent(ctx context.Context, event *events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// EventOfType matches an *events.Event argument with the given type.
func EventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(e *events.Event) bool {
		return e != nil && e.Type == eventType
	})
}

// NewAcceptingEventEmitter returns a mock emitter that accepts any event.
func NewAcceptingEventEmitter() *MockEventEmitter {
	m := &MockEventEmitter{}
	m.On("EmitEvent", mock.Anything, mock.Anything).Return(nil)
	return m
}
