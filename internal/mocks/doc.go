// Package mocks provides centralized mock implementations for testing.
//
// Stores and emitters are mocked with testify/mock so that tests can assert
// which calls were made; the auth interfaces use function fields with simple
// defaults.
//
//	emitter := mocks.NewAcceptingEventEmitter()
//	svc := service.NewGroupService(groups, users, emitter, logger)
//	...
//	emitter.AssertCalled(t, "EmitEvent", mock.Anything, mocks.EventOfType(events.TypeGroupCreated))
package mocks
