// Package events provides types and interfaces for an event-driven architecture.
//
// Services emit an Event after every successful mutation of a collection
// (a user registered, a group created, a session scheduled, ...). Handlers
// registered on the emitter receive the events without the services knowing
// about them; the command-line entry point registers an activity log.
package events
