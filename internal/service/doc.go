// Package service contains the coordinator's use cases: registering and
// authenticating users, binding users to study groups, and managing the
// sessions, resources and discussions of a group.
//
// Services depend on the store interfaces only. Every mutation is persisted
// immediately by saving the whole affected collection; a failed save is
// logged and does not fail the operation. Successful mutations are also
// published as events.
//
// Group-scoped services take the acting user and operate on that user's
// group. An actor that belongs to no group gets ErrNoGroup.
package service
