// Package domain contains the core entities of the study coordinator: users,
// study groups and the sessions, resources and discussions that belong to a
// group. It is independent of how the entities are persisted or presented.
package domain
