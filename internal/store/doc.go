// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying storage mechanism from the
// application's core logic. Every store owns one in-memory collection of a
// single entity kind and persists it as a whole: Load replaces the collection
// with the persisted one, Save overwrites the persisted one with the
// collection.
package store
