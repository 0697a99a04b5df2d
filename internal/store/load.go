package store

import "fmt"

// LoadStatus describes how a collection came to be in memory after Load.
type LoadStatus int

const (
	// LoadStatusLoaded means the persisted collection was read successfully.
	LoadStatusLoaded LoadStatus = iota
	// LoadStatusMissing means no persisted collection existed; the store is empty.
	LoadStatusMissing
	// LoadStatusCorrupt means the persisted bytes could not be decoded; the store is empty.
	LoadStatusCorrupt
)

// String returns the string representation of the load status.
func (s LoadStatus) String() string {
	switch s {
	case LoadStatusLoaded:
		return "loaded"
	case LoadStatusMissing:
		return "missing"
	case LoadStatusCorrupt:
		return "corrupt"
	default:
		return fmt.Sprintf("LoadStatus(%d)", int(s))
	}
}

// LoadResult reports the outcome of loading one collection.
//
// Loading never fails: a missing or undecodable file leaves the store with an
// empty collection and is reported here instead of being returned as an
// error. Err holds the underlying cause for the missing and corrupt cases.
type LoadResult struct {
	Collection string
	Path       string
	Status     LoadStatus
	Count      int
	Err        error
}

// Fallback reports whether the store fell back to an empty collection.
func (r LoadResult) Fallback() bool {
	return r.Status != LoadStatusLoaded
}
