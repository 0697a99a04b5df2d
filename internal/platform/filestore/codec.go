package filestore

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/phrazzld/study-coordinator/internal/store"
)

// File names of the persisted collections, relative to the data directory.
const (
	UsersFile       = "users.bin"
	GroupsFile      = "Studygroups.bin"
	SessionsFile    = "Sessions.bin"
	ResourcesFile   = "Resources.bin"
	DiscussionsFile = "Discussions.bin"
)

// Collection kinds recorded in every file so that one collection's file is
// never mistaken for another's.
const (
	KindUsers       = "users"
	KindGroups      = "study_groups"
	KindSessions    = "sessions"
	KindResources   = "resources"
	KindDiscussions = "discussions"
)

// envelope is the single value written to a collection file.
type envelope[T any] struct {
	Kind  string
	Items []T
}

// SaveCollection encodes the whole collection and writes it to path,
// replacing any previous content.
//
// Encoding happens in memory first, so an encoding failure leaves the file
// untouched. The write itself is not atomic: a failure part-way through
// can leave a truncated file behind. If the parent directory does not exist
// the write never starts.
func SaveCollection[T any](path, kind string, items []T) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(envelope[T]{Kind: kind, Items: items}); err != nil {
		return store.NewStoreError(kind, "save", "failed to encode collection", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return store.NewStoreError(
			kind,
			"save",
			"failed to write collection file",
			fmt.Errorf("%w: %v", store.ErrWriteFailed, err),
		)
	}

	return nil
}

// LoadCollection reads and decodes the whole collection stored at path.
//
// Returns an error wrapping store.ErrFileNotFound if the file does not exist
// and store.ErrDecode if its content is not a collection of the expected kind.
func LoadCollection[T any](path, kind string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, store.NewStoreError(kind, "load", "failed to read collection file", MapError(err))
	}

	var env envelope[T]
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&env); err != nil {
		mapped := MapError(err)
		if !IsDecodeError(mapped) {
			mapped = fmt.Errorf("%w: %v", store.ErrDecode, err)
		}
		return nil, store.NewStoreError(kind, "load", "failed to decode collection", mapped)
	}

	if env.Kind != kind {
		return nil, store.NewStoreError(
			kind,
			"load",
			"unexpected collection kind",
			fmt.Errorf("%w: file holds %q", store.ErrDecode, env.Kind),
		)
	}

	return env.Items, nil
}
