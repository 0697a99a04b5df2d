package filestore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/phrazzld/study-coordinator/internal/store"
)

// MapError maps a file system or decoding error to the matching store error.
// It wraps the original error to preserve context for debugging.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	// Already mapped
	if errors.Is(err, store.ErrFileNotFound) || errors.Is(err, store.ErrDecode) {
		return err
	}

	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", store.ErrFileNotFound, err)
	}

	// An empty or cut-off file surfaces as EOF from the decoder
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated data: %v", store.ErrDecode, err)
	}

	return err
}

// IsFileNotFound reports whether the error means the collection file does not exist.
func IsFileNotFound(err error) bool {
	return errors.Is(err, store.ErrFileNotFound)
}

// IsDecodeError reports whether the error means the collection file holds invalid data.
func IsDecodeError(err error) bool {
	return errors.Is(err, store.ErrDecode)
}
