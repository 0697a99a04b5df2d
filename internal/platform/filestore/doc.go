// Package filestore provides flat-file implementations of the storage
// interfaces defined in the internal/store package.
//
// Each collection lives in one file under the data directory and is always
// written and read as a whole, encoded with encoding/gob. There is no
// append mode, no partial read and no locking: two processes sharing a data
// directory overwrite each other's writes.
package filestore
