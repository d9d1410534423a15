package filestore

import "errors"

// ErrNotFound is returned by Open when no file exists under the given name.
var ErrNotFound = errors.New("file not found")

// Store holds uploaded image binaries under server-generated names. The
// bytes are written once at upload and never mutated; Delete exists only for
// the upload cleanup-on-failure path.
type Store interface {
	Save(name string, data []byte) error
	Open(name string) ([]byte, error)
	Delete(name string) error
}
