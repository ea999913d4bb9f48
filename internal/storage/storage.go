// Package storage persists uploaded file bytes on the local filesystem.
package storage

import "io"

// Store defines the interface for file storage backends, so services can be
// tested against a temporary directory instead of the real upload root.
type Store interface {
	// EnsureDir creates the storage root if it is missing.
	EnsureDir() error
	// Save writes data under storedName and returns the number of bytes written.
	Save(storedName string, data io.Reader) (int64, error)
	// Open returns a reader over a stored file together with its size.
	Open(storedName string) (io.ReadCloser, int64, error)
	// Path returns the absolute path a stored file lives at.
	Path(storedName string) string
	// Delete removes a stored file, tolerating files that are already gone.
	Delete(storedName string) error
}
