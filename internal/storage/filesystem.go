package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileSystemStore keeps uploaded files in one flat directory.
type FileSystemStore struct {
	basePath string
}

// NewFileSystemStore creates a filesystem storage backend rooted at basePath.
func NewFileSystemStore(basePath string) *FileSystemStore {
	return &FileSystemStore{basePath: basePath}
}

// EnsureDir creates the storage directory if it doesn't exist.
func (fs *FileSystemStore) EnsureDir() error {
	if err := os.MkdirAll(fs.basePath, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", fs.basePath, err)
	}
	return nil
}

// Save writes data to <basePath>/<storedName>, overwriting any file already
// at that exact path. Returns the number of bytes written.
func (fs *FileSystemStore) Save(storedName string, data io.Reader) (int64, error) {
	filePath := fs.Path(storedName)

	file, err := os.Create(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	defer file.Close()

	n, err := io.Copy(file, data)
	if err != nil {
		// Clean up partial file on error
		os.Remove(filePath)
		return 0, fmt.Errorf("failed to write file: %w", err)
	}

	return n, nil
}

// Open returns a reader over a stored file and its size on disk.
func (fs *FileSystemStore) Open(storedName string) (io.ReadCloser, int64, error) {
	filePath := fs.Path(storedName)

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, 0, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, 0, err
	}

	return file, info.Size(), nil
}

// Path returns the absolute path of a stored file.
func (fs *FileSystemStore) Path(storedName string) string {
	return filepath.Join(fs.basePath, storedName)
}

// Delete removes the stored file. A file that is already absent is not an
// error.
func (fs *FileSystemStore) Delete(storedName string) error {
	filePath := fs.Path(storedName)
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", filePath, err)
	}
	return nil
}
