// Package storage is the file-storage collaborator: raw byte access under the
// CUD base path on the local filesystem.
package storage

import (
	"os"
	"path/filepath"
)

// LocalStorage reads and writes files under a single base directory.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a local storage rooted at basePath.
func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{basePath: basePath}
}

// BasePath returns the storage root.
func (s *LocalStorage) BasePath() string {
	return s.basePath
}

// EnsureDir creates the base directory if it does not exist yet.
func (s *LocalStorage) EnsureDir() error {
	return os.MkdirAll(s.basePath, 0o755)
}

// Write stores data under name in the base directory and returns the full
// path of the written file.
func (s *LocalStorage) Write(name string, data []byte) (string, error) {
	if err := s.EnsureDir(); err != nil {
		return "", err
	}
	path := filepath.Join(s.basePath, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Read returns the full contents of the file at path.
func (s *LocalStorage) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Exists reports whether a regular file exists at path.
func (s *LocalStorage) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
