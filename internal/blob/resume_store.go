// Package blob stores resume uploads as opaque files addressed by generated
// paths. No format validation happens here: the bytes are whatever the
// candidate uploaded.
package blob

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type ResumeStore struct {
	dir string
}

func NewResumeStore(dir string) (*ResumeStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("resume dir not configured")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create resume dir: %w", err)
	}
	return &ResumeStore{dir: dir}, nil
}

// Save writes the blob under a fresh UUID name, keeping only a sanitized
// extension from the original filename, and returns the storage path.
func (s *ResumeStore) Save(data []byte, originalName string) (string, error) {
	name := uuid.New().String() + safeExt(originalName)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return "", fmt.Errorf("write resume: %w", err)
	}
	return path, nil
}

func (s *ResumeStore) Open(path string) ([]byte, error) {
	if err := s.contains(path); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// Remove discards a stored blob, e.g. when the application row it was saved
// for never commits.
func (s *ResumeStore) Remove(path string) error {
	if err := s.contains(path); err != nil {
		return err
	}
	return os.Remove(path)
}

// contains refuses paths escaping the store directory.
func (s *ResumeStore) contains(path string) error {
	rel, err := filepath.Rel(s.dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("path outside resume store")
	}
	return nil
}

func safeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) > 10 {
		return ""
	}
	for _, r := range ext {
		if r != '.' && (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
