package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore implements Store with a single JSON object file holding
// every key. Each write rewrites the whole file synchronously; two
// processes writing the same file are last write wins.
type FileStore struct {
	path string
}

// NewFileStore creates a file store at the given path, creating the
// parent directory if needed. The file itself is created on first Set.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create store directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Path returns the location of the store file
func (s *FileStore) Path() string {
	return s.path
}

// Get returns the value stored under key
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	values, err := s.read()
	if err != nil {
		return nil, false, err
	}
	value, ok := values[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

// Set stores value under key. An unreadable existing file is treated as
// an empty store and overwritten, so a corrupt file heals on the next write.
func (s *FileStore) Set(key string, value []byte) error {
	values, err := s.read()
	if err != nil {
		values = map[string]string{}
	}
	values[key] = string(value)
	return s.write(values)
}

// Delete removes key from the store
func (s *FileStore) Delete(key string) error {
	values, err := s.read()
	if err != nil {
		values = map[string]string{}
	}
	delete(values, key)
	return s.write(values)
}

// Close releases nothing; the store holds no open handles between operations.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read store file: %w", err)
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("corrupt store file %s: %w", s.path, err)
	}
	return values, nil
}

func (s *FileStore) write(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("cannot serialize store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write store file: %w", err)
	}
	return nil
}
