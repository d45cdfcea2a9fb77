package storage

// MemoryStore implements Store with a plain map. Used in tests and
// anywhere persistence is not wanted.
type MemoryStore struct {
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

// Get returns the value stored under key
func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

// Set stores value under key
func (s *MemoryStore) Set(key string, value []byte) error {
	s.values[key] = string(value)
	return nil
}

// Delete removes key from the store
func (s *MemoryStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}
