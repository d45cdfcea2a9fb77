package storage

// Store defines operations over the persisted key-value slots.
// Values are opaque serialized text; the meaning of each key belongs
// to the package that owns it.
type Store interface {
	// Get returns the value stored under key. found is false when the
	// key has never been set.
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}
