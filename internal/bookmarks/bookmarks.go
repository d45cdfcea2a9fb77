package bookmarks

import (
	"encoding/json"
	"fmt"

	"github.com/dastanaron/quizcards/internal/models"
	"github.com/dastanaron/quizcards/internal/storage"

	"go.uber.org/zap"
)

// StoreKey is the storage slot holding the serialized bookmark collection
const StoreKey = "bookmarks"

// Service maintains the bookmark collection: an ordered sequence of card
// snapshots, unique by id, persisted as one serialized value.
type Service struct {
	store  storage.Store
	logger *zap.Logger
}

// NewService creates a bookmark service over the given store
func NewService(store storage.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// Load reads the persisted collection. A missing or unreadable value
// degrades to an empty collection; parse errors are logged, never returned.
func (s *Service) Load() []models.Snapshot {
	value, found, err := s.store.Get(StoreKey)
	if err != nil {
		s.logger.Warn("cannot read bookmark store, starting empty", zap.Error(err))
		return nil
	}
	if !found {
		return nil
	}

	var snapshots []models.Snapshot
	if err := json.Unmarshal(value, &snapshots); err != nil {
		s.logger.Warn("corrupt bookmark collection, starting empty",
			zap.String("key", StoreKey), zap.Error(err))
		return nil
	}
	return dedupe(snapshots, s.logger)
}

// Save serializes and overwrites the persisted collection
func (s *Service) Save(snapshots []models.Snapshot) error {
	value, err := json.Marshal(snapshots)
	if err != nil {
		return fmt.Errorf("cannot serialize bookmarks: %w", err)
	}
	if err := s.store.Set(StoreKey, value); err != nil {
		return fmt.Errorf("cannot persist bookmarks: %w", err)
	}
	return nil
}

// Toggle adds a normalized snapshot of card to the collection if its id is
// absent and removes the matching entry if present. The updated collection
// is persisted and returned; on a persistence error the updated collection
// is still returned so the views stay consistent with each other.
func (s *Service) Toggle(card models.Card) ([]models.Snapshot, error) {
	snapshots := s.Load()

	updated := make([]models.Snapshot, 0, len(snapshots)+1)
	removed := false
	for _, snap := range snapshots {
		if snap.ID == card.ID {
			removed = true
			continue
		}
		updated = append(updated, snap)
	}
	if !removed {
		updated = append(updated, models.NewSnapshot(card))
	}

	if err := s.Save(updated); err != nil {
		return updated, err
	}
	return updated, nil
}

// Contains reports whether a card with the given id is bookmarked
func (s *Service) Contains(id string) bool {
	for _, snap := range s.Load() {
		if snap.ID == id {
			return true
		}
	}
	return false
}

// dedupe keeps the first snapshot per id. The collection never gains
// duplicates through Toggle, but a hand-edited store value can carry them.
func dedupe(snapshots []models.Snapshot, logger *zap.Logger) []models.Snapshot {
	seen := make(map[string]struct{}, len(snapshots))
	unique := snapshots[:0]
	for _, snap := range snapshots {
		if _, exists := seen[snap.ID]; exists {
			logger.Warn("dropping duplicate bookmark entry", zap.String("id", snap.ID))
			continue
		}
		seen[snap.ID] = struct{}{}
		unique = append(unique, snap)
	}
	return unique
}
