package theme

import (
	"encoding/json"

	"github.com/dastanaron/quizcards/internal/storage"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// StoreKey is the storage slot holding the dark-mode flag
const StoreKey = "theme"

// Palette groups the colors applied to every widget
type Palette struct {
	Background tcell.Color
	Text       tcell.Color
	Secondary  tcell.Color
	Border     tcell.Color
	Title      tcell.Color
	Selected   tcell.Color
	SelectedBg tcell.Color
}

var (
	// Light is the default palette
	Light = Palette{
		Background: tcell.ColorWhite,
		Text:       tcell.ColorBlack,
		Secondary:  tcell.ColorDarkSlateGray,
		Border:     tcell.ColorGray,
		Title:      tcell.ColorBlack,
		Selected:   tcell.ColorWhite,
		SelectedBg: tcell.ColorDarkBlue,
	}

	// Dark is the palette enabled by the persisted dark-mode flag
	Dark = Palette{
		Background: tcell.ColorBlack,
		Text:       tcell.ColorWhite,
		Secondary:  tcell.ColorDarkGray,
		Border:     tcell.ColorGray,
		Title:      tcell.ColorWhite,
		Selected:   tcell.ColorBlack,
		SelectedBg: tcell.ColorLightSlateGray,
	}
)

// Select returns the palette matching the dark-mode flag
func Select(dark bool) Palette {
	if dark {
		return Dark
	}
	return Light
}

// Service persists the dark-mode preference in its storage slot
type Service struct {
	store  storage.Store
	logger *zap.Logger
}

// NewService creates a theme service over the given store
func NewService(store storage.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// DarkEnabled reports the persisted preference. An absent or unreadable
// value defaults to the light theme.
func (s *Service) DarkEnabled() bool {
	value, found, err := s.store.Get(StoreKey)
	if err != nil {
		s.logger.Warn("cannot read theme preference, using light theme", zap.Error(err))
		return false
	}
	if !found {
		return false
	}

	var enabled bool
	if err := json.Unmarshal(value, &enabled); err != nil {
		s.logger.Warn("corrupt theme preference, using light theme", zap.Error(err))
		return false
	}
	return enabled
}

// SetDark persists the dark-mode flag
func (s *Service) SetDark(enabled bool) error {
	value, err := json.Marshal(enabled)
	if err != nil {
		return err
	}
	return s.store.Set(StoreKey, value)
}
