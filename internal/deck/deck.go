package deck

import (
	"fmt"
	"os"

	"github.com/dastanaron/quizcards/internal/models"

	"github.com/goccy/go-yaml"
)

// Deck is an ordered set of quiz cards with unique ids
type Deck struct {
	cards []models.Card
	byID  map[string]int
}

// Load reads a YAML deck file
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read deck file: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid deck file %s: %w", path, err)
	}
	return d, nil
}

// Parse builds a deck from YAML card definitions
func Parse(data []byte) (*Deck, error) {
	var cards []models.Card
	if err := yaml.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("failed to parse deck: %w", err)
	}
	return New(cards)
}

// New validates cards and builds a deck. Ids must be non-empty and unique,
// questions non-empty.
func New(cards []models.Card) (*Deck, error) {
	byID := make(map[string]int, len(cards))
	for i, c := range cards {
		if c.ID == "" {
			return nil, fmt.Errorf("card %d has no id", i+1)
		}
		if c.Question == "" {
			return nil, fmt.Errorf("card %q has no question", c.ID)
		}
		if _, exists := byID[c.ID]; exists {
			return nil, fmt.Errorf("duplicate card id %q", c.ID)
		}
		byID[c.ID] = i
	}
	return &Deck{cards: cards, byID: byID}, nil
}

// Save writes cards to a YAML deck file
func Save(path string, cards []models.Card) error {
	data, err := yaml.Marshal(cards)
	if err != nil {
		return fmt.Errorf("cannot serialize deck: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write deck file: %w", err)
	}
	return nil
}

// Cards returns the deck cards in file order
func (d *Deck) Cards() []models.Card {
	return d.cards
}

// Get returns the card with the given id
func (d *Deck) Get(id string) (*models.Card, bool) {
	i, ok := d.byID[id]
	if !ok {
		return nil, false
	}
	return &d.cards[i], true
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}
