package models

// Card represents one question/answer unit from a deck
type Card struct {
	ID       string `yaml:"id" json:"id"`
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// Snapshot is a stored representation of a bookmarked card.
// The reveal state is persisted so that a restored snapshot always
// opens with the answer hidden.
type Snapshot struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Revealed bool   `json:"revealed"`
}

// NewSnapshot builds a normalized snapshot of a card (answer hidden)
func NewSnapshot(c Card) Snapshot {
	return Snapshot{
		ID:       c.ID,
		Question: c.Question,
		Answer:   c.Answer,
	}
}

// Normalize resets view state so the snapshot displays with the answer hidden.
// Stored values may come from older versions or hand edits, so restore paths
// normalize again before display.
func (s Snapshot) Normalize() Snapshot {
	s.Revealed = false
	return s
}

// Card converts the snapshot back to a plain card
func (s Snapshot) Card() Card {
	return Card{
		ID:       s.ID,
		Question: s.Question,
		Answer:   s.Answer,
	}
}
