package deck

import (
	"path/filepath"
	"testing"

	"github.com/dastanaron/quizcards/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDeck = `
- id: q1
  question: What is Go?
  answer: A programming language
- id: q2
  question: Who made it?
  answer: Google
`

func TestParse(t *testing.T) {
	d, err := Parse([]byte(sampleDeck))
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())

	cards := d.Cards()
	assert.Equal(t, "q1", cards[0].ID)
	assert.Equal(t, "What is Go?", cards[0].Question)
	assert.Equal(t, "A programming language", cards[0].Answer)
	assert.Equal(t, "q2", cards[1].ID)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("not: [valid deck"))
	assert.Error(t, err)
}

func TestNew_Validation(t *testing.T) {
	t.Run("duplicate id", func(t *testing.T) {
		_, err := New([]models.Card{
			{ID: "q1", Question: "a"},
			{ID: "q1", Question: "b"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate card id")
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := New([]models.Card{{Question: "a"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no id")
	})

	t.Run("empty question", func(t *testing.T) {
		_, err := New([]models.Card{{ID: "q1"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no question")
	})

	t.Run("empty deck is valid", func(t *testing.T) {
		d, err := New(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, d.Len())
	})
}

func TestGet(t *testing.T) {
	d, err := Parse([]byte(sampleDeck))
	require.NoError(t, err)

	card, ok := d.Get("q2")
	require.True(t, ok)
	assert.Equal(t, "Who made it?", card.Question)

	_, ok = d.Get("missing")
	assert.False(t, ok)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	cards := []models.Card{
		{ID: "q1", Question: "What is Go?", Answer: "A programming language"},
		{ID: "q2", Question: "Who made it?", Answer: "Google"},
	}
	path := filepath.Join(t.TempDir(), "deck.yaml")

	require.NoError(t, Save(path, cards))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cards, d.Cards())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
