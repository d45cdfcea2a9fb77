package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<body>
  <div class="container">
    <div class="card" data-card="q1">
      <p class="question">What is Go?</p>
      <button class="reveal">Show answer</button>
      <p class="answer" hidden>A programming language</p>
    </div>
    <div class="card" data-card="q2">
      <h3 class="question">
        Who made it?
      </h3>
      <p class="answer">Google</p>
    </div>
  </div>
</body>
</html>`

func TestParseQuizHTML(t *testing.T) {
	p := NewParser()

	cards, err := p.ParseQuizHTML(strings.NewReader(samplePage))
	require.NoError(t, err)
	require.Len(t, cards, 2)

	assert.Equal(t, "q1", cards[0].ID)
	assert.Equal(t, "What is Go?", cards[0].Question)
	assert.Equal(t, "A programming language", cards[0].Answer)

	assert.Equal(t, "q2", cards[1].ID)
	assert.Equal(t, "Who made it?", cards[1].Question, "text is trimmed")
	assert.Equal(t, "Google", cards[1].Answer)
}

func TestParseQuizHTML_SkipsIncompleteCards(t *testing.T) {
	page := `<html><body>
	  <div data-card="q1"><p class="answer">orphan answer</p></div>
	  <div class="card"><p class="question">no id</p></div>
	  <div data-card="q2"><p class="question">kept</p></div>
	</body></html>`

	cards, err := NewParser().ParseQuizHTML(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "q2", cards[0].ID)
	assert.Equal(t, "kept", cards[0].Question)
	assert.Empty(t, cards[0].Answer, "missing answer region is allowed")
}

func TestParseQuizHTML_NestedMarkup(t *testing.T) {
	page := `<html><body>
	  <section data-card="q1">
	    <div><span class="question">What is <b>Go</b>?</span></div>
	    <div><span class="answer">A <i>language</i></span></div>
	  </section>
	</body></html>`

	cards, err := NewParser().ParseQuizHTML(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "What is Go?", cards[0].Question)
	assert.Equal(t, "A language", cards[0].Answer)
}

func TestParseQuizHTML_NoCards(t *testing.T) {
	cards, err := NewParser().ParseQuizHTML(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, cards)
}
