package ui

import (
	"testing"

	"github.com/dastanaron/quizcards/internal/bookmarks"
	"github.com/dastanaron/quizcards/internal/deck"
	"github.com/dastanaron/quizcards/internal/models"
	"github.com/dastanaron/quizcards/internal/storage"
	"github.com/dastanaron/quizcards/internal/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestApp builds an App with its lists filled the way Run does,
// without starting the event loop.
func newTestApp(t *testing.T) (*App, *bookmarks.Service) {
	t.Helper()

	d, err := deck.New([]models.Card{
		{ID: "q1", Question: "What is Go?", Answer: "A programming language"},
		{ID: "q2", Question: "Who made it?", Answer: "Google"},
	})
	require.NoError(t, err)

	store := storage.NewMemoryStore()
	bookmarkSvc := bookmarks.NewService(store, zap.NewNop())
	themeSvc := theme.NewService(store, zap.NewNop())

	a := NewApp(d, bookmarkSvc, themeSvc, zap.NewNop())
	a.snapshots = bookmarkSvc.Load()
	a.allCards = d.Cards()
	a.cards = a.allCards
	a.fillHomeList()
	a.fillBookmarkList()

	return a, bookmarkSvc
}

func TestHomeView_IconsMatchCollection(t *testing.T) {
	a, svc := newTestApp(t)

	main, _ := a.homeList.GetItemText(0)
	assert.Contains(t, main, iconInactive)

	_, err := svc.Toggle(models.Card{ID: "q1", Question: "What is Go?", Answer: "A programming language"})
	require.NoError(t, err)
	a.snapshots = svc.Load()
	a.fillHomeList()

	main, secondary := a.homeList.GetItemText(0)
	assert.Contains(t, main, iconActive)
	assert.Equal(t, "q1", secondary)

	main, _ = a.homeList.GetItemText(1)
	assert.Contains(t, main, iconInactive, "q2 stays inactive")
}

func TestBookmarksView_RebuiltFromCollection(t *testing.T) {
	a, _ := newTestApp(t)

	// q1 on
	a.toggleBookmark()
	require.Equal(t, 1, a.bmList.GetItemCount())
	_, secondary := a.bmList.GetItemText(0)
	assert.Equal(t, "q1", secondary)

	// q2 on, q1 off
	a.homeList.SetCurrentItem(1)
	a.toggleBookmark()
	a.homeList.SetCurrentItem(0)
	a.toggleBookmark()

	require.Equal(t, 1, a.bmList.GetItemCount())
	_, secondary = a.bmList.GetItemText(0)
	assert.Equal(t, "q2", secondary)
}

func TestBookmarksView_EmptyState(t *testing.T) {
	a, _ := newTestApp(t)

	assert.Equal(t, 0, a.bmList.GetItemCount())
	assert.Contains(t, a.bmDetail.GetText(true), "No bookmarked cards")

	a.toggleBookmark()
	assert.NotContains(t, a.bmDetail.GetText(true), "No bookmarked cards")

	a.toggleBookmark()
	assert.Contains(t, a.bmDetail.GetText(true), "No bookmarked cards")
}

func TestBookmarksView_RestoredAnswerHidden(t *testing.T) {
	a, _ := newTestApp(t)

	a.toggleBookmark()

	// Reveal on the bookmarks view, then rebuild: the restored snapshot
	// must come back hidden.
	a.onBookmarks = true
	a.toggleReveal()
	assert.Contains(t, a.bmDetail.GetText(true), "A programming language")

	a.fillBookmarkList()
	text := a.bmDetail.GetText(true)
	assert.NotContains(t, text, "A programming language")
	assert.Contains(t, text, revealLabel)
}

func TestToggleReveal_HomeView(t *testing.T) {
	a, _ := newTestApp(t)

	assert.NotContains(t, a.homeDetail.GetText(true), "A programming language")

	a.toggleReveal()
	assert.Contains(t, a.homeDetail.GetText(true), "A programming language")

	a.toggleReveal()
	assert.NotContains(t, a.homeDetail.GetText(true), "A programming language")
}

func TestApplyFilter(t *testing.T) {
	a, _ := newTestApp(t)

	a.applyFilter("made")
	require.Len(t, a.cards, 1)
	assert.Equal(t, "q2", a.cards[0].ID)
	assert.Equal(t, 1, a.homeList.GetItemCount())

	a.applyFilter("")
	assert.Len(t, a.cards, 2)
}

func TestRenderCard(t *testing.T) {
	hidden := renderCard("Q", "secret", false)
	assert.Contains(t, hidden, "Q")
	assert.NotContains(t, hidden, "secret")
	assert.Contains(t, hidden, revealLabel)

	shown := renderCard("Q", "secret", true)
	assert.Contains(t, shown, "secret")
	assert.Contains(t, shown, hideLabel)
}
