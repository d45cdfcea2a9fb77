package ui

import (
	"fmt"
	"strings"

	"github.com/dastanaron/quizcards/internal/bookmarks"
	"github.com/dastanaron/quizcards/internal/deck"
	"github.com/dastanaron/quizcards/internal/models"
	"github.com/dastanaron/quizcards/internal/theme"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const (
	ModeNormal = 1
	ModeSearch = 2
	ModeModal  = 3
)

const (
	iconActive   = "★"
	iconInactive = "☆"

	// Default label of the reveal affordance; shown in place of a
	// hidden answer.
	revealLabel = "press Enter to show the answer"
	hideLabel   = "press Enter to hide the answer"

	emptyBookmarksMessage = "No bookmarked cards yet.\n\nPress Tab to go back and 'b' on a card to bookmark it."
)

// App represents the TUI application with its two views: the home view
// listing every deck card and the bookmarks view listing the persisted
// bookmark collection.
type App struct {
	app   *tview.Application
	pages *tview.Pages

	homeFlex   *tview.Flex
	homeList   *tview.List
	homeDetail *tview.TextView
	homeStatus *tview.TextView
	search     *tview.InputField

	bmFlex   *tview.Flex
	bmList   *tview.List
	bmDetail *tview.TextView
	bmStatus *tview.TextView

	deck      *deck.Deck
	allCards  []models.Card // every deck card, home view source
	cards     []models.Card // cards after the search filter
	snapshots []models.Snapshot

	revealed   map[string]bool // per-session reveal state, home view
	bmRevealed map[string]bool // per-session reveal state, bookmarks view

	mode        uint8
	onBookmarks bool
	dark        bool

	bookmarkSvc *bookmarks.Service
	themeSvc    *theme.Service
	logger      *zap.Logger
}

// NewApp creates a new application instance
func NewApp(d *deck.Deck, bookmarkSvc *bookmarks.Service, themeSvc *theme.Service, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		app:         tview.NewApplication(),
		pages:       tview.NewPages(),
		homeList:    tview.NewList(),
		homeDetail:  tview.NewTextView().SetDynamicColors(true).SetWrap(true),
		homeStatus:  tview.NewTextView().SetDynamicColors(true),
		search:      tview.NewInputField().SetLabel("Search: "),
		bmList:      tview.NewList(),
		bmDetail:    tview.NewTextView().SetDynamicColors(true).SetWrap(true),
		bmStatus:    tview.NewTextView().SetDynamicColors(true),
		deck:        d,
		mode:        ModeNormal,
		revealed:    map[string]bool{},
		bmRevealed:  map[string]bool{},
		bookmarkSvc: bookmarkSvc,
		themeSvc:    themeSvc,
		logger:      logger,
	}
}

// Run starts the application
func (a *App) Run() error {
	a.homeList.SetBorder(true).SetTitle("Cards")
	a.homeDetail.SetBorder(true).SetTitle("Card")
	a.bmList.SetBorder(true).SetTitle("Bookmarks")
	a.bmDetail.SetBorder(true).SetTitle("Card")

	homeCols := tview.NewFlex().
		AddItem(a.homeList, 0, 2, true).
		AddItem(a.homeDetail, 0, 3, false)
	a.homeFlex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.search, 1, 0, false).
		AddItem(homeCols, 0, 1, true).
		AddItem(a.homeStatus, 1, 0, false)

	bmCols := tview.NewFlex().
		AddItem(a.bmList, 0, 2, true).
		AddItem(a.bmDetail, 0, 3, false)
	a.bmFlex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(bmCols, 0, 1, true).
		AddItem(a.bmStatus, 1, 0, false)

	a.pages.AddPage("home", a.homeFlex, true, true)
	a.pages.AddPage("bookmarks", a.bmFlex, true, false)

	// Initial synchronization: both views render from the persisted
	// collection before the first event.
	a.snapshots = a.bookmarkSvc.Load()
	a.allCards = a.deck.Cards()
	a.cards = a.allCards
	a.fillHomeList()
	a.fillBookmarkList()

	a.search.SetChangedFunc(a.onSearchChange)
	a.search.SetDoneFunc(a.onSearchDone)
	a.homeList.SetChangedFunc(a.onHomeSelect)
	a.bmList.SetChangedFunc(a.onBookmarkSelect)

	a.dark = a.themeSvc.DarkEnabled()
	a.applyTheme(theme.Select(a.dark))

	a.app.SetRoot(a.pages, true)
	a.app.SetInputCapture(a.globalInput)
	a.updateStatus()

	a.app.SetFocus(a.homeList)
	return a.app.Run()
}

func (a *App) updateStatus() {
	homeText := fmt.Sprintf(
		"[::b]Enter[::r] reveal  [::b]b[::r] bookmark  [::b]Tab[::r] bookmarks  [::b]t[::r] theme  [::b]/[::r] search  [::b]q[::r] quit  —  [::b]%d[::r] cards, [::b]%d[::r] bookmarked",
		len(a.cards), len(a.snapshots))
	bmText := fmt.Sprintf(
		"[::b]Enter[::r] reveal  [::b]b[::r] remove  [::b]Tab[::r] cards  [::b]t[::r] theme  [::b]q[::r] quit  —  [::b]%d[::r] bookmarked",
		len(a.snapshots))

	a.homeStatus.SetText(homeText)
	a.bmStatus.SetText(bmText)
}

// fillHomeList rebuilds the home list, setting each bookmark icon from
// membership in the loaded collection
func (a *App) fillHomeList() {
	marked := make(map[string]struct{}, len(a.snapshots))
	for _, snap := range a.snapshots {
		marked[snap.ID] = struct{}{}
	}

	selected := a.homeList.GetCurrentItem()
	a.homeList.Clear()
	for _, card := range a.cards {
		icon := iconInactive
		if _, ok := marked[card.ID]; ok {
			icon = iconActive
		}
		a.homeList.AddItem(fmt.Sprintf("%s %s", icon, card.Question), card.ID, 0, nil)
	}
	if selected >= 0 && selected < len(a.cards) {
		a.homeList.SetCurrentItem(selected)
	}

	a.showHomeDetail()
}

// fillBookmarkList clears and rebuilds the bookmarks view from the
// collection. Restored snapshots are normalized to a hidden answer,
// so the per-session reveal state is reset as well.
func (a *App) fillBookmarkList() {
	a.bmRevealed = map[string]bool{}

	selected := a.bmList.GetCurrentItem()
	a.bmList.Clear()
	for i := range a.snapshots {
		a.snapshots[i] = a.snapshots[i].Normalize()
		a.bmList.AddItem(fmt.Sprintf("%s %s", iconActive, a.snapshots[i].Question), a.snapshots[i].ID, 0, nil)
	}
	if selected >= 0 && selected < len(a.snapshots) {
		a.bmList.SetCurrentItem(selected)
	}

	a.showBookmarkDetail()
}

func (a *App) currentCard() *models.Card {
	index := a.homeList.GetCurrentItem()
	if index < 0 || index >= len(a.cards) {
		return nil
	}
	return &a.cards[index]
}

func (a *App) currentSnapshot() *models.Snapshot {
	index := a.bmList.GetCurrentItem()
	if index < 0 || index >= len(a.snapshots) {
		return nil
	}
	return &a.snapshots[index]
}

func (a *App) showHomeDetail() {
	card := a.currentCard()
	if card == nil {
		a.homeDetail.SetText("No cards to show.")
		return
	}
	a.homeDetail.SetText(renderCard(card.Question, card.Answer, a.revealed[card.ID]))
}

func (a *App) showBookmarkDetail() {
	snap := a.currentSnapshot()
	if snap == nil {
		a.bmDetail.SetText(emptyBookmarksMessage)
		return
	}
	a.bmDetail.SetText(renderCard(snap.Question, snap.Answer, a.bmRevealed[snap.ID]))
}

// renderCard reconstructs the card rendering from structured fields; the
// answer region is replaced by the reveal affordance while hidden
func renderCard(question, answer string, revealed bool) string {
	var sb strings.Builder
	sb.WriteString("[::b]Question:[::-]\n")
	sb.WriteString(tview.Escape(question))
	sb.WriteString("\n\n[::b]Answer:[::-]\n")
	if revealed {
		sb.WriteString(tview.Escape(answer))
		sb.WriteString(fmt.Sprintf("\n\n[::d](%s)[::-]", hideLabel))
	} else {
		sb.WriteString(fmt.Sprintf("[::d]… %s …[::-]", revealLabel))
	}
	return sb.String()
}

// toggleReveal flips the answer visibility of the selected card on the
// active view. Reveal state never outlives the session.
func (a *App) toggleReveal() {
	if a.onBookmarks {
		if snap := a.currentSnapshot(); snap != nil {
			a.bmRevealed[snap.ID] = !a.bmRevealed[snap.ID]
			a.showBookmarkDetail()
		}
		return
	}
	if card := a.currentCard(); card != nil {
		a.revealed[card.ID] = !a.revealed[card.ID]
		a.showHomeDetail()
	}
}

// toggleBookmark adds or removes the selected card and resynchronizes
// both views with the updated collection
func (a *App) toggleBookmark() {
	var card *models.Card
	if a.onBookmarks {
		if snap := a.currentSnapshot(); snap != nil {
			c := snap.Card()
			card = &c
		}
	} else {
		card = a.currentCard()
	}
	if card == nil {
		return
	}

	snapshots, err := a.bookmarkSvc.Toggle(*card)
	a.snapshots = snapshots
	a.fillHomeList()
	a.fillBookmarkList()
	a.updateStatus()

	if err != nil {
		a.logger.Error("cannot persist bookmarks", zap.Error(err))
		a.showError(fmt.Sprintf("Error saving bookmarks: %v", err))
	}
}

func (a *App) toggleTheme() {
	a.dark = !a.dark
	if err := a.themeSvc.SetDark(a.dark); err != nil {
		// The preference still applies for this session
		a.logger.Warn("cannot persist theme preference", zap.Error(err))
	}
	a.applyTheme(theme.Select(a.dark))
}

func (a *App) applyTheme(p theme.Palette) {
	for _, list := range []*tview.List{a.homeList, a.bmList} {
		list.SetBackgroundColor(p.Background)
		list.SetMainTextColor(p.Text)
		list.SetSecondaryTextColor(p.Secondary)
		list.SetSelectedTextColor(p.Selected)
		list.SetSelectedBackgroundColor(p.SelectedBg)
		list.SetBorderColor(p.Border)
		list.SetTitleColor(p.Title)
	}
	for _, view := range []*tview.TextView{a.homeDetail, a.bmDetail, a.homeStatus, a.bmStatus} {
		view.SetBackgroundColor(p.Background)
		view.SetTextColor(p.Text)
		view.SetBorderColor(p.Border)
		view.SetTitleColor(p.Title)
	}
	a.search.SetLabelColor(p.Title)
	a.search.SetFieldBackgroundColor(p.Background)
	a.search.SetFieldTextColor(p.Text)
	a.search.SetBackgroundColor(p.Background)
	if a.homeFlex != nil {
		a.homeFlex.SetBackgroundColor(p.Background)
	}
	if a.bmFlex != nil {
		a.bmFlex.SetBackgroundColor(p.Background)
	}
}

// switchView swaps between the home and bookmarks pages
func (a *App) switchView() {
	a.onBookmarks = !a.onBookmarks
	if a.onBookmarks {
		a.pages.SwitchToPage("bookmarks")
		a.app.SetFocus(a.bmList)
		a.showBookmarkDetail()
	} else {
		a.pages.SwitchToPage("home")
		a.app.SetFocus(a.homeList)
		a.showHomeDetail()
	}
	a.updateStatus()
}

func (a *App) setMode(m uint8) {
	a.mode = m
	switch m {
	case ModeSearch:
		a.app.SetFocus(a.search)
	case ModeNormal:
		if a.onBookmarks {
			a.app.SetFocus(a.bmList)
		} else {
			a.app.SetFocus(a.homeList)
		}
	}
}

func (a *App) onSearchChange(text string) {
	a.applyFilter(text)
}

func (a *App) onSearchDone(key tcell.Key) {
	switch key {
	case tcell.KeyEnter:
		a.setMode(ModeNormal)
	case tcell.KeyEscape:
		a.search.SetText("")
		a.applyFilter("")
		a.setMode(ModeNormal)
	}
}

func (a *App) applyFilter(text string) {
	if text == "" {
		a.cards = a.allCards
	} else {
		textLower := strings.ToLower(text)
		var filtered []models.Card
		for _, card := range a.allCards {
			if strings.Contains(strings.ToLower(card.Question), textLower) ||
				strings.Contains(strings.ToLower(card.Answer), textLower) ||
				strings.Contains(strings.ToLower(card.ID), textLower) {
				filtered = append(filtered, card)
			}
		}
		a.cards = filtered
	}
	a.fillHomeList()
	a.updateStatus()
}

func (a *App) onHomeSelect(index int, mainText, secondaryText string, shortcut rune) {
	if index >= 0 && index < len(a.cards) {
		a.showHomeDetail()
	}
}

func (a *App) onBookmarkSelect(index int, mainText, secondaryText string, shortcut rune) {
	if index >= 0 && index < len(a.snapshots) {
		a.showBookmarkDetail()
	}
}

func (a *App) globalInput(event *tcell.EventKey) *tcell.EventKey {
	// Modal dialogs handle their own keys
	if a.pages.HasPage("error") {
		return event
	}

	switch a.mode {
	case ModeNormal:
		switch event.Key() {
		case tcell.KeyTab:
			a.switchView()
			return nil
		case tcell.KeyEnter:
			a.toggleReveal()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q':
				a.app.Stop()
				return nil
			case 't':
				a.toggleTheme()
				return nil
			case 'b':
				a.toggleBookmark()
				return nil
			case '/':
				if !a.onBookmarks {
					a.setMode(ModeSearch)
					return nil
				}
			}
		}
	}
	return event
}

// showError shows a modal dialog with the message
func (a *App) showError(message string) {
	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			a.pages.RemovePage("error")
			a.setMode(ModeNormal)
		})

	modal.SetBorder(true).SetTitle("Error")
	a.pages.AddPage("error", modal, true, true)
	a.mode = ModeModal
	a.app.SetFocus(modal)
}
