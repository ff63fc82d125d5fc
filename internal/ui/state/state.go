package state

import (
	"userdir/internal/domain"
	"userdir/internal/ui/logic"
)

// FetchErrorMessage is shown when the directory could not be loaded
const FetchErrorMessage = "An error occurred while fetching data"

// Phase is the lifecycle stage of the directory
type Phase int

const (
	Loading Phase = iota
	Ready
	Failed
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// AppState contains all the application state
type AppState struct {
	// Directory data
	Phase        Phase
	Users        []domain.User // full list, written once on Ready
	Visible      []domain.User // FilterUsers(Users, Query)
	Query        string
	ErrorMessage string

	// Selection state, keyed by record id so it survives re-filtering
	SelectedID    domain.UserID
	SelectedIndex int

	// UI state
	ViewportOffset int // index of the first visible card
	ViewportHeight int // number of cards that fit
	ShowHelp       bool
	StatusMessage  string
}

// NewAppState creates the state for a fresh session, in Loading
func NewAppState() *AppState {
	return &AppState{
		Phase:          Loading,
		ViewportHeight: 3,
	}
}

// Succeed moves Loading -> Ready with the fetched users and an empty query.
// It returns false, leaving the state untouched, from any other phase.
func (s *AppState) Succeed(users []domain.User) bool {
	if s.Phase != Loading {
		return false
	}
	s.Phase = Ready
	s.Users = users
	s.Query = ""
	s.refresh()
	return true
}

// Fail moves Loading -> Failed with the fixed user-facing message.
// Failed is terminal for the session.
func (s *AppState) Fail() bool {
	if s.Phase != Loading {
		return false
	}
	s.Phase = Failed
	s.ErrorMessage = FetchErrorMessage
	s.Users = nil
	s.Visible = nil
	return true
}

// SetQuery replaces the query and re-derives the visible list. It is a
// no-op outside Ready.
func (s *AppState) SetQuery(query string) bool {
	if s.Phase != Ready {
		return false
	}
	s.Query = query
	s.refresh()
	return true
}

// ClearQuery resets a non-empty query
func (s *AppState) ClearQuery() bool {
	if s.Query == "" {
		return false
	}
	return s.SetQuery("")
}

// HasNoResults reports the Ready-with-empty-list case
func (s *AppState) HasNoResults() bool {
	return s.Phase == Ready && len(s.Visible) == 0
}

// Selected returns the record under the cursor
func (s *AppState) Selected() (domain.User, bool) {
	if s.Phase != Ready || s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Visible) {
		return domain.User{}, false
	}
	return s.Visible[s.SelectedIndex], true
}

// MoveSelection moves the cursor by delta, clamped to the visible list
func (s *AppState) MoveSelection(delta int) {
	s.navigate(func(nav *logic.Navigator) (int, int) { return nav.Move(delta) })
}

// PageSelection moves the cursor by whole screens; pages is negative to go up
func (s *AppState) PageSelection(pages int) {
	s.navigate(func(nav *logic.Navigator) (int, int) { return nav.Page(pages) })
}

// Select places the cursor at index, clamped to the visible list
func (s *AppState) Select(index int) {
	s.navigate(func(nav *logic.Navigator) (int, int) { return nav.SetSelectedIndex(index) })
}

func (s *AppState) navigate(step func(*logic.Navigator) (int, int)) {
	if len(s.Visible) == 0 {
		// SelectedID is kept so the cursor returns once the record is visible again
		s.SelectedIndex = 0
		return
	}
	nav := logic.NewNavigator()
	nav.UpdateState(s.SelectedIndex, s.ViewportOffset, s.ViewportHeight, len(s.Visible))
	s.SelectedIndex, s.ViewportOffset = step(nav)
	s.SelectedID = s.Visible[s.SelectedIndex].ID
}

// SetViewportHeight sets how many cards fit on screen
func (s *AppState) SetViewportHeight(cards int) {
	if cards < 1 {
		cards = 1
	}
	s.ViewportHeight = cards
	s.Select(s.SelectedIndex)
}

// Window returns the slice of Visible currently on screen and its offset
func (s *AppState) Window() ([]domain.User, int) {
	if len(s.Visible) == 0 {
		return nil, 0
	}
	start := s.ViewportOffset
	if start > len(s.Visible)-1 {
		start = len(s.Visible) - 1
	}
	end := start + s.ViewportHeight
	if end > len(s.Visible) {
		end = len(s.Visible)
	}
	return s.Visible[start:end], start
}

// refresh derives Visible and keeps the cursor on the same record when it
// is still visible
func (s *AppState) refresh() {
	s.Visible = logic.FilterUsers(s.Users, s.Query)

	if idx := logic.IndexOf(s.Visible, s.SelectedID); s.SelectedID != "" && idx >= 0 {
		s.SelectedIndex = idx
	}
	s.Select(s.SelectedIndex)
	if len(s.Visible) == 0 {
		s.ViewportOffset = 0
	}
}
