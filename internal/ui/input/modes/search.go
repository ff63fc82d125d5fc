package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"userdir/internal/ui/input/types"
)

// SearchMode edits the query live: every keystroke the input accepts is
// reported as an UpdateQueryAction by the handler.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

// HandleKey adds esc, which clears the query as well as leaving the mode
func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyEsc {
		return []types.Action{
			types.ClearQueryAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
