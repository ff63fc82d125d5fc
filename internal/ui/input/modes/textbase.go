package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"userdir/internal/ui/input/types"
)

// TextInputMode is a base for modes that accept text input
type TextInputMode struct {
	mode      types.Mode
	name      string
	textInput *textinput.Model
}

func NewTextInputMode(mode types.Mode, name string, ti *textinput.Model) TextInputMode {
	return TextInputMode{
		mode:      mode,
		name:      name,
		textInput: ti,
	}
}

func (m TextInputMode) Name() string {
	return m.name
}

// Enter focuses the input and keeps whatever it already holds
func (m TextInputMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
		m.textInput.CursorEnd()
	}
	return nil
}

func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m TextInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true
	case "enter":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	default:
		// Returning false lets the handler feed the key to the text input
		return nil, false
	}
}
