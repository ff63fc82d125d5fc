package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"userdir/internal/ui/input/modes"
	"userdir/internal/ui/input/types"
)

// SearchPlaceholder is shown in the empty search bar
const SearchPlaceholder = "Search users..."

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // search bar input, shared with the view
}

func New() *Handler {
	ti := textinput.New()
	ti.Placeholder = SearchPlaceholder
	ti.Prompt = "" // the search icon is drawn by the view
	ti.CharLimit = 128

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)

	return h
}

// HandleKey routes a key to the current mode. Mode changes are applied
// here; the remaining actions are returned for the model to execute.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	// Fast input can arrive as one message holding several runes. Normal
	// mode binds single keys, so feed them one at a time; a '/' among them
	// switches mode and the rest reach the search input.
	if !h.isTextMode(h.currentMode) && msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		return h.handleRunes(msg, ctx)
	}

	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		switch a := action.(type) {
		case types.ChangeModeAction:
			allActions = append(allActions, h.changeMode(a.Mode, ctx)...)
			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
		case types.ClearQueryAction:
			h.textInput.Reset()
			allActions = append(allActions, a)
		default:
			allActions = append(allActions, action)
		}
	}

	// Keys the text mode did not claim edit the query
	if h.isTextMode(h.currentMode) && !consumed {
		before := h.textInput.Value()
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		if after := h.textInput.Value(); after != before {
			allActions = append(allActions, types.UpdateQueryAction{Query: after})
		}
	}

	return allActions, cmd
}

func (h *Handler) handleRunes(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	var allActions []types.Action
	var cmds []tea.Cmd
	for _, r := range msg.Runes {
		single := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt}
		actions, cmd := h.HandleKey(single, ctx)
		allActions = append(allActions, actions...)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return allActions, tea.Batch(cmds...)
}

func (h *Handler) changeMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// TextInput returns the search bar input
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}

// Update handles non-keyboard messages for the text input, such as cursor blink
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
