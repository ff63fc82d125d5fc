package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userdir/internal/ui/input/types"
)

type fakeContext struct {
	ready     bool
	query     bool
	selection bool
	help      bool
}

func (f fakeContext) IsReady() bool      { return f.ready }
func (f fakeContext) HasQuery() bool     { return f.query }
func (f fakeContext) HasSelection() bool { return f.selection }
func (f fakeContext) ShowingHelp() bool  { return f.help }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestSlashEntersSearchOnlyWhenReady(t *testing.T) {
	h := New()

	_, _ = h.HandleKey(runes("/"), fakeContext{ready: false})
	assert.Equal(t, types.ModeNormal, h.CurrentMode())

	_, _ = h.HandleKey(runes("/"), fakeContext{ready: true})
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.True(t, h.TextInput().Focused())
}

func TestTypingEmitsQueryUpdatePerKeystroke(t *testing.T) {
	h := New()
	ctx := fakeContext{ready: true}
	h.HandleKey(runes("/"), ctx)

	var queries []string
	for _, r := range "lea" {
		actions, _ := h.HandleKey(runes(string(r)), ctx)
		for _, a := range actions {
			if u, ok := a.(types.UpdateQueryAction); ok {
				queries = append(queries, u.Query)
			}
		}
	}
	assert.Equal(t, []string{"l", "le", "lea"}, queries)
	assert.Equal(t, "lea", h.TextInput().Value())

	actions, _ := h.HandleKey(key(tea.KeyBackspace), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateQueryAction{Query: "le"}, actions[0])
}

func TestEnterKeepsQueryAndLeavesSearch(t *testing.T) {
	h := New()
	ctx := fakeContext{ready: true}
	h.HandleKey(runes("/"), ctx)
	h.HandleKey(runes("b"), ctx)

	actions, _ := h.HandleKey(key(tea.KeyEnter), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Equal(t, "b", h.TextInput().Value())
	assert.False(t, h.TextInput().Focused())

	// Re-entering keeps the text
	h.HandleKey(runes("/"), ctx)
	assert.Equal(t, "b", h.TextInput().Value())
}

func TestEscInSearchClearsQuery(t *testing.T) {
	h := New()
	ctx := fakeContext{ready: true}
	h.HandleKey(runes("/"), ctx)
	h.HandleKey(runes("x"), ctx)

	actions, _ := h.HandleKey(key(tea.KeyEsc), ctx)
	assert.Contains(t, actions, types.Action(types.ClearQueryAction{}))
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Equal(t, "", h.TextInput().Value())
}

func TestNormalModeKeys(t *testing.T) {
	h := New()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		ctx  fakeContext
		want []types.Action
	}{
		{"toggle theme", runes("t"), fakeContext{}, []types.Action{types.ToggleThemeAction{}}},
		{"help", runes("?"), fakeContext{}, []types.Action{types.ToggleHelpAction{}}},
		{"quit", runes("q"), fakeContext{}, []types.Action{types.QuitAction{}}},
		{"ctrl+c quits", key(tea.KeyCtrlC), fakeContext{}, []types.Action{types.QuitAction{}}},
		{"down", runes("j"), fakeContext{}, []types.Action{types.NavigateAction{Direction: "down"}}},
		{"up arrow", key(tea.KeyUp), fakeContext{}, []types.Action{types.NavigateAction{Direction: "up"}}},
		{"bottom", runes("G"), fakeContext{}, []types.Action{types.NavigateAction{Direction: "end"}}},
		{"esc clears query", key(tea.KeyEsc), fakeContext{query: true}, []types.Action{types.ClearQueryAction{}}},
		{"esc closes help first", key(tea.KeyEsc), fakeContext{query: true, help: true}, []types.Action{types.ToggleHelpAction{}}},
		{"esc without query", key(tea.KeyEsc), fakeContext{}, nil},
		{"enter opens details", key(tea.KeyEnter), fakeContext{selection: true}, []types.Action{types.OpenDetailsAction{}}},
		{"enter without selection", key(tea.KeyEnter), fakeContext{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions, _ := h.HandleKey(tt.msg, tt.ctx)
			assert.Equal(t, tt.want, actions)
			assert.Equal(t, types.ModeNormal, h.CurrentMode())
		})
	}
}

func TestDoubleGGoesHome(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(runes("g"), fakeContext{})
	assert.Empty(t, actions)
	actions, _ = h.HandleKey(runes("g"), fakeContext{})
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "home"}}, actions)
}

func TestBurstOfRunesEntersSearch(t *testing.T) {
	h := New()
	ctx := fakeContext{ready: true}

	actions, _ := h.HandleKey(runes("/le"), ctx)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.Equal(t, "le", h.TextInput().Value())
	assert.Equal(t, []types.Action{
		types.UpdateQueryAction{Query: "l"},
		types.UpdateQueryAction{Query: "le"},
	}, actions)
}

func TestBurstOfRunesInNormalMode(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(runes("gg"), fakeContext{})
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "home"}}, actions)

	actions, _ = h.HandleKey(runes("jt"), fakeContext{})
	assert.Equal(t, []types.Action{
		types.NavigateAction{Direction: "down"},
		types.ToggleThemeAction{},
	}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}
