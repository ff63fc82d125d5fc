package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists the bindings shown in the help overlay
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Page    key.Binding
	Ends    key.Binding
	Search  key.Binding
	Clear   key.Binding
	Theme   key.Binding
	Details key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap mirrors the bindings handled by the input package
var DefaultKeyMap = KeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous user")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next user")),
	Page:    key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("PgUp/PgDn", "page up/down")),
	Ends:    key.NewBinding(key.WithKeys("g", "G", "home", "end"), key.WithHelp("gg/G", "first/last user")),
	Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search name, username, email")),
	Clear:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "clear search")),
	Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle papal mode")),
	Details: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "open user details")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle this help")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Page, k.Ends},
		{k.Search, k.Clear, k.Theme, k.Details},
		{k.Help, k.Quit},
	}
}

// renderHelpContent renders the help information
func (r *Renderer) renderHelpContent(styles *Styles) string {
	h := help.New()
	h.ShowAll = true

	titleStyle := styles.CardTitle.MarginBottom(1)
	h.Styles.FullKey = styles.CardIcon
	h.Styles.FullDesc = styles.CardText
	h.Styles.FullSeparator = styles.Dim

	var b strings.Builder
	b.WriteString(titleStyle.Render(Title + " Help"))
	b.WriteString("\n")
	b.WriteString(h.View(DefaultKeyMap))
	b.WriteString("\n\n")
	b.WriteString(styles.Dim.Render("In search mode Enter keeps the query, Esc clears it."))
	b.WriteString("\n")
	b.WriteString(styles.Help.Render("Press ? or Esc to close"))
	return b.String()
}
