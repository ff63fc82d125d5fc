package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"userdir/internal/ui/theme"
)

// SearchBarHeight is the number of rows the search bar occupies
const SearchBarHeight = 3

// ClearHint is shown next to a non-empty query
const ClearHint = "[esc: clear]"

const searchIcon = "⌕"

// SearchBarRenderer renders the query input
type SearchBarRenderer struct {
	theme theme.Reader
}

// NewSearchBarRenderer creates a search bar renderer reading the shared theme flag
func NewSearchBarRenderer(t theme.Reader) *SearchBarRenderer {
	return &SearchBarRenderer{theme: t}
}

// RenderSearchBar draws the icon, the input and, when query is non-empty,
// the clear affordance
func (r *SearchBarRenderer) RenderSearchBar(input string, query string, termWidth int) string {
	styles := ForTheme(r.theme)
	width := CardWidth(termWidth)

	left := styles.SearchIcon.Render(searchIcon) + " " + input
	content := left
	if query != "" {
		hint := styles.ClearHint.Render(ClearHint)
		gap := width - 4 - lipgloss.Width(left) - lipgloss.Width(hint)
		if gap < 1 {
			gap = 1
		}
		content = left + strings.Repeat(" ", gap) + hint
	}

	return styles.SearchBox.Width(width - 2).Render(
		lipgloss.NewStyle().MaxWidth(width - 4).Render(content),
	)
}
