package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"userdir/internal/domain"
	"userdir/internal/ui/state"
	"userdir/internal/ui/theme"
)

// Fixed interface text
const (
	Title          = "User Directory"
	Subtitle       = "Mini terminal app built on the JSONPlaceholder API"
	FooterText     = "© 2025 User Directory"
	LoadingText    = "Loading..."
	NoResultsText  = "No users match the search criteria"
	HelpHint       = "Press ? for help"
	toggleKeyLabel = "[t]"
)

// Row budget of the fixed chrome around the card list
const (
	HeaderHeight = 5
	FooterHeight = 2
	statusHeight = 1
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Phase         state.Phase
	Window        []domain.User // the cards on screen
	Offset        int           // index of Window[0] in the visible list
	SelectedIndex int           // index in the visible list
	VisibleCount  int
	TotalCount    int
	Query         string
	SearchInput   string // rendered text input
	ErrorMessage  string
	Spinner       string
	StatusMessage string
	ShowHelp      bool
}

// Renderer handles all view rendering
type Renderer struct {
	theme       theme.Reader
	cards       *CardRenderer
	searchBar   *SearchBarRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a renderer; every unit reads the same theme flag
func NewRenderer(t theme.Reader) *Renderer {
	return &Renderer{
		theme:       t,
		cards:       NewCardRenderer(t),
		searchBar:   NewSearchBarRenderer(t),
		popupRender: NewPopupRenderer(t),
	}
}

// CardCapacity returns how many cards fit in a terminal of the given height
func CardCapacity(height int) int {
	area := height - HeaderHeight - 1 - SearchBarHeight - statusHeight - FooterHeight
	n := area / CardHeight
	if n < 1 {
		n = 1
	}
	return n
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	styles := ForTheme(r.theme)

	width := vs.Width
	if width <= 0 {
		width = 80
	}
	height := vs.Height
	if height <= 0 {
		height = 24
	}

	header := r.renderHeader(styles, width)
	footer := r.renderFooter(styles, width, vs)

	body := &strings.Builder{}
	body.WriteString("\n")
	switch vs.Phase {
	case state.Loading:
		body.WriteString(r.renderLoading(styles, vs))
	case state.Failed:
		body.WriteString(styles.Error.Render(vs.ErrorMessage))
	case state.Ready:
		body.WriteString(r.renderReady(styles, vs))
	}

	main := styles.Main.Render(body.String())

	// Push the footer to the bottom
	used := lipgloss.Height(header) + lipgloss.Height(main) + lipgloss.Height(footer)
	padding := ""
	if used < height {
		padding = strings.Repeat("\n", height-used)
	}

	frame := lipgloss.JoinVertical(lipgloss.Left, header, main+padding, footer)
	frame = lipgloss.NewStyle().MaxHeight(height).Render(frame)

	if vs.ShowHelp {
		return r.popupRender.RenderPopupOverlay(frame, r.renderHelpContent(styles), height, width, styles.InfoBox)
	}
	return frame
}

func (r *Renderer) renderHeader(styles *Styles, width int) string {
	inner := width - 4
	toggle := styles.Subtitle.Render(toggleKeyLabel+" ") + styles.Toggle.Render(theme.ToggleLabel(r.theme))
	toggleLine := lipgloss.PlaceHorizontal(inner, lipgloss.Right, toggle,
		lipgloss.WithWhitespaceBackground(theme.For(r.theme).HeaderBackground))

	lines := []string{
		toggleLine,
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, styles.Title.Render(Title),
			lipgloss.WithWhitespaceBackground(theme.For(r.theme).HeaderBackground)),
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, styles.Subtitle.Render(Subtitle),
			lipgloss.WithWhitespaceBackground(theme.For(r.theme).HeaderBackground)),
	}
	return styles.Header.Width(width).Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderFooter(styles *Styles, width int, vs ViewState) string {
	hint := HelpHint
	if vs.StatusMessage != "" {
		hint = vs.StatusMessage
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Help.Width(width).Align(lipgloss.Center).Render(hint),
		styles.Footer.Width(width).Render(FooterText),
	)
}

func (r *Renderer) renderLoading(styles *Styles, vs ViewState) string {
	spin := vs.Spinner
	if spin == "" {
		spin = "⠋"
	}
	return fmt.Sprintf("%s %s", spin, styles.Dim.Render(LoadingText))
}

func (r *Renderer) renderReady(styles *Styles, vs ViewState) string {
	var b strings.Builder

	b.WriteString(r.searchBar.RenderSearchBar(vs.SearchInput, vs.Query, vs.Width))
	b.WriteString("\n")
	b.WriteString(styles.Status.Render(countLine(vs)))
	b.WriteString("\n")

	if vs.VisibleCount == 0 {
		b.WriteString(styles.Info.Render(NoResultsText))
		return b.String()
	}

	for i, user := range vs.Window {
		selected := vs.Offset+i == vs.SelectedIndex
		b.WriteString(r.cards.RenderCard(user, selected, vs.Width))
		if i < len(vs.Window)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func countLine(vs ViewState) string {
	if vs.VisibleCount == 0 {
		return fmt.Sprintf("0 of %d users", vs.TotalCount)
	}
	last := vs.Offset + len(vs.Window)
	if vs.VisibleCount == vs.TotalCount {
		return fmt.Sprintf("%d-%d of %d users", vs.Offset+1, last, vs.TotalCount)
	}
	return fmt.Sprintf("%d-%d of %d matching (%d users)", vs.Offset+1, last, vs.VisibleCount, vs.TotalCount)
}
