package views

import (
	"github.com/charmbracelet/lipgloss"

	"userdir/internal/ui/theme"
)

// Styles contains all the style definitions for one theme variant
type Styles struct {
	Header       lipgloss.Style
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Toggle       lipgloss.Style
	SearchBox    lipgloss.Style
	SearchIcon   lipgloss.Style
	ClearHint    lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	CardHandle   lipgloss.Style
	CardIcon     lipgloss.Style
	CardText     lipgloss.Style
	Info         lipgloss.Style
	Error        lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Footer       lipgloss.Style
	Help         lipgloss.Style
	InfoBox      lipgloss.Style
	Main         lipgloss.Style
}

// NewStyles builds the style set for a palette
func NewStyles(p theme.Palette) *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Background(p.HeaderBackground).
			Foreground(p.HeaderForeground).
			Padding(1, 2).
			Align(lipgloss.Center),
		Title: lipgloss.NewStyle().
			Bold(true).
			Background(p.HeaderBackground).
			Foreground(p.HeaderForeground),
		Subtitle: lipgloss.NewStyle().
			Background(p.HeaderBackground).
			Foreground(p.Subtitle),
		Toggle: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(p.ToggleBackground).
			Foreground(p.ToggleForeground),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.SearchBorder).
			Padding(0, 1),
		SearchIcon: lipgloss.NewStyle().Foreground(p.SearchIcon),
		ClearHint:  lipgloss.NewStyle().Foreground(p.ClearHint).Italic(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.CardBorder).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.CardSelectedBorder).
			Padding(0, 1),
		CardTitle:  lipgloss.NewStyle().Bold(true).Foreground(p.CardTitle),
		CardHandle: lipgloss.NewStyle().Foreground(p.CardHandle),
		CardIcon:   lipgloss.NewStyle().Foreground(p.CardIcon),
		CardText:   lipgloss.NewStyle().Foreground(p.CardText),
		Info: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Info).
			Foreground(p.Info).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Error).
			Foreground(p.Error).
			Padding(0, 1),
		Dim:    lipgloss.NewStyle().Foreground(p.Dim),
		Status: lipgloss.NewStyle().Foreground(p.Dim).Italic(true),
		Footer: lipgloss.NewStyle().
			Background(p.FooterBackground).
			Foreground(p.FooterForeground).
			Align(lipgloss.Center),
		Help: lipgloss.NewStyle().Faint(true),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.CardBorder).
			Padding(1, 2),
		Main: lipgloss.NewStyle().Padding(0, 2),
	}
}

// ForTheme returns the cached style set for the current theme flag
func ForTheme(r theme.Reader) *Styles {
	if r != nil && r.Current() {
		return papalStyles
	}
	return normalStyles
}

var (
	normalStyles = NewStyles(theme.Normal)
	papalStyles  = NewStyles(theme.Papal)
)
