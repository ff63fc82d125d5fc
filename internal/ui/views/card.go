package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"userdir/internal/domain"
	"userdir/internal/ui/theme"
)

// CardHeight is the number of terminal rows one card occupies, borders included
const CardHeight = 8

const (
	maxCardWidth = 76
	minCardWidth = 24
)

// Card icons, one per contact line
const (
	iconEmail   = "✉"
	iconPhone   = "☎"
	iconWebsite = "◍"
	iconCompany = "▣"
)

// CardRenderer renders one directory record
type CardRenderer struct {
	theme theme.Reader
}

// NewCardRenderer creates a card renderer reading the shared theme flag
func NewCardRenderer(t theme.Reader) *CardRenderer {
	return &CardRenderer{theme: t}
}

// CardWidth returns the outer card width for a terminal width
func CardWidth(termWidth int) int {
	w := termWidth - 4 // main container padding
	if w > maxCardWidth {
		w = maxCardWidth
	}
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

// RenderCard renders a user as a bordered card of exactly CardHeight rows
func (r *CardRenderer) RenderCard(user domain.User, selected bool, termWidth int) string {
	styles := ForTheme(r.theme)

	box := styles.Card
	if selected {
		box = styles.CardSelected
	}
	width := CardWidth(termWidth)
	// Border and horizontal padding take four columns
	inner := width - 4
	line := lipgloss.NewStyle().MaxWidth(inner)

	rows := []string{
		line.Render(styles.CardTitle.Render(user.Name)),
		line.Render(styles.CardHandle.Render("@" + user.Username)),
		line.Render(r.contact(styles, iconEmail, user.Email)),
		line.Render(r.contact(styles, iconPhone, user.Phone)),
		line.Render(r.contact(styles, iconWebsite, user.Website)),
		line.Render(r.contact(styles, iconCompany, user.Company.Name)),
	}

	return box.Width(width - 2).Render(strings.Join(rows, "\n"))
}

func (r *CardRenderer) contact(styles *Styles, icon, value string) string {
	return styles.CardIcon.Render(icon) + " " + styles.CardText.Render(value)
}
