package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"userdir/internal/ui/theme"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	theme theme.Reader
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(t theme.Reader) *PopupRenderer {
	return &PopupRenderer{theme: t}
}

// RenderPopupOverlay draws popupContent centered over a dimmed copy of mainContent
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	dim := ForTheme(pr.theme).Dim
	base := strings.Split(mainContent, "\n")
	for len(base) < height {
		base = append(base, "")
	}
	for i, line := range base {
		base[i] = dim.Render(ansi.Strip(line))
	}

	for i, popupLine := range strings.Split(styledPopup, "\n") {
		row := y + i
		if row >= len(base) {
			break
		}
		base[row] = spliceLine(base[row], popupLine, x, width)
	}

	return strings.Join(base, "\n")
}

// spliceLine replaces the cells of line starting at column x with overlay
func spliceLine(line, overlay string, x, width int) string {
	left := ansi.Truncate(line, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	end := x + ansi.StringWidth(overlay)
	right := ""
	if end < width {
		right = ansi.TruncateLeft(line, end, "")
	}
	return left + overlay + right
}
