// Package theme holds the session's visual theme flag and the two
// palettes it selects between.
//
// A single State is created per program and passed to every renderer
// that needs it. The flag starts false (normal theme) and is never
// persisted.
package theme

import "github.com/charmbracelet/lipgloss"

// State is the shared theme flag. The zero value is the normal theme.
type State struct {
	papal bool
}

// New returns a State in the normal theme
func New() *State {
	return &State{}
}

// Current reports whether the alternate (papal) theme is active
func (s *State) Current() bool {
	return s.papal
}

// Toggle flips the flag
func (s *State) Toggle() {
	s.papal = !s.papal
}

// Reader is the read-only view presentation units get
type Reader interface {
	Current() bool
}

// Palette is the color set for one visual variant. Colors are ANSI
// 256-color codes.
type Palette struct {
	Name string

	HeaderBackground lipgloss.Color
	HeaderForeground lipgloss.Color
	Subtitle         lipgloss.Color
	ToggleForeground lipgloss.Color
	ToggleBackground lipgloss.Color

	SearchBorder lipgloss.Color
	SearchIcon   lipgloss.Color
	ClearHint    lipgloss.Color

	CardBorder         lipgloss.Color
	CardSelectedBorder lipgloss.Color
	CardTitle          lipgloss.Color
	CardHandle         lipgloss.Color
	CardIcon           lipgloss.Color
	CardText           lipgloss.Color

	Info  lipgloss.Color
	Error lipgloss.Color
	Dim   lipgloss.Color

	FooterBackground lipgloss.Color
	FooterForeground lipgloss.Color
}

// Normal mirrors the default blue header look
var Normal = Palette{
	Name:               "normal",
	HeaderBackground:   lipgloss.Color("25"),  // blue
	HeaderForeground:   lipgloss.Color("231"), // white
	Subtitle:           lipgloss.Color("153"),
	ToggleForeground:   lipgloss.Color("16"),
	ToggleBackground:   lipgloss.Color("214"), // yellow button
	SearchBorder:       lipgloss.Color("241"),
	SearchIcon:         lipgloss.Color("245"),
	ClearHint:          lipgloss.Color("245"),
	CardBorder:         lipgloss.Color("240"),
	CardSelectedBorder: lipgloss.Color("39"),
	CardTitle:          lipgloss.Color("252"),
	CardHandle:         lipgloss.Color("244"),
	CardIcon:           lipgloss.Color("245"),
	CardText:           lipgloss.Color("250"),
	Info:               lipgloss.Color("39"),
	Error:              lipgloss.Color("203"), // red
	Dim:                lipgloss.Color("241"),
	FooterBackground:   lipgloss.Color("236"),
	FooterForeground:   lipgloss.Color("250"),
}

// Papal is the gold/yellow alternate look
var Papal = Palette{
	Name:               "papal",
	HeaderBackground:   lipgloss.Color("220"), // gold
	HeaderForeground:   lipgloss.Color("16"),  // black
	Subtitle:           lipgloss.Color("94"),
	ToggleForeground:   lipgloss.Color("16"),
	ToggleBackground:   lipgloss.Color("231"), // light button
	SearchBorder:       lipgloss.Color("214"),
	SearchIcon:         lipgloss.Color("178"),
	ClearHint:          lipgloss.Color("214"),
	CardBorder:         lipgloss.Color("178"),
	CardSelectedBorder: lipgloss.Color("226"),
	CardTitle:          lipgloss.Color("229"),
	CardHandle:         lipgloss.Color("180"),
	CardIcon:           lipgloss.Color("214"), // warning-colored icons
	CardText:           lipgloss.Color("230"),
	Info:               lipgloss.Color("220"),
	Error:              lipgloss.Color("203"),
	Dim:                lipgloss.Color("137"),
	FooterBackground:   lipgloss.Color("58"),
	FooterForeground:   lipgloss.Color("229"),
}

// For returns the palette selected by the flag
func For(r Reader) Palette {
	if r != nil && r.Current() {
		return Papal
	}
	return Normal
}

// ToggleLabel is the caption of the theme toggle control. It names the
// theme the toggle switches to.
func ToggleLabel(r Reader) string {
	if r != nil && r.Current() {
		return "Normal mode"
	}
	return "Papal mode"
}
