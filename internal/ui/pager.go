package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"userdir/internal/domain"
)

var errNoProgram = errors.New("program not set")

// PagerOps shows long-form content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show hands the terminal to ov until the user quits it
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return errNoProgram
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("release terminal: %w", err)
	}
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("open pager: %w", err)
	}

	// Do not write on exit, it would leave text over our screen
	config := oviewer.NewConfig()
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// FormatDetails renders every field of one record for the pager
func FormatDetails(u domain.User) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")).MarginTop(1)
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	var b strings.Builder
	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(fmt.Sprintf("%-10s", label)), value))
	}

	b.WriteString(titleStyle.Render(u.Name))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("@%s  (id %s)\n", u.Username, u.ID))

	b.WriteString(sectionStyle.Render("Contact"))
	b.WriteString("\n")
	field("Email", u.Email)
	field("Phone", u.Phone)
	field("Website", u.Website)

	if !u.Address.IsZero() {
		b.WriteString(sectionStyle.Render("Address"))
		b.WriteString("\n")
		field("Street", strings.TrimSpace(u.Address.Street+" "+u.Address.Suite))
		field("City", u.Address.City)
		field("Zipcode", u.Address.Zipcode)
	}

	if u.Company.Name != "" {
		b.WriteString(sectionStyle.Render("Company"))
		b.WriteString("\n")
		field("Name", u.Company.Name)
		field("Motto", u.Company.CatchPhrase)
		field("Business", u.Company.BS)
	}

	return b.String()
}
