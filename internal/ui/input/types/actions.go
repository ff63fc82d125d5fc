package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Query actions
type UpdateQueryAction struct {
	Query string
}

func (a UpdateQueryAction) Type() string { return "update_query" }

type ClearQueryAction struct{}

func (a ClearQueryAction) Type() string { return "clear_query" }

// Presentation actions
type ToggleThemeAction struct{}

func (a ToggleThemeAction) Type() string { return "toggle_theme" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenDetailsAction struct{}

func (a OpenDetailsAction) Type() string { return "open_details" }

// QuitAction ends the program, from 'q' or Ctrl+C alike
type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
