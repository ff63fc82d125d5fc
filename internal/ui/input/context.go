package input

import (
	"userdir/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// IsReady reports whether the directory has loaded
func (c *ModelContext) IsReady() bool {
	return c.State.Phase == state.Ready
}

// HasQuery reports whether a search query is active
func (c *ModelContext) HasQuery() bool {
	return c.State.Query != ""
}

// HasSelection reports whether a card is under the cursor
func (c *ModelContext) HasSelection() bool {
	_, ok := c.State.Selected()
	return ok
}

// ShowingHelp reports whether the help overlay is open
func (c *ModelContext) ShowingHelp() bool {
	return c.State.ShowHelp
}
