package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"userdir/internal/directory"
	"userdir/internal/domain"
	"userdir/internal/ui/input"
	inputtypes "userdir/internal/ui/input/types"
	"userdir/internal/ui/state"
	"userdir/internal/ui/theme"
	"userdir/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	ctx     context.Context
	gateway directory.Gateway
	logger  *slog.Logger

	state *state.AppState // centralized state
	theme *theme.State    // shared by every renderer

	// UI-specific state not in AppState
	width       int
	height      int
	spinner     spinner.Model
	inPagerMode bool // tracks if we're currently in pager mode

	renderer     *views.Renderer
	inputHandler *input.Handler
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates the root model around a shared theme. The fetch started
// by Init runs under ctx.
func NewModel(ctx context.Context, gateway directory.Gateway, th *theme.State, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}
	if th == nil {
		th = theme.New()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		ctx:          ctx,
		gateway:      gateway,
		logger:       logger,
		state:        state.NewAppState(),
		theme:        th,
		spinner:      sp,
		renderer:     views.NewRenderer(th),
		inputHandler: input.New(),
		pager:        NewPagerOps(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// State exposes the application state for inspection
func (m *Model) State() *state.AppState {
	return m.state
}

// Theme exposes the shared theme flag
func (m *Model) Theme() theme.Reader {
	return m.theme
}

// Init starts the one directory fetch of the session
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchUsers())
}

func (m *Model) fetchUsers() tea.Cmd {
	ctx, gw := m.ctx, m.gateway
	return func() tea.Msg {
		users, err := gw.FetchAll(ctx)
		if err != nil {
			return usersFailedMsg{err: err}
		}
		return usersFetchedMsg{users: users}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.state.SetViewportHeight(views.CardCapacity(msg.Height))
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}

		ctx := &input.ModelContext{State: m.state}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case usersFetchedMsg:
		if m.state.Succeed(msg.users) {
			m.logger.Info("directory ready", "users", len(msg.users))
		}
		return m, nil

	case usersFailedMsg:
		if m.state.Fail() {
			m.logger.Error("directory unavailable", "error", msg.err)
		}
		return m, nil

	case spinner.TickMsg:
		// The spinner only runs while loading
		if m.state.Phase != state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case detailsPagerMsg:
		if msg.err != nil {
			m.logger.Warn("details pager failed", "id", string(msg.id), "error", msg.err)
			m.state.StatusMessage = "Could not open details"
			return m, clearStatusAfter(statusTimeout)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil
	}

	return m, nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.state.MoveSelection(-1)
		case "down":
			m.state.MoveSelection(1)
		case "pageup":
			m.state.PageSelection(-1)
		case "pagedown":
			m.state.PageSelection(1)
		case "home":
			m.state.Select(0)
		case "end":
			m.state.Select(len(m.state.Visible) - 1)
		}

	case inputtypes.UpdateQueryAction:
		m.state.SetQuery(a.Query)

	case inputtypes.ClearQueryAction:
		m.state.ClearQuery()

	case inputtypes.ToggleThemeAction:
		m.theme.Toggle()
		m.logger.Debug("theme toggled", "papal", m.theme.Current())

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.OpenDetailsAction:
		if user, ok := m.state.Selected(); ok && m.program != nil {
			return m.showDetails(user.ID, FormatDetails(user))
		}

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// showDetails returns a command that shows one record using the ov pager
func (m *Model) showDetails(id domain.UserID, content string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(content)
		m.program.Send(resumeRenderingMsg{})
		return detailsPagerMsg{id: id, err: err}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return views.LoadingText
	}

	window, offset := m.state.Window()
	vs := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Phase:         m.state.Phase,
		Window:        window,
		Offset:        offset,
		SelectedIndex: m.state.SelectedIndex,
		VisibleCount:  len(m.state.Visible),
		TotalCount:    len(m.state.Users),
		Query:         m.state.Query,
		SearchInput:   m.inputHandler.TextInput().View(),
		ErrorMessage:  m.state.ErrorMessage,
		Spinner:       m.spinner.View(),
		StatusMessage: m.state.StatusMessage,
		ShowHelp:      m.state.ShowHelp,
	}
	return m.renderer.Render(vs)
}
