package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/henryfm1994/userlist-test/internal/keybinds"
	"github.com/henryfm1994/userlist-test/internal/session"
	"github.com/henryfm1994/userlist-test/internal/source"
	"github.com/henryfm1994/userlist-test/internal/types"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota // Table focused
	ModeFilter             // Country filter input focused
	ModeHelp               // Help overlay
)

// Model represents the TUI state
type Model struct {
	// Core state
	state    *session.State
	src      source.Source
	keybinds *keybinds.Registry
	mode     Mode

	// Table
	cursor *RowCursor
	rows   []types.User // Derived list as last rendered

	// Inputs and overlays
	filterInput textinput.Model
	helpView    viewport.Model

	// UI state
	width     int
	height    int
	statusMsg string

	copyToClipboard func(string) error
}

// usersLoadedMsg carries the outcome of the initial fetch
type usersLoadedMsg struct {
	result *source.Result
	err    error
}

type clearStatusMsg struct{}

func newFilterInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "Country: "
	ti.Placeholder = "filter by country"
	ti.CharLimit = FilterCharLimit
	ti.Width = FilterWidth
	return ti
}

func newModel(state *session.State, src source.Source, registry *keybinds.Registry) Model {
	if registry == nil {
		registry = keybinds.NewDefaultRegistry()
	}

	m := Model{
		state:           state,
		src:             src,
		keybinds:        registry,
		mode:            ModeNormal,
		cursor:          NewRowCursor(),
		rows:            []types.User{},
		filterInput:     newFilterInput(),
		helpView:        viewport.New(80, 20),
		copyToClipboard: clipboard.WriteAll,
	}
	m.updateHelpView()
	m.refresh()
	return m
}

// Init starts the one and only fetch
func (m *Model) Init() tea.Cmd {
	if m.src == nil {
		return nil
	}
	return m.fetchUsers()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewport()
		m.refresh()

	case usersLoadedMsg:
		m.handleUsersLoaded(msg)

	case clearStatusMsg:
		m.statusMsg = ""

	default:
		// Cursor blink and friends
		if m.mode == ModeFilter {
			m.filterInput, cmd = m.filterInput.Update(msg)
		}
	}

	return m, cmd
}

func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.mode {
	case ModeHelp:
		return m.renderHelp()
	default:
		return m.renderMain()
	}
}

// refresh recomputes the derived list and keeps the cursor in range.
// Called after every state transition.
func (m *Model) refresh() {
	m.rows = m.state.Derived()
	m.cursor.SetCount(len(m.rows), m.pageSize())
}

// selectedUser returns the highlighted row, if any
func (m *Model) selectedUser() (types.User, bool) {
	if len(m.rows) == 0 {
		return types.User{}, false
	}
	idx := m.cursor.Index()
	if idx < 0 || idx >= len(m.rows) {
		return types.User{}, false
	}
	return m.rows[idx], true
}
