package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/henryfm1994/userlist-test/internal/keybinds"
	"github.com/henryfm1994/userlist-test/internal/session"
	"github.com/henryfm1994/userlist-test/internal/source"
)

// Options wires the TUI to its collaborators
type Options struct {
	State    *session.State
	Source   source.Source
	Keybinds *keybinds.Registry // nil means defaults
}

// New creates a new TUI model
func New(opts Options) Model {
	return newModel(opts.State, opts.Source, opts.Keybinds)
}

// Run starts the TUI and blocks until the user quits
func Run(opts Options) error {
	m := New(opts)

	// Pass pointer since Update uses pointer receiver
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
