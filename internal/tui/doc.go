/*
Package tui implements the terminal user interface for the random user table.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: view state around a *session.State
  - Update: key presses become session transitions
  - View: renders the derived list

# Key Components

  - model.go: Model, messages and Update/View
  - keys.go: keyboard routing through the keybinds registry
  - actions.go: the fetch command and the transitions with side effects
  - render.go: header controls, table, status bar and help overlay
  - row_state.go: RowCursor, the selected row and scroll offset

# Modes

  - ModeNormal: the table has focus
  - ModeFilter: the country input has focus; every edit updates the filter
  - ModeHelp: help overlay

# Loading

Init returns a command that fetches once. The result arrives as a
usersLoadedMsg. Until then the table renders as an empty list. A failed
fetch is logged and the table stays empty; there is no retry.

# Example Usage

	state := session.New(cfg.Language())
	src := source.NewHTTPSource(cfg.RequestURL(), cfg.Timeout)

	if err := tui.Run(tui.Options{State: state, Source: src}); err != nil {
		return err
	}
*/
package tui
