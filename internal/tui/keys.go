package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/henryfm1994/userlist-test/internal/keybinds"
	"github.com/henryfm1994/userlist-test/internal/types"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case ModeFilter:
		return m.handleFilterKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys while the table has focus
func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok, partial := m.keybinds.MatchMultiKey(keybinds.ContextNormal, msg.String())
	if partial || !ok {
		return nil
	}

	pageSize := m.pageSize()

	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return tea.Quit

	case keybinds.ActionNavigateUp:
		m.cursor.Move(-1, pageSize)
	case keybinds.ActionNavigateDown:
		m.cursor.Move(1, pageSize)
	case keybinds.ActionPageUp:
		m.cursor.Move(-pageSize, pageSize)
	case keybinds.ActionPageDown:
		m.cursor.Move(pageSize, pageSize)
	case keybinds.ActionGoToTop:
		m.cursor.Top(pageSize)
	case keybinds.ActionGoToBottom:
		m.cursor.Bottom(pageSize)

	case keybinds.ActionToggleColors:
		m.state.ToggleColors()
	case keybinds.ActionToggleCountrySort:
		m.toggleCountrySort()
	case keybinds.ActionReset:
		return m.resetList()
	case keybinds.ActionFocusFilter:
		m.mode = ModeFilter
		m.filterInput.SetValue(m.state.CountryFilter())
		m.filterInput.CursorEnd()
		return m.filterInput.Focus()
	case keybinds.ActionClearFilter:
		m.filterInput.SetValue("")
		m.applyFilterInput()

	case keybinds.ActionDeleteRow:
		return m.deleteSelected()
	case keybinds.ActionSortNone:
		m.changeSort(types.SortNone)
	case keybinds.ActionSortCountry:
		m.changeSort(types.SortCountry)
	case keybinds.ActionSortFirstName:
		m.changeSort(types.SortFirstName)
	case keybinds.ActionSortLastName:
		m.changeSort(types.SortLastName)
	case keybinds.ActionCopyEmail:
		return m.copySelectedEmail()

	case keybinds.ActionOpenHelp:
		m.mode = ModeHelp
		m.helpView.GotoTop()
	}

	return nil
}

// handleFilterKeys feeds the country input. The filter follows every edit.
func (m *Model) handleFilterKeys(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.Match(keybinds.ContextFilter, msg.String()); ok {
		switch action {
		case keybinds.ActionQuitForce:
			return tea.Quit
		case keybinds.ActionTextSubmit, keybinds.ActionTextCancel:
			m.filterInput.Blur()
			m.mode = ModeNormal
			return nil
		}
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilterInput()
	return cmd
}

// handleHelpKeys handles keys in the help overlay
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextHelp, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionQuitForce:
		return tea.Quit
	case keybinds.ActionCloseModal:
		m.mode = ModeNormal
	case keybinds.ActionNavigateUp:
		m.helpView.ScrollUp(1)
	case keybinds.ActionNavigateDown:
		m.helpView.ScrollDown(1)
	}

	return nil
}
