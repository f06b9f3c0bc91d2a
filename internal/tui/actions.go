package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/henryfm1994/userlist-test/internal/logger"
	"github.com/henryfm1994/userlist-test/internal/source"
	"github.com/henryfm1994/userlist-test/internal/types"
)

// fetchUsers runs the fetch off the event loop
func (m *Model) fetchUsers() tea.Cmd {
	src := m.src
	return func() tea.Msg {
		result, err := src.Fetch(context.Background())
		return usersLoadedMsg{result: result, err: err}
	}
}

// handleUsersLoaded populates the session from the first successful fetch.
// A failed fetch is only logged; the table stays empty.
func (m *Model) handleUsersLoaded(msg usersLoadedMsg) {
	if msg.err != nil {
		logger.Logger.Error().Err(msg.err).Msg("failed to fetch users")
		return
	}

	if !m.state.Load(msg.result.Users) {
		logger.Logger.Debug().Msg("ignoring fetch result, list already loaded")
		return
	}

	logger.Logger.Info().
		Int("users", len(msg.result.Users)).
		Str("duration", source.FormatDuration(msg.result.Duration)).
		Str("size", source.FormatSize(msg.result.ResponseSize)).
		Msg("users loaded")

	m.refresh()
}

// changeSort applies a column sort intent
func (m *Model) changeSort(mode types.SortMode) {
	m.state.ChangeSort(mode)
	m.refresh()
	m.cursor.Top(m.pageSize())
}

// toggleCountrySort flips between country order and no order
func (m *Model) toggleCountrySort() {
	m.state.ToggleSortByCountry()
	m.refresh()
	m.cursor.Top(m.pageSize())
}

// resetList restores the rows captured at load
func (m *Model) resetList() tea.Cmd {
	m.state.Reset()
	m.refresh()
	working, _ := m.state.Counts()
	return m.setStatus(fmt.Sprintf("Restored %d rows", working))
}

// deleteSelected removes every row sharing the selected row's email
func (m *Model) deleteSelected() tea.Cmd {
	u, ok := m.selectedUser()
	if !ok {
		return nil
	}

	removed := m.state.Delete(u.Email)
	m.refresh()

	logger.Logger.Debug().Str("email", u.Email).Int("removed", removed).Msg("rows deleted")

	if removed > 1 {
		return m.setStatus(fmt.Sprintf("Deleted %d rows for %s", removed, u.Email))
	}
	return m.setStatus(fmt.Sprintf("Deleted %s", u.Email))
}

// copySelectedEmail puts the selected row's email on the clipboard
func (m *Model) copySelectedEmail() tea.Cmd {
	u, ok := m.selectedUser()
	if !ok {
		return nil
	}

	if err := m.copyToClipboard(u.Email); err != nil {
		logger.Logger.Warn().Err(err).Msg("failed to copy to clipboard")
		return m.setStatus("Clipboard unavailable")
	}
	return m.setStatus(fmt.Sprintf("Copied %s", u.Email))
}

// applyFilterInput pushes the input text into the session
func (m *Model) applyFilterInput() {
	if m.filterInput.Value() == m.state.CountryFilter() {
		return
	}
	m.state.SetCountryFilter(m.filterInput.Value())
	m.refresh()
	m.cursor.Top(m.pageSize())
}

// setStatus shows msg in the status bar until StatusTimeout passes
func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
