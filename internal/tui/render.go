package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/henryfm1994/userlist-test/internal/keybinds"
	"github.com/henryfm1994/userlist-test/internal/types"
	"github.com/mattn/go-runewidth"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorBlue   = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#0000ff"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}

	// Row stripes when colors are on
	colorStripeEven = lipgloss.AdaptiveColor{Light: "#e8f0fe", Dark: "#1f2a44"}
	colorStripeOdd  = lipgloss.AdaptiveColor{Light: "#fdf1e4", Dark: "#3b2a1a"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleButton = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(colorGray)

	styleButtonActive = styleButton.
				Foreground(colorGreen).
				Bold(true)

	styleStripeEven = lipgloss.NewStyle().Background(colorStripeEven)
	styleStripeOdd  = lipgloss.NewStyle().Background(colorStripeOdd)
)

// SortButtonLabel is the country toggle caption: it names what pressing it does
func SortButtonLabel(mode types.SortMode) string {
	if mode == types.SortCountry {
		return "No order"
	}
	return "Order by country"
}

// pageSize is the number of table rows that fit on screen
func (m *Model) pageSize() int {
	if m.height == 0 {
		return DefaultPageSize
	}
	size := m.height - HeaderLines - TableHeadLines - StatusBarLines
	if size < 1 {
		size = 1
	}
	return size
}

// renderMain renders the controls, the table and the status bar
func (m *Model) renderMain() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderControls(),
		m.renderFilterLine(),
		"",
		m.renderTable(),
		m.renderStatusBar(),
	)
}

// renderControls renders the header buttons
func (m *Model) renderControls() string {
	colors := styleButton
	if m.state.ColorsEnabled() {
		colors = styleButtonActive
	}

	order := styleButton
	if m.state.SortMode() == types.SortCountry {
		order = styleButtonActive
	}

	key := func(action keybinds.Action) string {
		return styleSubtle.Render("[" + m.keybinds.GetBindingString(keybinds.ContextNormal, action) + "]")
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		colors.Render(key(keybinds.ActionToggleColors)+" Color rows"),
		order.Render(key(keybinds.ActionToggleCountrySort)+" "+SortButtonLabel(m.state.SortMode())),
		styleButton.Render(key(keybinds.ActionReset)+" Reset"),
	)
}

// renderFilterLine renders the country filter input or its current value
func (m *Model) renderFilterLine() string {
	if m.mode == ModeFilter {
		return m.filterInput.View()
	}

	value := m.state.CountryFilter()
	hint := styleSubtle.Render(fmt.Sprintf(" (%s to edit)", m.keybinds.GetBindingString(keybinds.ContextNormal, keybinds.ActionFocusFilter)))
	if value == "" {
		return m.filterInput.Prompt + styleSubtle.Render(m.filterInput.Placeholder) + hint
	}
	return m.filterInput.Prompt + styleWarning.Render(value) + hint
}

// columnWidths splits the terminal width between the four columns
func (m *Model) columnWidths() (first, last, country, email int) {
	first, last, country = ColumnFirstWidth, ColumnLastWidth, ColumnCountryWidth
	email = m.width - first - last - country - 4*ColumnGap
	if email < ColumnMinEmail {
		email = ColumnMinEmail
	}
	return first, last, country, email
}

// cell pads or truncates s to exactly width cells
func cell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

func (m *Model) formatRow(cols [4]string) string {
	first, last, country, email := m.columnWidths()
	gap := strings.Repeat(" ", ColumnGap)
	return gap + cell(cols[0], first) + gap + cell(cols[1], last) + gap +
		cell(cols[2], country) + gap + cell(cols[3], email)
}

// columnTitle marks the active sort column
func (m *Model) columnTitle(title string, mode types.SortMode, action keybinds.Action) string {
	binding := m.keybinds.GetBindingString(keybinds.ContextNormal, action)
	if m.state.SortMode() == mode {
		return fmt.Sprintf("%s ▲ [%s]", title, binding)
	}
	return fmt.Sprintf("%s [%s]", title, binding)
}

// renderTable renders the visible slice of the derived list
func (m *Model) renderTable() string {
	var lines []string

	head := m.formatRow([4]string{
		m.columnTitle("First", types.SortFirstName, keybinds.ActionSortFirstName),
		m.columnTitle("Last", types.SortLastName, keybinds.ActionSortLastName),
		m.columnTitle("Country", types.SortCountry, keybinds.ActionSortCountry),
		"Email",
	})
	lines = append(lines, styleTitle.Render(head))
	lines = append(lines, styleSubtle.Render(strings.Repeat("─", runewidth.StringWidth(head))))

	pageSize := m.pageSize()
	switch {
	case len(m.rows) == 0:
		lines = append(lines, styleSubtle.Render("  No users"))
	default:
		colors := m.state.ColorsEnabled()
		selected := m.cursor.Index()
		offset := m.cursor.Offset()
		end := min(offset+pageSize, len(m.rows))

		for i := offset; i < end; i++ {
			u := m.rows[i]
			row := m.formatRow([4]string{u.Name.First, u.Name.Last, u.Location.Country, u.Email})

			switch {
			case i == selected && m.mode == ModeNormal:
				row = styleSelected.Render(row)
			case colors && i%2 == 0:
				row = styleStripeEven.Render(row)
			case colors:
				row = styleStripeOdd.Render(row)
			}
			lines = append(lines, row)
		}
	}

	// Keep the status bar pinned to the bottom
	for len(lines) < pageSize+TableHeadLines {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// renderStatusBar renders the status bar at the bottom
func (m *Model) renderStatusBar() string {
	working, original := m.state.Counts()
	left := fmt.Sprintf("%d shown | %d/%d rows | sort: %s", len(m.rows), working, original, m.state.SortMode().Label())

	right := ""
	switch {
	case m.statusMsg != "":
		right = styleSuccess.Render(m.statusMsg)
	case m.mode == ModeNormal && m.keybinds.Pending(keybinds.ContextNormal) != "":
		right = styleWarning.Render(m.keybinds.Pending(keybinds.ContextNormal) + "-")
	case m.mode == ModeFilter:
		right = styleSubtle.Render("enter/esc: done")
	default:
		right = styleSubtle.Render(fmt.Sprintf("%s for help | %s to quit",
			m.keybinds.GetBindingString(keybinds.ContextNormal, keybinds.ActionOpenHelp),
			m.keybinds.GetBindingString(keybinds.ContextNormal, keybinds.ActionQuit)))
	}

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return left + strings.Repeat(" ", spacing) + right
}

// updateViewport resizes the help viewport
func (m *Model) updateViewport() {
	m.helpView.Width = m.width - ModalWidthMargin - 4
	m.helpView.Height = m.height - ModalHeightMargin - 6
	if m.helpView.Height < 1 {
		m.helpView.Height = 1
	}
}

// helpSections lists the actions shown in the help overlay, in order
var helpSections = []struct {
	title   string
	context keybinds.Context
	actions []keybinds.Action
}{
	{"TABLE", keybinds.ContextNormal, []keybinds.Action{
		keybinds.ActionToggleColors,
		keybinds.ActionToggleCountrySort,
		keybinds.ActionReset,
		keybinds.ActionFocusFilter,
		keybinds.ActionClearFilter,
	}},
	{"ROWS", keybinds.ContextNormal, []keybinds.Action{
		keybinds.ActionDeleteRow,
		keybinds.ActionCopyEmail,
		keybinds.ActionSortNone,
		keybinds.ActionSortCountry,
		keybinds.ActionSortFirstName,
		keybinds.ActionSortLastName,
	}},
	{"NAVIGATION", keybinds.ContextNormal, []keybinds.Action{
		keybinds.ActionNavigateUp,
		keybinds.ActionNavigateDown,
		keybinds.ActionPageUp,
		keybinds.ActionPageDown,
		keybinds.ActionGoToTop,
		keybinds.ActionGoToBottom,
	}},
	{"COUNTRY FILTER", keybinds.ContextFilter, []keybinds.Action{
		keybinds.ActionTextSubmit,
		keybinds.ActionTextCancel,
	}},
	{"OTHER", keybinds.ContextNormal, []keybinds.Action{
		keybinds.ActionOpenHelp,
		keybinds.ActionQuit,
		keybinds.ActionQuitForce,
	}},
}

// updateHelpView builds the help text from the active bindings
func (m *Model) updateHelpView() {
	var sb strings.Builder
	sb.WriteString("Random users - Keyboard Shortcuts\n")

	for _, section := range helpSections {
		sb.WriteString("\n" + section.title + "\n")
		for _, action := range section.actions {
			keys := m.keybinds.GetBindingString(section.context, action)
			info := keybinds.GetActionInfo(action)
			sb.WriteString(fmt.Sprintf("  %s %s\n", cell(keys, 14), info.Description))
		}
	}

	sb.WriteString("\nThe country filter matches any part of the country name, ignoring case.\n")
	sb.WriteString("Deleting a row removes every row with the same email.")

	m.helpView.SetContent(sb.String())
}

// renderHelp renders the help screen
func (m *Model) renderHelp() string {
	title := styleTitle.Render("Keyboard Shortcuts")
	footer := fmt.Sprintf("↑/↓ j/k: scroll | %s: close",
		m.keybinds.GetBindingString(keybinds.ContextHelp, keybinds.ActionCloseModal))

	fullContent := title + "\n\n" + m.helpView.View() + "\n\n" + styleSubtle.Render(footer)

	helpView := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(m.width - ModalWidthMargin).
		Height(m.height - ModalHeightMargin).
		Padding(1, 2).
		Render(fullContent)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpView,
	)
}
