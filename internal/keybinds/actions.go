package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	ContextGlobal Context = "global" // Available everywhere
	ContextNormal Context = "normal" // Table focused
	ContextFilter Context = "filter" // Country filter input focused
	ContextHelp   Context = "help"   // Help overlay
)

// Contexts lists every context in lookup order
var Contexts = []Context{ContextGlobal, ContextNormal, ContextFilter, ContextHelp}

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit application
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	// Navigation actions
	ActionNavigateUp     Action = "navigate_up"       // Move up one row
	ActionNavigateDown   Action = "navigate_down"     // Move down one row
	ActionPageUp         Action = "page_up"           // Move up one page
	ActionPageDown       Action = "page_down"         // Move down one page
	ActionGoToTop        Action = "go_to_top"         // First row
	ActionGoToBottom     Action = "go_to_bottom"      // Last row

	// Header controls
	ActionToggleColors      Action = "toggle_colors"       // Stripe rows
	ActionToggleCountrySort Action = "toggle_country_sort" // Country order on/off
	ActionReset             Action = "reset"               // Restore fetched rows
	ActionFocusFilter       Action = "focus_filter"        // Edit country filter
	ActionClearFilter       Action = "clear_filter"        // Empty country filter

	// Row and column intents
	ActionDeleteRow     Action = "delete_row"      // Delete selected row by email
	ActionSortNone      Action = "sort_none"       // Column order: none
	ActionSortCountry   Action = "sort_country"    // Column order: country
	ActionSortFirstName Action = "sort_first_name" // Column order: first name
	ActionSortLastName  Action = "sort_last_name"  // Column order: last name
	ActionCopyEmail     Action = "copy_email"      // Copy selected email

	// Filter input
	ActionTextSubmit Action = "text_submit" // Leave input, keep text
	ActionTextCancel Action = "text_cancel" // Leave input

	// Modal actions
	ActionOpenHelp   Action = "open_help"   // Help overlay
	ActionCloseModal Action = "close_modal" // Close overlay

	ActionNoOp Action = "noop" // No operation (unbinds a key)
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

var actionInfos = map[Action]ActionInfo{
	ActionQuit:              {ActionQuit, "Quit", "Global"},
	ActionQuitForce:         {ActionQuitForce, "Force quit", "Global"},
	ActionNavigateUp:        {ActionNavigateUp, "Move up", "Navigation"},
	ActionNavigateDown:      {ActionNavigateDown, "Move down", "Navigation"},
	ActionPageUp:            {ActionPageUp, "Page up", "Navigation"},
	ActionPageDown:          {ActionPageDown, "Page down", "Navigation"},
	ActionGoToTop:           {ActionGoToTop, "First row", "Navigation"},
	ActionGoToBottom:        {ActionGoToBottom, "Last row", "Navigation"},
	ActionToggleColors:      {ActionToggleColors, "Color rows", "Table"},
	ActionToggleCountrySort: {ActionToggleCountrySort, "Order by country / no order", "Table"},
	ActionReset:             {ActionReset, "Reset table", "Table"},
	ActionFocusFilter:       {ActionFocusFilter, "Filter by country", "Table"},
	ActionClearFilter:       {ActionClearFilter, "Clear country filter", "Table"},
	ActionDeleteRow:         {ActionDeleteRow, "Delete row", "Rows"},
	ActionSortNone:          {ActionSortNone, "Sort: none", "Rows"},
	ActionSortCountry:       {ActionSortCountry, "Sort: country", "Rows"},
	ActionSortFirstName:     {ActionSortFirstName, "Sort: first name", "Rows"},
	ActionSortLastName:      {ActionSortLastName, "Sort: last name", "Rows"},
	ActionCopyEmail:         {ActionCopyEmail, "Copy email", "Rows"},
	ActionTextSubmit:        {ActionTextSubmit, "Apply filter", "Filter"},
	ActionTextCancel:        {ActionTextCancel, "Leave filter", "Filter"},
	ActionOpenHelp:          {ActionOpenHelp, "Help", "Information"},
	ActionCloseModal:        {ActionCloseModal, "Close", "Information"},
	ActionNoOp:              {ActionNoOp, "Unbound", "Other"},
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	if info, ok := actionInfos[action]; ok {
		return info
	}
	return ActionInfo{action, string(action), "Unknown"}
}

// IsKnownAction reports whether action is defined
func IsKnownAction(action Action) bool {
	_, ok := actionInfos[action]
	return ok
}

// IsKnownContext reports whether context is defined
func IsKnownContext(context Context) bool {
	for _, c := range Contexts {
		if c == context {
			return true
		}
	}
	return false
}
