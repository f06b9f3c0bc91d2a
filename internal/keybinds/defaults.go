package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerNavigationBindings(r)
	registerNormalModeBindings(r)
	registerFilterBindings(r)
	registerHelpBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all modes
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
}

// registerNavigationBindings sets up table row movement
func registerNavigationBindings(r *Registry) {
	r.RegisterMultiple(ContextNormal, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextNormal, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextNormal, "pgup", ActionPageUp)
	r.Register(ContextNormal, "pgdown", ActionPageDown)
	r.RegisterMultiple(ContextNormal, []string{"gg", "home"}, ActionGoToTop)
	r.RegisterMultiple(ContextNormal, []string{"G", "end"}, ActionGoToBottom)
}

// registerNormalModeBindings sets up the header controls and row intents
func registerNormalModeBindings(r *Registry) {
	r.Register(ContextNormal, "q", ActionQuit)
	r.Register(ContextNormal, "c", ActionToggleColors)
	r.Register(ContextNormal, "o", ActionToggleCountrySort)
	r.Register(ContextNormal, "r", ActionReset)
	r.Register(ContextNormal, "/", ActionFocusFilter)
	r.Register(ContextNormal, "esc", ActionClearFilter)
	r.RegisterMultiple(ContextNormal, []string{"d", "delete"}, ActionDeleteRow)
	r.Register(ContextNormal, "1", ActionSortNone)
	r.Register(ContextNormal, "2", ActionSortCountry)
	r.Register(ContextNormal, "3", ActionSortFirstName)
	r.Register(ContextNormal, "4", ActionSortLastName)
	r.Register(ContextNormal, "y", ActionCopyEmail)
	r.Register(ContextNormal, "?", ActionOpenHelp)
}

// registerFilterBindings sets up the country filter input. Every other key
// goes to the text input.
func registerFilterBindings(r *Registry) {
	r.Register(ContextFilter, "enter", ActionTextSubmit)
	r.Register(ContextFilter, "esc", ActionTextCancel)
}

// registerHelpBindings sets up the help overlay
func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"esc", "?", "q"}, ActionCloseModal)
	r.RegisterMultiple(ContextHelp, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextHelp, []string{"down", "j"}, ActionNavigateDown)
}
