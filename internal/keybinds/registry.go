package keybinds

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Binding represents a keybinding mapping
type Binding struct {
	Key     string
	Action  Action
	Context Context
}

// Registry manages keybinding mappings and matching
type Registry struct {
	// bindings maps context -> key -> action
	bindings map[Context]map[string]Action

	// pending tracks the first key of a two-key sequence (like 'gg')
	pending map[Context]string
}

// NewRegistry creates a new keybinding registry
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[Context]map[string]Action),
		pending:  make(map[Context]string),
	}
}

// Register adds a keybinding to the registry
func (r *Registry) Register(context Context, key string, action Action) {
	if r.bindings[context] == nil {
		r.bindings[context] = make(map[string]Action)
	}
	r.bindings[context][key] = action
}

// RegisterMultiple registers multiple keybindings for the same action
func (r *Registry) RegisterMultiple(context Context, keys []string, action Action) {
	for _, key := range keys {
		r.Register(context, key, action)
	}
}

// Unbind removes every key bound to action in context
func (r *Registry) Unbind(context Context, action Action) {
	for key, act := range r.bindings[context] {
		if act == action {
			delete(r.bindings[context], key)
		}
	}
}

// Match attempts to match a key to an action in the given context.
// The specific context wins over global. A key bound to noop matches nothing.
func (r *Registry) Match(context Context, key string) (Action, bool) {
	if action, ok := r.bindings[context][key]; ok {
		return action, action != ActionNoOp
	}
	if action, ok := r.bindings[ContextGlobal][key]; ok {
		return action, action != ActionNoOp
	}
	return "", false
}

// MatchMultiKey handles two-key sequences like 'gg'.
// Returns the action, whether it's a complete match, and whether it's a partial match.
func (r *Registry) MatchMultiKey(context Context, key string) (Action, bool, bool) {
	if prev, ok := r.pending[context]; ok {
		delete(r.pending, context)
		if action, ok := r.Match(context, prev+key); ok {
			return action, true, false
		}
		// Broken sequence: the second key still counts on its own
	}

	if r.startsSequence(context, key) {
		r.pending[context] = key
		return "", false, true
	}

	action, ok := r.Match(context, key)
	return action, ok, false
}

// ClearMultiKeyState clears any pending multi-key state for a context
func (r *Registry) ClearMultiKeyState(context Context) {
	delete(r.pending, context)
}

// Pending returns the first key of an unfinished sequence
func (r *Registry) Pending(context Context) string {
	return r.pending[context]
}

func (r *Registry) startsSequence(context Context, key string) bool {
	if utf8.RuneCountInString(key) != 1 {
		return false
	}
	for _, ctx := range []Context{context, ContextGlobal} {
		for bound, action := range r.bindings[ctx] {
			if action != ActionNoOp && isSequence(bound) && strings.HasPrefix(bound, key) {
				return true
			}
		}
	}
	return false
}

// isSequence reports whether key is two plain characters typed in a row
func isSequence(key string) bool {
	if utf8.RuneCountInString(key) != 2 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(key)
	return first != 'f' || !isDigits(key[1:])
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

// GetBinding returns the key(s) bound to an action in a context, sorted.
// Falls back to global when the context has none.
func (r *Registry) GetBinding(context Context, action Action) []string {
	keys := r.keysFor(context, action)
	if len(keys) == 0 && context != ContextGlobal {
		keys = r.keysFor(ContextGlobal, action)
	}
	return keys
}

func (r *Registry) keysFor(context Context, action Action) []string {
	var keys []string
	for key, act := range r.bindings[context] {
		if act == action {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// GetBindingString returns a human-readable string of keys bound to an action
func (r *Registry) GetBindingString(context Context, action Action) string {
	keys := r.GetBinding(context, action)
	if len(keys) == 0 {
		return "unbound"
	}
	return strings.Join(keys, ", ")
}

// ListBindings returns the bindings for a context followed by the global
// ones, sorted by key within each group
func (r *Registry) ListBindings(context Context) []Binding {
	bindings := r.listContext(context)
	if context != ContextGlobal {
		bindings = append(bindings, r.listContext(ContextGlobal)...)
	}
	return bindings
}

func (r *Registry) listContext(context Context) []Binding {
	keys := make([]string, 0, len(r.bindings[context]))
	for key := range r.bindings[context] {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	bindings := make([]Binding, 0, len(keys))
	for _, key := range keys {
		bindings = append(bindings, Binding{Key: key, Action: r.bindings[context][key], Context: context})
	}
	return bindings
}

// HasBinding checks if a key is bound in a context
func (r *Registry) HasBinding(context Context, key string) bool {
	if _, ok := r.bindings[context][key]; ok {
		return true
	}
	_, ok := r.bindings[ContextGlobal][key]
	return ok
}
