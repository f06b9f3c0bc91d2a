package keybinds

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "conflict", "invalid", "warning"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(r.Errors)))
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(r.Warnings)))
		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn.Error()))
		}
	}

	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

func (r *ValidationResult) addError(kind string, context Context, key, msg string) {
	r.Errors = append(r.Errors, ValidationError{Type: kind, Context: context, Key: key, Message: msg})
}

func (r *ValidationResult) addWarning(context Context, key, msg string) {
	r.Warnings = append(r.Warnings, ValidationError{Type: "warning", Context: context, Key: key, Message: msg})
}

// Validator validates keybinding configurations
type Validator struct {
	// reservedKeys are keys that should not be rebound, with their action
	reservedKeys map[string]Action
}

// NewValidator creates a new keybinding validator
func NewValidator() *Validator {
	return &Validator{
		reservedKeys: map[string]Action{
			"ctrl+c": ActionQuitForce, // Force quit should always work
		},
	}
}

// ValidateRegistry validates an entire registry
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	v.checkReservedKeys(registry, result)
	v.checkMultiKeySequences(registry, result)
	v.checkShadowing(registry, result)
	v.checkQuitReachable(registry, result)

	return result
}

// ValidateConfig validates a configuration before applying it
func (v *Validator) ValidateConfig(config *Config) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	for _, context := range Contexts {
		section := config.Sections()[context]
		owner := make(map[string]string)

		for _, actionStr := range sortedKeys(section) {
			if err := ValidateAction(actionStr); err != nil {
				result.addError("invalid", context, "", err.Error())
				continue
			}

			for _, key := range SplitKeys(section[actionStr]) {
				if err := ValidateKey(key); err != nil {
					result.addError("invalid", context, key, err.Error())
					continue
				}
				if prev, ok := owner[key]; ok && prev != actionStr {
					result.addError("conflict", context, key,
						fmt.Sprintf("bound to both %s and %s", prev, actionStr))
					continue
				}
				owner[key] = actionStr
			}
		}
	}

	return result
}

// checkReservedKeys reports reserved keys bound to another action
func (v *Validator) checkReservedKeys(registry *Registry, result *ValidationResult) {
	for _, context := range Contexts {
		for key, action := range registry.bindings[context] {
			if want, ok := v.reservedKeys[key]; ok && action != want {
				result.addError("invalid", context, key,
					fmt.Sprintf("reserved key cannot be rebound to %s", action))
			}
		}
	}
}

// checkMultiKeySequences warns when a single key also starts a sequence,
// since the sequence always wins
func (v *Validator) checkMultiKeySequences(registry *Registry, result *ValidationResult) {
	for _, context := range Contexts {
		bindings := registry.bindings[context]
		for _, key := range sortedKeys(bindings) {
			if !isSequence(key) || bindings[key] == ActionNoOp {
				continue
			}
			_, size := utf8.DecodeRuneInString(key)
			first := key[:size]
			if action, ok := bindings[first]; ok && action != ActionNoOp {
				result.addWarning(context, first,
					fmt.Sprintf("unreachable, starts sequence '%s' (%s)", key, action))
			}
		}
	}
}

// checkShadowing checks for context-specific bindings that shadow global bindings
func (v *Validator) checkShadowing(registry *Registry, result *ValidationResult) {
	globalBindings := registry.bindings[ContextGlobal]
	if globalBindings == nil {
		return
	}

	for _, context := range Contexts {
		if context == ContextGlobal {
			continue
		}

		bindings := registry.bindings[context]
		for _, key := range sortedKeys(bindings) {
			action := bindings[key]
			if globalAction, hasGlobal := globalBindings[key]; hasGlobal && action != globalAction {
				result.addWarning(context, key,
					fmt.Sprintf("shadows global binding (%s -> %s)", globalAction, action))
			}
		}
	}
}

// checkQuitReachable warns when the table view has no way to quit besides ctrl+c
func (v *Validator) checkQuitReachable(registry *Registry, result *ValidationResult) {
	if len(registry.GetBinding(ContextNormal, ActionQuit)) == 0 {
		result.addWarning(ContextNormal, "", "quit is unbound")
	}
}

// FindConflicts finds all conflicting keybindings in a config
func FindConflicts(config *Config) []string {
	validator := NewValidator()
	result := validator.ValidateConfig(config)

	var conflicts []string
	for _, err := range result.Errors {
		if err.Type == "conflict" {
			conflicts = append(conflicts, err.Error())
		}
	}

	return conflicts
}

// ValidateKey checks if a key string is valid
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	for _, mod := range []string{"ctrl+", "alt+", "shift+", "super+"} {
		if key == mod {
			return fmt.Errorf("modifier without key: %s", key)
		}
	}

	return nil
}

// ValidateAction checks if an action string is valid
func ValidateAction(actionStr string) error {
	if actionStr == "" {
		return fmt.Errorf("action cannot be empty")
	}
	if !IsKnownAction(Action(actionStr)) {
		return fmt.Errorf("unknown action: %s", actionStr)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
