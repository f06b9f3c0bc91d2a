package keybinds

import (
	"strings"
	"testing"
)

func TestNewValidator(t *testing.T) {
	v := NewValidator()

	if v == nil {
		t.Fatal("NewValidator returned nil")
	}

	if v.reservedKeys["ctrl+c"] != ActionQuitForce {
		t.Error("Expected ctrl+c to be reserved for quit_force")
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{
			name: "conflict error",
			err: ValidationError{
				Type:    "conflict",
				Context: ContextNormal,
				Key:     "q",
				Message: "bound to both quit and reset",
			},
			expected: "[conflict] q in context 'normal': bound to both quit and reset",
		},
		{
			name: "invalid error",
			err: ValidationError{
				Type:    "invalid",
				Context: ContextGlobal,
				Key:     "",
				Message: "empty key",
			},
			expected: "[invalid]  in context 'global': empty key",
		},
		{
			name: "warning",
			err: ValidationError{
				Type:    "warning",
				Context: ContextFilter,
				Key:     "ctrl+c",
				Message: "shadows global binding",
			},
			expected: "[warning] ctrl+c in context 'filter': shadows global binding",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValidationResult_String(t *testing.T) {
	empty := &ValidationResult{}
	if got := empty.String(); got != "No issues found" {
		t.Errorf("String() = %q, want %q", got, "No issues found")
	}

	mixed := &ValidationResult{
		Errors:   []ValidationError{{Type: "conflict", Context: ContextNormal, Key: "q", Message: "duplicate"}},
		Warnings: []ValidationError{{Type: "warning", Context: ContextHelp, Key: "q", Message: "shadows"}},
	}
	got := mixed.String()
	for _, want := range []string{"Errors (1):", "Warnings (1):", "duplicate", "shadows"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() missing %q in %q", want, got)
		}
	}
	if !mixed.HasErrors() || !mixed.HasWarnings() {
		t.Error("Expected both errors and warnings")
	}
}

func TestCheckReservedKeys(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(*Registry)
		wantErrors int
	}{
		{
			name:       "ctrl+c bound correctly",
			setup:      func(r *Registry) { r.Register(ContextGlobal, "ctrl+c", ActionQuitForce) },
			wantErrors: 0,
		},
		{
			name:       "ctrl+c rebound globally",
			setup:      func(r *Registry) { r.Register(ContextGlobal, "ctrl+c", ActionReset) },
			wantErrors: 1,
		},
		{
			name:       "ctrl+c rebound in context",
			setup:      func(r *Registry) { r.Register(ContextFilter, "ctrl+c", ActionTextCancel) },
			wantErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			tt.setup(r)

			result := &ValidationResult{}
			NewValidator().checkReservedKeys(r, result)

			if len(result.Errors) != tt.wantErrors {
				t.Errorf("got %d errors, want %d: %v", len(result.Errors), tt.wantErrors, result.Errors)
			}
		})
	}
}

func TestCheckShadowing(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(*Registry)
		wantWarnings int
	}{
		{
			name: "no shadowing",
			setup: func(r *Registry) {
				r.Register(ContextGlobal, "q", ActionQuit)
				r.Register(ContextNormal, "c", ActionToggleColors)
			},
			wantWarnings: 0,
		},
		{
			name: "context overrides global",
			setup: func(r *Registry) {
				r.Register(ContextGlobal, "q", ActionQuit)
				r.Register(ContextHelp, "q", ActionCloseModal)
			},
			wantWarnings: 1,
		},
		{
			name: "same action is not shadowing",
			setup: func(r *Registry) {
				r.Register(ContextGlobal, "q", ActionQuit)
				r.Register(ContextNormal, "q", ActionQuit)
			},
			wantWarnings: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			tt.setup(r)

			result := &ValidationResult{}
			NewValidator().checkShadowing(r, result)

			if len(result.Warnings) != tt.wantWarnings {
				t.Errorf("got %d warnings, want %d: %v", len(result.Warnings), tt.wantWarnings, result.Warnings)
			}
		})
	}
}

func TestCheckMultiKeySequences(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextNormal, "gg", ActionGoToTop)
	r.Register(ContextNormal, "g", ActionReset)

	result := &ValidationResult{}
	NewValidator().checkMultiKeySequences(r, result)

	if len(result.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(result.Warnings))
	}
	if result.Warnings[0].Key != "g" {
		t.Errorf("warning key = %q, want %q", result.Warnings[0].Key, "g")
	}
}

func TestValidateRegistry_Defaults(t *testing.T) {
	result := NewValidator().ValidateRegistry(NewDefaultRegistry())
	if result.HasErrors() || result.HasWarnings() {
		t.Errorf("default registry should be clean:\n%s", result.String())
	}
}

func TestValidateRegistry_QuitUnbound(t *testing.T) {
	r := NewDefaultRegistry()
	r.Unbind(ContextNormal, ActionQuit)

	result := NewValidator().ValidateRegistry(r)
	if !result.HasWarnings() {
		t.Error("expected a warning for unbound quit")
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name       string
		config     *Config
		wantErrors int
	}{
		{
			name: "valid config",
			config: &Config{
				Normal: map[string]string{"delete_row": "x", "toggle_colors": "C"},
			},
			wantErrors: 0,
		},
		{
			name: "unknown action",
			config: &Config{
				Normal: map[string]string{"execute": "enter"},
			},
			wantErrors: 1,
		},
		{
			name: "one key two actions",
			config: &Config{
				Normal: map[string]string{"delete_row": "x", "reset": "x,R"},
			},
			wantErrors: 1,
		},
		{
			name: "modifier without key",
			config: &Config{
				Filter: map[string]string{"text_cancel": "ctrl+"},
			},
			wantErrors: 1,
		},
		{
			name: "same key in different contexts",
			config: &Config{
				Normal: map[string]string{"reset": "x"},
				Help:   map[string]string{"close_modal": "x"},
			},
			wantErrors: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewValidator().ValidateConfig(tt.config)
			if len(result.Errors) != tt.wantErrors {
				t.Errorf("got %d errors, want %d:\n%s", len(result.Errors), tt.wantErrors, result.String())
			}
		})
	}
}

func TestFindConflicts(t *testing.T) {
	config := &Config{
		Normal: map[string]string{"reset": "r", "toggle_colors": "r"},
	}

	conflicts := FindConflicts(config)
	if len(conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1", len(conflicts))
	}
	if !strings.Contains(conflicts[0], "[conflict] r") {
		t.Errorf("unexpected conflict text %q", conflicts[0])
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key     string
		wantErr bool
	}{
		{"q", false},
		{"ctrl+c", false},
		{"gg", false},
		{"", true},
		{"ctrl+", true},
		{"alt+", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAction(t *testing.T) {
	tests := []struct {
		action  string
		wantErr bool
	}{
		{"quit", false},
		{"toggle_country_sort", false},
		{"noop", false},
		{"", true},
		{"execute", true},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			err := ValidateAction(tt.action)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAction(%q) error = %v, wantErr %v", tt.action, err, tt.wantErr)
			}
		})
	}
}
