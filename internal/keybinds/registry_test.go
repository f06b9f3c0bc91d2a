package keybinds

import (
	"reflect"
	"testing"
)

func TestRegistry_Match(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
	r.Register(ContextGlobal, "q", ActionQuit)
	r.Register(ContextHelp, "q", ActionCloseModal)
	r.Register(ContextNormal, "x", ActionNoOp)

	tests := []struct {
		name    string
		context Context
		key     string
		want    Action
		wantOK  bool
	}{
		{"global fallback", ContextNormal, "ctrl+c", ActionQuitForce, true},
		{"context wins", ContextHelp, "q", ActionCloseModal, true},
		{"global in normal", ContextNormal, "q", ActionQuit, true},
		{"unbound", ContextNormal, "z", "", false},
		{"noop", ContextNormal, "x", ActionNoOp, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Match(tt.context, tt.key)
			if ok != tt.wantOK {
				t.Fatalf("Match ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Match = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegistry_MatchMultiKey(t *testing.T) {
	r := NewDefaultRegistry()

	action, ok, partial := r.MatchMultiKey(ContextNormal, "g")
	if ok || !partial {
		t.Fatalf("first g: ok=%v partial=%v, want partial", ok, partial)
	}
	if r.Pending(ContextNormal) != "g" {
		t.Errorf("Pending = %q, want g", r.Pending(ContextNormal))
	}

	action, ok, partial = r.MatchMultiKey(ContextNormal, "g")
	if !ok || partial || action != ActionGoToTop {
		t.Fatalf("gg: action=%q ok=%v partial=%v", action, ok, partial)
	}
	if r.Pending(ContextNormal) != "" {
		t.Error("pending state should be cleared")
	}
}

func TestRegistry_MatchMultiKey_BrokenSequence(t *testing.T) {
	r := NewDefaultRegistry()

	r.MatchMultiKey(ContextNormal, "g")
	action, ok, partial := r.MatchMultiKey(ContextNormal, "c")
	if !ok || partial || action != ActionToggleColors {
		t.Errorf("g then c: action=%q ok=%v partial=%v, want toggle_colors", action, ok, partial)
	}
}

func TestRegistry_MatchMultiKey_FunctionKeys(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextNormal, "f1", ActionOpenHelp)
	r.Register(ContextNormal, "f", ActionReset)

	action, ok, partial := r.MatchMultiKey(ContextNormal, "f")
	if !ok || partial || action != ActionReset {
		t.Errorf("f: action=%q ok=%v partial=%v, want reset", action, ok, partial)
	}
}

func TestRegistry_ClearMultiKeyState(t *testing.T) {
	r := NewDefaultRegistry()
	r.MatchMultiKey(ContextNormal, "g")
	r.ClearMultiKeyState(ContextNormal)

	if r.Pending(ContextNormal) != "" {
		t.Error("expected pending state to be cleared")
	}
}

func TestRegistry_GetBinding(t *testing.T) {
	r := NewDefaultRegistry()

	if got := r.GetBinding(ContextNormal, ActionNavigateDown); !reflect.DeepEqual(got, []string{"down", "j"}) {
		t.Errorf("GetBinding navigate_down = %v", got)
	}
	if got := r.GetBindingString(ContextFilter, ActionQuitForce); got != "ctrl+c" {
		t.Errorf("GetBindingString quit_force from filter = %q", got)
	}
	if got := r.GetBindingString(ContextFilter, ActionDeleteRow); got != "unbound" {
		t.Errorf("GetBindingString delete_row in filter = %q", got)
	}
}

func TestRegistry_Unbind(t *testing.T) {
	r := NewDefaultRegistry()
	r.Unbind(ContextNormal, ActionDeleteRow)

	if r.HasBinding(ContextNormal, "d") || r.HasBinding(ContextNormal, "delete") {
		t.Error("delete_row keys should be gone")
	}
	if !r.HasBinding(ContextNormal, "c") {
		t.Error("other bindings should remain")
	}
}

func TestRegistry_ListBindings(t *testing.T) {
	r := NewDefaultRegistry()
	bindings := r.ListBindings(ContextFilter)

	want := []Binding{
		{Key: "enter", Action: ActionTextSubmit, Context: ContextFilter},
		{Key: "esc", Action: ActionTextCancel, Context: ContextFilter},
		{Key: "ctrl+c", Action: ActionQuitForce, Context: ContextGlobal},
	}
	if !reflect.DeepEqual(bindings, want) {
		t.Errorf("ListBindings = %v, want %v", bindings, want)
	}
}
