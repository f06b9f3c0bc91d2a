package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/henryfm1994/userlist-test/internal/keybinds"
	"github.com/henryfm1994/userlist-test/internal/pipeline"
	"github.com/henryfm1994/userlist-test/internal/session"
	"github.com/henryfm1994/userlist-test/internal/source"
	"github.com/henryfm1994/userlist-test/internal/types"
)

// fakeSource returns canned users or an error
type fakeSource struct {
	users []types.User
	err   error
	calls int
}

func (f *fakeSource) Fetch(ctx context.Context) (*source.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &source.Result{Users: f.users}, nil
}

func testUser(first, last, country, email string) types.User {
	return types.User{
		Name:     types.Name{First: first, Last: last},
		Location: types.Location{Country: country},
		Email:    email,
	}
}

// sampleUsers is a small fixed data set
func sampleUsers() []types.User {
	return []types.User{
		testUser("Cid", "Moreau", "France", "cid@example.com"),
		testUser("Ana", "Zapata", "Spain", "ana@example.com"),
		testUser("Ben", "Adams", "Germany", "ben@example.com"),
		testUser("Dora", "Klein", "France", "dora@example.com"),
	}
}

// CreateTestModel creates a Model whose session is already loaded with users
// and whose clipboard writes into *copied
func CreateTestModel(t *testing.T, users []types.User) (*Model, *string) {
	t.Helper()

	state := session.New(pipeline.DefaultLanguage)
	state.Load(users)

	m := New(Options{State: state, Keybinds: keybinds.NewDefaultRegistry()})
	copied := new(string)
	m.copyToClipboard = func(s string) error {
		*copied = s
		return nil
	}

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	return &m, copied
}

// CreateLoadingTestModel creates a Model that has not fetched yet
func CreateLoadingTestModel(t *testing.T, src source.Source) *Model {
	t.Helper()

	m := New(Options{State: session.New(pipeline.DefaultLanguage), Source: src})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	return &m
}

// runCmd executes cmd and feeds its message back into the model
func runCmd(m *Model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	m.Update(cmd())
}

// pressKey sends a key press to the model
func pressKey(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyMsg(key))
	return cmd
}

// typeText sends each rune as a key press
func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func emails(users []types.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Email
	}
	return out
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}
