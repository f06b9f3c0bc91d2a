package pipeline

import (
	"slices"

	"github.com/henryfm1994/userlist-test/internal/types"
	"golang.org/x/text/language"
)

// Memo caches the last derived list. Callers identify the working list by a
// generation number that changes whenever the list is replaced.
type Memo struct {
	Lang language.Tag

	valid      bool
	generation uint64
	query      string
	mode       types.SortMode
	derived    []types.User
}

// NewMemo creates a memo collating with lang
func NewMemo(lang language.Tag) *Memo {
	return &Memo{Lang: lang}
}

// Get returns the derived list for the given inputs, recomputing only when
// one of (generation, query, mode) differs from the previous call.
// The returned slice never shares storage with users.
func (m *Memo) Get(generation uint64, users []types.User, query string, mode types.SortMode) []types.User {
	if m.valid && m.generation == generation && m.query == query && m.mode == mode {
		return m.derived
	}

	m.derived = slices.Clone(Derive(users, query, mode, m.Lang))
	if m.derived == nil {
		m.derived = []types.User{}
	}
	m.generation = generation
	m.query = query
	m.mode = mode
	m.valid = true
	return m.derived
}
