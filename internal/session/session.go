// Package session holds the state of one viewing session: the working list,
// the snapshot captured at first load, and the view settings the derived list
// is computed from. Every command handler is a single synchronous transition.
package session

import (
	"slices"
	"sync"

	"github.com/henryfm1994/userlist-test/internal/pipeline"
	"github.com/henryfm1994/userlist-test/internal/types"
	"golang.org/x/text/language"
)

// State is the session state. The zero value is not usable; use New.
type State struct {
	mu sync.RWMutex

	working    []types.User
	original   []types.User
	loaded     bool   // original captured
	generation uint64 // bumped whenever working is replaced

	colorsEnabled bool
	sortMode      types.SortMode
	countryFilter string

	memo *pipeline.Memo
}

// New creates an empty session collating with lang
func New(lang language.Tag) *State {
	return &State{
		working:  []types.User{},
		original: []types.User{},
		sortMode: types.SortNone,
		memo:     pipeline.NewMemo(lang),
	}
}

// Load populates the working and original lists from the first successful
// fetch. Later calls are ignored and return false.
func (s *State) Load(users []types.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return false
	}

	s.original = slices.Clone(users)
	if s.original == nil {
		s.original = []types.User{}
	}
	s.loaded = true
	s.replaceWorkingLocked(slices.Clone(s.original))
	return true
}

// Loaded reports whether the original list has been captured
func (s *State) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// ToggleColors flips row coloring
func (s *State) ToggleColors() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colorsEnabled = !s.colorsEnabled
}

// ToggleSortByCountry switches to SortNone when sorting by country and to
// SortCountry from any other mode. It never selects the name modes.
func (s *State) ToggleSortByCountry() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sortMode == types.SortCountry {
		s.sortMode = types.SortNone
	} else {
		s.sortMode = types.SortCountry
	}
}

// ChangeSort sets the sort mode unconditionally. Values outside the
// enumeration are ignored.
func (s *State) ChangeSort(mode types.SortMode) {
	if !mode.Valid() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortMode = mode
}

// Reset restores the working list from the original snapshot. Colors, sort
// mode and country filter are left as they are.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceWorkingLocked(slices.Clone(s.original))
}

// Delete removes every user whose email equals email and returns how many
// were removed. Duplicate emails are all removed.
func (s *State) Delete(email string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]types.User, 0, len(s.working))
	for _, u := range s.working {
		if u.Email != email {
			kept = append(kept, u)
		}
	}

	removed := len(s.working) - len(kept)
	if removed > 0 {
		s.replaceWorkingLocked(kept)
	}
	return removed
}

// SetCountryFilter replaces the country filter verbatim. An empty string
// means no filter.
func (s *State) SetCountryFilter(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countryFilter = text
}

// Derived returns the filtered then sorted list to display. The result must
// not be modified by the caller.
func (s *State) Derived() []types.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.memo.Get(s.generation, s.working, s.countryFilter, s.sortMode)
}

// Working returns a copy of the working list
func (s *State) Working() []types.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.working)
}

// Original returns a copy of the snapshot captured at load
func (s *State) Original() []types.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.original)
}

// Counts returns the working and original list lengths
func (s *State) Counts() (working, original int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.working), len(s.original)
}

// ColorsEnabled reports whether row coloring is on
func (s *State) ColorsEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.colorsEnabled
}

// SortMode returns the active sort mode
func (s *State) SortMode() types.SortMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortMode
}

// CountryFilter returns the current filter text
func (s *State) CountryFilter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countryFilter
}

// replaceWorkingLocked swaps in a new working list (must be called with lock held)
func (s *State) replaceWorkingLocked(users []types.User) {
	s.working = users
	s.generation++
}
