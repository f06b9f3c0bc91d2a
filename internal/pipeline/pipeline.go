// Package pipeline computes the derived list shown by the table: the working
// list filtered by country substring, then ordered by the active sort mode.
//
// Every function here is pure. Inputs are never reordered or truncated; a new
// slice is returned whenever the output differs from the input.
package pipeline

import (
	"sort"
	"strings"

	"github.com/henryfm1994/userlist-test/internal/types"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLanguage is the collation language used when none is configured
var DefaultLanguage = language.English

// Filter keeps the users whose country contains query, ignoring case.
// An empty query returns users unchanged.
func Filter(users []types.User, query string) []types.User {
	if query == "" {
		return users
	}

	needle := strings.ToLower(query)
	filtered := make([]types.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Location.Country), needle) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

// Key returns the field of u that mode orders by
func Key(u types.User, mode types.SortMode) string {
	switch mode {
	case types.SortCountry:
		return u.Location.Country
	case types.SortFirstName:
		return u.Name.First
	case types.SortLastName:
		return u.Name.Last
	default:
		return ""
	}
}

// Sort orders a copy of users ascending by the field mode selects, using
// collation for lang. Equal keys keep their input order. SortNone returns
// users unchanged.
func Sort(users []types.User, mode types.SortMode, lang language.Tag) []types.User {
	if mode == types.SortNone || !mode.Valid() {
		return users
	}

	sorted := make([]types.User, len(users))
	copy(sorted, users)

	// collate.Collator keeps internal buffers, so one per call
	c := collate.New(lang)
	keys := make([]string, len(sorted))
	for i, u := range sorted {
		keys[i] = Key(u, mode)
	}

	sort.Stable(&byKey{users: sorted, keys: keys, c: c})
	return sorted
}

// Derive runs Filter then Sort
func Derive(users []types.User, query string, mode types.SortMode, lang language.Tag) []types.User {
	return Sort(Filter(users, query), mode, lang)
}

type byKey struct {
	users []types.User
	keys  []string
	c     *collate.Collator
}

func (b *byKey) Len() int { return len(b.users) }

func (b *byKey) Less(i, j int) bool {
	return b.c.CompareString(b.keys[i], b.keys[j]) < 0
}

func (b *byKey) Swap(i, j int) {
	b.users[i], b.users[j] = b.users[j], b.users[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}
