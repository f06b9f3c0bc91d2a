package session

import (
	"testing"

	"github.com/henryfm1994/userlist-test/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func user(first, country, email string) types.User {
	return types.User{
		Name:     types.Name{First: first},
		Location: types.Location{Country: country},
		Email:    email,
	}
}

func firstNames(users []types.User) []string {
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Name.First
	}
	return names
}

func loadedState(t *testing.T) *State {
	t.Helper()
	s := New(language.English)
	require.True(t, s.Load([]types.User{
		user("Ana", "Spain", "ana@example.com"),
		user("Ben", "spain", "ben@example.com"),
		user("Cid", "France", "cid@example.com"),
	}))
	return s
}

func TestNew_Defaults(t *testing.T) {
	s := New(language.English)

	assert.False(t, s.Loaded())
	assert.False(t, s.ColorsEnabled())
	assert.Equal(t, types.SortNone, s.SortMode())
	assert.Equal(t, "", s.CountryFilter())
	assert.Empty(t, s.Working())
	assert.Empty(t, s.Original())
	assert.Empty(t, s.Derived())
}

func TestLoad_CapturesOriginalOnce(t *testing.T) {
	s := loadedState(t)

	assert.True(t, s.Loaded())
	assert.Equal(t, []string{"Ana", "Ben", "Cid"}, firstNames(s.Working()))
	assert.Equal(t, []string{"Ana", "Ben", "Cid"}, firstNames(s.Original()))

	assert.False(t, s.Load([]types.User{user("Zed", "Peru", "zed@example.com")}))
	assert.Equal(t, []string{"Ana", "Ben", "Cid"}, firstNames(s.Original()))
	assert.Equal(t, []string{"Ana", "Ben", "Cid"}, firstNames(s.Working()))
}

func TestLoad_DoesNotAliasCallerSlice(t *testing.T) {
	users := []types.User{user("Ana", "Spain", "a"), user("Ben", "Peru", "b")}
	s := New(language.English)
	s.Load(users)

	users[0].Name.First = "Mutated"

	assert.Equal(t, []string{"Ana", "Ben"}, firstNames(s.Original()))
	assert.Equal(t, []string{"Ana", "Ben"}, firstNames(s.Working()))
}

func TestToggleColors(t *testing.T) {
	s := New(language.English)

	s.ToggleColors()
	assert.True(t, s.ColorsEnabled())

	s.ToggleColors()
	assert.False(t, s.ColorsEnabled())
}

func TestToggleSortByCountry(t *testing.T) {
	tests := []struct {
		from types.SortMode
		want types.SortMode
	}{
		{types.SortNone, types.SortCountry},
		{types.SortCountry, types.SortNone},
		{types.SortFirstName, types.SortCountry},
		{types.SortLastName, types.SortCountry},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			s := New(language.English)
			s.ChangeSort(tt.from)

			s.ToggleSortByCountry()

			assert.Equal(t, tt.want, s.SortMode())
		})
	}
}

func TestChangeSort(t *testing.T) {
	s := New(language.English)

	for _, mode := range types.SortModes {
		s.ChangeSort(mode)
		assert.Equal(t, mode, s.SortMode())
	}

	s.ChangeSort(types.SortLastName)
	s.ChangeSort(types.SortMode(99))
	assert.Equal(t, types.SortLastName, s.SortMode())
}

func TestSetCountryFilter(t *testing.T) {
	s := loadedState(t)

	s.SetCountryFilter("spa")
	assert.Equal(t, "spa", s.CountryFilter())
	assert.Equal(t, []string{"Ana", "Ben"}, firstNames(s.Derived()))

	s.SetCountryFilter("")
	assert.Equal(t, []string{"Ana", "Ben", "Cid"}, firstNames(s.Derived()))
}

func TestDerived_FilterThenSortScenario(t *testing.T) {
	s := loadedState(t)

	s.SetCountryFilter("spa")
	assert.Equal(t, []string{"Ana", "Ben"}, firstNames(s.Derived()))

	s.ChangeSort(types.SortFirstName)
	assert.Equal(t, []string{"Ana", "Ben"}, firstNames(s.Derived()))
}

func TestDerived_SortDoesNotReorderWorkingList(t *testing.T) {
	s := loadedState(t)

	s.ChangeSort(types.SortCountry)
	assert.Equal(t, "Cid", s.Derived()[0].Name.First)

	assert.Equal(t, []string{"Ana", "Ben", "Cid"}, firstNames(s.Working()))
}

func TestDelete(t *testing.T) {
	s := loadedState(t)

	removed := s.Delete("ben@example.com")

	assert.Equal(t, 1, removed)
	assert.Equal(t, []string{"Ana", "Cid"}, firstNames(s.Working()))
	assert.Equal(t, []string{"Ana", "Cid"}, firstNames(s.Derived()))
}

func TestDelete_AbsentEmailIsNoOp(t *testing.T) {
	s := loadedState(t)

	removed := s.Delete("nobody@example.com")

	assert.Equal(t, 0, removed)
	working, _ := s.Counts()
	assert.Equal(t, 3, working)
}

func TestDelete_RemovesAllDuplicates(t *testing.T) {
	s := New(language.English)
	s.Load([]types.User{
		user("Ana", "Spain", "dup@example.com"),
		user("Ben", "Peru", "ben@example.com"),
		user("Cid", "France", "dup@example.com"),
	})

	removed := s.Delete("dup@example.com")

	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"Ben"}, firstNames(s.Working()))
}

func TestReset_RestoresOriginalAndKeepsViewSettings(t *testing.T) {
	s := loadedState(t)

	s.Delete("ana@example.com")
	s.Delete("cid@example.com")
	s.SetCountryFilter("fr")
	s.ChangeSort(types.SortLastName)
	s.ToggleColors()

	s.Reset()

	assert.Equal(t, []string{"Ana", "Ben", "Cid"}, firstNames(s.Working()))
	assert.Equal(t, "fr", s.CountryFilter())
	assert.Equal(t, types.SortLastName, s.SortMode())
	assert.True(t, s.ColorsEnabled())
	assert.Equal(t, []string{"Cid"}, firstNames(s.Derived()))
}

func TestReset_BeforeLoadLeavesEmptyList(t *testing.T) {
	s := New(language.English)

	s.Reset()

	assert.Empty(t, s.Working())
	assert.False(t, s.Loaded())
}

func TestCounts(t *testing.T) {
	s := loadedState(t)
	s.Delete("ana@example.com")

	working, original := s.Counts()

	assert.Equal(t, 2, working)
	assert.Equal(t, 3, original)
}
