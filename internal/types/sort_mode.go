package types

import (
	"fmt"
	"strings"
)

// SortMode selects the field the derived list is ordered by
type SortMode int

const (
	SortNone SortMode = iota
	SortCountry
	SortFirstName
	SortLastName
)

// SortModes lists every mode in column order
var SortModes = []SortMode{SortNone, SortCountry, SortFirstName, SortLastName}

// String returns the flag/config form of the mode
func (s SortMode) String() string {
	switch s {
	case SortNone:
		return "none"
	case SortCountry:
		return "country"
	case SortFirstName:
		return "name"
	case SortLastName:
		return "last"
	default:
		return fmt.Sprintf("SortMode(%d)", int(s))
	}
}

// Label returns the human-readable column name
func (s SortMode) Label() string {
	switch s {
	case SortCountry:
		return "Country"
	case SortFirstName:
		return "First name"
	case SortLastName:
		return "Last name"
	default:
		return "None"
	}
}

// Valid reports whether s is one of the enumerated modes
func (s SortMode) Valid() bool {
	return s >= SortNone && s <= SortLastName
}

// ParseSortMode parses a mode name (case-insensitive)
// Accepts "none", "country", "name"/"first"/"first_name", "last"/"last_name"
func ParseSortMode(value string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none":
		return SortNone, nil
	case "country":
		return SortCountry, nil
	case "name", "first", "first_name", "firstname":
		return SortFirstName, nil
	case "last", "last_name", "lastname":
		return SortLastName, nil
	default:
		return SortNone, fmt.Errorf("unknown sort mode %q (want none, country, name or last)", value)
	}
}
