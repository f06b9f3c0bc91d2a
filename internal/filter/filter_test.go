package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const users = `[
  {"name": {"first": "Ana", "last": "Ruiz"}, "location": {"country": "Spain"}, "email": "ana@example.com"},
  {"name": {"first": "Ben", "last": "Stone"}, "location": {"country": "France"}, "email": "ben@example.com"}
]`

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		want       string
	}{
		{"project emails", "[].email", "[\n  \"ana@example.com\",\n  \"ben@example.com\"\n]"},
		{"filter by country", "[?location.country=='France'].name.first", "[\n  \"Ben\"\n]"},
		{"length", "length(@)", "2"},
		{"missing field", "[0].phone", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply([]byte(users), tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestApply_EmptyExpressionPassesThrough(t *testing.T) {
	got, err := Apply([]byte(users), "")
	require.NoError(t, err)
	assert.Equal(t, users, string(got))
}

func TestApply_Errors(t *testing.T) {
	_, err := Apply([]byte("not json"), "[].email")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")

	_, err = Apply([]byte(users), "[?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JMESPath expression")
}

func TestIsValidJMESPath(t *testing.T) {
	assert.True(t, IsValidJMESPath("[].name.first"))
	assert.True(t, IsValidJMESPath("sort_by(@, &email)"))
	assert.False(t, IsValidJMESPath("[?"))
}
