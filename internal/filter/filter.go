// Package filter applies JMESPath expressions to JSON documents.
package filter

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/jmespath/go-jmespath"
)

// Apply applies a JMESPath expression to a JSON document and returns the
// result as indented JSON. An empty expression returns body unchanged.
func Apply(body []byte, expression string) ([]byte, error) {
	if expression == "" {
		return body, nil
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	result, err := Search(data, expression)
	if err != nil {
		return nil, err
	}

	// Handle null result
	if result == nil {
		return []byte("null"), nil
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return output, nil
}

// Search evaluates expression against already decoded JSON data
func Search(data any, expression string) (any, error) {
	jp, err := jmespath.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid JMESPath expression '%s': %w", expression, err)
	}

	result, err := jp.Search(data)
	if err != nil {
		return nil, fmt.Errorf("JMESPath search failed: %w", err)
	}

	return result, nil
}

// IsValidJMESPath checks if an expression is valid JMESPath syntax
func IsValidJMESPath(expression string) bool {
	_, err := jmespath.Compile(expression)
	return err == nil
}
