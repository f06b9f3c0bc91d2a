// Package cli implements the non-interactive "list" command: fetch once, run
// the requested transitions through a session, print the derived list.
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	json "github.com/goccy/go-json"
	"github.com/henryfm1994/userlist-test/internal/filter"
	"github.com/henryfm1994/userlist-test/internal/logger"
	"github.com/henryfm1994/userlist-test/internal/session"
	"github.com/henryfm1994/userlist-test/internal/source"
	"github.com/henryfm1994/userlist-test/internal/types"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for an output format other than text, json or yaml
var ErrUnknownFormat = errors.New("unknown output format")

// RunOptions contains options for the list command
type RunOptions struct {
	Source source.Source
	Lang   language.Tag

	Country      string   // country filter, substring, case-insensitive
	Sort         string   // none, country, name, last
	Deletes      []string // emails to delete
	Colors       bool     // stripe text rows
	OutputFormat string   // text, json, yaml
	Query        string   // JMESPath over the JSON rendition
	Highlight    bool     // syntax-highlight json/yaml

	Out io.Writer // defaults to stdout
}

// Run executes the list command
func Run(ctx context.Context, opts RunOptions) error {
	mode, err := types.ParseSortMode(opts.Sort)
	if err != nil {
		return err
	}

	format := opts.OutputFormat
	if format == "" {
		format = FormatText
	}
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	if opts.Query != "" && !filter.IsValidJMESPath(opts.Query) {
		return fmt.Errorf("invalid query: %s", opts.Query)
	}

	result, err := opts.Source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch users: %w", err)
	}

	logger.Logger.Info().
		Int("users", len(result.Users)).
		Str("duration", source.FormatDuration(result.Duration)).
		Str("size", source.FormatSize(result.ResponseSize)).
		Msg("users loaded")

	state := session.New(opts.Lang)
	state.Load(result.Users)
	state.SetCountryFilter(opts.Country)
	state.ChangeSort(mode)
	if opts.Colors {
		state.ToggleColors()
	}

	for _, email := range opts.Deletes {
		removed := state.Delete(email)
		logger.Logger.Debug().Str("email", email).Int("removed", removed).Msg("rows deleted")
		if removed == 0 {
			logger.Logger.Warn().Str("email", email).Msg("no row with this email")
		}
	}

	output, err := formatOutput(state, format, opts.Query, opts.Highlight)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	_, err = io.WriteString(out, output)
	return err
}

// formatOutput renders the derived list. A query always yields JSON or
// YAML since its result need not be a list of users.
func formatOutput(state *session.State, format, query string, highlight bool) (string, error) {
	users := state.Derived()

	if format == FormatText && query == "" {
		working, original := state.Counts()
		return renderTable(users, state.ColorsEnabled()) +
			fmt.Sprintf("\n%d shown | %d/%d rows\n", len(users), working, original), nil
	}

	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return "", err
	}

	if query != "" {
		if data, err = filter.Apply(data, query); err != nil {
			return "", err
		}
	}

	lexer := "json"
	if format == FormatYAML {
		if data, err = jsonToYAML(data); err != nil {
			return "", err
		}
		lexer = "yaml"
	}

	text := strings.TrimRight(string(data), "\n") + "\n"
	if highlight {
		return colorize(text, lexer), nil
	}
	return text, nil
}

// jsonToYAML re-encodes a JSON document as YAML
func jsonToYAML(data []byte) ([]byte, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// colorize highlights text for a terminal, returning it unchanged on failure
func colorize(text, lexer string) string {
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, text, lexer, "terminal256", "monokai"); err != nil {
		return text
	}
	return buf.String()
}

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
	styleEven   = styleCell.Background(lipgloss.AdaptiveColor{Light: "#e8f0fe", Dark: "#1f2a44"})
	styleOdd    = styleCell.Background(lipgloss.AdaptiveColor{Light: "#fdf1e4", Dark: "#3b2a1a"})
)

// renderTable renders users as a bordered table, striped when colors is set
func renderTable(users []types.User, colors bool) string {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.Name.First, u.Name.Last, u.Location.Country, u.Email})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FIRST", "LAST", "COUNTRY", "EMAIL").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case !colors:
				return styleCell
			case row%2 == 0:
				return styleEven
			default:
				return styleOdd
			}
		})

	return t.String()
}
