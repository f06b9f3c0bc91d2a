package main

import (
	"fmt"
	"os"

	"github.com/henryfm1994/userlist-test/internal/cli"
	"github.com/henryfm1994/userlist-test/internal/config"
	"github.com/henryfm1994/userlist-test/internal/keybinds"
	"github.com/henryfm1994/userlist-test/internal/logger"
	"github.com/henryfm1994/userlist-test/internal/session"
	"github.com/henryfm1994/userlist-test/internal/source"
	"github.com/henryfm1994/userlist-test/internal/tui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "userlist",
	Short: "Browse random users in a sortable, filterable table",
	Long: `userlist fetches a batch of random users and shows them in an interactive table.

Rows can be colored, sorted by country or name, filtered by country and
deleted. Reset brings back the rows as first fetched.

Examples:
  userlist                                  # Start interactive TUI
  userlist list --country fra --sort last   # Print the table once
  userlist list -o json --query '[].email'  # JMESPath over the rows
  userlist keybinds --init                  # Write ~/.userlist/keybinds.json`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runTUI(cfg)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Fetch once and print the users",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runList(cmd, cfg)
	},
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Show the active key bindings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return runKeybinds(cmd)
	},
}

// Flags shared by root and list
var (
	flagSourceURL string
	flagResults   int
	flagLocale    string
)

// Flags for list
var (
	flagCountry string
	flagSort    string
	flagDeletes []string
	flagOutput  string
	flagQuery   string
	flagColors  bool
	flagNoColor bool
)

// Flags for keybinds
var (
	flagInit bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSourceURL, "source-url", "", "Record Source endpoint (env USERLIST_SOURCE_URL)")
	rootCmd.PersistentFlags().IntVar(&flagResults, "results", 0, "Number of users to fetch (env USERLIST_RESULTS)")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "Collation language for sorting (env USERLIST_LOCALE)")

	listCmd.Flags().StringVarP(&flagCountry, "country", "c", "", "Keep users whose country contains this text (case-insensitive)")
	listCmd.Flags().StringVarP(&flagSort, "sort", "s", "none", "Sort by none, country, name or last")
	listCmd.Flags().StringArrayVarP(&flagDeletes, "delete", "d", []string{}, "Delete users with this email, can be repeated")
	listCmd.Flags().StringVarP(&flagOutput, "output", "o", cli.FormatText, "Output format (text/json/yaml)")
	listCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "JMESPath expression applied to the JSON rows")
	listCmd.Flags().BoolVar(&flagColors, "colors", false, "Stripe table rows")
	listCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable syntax highlighting")

	keybindsCmd.Flags().BoolVar(&flagInit, "init", false, "Write the default bindings to keybinds.json")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(keybindsCmd)
}

// loadConfig initializes paths, reads the environment and applies flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("source-url") {
		cfg.SourceURL = flagSourceURL
	}
	if flags.Changed("results") {
		cfg.Results = flagResults
	}
	if flags.Changed("locale") {
		cfg.Locale = flagLocale
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runTUI starts the interactive TUI. Logs go to a file since the TUI owns
// the terminal.
func runTUI(cfg *config.Config) error {
	closer, err := logger.InitFile(config.LogFile, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer closer.Close()

	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		return err
	}

	logger.Logger.Info().Str("source", cfg.RequestURL()).Str("locale", cfg.Locale).Msg("starting tui")

	return tui.Run(tui.Options{
		State:    session.New(cfg.Language()),
		Source:   source.NewHTTPSource(cfg.RequestURL(), cfg.Timeout),
		Keybinds: registry,
	})
}

// runList executes the one-shot listing
func runList(cmd *cobra.Command, cfg *config.Config) error {
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	opts := cli.RunOptions{
		Source:       source.NewHTTPSource(cfg.RequestURL(), cfg.Timeout),
		Lang:         cfg.Language(),
		Country:      flagCountry,
		Sort:         flagSort,
		Deletes:      flagDeletes,
		Colors:       flagColors,
		OutputFormat: flagOutput,
		Query:        flagQuery,
		Highlight:    !flagNoColor && isatty.IsTerminal(os.Stdout.Fd()),
		Out:          cmd.OutOrStdout(),
	}
	return cli.Run(cmd.Context(), opts)
}

// runKeybinds prints the active bindings or writes the example file
func runKeybinds(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	if flagInit {
		if err := keybinds.CreateExampleConfig(config.KeybindsFile); err != nil {
			return fmt.Errorf("failed to create keybinds.json: %w", err)
		}
		fmt.Fprintf(out, "Wrote %s\n", config.KeybindsFile)
		return nil
	}

	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		return err
	}

	for _, ctx := range keybinds.Contexts {
		fmt.Fprintf(out, "[%s]\n", ctx)
		seen := map[keybinds.Action]bool{}
		for _, b := range registry.ListBindings(ctx) {
			if b.Context != ctx || seen[b.Action] {
				continue
			}
			seen[b.Action] = true
			info := keybinds.GetActionInfo(b.Action)
			fmt.Fprintf(out, "  %-22s %-16s %s\n", b.Action, registry.GetBindingString(ctx, b.Action), info.Description)
		}
	}

	result := keybinds.NewValidator().ValidateRegistry(registry)
	if result.HasWarnings() {
		fmt.Fprintf(cmd.ErrOrStderr(), "\n%s", result.String())
	}
	return nil
}
