package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// DefaultSourceURL is the Record Source endpoint
	DefaultSourceURL = "https://randomuser.me/api/"
	// DefaultResults is the number of records requested
	DefaultResults = 100
)

var (
	// ConfigDir is the global configuration directory (~/.userlist)
	ConfigDir string

	// LogFile receives logs while the TUI owns the terminal
	LogFile string

	// KeybindsFile holds user keybinding overrides
	KeybindsFile string
)

// Config holds runtime settings read from the environment
type Config struct {
	SourceURL string        `validate:"required,url"`
	Results   int           `validate:"min=1,max=5000"`
	Timeout   time.Duration `validate:"min=0"`
	Locale    string        `validate:"required,bcp47_language_tag"`
	LogLevel  string        `validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogFormat string        `validate:"oneof=json console"`
}

// Initialize sets up the configuration directory and paths
// It creates ~/.userlist/ if it doesn't exist
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	return InitializeAt(filepath.Join(homeDir, ".userlist"))
}

// InitializeAt sets up the configuration paths rooted at dir
func InitializeAt(dir string) error {
	ConfigDir = dir
	LogFile = filepath.Join(ConfigDir, "userlist.log")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	return nil
}

// Load reads settings from .env (if present) and the environment.
// The result is not validated so callers can apply overrides first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	results, err := getInt("USERLIST_RESULTS", DefaultResults)
	if err != nil {
		return nil, err
	}
	timeout, err := getDuration("USERLIST_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}

	return &Config{
		SourceURL: getEnv("USERLIST_SOURCE_URL", DefaultSourceURL),
		Results:   results,
		Timeout:   timeout,
		Locale:    getEnv("USERLIST_LOCALE", "en"),
		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "json")),
	}, nil
}

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Language returns the collation language for Locale
// Falls back to English when the tag does not parse
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// RequestURL returns SourceURL with the results query parameter applied
func (c *Config) RequestURL() string {
	sep := "?"
	if strings.Contains(c.SourceURL, "?") {
		sep = "&"
	}
	return c.SourceURL + sep + "results=" + strconv.Itoa(c.Results)
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return d, nil
}
