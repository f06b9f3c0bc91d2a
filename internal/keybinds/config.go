package keybinds

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/tidwall/jsonc"
)

// ConfigVersion is written into generated keybinds.json files
const ConfigVersion = "1.0"

// Config is the user's keybinding file. Each section maps an action to a
// comma-separated list of keys, e.g. "navigate_down": "down,j".
type Config struct {
	Version string            `json:"version"`
	Global  map[string]string `json:"global,omitempty"`
	Normal  map[string]string `json:"normal,omitempty"`
	Filter  map[string]string `json:"filter,omitempty"`
	Help    map[string]string `json:"help,omitempty"`
}

// Sections returns the config sections keyed by context
func (c *Config) Sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal: c.Global,
		ContextNormal: c.Normal,
		ContextFilter: c.Filter,
		ContextHelp:   c.Help,
	}
}

// ParseConfig decodes a keybinds.json document. Comments and trailing
// commas are allowed.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}
	return &config, nil
}

// LoadConfig loads keybinding configuration from a file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// SaveConfig saves keybinding configuration to a JSON file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// SplitKeys splits a "k1,k2" list, dropping blanks. A lone "," is the comma key.
func SplitKeys(list string) []string {
	if strings.TrimSpace(list) == "," {
		return []string{","}
	}
	var keys []string
	for _, key := range strings.Split(list, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// ApplyConfig applies user configuration to a registry. An action listed in
// a section loses its default keys in that context and gets the listed ones.
// An empty key list leaves the action unbound.
func ApplyConfig(registry *Registry, config *Config) error {
	for context, section := range config.Sections() {
		for actionStr, keyList := range section {
			action := Action(actionStr)
			registry.Unbind(context, action)
			registry.RegisterMultiple(context, SplitKeys(keyList), action)
		}
	}
	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns the
// default registry. A config that fails validation is rejected.
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	config, err := LoadConfig(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return registry, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load keybinds.json: %w", err)
	}

	validator := NewValidator()
	if result := validator.ValidateConfig(config); result.HasErrors() {
		return nil, fmt.Errorf("invalid keybinds.json:\n%s", result.String())
	}

	if err := ApplyConfig(registry, config); err != nil {
		return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
	}

	if result := validator.ValidateRegistry(registry); result.HasErrors() {
		return nil, fmt.Errorf("invalid keybinds.json:\n%s", result.String())
	}

	return registry, nil
}

// ExportConfig converts a registry back into the file format
func ExportConfig(registry *Registry) *Config {
	config := &Config{
		Version: ConfigVersion,
		Global:  map[string]string{},
		Normal:  map[string]string{},
		Filter:  map[string]string{},
		Help:    map[string]string{},
	}

	for context, section := range config.Sections() {
		seen := map[Action]bool{}
		for _, b := range registry.listContext(context) {
			if seen[b.Action] {
				continue
			}
			seen[b.Action] = true
			section[string(b.Action)] = strings.Join(registry.keysFor(context, b.Action), ",")
		}
	}

	return config
}

// ExportDefaults exports default keybindings as a config
func ExportDefaults() *Config {
	return ExportConfig(NewDefaultRegistry())
}

// CreateExampleConfig writes the default bindings to path. An existing file
// is left untouched.
func CreateExampleConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	return SaveConfig(ExportDefaults(), path)
}
