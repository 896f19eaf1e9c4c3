// Package config provides YAML configuration for the keypad demo
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Validation errors
var (
	ErrEmptyLayout = errors.New("config: keypad has no rows")
	ErrEmptyRow    = errors.New("config: keypad row has no keys")
)

// MaxMinCellHeight caps minCellHeight; a key never needs more rows than this
const MaxMinCellHeight = 50

// Border names accepted in style.border
var borders = map[string]bool{
	"rounded": true,
	"normal":  true,
	"thick":   true,
	"double":  true,
	"hidden":  true,
	"none":    true,
}

// Config represents the keypad configuration
type Config struct {
	Rows          [][]string  `yaml:"rows"`
	Style         StyleConfig `yaml:"style"`
	MinCellHeight int         `yaml:"minCellHeight"` // cells below this height grow and the grid scrolls
}

// StyleConfig controls how keys are drawn
type StyleConfig struct {
	Border     string `yaml:"border"`
	Foreground string `yaml:"foreground"` // lipgloss color, e.g. "255" or "#ffffff"
	Background string `yaml:"background"`
	Accent     string `yaml:"accent"` // border color
}

// Load loads configuration with priority:
// 1. Project-level: <projectDir>/.keygrid/keypad.yaml
// 2. Global: <user config dir>/keygrid/keypad.yaml
// 3. Default: built-in phone keypad
//
// The returned path is the file that was loaded, or "" for the defaults.
func Load(projectDir string) (*Config, string, error) {
	candidates := []string{ProjectPath(projectDir)}
	if global := GlobalPath(); global != "" {
		candidates = append(candidates, global)
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			cfg, err := LoadFile(path)
			return cfg, path, err
		}
	}

	return DefaultConfig(), "", nil
}

// LoadFile loads configuration from a specific file
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	// Rows replace the default layout rather than merge with it
	cfg.Rows = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if len(cfg.Rows) == 0 {
		cfg.Rows = DefaultConfig().Rows
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the layout and normalizes style options
func (c *Config) Validate() error {
	if len(c.Rows) == 0 {
		return ErrEmptyLayout
	}
	for i, row := range c.Rows {
		if len(row) == 0 {
			return fmt.Errorf("row %d: %w", i, ErrEmptyRow)
		}
	}

	if !borders[c.Style.Border] {
		c.Style.Border = "rounded"
	}
	c.MinCellHeight = min(max(c.MinCellHeight, 0), MaxMinCellHeight)
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Rows: [][]string{
			{"1", "2", "3"},
			{"4", "5", "6"},
			{"7", "8", "9"},
			{"*", "0", "#"},
			{"⌫", "clear"},
		},
		Style: StyleConfig{
			Border:     "rounded",
			Foreground: "255",
			Background: "",
			Accent:     "86",
		},
		MinCellHeight: 5,
	}
}

// Columns returns the number of keys in each row
func (c *Config) Columns() []int {
	cols := make([]int, len(c.Rows))
	for i, row := range c.Rows {
		cols[i] = len(row)
	}
	return cols
}
