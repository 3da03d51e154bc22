// Package config loads and saves the assembler's TOML configuration
// file: diagnostic rendering, the linter's default strictness, and
// the formatter's default column layout.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config is the assembler's persisted configuration.
type Config struct {
	// Diagnostics controls how diag.Sink output is rendered. The CLI
	// reads only Format (text or json) to pick a renderer; ColorOutput,
	// NumberFormat and ContextLines are stored and round-tripped but no
	// renderer consults them.
	Diagnostics struct {
		ColorOutput  bool   `toml:"color_output"`
		Format       string `toml:"format"`        // text, json
		NumberFormat string `toml:"number_format"` // hex, dec, both
		ContextLines int    `toml:"context_lines"`
	} `toml:"diagnostics"`

	// Lint controls the default tools.LintOptions used by the CLI's
	// -lint flag when no per-invocation overrides are given.
	Lint struct {
		Strict       bool `toml:"strict"`
		CheckUnused  bool `toml:"check_unused"`
		SuggestFixes bool `toml:"suggest_fixes"`
	} `toml:"lint"`

	// Format controls the default tools.FormatOptions used by -fmt.
	Format struct {
		Style             string `toml:"style"` // default, compact
		InstructionColumn int    `toml:"instruction_column"`
		OperandColumn     int    `toml:"operand_column"`
		CommentColumn     int    `toml:"comment_column"`
	} `toml:"format"`

	// Output controls the assembled text segment's default encoding.
	Output struct {
		DefaultFormat string `toml:"default_format"` // hex, bin
	} `toml:"output"`
}

// DefaultConfig returns a Config populated with the assembler's
// out-of-the-box defaults.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Diagnostics.ColorOutput = true
	cfg.Diagnostics.Format = "text"
	cfg.Diagnostics.NumberFormat = "hex"
	cfg.Diagnostics.ContextLines = 2

	cfg.Lint.Strict = false
	cfg.Lint.CheckUnused = true
	cfg.Lint.SuggestFixes = true

	cfg.Format.Style = "default"
	cfg.Format.InstructionColumn = 8
	cfg.Format.OperandColumn = 16
	cfg.Format.CommentColumn = 40

	cfg.Output.DefaultFormat = "hex"

	return cfg
}

// GetConfigPath returns the platform-specific config file path,
// creating its containing directory if necessary.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "rv32iasm")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "rv32iasm")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file, or returns
// DefaultConfig if it doesn't exist.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the given path, or returns
// DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the given path, creating its
// containing directory if necessary.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
