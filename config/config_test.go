package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Diagnostics.Format != "text" {
		t.Errorf("Diagnostics.Format = %q, want %q", cfg.Diagnostics.Format, "text")
	}
	if !cfg.Lint.CheckUnused {
		t.Error("Lint.CheckUnused should default to true")
	}
	if cfg.Format.InstructionColumn != 8 {
		t.Errorf("Format.InstructionColumn = %d, want 8", cfg.Format.InstructionColumn)
	}
	if cfg.Output.DefaultFormat != "hex" {
		t.Errorf("Output.DefaultFormat = %q, want %q", cfg.Output.DefaultFormat, "hex")
	}
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFrom(filepath.Join(dir, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("LoadFrom on a missing file should not error: %v", err)
	}
	if cfg.Diagnostics.Format != DefaultConfig().Diagnostics.Format {
		t.Error("LoadFrom on a missing file should return DefaultConfig")
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := DefaultConfig()
	cfg.Diagnostics.Format = "json"
	cfg.Lint.Strict = true
	cfg.Format.Style = "compact"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Diagnostics.Format != "json" {
		t.Errorf("Diagnostics.Format = %q, want %q", loaded.Diagnostics.Format, "json")
	}
	if !loaded.Lint.Strict {
		t.Error("Lint.Strict should round-trip as true")
	}
	if loaded.Format.Style != "compact" {
		t.Errorf("Format.Style = %q, want %q", loaded.Format.Style, "compact")
	}
}

func TestLoadFromMalformedFileErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("not = [valid toml"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom on malformed TOML should error")
	}
}
