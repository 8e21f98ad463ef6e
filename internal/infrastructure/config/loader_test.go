package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSeedsDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ConfigFormatVersion != "1" {
		t.Fatalf("ConfigFormatVersion = %q, want 1", cfg.ConfigFormatVersion)
	}
	if cfg.Database.Path == "" {
		t.Fatal("default database path not set")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
}

func TestLoadParsesExistingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := []byte("config_format_version: \"1\"\ndatabase:\n  path: /tmp/custom.db\nclipboard:\n  tool: wl-copy\n")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Path != "/tmp/custom.db" {
		t.Fatalf("Database.Path = %q, want /tmp/custom.db", cfg.Database.Path)
	}
	if cfg.Clipboard.Tool != "wl-copy" {
		t.Fatalf("Clipboard.Tool = %q, want wl-copy", cfg.Clipboard.Tool)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("database: [unclosed"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("Load() should fail on malformed YAML")
	}
}
