// Copyright 2024-2026 Aiku AI

package main

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/aiku/chatfmt/pkg/format"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()
	var cfg Config
	if err := loadConfig("", &cfg); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.DefaultBackend != "slack" {
		t.Errorf("DefaultBackend = %q, want slack", cfg.DefaultBackend)
	}
	if !cfg.TrailingNewline {
		t.Error("TrailingNewline should default to true")
	}
	if cfg.defaultFormat != format.SlackMarkdown {
		t.Errorf("defaultFormat = %q, want %q", cfg.defaultFormat, format.SlackMarkdown)
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "default_backend: discord\ntrailing_newline: false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	var cfg Config
	if err := loadConfig(path, &cfg); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.defaultFormat != format.DiscordMarkdown {
		t.Errorf("defaultFormat = %q, want %q", cfg.defaultFormat, format.DiscordMarkdown)
	}
	if cfg.TrailingNewline {
		t.Error("TrailingNewline should be false")
	}
}

func TestLoadConfigFormatOverride(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "default_backend: slack\ndefault_format: html\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	var cfg Config
	if err := loadConfig(path, &cfg); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.defaultFormat != format.HTML {
		t.Errorf("defaultFormat = %q, want %q", cfg.defaultFormat, format.HTML)
	}
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_backend: msn\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var cfg Config
	if err := loadConfig(path, &cfg); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestExampleConfigParses(t *testing.T) {
	t.Parallel()
	var cfg Config
	if err := yaml.Unmarshal([]byte(ExampleConfig), &cfg); err != nil {
		t.Fatalf("example config does not parse: %v", err)
	}
	if err := cfg.PostProcess(); err != nil {
		t.Fatalf("example config does not validate: %v", err)
	}
}
