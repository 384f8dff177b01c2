// Copyright 2024-2026 Aiku AI

package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aiku/chatfmt/pkg/format"
)

//go:embed example-config.yaml
var ExampleConfig string

// Config holds the chatfmt CLI configuration.
type Config struct {
	// DefaultBackend picks the backend used when a command gets neither
	// --backend nor --format.
	DefaultBackend string `yaml:"default_backend"`
	// DefaultFormat, when set, overrides DefaultBackend's preferred
	// format.
	DefaultFormat string `yaml:"default_format"`
	// TrailingNewline appends a newline to rendered output.
	TrailingNewline bool `yaml:"trailing_newline"`

	defaultFormat format.Format
}

func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type rawConfig Config
	return node.Decode((*rawConfig)(c))
}

// PostProcess validates the configured names and resolves the effective
// default format.
func (c *Config) PostProcess() error {
	if c.DefaultFormat != "" {
		f, err := format.ParseFormat(c.DefaultFormat)
		if err != nil {
			return err
		}
		c.defaultFormat = f
		return nil
	}
	f, err := format.FormatForBackend(c.DefaultBackend)
	if err != nil {
		return err
	}
	c.defaultFormat = f
	return nil
}

// loadConfig fills cfg from path, or from defaults when path is empty.
func loadConfig(path string, cfg *Config) error {
	*cfg = Config{DefaultBackend: "slack", TrailingNewline: true}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	}
	if err := cfg.PostProcess(); err != nil {
		return fmt.Errorf("failed to post-process config: %w", err)
	}
	return nil
}
