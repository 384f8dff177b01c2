// Copyright 2024-2026 Aiku AI

package format

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for _, f := range Formats() {
		got, err := ParseFormat(string(f))
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", f, err)
		}
		if got != f {
			t.Errorf("ParseFormat(%q): got %q", f, got)
		}
	}
	if _, err := ParseFormat("rtf"); err == nil {
		t.Error("ParseFormat(rtf): expected error")
	}
	if _, err := ParseFormat(""); err == nil {
		t.Error("ParseFormat(empty): expected error")
	}
}

func TestFormatUnmarshalYAML(t *testing.T) {
	t.Parallel()
	var f Format
	if err := yaml.Unmarshal([]byte("slack-markdown"), &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if f != SlackMarkdown {
		t.Errorf("got %q, want %q", f, SlackMarkdown)
	}
	if err := yaml.Unmarshal([]byte("nope"), &f); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFormatForBackend(t *testing.T) {
	t.Parallel()
	tests := []struct {
		backend string
		want    Format
	}{
		{"discord", DiscordMarkdown},
		{"slack", SlackMarkdown},
		{"symphony", SymphonyMessageML},
		{"matrix", HTML},
		{"irc", Plaintext},
		{"email", HTML},
		{"mattermost", Markdown},
		{"Slack", SlackMarkdown}, // case-insensitive
	}
	for _, tt := range tests {
		got, err := FormatForBackend(tt.backend)
		if err != nil {
			t.Errorf("FormatForBackend(%q): %v", tt.backend, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatForBackend(%q): got %q, want %q", tt.backend, got, tt.want)
		}
	}
	if _, err := FormatForBackend("msn"); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("FormatForBackend(msn): got %v, want ErrUnknownBackend", err)
	}
}

func TestBackendsSorted(t *testing.T) {
	t.Parallel()
	names := Backends()
	if len(names) != 7 {
		t.Fatalf("got %d backends: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("backends not sorted: %v", names)
		}
	}
}
