// Copyright 2024-2026 Aiku AI

package format

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Format identifies a target output grammar.
type Format string

const (
	// Plaintext is plain text with no markup.
	Plaintext Format = "plaintext"
	// Markdown is generic CommonMark-style Markdown.
	Markdown Format = "markdown"
	// SlackMarkdown is Slack's mrkdwn, which differs from generic Markdown
	// in its emphasis markers and link syntax.
	SlackMarkdown Format = "slack-markdown"
	// DiscordMarkdown is Discord's Markdown flavor.
	DiscordMarkdown Format = "discord-markdown"
	// HTML is standard HTML.
	HTML Format = "html"
	// SymphonyMessageML is Symphony's XML-based MessageML.
	SymphonyMessageML Format = "symphony-messageml"
)

// Formats returns every supported format. The order is stable.
func Formats() []Format {
	return []Format{
		Plaintext,
		Markdown,
		SlackMarkdown,
		DiscordMarkdown,
		HTML,
		SymphonyMessageML,
	}
}

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case Plaintext, Markdown, SlackMarkdown, DiscordMarkdown, HTML, SymphonyMessageML:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// isMarkdownFamily reports whether f is one of the three Markdown dialects.
func (f Format) isMarkdownFamily() bool {
	return f == Markdown || f == SlackMarkdown || f == DiscordMarkdown
}

// isTagged reports whether f uses tag-delimited markup (HTML or MessageML).
func (f Format) isTagged() bool {
	return f == HTML || f == SymphonyMessageML
}

func (f *Format) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseFormat(raw)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// blockSeparator is the string joining rendered block-level nodes. Tagged
// formats self-delimit their blocks and need no separator.
func (f Format) blockSeparator() string {
	if f.isTagged() {
		return ""
	}
	return "\n\n"
}
