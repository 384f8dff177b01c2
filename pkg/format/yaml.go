// Copyright 2024-2026 Aiku AI

package format

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// messageDoc is the YAML schema for a message description. This decodes a
// structured block list into the node tree; it does not parse Markdown or
// HTML out of strings.
type messageDoc struct {
	Metadata map[string]any `yaml:"metadata"`
	Blocks   []blockDoc     `yaml:"blocks"`
}

type blockDoc struct {
	Type     string     `yaml:"type"`
	Text     string     `yaml:"text"`
	Level    int        `yaml:"level"`
	Language string     `yaml:"language"`
	Content  string     `yaml:"content"`
	URL      string     `yaml:"url"`
	Alt      string     `yaml:"alt"`
	Start    int        `yaml:"start"`
	Items    []string   `yaml:"items"`
	Headers  []string   `yaml:"headers"`
	Rows     [][]string `yaml:"rows"`
	Spans    []spanDoc  `yaml:"spans"`
}

type spanDoc struct {
	Text      string `yaml:"text"`
	Style     string `yaml:"style"`
	URL       string `yaml:"url"`
	UserID    string `yaml:"user_id"`
	ChannelID string `yaml:"channel_id"`
	Emoji     string `yaml:"emoji"`
	Raw       string `yaml:"raw"`
}

// DecodeMessage reads a YAML message description and builds the
// corresponding FormattedMessage.
func DecodeMessage(r io.Reader) (FormattedMessage, error) {
	var doc messageDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return FormattedMessage{}, fmt.Errorf("failed to decode message: %w", err)
	}

	b := NewMessage()
	for key, value := range doc.Metadata {
		b.Meta(key, value)
	}
	for i, block := range doc.Blocks {
		if err := appendBlock(b, block); err != nil {
			return FormattedMessage{}, fmt.Errorf("block %d: %w", i, err)
		}
	}
	return b.Build()
}

func appendBlock(b *MessageBuilder, block blockDoc) error {
	switch block.Type {
	case "paragraph":
		if len(block.Spans) == 0 {
			b.Paragraph(block.Text)
			return nil
		}
		children := make([]Node, 0, len(block.Spans))
		for j, span := range block.Spans {
			node, err := spanNode(span)
			if err != nil {
				return fmt.Errorf("span %d: %w", j, err)
			}
			children = append(children, node)
		}
		b.block(Paragraph{Children: children})
	case "heading":
		b.Heading(block.Text, max(block.Level, 1))
	case "quote":
		b.Quote(block.Text)
	case "code":
		b.CodeBlock(block.Content, block.Language)
	case "bullet_list":
		b.BulletList(block.Items)
	case "numbered_list":
		b.NumberedList(block.Items, block.Start)
	case "table":
		b.Table(block.Rows, block.Headers)
	case "rule":
		b.Rule()
	case "image":
		b.Image(block.URL, block.Alt)
	default:
		return fmt.Errorf("unknown block type %q", block.Type)
	}
	return nil
}

func spanNode(span spanDoc) (Node, error) {
	switch {
	case span.Raw != "":
		return Raw{Content: span.Raw}, nil
	case span.UserID != "":
		return UserMention{UserID: span.UserID, DisplayName: span.Text}, nil
	case span.ChannelID != "":
		return ChannelMention{ChannelID: span.ChannelID, ChannelName: span.Text}, nil
	case span.Emoji != "":
		return Emoji{Name: span.Emoji}, nil
	case span.URL != "":
		return Link{Text: span.Text, URL: span.URL}, nil
	}
	text := Text{Content: span.Text}
	switch span.Style {
	case "", "plain":
		return text, nil
	case "bold":
		return Bold{Child: text}, nil
	case "italic":
		return Italic{Child: text}, nil
	case "strikethrough":
		return Strikethrough{Child: text}, nil
	case "underline":
		return Underline{Child: text}, nil
	case "code":
		return Code{Content: span.Text}, nil
	}
	return nil, fmt.Errorf("unknown span style %q", span.Style)
}
