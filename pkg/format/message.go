// Copyright 2024-2026 Aiku AI

package format

import "strings"

// FormattedMessage is the aggregate root: an ordered sequence of
// block-level nodes plus free-form metadata. It implements Node, so a
// message can itself be embedded in a larger tree.
type FormattedMessage struct {
	Content  []Node
	Metadata map[string]any
}

// Render renders every block and joins them with the format's block
// separator.
func (m FormattedMessage) Render(f Format) string {
	parts := make([]string, len(m.Content))
	for i, block := range m.Content {
		parts[i] = Render(block, f)
	}
	return strings.Join(parts, f.blockSeparator())
}

// RenderFor renders the message in the named backend's preferred format.
func (m FormattedMessage) RenderFor(backend string) (string, error) {
	f, err := FormatForBackend(backend)
	if err != nil {
		return "", err
	}
	return m.Render(f), nil
}
