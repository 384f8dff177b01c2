// Copyright 2024-2026 Aiku AI

package format

import (
	"fmt"
	"sort"
	"strings"
)

// backendFormats maps a backend identifier to its preferred output
// format. The table is populated once here and never mutated; readers
// need no locking. Extending chatfmt to a new backend means adding one
// row here and, if the platform has mention syntax, one grammar in
// pkg/mention.
var backendFormats = map[string]Format{
	"discord":    DiscordMarkdown,
	"slack":      SlackMarkdown,
	"symphony":   SymphonyMessageML,
	"matrix":     HTML,
	"irc":        Plaintext,
	"email":      HTML,
	"mattermost": Markdown,
}

// FormatForBackend returns the preferred format for a backend name. The
// lookup is case-insensitive. Unknown names return ErrUnknownBackend so
// that "no such backend" is never confused with a defaulted format.
func FormatForBackend(backend string) (Format, error) {
	f, ok := backendFormats[strings.ToLower(backend)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	return f, nil
}

// Backends returns the known backend names in sorted order.
func Backends() []string {
	names := make([]string, 0, len(backendFormats))
	for name := range backendFormats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
