// Copyright 2024-2026 Aiku AI

package format

import (
	"html"
	"strings"
)

// messageMLReplacer applies XML entity escaping plus Symphony's template
// expression escapes. MessageML rejects raw ${...} and #{...} sequences.
var messageMLReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"${", "&#36;{",
	"#{", "&#35;{",
)

// markdownReplacer backslash-escapes the characters that generic Markdown
// treats as inline markup. Slack and Discord render their raw text as-is,
// so this applies only to the generic dialect.
var markdownReplacer = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"~", `\~`,
	"[", `\[`,
	"]", `\]`,
)

// escapeText applies f's escaping rule for body text.
func escapeText(s string, f Format) string {
	switch f {
	case HTML:
		return html.EscapeString(s)
	case SymphonyMessageML:
		return messageMLReplacer.Replace(s)
	case Markdown:
		return markdownReplacer.Replace(s)
	}
	return s
}

// escapeAttr escapes a tag attribute value. Attribute values are escaped
// independently of body text so that quotes can never terminate the
// attribute early.
func escapeAttr(s string, f Format) string {
	if f == SymphonyMessageML {
		return messageMLReplacer.Replace(s)
	}
	return html.EscapeString(s)
}
