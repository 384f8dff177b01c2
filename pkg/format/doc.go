// Copyright 2024-2026 Aiku AI

// Package format provides a platform-agnostic rich text document tree and
// renders it to six chat platform grammars: plain text, generic Markdown,
// Slack mrkdwn, Discord Markdown, HTML, and Symphony MessageML.
//
// # Core Types
//
// [Node] is the closed set of tree variants. Leaves hold raw content
// ([Text], [Code], [Link], [UserMention], ...); composites own their
// children ([Bold], [Quote], [Paragraph], lists, [Table]). Rendering is a
// post-order walk: children render first, then the composite wraps the
// result in its per-format markers. Escaping happens exactly once, at the
// leaves.
//
// [FormattedMessage] wraps a sequence of block nodes and joins their
// renders with the format's block separator. [MessageBuilder] is the
// fluent way to construct one.
//
// # Validation
//
// Trees validate at construction ([NewHeading], [NewTable]) and never at
// render: rendering is total over every node/format pair, degrading to a
// plaintext-equivalent output where a format lacks the markup (for
// example, a [Link] with an empty URL renders as its text alone).
//
// # Backends
//
// FormatForBackend maps a backend identifier (discord, slack, symphony,
// matrix, irc, email, mattermost) to its preferred format; the companion
// mention grammars live in the mention package.
package format
