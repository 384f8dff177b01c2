// Copyright 2024-2026 Aiku AI

// Package mention lexes platform-specific inline references out of raw
// chat text and builds them for outbound messages.
//
// [Parse] is the inbound direction: a single left-to-right scan of the
// text, trying each of the backend's literal-delimited patterns at the
// cursor in most-specific-first order. A hit emits a positioned [Match]
// and jumps the cursor past it, so the output is ordered and
// non-overlapping by construction. Backends whose platform has no
// mention syntax (irc, email) parse to an empty result; a backend name
// nobody registered is [ErrUnknownBackend], so "no mentions" and "don't
// know how to look" stay distinguishable.
//
// The Format* functions are the outbound direction: given a backend name
// and an identifier they produce the platform's mention token, the same
// token Parse recognizes.
//
// Matrix user candidates are validated with maunium.net/go/mautrix/id
// before they count as matches; Mattermost usernames are checked against
// the server's own username rules.
package mention
