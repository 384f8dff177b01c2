// Copyright 2024-2026 Aiku AI

package mention

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/mattermost/mattermost/server/public/model"
	"maunium.net/go/mautrix/id"
)

// Type classifies a mention match.
type Type string

const (
	TypeUser     Type = "user"
	TypeChannel  Type = "channel"
	TypeRole     Type = "role"
	TypeEveryone Type = "everyone"
	TypeHere     Type = "here"
)

// Match is a positioned mention extracted from raw text. Start and End
// are half-open byte offsets into the original string. ID is empty for
// typeless markers such as @everyone.
type Match struct {
	Type  Type
	ID    string
	Raw   string
	Start int
	End   int
}

// ErrUnknownBackend is returned when Parse is handed a backend name with
// no registered grammar. A backend whose platform simply has no mention
// syntax (irc, email) is not an error; it yields an empty result.
var ErrUnknownBackend = errors.New("unknown backend grammar")

// idGroup values select where a pattern's match ID comes from.
const (
	idNone = -1 // typeless marker, ID stays empty
	idRaw  = 0  // the whole match is the identifier (matrix)
)

// pattern is one literal-delimited mention form. The regexp is anchored
// at ^ and applied at the scan cursor.
type pattern struct {
	re       *regexp.Regexp
	typ      Type
	idGroup  int
	boundary bool // only match at start of text or after a non-word byte
	valid    func(raw, id string) bool
}

// grammar is the ordered pattern set for one backend,
// most-specific-first.
type grammar []pattern

var (
	discordRole     = regexp.MustCompile(`^<@&(\d+)>`)
	discordUser     = regexp.MustCompile(`^<@!?(\d+)>`)
	discordChannel  = regexp.MustCompile(`^<#(\d+)>`)
	discordEveryone = regexp.MustCompile(`^@everyone`)
	discordHere     = regexp.MustCompile(`^@here`)

	slackSubteam  = regexp.MustCompile(`^<!subteam\^([A-Z0-9]+)>`)
	slackHere     = regexp.MustCompile(`^<!here>`)
	slackChannel  = regexp.MustCompile(`^<!channel>`)
	slackEveryone = regexp.MustCompile(`^<!everyone>`)
	slackUser     = regexp.MustCompile(`^<@([A-Z0-9]+)>`)
	slackChanRef  = regexp.MustCompile(`^<#([A-Z0-9]+)(?:\|[^>]*)?>`)

	symphonyUID   = regexp.MustCompile(`^<mention\s+uid="([^"]+)"\s*/>`)
	symphonyEmail = regexp.MustCompile(`^<mention\s+email="([^"]+)"\s*/>`)

	matrixUser = regexp.MustCompile(`^@[^\s:@]+:[^\s,!?]+`)
	matrixRoom = regexp.MustCompile(`^#[^\s:#]+:[^\s,!?]+`)

	mattermostHere    = regexp.MustCompile(`^@here\b`)
	mattermostChannel = regexp.MustCompile(`^@channel\b`)
	mattermostAll     = regexp.MustCompile(`^@all\b`)
	mattermostUser    = regexp.MustCompile(`^@([a-z0-9][a-z0-9._-]*)`)
	mattermostChanRef = regexp.MustCompile(`^~([a-z0-9][a-z0-9._-]*)`)
)

// grammars maps backend names to their mention grammars. Like the backend
// format table, it is populated once and never mutated. irc and email
// have no mention syntax: their grammars are present but empty, so
// parsing them succeeds with no matches.
var grammars = map[string]grammar{
	"discord": {
		{re: discordRole, typ: TypeRole, idGroup: 1},
		{re: discordUser, typ: TypeUser, idGroup: 1},
		{re: discordChannel, typ: TypeChannel, idGroup: 1},
		{re: discordEveryone, typ: TypeEveryone, idGroup: idNone},
		{re: discordHere, typ: TypeHere, idGroup: idNone},
	},
	"slack": {
		{re: slackSubteam, typ: TypeRole, idGroup: 1},
		{re: slackHere, typ: TypeHere, idGroup: idNone},
		// <!channel> pings everyone in the channel; of the closed type
		// set, everyone is the match.
		{re: slackChannel, typ: TypeEveryone, idGroup: idNone},
		{re: slackEveryone, typ: TypeEveryone, idGroup: idNone},
		{re: slackUser, typ: TypeUser, idGroup: 1},
		{re: slackChanRef, typ: TypeChannel, idGroup: 1},
	},
	"symphony": {
		{re: symphonyUID, typ: TypeUser, idGroup: 1},
		{re: symphonyEmail, typ: TypeUser, idGroup: 1},
	},
	"matrix": {
		{re: matrixUser, typ: TypeUser, idGroup: idRaw, boundary: true, valid: validMatrixUser},
		{re: matrixRoom, typ: TypeChannel, idGroup: idRaw, boundary: true},
	},
	"mattermost": {
		{re: mattermostHere, typ: TypeHere, idGroup: idNone, boundary: true},
		{re: mattermostChannel, typ: TypeEveryone, idGroup: idNone, boundary: true},
		{re: mattermostAll, typ: TypeEveryone, idGroup: idNone, boundary: true},
		{re: mattermostUser, typ: TypeUser, idGroup: 1, boundary: true, valid: validMattermostUser},
		{re: mattermostChanRef, typ: TypeChannel, idGroup: 1, boundary: true},
	},
	"irc":   {},
	"email": {},
}

func validMatrixUser(raw, _ string) bool {
	_, _, err := id.UserID(raw).ParseAndValidate()
	return err == nil
}

func validMattermostUser(_, username string) bool {
	return model.IsValidUsername(username)
}

// Backends returns the backend names with a registered grammar, sorted.
func Backends() []string {
	names := make([]string, 0, len(grammars))
	for name := range grammars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse extracts mentions from text using the named backend's grammar.
// The result is ordered by ascending Start and matches never overlap:
// each match advances the scan cursor past its end, so consumed text is
// never re-scanned.
func Parse(text, backend string) ([]Match, error) {
	g, ok := grammars[strings.ToLower(backend)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	var matches []Match
	for i := 0; i < len(text); {
		m, ok := matchAt(g, text, i)
		if !ok {
			i++
			continue
		}
		matches = append(matches, m)
		i = m.End
	}
	return matches, nil
}

// matchAt tries every pattern of g at offset i in priority order.
func matchAt(g grammar, text string, i int) (Match, bool) {
	for _, p := range g {
		if p.boundary && i > 0 && isWordByte(text[i-1]) {
			continue
		}
		loc := p.re.FindStringSubmatchIndex(text[i:])
		if loc == nil {
			continue
		}
		raw := text[i : i+loc[1]]
		var matchID string
		switch p.idGroup {
		case idNone:
		case idRaw:
			matchID = raw
		default:
			start, end := loc[2*p.idGroup], loc[2*p.idGroup+1]
			if start >= 0 {
				matchID = text[i+start : i+end]
			}
		}
		if p.valid != nil && !p.valid(raw, matchID) {
			continue
		}
		return Match{
			Type:  p.typ,
			ID:    matchID,
			Raw:   raw,
			Start: i,
			End:   i + loc[1],
		}, true
	}
	return Match{}, false
}

// isWordByte reports whether b can be part of an identifier-like token.
// Boundary-sensitive patterns refuse to start right after one of these,
// so "price@all" or "a#general:host" are not mentions.
func isWordByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '_', b == '@', b == '#', b == '~':
		return true
	}
	return false
}
