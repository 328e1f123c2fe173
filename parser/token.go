// Package parser implements the PO entry grammar: line classification,
// the per-block state machine with its transition table, header
// interpretation, and sequential or parallel scheduling of block
// processing.
//
// The parser operates on blocks produced by the blocks package and feeds
// finished messages into a Sink (normally a catalog.Catalog). It never
// owns file I/O or charset handling; see the pofile package for the
// end-to-end loader.
package parser

import "strings"

// Token is the grammatical classification of a single line.
type Token int

const (
	// TokenInvalid marks a line matching no known grammar rule.
	TokenInvalid Token = iota
	// TokenMsgctxt is a `msgctxt "..."` line.
	TokenMsgctxt
	// TokenMsgid is a `msgid "..."` line.
	TokenMsgid
	// TokenMsgidPlural is a `msgid_plural "..."` line.
	TokenMsgidPlural
	// TokenMsgstr is a `msgstr "..."` line.
	TokenMsgstr
	// TokenMsgstrIndex is a `msgstr[N] "..."` line.
	TokenMsgstrIndex
	// TokenComment is any `#` comment line that is not an obsolete
	// marker; its subkind (locations, flags, auto, previous, user) is
	// resolved by the comment handler, not here.
	TokenComment
	// TokenContinuation is a bare quoted string continuing the
	// previous field.
	TokenContinuation
	// Obsolete counterparts of the field tokens, for lines prefixed
	// with the `#~` marker.
	TokenObsoleteMsgctxt
	TokenObsoleteMsgid
	TokenObsoleteMsgidPlural
	TokenObsoleteMsgstr
	TokenObsoleteMsgstrIndex
)

var tokenNames = map[Token]string{
	TokenInvalid:             "invalid",
	TokenMsgctxt:             "msgctxt",
	TokenMsgid:               "msgid",
	TokenMsgidPlural:         "msgid_plural",
	TokenMsgstr:              "msgstr",
	TokenMsgstrIndex:         "msgstr[n]",
	TokenComment:             "comment",
	TokenContinuation:        "continuation",
	TokenObsoleteMsgctxt:     "obsolete msgctxt",
	TokenObsoleteMsgid:       "obsolete msgid",
	TokenObsoleteMsgidPlural: "obsolete msgid_plural",
	TokenObsoleteMsgstr:      "obsolete msgstr",
	TokenObsoleteMsgstrIndex: "obsolete msgstr[n]",
}

func (t Token) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "unknown"
}

// Classify maps one trimmed, non-empty line to its token. Only leading
// characters are inspected; longer keywords are checked before their
// prefixes (msgid_plural before msgid, msgstr[ before msgstr).
//
// The block splitter never emits blank lines, so an empty line here is a
// caller bug and panics.
func Classify(line string) Token {
	if line == "" {
		panic("parser: Classify called with an empty line")
	}
	switch line[0] {
	case '#':
		if strings.HasPrefix(line, "#~") {
			rest := strings.TrimLeft(line[2:], " \t")
			switch {
			case strings.HasPrefix(rest, "msgctxt"):
				return TokenObsoleteMsgctxt
			case strings.HasPrefix(rest, "msgid_plural"):
				return TokenObsoleteMsgidPlural
			case strings.HasPrefix(rest, "msgstr["):
				return TokenObsoleteMsgstrIndex
			case strings.HasPrefix(rest, "msgid"):
				return TokenObsoleteMsgid
			case strings.HasPrefix(rest, "msgstr"):
				return TokenObsoleteMsgstr
			case rest != "" && rest[0] == '"':
				return TokenContinuation
			default:
				return TokenInvalid
			}
		}
		return TokenComment
	case 'm':
		switch {
		case strings.HasPrefix(line, "msgctxt"):
			return TokenMsgctxt
		case strings.HasPrefix(line, "msgid_plural"):
			return TokenMsgidPlural
		case strings.HasPrefix(line, "msgid"):
			return TokenMsgid
		case strings.HasPrefix(line, "msgstr["):
			return TokenMsgstrIndex
		case strings.HasPrefix(line, "msgstr"):
			return TokenMsgstr
		}
	case '"':
		return TokenContinuation
	}
	return TokenInvalid
}
