package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/minios-linux/pocat/blocks"
	"github.com/minios-linux/pocat/catalog"
)

// machine runs the entry state machine over blocks. A single machine is
// safe for concurrent use: all per-block state lives in a blockRun.
type machine struct {
	sink   Sink
	log    *zap.SugaredLogger
	header bool // header-block semantics: key validation, terminal set
}

// entry accumulates the fields of one block while its lines are
// processed. Exactly one blockRun ever mutates a given entry.
type entry struct {
	context     string
	hasContext  bool
	id          string
	hasID       bool
	pluralID    string
	translation string
	plural      map[int]string

	locations    []catalog.Location
	flags        []string
	autoComments []string
	userComments []string
	previous     []catalog.PreviousField

	line     int // line number of the msgid line, 0 if not seen
	obsolete bool
}

// blockRun is the mutable state of one state-machine run.
type blockRun struct {
	m      *machine
	state  State
	active int // plural index continuation lines append to, -1 none
	entry  entry
}

// handler mutates the accumulator for one line. The transition table
// decides which handler runs and which state follows.
type handler func(r *blockRun, line string, lineno int) error

type transition struct {
	fn   handler
	next State
}

// transitions is the (state, token) grammar table. Any pair absent here
// is a hard grammar error. Comments never consult the table; they are
// legal everywhere and leave the state unchanged.
var transitions = map[State]map[Token]transition{
	StateInitial: {
		TokenMsgctxt:             {(*blockRun).handleMsgctxt, StateMsgctxt},
		TokenMsgid:               {(*blockRun).handleMsgid, StateMsgid},
		TokenObsoleteMsgctxt:     {(*blockRun).handleObsoleteMsgctxt, StateObsoleteMsgctxt},
		TokenObsoleteMsgid:       {(*blockRun).handleObsoleteMsgid, StateObsoleteMsgid},
		TokenObsoleteMsgidPlural: {(*blockRun).handleObsoleteMsgidPlural, StateObsoleteMsgidPlural},
		TokenObsoleteMsgstrIndex: {(*blockRun).handleObsoleteMsgstrIndex, StateObsoleteMsgstrIndex},
	},
	StateMsgctxt: {
		TokenContinuation: {(*blockRun).handleContinuation, StateMsgctxt},
		TokenMsgid:        {(*blockRun).handleMsgid, StateMsgid},
	},
	StateMsgid: {
		TokenContinuation: {(*blockRun).handleContinuation, StateMsgid},
		TokenMsgidPlural:  {(*blockRun).handleMsgidPlural, StateMsgidPlural},
		TokenMsgstr:       {(*blockRun).handleMsgstr, StateMsgstr},
		TokenMsgstrIndex:  {(*blockRun).handleMsgstrIndex, StateMsgstrIndex},
	},
	StateMsgidPlural: {
		TokenContinuation: {(*blockRun).handleContinuation, StateMsgidPlural},
		TokenMsgstrIndex:  {(*blockRun).handleMsgstrIndex, StateMsgstrIndex},
	},
	StateMsgstr: {
		TokenContinuation: {(*blockRun).handleContinuation, StateMsgstr},
	},
	StateMsgstrIndex: {
		TokenContinuation: {(*blockRun).handleContinuation, StateMsgstrIndex},
		TokenMsgstrIndex:  {(*blockRun).handleMsgstrIndex, StateMsgstrIndex},
	},
	StateObsoleteMsgctxt: {
		TokenContinuation: {(*blockRun).handleContinuation, StateObsoleteMsgctxt},
		TokenObsoleteMsgid: {(*blockRun).handleObsoleteMsgid, StateObsoleteMsgid},
	},
	StateObsoleteMsgid: {
		TokenContinuation:        {(*blockRun).handleContinuation, StateObsoleteMsgid},
		TokenObsoleteMsgidPlural: {(*blockRun).handleObsoleteMsgidPlural, StateObsoleteMsgidPlural},
		TokenObsoleteMsgstr:      {(*blockRun).handleObsoleteMsgstr, StateObsoleteMsgstr},
		TokenObsoleteMsgstrIndex: {(*blockRun).handleObsoleteMsgstrIndex, StateObsoleteMsgstrIndex},
	},
	StateObsoleteMsgidPlural: {
		TokenContinuation:        {(*blockRun).handleContinuation, StateObsoleteMsgidPlural},
		TokenObsoleteMsgstr:      {(*blockRun).handleObsoleteMsgstr, StateObsoleteMsgstr},
		TokenObsoleteMsgstrIndex: {(*blockRun).handleObsoleteMsgstrIndex, StateObsoleteMsgstrIndex},
	},
	StateObsoleteMsgstr: {
		TokenContinuation: {(*blockRun).handleContinuation, StateObsoleteMsgstr},
	},
	StateObsoleteMsgstrIndex: {
		TokenContinuation:        {(*blockRun).handleContinuation, StateObsoleteMsgstrIndex},
		TokenObsoleteMsgstrIndex: {(*blockRun).handleObsoleteMsgstrIndex, StateObsoleteMsgstrIndex},
	},
}

// msgstrIndexPattern matches `msgstr[N] "value"` after any obsolete
// marker has been stripped.
var msgstrIndexPattern = regexp.MustCompile(`^msgstr\[(\d+)\]\s+"(.*)"\s*$`)

// processBlock runs the state machine over one block and converts the
// accumulated entry into a message. Any grammar, completeness or
// validation violation is returned as a *ParseError.
func (m *machine) processBlock(b blocks.Block) (*catalog.Message, error) {
	r := &blockRun{
		m:      m,
		state:  StateInitial,
		active: -1,
		entry:  entry{plural: make(map[int]string)},
	}

	lines := b.Lines()
	lastLine := b.StartLine
	lastText := ""

	for i, raw := range lines {
		lineno := b.StartLine + i
		line := strings.TrimSpace(raw)
		if line == "" {
			return nil, &ParseError{Line: lineno, Text: raw, Msg: "unexpected empty line inside block"}
		}
		lastLine = lineno
		lastText = raw

		token := Classify(line)
		m.log.Debugw("classified line", "line", lineno, "token", token.String(), "state", r.state.String())

		if token == TokenInvalid {
			return nil, &ParseError{Line: lineno, Text: raw, Msg: "line matches no PO grammar rule"}
		}
		if token == TokenComment {
			if err := r.handleComment(line, lineno); err != nil {
				return nil, err
			}
			continue
		}

		tr, ok := transitions[r.state][token]
		if !ok {
			return nil, &ParseError{
				Line: lineno,
				Text: raw,
				Msg:  fmt.Sprintf("unexpected %s in state %s", token, r.state),
			}
		}
		if err := tr.fn(r, line, lineno); err != nil {
			return nil, err
		}
		r.state = tr.next
	}

	if err := r.checkTerminal(lastLine, lastText); err != nil {
		return nil, err
	}
	return r.finish()
}

// checkTerminal validates the state the block ended in against the
// terminal set for its block kind.
func (r *blockRun) checkTerminal(lastLine int, lastText string) error {
	if r.m.header {
		if r.state == StateMsgid || r.state == StateMsgstr {
			return nil
		}
	} else if r.state == StateMsgstr || r.state == StateMsgstrIndex || r.state.isObsolete() {
		return nil
	}

	if r.entry.hasID && (r.state == StateMsgid || r.state == StateMsgidPlural) {
		return &ParseError{
			Line: lastLine,
			Text: lastText,
			Msg:  "block ended after msgid with no msgstr",
		}
	}
	return &ParseError{
		Line: lastLine,
		Text: lastText,
		Msg:  fmt.Sprintf("incomplete entry: block ended in state %s", r.state),
	}
}

// finish validates plural completeness and converts the accumulator
// into an immutable message.
func (r *blockRun) finish() (*catalog.Message, error) {
	e := &r.entry
	msg := &catalog.Message{
		ID:           e.id,
		Context:      e.context,
		Locations:    e.locations,
		Flags:        e.flags,
		AutoComments: e.autoComments,
		UserComments: e.userComments,
		Previous:     e.previous,
		Line:         e.line,
		Obsolete:     e.obsolete,
	}

	if e.pluralID != "" {
		expected := r.m.sink.NumPlurals()
		indices := make([]int, 0, len(e.plural))
		for idx := range e.plural {
			indices = append(indices, idx)
		}
		sort.Ints(indices)

		complete := len(indices) == expected
		for i, idx := range indices {
			if idx != i {
				complete = false
			}
		}
		if !complete {
			return nil, &ParseError{
				Line: e.line,
				Msg:  fmt.Sprintf("invalid plural indexes: expected 0..%d, got %v", expected-1, indices),
			}
		}

		msg.PluralID = e.pluralID
		msg.PluralTranslations = make([]string, expected)
		for i := 0; i < expected; i++ {
			msg.PluralTranslations[i] = e.plural[i]
		}
		return msg, nil
	}

	msg.Translation = e.translation
	return msg, nil
}

// ---------------------------------------------------------------------------
// Field handlers
// ---------------------------------------------------------------------------

func (r *blockRun) handleMsgctxt(line string, lineno int) error {
	r.entry.context = quotedValue(line, len("msgctxt"))
	r.entry.hasContext = true
	return nil
}

func (r *blockRun) handleMsgid(line string, lineno int) error {
	if !r.entry.hasID {
		r.entry.line = lineno
	}
	r.entry.id = quotedValue(line, len("msgid"))
	r.entry.hasID = true
	return nil
}

func (r *blockRun) handleMsgidPlural(line string, lineno int) error {
	r.entry.pluralID = quotedValue(line, len("msgid_plural"))
	return nil
}

func (r *blockRun) handleMsgstr(line string, lineno int) error {
	r.entry.translation = quotedValue(line, len("msgstr"))
	return nil
}

func (r *blockRun) handleMsgstrIndex(line string, lineno int) error {
	m := msgstrIndexPattern.FindStringSubmatch(line)
	if m == nil {
		// Malformed index lines are skipped; plural completeness
		// catches the missing index at block end.
		r.m.log.Debugw("malformed msgstr[n] line skipped", "line", lineno)
		return nil
	}
	idx, err := strconv.Atoi(m[1])
	if err != nil {
		return &ParseError{Line: lineno, Text: line, Msg: "invalid plural index"}
	}
	r.entry.plural[idx] = unescape(m[2])
	r.active = idx
	return nil
}

// ---------------------------------------------------------------------------
// Obsolete field handlers: strip the "#~" marker and delegate
// ---------------------------------------------------------------------------

// stripObsolete removes the leading "#~" marker and following blanks.
func stripObsolete(line string) string {
	return strings.TrimLeft(line[2:], " \t")
}

func (r *blockRun) handleObsoleteMsgctxt(line string, lineno int) error {
	r.entry.obsolete = true
	return r.handleMsgctxt(stripObsolete(line), lineno)
}

func (r *blockRun) handleObsoleteMsgid(line string, lineno int) error {
	r.entry.obsolete = true
	return r.handleMsgid(stripObsolete(line), lineno)
}

func (r *blockRun) handleObsoleteMsgidPlural(line string, lineno int) error {
	r.entry.obsolete = true
	return r.handleMsgidPlural(stripObsolete(line), lineno)
}

func (r *blockRun) handleObsoleteMsgstr(line string, lineno int) error {
	r.entry.obsolete = true
	return r.handleMsgstr(stripObsolete(line), lineno)
}

func (r *blockRun) handleObsoleteMsgstrIndex(line string, lineno int) error {
	r.entry.obsolete = true
	return r.handleMsgstrIndex(stripObsolete(line), lineno)
}

// ---------------------------------------------------------------------------
// Continuation handler
// ---------------------------------------------------------------------------

func (r *blockRun) handleContinuation(line string, lineno int) error {
	s := line
	if strings.HasPrefix(s, "#~") {
		s = stripObsolete(s)
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return &ParseError{
			Line: lineno,
			Text: line,
			Msg:  fmt.Sprintf("continuation in state %s is not fully quoted", r.state),
		}
	}
	value := unescape(s[1 : len(s)-1])

	switch r.state {
	case StateMsgctxt, StateObsoleteMsgctxt:
		r.entry.context += value
		r.entry.hasContext = true
	case StateMsgid, StateObsoleteMsgid:
		r.entry.id += value
	case StateMsgidPlural, StateObsoleteMsgidPlural:
		r.entry.pluralID += value
	case StateMsgstr, StateObsoleteMsgstr:
		if r.m.header {
			if err := checkHeaderValue(value, r.state, lineno, line); err != nil {
				return err
			}
		}
		r.entry.translation += value
	case StateMsgstrIndex, StateObsoleteMsgstrIndex:
		if r.active < 0 {
			return &ParseError{Line: lineno, Text: line, Msg: "continuation without an active plural index"}
		}
		r.entry.plural[r.active] += value
	default:
		return &ParseError{
			Line: lineno,
			Text: line,
			Msg:  fmt.Sprintf("continuation not allowed in state %s", r.state),
		}
	}
	return nil
}

// checkHeaderValue enforces the "Key: value" shape of header msgstr
// continuations against the allowed header key set.
func checkHeaderValue(value string, state State, lineno int, line string) error {
	idx := strings.Index(value, headerSeparator)
	if idx < 0 {
		return &ParseError{
			Line: lineno,
			Text: line,
			Msg:  fmt.Sprintf("header line missing %q separator in state %s", headerSeparator, state),
		}
	}
	if _, ok := validHeaderKeys[value[:idx]]; !ok {
		return &ParseError{
			Line: lineno,
			Text: line,
			Msg:  fmt.Sprintf("%q is not a recognized header field", value[:idx]),
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Comment handlers: legal in every state, never change the state
// ---------------------------------------------------------------------------

func (r *blockRun) handleComment(line string, lineno int) error {
	switch {
	case strings.HasPrefix(line, "#:"):
		r.handleLocations(line)
	case strings.HasPrefix(line, "#,"):
		return r.handleFlags(line, lineno)
	case strings.HasPrefix(line, "#."):
		r.entry.autoComments = append(r.entry.autoComments, strings.TrimSpace(line[2:]))
	case strings.HasPrefix(line, "#|"):
		r.handlePrevious(line)
	default:
		r.entry.userComments = append(r.entry.userComments, strings.TrimSpace(line[1:]))
	}
	return nil
}

// handleLocations parses "#: file[:line] ..." references. A malformed
// line-number suffix stores a nil line number rather than an error.
func (r *blockRun) handleLocations(line string) {
	for _, ref := range strings.Fields(line[2:]) {
		loc := catalog.Location{File: ref}
		if idx := strings.LastIndex(ref, ":"); idx >= 0 {
			loc.File = ref[:idx]
			if n, err := strconv.Atoi(ref[idx+1:]); err == nil {
				loc.Line = &n
			}
		}
		r.entry.locations = append(r.entry.locations, loc)
	}
}

func (r *blockRun) handleFlags(line string, lineno int) error {
	for _, flag := range strings.Split(strings.TrimSpace(line[2:]), ",") {
		flag = strings.TrimSpace(flag)
		if flag == "" {
			continue
		}
		if _, ok := recognizedFlags[flag]; !ok {
			return &ParseError{Line: lineno, Text: line, Msg: fmt.Sprintf("unrecognized flag %q", flag)}
		}
		r.entry.flags = append(r.entry.flags, flag)
	}
	return nil
}

// handlePrevious records "#| marker value" previous-field comments,
// keyed by whichever field marker the remainder starts with.
func (r *blockRun) handlePrevious(line string) {
	rest := strings.TrimSpace(line[2:])
	for _, marker := range []string{"msgid_plural", "msgstr_plural", "msgctxt", "msgid", "msgstr"} {
		if strings.HasPrefix(rest, marker) {
			r.entry.previous = append(r.entry.previous, catalog.PreviousField{
				Field: marker,
				Value: strings.TrimSpace(rest[len(marker):]),
			})
			return
		}
	}
	r.entry.previous = append(r.entry.previous, catalog.PreviousField{Field: "unknown", Value: rest})
}
