package parser

// State names the field currently being accumulated while processing
// one block. Exactly one state is active at a time.
type State int

const (
	// StateInitial is the state before any field line has been seen.
	StateInitial State = iota
	StateMsgctxt
	StateMsgid
	StateMsgidPlural
	StateMsgstr
	StateMsgstrIndex
	StateObsoleteMsgctxt
	StateObsoleteMsgid
	StateObsoleteMsgidPlural
	StateObsoleteMsgstr
	StateObsoleteMsgstrIndex
)

var stateNames = map[State]string{
	StateInitial:             "initial",
	StateMsgctxt:             "msgctxt",
	StateMsgid:               "msgid",
	StateMsgidPlural:         "msgid_plural",
	StateMsgstr:              "msgstr",
	StateMsgstrIndex:         "msgstr[n]",
	StateObsoleteMsgctxt:     "obsolete msgctxt",
	StateObsoleteMsgid:       "obsolete msgid",
	StateObsoleteMsgidPlural: "obsolete msgid_plural",
	StateObsoleteMsgstr:      "obsolete msgstr",
	StateObsoleteMsgstrIndex: "obsolete msgstr[n]",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// isObsolete reports whether the state accumulates an obsolete field.
func (s State) isObsolete() bool {
	return s >= StateObsoleteMsgctxt
}
