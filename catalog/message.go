package catalog

// Location is a source-code reference attached to a message via a
// "#: file:line" comment. Line is nil when the reference carries no
// line number or the number could not be parsed.
type Location struct {
	File string
	Line *int
}

// PreviousField is one "#| marker value" comment, recording a field's
// value before the last catalog update. Field is the marker name
// ("msgid", "msgctxt", ...) or "unknown" when the marker was not
// recognized.
type PreviousField struct {
	Field string
	Value string
}

// Message is a single parsed catalog entry: a translatable unit with its
// translation(s) and all attached metadata. Messages are immutable once
// produced by the parser.
type Message struct {
	// ID is the untranslated singular string (msgid).
	ID string
	// PluralID is the untranslated plural string (msgid_plural), empty
	// for singular messages.
	PluralID string
	// Context is the disambiguation context (msgctxt), empty if absent.
	Context string

	// Translation is the singular translation (msgstr).
	Translation string
	// PluralTranslations holds the plural translations in index order
	// (msgstr[0] .. msgstr[n-1]). Nil for singular messages.
	PluralTranslations []string

	// Locations are the "#: file:line" references, in file order.
	Locations []Location
	// Flags are the "#," flag names, in file order.
	Flags []string
	// AutoComments are the "#." extracted comment lines.
	AutoComments []string
	// UserComments are the free-form "# " translator comment lines.
	UserComments []string
	// Previous are the "#|" previous-field records.
	Previous []PreviousField

	// Line is the 1-based line number of the msgid line, 0 if unknown.
	Line int
	// Obsolete marks entries whose lines were prefixed with "#~".
	Obsolete bool
}

// IsPlural reports whether the message carries plural forms.
func (m *Message) IsPlural() bool {
	return m.PluralID != ""
}

// HasFlag reports whether the given flag is present.
func (m *Message) HasFlag(flag string) bool {
	for _, f := range m.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// IsFuzzy reports whether the message is marked fuzzy.
func (m *Message) IsFuzzy() bool {
	return m.HasFlag("fuzzy")
}

// IsTranslated reports whether the message has a complete, non-fuzzy
// translation.
func (m *Message) IsTranslated() bool {
	if m.ID == "" || m.IsFuzzy() {
		return false
	}
	if m.IsPlural() {
		if len(m.PluralTranslations) == 0 {
			return false
		}
		for _, s := range m.PluralTranslations {
			if s == "" {
				return false
			}
		}
		return true
	}
	return m.Translation != ""
}

// key identifies a message inside a catalog. Messages with the same id
// but different contexts are distinct entries.
type key struct {
	id      string
	context string
}

func (m *Message) key() key {
	return key{id: m.ID, context: m.Context}
}
