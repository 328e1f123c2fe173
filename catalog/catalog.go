// Package catalog implements the in-memory translation catalog that the
// PO parser populates: a collection of messages keyed by id and context,
// with obsolete entries kept separately and catalog-wide metadata taken
// from the header block's MIME headers.
package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// HeaderField is one "Key: Value" pair from the catalog header block.
// Order is preserved so the header can be reproduced as written.
type HeaderField struct {
	Name  string
	Value string
}

// Catalog holds the parsed messages of one PO file together with its
// header metadata.
type Catalog struct {
	// Locale is the catalog language code (e.g. "ru", "pt_BR").
	Locale string
	// Domain is the gettext domain (default "messages").
	Domain string
	// Charset is the catalog text encoding, updated from the
	// Content-Type header when one is present.
	Charset string
	// Project is the project name from Project-Id-Version.
	Project string
	// Version is the project version from Project-Id-Version.
	Version string
	// Fuzzy reports whether the header block carried a fuzzy flag.
	Fuzzy bool

	headers    []HeaderField
	numPlurals int // 0 until resolved from the Plural-Forms header

	messages []*Message
	byKey    map[key]*Message
	obsolete map[key]*Message
}

// New creates an empty catalog with the given identity. Charset defaults
// to utf-8 when empty.
func New(locale, domain, charset, version string) *Catalog {
	if domain == "" {
		domain = "messages"
	}
	if charset == "" {
		charset = "utf-8"
	}
	return &Catalog{
		Locale:   locale,
		Domain:   domain,
		Charset:  charset,
		Version:  version,
		byKey:    make(map[key]*Message),
		obsolete: make(map[key]*Message),
	}
}

// NumPlurals returns the number of plural forms the catalog expects.
// The Plural-Forms header wins; without one the count is derived from
// the locale, falling back to 2.
func (c *Catalog) NumPlurals() int {
	if c.numPlurals > 0 {
		return c.numPlurals
	}
	if c.Locale != "" {
		return pluralCountForLang(c.Locale)
	}
	return 2
}

// SetMimeHeaders replaces the catalog's header fields and interprets the
// well-known ones: Content-Type (charset), Plural-Forms (nplurals),
// Project-Id-Version (project and version) and Language (locale, unless
// one was supplied up front).
func (c *Catalog) SetMimeHeaders(fields []HeaderField) {
	c.headers = fields
	for _, f := range fields {
		switch strings.ToLower(f.Name) {
		case "content-type":
			if cs := charsetFromContentType(f.Value); cs != "" {
				c.Charset = cs
			}
		case "plural-forms":
			if n := pluralCountFromHeader(f.Value); n > 0 {
				c.numPlurals = n
			}
		case "project-id-version":
			parts := strings.SplitN(f.Value, " ", 2)
			c.Project = parts[0]
			if len(parts) == 2 {
				c.Version = strings.TrimSpace(parts[1])
			}
		case "language":
			if c.Locale == "" {
				c.Locale = strings.TrimSpace(f.Value)
			}
		}
	}
}

// SetFuzzy records whether the catalog header was marked fuzzy.
func (c *Catalog) SetFuzzy(fuzzy bool) {
	c.Fuzzy = fuzzy
}

// MimeHeaders returns the header fields in file order.
func (c *Catalog) MimeHeaders() []HeaderField {
	return c.headers
}

// HeaderField returns a header value by name (case-insensitive), or ""
// when the header is absent.
func (c *Catalog) HeaderField(name string) string {
	for _, f := range c.headers {
		if strings.EqualFold(f.Name, name) {
			return f.Value
		}
	}
	return ""
}

// Add stores a non-obsolete message, replacing any previous message with
// the same id and context.
func (c *Catalog) Add(m *Message) {
	k := m.key()
	if prev, ok := c.byKey[k]; ok {
		for i, existing := range c.messages {
			if existing == prev {
				c.messages[i] = m
				break
			}
		}
		c.byKey[k] = m
		return
	}
	c.byKey[k] = m
	c.messages = append(c.messages, m)
}

// AddObsolete stores an obsolete message, keyed like Add but kept apart
// from the active entries.
func (c *Catalog) AddObsolete(m *Message) {
	c.obsolete[m.key()] = m
}

// Get returns the active message for id and context, or nil.
func (c *Catalog) Get(id, context string) *Message {
	return c.byKey[key{id: id, context: context}]
}

// GetObsolete returns the obsolete message for id and context, or nil.
func (c *Catalog) GetObsolete(id, context string) *Message {
	return c.obsolete[key{id: id, context: context}]
}

// Messages returns the active messages in insertion order (the parser
// inserts them sorted by source line).
func (c *Catalog) Messages() []*Message {
	return c.messages
}

// ObsoleteMessages returns the obsolete messages sorted by source line.
func (c *Catalog) ObsoleteMessages() []*Message {
	out := make([]*Message, 0, len(c.obsolete))
	for _, m := range c.obsolete {
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Line < out[j].Line })
	return out
}

// Len returns the number of active messages.
func (c *Catalog) Len() int {
	return len(c.messages)
}

// Stats returns translation statistics over the active messages.
func (c *Catalog) Stats() (total, translated, fuzzy, untranslated int) {
	for _, m := range c.messages {
		if m.ID == "" {
			continue
		}
		total++
		switch {
		case m.IsFuzzy():
			fuzzy++
		case m.IsTranslated():
			translated++
		default:
			untranslated++
		}
	}
	return
}

// charsetFromContentType extracts the charset parameter from a
// Content-Type header value, e.g. "text/plain; charset=UTF-8".
func charsetFromContentType(value string) string {
	idx := strings.Index(value, "charset=")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(value[idx+len("charset="):])
}

// pluralCountFromHeader extracts the nplurals parameter from a
// Plural-Forms header value, e.g. "nplurals=2; plural=(n != 1);".
// Returns 0 when the parameter is absent or malformed.
func pluralCountFromHeader(value string) int {
	idx := strings.Index(value, "nplurals=")
	if idx < 0 {
		return 0
	}
	rest := value[idx+len("nplurals="):]
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0
	}
	return n
}
