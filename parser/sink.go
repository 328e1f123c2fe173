package parser

import "github.com/minios-linux/pocat/catalog"

// Sink is the catalog the parser populates. The header interpreter
// configures it before any ordinary block is processed; NumPlurals must
// stay constant while blocks are in flight.
type Sink interface {
	// NumPlurals is the number of plural translations a complete
	// plural entry must provide (indices 0..NumPlurals-1).
	NumPlurals() int
	// SetMimeHeaders installs the header block's key/value pairs.
	SetMimeHeaders(fields []catalog.HeaderField)
	// SetFuzzy records whether the header block carried a fuzzy marker.
	SetFuzzy(fuzzy bool)
	// Add stores a finished non-obsolete message.
	Add(m *catalog.Message)
	// AddObsolete stores a finished obsolete message.
	AddObsolete(m *catalog.Message)
}
