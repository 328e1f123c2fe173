package parser

import (
	"strings"

	"github.com/minios-linux/pocat/blocks"
	"github.com/minios-linux/pocat/catalog"
)

// InterpretHeader parses block 0 — the header block — and configures
// the sink with its metadata before any ordinary block runs. The
// ordering is load-bearing: plural completeness validation in ordinary
// blocks reads the plural count the header establishes.
//
// An empty block list leaves the sink untouched. When the header fails
// to parse, abort policy propagates the error; continue policy records
// it and leaves the sink at its defaults.
func InterpretHeader(blks []blocks.Block, sink Sink, col *Collector, opts Options) error {
	if len(blks) == 0 {
		return nil
	}

	m := &machine{sink: sink, log: opts.logger(), header: true}
	msg, err := m.processBlock(blks[0])
	if err != nil {
		if opts.AbortOnInvalid {
			return err
		}
		col.Add(asParseError(err))
		return nil
	}

	sink.SetMimeHeaders(headerFields(msg.Translation))
	sink.SetFuzzy(strings.Contains(blks[0].Text, ", fuzzy"))
	return nil
}

// headerFields splits the header msgstr into ordered key/value pairs,
// one pair per line, on the first ":". Lines without a separator are
// skipped.
func headerFields(text string) []catalog.HeaderField {
	var fields []catalog.HeaderField
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		fields = append(fields, catalog.HeaderField{
			Name:  strings.TrimSpace(line[:idx]),
			Value: strings.TrimSpace(line[idx+1:]),
		})
	}
	return fields
}
