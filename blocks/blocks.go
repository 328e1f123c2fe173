// Package blocks segments raw PO file content into blank-line-delimited
// blocks, each tagged with its 1-based starting line number.
//
// A block is a run of consecutive non-blank lines and corresponds to one
// catalog entry (or the header block). Splitting is pure: the same content
// always yields the same blocks, and no block is ever empty.
package blocks

import "strings"

// Block is one blank-line-delimited group of contiguous lines.
type Block struct {
	// StartLine is the 1-based line number of the block's first line
	// in the original content.
	StartLine int
	// Text is the block content with original line breaks preserved.
	Text string
}

// Lines returns the individual lines of the block.
func (b Block) Lines() []string {
	return strings.Split(b.Text, "\n")
}

// Split breaks content into blocks separated by one or more blank lines.
// Windows line endings are tolerated; a line consisting only of whitespace
// counts as blank.
func Split(content string) []Block {
	lines := strings.Split(content, "\n")

	var (
		result  []Block
		pending []string
	)
	start := 1

	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			if len(pending) > 0 {
				result = append(result, Block{StartLine: start, Text: strings.Join(pending, "\n")})
				pending = nil
			}
			// Next block can start no earlier than the line after this blank.
			start = i + 2
		} else {
			pending = append(pending, line)
		}
	}
	if len(pending) > 0 {
		result = append(result, Block{StartLine: start, Text: strings.Join(pending, "\n")})
	}
	return result
}
