package parser

import (
	"errors"
	"fmt"
	"sync"
)

// ParseError describes one grammar or completeness violation, carrying
// the 1-based line number and the raw offending line.
type ParseError struct {
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Msg, e.Text)
}

// Collector accumulates parse errors under the collect-and-continue
// policy. It is append-only and safe for concurrent use; cross-worker
// ordering is not guaranteed.
type Collector struct {
	mu   sync.Mutex
	errs []*ParseError
}

// Add records one error.
func (c *Collector) Add(err *ParseError) {
	c.mu.Lock()
	c.errs = append(c.errs, err)
	c.mu.Unlock()
}

// Errors returns a snapshot of the recorded errors.
func (c *Collector) Errors() []*ParseError {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*ParseError, len(c.errs))
	copy(out, c.errs)
	return out
}

// Len returns the number of recorded errors.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errs)
}

// asParseError converts any error raised during block processing into a
// ParseError for collection.
func asParseError(err error) *ParseError {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe
	}
	return &ParseError{Msg: err.Error()}
}
