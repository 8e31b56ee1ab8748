package css

import (
	"fmt"

	"go.uber.org/multierr"
)

// ParseError is a recoverable parse error (§7): the construct it names was
// dropped from the output, but parsing continued at the next boundary.
type ParseError struct {
	Line   int
	Column int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Parse error at %d:%d, %s", e.Line, e.Column, e.Reason)
}

func newError(line, column int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Column: column, Reason: fmt.Sprintf(format, args...)}
}

func newErrorAt(n Node, format string, args ...any) *ParseError {
	line, column := n.Pos()
	return newError(line, column, format, args...)
}

// Err combines every recoverable error from a parse into a single error via
// multierr, for callers who don't want to walk Errors themselves.
func (s *Stylesheet) Err() error {
	if len(s.Errors) == 0 {
		return nil
	}
	errs := make([]error, len(s.Errors))
	for i, e := range s.Errors {
		errs[i] = e
	}
	return multierr.Combine(errs...)
}
