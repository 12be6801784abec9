package core

import (
	"errors"
	"fmt"
)

// ParseError is a structural fault in the descriptor block. Generation stops
// on the first one.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("option descriptor: %s", e.Reason)
	}
	return fmt.Sprintf("option descriptor line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// NewParseError builds a ParseError with a formatted reason.
func NewParseError(line int, text string, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Text: text, Reason: fmt.Sprintf(format, args...)}
}

func IsParseErr(err error) bool {
	var pErr *ParseError
	return errors.As(err, &pErr)
}

// VersionMismatchError is returned when a config file requires another generator version.
type VersionMismatchError struct {
	Required string
	Current  string
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("config requires generator version %s, running %s", e.Required, e.Current)
}

func IsVersionMismatchErr(err error) bool {
	var vErr *VersionMismatchError
	return errors.As(err, &vErr)
}
