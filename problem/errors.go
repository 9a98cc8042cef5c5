// SPDX-License-Identifier: MIT

package problem

import (
	"errors"
	"fmt"
)

// ErrSyntax classifies every ParseError.
var ErrSyntax = errors.New("problem: invalid document")

// ParseError locates a document error. Line and Column are 1-based; zero
// means the position is unknown.
type ParseError struct {
	File   string
	Line   int
	Column int
	Msg    string
	Err    error // underlying domain error, if any
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	pos := ""
	switch {
	case e.File != "" && e.Line > 0:
		pos = fmt.Sprintf("%s:%d:%d: ", e.File, e.Line, e.Column)
	case e.File != "":
		pos = e.File + ": "
	case e.Line > 0:
		pos = fmt.Sprintf("line %d:%d: ", e.Line, e.Column)
	}

	return "problem: " + pos + e.Msg
}

// Unwrap makes errors.Is(err, ErrSyntax) hold for every ParseError, and
// errors.Is(err, cause) for the wrapped domain error.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSyntax}
	}

	return []error{ErrSyntax, e.Err}
}
