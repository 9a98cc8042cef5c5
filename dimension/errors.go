// SPDX-License-Identifier: MIT
// Package: pitheorem/dimension
//
// errors.go: sentinel errors and the typed malformed-variable error.
//
// Error policy:
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • MalformedVariableError carries the offending name and component count and
//     matches ErrMalformedVariable via errors.Is.
//   • Validation never panics; it fails before any matrix is built.

package dimension

import (
	"errors"
	"fmt"
)

// ErrMalformedVariable classifies every MalformedVariableError.
// Usage: if errors.Is(err, ErrMalformedVariable) { /* reject the row */ }.
var ErrMalformedVariable = errors.New("dimension: malformed variable")

// ErrEmptyName indicates a variable without a name.
var ErrEmptyName = errors.New("dimension: empty variable name")

// ErrInvalidName indicates a variable name containing whitespace or a
// character the term renderers treat as an operator (* / ^ ( ) · { }).
var ErrInvalidName = errors.New("dimension: invalid variable name")

// ErrDuplicateVariable indicates that two variables share a name. Names are
// the symbols of the Pi terms, so they must be unique.
var ErrDuplicateVariable = errors.New("dimension: duplicate variable")

// ErrUnknownPreset indicates a preset key that is not in the table.
var ErrUnknownPreset = errors.New("dimension: unknown preset")

// ErrBadExponent indicates an exponent literal that is not a rational number.
var ErrBadExponent = errors.New("dimension: invalid exponent")

// MalformedVariableError reports an exponent sequence that is not exactly
// NumBases (Mass, Length, Time) non-nil rationals long.
type MalformedVariableError struct {
	Name string // variable name as supplied (may be empty)
	Got  int    // number of components supplied
	Nil  int    // index of the first nil component, or -1
}

// Error implements error.
func (e *MalformedVariableError) Error() string {
	if e.Nil >= 0 {
		return fmt.Sprintf("dimension: variable %q: exponent component %d is missing", e.Name, e.Nil)
	}

	return fmt.Sprintf("dimension: variable %q: got %d exponent components, want %d (M, L, T)",
		e.Name, e.Got, NumBases)
}

// Unwrap lets errors.Is(err, ErrMalformedVariable) match.
func (e *MalformedVariableError) Unwrap() error { return ErrMalformedVariable }
