// SPDX-License-Identifier: MIT
// Package: pitheorem/dimension
//
// Purpose:
//   - Single boundary where loosely-typed input becomes a validated Set.
//   - After Validate/NewSet succeed, the malformed-length error class cannot
//     occur anywhere downstream: Exponents is a fixed-size array.
//
// Validation order per variable (first failure wins, variables in input order):
//   name non-empty and well-formed → exactly NumBases components → no nil
//   component → unique name.
//
// Names are trimmed before they are stored or compared, so " rho" and "rho"
// collide. A name is rendered verbatim inside Pi terms and must not contain
// whitespace or the operator characters of the rendered forms.

package dimension

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

// nameOperators are the characters the term renderers give meaning to.
const nameOperators = "*/^()·{}"

// checkName trims name and rejects it when empty or when it contains
// whitespace or one of nameOperators.
func checkName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if strings.ContainsAny(name, nameOperators) || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return "", fmt.Errorf("%q: %w", name, ErrInvalidName)
	}

	return name, nil
}

// NewVariable validates and builds a Variable. The name is stored trimmed;
// dims is copied.
//
// Errors:
//   - ErrEmptyName, ErrInvalidName.
//   - *MalformedVariableError when a component is nil.
func NewVariable(name string, dims Exponents) (Variable, error) {
	name, err := checkName(name)
	if err != nil {
		return Variable{}, err
	}
	for i, x := range dims {
		if x == nil {
			return Variable{}, &MalformedVariableError{Name: name, Got: NumBases, Nil: i}
		}
	}

	return Variable{name: name, dims: dims.Clone()}, nil
}

// NewSet builds an ordered Set, rejecting duplicate names.
// Zero variables is valid and yields the empty Set.
func NewSet(vars ...Variable) (Set, error) {
	s := Set{
		vars:  make([]Variable, 0, len(vars)),
		index: make(map[string]int, len(vars)),
	}
	for i, v := range vars {
		if v.name == "" {
			return Set{}, fmt.Errorf("variable #%d: %w", i, ErrEmptyName)
		}
		if _, dup := s.index[v.name]; dup {
			return Set{}, fmt.Errorf("variable %q: %w", v.name, ErrDuplicateVariable)
		}
		s.index[v.name] = len(s.vars)
		s.vars = append(s.vars, v)
	}

	return s, nil
}

// Validate converts boundary rows into a Set, preserving their order.
//
// Implementation:
//   - Stage 1: per row, check the name, the component count (exactly
//     NumBases) and that every component is non-nil.
//   - Stage 2: assemble the Set (duplicate detection).
//
// Errors:
//   - *MalformedVariableError (errors.Is ErrMalformedVariable) for a wrong
//     component count or a nil component.
//   - ErrEmptyName, ErrInvalidName, ErrDuplicateVariable (wrapped with the
//     row context). Duplicates are detected on trimmed names.
//
// Determinism:
//   - Rows are visited in order; the first failure is reported.
func Validate(raws []Raw) (Set, error) {
	vars := make([]Variable, 0, len(raws))
	for i, r := range raws {
		name, err := checkName(r.Name)
		if err != nil {
			return Set{}, fmt.Errorf("variable #%d: %w", i, err)
		}
		if len(r.Exponents) != NumBases {
			return Set{}, &MalformedVariableError{Name: name, Got: len(r.Exponents), Nil: -1}
		}
		var dims Exponents
		copy(dims[:], r.Exponents)
		v, err := NewVariable(name, dims)
		if err != nil {
			return Set{}, err
		}
		vars = append(vars, v)
	}

	return NewSet(vars...)
}

// ParseRat parses an exponent literal: an integer ("-3"), a fraction ("1/2")
// or a decimal ("0.5").
func ParseRat(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%q: %w", s, ErrBadExponent)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%q: %w", s, ErrBadExponent)
	}

	return r, nil
}

// ParseRaw parses a name and comma-separated exponents, e.g. "rho" and
// "1,-3,0". The component count is NOT checked here; Validate reports it.
func ParseRaw(name, exps string) (Raw, error) {
	fields := strings.Split(exps, ",")
	out := make([]*big.Rat, 0, len(fields))
	for _, f := range fields {
		r, err := ParseRat(f)
		if err != nil {
			return Raw{}, fmt.Errorf("variable %q: %w", name, err)
		}
		out = append(out, r)
	}

	return Raw{Name: strings.TrimSpace(name), Exponents: out}, nil
}
