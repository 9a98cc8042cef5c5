// SPDX-License-Identifier: MIT

// Package dimension: domain types for dimensional analysis over the three
// base dimensions Mass, Length and Time.
package dimension

import (
	"math/big"
	"strings"
)

// Base identifies a fundamental dimension. The numeric value is the row of
// the dimensional matrix.
type Base int

const (
	Mass Base = iota
	Length
	Time
)

// NumBases is the fixed number of base dimensions (rows of the dimensional matrix).
const NumBases = 3

// Bases lists the base dimensions in row order.
func Bases() []Base { return []Base{Mass, Length, Time} }

// String returns the conventional symbol (M, L, T).
func (b Base) String() string {
	switch b {
	case Mass:
		return "M"
	case Length:
		return "L"
	case Time:
		return "T"
	default:
		return "?"
	}
}

// Exponents is the (Mass, Length, Time) exponent vector of a quantity.
// Values handed out by this package never share *big.Rat pointers with the
// caller, so an Exponents obtained from a Variable can be mutated freely.
type Exponents [NumBases]*big.Rat

// NewExponents builds an integer exponent vector.
func NewExponents(m, l, t int64) Exponents {
	return Exponents{
		new(big.Rat).SetInt64(m),
		new(big.Rat).SetInt64(l),
		new(big.Rat).SetInt64(t),
	}
}

// At returns a copy of the exponent of base b.
func (e Exponents) At(b Base) *big.Rat {
	return new(big.Rat).Set(e[b])
}

// Clone deep-copies the vector.
func (e Exponents) Clone() Exponents {
	var out Exponents
	for i, x := range e {
		out[i] = new(big.Rat).Set(x)
	}

	return out
}

// IsDimensionless reports whether every exponent is zero.
func (e Exponents) IsDimensionless() bool {
	for _, x := range e {
		if x.Sign() != 0 {
			return false
		}
	}

	return true
}

// Equal reports exact equality.
func (e Exponents) Equal(o Exponents) bool {
	for i := range e {
		if e[i].Cmp(o[i]) != 0 {
			return false
		}
	}

	return true
}

// String renders the dimension formula, e.g. "M L^-1 T^-2"; a dimensionless
// vector renders as "1".
func (e Exponents) String() string {
	parts := make([]string, 0, NumBases)
	for _, b := range Bases() {
		x := e[b]
		switch {
		case x.Sign() == 0:
			continue
		case x.IsInt() && x.Num().IsInt64() && x.Num().Int64() == 1:
			parts = append(parts, b.String())
		case x.IsInt():
			parts = append(parts, b.String()+"^"+x.RatString())
		default:
			parts = append(parts, b.String()+"^("+x.RatString()+")")
		}
	}
	if len(parts) == 0 {
		return "1"
	}

	return strings.Join(parts, " ")
}

// Variable is a named physical quantity. It is immutable: the name and the
// exponents are fixed at construction and accessors return copies.
type Variable struct {
	name string
	dims Exponents
}

// Name returns the variable's symbol.
func (v Variable) Name() string { return v.name }

// Dims returns a copy of the exponent vector.
func (v Variable) Dims() Exponents { return v.dims.Clone() }

// String renders "name [M L^-1 T^-2]".
func (v Variable) String() string { return v.name + " [" + v.dims.String() + "]" }

// Set is an ordered, validated collection of variables with unique names.
// The order is the column order of the dimensional matrix and the symbol
// order of every Pi term. The zero Set is empty and valid.
type Set struct {
	vars  []Variable
	index map[string]int
}

// Len returns the number of variables.
func (s Set) Len() int { return len(s.vars) }

// At returns the i-th variable. It panics if i is out of range, like a slice index.
func (s Set) At(i int) Variable { return s.vars[i] }

// Variables returns the variables in order (the slice is a copy).
func (s Set) Variables() []Variable {
	return append([]Variable(nil), s.vars...)
}

// Names returns the variable names in order.
func (s Set) Names() []string {
	out := make([]string, len(s.vars))
	for i, v := range s.vars {
		out[i] = v.name
	}

	return out
}

// Lookup finds a variable by name.
func (s Set) Lookup(name string) (Variable, bool) {
	i, ok := s.index[name]
	if !ok {
		return Variable{}, false
	}

	return s.vars[i], true
}

// Raw is the loosely-typed boundary form of a variable: a name and an
// exponent sequence of any length. Validate turns a []Raw into a Set.
type Raw struct {
	Name      string
	Exponents []*big.Rat
}

// RawInt64 is a convenience constructor for integer rows.
func RawInt64(name string, exps ...int64) Raw {
	out := make([]*big.Rat, len(exps))
	for i, x := range exps {
		out[i] = new(big.Rat).SetInt64(x)
	}

	return Raw{Name: name, Exponents: out}
}
