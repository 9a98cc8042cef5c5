// SPDX-License-Identifier: MIT

package buckingham

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/pitheorem/matrix"
)

// Factor is one symbol raised to a rational power. A nil Exponent reads as
// zero, like an omitted factor.
type Factor struct {
	Symbol   string
	Exponent *big.Rat
}

// Term is a dimensionless monomial ∏ symbol_i^exponent_i. Factors follow the
// column order of the variable set; zero exponents are omitted.
type Term struct {
	Factors []Factor
}

// Exponent returns a copy of the exponent of symbol (zero when absent).
func (t Term) Exponent(symbol string) *big.Rat {
	for _, f := range t.Factors {
		if f.Symbol == symbol && f.Exponent != nil {
			return new(big.Rat).Set(f.Exponent)
		}
	}

	return new(big.Rat)
}

// Vector expands the term into a full exponent vector over names.
func (t Term) Vector(names []string) matrix.Vector {
	out := make(matrix.Vector, len(names))
	for i, name := range names {
		out[i] = t.Exponent(name)
	}

	return out
}

// Synthesize maps each basis vector to a Term: component i is the exponent
// of names[i].
//
// Errors:
//   - matrix.ErrDimensionMismatch when a vector's length differs from len(names).
//   - matrix.ErrNilEntry when a component is nil.
//
// Determinism:
//   - One Term per vector, in basis order; factors in names order.
func Synthesize(names []string, basis []matrix.Vector) ([]Term, error) {
	terms := make([]Term, 0, len(basis))
	for k, v := range basis {
		if err := matrix.ValidateVecLen(v, len(names)); err != nil {
			return nil, fmt.Errorf("%s: basis vector %d: %w", opSynthesize, k, err)
		}
		var factors []Factor
		for i, x := range v {
			if x.Sign() == 0 {
				continue
			}
			factors = append(factors, Factor{Symbol: names[i], Exponent: new(big.Rat).Set(x)})
		}
		terms = append(terms, Term{Factors: factors})
	}

	return terms, nil
}
