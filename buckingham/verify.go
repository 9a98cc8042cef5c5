// SPDX-License-Identifier: MIT

package buckingham

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/pitheorem/dimension"
	"github.com/katalvlaran/pitheorem/matrix"
)

// DimensionOf substitutes every symbol of t by its exponent vector in set and
// returns the combined dimension Σ exponent_i · dims_i, i.e. A·x where A is
// the dimensional matrix of set and x the term's exponent vector.
//
// Errors:
//   - ErrUnknownSymbol when a factor names a variable not in set.
func DimensionOf(set dimension.Set, t Term) (dimension.Exponents, error) {
	for _, f := range t.Factors {
		if _, ok := set.Lookup(f.Symbol); !ok {
			return dimension.Exponents{}, fmt.Errorf("%q: %w", f.Symbol, ErrUnknownSymbol)
		}
	}
	names, m, err := BuildMatrix(set)
	if err != nil {
		return dimension.Exponents{}, err
	}
	y, err := matrix.MatVec(m, t.Vector(names))
	if err != nil {
		return dimension.Exponents{}, err
	}

	var out dimension.Exponents
	copy(out[:], y)

	return out, nil
}

// Verify checks that t is dimensionless over set.
func Verify(set dimension.Set, t Term) error {
	dims, err := DimensionOf(set, t)
	if err != nil {
		return fmt.Errorf("%s: %w", opVerify, err)
	}
	if !dims.IsDimensionless() {
		return fmt.Errorf("%s: %s has dimension %s: %w", opVerify, t, dims, ErrNotDimensionless)
	}

	return nil
}

// Verify re-checks the whole result: A·N = 0 where the columns of N are the
// basis vectors, every term matches its basis vector, and every term is
// dimensionless by substitution.
func (r *Result) Verify() error {
	names, a, err := BuildMatrix(r.Variables)
	if err != nil {
		return fmt.Errorf("%s: %w", opVerify, err)
	}
	if len(r.Terms) != len(r.Basis) || len(r.Basis) != r.Expected() {
		return fmt.Errorf("%s: %d terms, %d vectors, %d expected: %w",
			opVerify, len(r.Terms), len(r.Basis), r.Expected(), ErrBasisSize)
	}
	if err = verifyKernel(a, r.Basis); err != nil {
		return fmt.Errorf("%s: %w", opVerify, err)
	}
	for k, v := range r.Basis {
		if !r.Terms[k].Vector(names).Equal(v) {
			return fmt.Errorf("%s: term %d does not match basis vector %d: %w",
				opVerify, k+1, k, matrix.ErrDimensionMismatch)
		}
		if err = Verify(r.Variables, r.Terms[k]); err != nil {
			return err
		}
	}

	return nil
}

// verifyKernel stacks basis as the columns of N and checks that A·N is zero.
func verifyKernel(a *matrix.Dense, basis []matrix.Vector) error {
	if len(basis) == 0 {
		return nil
	}
	rows := make([][]*big.Rat, len(basis))
	for k, v := range basis {
		rows[k] = v
	}
	stacked, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return err
	}
	n, err := matrix.Transpose(stacked)
	if err != nil {
		return err
	}
	product, err := matrix.Mul(a, n)
	if err != nil {
		return err
	}

	_, cols := product.Shape()
	for k := 0; k < cols; k++ {
		col, err := product.Column(k)
		if err != nil {
			return err
		}
		if !col.IsZero() {
			return fmt.Errorf("basis vector %d maps to %s: %w", k, col, ErrNotDimensionless)
		}
	}

	return nil
}
