// SPDX-License-Identifier: MIT

package buckingham

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/pitheorem/matrix"
)

// Equivalent reports whether two results describe the same set of
// dimensionless relationships: same variable names (in any order) and the
// same solution span. Reordering the input changes the literal terms but
// never the span, so Equivalent(Compute(s), Compute(permute(s))) is true.
//
// Implementation:
//   - Stage 1: compare the name sets.
//   - Stage 2: express b's basis in a's column order.
//   - Stage 3: span(A) == span(B) ⇔ rank(A) == rank(B) == rank([A; B]).
func Equivalent(a, b *Result) (bool, error) {
	if a == nil || b == nil {
		return a == b, nil
	}
	names := a.Variables.Names()
	if len(names) != b.Variables.Len() {
		return false, nil
	}
	for _, n := range names {
		if _, ok := b.Variables.Lookup(n); !ok {
			return false, nil
		}
	}

	rowsA := make([][]*big.Rat, 0, len(a.Terms))
	for _, t := range a.Terms {
		rowsA = append(rowsA, t.Vector(names))
	}
	rowsB := make([][]*big.Rat, 0, len(b.Terms))
	for _, t := range b.Terms {
		rowsB = append(rowsB, t.Vector(names))
	}

	rankA, err := rankOf(rowsA, len(names))
	if err != nil {
		return false, err
	}
	rankB, err := rankOf(rowsB, len(names))
	if err != nil {
		return false, err
	}
	rankAB, err := rankOf(append(append([][]*big.Rat{}, rowsA...), rowsB...), len(names))
	if err != nil {
		return false, err
	}

	return rankA == rankB && rankA == rankAB, nil
}

// rankOf stacks rows into a matrix with cols columns and returns its rank.
func rankOf(rows [][]*big.Rat, cols int) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opEquivalent, err)
	}
	if m.Cols() != cols {
		return 0, fmt.Errorf("%s: %w", opEquivalent, matrix.ErrDimensionMismatch)
	}
	r, err := matrix.Rank(m)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opEquivalent, err)
	}

	return r, nil
}
