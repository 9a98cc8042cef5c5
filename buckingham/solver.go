// SPDX-License-Identifier: MIT

package buckingham

import (
	"fmt"

	"github.com/katalvlaran/pitheorem/matrix"
)

// Solve computes the rank of the dimensional matrix and a basis of its null
// space. Every option is forwarded to matrix.NullSpace.
//
// Behavior highlights:
//   - len(basis) == m.Cols() − rank is checked; a mismatch is ErrBasisSize.
//   - Identical input yields identical vectors in identical order.
func Solve(m matrix.Matrix, opts ...matrix.Option) (int, []matrix.Vector, error) {
	rank, err := matrix.Rank(m)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	basis, err := matrix.NullSpace(m, opts...)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	if len(basis) != m.Cols()-rank {
		return 0, nil, fmt.Errorf("%s: got %d vectors for %d cols at rank %d: %w",
			opSolve, len(basis), m.Cols(), rank, ErrBasisSize)
	}

	return rank, basis, nil
}
