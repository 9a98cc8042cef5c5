// SPDX-License-Identifier: MIT

package buckingham

import (
	"fmt"

	"github.com/katalvlaran/pitheorem/dimension"
	"github.com/katalvlaran/pitheorem/matrix"
)

// BuildMatrix turns a variable set into its dimensional matrix.
//
// Implementation:
//   - Stage 1: allocate a NumBases × Len dense matrix (rows M, L, T).
//   - Stage 2: column j holds the exponents of set.At(j).
//
// Returns:
//   - names: the variable names in column order.
//   - *matrix.Dense: the dimensional matrix (3×0 for the empty set).
//
// Complexity:
//   - Time O(3·n), Space O(3·n).
func BuildMatrix(set dimension.Set) ([]string, *matrix.Dense, error) {
	n := set.Len()
	m, err := matrix.NewDense(dimension.NumBases, n)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opBuild, err)
	}
	for j := 0; j < n; j++ {
		dims := set.At(j).Dims()
		for _, b := range dimension.Bases() {
			if err = m.Set(int(b), j, dims[b]); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", opBuild, err)
			}
		}
	}

	return set.Names(), m, nil
}
