// SPDX-License-Identifier: MIT
// Package matrix provides exact linear-algebra kernels over *big.Rat:
// reduced row-echelon form, rank, null-space basis, matrix product,
// matrix-vector product and transpose. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - There is no epsilon anywhere: a pivot is exactly zero or exactly non-zero.
//   - Inputs are never mutated; every result is freshly allocated.
//   - Loop orders are fixed, so identical inputs produce identical outputs.

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opRREF      = "RREF"
	opRank      = "Rank"
	opNullSpace = "NullSpace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: materialize both operands as *Dense (fast-path: clone) and run
//     the i→k→j triple loop, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r*n*c) rational operations, Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := denseCopy(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := denseCopy(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := da.r, da.c, db.c
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av      *big.Rat
		tmp     = new(big.Rat)
	)
	for i = 0; i < rows; i++ {
		for k = 0; k < inner; k++ {
			av = da.data[i*inner+k]
			if av.Sign() == 0 {
				continue // skip zero
			}
			for j = 0; j < cols; j++ {
				tmp.Mul(av, db.data[k*cols+j])
				res.data[i*cols+j].Add(res.data[i*cols+j], tmp)
			}
		}
	}

	return res, nil
}

// MatVec computes y = A·x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != A.Cols), ErrNilEntry.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(a Matrix, x Vector) (Vector, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, a.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	da, err := denseCopy(a)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make(Vector, da.r)
	tmp := new(big.Rat)
	var i, j int
	for i = 0; i < da.r; i++ {
		acc := new(big.Rat)
		for j = 0; j < da.c; j++ {
			if x[j].Sign() == 0 {
				continue
			}
			tmp.Mul(da.data[i*da.c+j], x[j])
			acc.Add(acc, tmp)
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := denseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := &Dense{r: src.c, c: src.r, data: make([]*big.Rat, len(src.data))}
	var i, j int
	for i = 0; i < src.r; i++ {
		for j = 0; j < src.c; j++ {
			// src owns a private copy, so its slots can move without aliasing m.
			res.data[j*src.r+i] = src.data[i*src.c+j]
		}
	}

	return res, nil
}

// RREF reduces m to reduced row-echelon form using exact rational arithmetic.
//
// Implementation:
//   - Stage 1: copy m into a private *Dense (m is never mutated).
//   - Stage 2: sweep columns left→right with a current row r. For each column,
//     the pivot is the FIRST row at or below r with a non-zero entry; rows are
//     swapped to bring it up, the pivot row is divided by the pivot, and the
//     column is cleared in every other row (above and below).
//   - Stage 3: record the pivot column indices in ascending order.
//
// Behavior highlights:
//   - Pivot selection is a pure structural test (Sign() != 0); no tolerance.
//   - The reduced form of a matrix is unique, so the output depends only on m.
//
// Returns:
//   - *Dense: the reduced matrix (same shape as m).
//   - []int : pivot columns, ascending; len == rank.
//
// Errors:
//   - ErrNilMatrix (wrapped with "RREF").
//
// Complexity:
//   - Time O(r*c*min(r,c)) rational operations, Space O(r*c).
func RREF(m Matrix) (*Dense, []int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}
	work, err := denseCopy(m)
	if err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}

	rows, cols := work.r, work.c
	pivots := make([]int, 0, min(rows, cols))
	var (
		row, col, i, j, p int
		pivot             = new(big.Rat)
		factor            = new(big.Rat)
		tmp               = new(big.Rat)
	)
	for col = 0; col < cols && row < rows; col++ {
		// Stage 2a: locate the pivot.
		p = -1
		for i = row; i < rows; i++ {
			if work.data[i*cols+col].Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue // free column
		}
		work.swapRows(p, row)

		// Stage 2b: normalize the pivot row. Entries left of col are already zero.
		pivot.Set(work.data[row*cols+col])
		for j = col; j < cols; j++ {
			work.data[row*cols+j].Quo(work.data[row*cols+j], pivot)
		}

		// Stage 2c: clear the pivot column in every other row.
		for i = 0; i < rows; i++ {
			if i == row || work.data[i*cols+col].Sign() == 0 {
				continue
			}
			factor.Set(work.data[i*cols+col])
			for j = col; j < cols; j++ {
				tmp.Mul(factor, work.data[row*cols+j])
				work.data[i*cols+j].Sub(work.data[i*cols+j], tmp)
			}
		}

		pivots = append(pivots, col)
		row++
	}

	return work, pivots, nil
}

// Rank returns the number of pivots of m's reduced row-echelon form.
// 0 ≤ Rank ≤ min(Rows, Cols); an empty matrix has rank 0.
func Rank(m Matrix) (int, error) {
	_, pivots, err := RREF(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return len(pivots), nil
}

// NullSpace computes a basis of {x : m·x = 0}.
//
// Implementation:
//   - Stage 1: R, pivots := RREF(m).
//   - Stage 2: for every free (non-pivot) column f in ascending order build the
//     vector with x[f] = 1, x[g] = 0 for the other free columns g, and
//     x[pivots[r]] = −R[r,f] for every pivot row r.
//   - Stage 3: optionally scale each vector to its smallest integral positive
//     multiple (DefaultIntegerBasis; see WithIntegerBasis).
//
// Behavior highlights:
//   - len(basis) == Cols − Rank exactly.
//   - Cols == 0 or full column rank yields an empty (non-nil) basis.
//   - Deterministic: the basis order follows the free-column order.
//
// Errors:
//   - ErrNilMatrix (wrapped with "NullSpace").
//
// Complexity:
//   - RREF cost plus O((c−r)*c) for assembly.
func NullSpace(m Matrix, opts ...Option) ([]Vector, error) {
	o := gatherOptions(opts...)
	reduced, pivots, err := RREF(m)
	if err != nil {
		return nil, matrixErrorf(opNullSpace, err)
	}

	cols := reduced.c
	isPivot := make([]bool, cols)
	for _, pc := range pivots {
		isPivot[pc] = true
	}

	basis := make([]Vector, 0, cols-len(pivots))
	var free, r int
	for free = 0; free < cols; free++ {
		if isPivot[free] {
			continue
		}
		v := make(Vector, cols)
		for j := range v {
			v[j] = new(big.Rat)
		}
		v[free].SetInt64(1)
		for r = 0; r < len(pivots); r++ {
			v[pivots[r]].Neg(reduced.data[r*cols+free])
		}
		if o.integerBasis {
			if v, err = v.ScaleToIntegers(); err != nil {
				return nil, matrixErrorf(opNullSpace, err)
			}
		}
		basis = append(basis, v)
	}

	return basis, nil
}
