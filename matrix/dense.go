// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of exact rationals with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Never alias caller-owned *big.Rat values: every write and every read copies.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1) (plus rational copy); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"     // method tag used in error wrappers
	ctxSet = "Set"    // method tag used in error wrappers
	ctxRow = "Row"    // method tag used in error wrappers
	ctxNew = "New"    // ctor tag for NewDenseFromRows / NewDenseInt64
	ctxCol = "Column" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable "Dense.<method>(row,col): <sentinel>" shape; the sentinel survives via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of *big.Rat.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//     Every slot holds its own non-nil *big.Rat; no two slots share a pointer.
type Dense struct {
	r, c int        // row and column counts (>=0)
	data []*big.Rat // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate the flat buffer and give every slot its own zero rational.
//
// Behavior highlights:
//   - Zero-sized shapes (3×0, 0×0) are legal: a problem without variables is a
//     valid degenerate input for the null-space kernels.
//
// Errors:
//   - ErrBadShape (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	buf := make([]*big.Rat, rows*cols)
	for i := range buf {
		buf[i] = new(big.Rat)
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseFromRows builds a Dense from a slice of rows, copying every entry.
// All rows must have the same length; a nil entry is rejected.
//
// Errors:
//   - ErrBadShape (ragged rows).
//   - ErrNilEntry (nil rational).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]*big.Rat) (*Dense, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, denseErrorf(ctxNew, i, len(rows[i]), ErrBadShape)
		}
		if err = ValidateRats(rows[i]); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", ctxNew, i, err)
		}
		for j = 0; j < cols; j++ {
			m.data[i*cols+j].Set(rows[i][j])
		}
	}

	return m, nil
}

// NewDenseInt64 is a convenience constructor for integer tables, the common
// case for dimensional exponents.
func NewDenseInt64(rows [][]int64) (*Dense, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, denseErrorf(ctxNew, i, len(row), ErrBadShape)
		}
		for j, v := range row {
			m.data[i*cols+j].SetInt64(v)
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and computes the flat offset.
// Returns the bare ErrOutOfRange; public methods wrap it with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns a copy of the element at (row, col).
//
// Errors:
//   - ErrOutOfRange wrapped as "Dense.At(i,j): ...".
//
// Complexity:
//   - Time O(1) plus the size of the rational.
func (m *Dense) At(row, col int) (*big.Rat, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxAt, row, col, err)
	}

	return new(big.Rat).Set(m.data[idx]), nil
}

// Set stores a copy of v at (row, col).
//
// Errors:
//   - ErrOutOfRange, ErrNilEntry, wrapped as "Dense.Set(i,j): ...".
func (m *Dense) Set(row, col int, v *big.Rat) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if v == nil {
		return denseErrorf(ctxSet, row, col, ErrNilEntry)
	}
	m.data[idx].Set(v)

	return nil
}

// Row returns a copy of row i as a Vector.
func (m *Dense) Row(i int) (Vector, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make(Vector, m.c)
	base := i * m.c
	for j := 0; j < m.c; j++ {
		out[j] = new(big.Rat).Set(m.data[base+j])
	}

	return out, nil
}

// Column returns a copy of column j as a Vector.
func (m *Dense) Column(j int) (Vector, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make(Vector, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = new(big.Rat).Set(m.data[i*m.c+j])
	}

	return out, nil
}

// swapRows exchanges rows a and b in place by swapping slot pointers.
// Indices are trusted (internal use by RREF only).
func (m *Dense) swapRows(a, b int) {
	if a == b {
		return
	}
	ra, rb := a*m.c, b*m.c
	for j := 0; j < m.c; j++ {
		m.data[ra+j], m.data[rb+j] = m.data[rb+j], m.data[ra+j]
	}
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	return m.cloneDense()
}

func (m *Dense) cloneDense() *Dense {
	buf := make([]*big.Rat, len(m.data))
	for i, v := range m.data {
		buf[i] = new(big.Rat).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: buf}
}

// Equal reports whether o has the same shape and exactly equal entries.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i].Cmp(o.data[i]) != 0 {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer: one bracketed row per line, entries in
// lowest terms ("-1/2", "3").
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.data[i*m.c+j].RatString())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// denseCopy materializes any Matrix as a fresh *Dense.
// Fast-path: *Dense is deep-cloned directly; otherwise entries are read via At
// in fixed i→j order.
func denseCopy(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.cloneDense(), nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v *big.Rat
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if v == nil {
				return nil, denseErrorf(ctxAt, i, j, ErrNilEntry)
			}
			out.data[i*cols+j].Set(v)
		}
	}

	return out, nil
}
