// SPDX-License-Identifier: MIT

package buckingham

import (
	"fmt"

	"github.com/katalvlaran/pitheorem/dimension"
	"github.com/katalvlaran/pitheorem/matrix"
)

// Result is the outcome of one Pi-theorem computation. It owns all of its
// data; nothing is shared with the input or across calls.
type Result struct {
	Variables    dimension.Set   // input, in column order
	Rank         int             // rank of the dimensional matrix
	Basis        []matrix.Vector // null-space basis, len == Variables.Len() − Rank
	Terms        []Term          // one Pi term per basis vector, same order
	IntegerBasis bool            // whether basis vectors were scaled to integers
}

// Compute applies the Buckingham Pi theorem to set.
//
// Implementation:
//   - Stage 1: BuildMatrix (names + 3×n dimensional matrix).
//   - Stage 2: Solve (rank + exact null-space basis).
//   - Stage 3: Synthesize (one monomial per basis vector).
//
// Behavior highlights:
//   - The empty set and dimensionally independent sets yield zero terms, not errors.
//   - Pure: no I/O, no shared state; safe to call concurrently.
//
// Errors:
//   - Only kernel-level failures (ErrBasisSize); input validity is
//     guaranteed by dimension.Set.
func Compute(set dimension.Set, opts ...matrix.Option) (*Result, error) {
	names, m, err := BuildMatrix(set)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	rank, basis, err := Solve(m, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	terms, err := Synthesize(names, basis)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}

	return &Result{
		Variables:    set,
		Rank:         rank,
		Basis:        basis,
		Terms:        terms,
		IntegerBasis: matrix.IntegerBasis(opts...),
	}, nil
}

// ComputeRaw validates loosely-typed rows and computes their Pi terms.
// A row with other than three exponents fails with
// *dimension.MalformedVariableError before any matrix is built.
func ComputeRaw(raws []dimension.Raw, opts ...matrix.Option) (*Result, error) {
	set, err := dimension.Validate(raws)
	if err != nil {
		return nil, err
	}

	return Compute(set, opts...)
}

// Strings renders the terms in text form.
func (r *Result) Strings() []string { return Strings(r.Terms) }

// Expected returns the number of Pi terms the theorem predicts, Len − Rank.
func (r *Result) Expected() int { return r.Variables.Len() - r.Rank }
