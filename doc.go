// Package pitheorem finds the dimensionless groups of a physical problem
// with the Buckingham Pi theorem, in exact rational arithmetic.
//
// 🚀 What is pitheorem?
//
//	A small library plus a command line that brings together:
//		• Dimensions: variables as (M, L, T) exponent vectors, presets for common quantities
//		• Exact linear algebra: big.Rat matrices, RREF, rank, null space
//		• Pi terms: one dimensionless monomial per null-space basis vector
//		• Problem files: ordered YAML documents with explicit exponents or preset keys
//		• Rendering: plain text, Unicode superscripts, LaTeX, YAML and JSON reports
//
// ✨ Why exact arithmetic?
//
//   - No epsilon: a pivot is zero or it is not
//   - Deterministic: the same input always yields the same terms in the same order
//   - Rational exponents (x^(1/2)) are first-class
//
// Under the hood, everything is organized under a few subpackages:
//
//	matrix/        rational Dense matrices, RREF, Rank, NullSpace, MatVec
//	dimension/     Exponents, Variable, Set, Validate, preset table
//	buckingham/    BuildMatrix, Solve, Synthesize, Compute, Verify, Render
//	problem/       YAML problem documents
//	internal/cli/  the pitheorem command (solve, matrix, presets)
//
// Quick example (Reynolds number):
//
//	rho [M L^-3], v [L T^-1], D [L], mu [M L^-1 T^-1]
//	  → rank 3, 4 − 3 = 1 term:  Pi_1 = mu/(rho*v*D)
//
//	go install github.com/katalvlaran/pitheorem/cmd/pitheorem@latest
package pitheorem
