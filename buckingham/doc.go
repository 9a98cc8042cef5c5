// Package buckingham applies the Buckingham Pi theorem to a set of physical
// variables.
//
// 🚀 What is the Pi theorem?
//
//	A physically complete relation among n variables governed by k independent
//	base dimensions can be rewritten as a relation among n − k dimensionless
//	groups (Pi terms). The groups are read off the null space of the
//	dimensional matrix.
//
// ✨ Pipeline:
//   - BuildMatrix: variables → 3×n matrix of M, L, T exponents (column order = input order)
//   - Solve: exact rank + null-space basis (matrix.RREF / matrix.NullSpace, big.Rat, no epsilon)
//   - Synthesize: one monomial Term per basis vector
//   - Compute: the three stages in sequence
//
// Display is a separate step: Term.String / Term.Format / Render.
//
// ⚙️ Usage:
//
//	set, _ := dimension.Validate([]dimension.Raw{
//		dimension.RawInt64("rho", 1, -3, 0),
//		dimension.RawInt64("v", 0, 1, -1),
//		dimension.RawInt64("D", 0, 1, 0),
//		dimension.RawInt64("mu", 1, -1, -1),
//	})
//	res, err := buckingham.Compute(set)
//	_ = buckingham.Render(os.Stdout, res.Terms, buckingham.FormatText)
//
// Performance:
//
//   - Time: O(n²) rational operations for n variables (three rows).
//   - Pure and re-entrant: concurrent calls share nothing.
package buckingham
