// Package problem reads dimensional-analysis problems from YAML documents.
//
// A document names the problem and lists its variables in column order.
// Each variable is either an explicit [M, L, T] exponent list or the key of
// a dimension preset:
//
//	title: Compressor tip clearance (Chen et al., 1990)
//	variables:
//	  tau: tip_clearance
//	  rho: density
//	  dt: [0, 0, 1]
//	  DeltaP: pressure_difference
//
// Load only shapes the data. Validation (component counts, duplicate names)
// happens in Problem.Set through dimension.Validate, so a file and an
// in-memory table fail in exactly the same way.
package problem
