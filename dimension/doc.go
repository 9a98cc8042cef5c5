// Package dimension models physical variables by their Mass, Length and Time
// exponents.
//
// The package provides:
//
//   - Exponents, the fixed-size (M, L, T) rational vector of a quantity.
//   - Variable and Set: named, immutable quantities in a fixed column order.
//   - Validate, the single boundary that turns loosely-typed rows (Raw) into a
//     Set and reports MalformedVariableError for sequences that are not
//     exactly three components long.
//   - Presets / LookupPreset: a static table of common quantities (velocity,
//     density, circulation, viscosity, ...).
//
//	set, err := dimension.Validate([]dimension.Raw{
//		dimension.RawInt64("rho", 1, -3, 0),
//		dimension.RawInt64("v", 0, 1, -1),
//	})
package dimension
