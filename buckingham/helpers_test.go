// SPDX-License-Identifier: MIT
package buckingham_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pitheorem/dimension"
)

// tipRaws is the six-variable sub-problem of the Chen et al. (1990)
// tip-clearance study, in column order.
func tipRaws() []dimension.Raw {
	return []dimension.Raw{
		dimension.RawInt64("tau", 0, 1, 0),
		dimension.RawInt64("rho", 1, -3, 0),
		dimension.RawInt64("dt", 0, 0, 1),
		dimension.RawInt64("DeltaP", 1, -1, -2),
		dimension.RawInt64("Gamma", 0, 2, -1),
		dimension.RawInt64("v", 0, 1, -1),
	}
}

// chenRaws is the full eleven-variable tip-clearance problem.
func chenRaws() []dimension.Raw {
	return []dimension.Raw{
		dimension.RawInt64("tau", 0, 1, 0),
		dimension.RawInt64("rho", 1, -3, 0),
		dimension.RawInt64("dt", 0, 0, 1),
		dimension.RawInt64("DeltaP", 1, -1, -2),
		dimension.RawInt64("Gamma", 0, 2, -1),
		dimension.RawInt64("y_v", 0, 1, 0),
		dimension.RawInt64("z_v", 0, 1, 0),
		dimension.RawInt64("y_c", 0, 1, 0),
		dimension.RawInt64("z_c", 0, 1, 0),
		dimension.RawInt64("v", 0, 1, -1),
		dimension.RawInt64("w", 0, 1, -1),
	}
}

// mustSet validates raws or fails the test.
func mustSet(t *testing.T, raws []dimension.Raw) dimension.Set {
	t.Helper()
	set, err := dimension.Validate(raws)
	require.NoError(t, err)

	return set
}
