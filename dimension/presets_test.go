// SPDX-License-Identifier: MIT
package dimension_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pitheorem/dimension"
)

func TestPresets_SortedAndUnique(t *testing.T) {
	t.Parallel()

	ps := dimension.Presets()
	require.NotEmpty(t, ps)
	keys := make([]string, len(ps))
	for i, p := range ps {
		keys[i] = p.Key
		assert.NotEmpty(t, p.Symbol, p.Key)
		assert.NotEmpty(t, p.Description, p.Key)
	}
	assert.True(t, sort.StringsAreSorted(keys), "table must stay sorted for LookupPreset")
	for i := 1; i < len(keys); i++ {
		assert.NotEqual(t, keys[i-1], keys[i])
	}
}

func TestLookupPreset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key, symbol, dims string
	}{
		{"velocity", "v", "L T^-1"},
		{"mass_flow_rate", "mdot", "M T^-1"},
		{"Mass flow rate", "mdot", "M T^-1"},
		{"tip-clearance", "tau", "L"},
		{"chord_length", "c", "L"},
		{"circulation", "Gamma", "L^2 T^-1"},
		{"pressure_difference", "DeltaP", "M L^-1 T^-2"},
		{"viscosity", "mu", "M L^-1 T^-1"},
		{"density", "rho", "M L^-3"},
		{"angular_velocity", "omega", "T^-1"},
		{"acceleration", "a", "L T^-2"},
		{"force", "F", "M L T^-2"},
		{"energy", "E", "M L^2 T^-2"},
	}
	for _, tc := range tests {
		p, err := dimension.LookupPreset(tc.key)
		require.NoError(t, err, tc.key)
		assert.Equal(t, tc.symbol, p.Symbol, tc.key)
		assert.Equal(t, tc.dims, p.Dims.String(), tc.key)
	}

	_, err := dimension.LookupPreset("warp_factor")
	require.ErrorIs(t, err, dimension.ErrUnknownPreset)
}

func TestPreset_VariableAndRaw(t *testing.T) {
	t.Parallel()

	p, err := dimension.LookupPreset("velocity")
	require.NoError(t, err)

	v, err := p.Variable("")
	require.NoError(t, err)
	assert.Equal(t, "v", v.Name())

	w, err := p.Variable("w")
	require.NoError(t, err)
	assert.Equal(t, "w", w.Name())
	assert.True(t, w.Dims().Equal(p.Dims))

	raw := p.Raw("u")
	raw.Exponents[0].SetInt64(9) // must not corrupt the table
	again, err := dimension.LookupPreset("velocity")
	require.NoError(t, err)
	assert.Equal(t, "L T^-1", again.Dims.String())
}
