// SPDX-License-Identifier: MIT
package dimension_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pitheorem/dimension"
)

func TestValidate_PreservesOrder(t *testing.T) {
	t.Parallel()

	set, err := dimension.Validate([]dimension.Raw{
		dimension.RawInt64("tau", 0, 1, 0),
		dimension.RawInt64("rho", 1, -3, 0),
		dimension.RawInt64("dt", 0, 0, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []string{"tau", "rho", "dt"}, set.Names())

	rho, ok := set.Lookup("rho")
	require.True(t, ok)
	assert.Equal(t, "M L^-3", rho.Dims().String())
	_, ok = set.Lookup("missing")
	assert.False(t, ok)
}

func TestValidate_Empty(t *testing.T) {
	t.Parallel()

	set, err := dimension.Validate(nil)
	require.NoError(t, err)
	assert.Zero(t, set.Len())
	assert.Empty(t, set.Names())
}

func TestValidate_MalformedLength(t *testing.T) {
	t.Parallel()

	for _, raw := range []dimension.Raw{
		dimension.RawInt64("short", 0, 1),
		dimension.RawInt64("long", 0, 1, 0, 2),
		dimension.RawInt64("none"),
	} {
		t.Run(raw.Name, func(t *testing.T) {
			_, err := dimension.Validate([]dimension.Raw{
				dimension.RawInt64("ok", 1, 0, 0),
				raw,
			})
			require.ErrorIs(t, err, dimension.ErrMalformedVariable)

			var mve *dimension.MalformedVariableError
			require.True(t, errors.As(err, &mve))
			assert.Equal(t, raw.Name, mve.Name)
			assert.Equal(t, len(raw.Exponents), mve.Got)
			assert.Contains(t, mve.Error(), "want 3")
		})
	}
}

func TestValidate_NilComponent(t *testing.T) {
	t.Parallel()

	_, err := dimension.Validate([]dimension.Raw{
		{Name: "x", Exponents: []*big.Rat{big.NewRat(1, 1), nil, big.NewRat(0, 1)}},
	})
	var mve *dimension.MalformedVariableError
	require.True(t, errors.As(err, &mve))
	assert.Equal(t, 1, mve.Nil)
	assert.Contains(t, mve.Error(), "component 1")
}

func TestValidate_NamesAndDuplicates(t *testing.T) {
	t.Parallel()

	_, err := dimension.Validate([]dimension.Raw{dimension.RawInt64("  ", 0, 1, 0)})
	require.ErrorIs(t, err, dimension.ErrEmptyName)

	_, err = dimension.Validate([]dimension.Raw{
		dimension.RawInt64("v", 0, 1, -1),
		dimension.RawInt64("v", 0, 1, -1),
	})
	require.ErrorIs(t, err, dimension.ErrDuplicateVariable)
	assert.Contains(t, err.Error(), `"v"`)
}

func TestValidate_TrimmedNamesCollide(t *testing.T) {
	t.Parallel()

	_, err := dimension.Validate([]dimension.Raw{
		dimension.RawInt64("rho", 1, -3, 0),
		dimension.RawInt64(" rho", 1, -3, 0),
	})
	require.ErrorIs(t, err, dimension.ErrDuplicateVariable)

	set, err := dimension.Validate([]dimension.Raw{dimension.RawInt64(" mu\t", 1, -1, -1)})
	require.NoError(t, err)
	assert.Equal(t, []string{"mu"}, set.Names())
	_, ok := set.Lookup("mu")
	assert.True(t, ok)

	v, err := dimension.NewVariable("  nu ", dimension.NewExponents(0, 2, -1))
	require.NoError(t, err)
	assert.Equal(t, "nu", v.Name())
}

func TestValidate_InvalidNames(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"a*b", "a/b", "x^2", "f(x)", "a·b", "{x}", "delta P", "a\tb"} {
		_, err := dimension.Validate([]dimension.Raw{dimension.RawInt64(name, 0, 1, 0)})
		require.ErrorIs(t, err, dimension.ErrInvalidName, name)

		_, err = dimension.NewVariable(name, dimension.NewExponents(0, 1, 0))
		require.ErrorIs(t, err, dimension.ErrInvalidName, name)
	}

	for _, name := range []string{"DeltaP", "y_v", "Re'", "ΔP", "x1"} {
		_, err := dimension.Validate([]dimension.Raw{dimension.RawInt64(name, 0, 1, 0)})
		require.NoError(t, err, name)
	}
}

func TestVariable_Immutable(t *testing.T) {
	t.Parallel()

	exps := dimension.NewExponents(1, -1, -2)
	v, err := dimension.NewVariable("DeltaP", exps)
	require.NoError(t, err)

	exps[0].SetInt64(42) // caller's copy
	d := v.Dims()
	d[1].SetInt64(42) // returned copy
	assert.True(t, v.Dims().Equal(dimension.NewExponents(1, -1, -2)))
	assert.Equal(t, "DeltaP [M L^-1 T^-2]", v.String())

	_, err = dimension.NewSet(v, dimension.Variable{})
	require.ErrorIs(t, err, dimension.ErrEmptyName)
}

func TestParseRaw(t *testing.T) {
	t.Parallel()

	raw, err := dimension.ParseRaw(" nu ", "0, 2 ,-1")
	require.NoError(t, err)
	assert.Equal(t, "nu", raw.Name)
	require.Len(t, raw.Exponents, 3)
	assert.Equal(t, "-1", raw.Exponents[2].RatString())

	raw, err = dimension.ParseRaw("x", "1/2,0.5,0")
	require.NoError(t, err)
	assert.Equal(t, "1/2", raw.Exponents[0].RatString())
	assert.Equal(t, "1/2", raw.Exponents[1].RatString())

	raw, err = dimension.ParseRaw("short", "0,1")
	require.NoError(t, err, "length is checked by Validate, not ParseRaw")
	_, err = dimension.Validate([]dimension.Raw{raw})
	require.ErrorIs(t, err, dimension.ErrMalformedVariable)

	_, err = dimension.ParseRaw("bad", "1,x,0")
	require.ErrorIs(t, err, dimension.ErrBadExponent)
	_, err = dimension.ParseRaw("div0", "1/0,0,0")
	require.ErrorIs(t, err, dimension.ErrBadExponent)
	_, err = dimension.ParseRaw("blank", "1,,0")
	require.ErrorIs(t, err, dimension.ErrBadExponent)
}
