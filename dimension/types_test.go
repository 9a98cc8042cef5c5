// SPDX-License-Identifier: MIT
package dimension_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pitheorem/dimension"
)

func TestExponents_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   dimension.Exponents
		want string
	}{
		{dimension.NewExponents(0, 0, 0), "1"},
		{dimension.NewExponents(1, 0, 0), "M"},
		{dimension.NewExponents(1, -1, -2), "M L^-1 T^-2"},
		{dimension.NewExponents(0, 2, -1), "L^2 T^-1"},
		{dimension.Exponents{big.NewRat(1, 2), new(big.Rat), big.NewRat(-3, 2)}, "M^(1/2) T^(-3/2)"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.in.String())
	}
}

func TestExponents_Predicates(t *testing.T) {
	t.Parallel()

	assert.True(t, dimension.NewExponents(0, 0, 0).IsDimensionless())
	assert.False(t, dimension.NewExponents(0, 0, 1).IsDimensionless())
	e := dimension.NewExponents(1, 2, 3)
	assert.Equal(t, "2", e.At(dimension.Length).RatString())
	assert.True(t, e.Equal(e.Clone()))
	assert.Equal(t, []string{"M", "L", "T"}, []string{
		dimension.Mass.String(), dimension.Length.String(), dimension.Time.String(),
	})
	assert.Equal(t, "?", dimension.Base(7).String())
}
