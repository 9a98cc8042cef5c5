// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pitheorem/matrix"
)

func TestVector_ScaleToIntegers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"already minimal", []string{"-2", "-1", "2", "1"}, []string{"-2", "-1", "2", "1"}},
		{"common factor", []string{"4", "-6", "0"}, []string{"2", "-3", "0"}},
		{"halves", []string{"-1/2", "1"}, []string{"-1", "2"}},
		{"mixed denominators", []string{"1/3", "-1/2", "1"}, []string{"2", "-3", "6"}},
		{"negative lead keeps sign", []string{"-3/4", "-1/4"}, []string{"-3", "-1"}},
		{"zero vector", []string{"0", "0"}, []string{"0", "0"}},
		{"empty", nil, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := vec(t, tc.in...)
			before := in.String()
			got, err := in.ScaleToIntegers()
			require.NoError(t, err)
			RequireVectorEqual(t, vec(t, tc.want...), got)
			assert.Equal(t, before, in.String(), "receiver must not be mutated")
		})
	}
}

func TestVector_ScaleToIntegers_NilEntry(t *testing.T) {
	t.Parallel()

	v := matrix.NewVectorInt64(1, 2, 3)
	v[1] = nil
	_, err := v.ScaleToIntegers()
	require.ErrorIs(t, err, matrix.ErrNilEntry)
}

func TestVector_EqualIsZeroString(t *testing.T) {
	t.Parallel()

	a := vec(t, "1/2", "0", "-3")
	assert.Equal(t, "[1/2, 0, -3]", a.String())
	assert.True(t, a.Equal(a.Clone()))
	assert.False(t, a.Equal(vec(t, "1/2", "0")))
	assert.False(t, a.Equal(vec(t, "1/2", "0", "3")))
	assert.False(t, a.IsZero())
	assert.True(t, vec(t, "0", "0/5").IsZero())
	assert.True(t, matrix.Vector{}.IsZero())
	assert.Nil(t, matrix.Vector(nil).Clone())
}
