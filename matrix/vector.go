// SPDX-License-Identifier: MIT

package matrix

import (
	"math/big"
	"strings"
)

// NewVectorInt64 builds a Vector from integers.
func NewVectorInt64(vals ...int64) Vector {
	out := make(Vector, len(vals))
	for i, v := range vals {
		out[i] = new(big.Rat).SetInt64(v)
	}

	return out
}

// Clone returns a deep copy; nil entries stay nil.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	for i, x := range v {
		if x != nil {
			out[i] = new(big.Rat).Set(x)
		}
	}

	return out
}

// IsZero reports whether every entry is exactly zero. An empty vector is zero.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != nil && x.Sign() != 0 {
			return false
		}
	}

	return true
}

// Equal reports exact element-wise equality. Nil entries compare equal to nil only.
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		switch {
		case v[i] == nil || o[i] == nil:
			if v[i] != o[i] {
				return false
			}
		case v[i].Cmp(o[i]) != 0:
			return false
		}
	}

	return true
}

// String renders "[a, b, c]" with entries in lowest terms.
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtRowOpen)
	for i, x := range v {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		if x == nil {
			sb.WriteString("<nil>")
			continue
		}
		sb.WriteString(x.RatString())
	}
	sb.WriteString("]")

	return sb.String()
}

// ScaleToIntegers returns the smallest integral positive multiple of v.
//
// Implementation:
//   - Stage 1: L = lcm of all denominators; v·L is integral.
//   - Stage 2: G = gcd of |numerators| of v·L over the non-zero entries.
//   - Stage 3: return v·L/G.
//
// Behavior highlights:
//   - The scale factor L/G is strictly positive, so signs are preserved and
//     a basis vector with a +1 free entry keeps a positive free entry.
//   - The zero vector is returned unchanged (as a copy).
//
// Errors:
//   - ErrNilEntry when a component is nil.
//
// Complexity:
//   - Time O(n) big-integer operations, Space O(n).
func (v Vector) ScaleToIntegers() (Vector, error) {
	if err := ValidateRats(v); err != nil {
		return nil, err
	}
	lcm := big.NewInt(1)
	g := new(big.Int)
	for _, x := range v {
		d := x.Denom()
		g.GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, d)
		lcm.Quo(lcm, g)
	}

	ints := make([]*big.Int, len(v))
	gcd := new(big.Int)
	abs := new(big.Int)
	for i, x := range v {
		n := new(big.Int).Mul(x.Num(), lcm)
		n.Quo(n, x.Denom())
		ints[i] = n
		if n.Sign() == 0 {
			continue
		}
		abs.Abs(n)
		if gcd.Sign() == 0 {
			gcd.Set(abs)
		} else {
			gcd.GCD(nil, nil, gcd, abs)
		}
	}
	if gcd.Sign() == 0 {
		return v.Clone(), nil
	}

	out := make(Vector, len(v))
	for i, n := range ints {
		out[i] = new(big.Rat).SetInt(n.Quo(n, gcd))
	}

	return out, nil
}
