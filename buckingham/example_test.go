// SPDX-License-Identifier: MIT
package buckingham_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/pitheorem/buckingham"
	"github.com/katalvlaran/pitheorem/dimension"
)

// ExampleCompute derives the Reynolds number from density, velocity,
// diameter and dynamic viscosity.
func ExampleCompute() {
	set, err := dimension.Validate([]dimension.Raw{
		dimension.RawInt64("rho", 1, -3, 0),
		dimension.RawInt64("v", 0, 1, -1),
		dimension.RawInt64("D", 0, 1, 0),
		dimension.RawInt64("mu", 1, -1, -1),
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := buckingham.Compute(set)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("rank:", res.Rank)
	_ = buckingham.Render(os.Stdout, res.Terms, buckingham.FormatText)
	// Output:
	// rank: 3
	// Dimensionless Numbers:
	// Pi_1 = mu/(rho*v*D)
}

// ExampleTerm_Format shows the three renderings of one term.
func ExampleTerm_Format() {
	res, _ := buckingham.ComputeRaw([]dimension.Raw{
		dimension.RawInt64("tau", 0, 1, 0),
		dimension.RawInt64("rho", 1, -3, 0),
		dimension.RawInt64("dt", 0, 0, 1),
		dimension.RawInt64("DeltaP", 1, -1, -2),
	})
	for _, f := range []buckingham.Format{buckingham.FormatText, buckingham.FormatUnicode, buckingham.FormatLaTeX} {
		fmt.Printf("%s: %s\n", f, res.Terms[0].Format(f))
	}
	// Output:
	// text: dt**2*DeltaP/(tau**2*rho)
	// unicode: dt²·DeltaP·tau⁻²·rho⁻¹
	// latex: \frac{dt^{2} DeltaP}{tau^{2} rho}
}
