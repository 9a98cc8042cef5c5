package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/pitheorem/matrix"
)

// ExampleNullSpace computes the null space of the M/L/T matrix of
// density, velocity, length and dynamic viscosity (Reynolds number).
func ExampleNullSpace() {
	m, _ := matrix.NewDenseInt64([][]int64{
		{1, 0, 0, 1},   // M
		{-3, 1, 1, -1}, // L
		{0, -1, 0, -1}, // T
	})

	rank, _ := matrix.Rank(m)
	basis, _ := matrix.NullSpace(m)
	fmt.Println("rank:", rank)
	for _, v := range basis {
		fmt.Println(v)
	}

	// Output:
	// rank: 3
	// [-1, -1, -1, 1]
}

// ExampleRREF shows the exact reduced row-echelon form and its pivots.
func ExampleRREF() {
	m, _ := matrix.NewDenseInt64([][]int64{
		{2, 1, 0},
		{4, 2, 3},
	})
	reduced, pivots, _ := matrix.RREF(m)
	fmt.Print(reduced)
	fmt.Println("pivots:", pivots)

	// Output:
	// [1, 1/2, 0]
	// [0, 0, 1]
	// pivots: [0 2]
}
