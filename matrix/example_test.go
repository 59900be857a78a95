// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
)

// ExampleMul multiplies a 2×5 matrix by a 5×3 matrix.
func ExampleMul() {
	a := matrix.MustFromRows([][]string{{"2", "1", "8", "2", "1"}, {"5", "6", "4", "2", "1"}})
	b := matrix.MustFromRows([][]string{{"1", "7", "2"}, {"2", "6", "3"}, {"3", "1", "1"}, {"1", "20", "1"}, {"7", "4", "16"}})
	p, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(p)
	// Output:
	// [37, 72, 33]
	// [38, 119, 50]
}

// ExampleInverse inverts a 2×2 matrix exactly.
func ExampleInverse() {
	inv, err := matrix.Inverse(matrix.MustFromRows([][]string{{"4", "7"}, {"2", "6"}}))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(inv)
	// Output:
	// [0.6, -0.7]
	// [-0.2, 0.4]
}
