// SPDX-License-Identifier: MIT
package linsys_test

import (
	"fmt"

	"github.com/katalvlaran/linsys/equation"
	"github.com/katalvlaran/linsys/linsys"
)

// ExampleSystem_Solve solves a 3×3 system whose first row has no pivot in column 1.
func ExampleSystem_Solve() {
	s := linsys.MustNew(
		equation.MustParse([]string{"0", "1", "1"}, "1"),
		equation.MustParse([]string{"1", "-1", "1"}, "2"),
		equation.MustParse([]string{"1", "2", "-5"}, "3"),
	)
	sol, err := s.Solve()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sol)
	// Output:
	// Unique solution:
	// x_1 = 2.556
	// x_2 = 0.778
	// x_3 = 0.222
}

// ExampleSystem_TriangularForm shows two parallel planes reducing to 0 = 1.
func ExampleSystem_TriangularForm() {
	s := linsys.MustNew(
		equation.MustParse([]string{"1", "1", "1"}, "1"),
		equation.MustParse([]string{"1", "1", "1"}, "2"),
	)
	tf, err := s.TriangularForm()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(tf)
	sol, _ := s.Solve()
	fmt.Println(sol.Kind)
	// Output:
	// Linear System:
	// Equation 1: x_1 + x_2 + x_3 = 1
	// Equation 2: 0 = 1
	// No solutions
}

// ExampleSystem_Parametrize describes the line where two planes meet.
func ExampleSystem_Parametrize() {
	s := linsys.MustNew(
		equation.MustParse([]string{"1", "1", "1"}, "1"),
		equation.MustParse([]string{"0", "1", "1"}, "2"),
	)
	p, err := s.Parametrize()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p)
	// Output:
	// x_1 = -1
	// x_2 = 2 - t_1
	// x_3 = t_1
}
