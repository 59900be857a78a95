// SPDX-License-Identifier: MIT
package linsys

import (
	"fmt"

	"github.com/katalvlaran/linsys/equation"
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/scalar"
	"github.com/katalvlaran/linsys/vector"
)

// AugmentedMatrix returns [A | b]: one row per equation, the coefficients in
// the first Dimension() columns and the constant term in the last.
//
// Complexity: O(m·n).
func (s *System) AugmentedMatrix() (*matrix.Dense, error) {
	m, err := matrix.NewDense(s.Len(), s.dim+1)
	if err != nil {
		return nil, linsysErrorf(opAugmentedMatrix, err)
	}
	for i, r := range s.rows {
		for j := 0; j < s.dim; j++ {
			if err = m.Set(i, j, r.Coefficient(j)); err != nil {
				return nil, linsysErrorf(opAugmentedMatrix, err)
			}
		}
		if err = m.Set(i, s.dim, r.ConstantTerm()); err != nil {
			return nil, linsysErrorf(opAugmentedMatrix, err)
		}
	}

	return m, nil
}

// FromAugmented builds a System from an augmented matrix [A | b]. The matrix
// needs at least two columns: one variable and the constant column.
//
// Errors:
//   - matrix.ErrNilMatrix for nil input.
//   - ErrBadShape for fewer than two columns.
func FromAugmented(m *matrix.Dense) (*System, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, linsysErrorf(opFromAugmented, err)
	}
	rows, cols := m.Shape()
	if cols < 2 {
		return nil, linsysErrorf(opFromAugmented, fmt.Errorf("%d columns: %w", cols, ErrBadShape))
	}

	eqs := make([]equation.Equation, rows)
	for i := 0; i < rows; i++ {
		vals, err := m.Row(i)
		if err != nil {
			return nil, linsysErrorf(opFromAugmented, err)
		}
		coords := make([]scalar.Scalar, cols-1)
		copy(coords, vals[:cols-1])
		normal, err := vector.New(coords...)
		if err != nil {
			return nil, linsysErrorf(opFromAugmented, err)
		}
		if eqs[i], err = equation.New(normal, vals[cols-1]); err != nil {
			return nil, linsysErrorf(opFromAugmented, err)
		}
	}

	return New(eqs...)
}
