// SPDX-License-Identifier: MIT
// Package linsys implements a Gaussian-elimination solver for systems of linear
// equations over exact decimals.
//
// Purpose:
//   - Hold an ordered collection of equations sharing one dimension (System).
//   - Provide the elementary row operations as validated primitives.
//   - Reduce to triangular form and to reduced row-echelon form (RREF).
//   - Classify the solution set and describe it as a Parametrization
//     (basepoint + one direction vector per free variable).
//
// Determinism & Policy:
//   - Every structural decision (pivot, contradiction, free column) uses the
//     single near-zero policy scalar.IsNearZero; nothing is configurable per call.
//   - TriangularForm and RREF never touch the receiver; they return new systems
//     that share no rows with the input.
//   - Rows change only through SetRow/SwapRows/ScaleRow/AddScaledRowToRow, each of
//     which validates indices and the dimension invariant before committing.
//   - Free variables are enumerated in ascending column order.
package linsys

import (
	"fmt"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/linsys/equation"
	"github.com/katalvlaran/linsys/scalar"
	"github.com/katalvlaran/linsys/vector"
)

var log = logging.Logger("linsys")

// System is an ordered sequence of equations of one common dimension.
// Row order matters: elimination follows construction order and swaps.
//
// A System is not safe for concurrent mutation.
type System struct {
	rows []equation.Equation // row i is equation i
	dim  int                 // shared by every row at all times
}

// New builds a System from equations of equal dimension.
//
// Errors:
//   - ErrEmptySystem if no equations are given.
//   - vector.ErrEmptyVector if the equations have no variables.
//   - ErrDimensionMismatch if any equation differs in dimension from the first.
//
// Complexity: O(m) for m equations; the slice is copied.
func New(rows ...equation.Equation) (*System, error) {
	if len(rows) == 0 {
		return nil, linsysErrorf(opNew, ErrEmptySystem)
	}
	dim := rows[0].Dimension()
	if dim == 0 {
		return nil, linsysErrorf(opNew, vector.ErrEmptyVector)
	}
	for i, r := range rows {
		if r.Dimension() != dim {
			return nil, linsysErrorf(opNew, fmt.Errorf("row %d has dimension %d, want %d: %w",
				i, r.Dimension(), dim, ErrDimensionMismatch))
		}
	}
	cp := make([]equation.Equation, len(rows))
	copy(cp, rows)

	return &System{rows: cp, dim: dim}, nil
}

// MustNew is like New but panics on error.
func MustNew(rows ...equation.Equation) *System {
	s, err := New(rows...)
	if err != nil {
		panic(err)
	}

	return s
}

// Len returns the number of equations.
func (s *System) Len() int { return len(s.rows) }

// Dimension returns the number of variables shared by all rows.
func (s *System) Dimension() int { return s.dim }

// Row returns equation i or ErrRowOutOfRange.
func (s *System) Row(i int) (equation.Equation, error) {
	if err := s.checkRow(i); err != nil {
		return equation.Equation{}, linsysErrorf(opRow, err)
	}

	return s.rows[i], nil
}

// Rows returns a copy of the row sequence.
func (s *System) Rows() []equation.Equation {
	cp := make([]equation.Equation, len(s.rows))
	copy(cp, s.rows)

	return cp
}

// Clone returns an independent copy. Equations are immutable values, so a
// fresh row slice is a deep copy.
func (s *System) Clone() *System {
	return &System{rows: s.Rows(), dim: s.dim}
}

// checkRow validates a row index.
func (s *System) checkRow(i int) error {
	if i < 0 || i >= len(s.rows) {
		return fmt.Errorf("row %d of %d: %w", i, len(s.rows), ErrRowOutOfRange)
	}

	return nil
}

// SetRow replaces row i. The replacement must have the system's dimension.
func (s *System) SetRow(i int, e equation.Equation) error {
	if err := s.checkRow(i); err != nil {
		return linsysErrorf(opSetRow, err)
	}
	if e.Dimension() != s.dim {
		return linsysErrorf(opSetRow, fmt.Errorf("dimension %d, want %d: %w", e.Dimension(), s.dim, ErrDimensionMismatch))
	}
	s.rows[i] = e

	return nil
}

// SwapRows exchanges rows r1 and r2.
func (s *System) SwapRows(r1, r2 int) error {
	if err := s.checkRow(r1); err != nil {
		return linsysErrorf(opSwapRows, err)
	}
	if err := s.checkRow(r2); err != nil {
		return linsysErrorf(opSwapRows, err)
	}
	if s.rows[r1].Dimension() != s.dim || s.rows[r2].Dimension() != s.dim {
		return linsysErrorf(opSwapRows, ErrDimensionMismatch)
	}
	s.rows[r1], s.rows[r2] = s.rows[r2], s.rows[r1]

	return nil
}

// ScaleRow replaces row i with c·row i. Scaling by zero is rejected with ErrZeroScale.
func (s *System) ScaleRow(i int, c scalar.Scalar) error {
	if err := s.checkRow(i); err != nil {
		return linsysErrorf(opScaleRow, err)
	}
	if c.IsZero() {
		return linsysErrorf(opScaleRow, ErrZeroScale)
	}
	if err := s.SetRow(i, s.rows[i].Scaled(c)); err != nil {
		return linsysErrorf(opScaleRow, err)
	}

	return nil
}

// AddScaledRowToRow replaces row dst with row dst + c·row src. Row src is unchanged.
func (s *System) AddScaledRowToRow(c scalar.Scalar, src, dst int) error {
	if err := s.checkRow(src); err != nil {
		return linsysErrorf(opAddScaledRow, err)
	}
	if err := s.checkRow(dst); err != nil {
		return linsysErrorf(opAddScaledRow, err)
	}
	next, err := s.rows[dst].PlusScaled(c, s.rows[src])
	if err != nil {
		return linsysErrorf(opAddScaledRow, err)
	}
	if err = s.SetRow(dst, next); err != nil {
		return linsysErrorf(opAddScaledRow, err)
	}

	return nil
}

// FirstNonzeroIndices returns, per row, the index of the first coefficient
// that is not near zero, or -1 for rows whose normal vector is near zero.
func (s *System) FirstNonzeroIndices() []int {
	idx := make([]int, len(s.rows))
	for i, r := range s.rows {
		j, err := r.FirstNonzeroIndex()
		if err != nil {
			// ErrDegenerate is the only failure: a row without a pivot.
			idx[i] = -1
			continue
		}
		idx[i] = j
	}

	return idx
}

// String renders one equation per line:
//
//	Linear System:
//	Equation 1: x_1 + x_2 = 3
//	Equation 2: x_2 = 1
func (s *System) String() string {
	var sb strings.Builder
	sb.WriteString("Linear System:")
	for i, r := range s.rows {
		fmt.Fprintf(&sb, "\nEquation %d: %s", i+1, r)
	}

	return sb.String()
}
