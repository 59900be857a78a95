// SPDX-License-Identifier: MIT
package linsys

import (
	"fmt"

	"github.com/katalvlaran/linsys/scalar"
)

// TriangularForm returns a copy of s reduced by forward elimination so that
// each row's pivot column lies strictly right of the previous row's.
//
// Implementation:
//   - Stage 1: Clone s; the receiver is never modified.
//   - Stage 2: Walk rows i in order with a pivot-column cursor j that only grows.
//     If coefficient (i, j) is near zero, swap row i with the first row below
//     whose coefficient at j is not near zero; if there is none, column j is
//     free: set coef(k, j) to exactly zero for every k >= i, advance j and retry
//     the same row.
//   - Stage 3: With a pivot at (i, j), add alpha·row i to every row k > i where
//     alpha = -coef(k, j)/coef(i, j), then set coef(k, j) to exactly zero.
//     Advance j and move to row i+1.
//   - Stage 4: Stop when rows or columns are exhausted.
//
// Behavior highlights:
//   - Partial pivoting restricted to rows below; no row scaling in this phase.
//   - Rows that end up without a pivot collect at the bottom.
//
// Errors:
//   - Only internal invariant violations from the row primitives (not expected).
//
// Complexity:
//   - Time O(m·m·n) for m rows and n variables, Space O(m·n) for the copy.
func (s *System) TriangularForm() (*System, error) {
	t := s.Clone()

	j := 0
	for i := 0; i < t.Len(); i++ {
		for j < t.dim {
			if scalar.IsNearZero(t.rows[i].Coefficient(j)) {
				swapped, err := t.swapWithRowBelowForNonzeroCoefficient(i, j)
				if err != nil {
					return nil, linsysErrorf(opTriangularForm, err)
				}
				if !swapped {
					log.Debugf("column %d has no pivot at or below row %d; treating it as free", j, i)
					if err = t.clearFreeColumn(i, j); err != nil {
						return nil, linsysErrorf(opTriangularForm, err)
					}
					j++
					continue
				}
			}
			if err := t.clearCoefficientsBelow(i, j); err != nil {
				return nil, linsysErrorf(opTriangularForm, err)
			}
			j++
			break
		}
	}

	return t, nil
}

// swapWithRowBelowForNonzeroCoefficient swaps row with the first row below it
// whose coefficient at col is not near zero. It reports whether a swap happened.
func (s *System) swapWithRowBelowForNonzeroCoefficient(row, col int) (bool, error) {
	for k := row + 1; k < s.Len(); k++ {
		if scalar.IsNearZero(s.rows[k].Coefficient(col)) {
			continue
		}
		if err := s.SwapRows(row, k); err != nil {
			return false, err
		}
		log.Debugf("swapped rows %d and %d for a pivot in column %d", row, k, col)

		return true, nil
	}

	return false, nil
}

// clearFreeColumn sets the near-zero coefficients at col to exactly zero in
// row and every row below it. Leftovers there would otherwise be scaled by the
// pivot reciprocal in RREF and could surface as a pivot in a free column.
func (s *System) clearFreeColumn(row, col int) error {
	for k := row; k < s.Len(); k++ {
		if s.rows[k].Coefficient(col).IsZero() {
			continue
		}
		cleared, err := s.rows[k].WithCoefficient(col, scalar.Zero())
		if err != nil {
			return err
		}
		if err = s.SetRow(k, cleared); err != nil {
			return err
		}
	}

	return nil
}

// clearCoefficientsBelow eliminates column col from every row below row.
// The pivot coefficient at (row, col) must not be near zero.
func (s *System) clearCoefficientsBelow(row, col int) error {
	beta := s.rows[row].Coefficient(col)
	for k := row + 1; k < s.Len(); k++ {
		if err := s.eliminate(row, k, col, beta); err != nil {
			return err
		}
	}

	return nil
}

// clearCoefficientsAbove eliminates column col from every row above row.
func (s *System) clearCoefficientsAbove(row, col int) error {
	beta := s.rows[row].Coefficient(col)
	for k := row - 1; k >= 0; k-- {
		if err := s.eliminate(row, k, col, beta); err != nil {
			return err
		}
	}

	return nil
}

// eliminate zeroes coefficient (target, col) using the pivot row src whose
// coefficient at col is beta. Rows already zero at col are left untouched.
func (s *System) eliminate(src, target, col int, beta scalar.Scalar) error {
	gamma := s.rows[target].Coefficient(col)
	if gamma.IsZero() {
		return nil
	}
	q, err := gamma.Quo(beta)
	if err != nil {
		return fmt.Errorf("pivot (%d,%d): %w", src, col, err)
	}
	if err = s.AddScaledRowToRow(q.Neg(), src, target); err != nil {
		return err
	}
	// gamma + alpha·beta is zero only up to rounding; make it exact.
	cleared, err := s.rows[target].WithCoefficient(col, scalar.Zero())
	if err != nil {
		return err
	}

	return s.SetRow(target, cleared)
}

// RREF returns the reduced row-echelon form of s.
//
// Implementation:
//   - Stage 1: Compute TriangularForm (s is untouched).
//   - Stage 2: For rows from last to first, find the pivot column (first
//     coefficient not near zero); skip rows without one.
//   - Stage 3: Scale the row so the pivot becomes exactly 1, then clear the pivot
//     column in every row above it.
//
// Behavior highlights:
//   - Reverse order guarantees upper rows are not disturbed after their own
//     pivot has been normalized.
//   - Running RREF on an RREF system yields an equivalent system.
//
// Complexity:
//   - Time O(m·m·n), Space O(m·n).
func (s *System) RREF() (*System, error) {
	tf, err := s.TriangularForm()
	if err != nil {
		return nil, linsysErrorf(opRREF, err)
	}

	pivots := tf.FirstNonzeroIndices()
	for i := tf.Len() - 1; i >= 0; i-- {
		j := pivots[i]
		if j < 0 {
			continue
		}
		if err = tf.scaleRowToMakeCoefficientOne(i, j); err != nil {
			return nil, linsysErrorf(opRREF, err)
		}
		if err = tf.clearCoefficientsAbove(i, j); err != nil {
			return nil, linsysErrorf(opRREF, err)
		}
	}

	return tf, nil
}

// scaleRowToMakeCoefficientOne multiplies row by the reciprocal of its
// coefficient at col and pins that coefficient to exactly 1.
func (s *System) scaleRowToMakeCoefficientOne(row, col int) error {
	c := s.rows[row].Coefficient(col)
	if c.Equal(scalar.One()) {
		return nil
	}
	inv, err := scalar.One().Quo(c)
	if err != nil {
		return fmt.Errorf("pivot (%d,%d): %w", row, col, err)
	}
	if err = s.ScaleRow(row, inv); err != nil {
		return err
	}
	pinned, err := s.rows[row].WithCoefficient(col, scalar.One())
	if err != nil {
		return err
	}

	return s.SetRow(row, pinned)
}
