// SPDX-License-Identifier: MIT
// Package matrix provides linear-algebra kernels on *Dense: element-wise
// addition and subtraction, matrix multiplication, transpose, scalar scaling,
// matrix-vector product and inversion. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical kernels used across the module (augmented matrices,
//     cross-checks, the command-line tool).
//   - Define operation tags for determinism and error reporting.
//
// Notes:
//   - Inputs are never mutated; every kernel allocates its result.
//   - Arithmetic is exact decimal (see package scalar); the only tolerance is
//     the near-zero policy used by Inverse for pivot selection.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linsys/scalar"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opInverse   = "Inverse"
	opToGonum   = "ToGonum"
)

// matrixErrorf wraps err with an operation tag, preserving the wrapped error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub is the shared kernel behind Add and Sub.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: Allocate result and combine element-wise in flat order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b *Dense, subtract bool, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range a.data {
		if subtract {
			res.data[idx] = a.data[idx].Sub(b.data[idx])
		} else {
			res.data[idx] = a.data[idx].Add(b.data[idx])
		}
	}

	return res, nil
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, false, opAdd) }

// Sub returns a - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, true, opSub) }

// Mul computes the matrix product a × b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: Row-major i-k-j accumulation into a zero-initialized result,
//     skipping exact zeros of a.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Determinism:
//   - Fixed i→k→j traversal; decimal addition is exact up to the working
//     precision, so results do not depend on data layout.
//
// Complexity:
//   - Time O(n*m*p), Space O(n*p).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	for idx := range res.data {
		res.data[idx] = scalar.Zero()
	}

	var (
		i, j, k                            int
		av                                 scalar.Scalar
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < a.r; i++ {
		rowOffsetA = i * a.c
		rowOffsetR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowOffsetA+k]
			if av.IsZero() {
				continue
			}
			rowOffsetB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowOffsetR+j] = res.data[rowOffsetR+j].Add(av.Mul(b.data[rowOffsetB+j]))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The input matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// Scale returns alpha·m.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m *Dense, alpha scalar.Scalar) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := m.Clone()
	for idx := range res.data {
		res.data[idx] = res.data[idx].Mul(alpha)
	}

	return res, nil
}

// MatVec computes y = m·x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m *Dense, x []scalar.Scalar) ([]scalar.Scalar, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]scalar.Scalar, m.r)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		sum := scalar.Zero()
		base = i * m.c
		for j = 0; j < m.c; j++ {
			sum = sum.Add(m.data[base+j].Mul(x[j]))
		}
		y[i] = sum
	}

	return y, nil
}

// Inverse computes m⁻¹ by Gauss–Jordan elimination on the block [m | I].
//
// Implementation:
//   - Stage 1: ValidateSquare(m); clone m into a work matrix and build I_n.
//   - Stage 2: For each column k choose the row p ≥ k with the largest |a[p,k]|.
//     If that magnitude is near zero the matrix is singular.
//   - Stage 3: Swap rows k and p in both blocks, scale row k so the pivot is
//     exactly 1, then eliminate column k from every other row, snapping the
//     eliminated entries to exactly zero.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Determinism:
//   - Ties in pivot magnitude resolve to the lowest row index.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.r
	a := m.Clone()
	inv, err := Identity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var i, k, p, j int
	for k = 0; k < n; k++ {
		p = k
		for i = k + 1; i < n; i++ {
			if a.data[i*n+k].Abs().Cmp(a.data[p*n+k].Abs()) > 0 {
				p = i
			}
		}
		if scalar.IsNearZero(a.data[p*n+k]) {
			return nil, matrixErrorf(opInverse, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			a.swapRows(k, p)
			inv.swapRows(k, p)
		}

		pivot := a.data[k*n+k]
		for j = 0; j < n; j++ {
			if a.data[k*n+j], err = a.data[k*n+j].Quo(pivot); err != nil {
				return nil, matrixErrorf(opInverse, err)
			}
			if inv.data[k*n+j], err = inv.data[k*n+j].Quo(pivot); err != nil {
				return nil, matrixErrorf(opInverse, err)
			}
		}
		a.data[k*n+k] = scalar.One()

		for i = 0; i < n; i++ {
			f := a.data[i*n+k]
			if i == k || f.IsZero() {
				continue
			}
			for j = 0; j < n; j++ {
				a.data[i*n+j] = a.data[i*n+j].Sub(f.Mul(a.data[k*n+j]))
				inv.data[i*n+j] = inv.data[i*n+j].Sub(f.Mul(inv.data[k*n+j]))
			}
			a.data[i*n+k] = scalar.Zero()
		}
	}

	return inv, nil
}

// swapRows exchanges rows r1 and r2 in place. Indices are trusted.
func (m *Dense) swapRows(r1, r2 int) {
	var j int
	for j = 0; j < m.c; j++ {
		m.data[r1*m.c+j], m.data[r2*m.c+j] = m.data[r2*m.c+j], m.data[r1*m.c+j]
	}
}
