// SPDX-License-Identifier: MIT
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsys/scalar"
)

// ToGonum exports m as a float64 *mat.Dense. Values are rounded to the nearest
// float64, so the export is lossy for decimals without an exact binary form.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: O(r*c).
func (m *Dense) ToGonum() (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	data := make([]float64, len(m.data))
	for idx, v := range m.data {
		data[idx] = v.Float64()
	}

	return mat.NewDense(m.r, m.c, data), nil
}

// FromGonum imports any gonum matrix, converting each float64 through its
// shortest decimal representation.
//
// Errors:
//   - ErrBadShape for an empty matrix, scalar.ErrNonFinite for NaN or ±Inf entries.
func FromGonum(src mat.Matrix) (*Dense, error) {
	r, c := src.Dims()
	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if m.data[i*c+j], err = scalar.FromFloat64(src.At(i, j)); err != nil {
				return nil, fmt.Errorf("FromGonum(%d,%d): %w", i, j, err)
			}
		}
	}

	return m, nil
}
