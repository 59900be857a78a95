// SPDX-License-Identifier: MIT
// Package equation: sentinel error set.

package equation

import (
	"errors"

	"github.com/katalvlaran/linsys/vector"
)

var (
	// ErrDegenerate is returned when every coefficient of a normal vector is near
	// zero, so no variable can be solved for. Callers translate it into a domain
	// outcome (absent basepoint, row without pivot).
	ErrDegenerate = errors.New("equation: no nonzero elements found")

	// ErrInvalidEquation is returned for malformed equation text.
	ErrInvalidEquation = errors.New("equation: invalid equation")

	// ErrWrongDimension is returned by the Line and Plane helpers when the
	// operands are not 2- or 3-dimensional respectively.
	ErrWrongDimension = errors.New("equation: unexpected dimension")
)

// ErrDimensionMismatch aliases vector.ErrDimensionMismatch so errors.Is matches
// at every layer.
var ErrDimensionMismatch = vector.ErrDimensionMismatch

// ErrOutOfRange aliases vector.ErrOutOfRange for coefficient indexing.
var ErrOutOfRange = vector.ErrOutOfRange
