// SPDX-License-Identifier: MIT
// Package linsys: sentinel error set (unified, consistent).
// All operations return these sentinels, wrapped with an operation tag via
// linsysErrorf; tests MUST check them with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// empty system -> row index -> dimension mismatch -> zero scale -> solution outcome.

package linsys

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsys/equation"
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/vector"
)

var (
	// ErrEmptySystem is returned when a system is built from zero equations.
	ErrEmptySystem = errors.New("linsys: system must contain at least one equation")

	// ErrRowOutOfRange indicates a row index outside [0, Len()).
	ErrRowOutOfRange = errors.New("linsys: row index out of range")

	// ErrZeroScale is returned by ScaleRow for a zero multiplier; scaling by
	// zero destroys the row's pivot information and is a caller error.
	ErrZeroScale = errors.New("linsys: cannot scale a row by zero")

	// ErrNoSolution classifies an inconsistent system (some row reads 0 = k, k ≠ 0).
	ErrNoSolution = errors.New("linsys: no solutions")

	// ErrInfiniteSolutions classifies a consistent system with free variables.
	// Only UniqueSolution returns it; Parametrize describes such systems instead.
	ErrInfiniteSolutions = errors.New("linsys: infinitely many solutions")
)

// ErrDimensionMismatch aliases the vector sentinel: every row of a system lives
// in the same dimension, and violations surface as the same error kind as a
// vector operand mismatch.
var ErrDimensionMismatch = vector.ErrDimensionMismatch

// ErrDegenerate aliases equation.ErrDegenerate; it never escapes this package
// and is listed for errors.Is checks on lower-level calls.
var ErrDegenerate = equation.ErrDegenerate

// ErrBadShape aliases matrix.ErrBadShape for augmented-matrix conversions.
var ErrBadShape = matrix.ErrBadShape

// Operation name constants for unified error wrapping.
const (
	opNew             = "New"
	opRow             = "Row"
	opSetRow          = "SetRow"
	opSwapRows        = "SwapRows"
	opScaleRow        = "ScaleRow"
	opAddScaledRow    = "AddScaledRowToRow"
	opTriangularForm  = "TriangularForm"
	opRREF            = "RREF"
	opParametrize     = "Parametrize"
	opSolve           = "Solve"
	opUniqueSolution  = "UniqueSolution"
	opParametrization = "NewParametrization"
	opPointAt         = "PointAt"
	opAugmentedMatrix = "AugmentedMatrix"
	opFromAugmented   = "FromAugmented"
)

// linsysErrorf wraps err with an operation tag, preserving errors.Is/As.
// Use only when err != nil.
func linsysErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
