// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every message is prefixed with "vector: ..."; operations wrap these with an
// operation tag and callers match them with errors.Is.

package vector

import "errors"

var (
	// ErrEmptyVector is returned when constructing a vector without coordinates.
	ErrEmptyVector = errors.New("vector: the coordinates must be nonempty")

	// ErrDimensionMismatch indicates operands of different dimensions.
	// equation and linsys alias this sentinel so one errors.Is check works everywhere.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNotThreeDimensional is returned by 3-D only operations (cross product, areas).
	ErrNotThreeDimensional = errors.New("vector: cross product requires 3-dimensional vectors")

	// ErrZeroVector is returned when normalizing or measuring an angle against the zero vector.
	ErrZeroVector = errors.New("vector: cannot normalize the zero vector")

	// ErrOutOfRange indicates a coordinate index outside [0, Dimension()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrNoUniqueParallelComponent is returned when projecting onto the zero vector.
	ErrNoUniqueParallelComponent = errors.New("vector: no unique parallel component")

	// ErrNoUniqueOrthogonalComponent is returned when decomposing against the zero vector.
	ErrNoUniqueOrthogonalComponent = errors.New("vector: no unique orthogonal component")
)
