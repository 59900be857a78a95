// SPDX-License-Identifier: MIT
// Package vector implements an immutable, fixed-dimension tuple of decimal
// scalars with the usual algebra (sum, difference, scaling, dot and cross
// products, magnitude, normalization) and the geometric predicates built on it
// (angle, parallelism, orthogonality, projections).
//
// Contract:
//   - Dimension() >= 1 for every constructed Vector.
//   - Binary operations require equal dimensions and fail with ErrDimensionMismatch.
//   - Equal is exact coordinate-wise comparison; IsParallelTo and IsOrthogonalTo
//     are the tolerant predicates.
package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linsys/scalar"
)

// Operation tags for error wrapping.
const (
	opNew        = "New"
	opParse      = "Parse"
	opZero       = "Zero"
	opUnit       = "Unit"
	opAt         = "At"
	opPlus       = "Plus"
	opMinus      = "Minus"
	opDot        = "Dot"
	opCross      = "Cross"
	opNormalized = "Normalized"
	opAngle      = "Angle"
	opProject    = "ProjectOnto"
	opOrthogonal = "ComponentOrthogonalTo"
)

// vectorErrorf wraps err with an operation tag, keeping errors.Is semantics.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Vector is an immutable ordered tuple of Scalars.
type Vector struct {
	coords []scalar.Scalar // never shared with callers
}

// New builds a Vector from scalars. The slice is copied.
func New(coords ...scalar.Scalar) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, vectorErrorf(opNew, ErrEmptyVector)
	}
	c := make([]scalar.Scalar, len(coords))
	copy(c, coords)

	return Vector{coords: c}, nil
}

// Parse builds a Vector from numeric literals such as "1", "-2.5", "3e-4".
func Parse(literals ...string) (Vector, error) {
	if len(literals) == 0 {
		return Vector{}, vectorErrorf(opParse, ErrEmptyVector)
	}
	c := make([]scalar.Scalar, len(literals))
	var err error
	for i, lit := range literals {
		if c[i], err = scalar.Parse(lit); err != nil {
			return Vector{}, vectorErrorf(opParse, fmt.Errorf("coordinate %d: %w", i, err))
		}
	}

	return Vector{coords: c}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(literals ...string) Vector {
	v, err := Parse(literals...)
	if err != nil {
		panic(err)
	}

	return v
}

// Zero returns the zero vector of the given dimension.
func Zero(dimension int) (Vector, error) {
	if dimension < 1 {
		return Vector{}, vectorErrorf(opZero, ErrEmptyVector)
	}
	c := make([]scalar.Scalar, dimension)
	for i := range c {
		c[i] = scalar.Zero()
	}

	return Vector{coords: c}, nil
}

// Unit returns the standard basis vector e_index of the given dimension.
func Unit(dimension, index int) (Vector, error) {
	v, err := Zero(dimension)
	if err != nil {
		return Vector{}, err
	}
	if index < 0 || index >= dimension {
		return Vector{}, vectorErrorf(opUnit, ErrOutOfRange)
	}
	v.coords[index] = scalar.One()

	return v, nil
}

// Dimension returns the number of coordinates.
func (v Vector) Dimension() int { return len(v.coords) }

// At returns coordinate i or ErrOutOfRange.
func (v Vector) At(i int) (scalar.Scalar, error) {
	if i < 0 || i >= len(v.coords) {
		return scalar.Scalar{}, vectorErrorf(opAt, fmt.Errorf("index %d of %d: %w", i, len(v.coords), ErrOutOfRange))
	}

	return v.coords[i], nil
}

// Coordinate returns coordinate i. Like slice indexing it panics when i is out
// of range; use At for a checked read.
func (v Vector) Coordinate(i int) scalar.Scalar { return v.coords[i] }

// Coordinates returns a copy of all coordinates.
func (v Vector) Coordinates() []scalar.Scalar {
	c := make([]scalar.Scalar, len(v.coords))
	copy(c, v.coords)

	return c
}

// WithCoordinate returns a copy of v with coordinate i replaced by s.
func (v Vector) WithCoordinate(i int, s scalar.Scalar) (Vector, error) {
	if i < 0 || i >= len(v.coords) {
		return Vector{}, vectorErrorf(opAt, fmt.Errorf("index %d of %d: %w", i, len(v.coords), ErrOutOfRange))
	}
	c := v.Coordinates()
	c[i] = s

	return Vector{coords: c}, nil
}

// sameDimension is the shared guard of every binary operation.
func (v Vector) sameDimension(w Vector) error {
	if len(v.coords) != len(w.coords) {
		return fmt.Errorf("%d vs %d: %w", len(v.coords), len(w.coords), ErrDimensionMismatch)
	}

	return nil
}

// Plus returns v + w.
func (v Vector) Plus(w Vector) (Vector, error) {
	if err := v.sameDimension(w); err != nil {
		return Vector{}, vectorErrorf(opPlus, err)
	}
	c := make([]scalar.Scalar, len(v.coords))
	for i := range c {
		c[i] = v.coords[i].Add(w.coords[i])
	}

	return Vector{coords: c}, nil
}

// Minus returns v - w.
func (v Vector) Minus(w Vector) (Vector, error) {
	if err := v.sameDimension(w); err != nil {
		return Vector{}, vectorErrorf(opMinus, err)
	}
	c := make([]scalar.Scalar, len(v.coords))
	for i := range c {
		c[i] = v.coords[i].Sub(w.coords[i])
	}

	return Vector{coords: c}, nil
}

// TimesScalar returns c·v.
func (v Vector) TimesScalar(c scalar.Scalar) Vector {
	out := make([]scalar.Scalar, len(v.coords))
	for i, x := range v.coords {
		out[i] = c.Mul(x)
	}

	return Vector{coords: out}
}

// Dot returns the inner product v·w.
func (v Vector) Dot(w Vector) (scalar.Scalar, error) {
	if err := v.sameDimension(w); err != nil {
		return scalar.Scalar{}, vectorErrorf(opDot, err)
	}

	return v.dot(w), nil
}

// dot assumes equal dimensions.
func (v Vector) dot(w Vector) scalar.Scalar {
	sum := scalar.Zero()
	for i := range v.coords {
		sum = sum.Add(v.coords[i].Mul(w.coords[i]))
	}

	return sum
}

// Cross returns v × w for 3-dimensional vectors.
func (v Vector) Cross(w Vector) (Vector, error) {
	if len(v.coords) != 3 || len(w.coords) != 3 {
		return Vector{}, vectorErrorf(opCross, ErrNotThreeDimensional)
	}
	a1, a2, a3 := v.coords[0], v.coords[1], v.coords[2]
	b1, b2, b3 := w.coords[0], w.coords[1], w.coords[2]

	return Vector{coords: []scalar.Scalar{
		a2.Mul(b3).Sub(a3.Mul(b2)),
		a3.Mul(b1).Sub(a1.Mul(b3)),
		a1.Mul(b2).Sub(a2.Mul(b1)),
	}}, nil
}

// Magnitude returns the Euclidean norm ‖v‖.
func (v Vector) Magnitude() scalar.Scalar {
	// a sum of squares is never negative, so Sqrt cannot fail here
	m, _ := v.dot(v).Sqrt()

	return m
}

// IsZero reports whether every coordinate is near zero.
func (v Vector) IsZero() bool {
	for _, x := range v.coords {
		if !scalar.IsNearZero(x) {
			return false
		}
	}

	return true
}

// Normalized returns v/‖v‖, or ErrZeroVector.
func (v Vector) Normalized() (Vector, error) {
	m := v.Magnitude()
	if scalar.IsNearZero(m) {
		return Vector{}, vectorErrorf(opNormalized, ErrZeroVector)
	}
	inv, err := scalar.One().Quo(m)
	if err != nil {
		return Vector{}, vectorErrorf(opNormalized, err)
	}

	return v.TimesScalar(inv), nil
}

// Equal reports exact coordinate-wise equality (no tolerance).
func (v Vector) Equal(w Vector) bool {
	if len(v.coords) != len(w.coords) {
		return false
	}
	for i := range v.coords {
		if !v.coords[i].Equal(w.coords[i]) {
			return false
		}
	}

	return true
}

// NearlyEqual reports coordinate-wise equality within the near-zero tolerance.
func (v Vector) NearlyEqual(w Vector) bool {
	if len(v.coords) != len(w.coords) {
		return false
	}
	for i := range v.coords {
		if !scalar.NearlyEqual(v.coords[i], w.coords[i]) {
			return false
		}
	}

	return true
}

// String renders "Vector: (1, 2, 3)".
func (v Vector) String() string {
	parts := make([]string, len(v.coords))
	for i, x := range v.coords {
		parts[i] = x.String()
	}

	return "Vector: (" + strings.Join(parts, ", ") + ")"
}
