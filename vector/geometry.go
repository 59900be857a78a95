// SPDX-License-Identifier: MIT
package vector

import (
	"math"

	"github.com/katalvlaran/linsys/scalar"
)

// angleClampBand absorbs rounding overshoot of a normalized dot product past ±1
// before it reaches math.Acos.
var angleClampBand = scalar.New(1, -5)

// cosine returns the normalized dot product of v and w.
func (v Vector) cosine(w Vector) (scalar.Scalar, error) {
	if err := v.sameDimension(w); err != nil {
		return scalar.Scalar{}, err
	}
	u1, err := v.Normalized()
	if err != nil {
		return scalar.Scalar{}, err
	}
	u2, err := w.Normalized()
	if err != nil {
		return scalar.Scalar{}, err
	}

	return u1.dot(u2), nil
}

// AngleRadians returns the angle between v and w in [0, π].
// Fails with ErrZeroVector if either operand is the zero vector.
func (v Vector) AngleRadians(w Vector) (float64, error) {
	c, err := v.cosine(w)
	if err != nil {
		return 0, vectorErrorf(opAngle, err)
	}
	one := scalar.One()
	minusOne := one.Neg()
	switch {
	case c.Cmp(minusOne) < 0 && c.Sub(minusOne).Abs().Cmp(angleClampBand) < 0:
		c = minusOne
	case c.Cmp(one) > 0 && c.Sub(one).Cmp(angleClampBand) < 0:
		c = one
	}

	return math.Acos(c.Float64()), nil
}

// AngleDegrees returns the angle between v and w in [0, 180].
func (v Vector) AngleDegrees(w Vector) (float64, error) {
	rad, err := v.AngleRadians(w)
	if err != nil {
		return 0, err
	}

	return rad * 180 / math.Pi, nil
}

// IsParallelTo reports whether v and w point along the same line (angle 0° or
// 180° within tolerance). The zero vector is parallel to every vector.
func (v Vector) IsParallelTo(w Vector) (bool, error) {
	if err := v.sameDimension(w); err != nil {
		return false, vectorErrorf(opAngle, err)
	}
	if v.IsZero() || w.IsZero() {
		return true, nil
	}
	c, err := v.cosine(w)
	if err != nil {
		return false, vectorErrorf(opAngle, err)
	}

	// |cos θ| == 1 within tolerance
	return scalar.IsNearZero(c.Abs().Sub(scalar.One())), nil
}

// IsOrthogonalTo reports whether |v·w| is near zero. The zero vector is
// orthogonal to every vector.
func (v Vector) IsOrthogonalTo(w Vector) (bool, error) {
	if err := v.sameDimension(w); err != nil {
		return false, vectorErrorf(opDot, err)
	}
	if v.IsZero() || w.IsZero() {
		return true, nil
	}

	return scalar.IsNearZero(v.dot(w)), nil
}

// ProjectOnto returns the component of v parallel to b: (v·b̂)·b̂.
func (v Vector) ProjectOnto(b Vector) (Vector, error) {
	if err := v.sameDimension(b); err != nil {
		return Vector{}, vectorErrorf(opProject, err)
	}
	unit, err := b.Normalized()
	if err != nil {
		return Vector{}, vectorErrorf(opProject, ErrNoUniqueParallelComponent)
	}

	return unit.TimesScalar(v.dot(unit)), nil
}

// ComponentOrthogonalTo returns v minus its projection onto b.
func (v Vector) ComponentOrthogonalTo(b Vector) (Vector, error) {
	par, err := v.ProjectOnto(b)
	if err != nil {
		if v.sameDimension(b) != nil {
			return Vector{}, vectorErrorf(opOrthogonal, ErrDimensionMismatch)
		}
		return Vector{}, vectorErrorf(opOrthogonal, ErrNoUniqueOrthogonalComponent)
	}

	return v.Minus(par)
}

// AreaOfParallelogram returns ‖v × w‖ for 3-dimensional vectors.
func (v Vector) AreaOfParallelogram(w Vector) (scalar.Scalar, error) {
	c, err := v.Cross(w)
	if err != nil {
		return scalar.Scalar{}, err
	}

	return c.Magnitude(), nil
}

// AreaOfTriangle returns half the parallelogram area spanned by v and w.
func (v Vector) AreaOfTriangle(w Vector) (scalar.Scalar, error) {
	a, err := v.AreaOfParallelogram(w)
	if err != nil {
		return scalar.Scalar{}, err
	}

	return a.Quo(scalar.FromInt64(2))
}
