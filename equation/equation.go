// SPDX-License-Identifier: MIT
// Package equation models one linear equation n·x = k in n-dimensional space:
// a line for n = 2, a plane for n = 3, a hyperplane in general.
//
// Equations are immutable. Row operations of a linear system (scaling, adding a
// multiple of another row) return fresh Equations, so no coefficient slice is
// ever shared between rows.
package equation

import (
	"fmt"

	"github.com/katalvlaran/linsys/scalar"
	"github.com/katalvlaran/linsys/vector"
)

// Operation tags for error wrapping.
const (
	opNew        = "New"
	opParse      = "Parse"
	opZero       = "Zero"
	opFirstIndex = "FirstNonzeroIndex"
	opPlusScaled = "PlusScaled"
	opWithCoef   = "WithCoefficient"
	opSatisfies  = "Satisfies"
)

func equationErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Equation is normal·x = constant.
type Equation struct {
	normal   vector.Vector
	constant scalar.Scalar
}

// New returns the equation normal·x = constant.
func New(normal vector.Vector, constant scalar.Scalar) (Equation, error) {
	if normal.Dimension() == 0 {
		return Equation{}, equationErrorf(opNew, vector.ErrEmptyVector)
	}

	return Equation{normal: normal, constant: constant}, nil
}

// Parse builds an equation from coefficient literals and a constant literal.
func Parse(coefficients []string, constant string) (Equation, error) {
	n, err := vector.Parse(coefficients...)
	if err != nil {
		return Equation{}, equationErrorf(opParse, err)
	}
	k, err := scalar.Parse(constant)
	if err != nil {
		return Equation{}, equationErrorf(opParse, err)
	}

	return Equation{normal: n, constant: k}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(coefficients []string, constant string) Equation {
	e, err := Parse(coefficients, constant)
	if err != nil {
		panic(err)
	}

	return e
}

// Zero returns the trivial equation 0 = 0 of the given dimension.
func Zero(dimension int) (Equation, error) {
	n, err := vector.Zero(dimension)
	if err != nil {
		return Equation{}, equationErrorf(opZero, err)
	}

	return Equation{normal: n, constant: scalar.Zero()}, nil
}

// Dimension returns the number of variables.
func (e Equation) Dimension() int { return e.normal.Dimension() }

// NormalVector returns the coefficient vector.
func (e Equation) NormalVector() vector.Vector { return e.normal }

// ConstantTerm returns the right-hand side.
func (e Equation) ConstantTerm() scalar.Scalar { return e.constant }

// Coefficient returns the coefficient of variable j. It panics when j is out of
// range, like slice indexing.
func (e Equation) Coefficient(j int) scalar.Scalar { return e.normal.Coordinate(j) }

// FirstNonzeroIndex returns the index of the first coefficient that is not
// near zero, or ErrDegenerate.
func (e Equation) FirstNonzeroIndex() (int, error) {
	for j := 0; j < e.normal.Dimension(); j++ {
		if !scalar.IsNearZero(e.normal.Coordinate(j)) {
			return j, nil
		}
	}

	return -1, equationErrorf(opFirstIndex, ErrDegenerate)
}

// Basepoint returns a point on the hyperplane: the first nonzero coefficient's
// variable solved, every other variable zero. ok is false for an equation whose
// normal vector is near zero.
func (e Equation) Basepoint() (point vector.Vector, ok bool) {
	j, err := e.FirstNonzeroIndex()
	if err != nil {
		return vector.Vector{}, false
	}
	// the coefficient at j is not near zero, so Quo cannot fail
	x, _ := e.constant.Quo(e.normal.Coordinate(j))
	p, _ := vector.Zero(e.Dimension())
	p, _ = p.WithCoordinate(j, x)

	return p, true
}

// IsContradiction reports whether the equation reads 0 = k with k not near zero.
func (e Equation) IsContradiction() bool {
	return e.normal.IsZero() && !scalar.IsNearZero(e.constant)
}

// IsIdentity reports whether the equation reads 0 = 0 within tolerance.
func (e Equation) IsIdentity() bool {
	return e.normal.IsZero() && scalar.IsNearZero(e.constant)
}

// Scaled returns c·e.
func (e Equation) Scaled(c scalar.Scalar) Equation {
	return Equation{normal: e.normal.TimesScalar(c), constant: e.constant.Mul(c)}
}

// PlusScaled returns e + c·other.
func (e Equation) PlusScaled(c scalar.Scalar, other Equation) (Equation, error) {
	n, err := other.normal.TimesScalar(c).Plus(e.normal)
	if err != nil {
		return Equation{}, equationErrorf(opPlusScaled, err)
	}

	return Equation{normal: n, constant: other.constant.Mul(c).Add(e.constant)}, nil
}

// WithCoefficient returns a copy of e with coefficient j replaced by v.
func (e Equation) WithCoefficient(j int, v scalar.Scalar) (Equation, error) {
	n, err := e.normal.WithCoordinate(j, v)
	if err != nil {
		return Equation{}, equationErrorf(opWithCoef, err)
	}

	return Equation{normal: n, constant: e.constant}, nil
}

// Equal reports exact equality of coefficients and constant term.
func (e Equation) Equal(o Equation) bool {
	return e.normal.Equal(o.normal) && e.constant.Equal(o.constant)
}

// NearlyEqual compares coefficients and constant term within tolerance.
func (e Equation) NearlyEqual(o Equation) bool {
	return e.normal.NearlyEqual(o.normal) && scalar.NearlyEqual(e.constant, o.constant)
}

// Satisfies reports whether point lies on the hyperplane within tolerance.
func (e Equation) Satisfies(point vector.Vector) (bool, error) {
	lhs, err := e.normal.Dot(point)
	if err != nil {
		return false, equationErrorf(opSatisfies, err)
	}

	return scalar.NearlyEqual(lhs, e.constant), nil
}
