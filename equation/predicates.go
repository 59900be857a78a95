// SPDX-License-Identifier: MIT
package equation

import (
	"fmt"

	"github.com/katalvlaran/linsys/scalar"
	"github.com/katalvlaran/linsys/vector"
)

// Geometric predicates over lines, planes and hyperplanes. The elimination
// engine never calls these; they serve callers that reason about pairs of
// equations directly (the linsolve geometry report).

const (
	opLine         = "Line"
	opPlane        = "Plane"
	opParallel     = "Parallel"
	opCoincident   = "Coincident"
	opIntersection = "Intersection2D"
)

// Line returns the 2-dimensional equation normal·(x, y) = k.
func Line(normal vector.Vector, k scalar.Scalar) (Equation, error) {
	if normal.Dimension() != 2 {
		return Equation{}, equationErrorf(opLine, fmt.Errorf("got %d: %w", normal.Dimension(), ErrWrongDimension))
	}

	return New(normal, k)
}

// Plane returns the 3-dimensional equation normal·(x, y, z) = k.
func Plane(normal vector.Vector, k scalar.Scalar) (Equation, error) {
	if normal.Dimension() != 3 {
		return Equation{}, equationErrorf(opPlane, fmt.Errorf("got %d: %w", normal.Dimension(), ErrWrongDimension))
	}

	return New(normal, k)
}

// Parallel reports whether the normal vectors of a and b are parallel.
func Parallel(a, b Equation) (bool, error) {
	p, err := a.normal.IsParallelTo(b.normal)
	if err != nil {
		return false, equationErrorf(opParallel, err)
	}

	return p, nil
}

// Coincident reports whether a and b describe the same point set.
//
// Two non-degenerate hyperplanes coincide when they are parallel and the vector
// joining their basepoints is orthogonal to both normals. Degenerate equations
// (0 = k) coincide only with each other and only when both read 0 = 0.
func Coincident(a, b Equation) (bool, error) {
	parallel, err := Parallel(a, b)
	if err != nil {
		return false, equationErrorf(opCoincident, err)
	}
	if !parallel {
		return false, nil
	}
	pa, okA := a.Basepoint()
	pb, okB := b.Basepoint()
	if !okA || !okB {
		return a.IsIdentity() && b.IsIdentity(), nil
	}
	if pa.Equal(pb) {
		return true, nil
	}
	joint, err := pb.Minus(pa)
	if err != nil {
		return false, equationErrorf(opCoincident, err)
	}
	orthA, err := a.normal.IsOrthogonalTo(joint)
	if err != nil {
		return false, equationErrorf(opCoincident, err)
	}
	orthB, err := b.normal.IsOrthogonalTo(joint)
	if err != nil {
		return false, equationErrorf(opCoincident, err)
	}

	return orthA && orthB, nil
}

// Intersection2D returns the unique intersection point of two lines.
// ok is false when the lines are parallel (no point or infinitely many).
func Intersection2D(a, b Equation) (point vector.Vector, ok bool, err error) {
	if a.Dimension() != 2 || b.Dimension() != 2 {
		return vector.Vector{}, false, equationErrorf(opIntersection, ErrWrongDimension)
	}
	parallel, err := Parallel(a, b)
	if err != nil {
		return vector.Vector{}, false, equationErrorf(opIntersection, err)
	}
	if parallel {
		return vector.Vector{}, false, nil
	}

	// Cramer's rule on [A B; C D]·(x, y) = (k1, k2).
	A, B, k1 := a.Coefficient(0), a.Coefficient(1), a.constant
	C, D, k2 := b.Coefficient(0), b.Coefficient(1), b.constant
	det := A.Mul(D).Sub(B.Mul(C))
	x, err := D.Mul(k1).Sub(B.Mul(k2)).Quo(det)
	if err != nil {
		return vector.Vector{}, false, equationErrorf(opIntersection, err)
	}
	y, err := A.Mul(k2).Sub(C.Mul(k1)).Quo(det)
	if err != nil {
		return vector.Vector{}, false, equationErrorf(opIntersection, err)
	}
	point, err = vector.New(x, y)
	if err != nil {
		return vector.Vector{}, false, equationErrorf(opIntersection, err)
	}

	return point, true, nil
}
