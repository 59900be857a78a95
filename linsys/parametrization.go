// SPDX-License-Identifier: MIT
package linsys

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linsys/equation"
	"github.com/katalvlaran/linsys/scalar"
	"github.com/katalvlaran/linsys/vector"
)

// Parametrization describes the affine set
//
//	basepoint + t_1·direction_1 + ... + t_k·direction_k
//
// for free parameters t_i. With zero direction vectors it is a single point.
type Parametrization struct {
	basepoint  vector.Vector
	directions []vector.Vector
	dim        int
}

// NewParametrization validates that the basepoint and every direction vector
// share one dimension.
func NewParametrization(basepoint vector.Vector, directions ...vector.Vector) (*Parametrization, error) {
	dim := basepoint.Dimension()
	if dim == 0 {
		return nil, linsysErrorf(opParametrization, vector.ErrEmptyVector)
	}
	for i, d := range directions {
		if d.Dimension() != dim {
			return nil, linsysErrorf(opParametrization, fmt.Errorf("direction %d has dimension %d, want %d: %w",
				i, d.Dimension(), dim, ErrDimensionMismatch))
		}
	}
	cp := make([]vector.Vector, len(directions))
	copy(cp, directions)

	return &Parametrization{basepoint: basepoint, directions: cp, dim: dim}, nil
}

// Basepoint returns the point reached with every parameter at zero.
func (p *Parametrization) Basepoint() vector.Vector { return p.basepoint }

// DirectionVectors returns a copy of the direction vectors, one per free variable
// in ascending column order.
func (p *Parametrization) DirectionVectors() []vector.Vector {
	cp := make([]vector.Vector, len(p.directions))
	copy(cp, p.directions)

	return cp
}

// Dimension returns the dimension of the ambient space.
func (p *Parametrization) Dimension() int { return p.dim }

// FreeVariables returns the number of free parameters.
func (p *Parametrization) FreeVariables() int { return len(p.directions) }

// IsUnique reports whether the parametrization is a single point.
func (p *Parametrization) IsUnique() bool { return len(p.directions) == 0 }

// PointAt evaluates basepoint + Σ params[i]·direction_i.
// len(params) must equal FreeVariables().
func (p *Parametrization) PointAt(params ...scalar.Scalar) (vector.Vector, error) {
	if len(params) != len(p.directions) {
		return vector.Vector{}, linsysErrorf(opPointAt, fmt.Errorf("%d parameters for %d free variables: %w",
			len(params), len(p.directions), ErrDimensionMismatch))
	}
	point := p.basepoint
	var err error
	for i, d := range p.directions {
		if point, err = point.Plus(d.TimesScalar(params[i])); err != nil {
			return vector.Vector{}, linsysErrorf(opPointAt, err)
		}
	}

	return point, nil
}

// Satisfies reports whether every point of the parametrization solves e, i.e.
// the basepoint lies on e and every direction is orthogonal to e's normal.
func (p *Parametrization) Satisfies(e equation.Equation) (bool, error) {
	ok, err := e.Satisfies(p.basepoint)
	if err != nil || !ok {
		return false, err
	}
	for _, d := range p.directions {
		dot, err := e.NormalVector().Dot(d)
		if err != nil {
			return false, err
		}
		if !scalar.IsNearZero(dot) {
			return false, nil
		}
	}

	return true, nil
}

// String renders one line per coordinate, e.g.
//
//	x_1 = 1 - 2 t_1
//	x_2 = t_1
func (p *Parametrization) String() string {
	lines := make([]string, p.dim)
	for i := 0; i < p.dim; i++ {
		var sb strings.Builder
		fmt.Fprintf(&sb, "x_%d = ", i+1)
		base := p.basepoint.Coordinate(i).Round(3)
		wrote := false
		if !base.IsZero() {
			sb.WriteString(base.String())
			wrote = true
		}
		for k, d := range p.directions {
			c := d.Coordinate(i).Round(3)
			if c.IsZero() {
				continue
			}
			switch {
			case !wrote && c.Sign() < 0:
				sb.WriteString("-")
			case wrote && c.Sign() < 0:
				sb.WriteString(" - ")
			case wrote:
				sb.WriteString(" + ")
			}
			if abs := c.Abs(); !abs.Equal(scalar.One()) {
				sb.WriteString(abs.String())
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "t_%d", k+1)
			wrote = true
		}
		if !wrote {
			sb.WriteString("0")
		}
		lines[i] = sb.String()
	}

	return strings.Join(lines, "\n")
}
