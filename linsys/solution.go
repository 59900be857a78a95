// SPDX-License-Identifier: MIT
package linsys

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsys/scalar"
	"github.com/katalvlaran/linsys/vector"
)

// Kind classifies the solution set of a system.
type Kind int

const (
	// NoSolution: the system is inconsistent.
	NoSolution Kind = iota
	// UniqueSolution: exactly one point solves the system.
	UniqueSolution
	// InfiniteSolutions: the solutions form an affine set with free variables.
	InfiniteSolutions
)

// String returns the textual classification.
func (k Kind) String() string {
	switch k {
	case NoSolution:
		return "No solutions"
	case UniqueSolution:
		return "Unique solution"
	case InfiniteSolutions:
		return "Infinitely many solutions"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Solution is the tagged result of Solve. Parametrization is nil for NoSolution
// and has zero direction vectors for UniqueSolution.
type Solution struct {
	Kind            Kind
	Parametrization *Parametrization
}

// String renders the classification followed by the parametrization, if any.
func (s Solution) String() string {
	if s.Parametrization == nil {
		return s.Kind.String()
	}

	return s.Kind.String() + ":\n" + s.Parametrization.String()
}

// Parametrize computes the RREF of s and describes its solution set.
//
// Implementation:
//   - Stage 1: RREF (s is untouched).
//   - Stage 2: Any row reading 0 = k with k not near zero ⇒ ErrNoSolution.
//   - Stage 3: Pivot columns come from the first nonzero index of each row; all
//     other columns are free and enumerated in ascending order.
//   - Stage 4: Basepoint: each pivot row's constant term in its pivot column,
//     zero elsewhere. Direction per free column f: 1 at f and, for every pivot
//     row with pivot column j, the negated coefficient of f at j.
//
// Returns a Parametrization with dimension - pivotCount direction vectors; a
// unique solution is the case with none.
//
// Complexity:
//   - Time O(m·m·n) dominated by RREF; the parametrization itself is O(m·n).
func (s *System) Parametrize() (*Parametrization, error) {
	rref, err := s.RREF()
	if err != nil {
		return nil, linsysErrorf(opParametrize, err)
	}

	pivots := rref.FirstNonzeroIndices()
	for i, j := range pivots {
		if j < 0 && !scalar.IsNearZero(rref.rows[i].ConstantTerm()) {
			log.Debugf("row %d reads %s", i, rref.rows[i])
			return nil, linsysErrorf(opParametrize, ErrNoSolution)
		}
	}

	isPivot := make([]bool, rref.dim)
	for _, j := range pivots {
		if j >= 0 {
			isPivot[j] = true
		}
	}

	base := make([]scalar.Scalar, rref.dim)
	for j := range base {
		base[j] = scalar.Zero()
	}
	for i, j := range pivots {
		if j >= 0 {
			base[j] = rref.rows[i].ConstantTerm()
		}
	}
	basepoint, err := vector.New(base...)
	if err != nil {
		return nil, linsysErrorf(opParametrize, err)
	}

	var directions []vector.Vector
	for f := 0; f < rref.dim; f++ {
		if isPivot[f] {
			continue
		}
		coords := make([]scalar.Scalar, rref.dim)
		for j := range coords {
			coords[j] = scalar.Zero()
		}
		coords[f] = scalar.One()
		for i, j := range pivots {
			if j >= 0 {
				coords[j] = rref.rows[i].Coefficient(f).Neg()
			}
		}
		d, err := vector.New(coords...)
		if err != nil {
			return nil, linsysErrorf(opParametrize, err)
		}
		directions = append(directions, d)
	}
	log.Debugf("parametrized %d-dimensional system with %d free variables", rref.dim, len(directions))

	p, err := NewParametrization(basepoint, directions...)
	if err != nil {
		return nil, linsysErrorf(opParametrize, err)
	}

	return p, nil
}

// Solve classifies the system and returns the uniform tagged result.
// An inconsistent system is an outcome, not an error: Solve returns
// Solution{Kind: NoSolution} with a nil error.
func (s *System) Solve() (Solution, error) {
	p, err := s.Parametrize()
	switch {
	case errors.Is(err, ErrNoSolution):
		return Solution{Kind: NoSolution}, nil
	case err != nil:
		return Solution{}, linsysErrorf(opSolve, err)
	case p.IsUnique():
		return Solution{Kind: UniqueSolution, Parametrization: p}, nil
	default:
		return Solution{Kind: InfiniteSolutions, Parametrization: p}, nil
	}
}

// UniqueSolution returns the single solution point, or ErrNoSolution /
// ErrInfiniteSolutions. This is the classification-only entry point.
func (s *System) UniqueSolution() (vector.Vector, error) {
	sol, err := s.Solve()
	if err != nil {
		return vector.Vector{}, linsysErrorf(opUniqueSolution, err)
	}
	switch sol.Kind {
	case NoSolution:
		return vector.Vector{}, linsysErrorf(opUniqueSolution, ErrNoSolution)
	case InfiniteSolutions:
		return vector.Vector{}, linsysErrorf(opUniqueSolution, ErrInfiniteSolutions)
	default:
		return sol.Parametrization.Basepoint(), nil
	}
}
