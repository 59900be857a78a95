// SPDX-License-Identifier: MIT
// Package scalar provides the decimal number type shared by every package of
// the module, together with the single near-zero policy used for pivoting.
//
// Numeric policy:
//   - All arithmetic runs in one decimal context: 30 significant digits,
//     round-half-even, backed by github.com/cockroachdb/apd/v3.
//   - IsNearZero(x) ⇔ |x| < Epsilon. Epsilon is a package constant and is never
//     configurable per call, so triangular form, RREF and solution
//     classification always agree on what "zero" means.
//   - Scalars are immutable values. Each operation allocates a fresh result;
//     the zero value of Scalar is the number 0.
package scalar

import (
	"fmt"
	"math"

	"github.com/cockroachdb/apd/v3"
)

// Precision is the number of significant decimal digits kept by every operation.
const Precision = 30

// EpsilonLiteral is the textual form of the near-zero tolerance.
const EpsilonLiteral = "1e-10"

// MaxAdjustedExponent bounds |e| for every nonzero input, where e is the power
// of ten of its leading digit. It covers the float64 range and keeps the
// products and quotients formed during elimination inside the exponent range
// of the decimal context.
const MaxAdjustedExponent = 400

// ctx is the shared decimal context. apd contexts are read-only during
// arithmetic and therefore safe to share.
var ctx = newContext()

// epsilon = 1e-10.
var epsilon = apd.New(1, -10)

func newContext() *apd.Context {
	c := apd.BaseContext.WithPrecision(Precision)
	c.Rounding = apd.RoundHalfEven

	return c
}

// Scalar is an immutable decimal number.
type Scalar struct {
	d *apd.Decimal // nil means 0; never mutated after construction
}

// dec returns the backing decimal, substituting 0 for the zero value.
func (s Scalar) dec() *apd.Decimal {
	if s.d == nil {
		return new(apd.Decimal)
	}

	return s.d
}

// must panics on context failures. Inputs are limited to MaxAdjustedExponent,
// so only a pathological chain of operations can reach the context's exponent
// limits.
func must(_ apd.Condition, err error) {
	if err != nil {
		panic(fmt.Sprintf("scalar: decimal context failure: %v", err))
	}
}

// Zero returns 0.
func Zero() Scalar { return Scalar{d: new(apd.Decimal)} }

// One returns 1.
func One() Scalar { return Scalar{d: apd.New(1, 0)} }

// Epsilon returns the near-zero tolerance 1e-10.
func Epsilon() Scalar { return Scalar{d: epsilon} }

// FromInt64 returns the exact decimal value of i.
func FromInt64(i int64) Scalar { return Scalar{d: apd.New(i, 0)} }

// New returns coeff × 10^exp.
func New(coeff int64, exp int32) Scalar { return Scalar{d: apd.New(coeff, exp)} }

// Parse reads a decimal literal such as "3", "-0.25" or "1e-9".
// Literals longer than Precision digits are kept exactly; rounding happens on
// the first arithmetic operation.
func Parse(literal string) (Scalar, error) {
	d, _, err := apd.NewFromString(literal)
	if err != nil {
		return Scalar{}, fmt.Errorf("Parse(%q): %w", literal, ErrInvalidLiteral)
	}
	if d.Form != apd.Finite {
		return Scalar{}, fmt.Errorf("Parse(%q): %w", literal, ErrNonFinite)
	}
	if d.IsZero() {
		return Zero(), nil
	}
	if !inExponentRange(d) {
		return Scalar{}, fmt.Errorf("Parse(%q): exponent out of range: %w", literal, ErrInvalidLiteral)
	}

	return Scalar{d: d}, nil
}

// inExponentRange reports whether the adjusted exponent of a nonzero d lies
// within ±MaxAdjustedExponent.
func inExponentRange(d *apd.Decimal) bool {
	adjusted := int64(d.Exponent) + d.NumDigits() - 1

	return adjusted >= -MaxAdjustedExponent && adjusted <= MaxAdjustedExponent
}

// MustParse is like Parse but panics on error. Intended for literals in tests
// and examples.
func MustParse(literal string) Scalar {
	s, err := Parse(literal)
	if err != nil {
		panic(err)
	}

	return s
}

// FromFloat64 converts a finite float64 into a Scalar.
func FromFloat64(f float64) (Scalar, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Scalar{}, fmt.Errorf("FromFloat64(%v): %w", f, ErrNonFinite)
	}
	d, err := new(apd.Decimal).SetFloat64(f)
	if err != nil || (!d.IsZero() && !inExponentRange(d)) {
		return Scalar{}, fmt.Errorf("FromFloat64(%v): %w", f, ErrInvalidLiteral)
	}

	return Scalar{d: d}, nil
}

// Add returns s + o.
func (s Scalar) Add(o Scalar) Scalar {
	r := new(apd.Decimal)
	must(ctx.Add(r, s.dec(), o.dec()))

	return Scalar{d: r}
}

// Sub returns s - o.
func (s Scalar) Sub(o Scalar) Scalar {
	r := new(apd.Decimal)
	must(ctx.Sub(r, s.dec(), o.dec()))

	return Scalar{d: r}
}

// Mul returns s × o.
func (s Scalar) Mul(o Scalar) Scalar {
	r := new(apd.Decimal)
	must(ctx.Mul(r, s.dec(), o.dec()))

	return Scalar{d: r}
}

// Quo returns s / o, or ErrDivisionByZero when o is exactly zero.
func (s Scalar) Quo(o Scalar) (Scalar, error) {
	if o.IsZero() {
		return Scalar{}, fmt.Errorf("Quo(%s, %s): %w", s, o, ErrDivisionByZero)
	}
	r := new(apd.Decimal)
	must(ctx.Quo(r, s.dec(), o.dec()))

	return Scalar{d: r}, nil
}

// Neg returns -s.
func (s Scalar) Neg() Scalar {
	return Scalar{d: new(apd.Decimal).Neg(s.dec())}
}

// Abs returns |s|.
func (s Scalar) Abs() Scalar {
	return Scalar{d: new(apd.Decimal).Abs(s.dec())}
}

// Sqrt returns the square root of s rounded to Precision digits.
func (s Scalar) Sqrt() (Scalar, error) {
	if s.Sign() < 0 {
		return Scalar{}, fmt.Errorf("Sqrt(%s): %w", s, ErrNegativeRoot)
	}
	r := new(apd.Decimal)
	must(ctx.Sqrt(r, s.dec()))

	return Scalar{d: r}, nil
}

// Cmp compares s and o: -1 if s < o, 0 if equal, +1 if s > o.
// Negative zero compares equal to zero.
func (s Scalar) Cmp(o Scalar) int { return s.dec().Cmp(o.dec()) }

// Sign returns -1, 0 or +1.
func (s Scalar) Sign() int { return s.dec().Sign() }

// IsZero reports whether s is exactly zero (no tolerance).
func (s Scalar) IsZero() bool { return s.dec().IsZero() }

// Equal reports exact numeric equality; 2, 2.0 and 2.000 are equal.
func (s Scalar) Equal(o Scalar) bool { return s.Cmp(o) == 0 }

// Round returns s rounded to the given number of decimal places.
// Values whose integer part does not fit into Precision digits are returned unchanged.
func (s Scalar) Round(places int32) Scalar {
	r := new(apd.Decimal)
	if _, err := ctx.Quantize(r, s.dec(), -places); err != nil {
		return s
	}

	return Scalar{d: r}
}

// IsInteger reports whether s has no fractional part.
func (s Scalar) IsInteger() bool {
	r := new(apd.Decimal)
	must(ctx.RoundToIntegralValue(r, s.dec()))

	return r.Cmp(s.dec()) == 0
}

// Float64 returns the nearest float64. Precision beyond float64 is lost.
func (s Scalar) Float64() float64 {
	f, err := s.dec().Float64()
	if err != nil {
		return math.NaN()
	}

	return f
}

// String renders s in plain notation with trailing zeros removed ("2.5", "-3", "0").
func (s Scalar) String() string {
	if s.IsZero() {
		return "0"
	}
	r := new(apd.Decimal)
	if _, _, err := ctx.Reduce(r, s.dec()); err != nil {
		return s.dec().Text('f')
	}

	return r.Text('f')
}

// IsNearZero reports whether |x| < Epsilon. This is the only zero test used for
// structural decisions (pivots, contradictions, free variables).
func IsNearZero(x Scalar) bool {
	return x.Abs().dec().Cmp(epsilon) < 0
}

// NearlyEqual reports whether a and b differ by less than Epsilon.
func NearlyEqual(a, b Scalar) bool { return IsNearZero(a.Sub(b)) }
