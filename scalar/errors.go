// SPDX-License-Identifier: MIT
// Package scalar: sentinel error set.
// All constructors and fallible operations return these sentinels (optionally
// wrapped with an operation tag); tests match them via errors.Is.

package scalar

import "errors"

var (
	// ErrInvalidLiteral is returned when a numeric literal cannot be parsed.
	ErrInvalidLiteral = errors.New("scalar: invalid numeric literal")

	// ErrNonFinite signals NaN or ±Inf input; only finite coefficients are supported.
	ErrNonFinite = errors.New("scalar: NaN or Inf encountered")

	// ErrDivisionByZero is returned by Quo when the divisor is exactly zero.
	ErrDivisionByZero = errors.New("scalar: division by zero")

	// ErrNegativeRoot is returned by Sqrt for negative operands.
	ErrNegativeRoot = errors.New("scalar: square root of a negative number")
)
