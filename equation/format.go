// SPDX-License-Identifier: MIT
package equation

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linsys/scalar"
)

// displayPlaces is the number of decimal places shown by String.
const displayPlaces = 3

// String renders the equation as "x_1 + 2x_2 - x_3 = 4".
// Coefficients are rounded to three decimal places; terms that round to zero
// are omitted and an all-zero left-hand side prints as "0".
func (e Equation) String() string {
	terms := make([]string, 0, e.Dimension())
	for j := 0; j < e.Dimension(); j++ {
		c := e.Coefficient(j).Round(displayPlaces)
		if c.IsZero() {
			continue
		}
		terms = append(terms, writeCoefficient(c, len(terms) == 0)+fmt.Sprintf("x_%d", j+1))
	}
	if len(terms) == 0 {
		terms = append(terms, "0")
	}

	return strings.Join(terms, " ") + " = " + e.constant.Round(displayPlaces).String()
}

// writeCoefficient renders the sign and magnitude of one term; the initial term
// carries a bare minus and no plus sign, unit magnitudes are implicit.
func writeCoefficient(c scalar.Scalar, initial bool) string {
	var sb strings.Builder
	if c.Sign() < 0 {
		sb.WriteString("-")
	}
	if c.Sign() > 0 && !initial {
		sb.WriteString("+")
	}
	if !initial {
		sb.WriteString(" ")
	}
	if abs := c.Abs(); !abs.Equal(scalar.One()) {
		sb.WriteString(abs.String())
	}

	return sb.String()
}

// ParseLine reads the text form "c1 c2 ... cn = k", for example "1 -1 2.5 = 3".
func ParseLine(line string) (Equation, error) {
	lhs, rhs, found := strings.Cut(line, "=")
	if !found {
		return Equation{}, equationErrorf(opParse, fmt.Errorf("%q: missing '=': %w", line, ErrInvalidEquation))
	}
	coefficients := strings.Fields(lhs)
	constant := strings.Fields(rhs)
	if len(coefficients) == 0 || len(constant) != 1 {
		return Equation{}, equationErrorf(opParse, fmt.Errorf("%q: %w", line, ErrInvalidEquation))
	}

	return Parse(coefficients, constant[0])
}
