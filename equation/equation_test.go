// SPDX-License-Identifier: MIT
// Package equation_test contains unit tests for equations and their predicates.
package equation_test

import (
	"testing"

	"github.com/katalvlaran/linsys/equation"
	"github.com/katalvlaran/linsys/scalar"
	"github.com/katalvlaran/linsys/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eq is a terse constructor for test fixtures.
func eq(constant string, coefficients ...string) equation.Equation {
	return equation.MustParse(coefficients, constant)
}

func TestFirstNonzeroIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		e       equation.Equation
		want    int
		wantErr error
	}{
		{"first", eq("1", "1", "1", "1"), 0, nil},
		{"middle", eq("1", "0", "2", "1"), 1, nil},
		{"near zero skipped", eq("1", "1e-11", "0", "3"), 2, nil},
		{"degenerate", eq("5", "0", "1e-12", "0"), -1, equation.ErrDegenerate},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.e.FirstNonzeroIndex()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBasepoint(t *testing.T) {
	t.Parallel()

	p, ok := eq("6", "0", "3", "1").Basepoint()
	require.True(t, ok)
	assert.True(t, p.Equal(vector.MustParse("0", "2", "0")))

	_, ok = eq("6", "0", "0", "0").Basepoint()
	assert.False(t, ok, "degenerate equation has no basepoint")
}

func TestContradictionAndIdentity(t *testing.T) {
	t.Parallel()

	assert.True(t, eq("1", "0", "0").IsContradiction())
	assert.False(t, eq("1", "0", "0").IsIdentity())
	assert.True(t, eq("1e-12", "0", "0").IsIdentity())
	assert.False(t, eq("0", "1", "0").IsIdentity())

	z, err := equation.Zero(3)
	require.NoError(t, err)
	assert.True(t, z.IsIdentity())
	assert.Equal(t, 3, z.Dimension())
}

func TestScaledAndPlusScaled(t *testing.T) {
	t.Parallel()

	a := eq("1", "1", "1", "1")
	b := eq("2", "0", "1", "0")

	assert.True(t, a.Scaled(scalar.FromInt64(10)).Equal(eq("10", "10", "10", "10")))

	sum, err := b.PlusScaled(scalar.FromInt64(-1), a)
	require.NoError(t, err)
	assert.True(t, sum.Equal(eq("1", "-1", "0", "-1")))

	// operands stay untouched
	assert.True(t, a.Equal(eq("1", "1", "1", "1")))
	assert.True(t, b.Equal(eq("2", "0", "1", "0")))

	_, err = a.PlusScaled(scalar.One(), eq("1", "1", "1"))
	require.ErrorIs(t, err, equation.ErrDimensionMismatch)
}

func TestWithCoefficient(t *testing.T) {
	e, err := eq("3", "1", "2").WithCoefficient(1, scalar.Zero())
	require.NoError(t, err)
	assert.True(t, e.Equal(eq("3", "1", "0")))

	_, err = e.WithCoefficient(2, scalar.Zero())
	require.ErrorIs(t, err, equation.ErrOutOfRange)
}

func TestSatisfies(t *testing.T) {
	e := eq("6", "1", "2", "3")

	ok, err := e.Satisfies(vector.MustParse("1", "1", "1"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.Satisfies(vector.MustParse("1", "1", "2"))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = e.Satisfies(vector.MustParse("1", "1"))
	require.ErrorIs(t, err, equation.ErrDimensionMismatch)
}

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		e    equation.Equation
		want string
	}{
		{eq("1", "1", "1", "1"), "x_1 + x_2 + x_3 = 1"},
		{eq("-1", "-2", "0", "3.5"), "-2x_1 + 3.5x_3 = -1"},
		{eq("1", "0", "0", "0"), "0 = 1"},
		{eq("2.12345", "0", "-1", "0.0004"), "-x_2 = 2.123"},
		{eq("0", "1", "-1"), "x_1 - x_2 = 0"},
		{eq("1", "1e-11", "1"), "x_2 = 1"},
		{eq("100000", "0.0004", "1"), "x_2 = 100000"},
		{eq("0", "0.0001", "-2"), "-2x_2 = 0"},
		{eq("3", "0.0001", "0.0002"), "0 = 3"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.e.String())
	}
}

func TestParseLine(t *testing.T) {
	t.Parallel()

	e, err := equation.ParseLine("  1 -1 2.5 = 3 ")
	require.NoError(t, err)
	assert.True(t, e.Equal(eq("3", "1", "-1", "2.5")))

	for _, bad := range []string{"1 2 3", "= 4", "1 2 =", "1 2 = 3 4", "1 a = 2"} {
		_, err = equation.ParseLine(bad)
		assert.Error(t, err, bad)
	}
	_, err = equation.ParseLine("1 2 3")
	assert.ErrorIs(t, err, equation.ErrInvalidEquation)
	_, err = equation.ParseLine("1 a = 2")
	assert.ErrorIs(t, err, scalar.ErrInvalidLiteral)
}
