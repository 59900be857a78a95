// SPDX-License-Identifier: MIT
// Package linsys_test contains unit tests for systems, row primitives and
// augmented-matrix interop.
package linsys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/equation"
	"github.com/katalvlaran/linsys/linsys"
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/scalar"
	"github.com/katalvlaran/linsys/vector"
)

// eq parses "c1 ... cn = k" or fails the test.
func eq(t *testing.T, line string) equation.Equation {
	t.Helper()
	e, err := equation.ParseLine(line)
	require.NoError(t, err)

	return e
}

// sys builds a System from text lines or fails the test.
func sys(t *testing.T, lines ...string) *linsys.System {
	t.Helper()
	rows := make([]equation.Equation, len(lines))
	for i, l := range lines {
		rows[i] = eq(t, l)
	}
	s, err := linsys.New(rows...)
	require.NoError(t, err)

	return s
}

// requireRows compares every row of s exactly against the given lines.
func requireRows(t *testing.T, s *linsys.System, lines ...string) {
	t.Helper()
	require.Equal(t, len(lines), s.Len())
	for i, l := range lines {
		got, err := s.Row(i)
		require.NoError(t, err)
		assert.Truef(t, eq(t, l).Equal(got), "row %d: want %q, got %s", i, l, got)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := linsys.New()
	assert.ErrorIs(t, err, linsys.ErrEmptySystem)

	_, err = linsys.New(eq(t, "1 1 = 1"), eq(t, "1 1 1 = 1"))
	assert.ErrorIs(t, err, linsys.ErrDimensionMismatch)

	_, err = linsys.New(equation.Equation{})
	assert.ErrorIs(t, err, vector.ErrEmptyVector)

	_, err = linsys.New(equation.Equation{}, equation.Equation{})
	assert.ErrorIs(t, err, vector.ErrEmptyVector)

	s := sys(t, "1 1 1 = 1", "0 1 1 = 2")
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 3, s.Dimension())
}

func TestRowAccessors(t *testing.T) {
	t.Parallel()

	s := sys(t, "1 2 = 3", "4 5 = 6")
	_, err := s.Row(2)
	assert.ErrorIs(t, err, linsys.ErrRowOutOfRange)
	_, err = s.Row(-1)
	assert.ErrorIs(t, err, linsys.ErrRowOutOfRange)

	rows := s.Rows()
	rows[0] = eq(t, "9 9 = 9")
	requireRows(t, s, "1 2 = 3", "4 5 = 6")
}

func TestSetRow(t *testing.T) {
	t.Parallel()

	s := sys(t, "1 2 = 3", "4 5 = 6")
	require.NoError(t, s.SetRow(1, eq(t, "7 8 = 9")))
	requireRows(t, s, "1 2 = 3", "7 8 = 9")

	assert.ErrorIs(t, s.SetRow(0, eq(t, "1 2 3 = 4")), linsys.ErrDimensionMismatch)
	assert.ErrorIs(t, s.SetRow(5, eq(t, "1 2 = 4")), linsys.ErrRowOutOfRange)
	requireRows(t, s, "1 2 = 3", "7 8 = 9")
}

func TestSwapRows(t *testing.T) {
	t.Parallel()

	s := sys(t, "1 0 = 1", "0 1 = 2", "1 1 = 3")
	require.NoError(t, s.SwapRows(0, 2))
	requireRows(t, s, "1 1 = 3", "0 1 = 2", "1 0 = 1")

	require.NoError(t, s.SwapRows(1, 1))
	requireRows(t, s, "1 1 = 3", "0 1 = 2", "1 0 = 1")

	assert.ErrorIs(t, s.SwapRows(0, 3), linsys.ErrRowOutOfRange)
}

func TestScaleRow(t *testing.T) {
	t.Parallel()

	s := sys(t, "1 -2 = 3", "0 1 = 2")
	require.NoError(t, s.ScaleRow(0, scalar.MustParse("-0.5")))
	requireRows(t, s, "-0.5 1 = -1.5", "0 1 = 2")

	assert.ErrorIs(t, s.ScaleRow(0, scalar.Zero()), linsys.ErrZeroScale)
	assert.ErrorIs(t, s.ScaleRow(2, scalar.One()), linsys.ErrRowOutOfRange)
	requireRows(t, s, "-0.5 1 = -1.5", "0 1 = 2")
}

func TestAddScaledRowToRow(t *testing.T) {
	t.Parallel()

	s := sys(t, "1 1 1 = 1", "1 2 3 = 4")
	require.NoError(t, s.AddScaledRowToRow(scalar.FromInt64(-1), 0, 1))
	requireRows(t, s, "1 1 1 = 1", "0 1 2 = 3")

	assert.ErrorIs(t, s.AddScaledRowToRow(scalar.One(), 0, 2), linsys.ErrRowOutOfRange)
	assert.ErrorIs(t, s.AddScaledRowToRow(scalar.One(), -1, 0), linsys.ErrRowOutOfRange)
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	s := sys(t, "1 2 = 3", "4 5 = 6")
	c := s.Clone()
	require.NoError(t, c.SwapRows(0, 1))
	requireRows(t, s, "1 2 = 3", "4 5 = 6")
	requireRows(t, c, "4 5 = 6", "1 2 = 3")
}

func TestFirstNonzeroIndices(t *testing.T) {
	t.Parallel()

	s := sys(t, "0 1 1 = 1", "1 0 0 = 2", "0 0 0 = 0", "0 0 0.00000000001 = 3")
	assert.Equal(t, []int{1, 0, -1, -1}, s.FirstNonzeroIndices())
}

func TestString(t *testing.T) {
	t.Parallel()

	s := sys(t, "1 1 1 = 1", "0 1 -2 = 2")
	assert.Equal(t, "Linear System:\nEquation 1: x_1 + x_2 + x_3 = 1\nEquation 2: x_2 - 2x_3 = 2", s.String())
}

func TestAugmentedMatrixRoundTrip(t *testing.T) {
	t.Parallel()

	s := sys(t, "1 2 = 3", "4 5.5 = -6")
	m, err := s.AugmentedMatrix()
	require.NoError(t, err)
	want := matrix.MustFromRows([][]string{{"1", "2", "3"}, {"4", "5.5", "-6"}})
	assert.Truef(t, want.Equal(m), "got\n%s", m)

	back, err := linsys.FromAugmented(m)
	require.NoError(t, err)
	requireRows(t, back, "1 2 = 3", "4 5.5 = -6")
}

func TestFromAugmentedErrors(t *testing.T) {
	t.Parallel()

	_, err := linsys.FromAugmented(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = linsys.FromAugmented(matrix.MustFromRows([][]string{{"1"}, {"2"}}))
	assert.ErrorIs(t, err, linsys.ErrBadShape)
}
