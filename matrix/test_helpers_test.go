// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/scalar"
)

// MustRows builds a *Dense from row literals or fails the test.
func MustRows(t *testing.T, rows ...[]string) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt(t *testing.T, m *matrix.Dense, i, j int) scalar.Scalar {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireEqualDense compares shape and exact values, printing both on failure.
func requireEqualDense(t *testing.T, want, got *matrix.Dense) {
	t.Helper()
	require.Truef(t, want.Equal(got), "want\n%s\ngot\n%s", want, got)
}

// row is shorthand for a literal row.
func row(vals ...string) []string { return vals }
