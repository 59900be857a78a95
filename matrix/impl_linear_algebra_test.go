// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the decimal linear-algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/scalar"
)

func TestMul(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    [][]string
		want    [][]string
		wantErr error
	}{
		{
			name: "column times row",
			a:    [][]string{{"5"}, {"2"}},
			b:    [][]string{{"5", "1"}},
			want: [][]string{{"25", "5"}, {"10", "2"}},
		},
		{
			name: "row times column",
			a:    [][]string{{"5", "1"}},
			b:    [][]string{{"5"}, {"2"}},
			want: [][]string{{"27"}},
		},
		{
			name: "1x1",
			a:    [][]string{{"4"}},
			b:    [][]string{{"3"}},
			want: [][]string{{"12"}},
		},
		{
			name: "2x5 times 5x3",
			a:    [][]string{{"2", "1", "8", "2", "1"}, {"5", "6", "4", "2", "1"}},
			b: [][]string{
				{"1", "7", "2"}, {"2", "6", "3"}, {"3", "1", "1"}, {"1", "20", "1"}, {"7", "4", "16"},
			},
			want: [][]string{{"37", "72", "33"}, {"38", "119", "50"}},
		},
		{
			name: "decimals stay exact",
			a:    [][]string{{"0.1", "0.2"}},
			b:    [][]string{{"0.1"}, {"0.2"}},
			want: [][]string{{"0.05"}},
		},
		{
			name:    "incompatible",
			a:       [][]string{{"1", "2"}},
			b:       [][]string{{"1", "2"}},
			wantErr: matrix.ErrDimensionMismatch,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.Mul(MustRows(t, tc.a...), MustRows(t, tc.b...))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			requireEqualDense(t, MustRows(t, tc.want...), got)
		})
	}
}

func TestAddSub(t *testing.T) {
	t.Parallel()

	a := MustRows(t, row("1", "2.5"), row("3", "-4"))
	b := MustRows(t, row("0.5", "0.5"), row("-3", "4"))

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireEqualDense(t, MustRows(t, row("1.5", "3"), row("0", "0")), sum)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	requireEqualDense(t, MustRows(t, row("0.5", "2"), row("6", "-8")), diff)

	_, err = matrix.Add(a, MustRows(t, row("1", "2")))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Sub(nil, b)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTransposeAndScale(t *testing.T) {
	t.Parallel()

	m := MustRows(t, row("1", "2", "3"), row("4", "5", "6"))

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	requireEqualDense(t, MustRows(t, row("1", "4"), row("2", "5"), row("3", "6")), tr)

	back, err := matrix.Transpose(tr)
	require.NoError(t, err)
	requireEqualDense(t, m, back)

	sc, err := matrix.Scale(m, scalar.MustParse("0.5"))
	require.NoError(t, err)
	requireEqualDense(t, MustRows(t, row("0.5", "1", "1.5"), row("2", "2.5", "3")), sc)
	assert.Equal(t, "1", MustAt(t, m, 0, 0).String(), "input untouched")

	_, err = matrix.Transpose(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec(t *testing.T) {
	t.Parallel()

	m := MustRows(t, row("1", "2"), row("3", "4"), row("5", "6"))
	y, err := matrix.MatVec(m, []scalar.Scalar{scalar.FromInt64(1), scalar.MustParse("-1")})
	require.NoError(t, err)
	require.Len(t, y, 3)
	assert.Equal(t, "-1", y[0].String())
	assert.Equal(t, "-1", y[1].String())
	assert.Equal(t, "-1", y[2].String())

	_, err = matrix.MatVec(m, []scalar.Scalar{scalar.One()})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestInverse(t *testing.T) {
	t.Parallel()

	t.Run("exact 2x2", func(t *testing.T) {
		t.Parallel()
		inv, err := matrix.Inverse(MustRows(t, row("4", "7"), row("2", "6")))
		require.NoError(t, err)
		requireEqualDense(t, MustRows(t, row("0.6", "-0.7"), row("-0.2", "0.4")), inv)
	})

	t.Run("needs row swap", func(t *testing.T) {
		t.Parallel()
		m := MustRows(t, row("0", "1", "0"), row("1", "0", "0"), row("0", "0", "2"))
		inv, err := matrix.Inverse(m)
		require.NoError(t, err)
		requireEqualDense(t, MustRows(t, row("0", "1", "0"), row("1", "0", "0"), row("0", "0", "0.5")), inv)
	})

	t.Run("product is identity", func(t *testing.T) {
		t.Parallel()
		m := MustRows(t, row("2", "1", "1"), row("1", "3", "2"), row("1", "0", "0"))
		inv, err := matrix.Inverse(m)
		require.NoError(t, err)
		prod, err := matrix.Mul(m, inv)
		require.NoError(t, err)
		I, err := matrix.Identity(3)
		require.NoError(t, err)
		assert.True(t, I.NearlyEqual(prod), "got\n%s", prod)
	})

	t.Run("thirds", func(t *testing.T) {
		t.Parallel()
		m := MustRows(t, row("3", "0"), row("0", "9"))
		inv, err := matrix.Inverse(m)
		require.NoError(t, err)
		assert.Equal(t, "0.333333333333333333333333333333", MustAt(t, inv, 0, 0).String())
		assert.Equal(t, "0.111111111111111111111111111111", MustAt(t, inv, 1, 1).String())
	})

	t.Run("singular", func(t *testing.T) {
		t.Parallel()
		_, err := matrix.Inverse(MustRows(t, row("1", "2"), row("2", "4")))
		assert.ErrorIs(t, err, matrix.ErrSingular)
	})

	t.Run("non square", func(t *testing.T) {
		t.Parallel()
		_, err := matrix.Inverse(MustRows(t, row("1", "2")))
		assert.ErrorIs(t, err, matrix.ErrNonSquare)
	})
}
