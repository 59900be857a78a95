// SPDX-License-Identifier: MIT
// Package matrix: Dense, the concrete row-major decimal matrix.
//
// Purpose:
//   - Provide a flat, cache-friendly row-major container of scalar.Scalar values.
//   - Offer bounds-checked accessors (At/Set) that return sentinels instead of panicking.
//
// Determinism:
//   - All traversals use fixed i→j order.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linsys/scalar"
)

// Formatting tokens for String.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of decimal values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int             // number of rows and columns
	data []scalar.Scalar // flat backing storage, length == r*c; zero value reads as 0
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]scalar.Scalar, rows*cols)}, nil
}

// FromRows builds a Dense from row-wise numeric literals, e.g.
//
//	FromRows([][]string{{"1", "2"}, {"3", "4"}})
//
// Errors:
//   - ErrBadShape for zero rows, empty or ragged rows.
//   - scalar.ErrInvalidLiteral for unparsable entries.
func FromRows(rows [][]string) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		if len(rows[i]) != m.c {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(rows[i]), m.c, ErrBadShape)
		}
		for j = 0; j < m.c; j++ {
			if m.data[i*m.c+j], err = scalar.Parse(rows[i][j]); err != nil {
				return nil, fmt.Errorf("FromRows(%d,%d): %w", i, j, err)
			}
		}
	}

	return m, nil
}

// MustFromRows is like FromRows but panics on error.
func MustFromRows(rows [][]string) *Dense {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = scalar.One()
	}

	return I, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (scalar.Scalar, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return scalar.Scalar{}, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v scalar.Scalar) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]scalar.Scalar, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]scalar.Scalar, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy. Scalars are immutable, so copying the slice suffices.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]scalar.Scalar, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports exact element-wise equality and identical shape.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for idx := range m.data {
		if !m.data[idx].Equal(o.data[idx]) {
			return false
		}
	}

	return true
}

// NearlyEqual reports element-wise equality within the near-zero tolerance.
func (m *Dense) NearlyEqual(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for idx := range m.data {
		if !scalar.NearlyEqual(m.data[idx], o.data[idx]) {
			return false
		}
	}

	return true
}

// String renders rows as "[a, b]\n" lines for diagnostics.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(m.data[base+j].String())
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
