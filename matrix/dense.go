// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Expose RowView for hot loops (simplex pivots) that must avoid per-cell calls.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); RowView: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxRowView = "RowView"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - allowInf relaxes the numeric policy to accept +Inf ("no path" in distance matrices).
type Dense struct {
	r, c     int       // row and column counts (zero rows allowed only via internal ctors)
	data     []float64 // contiguous row-major storage (len == r*c)
	allowInf bool      // numeric policy: accept +Inf in Set
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions if rows<=0 or cols<=0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom creates an r×c matrix that copies data (row-major, len == r*c).
// Every value must be finite.
//
// Errors:
//   - ErrInvalidDimensions on a non-positive shape.
//   - ErrDimensionMismatch if len(data) != rows*cols.
//   - ErrNaNInf if any value is NaN or ±Inf.
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = m.Fill(data); err != nil {
		return nil, err
	}

	return m, nil
}

// NewDistance creates an n×n distance matrix: zero diagonal, +Inf elsewhere.
// The returned matrix accepts +Inf in Set, which FloydWarshall relies on.
func NewDistance(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	m.allowInf = true
	inf := math.Inf(1)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				m.data[i*n+j] = inf
			}
		}
	}

	return m, nil
}

// newDenseZeroOK is an internal constructor that allows rows==0.
// Used by VStack when both operands are empty blocks.
func newDenseZeroOK(rows, cols int) (*Dense, error) {
	if rows < 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf validates (row,col) and returns the flat offset.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns m[row,col] or ErrOutOfRange wrapped with the coordinates.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set assigns m[row,col] = v under the numeric policy.
//
// Errors:
//   - ErrOutOfRange for invalid coordinates.
//   - ErrNaNInf for NaN, -Inf, or +Inf on a matrix that is not a distance matrix.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if !m.admits(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// admits reports whether v passes the numeric policy.
func (m *Dense) admits(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, -1) {
		return false
	}

	return m.allowInf || !math.IsInf(v, 1)
}

// Fill overwrites the whole buffer with data (row-major, len == r*c).
// The matrix is left untouched when an error is returned.
func (m *Dense) Fill(data []float64) error {
	if len(data) != len(m.data) {
		return fmt.Errorf("Dense.Fill: len %d want %d: %w", len(data), len(m.data), ErrDimensionMismatch)
	}
	var k int
	for k = range data {
		if !m.admits(data[k]) {
			return fmt.Errorf("Dense.Fill: offset %d: %w", k, ErrNaNInf)
		}
	}
	copy(m.data, data)

	return nil
}

// RowView returns row i as a slice aliasing the matrix buffer.
// Writes through the slice mutate the matrix and bypass the numeric policy;
// it is meant for hot loops that have already validated their inputs.
func (m *Dense) RowView(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRowView, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// Clone returns a deep copy that keeps the numeric policy.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, allowInf: m.allowInf}
}

// String renders the matrix one bracketed row per line.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
