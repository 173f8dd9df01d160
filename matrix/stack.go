// SPDX-License-Identifier: MIT

// Package matrix - row stacking for constraint blocks.
//
// Linear constraint systems are assembled block by block: a baseline block,
// a branch block, cut rows appended over time. VStack composes two blocks
// into a fresh matrix (operands untouched); AppendRow grows one block.
// A nil *Dense stands for "no rows".

package matrix

import "fmt"

const (
	opVStack    = "VStack"
	opAppendRow = "AppendRow"
)

// VStack returns [a; b], a new matrix with a's rows followed by b's rows.
// Either operand may be nil (no rows); when both are nil the result is nil.
// Neither operand is mutated.
//
// Errors:
//   - ErrDimensionMismatch if both operands are non-nil and a.Cols() != b.Cols().
//
// Complexity: Time O((ra+rb)*c), Space O((ra+rb)*c).
func VStack(a, b *Dense) (*Dense, error) {
	switch {
	case a == nil && b == nil:
		return nil, nil
	case a == nil:
		return b.Clone().(*Dense), nil
	case b == nil:
		return a.Clone().(*Dense), nil
	}
	if a.c != b.c {
		return nil, fmt.Errorf("%s: cols %d vs %d: %w", opVStack, a.c, b.c, ErrDimensionMismatch)
	}
	out, err := newDenseZeroOK(a.r+b.r, a.c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opVStack, err)
	}
	copy(out.data, a.data)
	copy(out.data[len(a.data):], b.data)
	out.allowInf = a.allowInf && b.allowInf

	return out, nil
}

// AppendRow appends row to m in place and returns m.
// A nil m allocates a 1×len(row) matrix.
//
// Errors:
//   - ErrDimensionMismatch if len(row) != m.Cols().
//   - ErrNaNInf if row violates the numeric policy.
//   - ErrInvalidDimensions if m is nil and row is empty.
func AppendRow(m *Dense, row []float64) (*Dense, error) {
	if m == nil {
		out, err := NewDenseFrom(1, len(row), row)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opAppendRow, err)
		}

		return out, nil
	}
	if len(row) != m.c {
		return m, fmt.Errorf("%s: len %d want %d: %w", opAppendRow, len(row), m.c, ErrDimensionMismatch)
	}
	var k int
	for k = range row {
		if !m.admits(row[k]) {
			return m, fmt.Errorf("%s: col %d: %w", opAppendRow, k, ErrNaNInf)
		}
	}
	m.data = append(m.data, row...)
	m.r++

	return m, nil
}
