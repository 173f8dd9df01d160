// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with deterministic loop order.
//   - Used on link matrices to find the shortest cycle through any vertex.
//
// Contract:
//   - Square matrix; +Inf means “no path”; the diagonal is the self distance.

package matrix

import (
	"fmt"
	"math"
)

const opFloydWarshall = "FloydWarshall"

// ValidateNotNil returns ErrNilMatrix for a nil interface or nil *Dense.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare returns ErrNilMatrix or ErrNonSquare when m is unusable as n×n.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}

	return nil
}

// ValidateVecLen returns ErrDimensionMismatch unless len(x) == n.
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return fmt.Errorf("vector len %d want %d: %w", len(x), n, ErrDimensionMismatch)
	}

	return nil
}

// floydWarshallInPlace runs APSP closure on a square *Dense in-place.
// Loop order is fixed (k → i → j). Only strict improvements are written.
func floydWarshallInPlace(d *Dense) {
	n := d.r
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	data := d.data
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in-place on d.
//
// Contract:
//   - d must be square (n×n).
//   - +Inf denotes “no edge” off-diagonal. A +Inf diagonal is allowed: after
//     the closure, d[i][i] then holds the length of the shortest cycle through i.
//
// Complexity: Time O(n^3), Extra space O(1).
func FloydWarshall(d *Dense) error {
	if err := ValidateSquare(d); err != nil {
		return fmt.Errorf("%s: %w", opFloydWarshall, err)
	}
	floydWarshallInPlace(d)

	return nil
}
