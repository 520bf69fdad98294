// SPDX-License-Identifier: MIT
// Package det: closed-form determinant kernels and dispatch.
//
// Det2/Det3/Det4 operate on row slices; the caller guarantees each row holds
// at least as many elements as the order (Of passes transient backing-row
// views of a Fixed, the exact analog of indexing a contiguous row-major
// block). The expansions are deterministic, side-effect free, and exact up
// to the precision of float64 products.

package det

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/nvallin/fixmat/fixed"
)

var (
	// ErrNilMatrix indicates that a nil *fixed.Fixed was passed.
	ErrNilMatrix = errors.New("det: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("det: matrix is not square")

	// ErrUnsupportedOrder marks an order outside 1..4 passed to Of; use
	// Generic for larger square matrices.
	ErrUnsupportedOrder = errors.New("det: order not in 1..4")
)

// Det2 returns the determinant of the 2×2 matrix with rows row0, row1.
// Complexity: O(1).
func Det2(row0, row1 []float64) float64 {
	return row0[0]*row1[1] - row0[1]*row1[0]
}

// Det3 returns the determinant of the 3×3 matrix with the given rows,
// expanded as the signed sum over column permutations.
// Complexity: O(1).
func Det3(row0, row1, row2 []float64) float64 {
	return 0 +
		row0[0]*row1[1]*row2[2] -
		row0[0]*row2[1]*row1[2] -
		row1[0]*row0[1]*row2[2] +
		row1[0]*row2[1]*row0[2] +
		row2[0]*row0[1]*row1[2] -
		row2[0]*row1[1]*row0[2]
}

// Det4 returns the determinant of the 4×4 matrix with the given rows,
// expanded as the signed sum over the 24 column permutations.
// Complexity: O(1).
func Det4(row0, row1, row2, row3 []float64) float64 {
	return 0 +
		row0[0]*row1[1]*row2[2]*row3[3] -
		row0[0]*row1[1]*row3[2]*row2[3] -
		row0[0]*row2[1]*row1[2]*row3[3] +
		row0[0]*row2[1]*row3[2]*row1[3] +
		row0[0]*row3[1]*row1[2]*row2[3] -
		row0[0]*row3[1]*row2[2]*row1[3] -
		row1[0]*row0[1]*row2[2]*row3[3] +
		row1[0]*row0[1]*row3[2]*row2[3] +
		row1[0]*row2[1]*row0[2]*row3[3] -
		row1[0]*row2[1]*row3[2]*row0[3] -
		row1[0]*row3[1]*row0[2]*row2[3] +
		row1[0]*row3[1]*row2[2]*row0[3] +
		row2[0]*row0[1]*row1[2]*row3[3] -
		row2[0]*row0[1]*row3[2]*row1[3] -
		row2[0]*row1[1]*row0[2]*row3[3] +
		row2[0]*row1[1]*row3[2]*row0[3] +
		row2[0]*row3[1]*row0[2]*row1[3] -
		row2[0]*row3[1]*row1[2]*row0[3] -
		row3[0]*row0[1]*row1[2]*row2[3] +
		row3[0]*row0[1]*row2[2]*row1[3] +
		row3[0]*row1[1]*row0[2]*row2[3] -
		row3[0]*row1[1]*row2[2]*row0[3] -
		row3[0]*row2[1]*row0[2]*row1[3] +
		row3[0]*row2[1]*row1[2]*row0[3]
}

// Of returns the determinant of a small square matrix by closed form.
// Stage 1 (Validate): m non-nil, square, order within 1..4.
// Stage 2 (Execute): dispatch to the matching expansion over backing rows.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrUnsupportedOrder.
// Complexity: O(1).
func Of(m *fixed.Fixed) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if !m.IsSquare() {
		return 0, ErrNonSquare
	}

	switch m.Rows() {
	case 1:
		return m.Get(0, 0), nil
	case 2:
		return Det2(m.RawRow(0), m.RawRow(1)), nil
	case 3:
		return Det3(m.RawRow(0), m.RawRow(1), m.RawRow(2)), nil
	case 4:
		return Det4(m.RawRow(0), m.RawRow(1), m.RawRow(2), m.RawRow(3)), nil
	default:
		return 0, ErrUnsupportedOrder
	}
}

// Generic returns the determinant of any square matrix via gonum's
// LU-based elimination. It is the reference the closed forms are tested
// against; singular inputs yield 0 up to elimination round-off.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^3).
func Generic(m *fixed.Fixed) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if !m.IsSquare() {
		return 0, ErrNonSquare
	}

	return mat.Det(m.Dense()), nil
}
