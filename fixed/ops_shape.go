// SPDX-License-Identifier: MIT
// Package fixed: shape, filling and rearrangement operations.
//
// Two families live here:
//   - chainable mutators that cannot fail (Fill, FillDiagonal, SetIdentity,
//     Flipud, Fliplr, NormalizeRows, NormalizeCols) — they mutate the
//     receiver in place and return it, so callers can write
//     m.SetIdentity().ScaleRow(0, 3);
//   - fallible operations (row/column access, sub-block extract/update,
//     CopyIn/CopyOut) — they validate strictly and return sentinel errors.
//
// Transpose and the flatten variants materialize fresh values and never
// touch the receiver.

package fixed

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Fill sets every element to v and returns the receiver for chaining.
// The finite-value ingestion policy is not applied: Fill is a bulk
// initializer, mirroring the raw fast path of Put.
// Complexity: O(r*c).
func (m *Fixed) Fill(v float64) *Fixed {
	raw := m.den.RawMatrix() // contiguous by construction invariant
	for k := range raw.Data {
		raw.Data[k] = v
	}

	return m
}

// FillDiagonal sets every main-diagonal element to v, leaving the rest
// untouched, and returns the receiver for chaining.
// Complexity: O(min(r,c)).
func (m *Fixed) FillDiagonal(v float64) *Fixed {
	n := min(m.rows, m.cols)
	for i := 0; i < n; i++ {
		m.den.Set(i, i, v)
	}

	return m
}

// SetIdentity rewrites the receiver as an identity block: ones on the main
// diagonal, zeros elsewhere (non-square receivers keep that convention).
// Returns the receiver for chaining.
// Complexity: O(r*c).
func (m *Fixed) SetIdentity() *Fixed {
	return m.Fill(0).FillDiagonal(1)
}

// SetDiagonal assigns v[i] to element (i,i); len(v) must equal min(r,c).
// Errors: ErrNilMatrix (nil v), ErrDimensionMismatch.
// Complexity: O(min(r,c)).
func (m *Fixed) SetDiagonal(v []float64) error {
	n := min(m.rows, m.cols)
	if err := validateVecLen(v, n); err != nil {
		return fixedErrorf(opSetDiag, err)
	}
	for i := 0; i < n; i++ {
		m.den.Set(i, i, v[i])
	}

	return nil
}

// Diagonal returns a copy of the main diagonal (length min(r,c)).
// Complexity: O(min(r,c)).
func (m *Fixed) Diagonal() []float64 {
	n := min(m.rows, m.cols)
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i] = m.den.At(i, i)
	}

	return d
}

// CopyIn laminates the matrix with data, assumed to be a contiguous
// rows*cols row-major block, and applies the finite-value policy.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(r*c).
func (m *Fixed) CopyIn(data []float64) error {
	if err := validateVecLen(data, m.rows*m.cols); err != nil {
		return fixedErrorf(opCopyIn, err)
	}
	if err := m.opts.validateValues(data); err != nil {
		return fixedErrorf(opCopyIn, err)
	}
	copy(m.den.RawMatrix().Data, data)

	return nil
}

// CopyOut fills dst with the matrix content in row-major order.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func (m *Fixed) CopyOut(dst []float64) error {
	if err := validateVecLen(dst, m.rows*m.cols); err != nil {
		return fixedErrorf(opCopyOut, err)
	}
	copy(dst, m.den.RawMatrix().Data)

	return nil
}

// Transpose returns a new cols×rows matrix with rows and columns swapped (mᵀ).
// The receiver is never mutated.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Fixed) Transpose() *Fixed {
	out := m.emptyLike(m.cols, m.rows) // dims flipped
	out.den.Copy(m.den.T())            // materialize the transpose view

	return out
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange. Complexity: O(c).
func (m *Fixed) Row(i int) ([]float64, error) {
	if err := m.validateIndex(i, 0); err != nil {
		return nil, fixedErrorf(opRow, err)
	}

	return mat.Row(nil, i, m.den), nil
}

// Col returns a copy of column j.
// Errors: ErrOutOfRange. Complexity: O(r).
func (m *Fixed) Col(j int) ([]float64, error) {
	if err := m.validateIndex(0, j); err != nil {
		return nil, fixedErrorf(opCol, err)
	}

	return mat.Col(nil, j, m.den), nil
}

// SetRow replaces row i with v (length must equal Cols), applying the
// finite-value policy.
// Errors: ErrOutOfRange, ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(c).
func (m *Fixed) SetRow(i int, v []float64) error {
	if err := m.validateIndex(i, 0); err != nil {
		return fixedErrorf(opSetRow, err)
	}
	if err := validateVecLen(v, m.cols); err != nil {
		return fixedErrorf(opSetRow, err)
	}
	if err := m.opts.validateValues(v); err != nil {
		return fixedErrorf(opSetRow, err)
	}
	m.den.SetRow(i, v)

	return nil
}

// SetCol replaces column j with v (length must equal Rows), applying the
// finite-value policy.
// Errors: ErrOutOfRange, ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(r).
func (m *Fixed) SetCol(j int, v []float64) error {
	if err := m.validateIndex(0, j); err != nil {
		return fixedErrorf(opSetCol, err)
	}
	if err := validateVecLen(v, m.rows); err != nil {
		return fixedErrorf(opSetCol, err)
	}
	if err := m.opts.validateValues(v); err != nil {
		return fixedErrorf(opSetCol, err)
	}
	m.den.SetCol(j, v)

	return nil
}

// ScaleRow multiplies every element of row i by f, in place.
// Errors: ErrOutOfRange. Complexity: O(c).
func (m *Fixed) ScaleRow(i int, f float64) error {
	if err := m.validateIndex(i, 0); err != nil {
		return fixedErrorf(opScaleRow, err)
	}
	row := m.den.RawRowView(i) // transient view; contiguous by invariant
	for j := range row {
		row[j] *= f
	}

	return nil
}

// ScaleCol multiplies every element of column j by f, in place.
// Errors: ErrOutOfRange. Complexity: O(r).
func (m *Fixed) ScaleCol(j int, f float64) error {
	if err := m.validateIndex(0, j); err != nil {
		return fixedErrorf(opScaleCol, err)
	}
	for i := 0; i < m.rows; i++ {
		m.den.Set(i, j, m.den.At(i, j)*f)
	}

	return nil
}

// NormalizeRows scales each row to unit Euclidean length, in place, and
// returns the receiver for chaining. Zero rows are not modified.
// Determinism: fixed i order; norm via gonum floats.
// Complexity: O(r*c).
func (m *Fixed) NormalizeRows() *Fixed {
	for i := 0; i < m.rows; i++ {
		row := m.den.RawRowView(i)
		n := floats.Norm(row, 2)
		if n == 0 {
			continue // zero row stays zero
		}
		for j := range row {
			row[j] /= n
		}
	}

	return m
}

// NormalizeCols scales each column to unit Euclidean length, in place, and
// returns the receiver for chaining. Zero columns are not modified.
// Complexity: O(r*c).
func (m *Fixed) NormalizeCols() *Fixed {
	buf := make([]float64, m.rows) // column workspace, reused per column
	for j := 0; j < m.cols; j++ {
		mat.Col(buf, j, m.den)
		n := floats.Norm(buf, 2)
		if n == 0 {
			continue // zero column stays zero
		}
		for i := 0; i < m.rows; i++ {
			m.den.Set(i, j, buf[i]/n)
		}
	}

	return m
}

// Flipud reverses the order of rows, in place, and returns the receiver.
// Complexity: O(r*c).
func (m *Fixed) Flipud() *Fixed {
	tmp := make([]float64, m.cols) // row swap buffer
	for i, k := 0, m.rows-1; i < k; i, k = i+1, k-1 {
		top, bot := m.den.RawRowView(i), m.den.RawRowView(k)
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}

	return m
}

// Fliplr reverses the order of columns, in place, and returns the receiver.
// Complexity: O(r*c).
func (m *Fixed) Fliplr() *Fixed {
	for i := 0; i < m.rows; i++ {
		row := m.den.RawRowView(i)
		for j, k := 0, len(row)-1; j < k; j, k = j+1, k-1 {
			row[j], row[k] = row[k], row[j]
		}
	}

	return m
}

// FlattenRowMajor returns all elements as a fresh slice in row-major
// (C-style) order. Reshaping with FromData(rows, cols, ...) reconstructs
// the original matrix exactly.
// Complexity: O(r*c).
func (m *Fixed) FlattenRowMajor() []float64 {
	raw := m.den.RawMatrix()
	out := make([]float64, len(raw.Data))
	copy(out, raw.Data)

	return out
}

// FlattenColMajor returns all elements as a fresh slice in column-major
// (Fortran-style) order.
// Complexity: O(r*c).
func (m *Fixed) FlattenColMajor() []float64 {
	out := make([]float64, m.rows*m.cols)
	var i, j int
	for j = 0; j < m.cols; j++ { // columns vary slowest
		for i = 0; i < m.rows; i++ {
			out[j*m.rows+i] = m.den.At(i, j)
		}
	}

	return out
}

// Extract returns a copy of the r×c sub-block anchored at (top,left),
// i.e. elements [top, top+r) × [left, left+c).
// Errors: ErrOutOfRange, ErrBadShape, ErrDimensionMismatch.
// Complexity: O(r*c).
func (m *Fixed) Extract(top, left, r, c int) (*Fixed, error) {
	if err := m.validateBlock(top, left, r, c); err != nil {
		return nil, fixedErrorf(opExtract, err)
	}
	out := m.emptyLike(r, c)
	out.den.Copy(m.den.Slice(top, top+r, left, left+c))

	return out, nil
}

// Update overwrites the sub-block anchored at (top,left) with the contents
// of sub. The block [top, top+sub.Rows) × [left, left+sub.Cols) must fit
// inside the receiver.
// Errors: ErrNilMatrix, ErrOutOfRange, ErrDimensionMismatch.
// Complexity: O(sub.Rows*sub.Cols).
func (m *Fixed) Update(sub *Fixed, top, left int) error {
	if err := validateNotNil(sub); err != nil {
		return fixedErrorf(opUpdate, err)
	}
	if err := m.validateBlock(top, left, sub.rows, sub.cols); err != nil {
		return fixedErrorf(opUpdate, err)
	}
	var i, j int // fixed i→j order
	for i = 0; i < sub.rows; i++ {
		for j = 0; j < sub.cols; j++ {
			m.den.Set(top+i, left+j, sub.den.At(i, j))
		}
	}

	return nil
}
