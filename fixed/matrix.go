// SPDX-License-Identifier: MIT
// Package fixed: the Fixed type, constructors and element access.
//
// Fixed is a row-major dense matrix whose shape is decided once, at
// construction, and never changes afterwards. Storage and the heavy
// arithmetic kernels are owned by an embedded gonum *mat.Dense; Fixed is
// composition over that engine, never inheritance, so callers depend only
// on this package's contract.
//
// Invariants (enforced by construction, relied upon everywhere):
//   - element count == rows*cols,
//   - the backend is a full (unsliced) *mat.Dense, so its raw data block is
//     contiguous row-major with stride == cols.

package fixed

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew       = "New"
	opFromData  = "FromData"
	opFromDense = "FromDense"
	opAt        = "At"
	opSet       = "Set"
	opAtIdx     = "AtIdx"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opElemMul   = "ElemMul"
	opElemDiv   = "ElemDiv"
	opRow       = "Row"
	opCol       = "Col"
	opSetRow    = "SetRow"
	opSetCol    = "SetCol"
	opScaleRow  = "ScaleRow"
	opScaleCol  = "ScaleCol"
	opSetDiag   = "SetDiagonal"
	opCopyIn    = "CopyIn"
	opCopyOut   = "CopyOut"
	opExtract   = "Extract"
	opUpdate    = "Update"
)

// fixedErrorf wraps err with an operation tag, preserving the original error
// via %w. Keeps a stable "Fixed.Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func fixedErrorf(tag string, err error) error {
	return fmt.Errorf("Fixed.%s: %w", tag, err)
}

// Fixed is a dense matrix of float64 values with a frozen shape.
// rows and cols are set at construction; den owns the row-major storage.
type Fixed struct {
	rows, cols int        // frozen dimensions
	den        *mat.Dense // owned backend; full (unsliced), contiguous
	opts       Options    // numeric policy (epsilon, NaN/Inf validation)
}

// New creates a rows×cols Fixed initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): resolve options, allocate the backend.
// Stage 3 (Finalize): return the new Fixed or ErrBadShape.
// Complexity: O(r*c) time and memory.
func New(rows, cols int, opts ...Option) (*Fixed, error) {
	// Validate dimensions before touching the allocator.
	if err := validateShape(rows, cols); err != nil {
		return nil, fixedErrorf(opNew, err)
	}

	// Allocate a zeroed backend and attach the resolved policy.
	return &Fixed{
		rows: rows,
		cols: cols,
		den:  mat.NewDense(rows, cols, nil),
		opts: gatherOptions(opts...),
	}, nil
}

// FromData creates a rows×cols Fixed and copies data into it row-wise.
// The input slice is copied, never aliased; its length must equal rows*cols.
// FromData is the reshape inverse of FlattenRowMajor.
// Errors: ErrBadShape, ErrDimensionMismatch, ErrNaNInf (under validation).
// Complexity: O(r*c).
func FromData(rows, cols int, data []float64, opts ...Option) (*Fixed, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, fixedErrorf(opFromData, err)
	}
	if err := validateVecLen(data, rows*cols); err != nil {
		return nil, fixedErrorf(opFromData, err)
	}
	o := gatherOptions(opts...)
	if err := o.validateValues(data); err != nil {
		return nil, fixedErrorf(opFromData, err)
	}

	// Copy into a fresh backing slice; mat.NewDense takes ownership of it.
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Fixed{rows: rows, cols: cols, den: mat.NewDense(rows, cols, buf), opts: o}, nil
}

// Filled creates a rows×cols Fixed with every element set to v.
// Complexity: O(r*c).
func Filled(rows, cols int, v float64, opts ...Option) (*Fixed, error) {
	m, err := New(rows, cols, opts...)
	if err != nil {
		return nil, err // already wrapped by New
	}

	return m.Fill(v), nil
}

// Identity creates the n×n identity matrix I_n.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity(n int, opts ...Option) (*Fixed, error) {
	m, err := New(n, n, opts...)
	if err != nil {
		return nil, err
	}

	return m.FillDiagonal(1), nil
}

// FromDense creates a Fixed by deep-copying an existing gonum matrix.
// The source is never aliased. Errors: ErrNilMatrix.
// Complexity: O(r*c).
func FromDense(d *mat.Dense, opts ...Option) (*Fixed, error) {
	if d == nil {
		return nil, fixedErrorf(opFromDense, ErrNilMatrix)
	}
	r, c := d.Dims()

	return &Fixed{rows: r, cols: c, den: mat.DenseCopyOf(d), opts: gatherOptions(opts...)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Fixed) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Fixed) Cols() int { return m.cols }

// Size returns the total number of stored elements (rows*cols). Complexity: O(1).
func (m *Fixed) Size() int { return m.rows * m.cols }

// IsSquare reports whether rows == cols. Complexity: O(1).
func (m *Fixed) IsSquare() bool { return m.rows == m.cols }

// At retrieves the element at (i, j).
// Stage 1 (Validate): bounds check via validateIndex.
// Stage 2 (Execute): read from the backend.
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Fixed) At(i, j int) (float64, error) {
	if err := m.validateIndex(i, j); err != nil {
		return 0, fixedErrorf(opAt, err)
	}

	return m.den.At(i, j), nil
}

// Set assigns value v at (i, j).
// Stage 1 (Validate): bounds check, then finite-value policy.
// Stage 2 (Execute): write into the backend.
// Errors: ErrOutOfRange, ErrNaNInf. Complexity: O(1).
func (m *Fixed) Set(i, j int, v float64) error {
	if err := m.validateIndex(i, j); err != nil {
		return fixedErrorf(opSet, err)
	}
	if err := m.opts.validateValue(v); err != nil {
		return fixedErrorf(opSet, err)
	}
	m.den.Set(i, j, v)

	return nil
}

// AtIdx retrieves the element at flat row-major offset k (k == i*cols + j).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Fixed) AtIdx(k int) (float64, error) {
	if k < 0 || k >= m.rows*m.cols {
		return 0, fixedErrorf(opAtIdx, ErrOutOfRange)
	}

	return m.den.At(k/m.cols, k%m.cols), nil
}

// Get returns the element at (i, j) without the error path.
// Bounds assertions are compiled in only under the `matcheck` build tag;
// without it, access delegates directly to the backend, which still performs
// its own cheap range panic (no access is ever unsafe).
// Complexity: O(1).
func (m *Fixed) Get(i, j int) float64 {
	if boundsCheck {
		m.assertIndex("Get", i, j)
	}

	return m.den.At(i, j)
}

// Put assigns v at (i, j) without the error path. The finite-value policy is
// NOT applied here; Put is the raw fast path mirroring Get.
// Complexity: O(1).
func (m *Fixed) Put(i, j int, v float64) {
	if boundsCheck {
		m.assertIndex("Put", i, j)
	}
	m.den.Set(i, j, v)
}

// assertIndex panics with a package-prefixed message on invalid indices.
// Reached only when the `matcheck` build tag compiles boundsCheck to true.
func (m *Fixed) assertIndex(op string, i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("fixed: %s(%d,%d): index out of range for %d×%d matrix", op, i, j, m.rows, m.cols))
	}
}

// Dense exposes the owned backend for interoperation with gonum routines.
// The returned value shares storage with m: treat it as a transient view and
// do not retain it past the receiver's lifetime.
func (m *Fixed) Dense() *mat.Dense { return m.den }

// RawRow returns row i of the backing storage as a transient view.
// The slice aliases the matrix; writes through it are visible in m and it
// must not outlive the receiver. Panics if i is out of range (backend check).
// Complexity: O(1).
func (m *Fixed) RawRow(i int) []float64 {
	return m.den.RawRowView(i)
}

// Clone returns a deep copy of m with the same shape and numeric policy.
// Complexity: O(r*c) time and memory.
func (m *Fixed) Clone() *Fixed {
	return &Fixed{rows: m.rows, cols: m.cols, den: mat.DenseCopyOf(m.den), opts: m.opts}
}

// Epsilon returns the receiver's configured tolerance. Complexity: O(1).
func (m *Fixed) Epsilon() float64 { return m.opts.eps }

// String implements fmt.Stringer for easy debugging.
// One bracketed line per row, comma-separated %g values.
// Complexity: O(r*c) for string construction.
func (m *Fixed) String() string {
	var s string
	var i, j int
	for i = 0; i < m.rows; i++ { // iterate over rows
		s += "["                     // open row
		for j = 0; j < m.cols; j++ { // iterate over columns
			s += fmt.Sprintf("%g", m.den.At(i, j))
			if j < m.cols-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}

// emptyLike allocates a fresh zeroed r×c Fixed inheriting m's policy.
// Internal helper for kernels; assumes r, c already validated.
func (m *Fixed) emptyLike(r, c int) *Fixed {
	return &Fixed{rows: r, cols: c, den: mat.NewDense(r, c, nil), opts: m.opts}
}
