// SPDX-License-Identifier: MIT
// Package fixed: arithmetic kernels.
//
// Every kernel returns a freshly allocated Fixed and never mutates its
// operands; exactly one result allocation per call, with the elementwise and
// product loops delegated to gonum. Scalar kernels cannot fail once the
// receiver exists and therefore return the result directly; binary kernels
// perform strict fail-fast shape validation and return clear errors on
// dimension mismatches.

package fixed

// AddScalar returns a new matrix with s added to every element.
// Determinism: gonum's Apply visits elements in fixed row-major order.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Fixed) AddScalar(s float64) *Fixed {
	out := m.emptyLike(m.rows, m.cols)
	out.den.Apply(func(_, _ int, v float64) float64 { return v + s }, m.den)

	return out
}

// SubScalar returns a new matrix with s subtracted from every element.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Fixed) SubScalar(s float64) *Fixed {
	out := m.emptyLike(m.rows, m.cols)
	out.den.Apply(func(_, _ int, v float64) float64 { return v - s }, m.den)

	return out
}

// MulScalar returns a new matrix with every element multiplied by s.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Fixed) MulScalar(s float64) *Fixed {
	out := m.emptyLike(m.rows, m.cols)
	out.den.Scale(s, m.den)

	return out
}

// DivScalar returns a new matrix with every element divided by s.
// Division is performed element-by-element (not via reciprocal scaling) so
// IEEE semantics of v/s are preserved exactly; s == 0 yields ±Inf/NaN per
// IEEE-754 and is not an error.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Fixed) DivScalar(s float64) *Fixed {
	out := m.emptyLike(m.rows, m.cols)
	out.den.Apply(func(_, _ int, v float64) float64 { return v / s }, m.den)

	return out
}

// Neg returns a new matrix with every element negated.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Fixed) Neg() *Fixed {
	return m.MulScalar(-1)
}

// Add computes the element-wise sum C = m + b and returns a fresh result.
// Stage 1 (Validate): b non-nil, shapes identical.
// Stage 2 (Execute): delegate to the backend's elementwise kernel.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Fixed) Add(b *Fixed) (*Fixed, error) {
	if err := validateNotNil(b); err != nil {
		return nil, fixedErrorf(opAdd, err)
	}
	if err := validateSameShape(m, b); err != nil {
		return nil, fixedErrorf(opAdd, err)
	}
	out := m.emptyLike(m.rows, m.cols)
	out.den.Add(m.den, b.den)

	return out, nil
}

// Sub computes the element-wise difference C = m - b and returns a fresh result.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Fixed) Sub(b *Fixed) (*Fixed, error) {
	if err := validateNotNil(b); err != nil {
		return nil, fixedErrorf(opSub, err)
	}
	if err := validateSameShape(m, b); err != nil {
		return nil, fixedErrorf(opSub, err)
	}
	out := m.emptyLike(m.rows, m.cols)
	out.den.Sub(m.den, b.den)

	return out, nil
}

// ElemMul computes the element-wise (Hadamard) product C[i,j] = m[i,j]*b[i,j].
// ElemMul is commutative: m.ElemMul(b) equals b.ElemMul(m) elementwise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Fixed) ElemMul(b *Fixed) (*Fixed, error) {
	if err := validateNotNil(b); err != nil {
		return nil, fixedErrorf(opElemMul, err)
	}
	if err := validateSameShape(m, b); err != nil {
		return nil, fixedErrorf(opElemMul, err)
	}
	out := m.emptyLike(m.rows, m.cols)
	out.den.MulElem(m.den, b.den)

	return out, nil
}

// ElemDiv computes the element-wise quotient C[i,j] = m[i,j]/b[i,j].
// Zero divisors yield ±Inf/NaN per IEEE-754 and are not an error; callers
// needing finite results should gate with IsFinite afterwards.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Fixed) ElemDiv(b *Fixed) (*Fixed, error) {
	if err := validateNotNil(b); err != nil {
		return nil, fixedErrorf(opElemDiv, err)
	}
	if err := validateSameShape(m, b); err != nil {
		return nil, fixedErrorf(opElemDiv, err)
	}
	out := m.emptyLike(m.rows, m.cols)
	out.den.DivElem(m.den, b.den)

	return out, nil
}

// Mul performs standard matrix multiplication C = m × b (no aliasing).
// Stage 1 (Validate): b non-nil, inner dimensions agree (m.Cols == b.Rows).
// Stage 2 (Execute): delegate the triple loop to the backend's BLAS kernel.
//
// Behavior highlights:
//   - The result has shape m.Rows × b.Cols and inherits m's numeric policy.
//   - Operands are never mutated; one allocation for C.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func (m *Fixed) Mul(b *Fixed) (*Fixed, error) {
	if err := validateNotNil(b); err != nil {
		return nil, fixedErrorf(opMul, err)
	}
	if err := validateMulCompatible(m, b); err != nil {
		return nil, fixedErrorf(opMul, err)
	}
	out := m.emptyLike(m.rows, b.cols)
	out.den.Mul(m.den, b.den)

	return out, nil
}
