// SPDX-License-Identifier: MIT
// Package: fixed
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep methods minimal by delegating shape/nil/index checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package fixed

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateShape ensures rows and cols are strictly positive.
// Returns ErrBadShape otherwise. Complexity: O(1).
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("validateShape", ErrBadShape)
	}

	return nil
}

// validateNotNil ensures the matrix reference and its backend are non-nil.
// Returns ErrNilMatrix otherwise. Complexity: O(1).
func validateNotNil(m *Fixed) error {
	if m == nil || m.den == nil {
		return validatorErrorf("validateNotNil", ErrNilMatrix)
	}

	return nil
}

// validateIndex ensures 0 <= i < m.rows and 0 <= j < m.cols.
// Assumes m is non-nil (caller must ensure). Complexity: O(1).
func (m *Fixed) validateIndex(i, j int) error {
	// Validate row index.
	if i < 0 || i >= m.rows {
		return validatorErrorf("validateIndex: row", ErrOutOfRange)
	}
	// Validate column index.
	if j < 0 || j >= m.cols {
		return validatorErrorf("validateIndex: col", ErrOutOfRange)
	}

	return nil
}

// validateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure). Complexity: O(1).
func validateSameShape(a, b *Fixed) error {
	if a.rows != b.rows {
		return validatorErrorf("validateSameShape: rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("validateSameShape: cols", ErrDimensionMismatch)
	}

	return nil
}

// validateMulCompatible ensures the inner dimensions agree for a × b.
// Assumes a and b are not nil (caller must ensure). Complexity: O(1).
func validateMulCompatible(a, b *Fixed) error {
	if a.cols != b.rows {
		return validatorErrorf("validateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// validateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func validateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in row/column routines.
	if x == nil {
		return validatorErrorf("validateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	// Check the exact expected length.
	if len(x) != n {
		return validatorErrorf("validateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// validateBlock ensures a r×c block anchored at (top,left) fits inside m.
// Assumes m is non-nil. Complexity: O(1).
func (m *Fixed) validateBlock(top, left, r, c int) error {
	if top < 0 || left < 0 {
		return validatorErrorf("validateBlock: anchor", ErrOutOfRange)
	}
	if r <= 0 || c <= 0 {
		return validatorErrorf("validateBlock: shape", ErrBadShape)
	}
	// The block must end inside the receiver: [top, top+r) × [left, left+c).
	if top+r > m.rows || left+c > m.cols {
		return validatorErrorf("validateBlock: extent", ErrDimensionMismatch)
	}

	return nil
}

// validateValue enforces the finite-value ingestion policy for a single value.
// Returns ErrNaNInf if validation is enabled and v is NaN/±Inf. Complexity: O(1).
func (o Options) validateValue(v float64) error {
	if o.validateNaNInf && isNonFinite(v) {
		return validatorErrorf("validateValue", ErrNaNInf)
	}

	return nil
}

// validateValues enforces the finite-value ingestion policy for a slice.
// Fixed left-to-right scan; first violation wins. Complexity: O(n).
func (o Options) validateValues(vs []float64) error {
	if !o.validateNaNInf {
		return nil // policy disabled: nothing to check
	}
	for _, v := range vs {
		if isNonFinite(v) {
			return validatorErrorf("validateValues", ErrNaNInf)
		}
	}

	return nil
}
