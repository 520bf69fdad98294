// SPDX-License-Identifier: MIT
// Package fixed: predicates and statistics.
//
// Equality is element-wise and exact by default; every predicate that admits
// numeric noise has an explicit tolerance variant. The receiver's configured
// epsilon (WithEpsilon) backs the convenience forms that take no tol
// argument. Min/max and norm queries delegate to gonum.

package fixed

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Equal reports whether b has the same shape and exactly equal elements.
// NaN entries compare unequal, as in IEEE-754. A nil b is never equal.
// Complexity: O(r*c).
func (m *Fixed) Equal(b *Fixed) bool {
	if b == nil || b.den == nil {
		return false
	}
	if m.rows != b.rows || m.cols != b.cols {
		return false
	}

	return mat.Equal(m.den, b.den)
}

// EqualTol reports whether b has the same shape and all elements equal
// within tol (|m[i,j]-b[i,j]| <= tol).
// Complexity: O(r*c).
func (m *Fixed) EqualTol(b *Fixed, tol float64) bool {
	if b == nil || b.den == nil {
		return false
	}
	if m.rows != b.rows || m.cols != b.cols {
		return false
	}

	return mat.EqualApprox(m.den, b.den, tol)
}

// IsIdentity reports whether the matrix is exactly an identity block:
// ones on the main diagonal and zeros elsewhere.
// Complexity: O(r*c).
func (m *Fixed) IsIdentity() bool {
	return m.isIdentityWithin(0)
}

// IsIdentityTol reports whether the matrix is an identity block within tol.
// Complexity: O(r*c).
func (m *Fixed) IsIdentityTol(tol float64) bool {
	return m.isIdentityWithin(tol)
}

// isIdentityWithin compares every element against the Kronecker delta.
// tol == 0 degenerates to an exact check (NaN entries always fail).
func (m *Fixed) isIdentityWithin(tol float64) bool {
	var i, j int // fixed i→j order
	var want float64
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if !(math.Abs(m.den.At(i, j)-want) <= tol) { // negated form rejects NaN
				return false
			}
		}
	}

	return true
}

// IsZero reports whether every element is exactly zero.
// Complexity: O(r*c).
func (m *Fixed) IsZero() bool {
	return m.isZeroWithin(0)
}

// IsZeroTol reports whether every element is zero within tol.
// Complexity: O(r*c).
func (m *Fixed) IsZeroTol(tol float64) bool {
	return m.isZeroWithin(tol)
}

func (m *Fixed) isZeroWithin(tol float64) bool {
	raw := m.den.RawMatrix()
	for _, v := range raw.Data {
		if !(math.Abs(v) <= tol) { // negated form rejects NaN
			return false
		}
	}

	return true
}

// IsFinite reports whether every element is finite (no NaN, no ±Inf).
// Complexity: O(r*c).
func (m *Fixed) IsFinite() bool {
	raw := m.den.RawMatrix()
	for _, v := range raw.Data {
		if isNonFinite(v) {
			return false
		}
	}

	return true
}

// HasNaN reports whether any element is NaN.
// Complexity: O(r*c).
func (m *Fixed) HasNaN() bool {
	raw := m.den.RawMatrix()
	for _, v := range raw.Data {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}

// MinValue returns the smallest element value. Complexity: O(r*c).
func (m *Fixed) MinValue() float64 { return mat.Min(m.den) }

// MaxValue returns the largest element value. Complexity: O(r*c).
func (m *Fixed) MaxValue() float64 { return mat.Max(m.den) }

// ArgMin returns the flat row-major index (i*cols + j) of the first
// occurrence of the minimum value. Deterministic left-to-right scan.
// Complexity: O(r*c).
func (m *Fixed) ArgMin() int {
	raw := m.den.RawMatrix()
	best := 0
	for k, v := range raw.Data {
		if v < raw.Data[best] {
			best = k
		}
	}

	return best
}

// ArgMax returns the flat row-major index (i*cols + j) of the first
// occurrence of the maximum value. Deterministic left-to-right scan.
// Complexity: O(r*c).
func (m *Fixed) ArgMax() int {
	raw := m.den.RawMatrix()
	best := 0
	for k, v := range raw.Data {
		if v > raw.Data[best] {
			best = k
		}
	}

	return best
}

// OneNorm returns the operator 1-norm: max_j Σ_i |m[i,j]|.
// Complexity: O(r*c).
func (m *Fixed) OneNorm() float64 { return mat.Norm(m.den, 1) }

// InfNorm returns the operator ∞-norm: max_i Σ_j |m[i,j]|.
// Complexity: O(r*c).
func (m *Fixed) InfNorm() float64 { return mat.Norm(m.den, math.Inf(1)) }
