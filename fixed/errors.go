// SPDX-License-Identifier: MIT
// Package fixed: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the fixed
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation may panic on user-triggered error
// conditions through the error-returning API; panics are reserved for
// programmer errors (invalid option arguments, gated bounds assertions).

package fixed

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "fixed: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("fixed: invalid shape")

	// ErrOutOfRange indicates that an index (row, column or flat offset) is
	// outside valid bounds. Public indexers (At/Set/AtIdx) MUST return this,
	// not panic.
	ErrOutOfRange = errors.New("fixed: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// Add/Sub/ElemMul/ElemDiv with different shapes, Mul with a.Cols != b.Rows,
	// data/vector lengths that do not match the receiver, or a sub-block that
	// does not fit at the requested offset.
	ErrDimensionMismatch = errors.New("fixed: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (Set, CopyIn, SetRow/SetCol).
	ErrNaNInf = errors.New("fixed: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Fixed (receiver or argument) or a
	// nil backend was used.
	ErrNilMatrix = errors.New("fixed: nil matrix")
)
