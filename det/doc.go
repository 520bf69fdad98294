// Package det provides direct evaluation of 2×2, 3×3 and 4×4 determinants.
//
// The det package provides:
//
//   - Det2/Det3/Det4: pure closed-form cofactor expansions over row slices,
//     with no allocation and no error path.
//   - Of: order dispatch (1×1 through 4×4) over a fixed.Fixed.
//   - Generic: an elimination-based (LU) reference determinant for any
//     square order, delegated to gonum.
//
// The closed forms are exact algebraic transcriptions; for orders above 4,
// or when pivoted stability matters, use Generic.
package det
