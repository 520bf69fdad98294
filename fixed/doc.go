// Package fixed provides Fixed, a dense matrix whose shape is frozen at
// construction and whose storage and heavy kernels are delegated to gonum.
//
// The fixed package provides:
//
//   - Fixed, a row-major matrix owning a *mat.Dense backend (composition,
//     not inheritance, so the public contract never leaks the engine).
//   - Two element-access tiers: error-returning At/Set (always validated)
//     and Get/Put with assertions compiled in only under the `matcheck`
//     build tag.
//   - The full small-matrix surface: fills, flips, row/column extraction,
//     transpose, flattening, sub-block extract/update, scalar and
//     elementwise arithmetic, standard matrix product, identity/zero/
//     equality predicates (exact and tolerance-based), min/max statistics
//     and operator norms.
//
// Fixed is best where a matrix's dimensions are an invariant of the
// surrounding code: geometry transforms, calibration blocks, small
// kernels. For resizable matrices use gonum's mat package directly.
//
// See det for closed-form determinants over Fixed values of order 1–4.
package fixed
