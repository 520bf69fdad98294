// Package fixmat provides fixed-shape dense matrices, closed-form small
// determinants and planar convex hulls for Go.
//
// 🚀 What is fixmat?
//
//	A small, deterministic numeric toolkit that brings together:
//		• Fixed matrices: a shape-frozen dense matrix built on gonum storage
//		• Small determinants: direct 2×2/3×3/4×4 cofactor expansions
//		• Planar geometry: convex hulls and convex-polygon containment
//
// ✨ Why choose fixmat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – strict validation, sentinel errors, in-code docs
//   - Thin by design – storage and heavy kernels delegate to gonum
//   - Deterministic – fixed loop orders, no hidden randomness
//
// Under the hood, everything is organized under three subpackages:
//
//	fixed/  — the Fixed matrix type: accessors, arithmetic, predicates
//	det/    — direct determinants of orders 1–4 + elimination reference
//	convex/ — 2D convex hulls over gmath.Vec points, convex polygons
//
// Quick example:
//
//	m, _ := fixed.FromData(2, 2, []float64{1, 2, 3, 4})
//	d, _ := det.Of(m)      // -2, closed form
//	r, _ := det.Generic(m) // -2, LU elimination via gonum
//
//	hull := convex.Hull([]gmath.Vec{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 0, Y: 5}})
//	hull.Contains(gmath.Vec{X: 1, Y: 1}) // true
//
// Dive into each subpackage's doc.go for contracts, error semantics and
// numeric policy.
//
//	go get github.com/nvallin/fixmat
package fixmat
