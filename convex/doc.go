// Package convex provides 2D convex hulls and convex-polygon queries over
// gmath.Vec points.
//
// The convex package provides:
//
//   - Hull: Andrew's monotone-chain convex hull, returning a Polygon with
//     vertices in counter-clockwise order. Duplicate input points and
//     interior points are absorbed; fewer than three distinct points yield
//     a degenerate Polygon.
//   - Polygon: boundary-inclusive point containment (for convex CCW rings),
//     signed area, a convexity check, and a fmt.Stringer rendering.
//
// All operations are pure, synchronous computations over in-memory slices;
// input slices are never mutated.
package convex
