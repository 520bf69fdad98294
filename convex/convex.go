// SPDX-License-Identifier: MIT
// Package convex: monotone-chain hull construction.

package convex

import (
	"sort"

	"github.com/quasilyte/gmath"
)

// Epsilon is the tolerance applied to cross-product comparisons in
// containment and convexity queries. Magnitudes below it are treated as
// zero (collinear).
const Epsilon = 1e-9

// cross returns the z-component of (a-o) × (b-o): positive for a left turn
// o→a→b, negative for a right turn, zero for collinear points.
func cross(o, a, b gmath.Vec) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Hull computes the convex hull of a set of 2D points using Andrew's
// monotone-chain algorithm and returns it as a Polygon in counter-clockwise
// order, starting from the lexicographically smallest vertex.
//
// Stage 1 (Prepare): copy the input (never mutated), sort lexicographically
// by X then Y, and drop exact duplicates.
// Stage 2 (Execute): build the lower and upper chains, popping non-left
// turns, then concatenate them without the repeated endpoints.
//
// Behavior highlights:
//   - Collinear boundary points are dropped: every hull vertex is a corner.
//   - Fewer than three distinct points yield a degenerate Polygon holding
//     exactly the distinct points (empty, single point, or segment).
//
// Determinism: stable for a given multiset of points regardless of order.
// Complexity: O(n log n) time, O(n) space.
func Hull(points []gmath.Vec) Polygon {
	// Copy so the caller's slice survives the sort untouched.
	pts := make([]gmath.Vec, len(points))
	copy(pts, points)

	// Sort points lexicographically (by X, then Y).
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X == pts[j].X {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})

	// Drop exact duplicates (adjacent after sorting).
	distinct := pts[:0]
	for i, p := range pts {
		if i == 0 || p != pts[i-1] {
			distinct = append(distinct, p)
		}
	}
	pts = distinct

	// Degenerate inputs: nothing to chain.
	if len(pts) < 3 {
		return Polygon{verts: append([]gmath.Vec(nil), pts...)}
	}

	// Lower chain: left-to-right, popping clockwise or collinear turns.
	var lower []gmath.Vec
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	// Upper chain: right-to-left, same popping rule.
	var upper []gmath.Vec
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Concatenate lower and upper chains, excluding the last point of each
	// (it repeats as the first point of the other chain).
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)

	return Polygon{verts: hull}
}
