// SPDX-License-Identifier: MIT
// Package convex: the Polygon type and its queries.
//
// A Polygon is an ordered ring of vertices. Containment and convexity
// assume counter-clockwise orientation, which is what Hull produces;
// FromVertices accepts any ring but documents the same expectation.

package convex

import (
	"fmt"
	"math"
	"strings"

	"github.com/quasilyte/gmath"
)

// Polygon is an ordered ring of 2D vertices. The zero value is the empty
// polygon. Polygons are value types; Vertices returns a defensive copy.
type Polygon struct {
	verts []gmath.Vec
}

// FromVertices builds a Polygon from a vertex ring, copying the input.
// Vertices are expected in counter-clockwise order for containment and
// area queries to hold their documented signs.
func FromVertices(verts []gmath.Vec) Polygon {
	return Polygon{verts: append([]gmath.Vec(nil), verts...)}
}

// Vertices returns a copy of the vertex ring. Complexity: O(n).
func (p Polygon) Vertices() []gmath.Vec {
	return append([]gmath.Vec(nil), p.verts...)
}

// Len returns the number of vertices. Complexity: O(1).
func (p Polygon) Len() int { return len(p.verts) }

// Contains reports whether pt lies inside or on the boundary of the
// polygon. The ring must be convex and counter-clockwise (Hull output).
//
// Stage 1 (Degenerate): empty → false; single vertex → point coincidence;
// two vertices → segment membership.
// Stage 2 (Execute): pt is inside iff it is not strictly to the right of
// any directed edge, i.e. every cross product is >= -Epsilon.
//
// Complexity: O(n).
func (p Polygon) Contains(pt gmath.Vec) bool {
	n := len(p.verts)
	switch n {
	case 0:
		return false
	case 1:
		return samePoint(p.verts[0], pt)
	case 2:
		return onSegment(p.verts[0], p.verts[1], pt)
	}

	for i := 0; i < n; i++ {
		a := p.verts[i]
		b := p.verts[(i+1)%n]
		if cross(a, b, pt) < -Epsilon {
			// Point is strictly to the right of edge a→b: outside.
			return false
		}
	}

	return true
}

// Area returns the signed area of the ring via the shoelace formula:
// positive for counter-clockwise rings, negative for clockwise ones,
// zero for degenerate rings.
// Complexity: O(n).
func (p Polygon) Area() float64 {
	n := len(p.verts)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		a := p.verts[i]
		b := p.verts[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}

	return sum / 2
}

// IsConvex reports whether the ring is convex: all non-collinear turns
// share one direction. Rings with fewer than three vertices are not
// polygons and report false.
// Complexity: O(n).
func (p Polygon) IsConvex() bool {
	n := len(p.verts)
	if n < 3 {
		return false
	}

	var sign int
	for i := 0; i < n; i++ {
		c := cross(p.verts[i], p.verts[(i+1)%n], p.verts[(i+2)%n])
		if math.Abs(c) <= Epsilon {
			continue // collinear edges are allowed
		}
		cur := 1
		if c < 0 {
			cur = -1
		}
		if sign == 0 {
			sign = cur
		} else if cur != sign {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer, rendering the ring as
// "Polygon[(x, y), ...]" with %g-formatted coordinates.
// Complexity: O(n).
func (p Polygon) String() string {
	var b strings.Builder
	b.WriteString("Polygon[")
	for i, v := range p.verts {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%g, %g)", v.X, v.Y)
	}
	b.WriteString("]")

	return b.String()
}

// samePoint reports coincidence of two points within Epsilon per axis.
func samePoint(a, b gmath.Vec) bool {
	return math.Abs(a.X-b.X) <= Epsilon && math.Abs(a.Y-b.Y) <= Epsilon
}

// onSegment reports whether pt lies on the closed segment a—b within
// Epsilon: collinear with the segment and inside its bounding box.
func onSegment(a, b, pt gmath.Vec) bool {
	if math.Abs(cross(a, b, pt)) > Epsilon {
		return false
	}
	// Collinear: reject points beyond either endpoint.
	if pt.X < math.Min(a.X, b.X)-Epsilon || pt.X > math.Max(a.X, b.X)+Epsilon {
		return false
	}
	if pt.Y < math.Min(a.Y, b.Y)-Epsilon || pt.Y > math.Max(a.Y, b.Y)+Epsilon {
		return false
	}

	return true
}
