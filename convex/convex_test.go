// Package convex_test validates hull construction and polygon queries,
// including the degenerate rings Hull hands back for tiny inputs.
package convex_test

import (
	"testing"

	"github.com/quasilyte/gmath"

	"github.com/nvallin/fixmat/convex"
	"github.com/stretchr/testify/require"
)

// TestHullContainsInputs builds a hull from a point cloud with a duplicate
// and interior points, then verifies every input point lies inside it.
func TestHullContainsInputs(t *testing.T) {
	points := []gmath.Vec{
		{X: 0, Y: 0},
		{X: 0, Y: 0}, // duplicate of the first point
		{X: 5, Y: 0},
		{X: 3, Y: 1}, // interior
		{X: 2, Y: 1}, // interior
		{X: 0, Y: 5},
	}

	hull := convex.Hull(points)
	require.True(t, hull.IsConvex())

	for _, p := range points {
		require.True(t, hull.Contains(p), "point (%g, %g) must be inside the hull", p.X, p.Y)
	}
}

// TestHullVertices verifies the exact hull ring: counter-clockwise, starting
// from the lexicographically smallest vertex, interior points dropped.
func TestHullVertices(t *testing.T) {
	points := []gmath.Vec{
		{X: 0, Y: 0},
		{X: 0, Y: 0},
		{X: 5, Y: 0},
		{X: 3, Y: 1},
		{X: 2, Y: 1},
		{X: 0, Y: 5},
	}

	hull := convex.Hull(points)
	require.Equal(t, 3, hull.Len())
	require.Equal(t, []gmath.Vec{
		{X: 0, Y: 0},
		{X: 5, Y: 0},
		{X: 0, Y: 5},
	}, hull.Vertices())
}

// TestHullSquare verifies a 4-corner cloud with center and edge-midpoint
// noise reduces to the four corners.
func TestHullSquare(t *testing.T) {
	points := []gmath.Vec{
		{X: 1, Y: 1},
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 2},
		{X: 0, Y: 2},
		{X: 1, Y: 0}, // collinear edge midpoint, dropped
	}

	hull := convex.Hull(points)
	require.Equal(t, []gmath.Vec{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 2},
		{X: 0, Y: 2},
	}, hull.Vertices())
	require.InDelta(t, 4.0, hull.Area(), 1e-12) // CCW ring: positive area
}

// TestHullInputUntouched ensures Hull never reorders the caller's slice.
func TestHullInputUntouched(t *testing.T) {
	points := []gmath.Vec{
		{X: 5, Y: 0},
		{X: 0, Y: 5},
		{X: 0, Y: 0},
	}
	original := append([]gmath.Vec(nil), points...)

	_ = convex.Hull(points)
	require.Equal(t, original, points)
}

// TestHullDegenerate covers the empty, single-point, duplicate-only and
// two-point inputs.
func TestHullDegenerate(t *testing.T) {
	empty := convex.Hull(nil)
	require.Equal(t, 0, empty.Len())
	require.False(t, empty.Contains(gmath.Vec{}))

	single := convex.Hull([]gmath.Vec{{X: 1, Y: 2}, {X: 1, Y: 2}}) // duplicates collapse
	require.Equal(t, 1, single.Len())
	require.True(t, single.Contains(gmath.Vec{X: 1, Y: 2}))
	require.False(t, single.Contains(gmath.Vec{X: 1, Y: 3}))

	segment := convex.Hull([]gmath.Vec{{X: 0, Y: 0}, {X: 4, Y: 0}})
	require.Equal(t, 2, segment.Len())
	require.True(t, segment.Contains(gmath.Vec{X: 2, Y: 0}))  // on the segment
	require.False(t, segment.Contains(gmath.Vec{X: 5, Y: 0})) // beyond the endpoint
	require.False(t, segment.Contains(gmath.Vec{X: 2, Y: 1})) // off the line
}

// TestHullCollinearCloud verifies that fully collinear points reduce to the
// extreme segment.
func TestHullCollinearCloud(t *testing.T) {
	points := []gmath.Vec{
		{X: 1, Y: 1},
		{X: 3, Y: 3},
		{X: 2, Y: 2},
		{X: 0, Y: 0},
	}

	hull := convex.Hull(points)
	require.Equal(t, 2, hull.Len())
	require.Equal(t, []gmath.Vec{{X: 0, Y: 0}, {X: 3, Y: 3}}, hull.Vertices())
}

// TestContainsBoundaryAndOutside probes interior, edge, vertex and exterior
// points of a triangle.
func TestContainsBoundaryAndOutside(t *testing.T) {
	hull := convex.Hull([]gmath.Vec{
		{X: 0, Y: 0},
		{X: 5, Y: 0},
		{X: 0, Y: 5},
	})

	require.True(t, hull.Contains(gmath.Vec{X: 1, Y: 1}))     // interior
	require.True(t, hull.Contains(gmath.Vec{X: 2.5, Y: 2.5})) // on the hypotenuse
	require.True(t, hull.Contains(gmath.Vec{X: 5, Y: 0}))     // vertex
	require.False(t, hull.Contains(gmath.Vec{X: 3, Y: 3}))    // outside
	require.False(t, hull.Contains(gmath.Vec{X: -1, Y: 0}))   // outside
}

// TestArea verifies the shoelace sign convention.
func TestArea(t *testing.T) {
	ccw := convex.FromVertices([]gmath.Vec{
		{X: 0, Y: 0},
		{X: 5, Y: 0},
		{X: 0, Y: 5},
	})
	require.InDelta(t, 12.5, ccw.Area(), 1e-12)

	cw := convex.FromVertices([]gmath.Vec{
		{X: 0, Y: 0},
		{X: 0, Y: 5},
		{X: 5, Y: 0},
	})
	require.InDelta(t, -12.5, cw.Area(), 1e-12) // clockwise ring: negative

	require.Equal(t, 0.0, convex.FromVertices(nil).Area())
}

// TestIsConvex verifies convexity detection on convex, concave and
// degenerate rings.
func TestIsConvex(t *testing.T) {
	square := convex.FromVertices([]gmath.Vec{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 2},
		{X: 0, Y: 2},
	})
	require.True(t, square.IsConvex())

	dart := convex.FromVertices([]gmath.Vec{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 1, Y: 1}, // reflex notch
		{X: 0, Y: 4},
	})
	require.False(t, dart.IsConvex())

	segment := convex.FromVertices([]gmath.Vec{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.False(t, segment.IsConvex()) // not a polygon
}

// TestFromVerticesCopies ensures the constructor does not alias its input.
func TestFromVerticesCopies(t *testing.T) {
	verts := []gmath.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	p := convex.FromVertices(verts)

	verts[0] = gmath.Vec{X: 9, Y: 9} // mutate the source
	require.Equal(t, gmath.Vec{X: 0, Y: 0}, p.Vertices()[0])
}

// TestString verifies the rendered ring format.
func TestString(t *testing.T) {
	p := convex.FromVertices([]gmath.Vec{
		{X: 0, Y: 0},
		{X: 5, Y: 0},
		{X: 0, Y: 5},
	})
	require.Equal(t, "Polygon[(0, 0), (5, 0), (0, 5)]", p.String())

	require.Equal(t, "Polygon[]", convex.FromVertices(nil).String())
}
