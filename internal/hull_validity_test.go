package internal

// This contains no actual tests. It is just a helper for testing hull
// validity.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a hull is valid for a point set. The rules are:
// 1. Every hull vertex is one of the input points.
// 2. The hull is strictly convex and counterclockwise (no collinear vertices).
// 3. The hull starts at the anchor point.
// 4. Every input point is inside the hull or on its boundary.
func AssertValidHull(t *testing.T, points []Point, hull Polygon) {
	t.Helper()
	require.NotEmpty(t, hull.Points, "hull of a non-empty set must not be empty")

	inputSet := make(map[Point]struct{}, len(points))
	for _, p := range points {
		inputSet[p] = struct{}{}
	}
	for _, v := range hull.Points {
		_, ok := inputSet[v]
		require.True(t, ok, "hull vertex %s is not an input point", v)
	}

	if len(hull.Points) >= 3 {
		convexity := AnalyzeConvexity(hull)
		require.True(t, convexity.Convex, "hull is not convex and counterclockwise: %s", hull)
		assert.Zero(t, convexity.CollinearCount, "hull has collinear vertices: %s", hull)
	}

	for _, p := range points {
		assert.False(t, p.Below(hull.Points[0]), "hull does not start at the anchor: %s", hull)
		assert.True(t, hull.ContainsPoint(p), "point %s is outside the hull %s", p, hull)
	}
}
