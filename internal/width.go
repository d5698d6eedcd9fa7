package internal

import "math"

// Minimum width of a convex polygon: for every edge, find the vertex farthest
// from the edge's supporting line (the caliper extent), and take the smallest
// extent. This is a brute O(n²) scan over the hull, not rotating calipers.
//
// Polygons with fewer than three vertices have no width and return 0.
func MinimumWidth(hull Polygon) float64 {
	_, width := MinimumWidthEdge(hull)
	return width
}

// Same as MinimumWidth, but also returns the edge that attains the minimum. The
// minimal strip is bounded by this edge's line and its parallel through the
// farthest vertex. For degenerate polygons, the edge is the zero segment.
func MinimumWidthEdge(hull Polygon) (Segment, float64) {
	n := len(hull.Points)
	if n < 3 {
		return Segment{}, 0
	}

	var bestEdge Segment
	best := math.Inf(1)
	for i := 0; i < n; i++ {
		edge := hull.Edge(i)
		if edge.IsDegenerate() {
			fatalf(ErrDegenerateEdge, "hull edge %d at %s", i, edge.Start)
		}

		var extent float64
		for j, p := range hull.Points {
			if j == i || j == CircularIndex(i+1, n) {
				continue
			}
			extent = math.Max(extent, edge.DistanceToLine(p))
		}

		if extent < best {
			best = extent
			bestEdge = edge
		}
	}
	return bestEdge, best
}
