// Lower level access to the geometry used by the pointset package.
//
// Unlike the top level API, these functions panic with a *GeometryError on
// precondition failures (an empty point set, too few points for a pair, a
// zero-length hull edge). Wrap calls with a deferred HandlePanicRecover to turn
// those panics into errors.
package advanced

import "github.com/osuushi/pointset/internal"

type Point = internal.Point
type Polygon = internal.Polygon
type Segment = internal.Segment
type Pair = internal.Pair
type Orientation = internal.Orientation
type ConvexityResult = internal.ConvexityResult
type GeometryError = internal.GeometryError
type Scene = internal.Scene

const (
	Clockwise        = internal.Clockwise
	Collinear        = internal.Collinear
	Counterclockwise = internal.Counterclockwise
)

// Turn test for a -> b -> c.
func Orient(a, b, c Point) Orientation {
	return internal.Orient(a, b, c)
}

func ConvexHull(points []Point) Polygon {
	return internal.ConvexHull(points)
}

// Perpendicular distance from p to the line through a and b.
func DistanceToLine(a, b, p Point) float64 {
	return Segment{Start: a, End: b}.DistanceToLine(p)
}

// The minimum width of a convex polygon, and the edge whose line bounds the
// minimal strip.
func MinimumWidthEdge(hull Polygon) (Segment, float64) {
	return internal.MinimumWidthEdge(hull)
}

func ClosestPair(points []Point) Pair {
	return internal.ClosestPair(points)
}

// Quadratic reference implementation of ClosestPair.
func BruteForceClosestPair(points []Point) Pair {
	return internal.BruteForceClosestPair(points)
}

func AnalyzeConvexity(poly Polygon) ConvexityResult {
	return internal.AnalyzeConvexity(poly)
}

func HandlePanicRecover(r interface{}) error {
	return internal.HandlePanicRecover(r)
}
