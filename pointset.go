// Convex hull, minimum width, and closest pair for sets of 2D points.
//
// The three computations are independent pipelines over the same input: the
// hull is built with a Graham scan, the minimum width is measured over the
// hull's edges, and the closest pair is found by divide and conquer. None of
// them modify the caller's slice.
package pointset

import "github.com/osuushi/pointset/internal"

type Point = internal.Point
type Polygon = internal.Polygon
type Pair = internal.Pair
type Report = internal.Report
type Width = internal.Width
type Sections = internal.Sections

var AllSections = internal.AllSections

var (
	ErrEmptyPointSet  = internal.ErrEmptyPointSet
	ErrTooFewPoints   = internal.ErrTooFewPoints
	ErrDegenerateEdge = internal.ErrDegenerateEdge
)

// Build the convex hull of the points. The hull winds counterclockwise from
// the lowest (then leftmost) point, and never includes collinear boundary
// points. One or two distinct points give a degenerate hull of just those
// points. An empty set is an error.
func ConvexHull(points []Point) (hull Polygon, err error) {
	defer recoverInto(&err)
	return internal.ConvexHull(points), nil
}

// The narrowest distance between two parallel lines enclosing the hull. Hulls
// with fewer than three vertices have zero width. This scans every edge against
// every vertex, so it is quadratic in the hull size.
func MinimumWidth(hull Polygon) (width float64, err error) {
	defer recoverInto(&err)
	return internal.MinimumWidth(hull), nil
}

// The two points with the smallest Euclidean distance. At least two points are
// required. When several pairs tie, any of them may be returned.
func ClosestPair(points []Point) (pair Pair, err error) {
	defer recoverInto(&err)
	return internal.ClosestPair(points), nil
}

// Run the hull, width and closest pair computations together.
func Analyze(points []Point) (report Report, err error) {
	return AnalyzeSections(points, AllSections)
}

// Like Analyze, but only computes what is asked for.
func AnalyzeSections(points []Point, sections Sections) (report Report, err error) {
	defer recoverInto(&err)
	return internal.Analyze(points, sections), nil
}

func recoverInto(err *error) {
	if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
		*err = recoveredErr
	}
}
