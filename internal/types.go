package internal

type Point struct {
	X float64
	Y float64
}

// Hull vertices are stored counterclockwise. Polygons produced by ConvexHull
// start at the anchor (lowest, then leftmost) point.
type Polygon struct {
	Points []Point
}

type Segment struct {
	Start Point
	End   Point
}

// A pair of points, carrying the squared distance between them. Everything in
// the closest pair search compares squared distances, so the square root is
// only taken when someone asks for Distance().
type Pair struct {
	A, B            Point
	DistanceSquared float64
}

type PointStack []Point
