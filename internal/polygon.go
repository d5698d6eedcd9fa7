package internal

import (
	"fmt"
	"math"
	"strings"
)

func (poly Polygon) Len() int {
	return len(poly.Points)
}

func (poly Polygon) Edge(i int) Segment {
	n := len(poly.Points)
	return Segment{poly.Points[CircularIndex(i, n)], poly.Points[CircularIndex(i+1, n)]}
}

// Shoelace area. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var area float64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		area += p.Cross(q)
	}
	return area / 2
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

// Check whether the point is inside the convex polygon or on its boundary,
// allowing the point to stray outside by up to Epsilon (scaled by the edge
// length, since the cross product grows with it). Degenerate hulls of one or
// two points contain only the points on them.
func (poly Polygon) ContainsPoint(p Point) bool {
	switch len(poly.Points) {
	case 0:
		return false
	case 1:
		return Equal(poly.Points[0].X, p.X) && Equal(poly.Points[0].Y, p.Y)
	case 2:
		segment := Segment{poly.Points[0], poly.Points[1]}
		return segment.ContainsPoint(p)
	}

	for i := range poly.Points {
		edge := poly.Edge(i)
		length := math.Sqrt(edge.LengthSquared())
		if edge.End.Sub(edge.Start).Cross(p.Sub(edge.Start)) < -Epsilon*math.Max(1, length) {
			return false
		}
	}
	return true
}

// Rotate the polygon so that it starts at its anchor point (lowest, then
// leftmost). Two hulls of the same point set compare equal after this.
func (poly Polygon) Normalized() Polygon {
	n := len(poly.Points)
	if n == 0 {
		return Polygon{}
	}
	start := 0
	for i, p := range poly.Points {
		if p.Below(poly.Points[start]) {
			start = i
		}
	}
	points := make([]Point, n)
	for i := range points {
		points[i] = poly.Points[CircularIndex(start+i, n)]
	}
	return Polygon{points}
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

func (poly Polygon) String() string {
	parts := make([]string, len(poly.Points))
	for i, p := range poly.Points {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (pair Pair) String() string {
	return fmt.Sprintf("%s-%s", pair.A, pair.B)
}

type ConvexityResult struct {
	// True if every turn is counterclockwise or collinear, and at least one is
	// counterclockwise.
	Convex bool
	// Number of collinear vertices. The hull builder never produces any.
	CollinearCount int
	NumPoints      int
}

// Walk every consecutive vertex triple and check the turn direction. This
// only validates CCW convexity; a clockwise polygon is reported as not convex.
func AnalyzeConvexity(poly Polygon) ConvexityResult {
	n := len(poly.Points)
	result := ConvexityResult{NumPoints: n}
	if n < 3 {
		return result
	}

	var leftTurns int
	for i := range poly.Points {
		switch Orient(poly.Points[i], poly.Points[CircularIndex(i+1, n)], poly.Points[CircularIndex(i+2, n)]) {
		case Clockwise:
			return result
		case Collinear:
			result.CollinearCount++
		default:
			leftTurns++
		}
	}
	result.Convex = leftTurns > 0
	return result
}
