package internal

import "sort"

// Graham scan.
//
// Collinear points on the hull boundary are dropped: every vertex of the
// result is a strict left turn. For input that is entirely collinear, this
// leaves just the two extreme points, and for coincident input, a single point.

func ConvexHull(points []Point) Polygon {
	if len(points) == 0 {
		fatalf(ErrEmptyPointSet, "cannot build hull")
	}

	// Work on a private copy, since we swap the anchor to the front and sort
	work := make([]Point, len(points))
	copy(work, points)

	anchorIndex := 0
	for i, p := range work {
		if p.Below(work[anchorIndex]) {
			anchorIndex = i
		}
	}
	work[0], work[anchorIndex] = work[anchorIndex], work[0]

	order := radialOrder{anchor: work[0]}
	rest := work[1:]
	sort.SliceStable(rest, func(i, j int) bool {
		return order.less(rest[i], rest[j])
	})

	stack := make(PointStack, 0, len(work))
	for _, p := range work {
		// Coincident points would create zero-length edges
		if !stack.Empty() && stack.Peek() == p {
			continue
		}
		for stack.Len() >= 2 && Orient(stack.PeekNext(), stack.Peek(), p) != Counterclockwise {
			stack.Pop()
		}
		stack.Push(p)
	}

	return Polygon{Points: []Point(stack)}
}

// Angular ordering around the anchor. Because the anchor is the lowest point,
// every other point lies in the half plane above it, so the turn test alone is
// a consistent ordering, and no trigonometry is needed.
type radialOrder struct {
	anchor Point
}

func (o radialOrder) less(p1, p2 Point) bool {
	switch Orient(o.anchor, p1, p2) {
	case Counterclockwise:
		return true
	case Clockwise:
		return false
	}
	// Same angle, so the nearer point comes first
	return o.anchor.DistanceSquared(p1) < o.anchor.DistanceSquared(p2)
}
