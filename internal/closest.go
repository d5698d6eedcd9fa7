package internal

import "sort"

// Divide and conquer closest pair search. All comparisons happen on squared
// distances. That includes the strip filter and the y-gap cutoff, which square
// their coordinate gap before comparing it against delta.

// At most this many points following a strip point in y order can be closer
// than delta.
const stripNeighbors = 6

func ClosestPair(points []Point) Pair {
	if len(points) < 2 {
		fatalf(ErrTooFewPoints, "closest pair needs at least 2 points, got %d", len(points))
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		return byXY(sorted[i], sorted[j])
	})

	return closestSorted(sorted)
}

// Exhaustive O(n²) search. This is the base case of the recursion, and the
// reference the divide and conquer result is checked against.
func BruteForceClosestPair(points []Point) Pair {
	if len(points) < 2 {
		fatalf(ErrTooFewPoints, "closest pair needs at least 2 points, got %d", len(points))
	}

	best := NewPair(points[0], points[1])
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if d := points[i].DistanceSquared(points[j]); d < best.DistanceSquared {
				best = Pair{points[i], points[j], d}
			}
		}
	}
	return best
}

// Points must be sorted by byXY.
func closestSorted(points []Point) Pair {
	if len(points) <= 3 {
		return BruteForceClosestPair(points)
	}

	mid := len(points) / 2
	midPoint := points[mid]

	best := closestSorted(points[:mid])
	if right := closestSorted(points[mid:]); right.DistanceSquared < best.DistanceSquared {
		best = right
	}
	delta := best.DistanceSquared

	// Collect the strip around the dividing line from both halves. This must be
	// a fresh slice, since re-sorting it by y would otherwise scramble the x
	// order of the caller's slice.
	var strip []Point
	for _, p := range points {
		dx := p.X - midPoint.X
		if dx*dx < delta {
			strip = append(strip, p)
		}
	}
	sort.Slice(strip, func(i, j int) bool {
		return byYX(strip[i], strip[j])
	})

	for i := range strip {
		for j := i + 1; j < len(strip) && j <= i+stripNeighbors; j++ {
			dy := strip[j].Y - strip[i].Y
			// Everything further up is even further away
			if dy*dy >= delta {
				break
			}
			if d := strip[i].DistanceSquared(strip[j]); d < delta {
				delta = d
				best = Pair{strip[i], strip[j], d}
			}
		}
	}
	return best
}

func byXY(a, b Point) bool {
	if a.X == b.X {
		return a.Y < b.Y
	}
	return a.X < b.X
}

func byYX(a, b Point) bool {
	if a.Y == b.Y {
		return a.X < b.X
	}
	return a.Y < b.Y
}
