package internal

import "math"

const Epsilon = 1e-9

// Tolerance based equality, used when checking results. The algorithms
// themselves compare exactly.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

type Orientation int

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	Counterclockwise Orientation = 1
)

// Turn test for the path a -> b -> c. This is the sign of the cross product of
// (b - a) and (c - b), so a positive value is a left turn.
func Orient(a, b, c Point) Orientation {
	cross := (c.Y-b.Y)*(b.X-a.X) - (b.Y-a.Y)*(c.X-b.X)
	switch {
	case cross > 0:
		return Counterclockwise
	case cross < 0:
		return Clockwise
	default:
		return Collinear
	}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) DistanceSquared(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// The anchor convention for the Graham scan: smaller Y is lower, and on equal Y
// the smaller X wins.
func (p Point) Below(otherPoint Point) bool {
	if p.Y == otherPoint.Y {
		return p.X < otherPoint.X
	}
	return p.Y < otherPoint.Y
}

func NewPair(a, b Point) Pair {
	return Pair{A: a, B: b, DistanceSquared: a.DistanceSquared(b)}
}

func (pair Pair) Distance() float64 {
	return math.Sqrt(pair.DistanceSquared)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

// Pop and Peek on an empty stack are bugs in the caller, so they panic via the
// slice bounds check rather than returning a zero point.
func (s *PointStack) Pop() Point {
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *PointStack) Peek() Point {
	return (*s)[len(*s)-1]
}

// Second from the top
func (s *PointStack) PeekNext() Point {
	return (*s)[len(*s)-2]
}

func (s *PointStack) Len() int {
	return len(*s)
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}
