package internal

import "math"

func (s Segment) LengthSquared() float64 {
	return s.Start.DistanceSquared(s.End)
}

func (s Segment) IsDegenerate() bool {
	return s.Start == s.End
}

// Perpendicular distance from p to the infinite line through the segment. A
// zero-length segment has no line through it.
func (s Segment) DistanceToLine(p Point) float64 {
	if s.IsDegenerate() {
		fatalf(ErrDegenerateEdge, "no line through %s", s.Start)
	}
	direction := s.End.Sub(s.Start)
	return math.Abs(direction.Cross(p.Sub(s.Start))) / math.Sqrt(s.LengthSquared())
}

// True if p lies on the segment, within Epsilon.
func (s Segment) ContainsPoint(p Point) bool {
	if s.IsDegenerate() {
		return math.Sqrt(s.Start.DistanceSquared(p)) < Epsilon
	}
	if s.DistanceToLine(p) > Epsilon*math.Max(1, math.Sqrt(s.LengthSquared())) {
		return false
	}
	// Project onto the segment direction and check the parameter range
	direction := s.End.Sub(s.Start)
	offset := p.Sub(s.Start)
	t := (direction.X*offset.X + direction.Y*offset.Y) / s.LengthSquared()
	return t >= -Epsilon && t <= 1+Epsilon
}

// Translate the segment perpendicular to itself by the given distance, to the
// left of its direction.
func (s Segment) Offset(distance float64) Segment {
	direction := s.End.Sub(s.Start)
	length := math.Sqrt(s.LengthSquared())
	normal := Point{X: -direction.Y / length * distance, Y: direction.X / length * distance}
	return Segment{
		Start: Point{s.Start.X + normal.X, s.Start.Y + normal.Y},
		End:   Point{s.End.X + normal.X, s.End.Y + normal.Y},
	}
}
