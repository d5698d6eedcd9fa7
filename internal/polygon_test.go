package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolygon_ContainsPoint(t *testing.T) {
	square := ConvexHull(Square())
	assert.True(t, square.ContainsPoint(Point{1, 1}))
	assert.True(t, square.ContainsPoint(Point{0, 0}), "vertex")
	assert.True(t, square.ContainsPoint(Point{2, 1}), "edge")
	assert.False(t, square.ContainsPoint(Point{2.01, 1}))
	assert.False(t, square.ContainsPoint(Point{-1, -1}))

	t.Run("degenerate", func(t *testing.T) {
		point := Polygon{[]Point{{1, 1}}}
		assert.True(t, point.ContainsPoint(Point{1, 1}))
		assert.False(t, point.ContainsPoint(Point{1, 1.1}))

		segment := Polygon{[]Point{{0, 0}, {2, 2}}}
		assert.True(t, segment.ContainsPoint(Point{1, 1}))
		assert.False(t, segment.ContainsPoint(Point{3, 3}), "beyond the end")
		assert.False(t, segment.ContainsPoint(Point{1, 0}))

		assert.False(t, Polygon{}.ContainsPoint(Point{0, 0}))
	})
}

func TestPolygon_Normalized(t *testing.T) {
	poly := Polygon{[]Point{{2, 2}, {0, 2}, {0, 0}, {2, 0}}}
	assert.Equal(t, []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}, poly.Normalized().Points)
	assert.Equal(t, ConvexHull(Square()), poly.Normalized())
	assert.Empty(t, Polygon{}.Normalized().Points)
}

func TestAnalyzeConvexity(t *testing.T) {
	assert.True(t, AnalyzeConvexity(ConvexHull(Square())).Convex)
	assert.False(t, AnalyzeConvexity(ConvexHull(Square()).Reverse()).Convex, "clockwise")

	withCollinear := AnalyzeConvexity(Polygon{[]Point{{0, 0}, {1, 0}, {2, 0}, {2, 2}}})
	assert.True(t, withCollinear.Convex)
	assert.Equal(t, 1, withCollinear.CollinearCount)

	chevron := Polygon{[]Point{{0, 0}, {10, 10}, {0, 20}, {5, 10}}}
	assert.False(t, AnalyzeConvexity(chevron).Convex)

	assert.False(t, AnalyzeConvexity(Polygon{[]Point{{0, 0}, {1, 1}}}).Convex)
	assert.Equal(t, 2, AnalyzeConvexity(Polygon{[]Point{{0, 0}, {1, 1}}}).NumPoints)
}

func TestPolygon_String(t *testing.T) {
	assert.Equal(t, "[(0, 0) (2, 0.5)]", Polygon{[]Point{{0, 0}, {2, 0.5}}}.String())
	assert.Equal(t, "(0, 0)-(1, 1)", NewPair(Point{0, 0}, Point{1, 1}).String())
}
