package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	t.Run("all sections", func(t *testing.T) {
		report := Analyze(Square(), AllSections)
		assert.Equal(t, 4, report.PointCount)
		require.NotNil(t, report.Hull)
		assert.Len(t, report.Hull.Points, 4)
		require.NotNil(t, report.Width)
		assert.InDelta(t, 2, report.Width.Value, Epsilon)
		require.NotNil(t, report.Closest)
		assert.InDelta(t, 2, report.Closest.Distance(), Epsilon)
	})

	t.Run("width without hull", func(t *testing.T) {
		report := Analyze(ThinRectangle(), Sections{Width: true})
		assert.Nil(t, report.Hull)
		assert.Nil(t, report.Closest)
		require.NotNil(t, report.Width)
		assert.InDelta(t, 0.01, report.Width.Value, Epsilon)
		assert.InDelta(t, 100, report.Width.Edge.LengthSquared(), Epsilon)
	})

	t.Run("closest needs two points", func(t *testing.T) {
		err := recoverError(func() { Analyze([]Point{{1, 1}}, AllSections) })
		assert.True(t, errors.Is(err, ErrTooFewPoints))

		// The hull alone is fine with a single point
		report := Analyze([]Point{{1, 1}}, Sections{Hull: true, Width: true})
		assert.Equal(t, []Point{{1, 1}}, report.Hull.Points)
		assert.Zero(t, report.Width.Value)
	})

	t.Run("scene", func(t *testing.T) {
		points := Square()
		scene := Analyze(points, AllSections).Scene(points)
		assert.Equal(t, points, scene.Points)
		assert.Len(t, scene.Hull.Points, 4)
		assert.InDelta(t, 2, scene.Width, Epsilon)
		assert.NotNil(t, scene.Closest)
	})
}
