package internal

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyzedScene(points []Point) Scene {
	hull := ConvexHull(points)
	edge, width := MinimumWidthEdge(hull)
	pair := ClosestPair(points)
	return Scene{Points: points, Hull: hull, WidthEdge: edge, Width: width, Closest: &pair, Labels: true}
}

func TestScene_EncodePNG(t *testing.T) {
	scene := analyzedScene(LoadFixture("cluster"))

	var buf bytes.Buffer
	require.NoError(t, scene.EncodePNG(&buf, 2))
	img, err := png.Decode(&buf)
	require.NoError(t, err)

	// The cluster spans 80 by 81 units
	bounds := img.Bounds()
	assert.Equal(t, 2*80+2*drawPadding, bounds.Dx())
	assert.Equal(t, 2*81+2*drawPadding, bounds.Dy())
}

func TestScene_SavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.png")
	require.NoError(t, analyzedScene(Square()).SavePNG(path, 50))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	assert.Error(t, analyzedScene(Square()).SavePNG(filepath.Join(t.TempDir(), "missing", "x.png"), 50))
}

func TestScene_RenderHugeExtent(t *testing.T) {
	scene := analyzedScene([]Point{{0, 0}, {1e9, 0}, {0, 1e9}})

	var buf bytes.Buffer
	require.NotPanics(t, func() { require.NoError(t, scene.EncodePNG(&buf, 50)) })
	img, err := png.Decode(&buf)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.InDelta(t, maxDrawSize, bounds.Dx(), 1)
	assert.InDelta(t, maxDrawSize, bounds.Dy(), 1)
}

func TestScene_Degenerate(t *testing.T) {
	// Single points and segments have no width or area, but must still render
	for _, points := range [][]Point{{{1, 1}}, {{0, 0}, {3, 3}}} {
		scene := Scene{Points: points, Hull: ConvexHull(points)}
		assert.NotPanics(t, func() { scene.Render(10) })
	}
	assert.NotPanics(t, func() { Scene{}.Render(10) })
}

func TestCatPNG(t *testing.T) {
	assert.Error(t, CatPNG(filepath.Join(t.TempDir(), "nope.png"), &bytes.Buffer{}))

	path := filepath.Join(t.TempDir(), "square.png")
	require.NoError(t, analyzedScene(Square()).SavePNG(path, 10))

	var buf bytes.Buffer
	require.NoError(t, CatPNG(path, &buf))
	assert.Contains(t, buf.String(), "]1337;File=;inline=1:")

	// Write failures reach the caller
	assert.Error(t, CatPNG(path, failingWriter{}))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}
