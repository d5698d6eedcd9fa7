package internal

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/pointset/internal/dbg"
	"github.com/pkg/errors"
)

// Padding around the shape so that points on the hull aren't clipped
const drawPadding = 40

// Longest side of a rendered image, padding included. Larger scenes are drawn
// at a reduced scale.
const maxDrawSize = 4096

// Everything needed to picture one analysis. Zero values are skipped.
type Scene struct {
	Points []Point
	Hull   Polygon
	// Edge attaining the minimum width, and the width itself
	WidthEdge Segment
	Width     float64
	Closest   *Pair
	// Label hull vertices with readable names
	Labels bool
}

func (s Scene) bounds() (minX, minY, maxX, maxY float64) {
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, list := range [][]Point{s.Points, s.Hull.Points} {
		for _, p := range list {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return 0, 0, 0, 0
	}
	return
}

// Draw the scene at the given scale (pixels per unit).
func (s Scene) Render(scale float64) *gg.Context {
	minX, minY, maxX, maxY := s.bounds()
	if extent := math.Max(maxX-minX, maxY-minY); extent > 0 {
		scale = math.Min(scale, (maxDrawSize-2*drawPadding)/extent)
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Line widths are in user space, so undo the scale
	unit := 1 / scale

	if len(s.Hull.Points) > 0 {
		c.MoveTo(s.Hull.Points[0].X, s.Hull.Points[0].Y)
		for _, p := range s.Hull.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(2 * unit)
		c.Stroke()
	}

	if s.Width > 0 && !s.WidthEdge.IsDegenerate() {
		c.SetRGB(1, 1, 0)
		c.SetLineWidth(unit)
		c.SetDash(4*unit, 4*unit)
		for _, line := range []Segment{s.WidthEdge, s.WidthEdge.Offset(s.Width)} {
			drawExtended(c, line, maxX-minX+maxY-minY)
		}
		c.SetDash()
	}

	c.SetRGB(1, 1, 1)
	for _, p := range s.Points {
		c.DrawCircle(p.X, p.Y, 2*unit)
		c.Fill()
	}

	if s.Closest != nil {
		c.SetRGB(1, 0.2, 0.2)
		c.SetLineWidth(2 * unit)
		c.DrawLine(s.Closest.A.X, s.Closest.A.Y, s.Closest.B.X, s.Closest.B.Y)
		c.Stroke()
		for _, p := range []Point{s.Closest.A, s.Closest.B} {
			c.DrawCircle(p.X, p.Y, 4*unit)
			c.Fill()
		}
	}

	if s.Labels {
		c.SetRGB(1, 1, 1)
		for _, p := range s.Hull.Points {
			// Text has to be drawn in device space, or it comes out upside down
			x, y := c.TransformPoint(p.X, p.Y)
			c.Push()
			c.Identity()
			c.DrawStringAnchored(dbg.Name(p), x, y-8, 0.5, 0)
			c.Pop()
		}
	}

	return c
}

// Draw the line through the segment, extended by margin on both ends.
func drawExtended(c *gg.Context, s Segment, margin float64) {
	direction := s.End.Sub(s.Start)
	length := math.Sqrt(s.LengthSquared())
	dx, dy := direction.X/length*margin, direction.Y/length*margin
	c.DrawLine(s.Start.X-dx, s.Start.Y-dy, s.End.X+dx, s.End.Y+dy)
	c.Stroke()
}

func (s Scene) SavePNG(path string, scale float64) error {
	if err := s.Render(scale).SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

func (s Scene) EncodePNG(w io.Writer, scale float64) error {
	return errors.Wrap(s.Render(scale).EncodePNG(w), "encoding png")
}

// Print a PNG inline in the terminal (iTerm only).
func CatPNG(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "displaying %s", path)
}
