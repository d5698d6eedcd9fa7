package internal

// The results of one analysis. Sections that were not requested are nil.
type Report struct {
	PointCount int
	Hull       *Polygon
	Width      *Width
	Closest    *Pair
}

// The minimum width, and the hull edge whose supporting line bounds the
// minimal strip.
type Width struct {
	Value float64
	Edge  Segment
}

type Sections struct {
	Hull, Width, Closest bool
}

var AllSections = Sections{Hull: true, Width: true, Closest: true}

// Run the requested pipelines. The width needs the hull, so asking for the
// width computes the hull as well, but it is only reported if asked for.
func Analyze(points []Point, sections Sections) Report {
	report := Report{PointCount: len(points)}

	if sections.Hull || sections.Width {
		hull := ConvexHull(points)
		if sections.Hull {
			report.Hull = &hull
		}
		if sections.Width {
			edge, value := MinimumWidthEdge(hull)
			report.Width = &Width{Value: value, Edge: edge}
		}
	}

	if sections.Closest {
		pair := ClosestPair(points)
		report.Closest = &pair
	}
	return report
}

// The picture of a report, over the points it was computed from.
func (r Report) Scene(points []Point) Scene {
	scene := Scene{Points: points, Closest: r.Closest}
	if r.Hull != nil {
		scene.Hull = *r.Hull
	}
	if r.Width != nil {
		scene.Width = r.Width.Value
		scene.WidthEdge = r.Width.Edge
	}
	return scene
}
