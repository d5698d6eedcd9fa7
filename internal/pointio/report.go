package pointio

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/logrusorgru/aurora"
	. "github.com/osuushi/pointset/internal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

var OutputFormats = []string{string(OutputText), string(OutputJSON), string(OutputYAML)}

type Options struct {
	Format OutputFormat
	// Colorize text output. Ignored for the other formats.
	Color bool
}

func WriteReport(w io.Writer, report Report, options Options) error {
	switch options.Format {
	case OutputText, "":
		return writeText(w, report, aurora.NewAurora(options.Color))
	case OutputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return errors.Wrap(encoder.Encode(newReportDocument(report)), "encoding json")
	case OutputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(newReportDocument(report)); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return errors.Wrap(encoder.Close(), "encoding yaml")
	}
	return errors.Errorf("unknown output format %q", options.Format)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Plain console layout: the hull vertices one per line,
// then the width, then the closest pair and its distance.
func writeText(w io.Writer, report Report, au aurora.Aurora) error {
	ew := &errWriter{w: w}
	ew.printf("%s %d\n", au.Bold("Points:"), report.PointCount)

	if report.Hull != nil {
		ew.printf("\n%s\n", au.Bold(fmt.Sprintf("Hull (%d vertices):", len(report.Hull.Points))))
		for _, p := range report.Hull.Points {
			ew.printf("  %s\n", au.Cyan(p.String()))
		}
	}

	if report.Width != nil {
		ew.printf("\n%s %s\n", au.Bold("Minimum width:"), au.Green(formatFloat(report.Width.Value)))
	}

	if report.Closest != nil {
		ew.printf("\n%s %s, %s\n", au.Bold("Closest pair:"), au.Cyan(report.Closest.A.String()), au.Cyan(report.Closest.B.String()))
		ew.printf("%s %s\n", au.Bold("Distance:"), au.Green(formatFloat(report.Closest.Distance())))
	}
	return ew.err
}

// Keeps the first write error, so the text writer doesn't need to check every
// line.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, err := fmt.Fprintf(ew.w, format, args...)
	ew.err = errors.Wrap(err, "writing report")
}

// Serialized form of a report, shared by json and yaml.
type reportDocument struct {
	Points  int              `json:"points" yaml:"points"`
	Hull    []pointDocument  `json:"hull,omitempty" yaml:"hull,omitempty"`
	Width   *widthDocument   `json:"width,omitempty" yaml:"width,omitempty"`
	Closest *closestDocument `json:"closest,omitempty" yaml:"closest,omitempty"`
}

type pointDocument struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type widthDocument struct {
	Value float64          `json:"value" yaml:"value"`
	Edge  [2]pointDocument `json:"edge" yaml:"edge"`
}

type closestDocument struct {
	A        pointDocument `json:"a" yaml:"a"`
	B        pointDocument `json:"b" yaml:"b"`
	Distance float64       `json:"distance" yaml:"distance"`
}

func newPointDocument(p Point) pointDocument {
	return pointDocument{X: p.X, Y: p.Y}
}

func (d pointDocument) point() Point {
	return Point{X: d.X, Y: d.Y}
}

func newReportDocument(report Report) reportDocument {
	doc := reportDocument{Points: report.PointCount}
	if report.Hull != nil {
		doc.Hull = make([]pointDocument, len(report.Hull.Points))
		for i, p := range report.Hull.Points {
			doc.Hull[i] = newPointDocument(p)
		}
	}
	if report.Width != nil {
		doc.Width = &widthDocument{
			Value: report.Width.Value,
			Edge:  [2]pointDocument{newPointDocument(report.Width.Edge.Start), newPointDocument(report.Width.Edge.End)},
		}
	}
	if report.Closest != nil {
		doc.Closest = &closestDocument{
			A:        newPointDocument(report.Closest.A),
			B:        newPointDocument(report.Closest.B),
			Distance: report.Closest.Distance(),
		}
	}
	return doc
}
