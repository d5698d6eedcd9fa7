package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point sets. This is not a full
// (or even correct) svg parser. It finds the first polygon and returns its
// points, in document order. If anything goes wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	var points []Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

var fixtureNames = []string{
	"square",
	"thin_rectangle",
	"arrowhead",
	"cluster",
}

// Some ad hoc code specified fixtures

func Square() []Point {
	return []Point{{0, 0}, {0, 2}, {2, 2}, {2, 0}}
}

func ThinRectangle() []Point {
	return []Point{{0, 0}, {0, 0.01}, {10, 0}, {10, 0.01}}
}

// Points evenly spaced on a circle, with an inner ring that must not appear on
// the hull.
func Ring(n int, radius float64) []Point {
	var points []Point
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, Point{radius * math.Cos(angle), radius * math.Sin(angle)})
		points = append(points, Point{radius / 2 * math.Cos(angle), radius / 2 * math.Sin(angle)})
	}
	return points
}
