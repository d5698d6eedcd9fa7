// Package pointio reads point sets and writes analysis reports. None of the
// geometry lives here.
package pointio

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	. "github.com/osuushi/pointset/internal"
	"github.com/pkg/errors"
)

var ErrMalformedInput = errors.New("malformed input")

type InputFormat string

const (
	InputAuto InputFormat = "auto"
	// A point count, followed by that many "x y" pairs, separated by any
	// whitespace
	InputText InputFormat = "text"
	// One "x y" pair per line. Blank lines are skipped.
	InputLines InputFormat = "lines"
	// Vertices of every polygon and polyline, plus circle centers
	InputSVG InputFormat = "svg"
)

var InputFormats = []string{string(InputAuto), string(InputText), string(InputLines), string(InputSVG)}

func Read(r io.Reader, format InputFormat) ([]Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	if format == InputAuto {
		format = DetectFormat(data)
	}

	switch format {
	case InputText:
		return ReadText(bytes.NewReader(data))
	case InputLines:
		return ReadLines(bytes.NewReader(data))
	case InputSVG:
		return ReadSVG(bytes.NewReader(data))
	}
	return nil, errors.Errorf("unknown input format %q", format)
}

// Guess the format from the content: markup is svg, a lone number on the first
// line is a point count, anything else is a list of pairs.
func DetectFormat(data []byte) InputFormat {
	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("<")) {
		return InputSVG
	}
	firstLine := trimmed
	if i := bytes.IndexByte(trimmed, '\n'); i >= 0 {
		firstLine = trimmed[:i]
	}
	if len(bytes.Fields(firstLine)) == 1 {
		return InputText
	}
	return InputLines
}

const maxPreallocatedPoints = 1 << 16

// Read a point count followed by that many coordinate pairs. Anything after
// the last announced pair is ignored.
func ReadText(r io.Reader) ([]Point, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "reading point count")
		}
		return nil, errors.Wrap(ErrMalformedInput, "missing point count")
	}
	n, err := strconv.Atoi(scanner.Text())
	if err != nil || n < 0 {
		return nil, errors.Wrapf(ErrMalformedInput, "invalid point count %q", scanner.Text())
	}

	// The count comes from the input, so don't preallocate on its word alone
	points := make([]Point, 0, min(n, maxPreallocatedPoints))
	for i := 0; i < n; i++ {
		var coords [2]float64
		for j := range coords {
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return nil, errors.Wrapf(err, "reading point %d", i)
				}
				return nil, errors.Wrapf(ErrMalformedInput, "expected %d points, got %d", n, i)
			}
			coords[j], err = parseCoordinate(scanner.Text())
			if err != nil {
				return nil, errors.Wrapf(err, "point %d", i)
			}
		}
		points = append(points, Point{X: coords[0], Y: coords[1]})
	}
	return points, nil
}

// Read newline separated points in the form "x y".
func ReadLines(r io.Reader) ([]Point, error) {
	var points []Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return Point{}, errors.Wrapf(ErrMalformedInput, "expected 2 coordinates, got %d", len(parts))
	}
	x, err := parseCoordinate(parts[0])
	if err != nil {
		return Point{}, err
	}
	y, err := parseCoordinate(parts[1])
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

func parseCoordinate(s string) (float64, error) {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, errors.Wrapf(ErrMalformedInput, "invalid coordinate %q", s)
	}
	return value, nil
}

// Collect points from an svg document. Coordinates are taken as written;
// transforms are not applied.
func ReadSVG(r io.Reader) ([]Point, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedInput, "parsing svg: %v", err)
	}

	var points []Point
	for _, name := range []string{"polygon", "polyline"} {
		for _, el := range rootEl.FindAll(name) {
			elementPoints, err := parsePointList(el.Attributes["points"])
			if err != nil {
				return nil, errors.Wrapf(err, "<%s>", name)
			}
			points = append(points, elementPoints...)
		}
	}
	for _, el := range rootEl.FindAll("circle") {
		var center [2]float64
		for i, attr := range []string{"cx", "cy"} {
			value, ok := el.Attributes[attr]
			if !ok {
				continue // Missing center coordinates default to zero
			}
			if center[i], err = parseCoordinate(value); err != nil {
				return nil, errors.Wrap(err, "<circle>")
			}
		}
		points = append(points, Point{X: center[0], Y: center[1]})
	}
	return points, nil
}

// The svg points attribute separates numbers with commas and/or whitespace.
func parsePointList(attribute string) ([]Point, error) {
	fields := strings.FieldsFunc(attribute, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Wrapf(ErrMalformedInput, "odd number of coordinates in %q", attribute)
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := parseCoordinate(fields[i])
		if err != nil {
			return nil, err
		}
		y, err := parseCoordinate(fields[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points, nil
}
