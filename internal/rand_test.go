package internal

import (
	"math"
	"math/rand/v2"
)

func randWithSeed(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func randf(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

func randomPoints(rng *rand.Rand, n int, extent float64) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{randf(rng, -extent, extent), randf(rng, -extent, extent)}
	}
	return points
}

// Integer coordinates on a small grid, so there are plenty of duplicates and
// collinear triples.
func randomGridPoints(rng *rand.Rand, n int, extent int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{float64(rng.IntN(2*extent+1) - extent), float64(rng.IntN(2*extent+1) - extent)}
	}
	return points
}

func shuffled(rng *rand.Rand, values []Point) []Point {
	values = append([]Point(nil), values...)
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	return values
}

func rotatePoint(point Point, angle float64) Point {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Point{point.X*cos - point.Y*sin, point.X*sin + point.Y*cos}
}

func transformed(points []Point, angle, dx, dy float64) []Point {
	result := make([]Point, len(points))
	for i, p := range points {
		p = rotatePoint(p, angle)
		result[i] = Point{p.X + dx, p.Y + dy}
	}
	return result
}
