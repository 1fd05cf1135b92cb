package track

import "math"

// Point is a 2-D position in image-pixel coordinates.
type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func euclideanDistance(p1, p2 Point) float64 {
	return math.Sqrt(math.Pow(p1.X-p2.X, 2) + math.Pow(p1.Y-p2.Y, 2))
}

func finiteValue(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// finitePoint reports whether both coordinates are usable numbers.
func finitePoint(p Point) bool {
	return finiteValue(p.X) && finiteValue(p.Y)
}
