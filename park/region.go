package park

import "math"

// Point is a position in scene coordinates.
type Point struct {
	X float64
	Y float64
}

// Region is an axis-aligned drop target centred on Center.
type Region struct {
	Center Point
	Width  float64
	Height float64
}

// Contains reports whether p lies strictly inside the region's half-extents on
// both axes. Points on the boundary are outside.
func (r Region) Contains(p Point) bool {
	return math.Abs(p.X-r.Center.X) < r.Width/2 &&
		math.Abs(p.Y-r.Center.Y) < r.Height/2
}
