package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Polar returns the point at distance r from the origin and angle theta
// (radians) from the x axis.
func Polar(r, theta float64) r2.Vec {
	sin, cos := math.Sincos(theta)
	return r2.Vec{X: r * cos, Y: r * sin}
}

// Unwind returns the point of an involute of a circle of radius r
// after unwinding the string by roll angle t (radians).
func Unwind(r, t float64) r2.Vec {
	sin, cos := math.Sincos(t)
	return r2.Vec{
		X: r * (cos + t*sin),
		Y: r * (sin - t*cos),
	}
}

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}
