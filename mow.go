// Package mow computes measurement over wires for spur and helical gears.
//
// The gear package holds the calculators. This package holds the pieces
// shared by the calculators and their consumers.
package mow

import "math"

const pi = math.Pi

// Measurer is implemented by gear specifications that can be measured over
// wires. Measure returns the measurement over wires in the caller's length unit.
type Measurer interface {
	Measure() (float64, error)
}

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}
