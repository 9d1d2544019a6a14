package gear

import (
	"errors"
	"math"

	"github.com/soypat/mow"
	"github.com/soypat/mow/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// WireCenters returns the centers of the two measuring wires in the
// transverse plane, origin at the gear axis. For an even tooth count the
// wires are diametrically opposed on the x axis. For an odd tooth count
// there is no opposite gap so each wire sits a quarter pitch angle above the axis.
// The x distance between the centers plus the wire diameter is the
// untouched measurement over wires.
func (s Spur) WireCenters() ([2]r2.Vec, error) {
	r, err := s.Solve()
	if err != nil && !errors.Is(err, ErrNegativeResult) {
		return [2]r2.Vec{}, err
	}
	var alpha float64
	if s.N%2 != 0 {
		alpha = mow.DtoR(90) / float64(s.N)
	}
	a := d2.Polar(r.WireCenterDiameter/2, alpha)
	return [2]r2.Vec{a, {X: -a.X, Y: a.Y}}, nil
}

// InvoluteFlank returns samples points of the involute unwound from a base
// circle of radius baseRadius until it reaches outerRadius. The first point
// lies on the base circle at the x axis.
func InvoluteFlank(baseRadius, outerRadius float64, samples int) ([]r2.Vec, error) {
	switch {
	case !(baseRadius > 0):
		return nil, invalid("base radius must be positive, got %g", baseRadius)
	case outerRadius < baseRadius:
		return nil, invalid("outer radius %g smaller than base radius %g", outerRadius, baseRadius)
	case samples < 2:
		return nil, invalid("need at least 2 flank samples, got %d", samples)
	}
	ratio := outerRadius / baseRadius
	maxRoll := math.Sqrt(ratio*ratio - 1)
	pts := make([]r2.Vec, samples)
	for i := range pts {
		t := maxRoll * float64(i) / float64(samples-1)
		pts[i] = d2.Unwind(baseRadius, t)
	}
	return pts, nil
}
