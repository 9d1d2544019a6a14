// Package gearplot draws charts that help check a measurement over wires
// setup: the involute function, how the measurement responds to tooth
// thinning and the wire seated against the tooth flank.
package gearplot

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/soypat/mow"
	"github.com/soypat/mow/gear"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// DefaultSize is the side length of plots written by Save.
const DefaultSize = 4 * vg.Inch

const circleSamples = 90

var (
	flankColor = color.RGBA{R: 0x46, G: 0x89, B: 0x66, A: 0xff}
	wireColor  = color.RGBA{R: 0xb6, G: 0x49, B: 0x26, A: 0xff}
	refColor   = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

// Involute plots inv(phi) = tan(phi) - phi for phi in [0, maxDeg] degrees.
func Involute(maxDeg float64, samples int) (*plot.Plot, error) {
	if !(maxDeg > 0 && maxDeg < 90) {
		return nil, fmt.Errorf("max angle must be in (0, 90) degrees, got %g", maxDeg)
	}
	if samples < 2 {
		return nil, errors.New("need at least 2 samples")
	}
	xys := make(plotter.XYs, samples)
	for i, deg := range floats.Span(make([]float64, samples), 0, maxDeg) {
		xys[i] = plotter.XY{X: deg, Y: gear.Involute(mow.DtoR(deg))}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = flankColor
	p := plot.New()
	p.Title.Text = "Involute function"
	p.X.Label.Text = "pressure angle [deg]"
	p.Y.Label.Text = "inv"
	p.Add(plotter.NewGrid(), line)
	return p, nil
}

// ThinningSweep plots the measurement over wires of the gear returned by
// thinned against the thinning allowance in [0, maxThinning].
func ThinningSweep(thinned func(thinning float64) mow.Measurer, maxThinning float64, samples int) (*plot.Plot, error) {
	if thinned == nil {
		return nil, errors.New("nil gear constructor")
	}
	if !(maxThinning > 0) || math.IsInf(maxThinning, 0) {
		return nil, fmt.Errorf("max thinning must be positive and finite, got %g", maxThinning)
	}
	if samples < 2 {
		return nil, errors.New("need at least 2 samples")
	}
	xys := make(plotter.XYs, samples)
	for i, thin := range floats.Span(make([]float64, samples), 0, maxThinning) {
		m, err := thinned(thin).Measure()
		if err != nil {
			return nil, fmt.Errorf("thinning %g: %w", thin, err)
		}
		xys[i] = plotter.XY{X: thin, Y: m}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = flankColor
	p := plot.New()
	p.Title.Text = "Measurement over wires"
	p.X.Label.Text = "tooth thinning"
	p.Y.Label.Text = "M"
	p.Add(plotter.NewGrid(), line)
	return p, nil
}

// Flank plots one involute flank of the spur gear from the base circle to
// the outside circle together with the base and pitch circles and the
// measuring wire seated in the gap.
func Flank(s gear.Spur, samples int) (*plot.Plot, error) {
	r, err := s.Solve()
	if err != nil && !errors.Is(err, gear.ErrNegativeResult) {
		return nil, err
	}
	flank, err := gear.InvoluteFlank(r.BaseDiameter/2, s.OutsideDiameter()/2, samples)
	if err != nil {
		return nil, err
	}
	wires, err := s.WireCenters()
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d teeth, %g DP, %g° spur", s.N, s.P, s.PA)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	flankLine, err := polyline(flank, flankColor)
	if err != nil {
		return nil, err
	}
	p.Add(flankLine)
	p.Legend.Add("flank", flankLine)

	base, err := polyline(circle(r2.Vec{}, r.BaseDiameter/2), refColor)
	if err != nil {
		return nil, err
	}
	p.Add(base)
	p.Legend.Add("base circle", base)

	pitch, err := polyline(circle(r2.Vec{}, r.PitchDiameter/2), refColor)
	if err != nil {
		return nil, err
	}
	pitch.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(pitch)
	p.Legend.Add("pitch circle", pitch)

	wire, err := polyline(circle(wires[0], r.WireDiameter/2), wireColor)
	if err != nil {
		return nil, err
	}
	p.Add(wire)
	p.Legend.Add("wire", wire)
	return p, nil
}

// Save writes p to filename. The format is chosen by the file extension
// (png, svg, pdf, eps, jpg, tif).
func Save(p *plot.Plot, filename string) error {
	return p.Save(DefaultSize, DefaultSize, filename)
}

func polyline(pts []r2.Vec, c color.Color) (*plotter.Line, error) {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = c
	return l, nil
}

// circle returns a closed polygon approximating a circle.
func circle(center r2.Vec, radius float64) []r2.Vec {
	pts := make([]r2.Vec, circleSamples+1)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / circleSamples)
		pts[i] = r2.Add(center, r2.Scale(radius, r2.Vec{X: cos, Y: sin}))
	}
	return pts
}
