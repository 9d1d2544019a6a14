package gear

import (
	"math"

	"github.com/soypat/mow"
)

// WireFactor is the best wire diameter constant. Wire diameter is WireFactor
// divided by the diametral pitch measured in the plane of the wire.
const WireFactor = 1.728

// Spur specifies a spur gear to be measured over wires.
type Spur struct {
	// N is the number of teeth.
	N int
	// P is the diametral pitch, teeth per unit of pitch diameter.
	P float64
	// PA is the pressure angle in degrees.
	PA float64
	// Thinning is the amount by which tooth thickness is reduced from nominal.
	Thinning float64
}

var _ mow.Measurer = Spur{} // Compile time check of interface implementation.

// SpurResult holds every stage of a spur gear measurement.
// Angles are in radians.
type SpurResult struct {
	PitchDiameter      float64 // D
	ToothThickness     float64 // standard circular tooth thickness
	PressureAngle      float64 // phi
	InvPressureAngle   float64 // inv(phi)
	BaseDiameter       float64 // dB
	WireDiameter       float64 // g
	InvWorkingAngle    float64 // inv(phiW)
	Seed               float64 // initial Laskin guess
	WorkingAngle       float64 // phiW, pressure angle at the wire centers
	WireCenterDiameter float64 // dW
	Untouched          float64 // measurement over wires with no thinning
	ChangeFactor       float64 // kM
	Reduction          float64 // kM * Thinning
	Measurement        float64 // final measurement over wires
}

func (s Spur) validate() error {
	if err := validTeeth(s.N); err != nil {
		return err
	}
	if err := validPitch(s.P); err != nil {
		return err
	}
	if err := validAngle("pressure angle", s.PA); err != nil {
		return err
	}
	return validThinning(s.Thinning)
}

// Thinned returns a copy of s with a different thinning allowance.
func (s Spur) Thinned(thinning float64) Spur {
	s.Thinning = thinning
	return s
}

// OutsideDiameter returns the standard addendum outside diameter (N+2)/P.
func (s Spur) OutsideDiameter() float64 {
	return float64(s.N+2) / s.P
}

// Measure returns the measurement over wires. See Solve.
func (s Spur) Measure() (float64, error) {
	r, err := s.Solve()
	return r.Measurement, err
}

// Solve computes the measurement over wires of the spur gear and all
// intermediate values. If the final measurement is not positive the filled
// result is returned together with an error wrapping ErrNegativeResult.
func (s Spur) Solve() (SpurResult, error) {
	var r SpurResult
	if err := s.validate(); err != nil {
		return r, err
	}
	var st stages
	n := float64(s.N)
	r.PitchDiameter = PitchDiameter(s.N, s.P)
	r.ToothThickness = ToothThickness(s.P)
	r.PressureAngle = mow.DtoR(s.PA)
	r.InvPressureAngle = Involute(r.PressureAngle)
	r.BaseDiameter = st.nonzero("base diameter", r.PitchDiameter*math.Cos(r.PressureAngle))
	r.WireDiameter = st.check("wire diameter", WireFactor/s.P)
	r.InvWorkingAngle = st.check("involute of working angle",
		r.ToothThickness/r.PitchDiameter+r.InvPressureAngle+r.WireDiameter/r.BaseDiameter-math.Pi/n)
	if st.err != nil {
		return SpurResult{}, st.err
	}
	r.Seed = LaskinSeed(r.InvWorkingAngle)
	phiW, err := Laskin(r.InvWorkingAngle)
	if err != nil {
		return SpurResult{}, err
	}
	r.WorkingAngle = phiW
	r.WireCenterDiameter = st.check("wire center diameter", r.BaseDiameter/st.nonzero("cos working angle", math.Cos(phiW)))
	if s.N%2 == 0 {
		r.Untouched = r.WireCenterDiameter + r.WireDiameter
	} else {
		// Wires in odd gears sit in gaps half a pitch off the diameter.
		r.Untouched = float64(r.WireCenterDiameter*math.Cos(mow.DtoR(90)/n)) + r.WireDiameter
	}
	r.ChangeFactor = st.check("change factor", math.Cos(r.PressureAngle)/st.nonzero("sin working angle", math.Sin(phiW)))
	r.Reduction = st.check("reduction", r.ChangeFactor*s.Thinning)
	r.Measurement = st.check("measurement", r.Untouched-r.Reduction)
	if st.err != nil {
		return SpurResult{}, st.err
	}
	if r.Measurement <= 0 {
		return r, negative(r.Measurement)
	}
	return r, nil
}

// SpurMeasurement returns the measurement over wires of a spur gear with
// n teeth, diametral pitch p, pressure angle pa in degrees and tooth thinning allowance.
func SpurMeasurement(n int, p, pa, thinning float64) (float64, error) {
	return Spur{N: n, P: p, PA: pa, Thinning: thinning}.Measure()
}
