package gear

import (
	"math"

	"github.com/soypat/mow"
)

// Helical specifies a helical gear to be measured over wires. Every angular
// quantity is projected onto the normal plane of the teeth before applying
// the spur machinery.
type Helical struct {
	// N is the number of teeth.
	N int
	// P is the transverse diametral pitch.
	P float64
	// PA is the transverse pressure angle in degrees.
	PA float64
	// Helix is the helix angle in degrees. Must be non-zero, use Spur for straight teeth.
	Helix float64
	// Thinning is the amount by which tooth thickness is reduced from nominal.
	Thinning float64
}

var _ mow.Measurer = Helical{}

// HelicalResult holds every stage of a helical gear measurement.
// Angles are in radians.
type HelicalResult struct {
	NormalPitch         float64 // pN
	NormalThickness     float64 // tN
	TanNormalPressure   float64 // tan(phiN)
	NormalPressureAngle float64 // phiN
	HelixAngle          float64 // psi
	PitchDiameter       float64 // D
	BaseDiameter        float64 // dB
	BaseHelixAngle      float64 // psiB, helix angle at the base cylinder
	WireDiameter        float64 // g
	DiscWireDiameter    float64 // g', wire diameter on the transverse disc
	InvWorkingAngle     float64 // inv(phiW)
	Seed                float64 // initial Laskin guess
	WorkingAngle        float64 // phiW
	WireCenterDiameter  float64 // dW
	Untouched           float64 // measurement over wires with no thinning
	ChangeFactor        float64 // k
	Reduction           float64 // k * Thinning / cos(psi)
	Measurement         float64 // final measurement over wires
}

func (h Helical) validate() error {
	if err := validTeeth(h.N); err != nil {
		return err
	}
	if err := validPitch(h.P); err != nil {
		return err
	}
	if err := validAngle("pressure angle", h.PA); err != nil {
		return err
	}
	if err := validAngle("helix angle", h.Helix); err != nil {
		return err
	}
	if h.Helix == 0 {
		return invalid("helix angle must be non-zero for a helical gear")
	}
	return validThinning(h.Thinning)
}

// Thinned returns a copy of h with a different thinning allowance.
func (h Helical) Thinned(thinning float64) Helical {
	h.Thinning = thinning
	return h
}

// Measure returns the measurement over wires. See Solve.
func (h Helical) Measure() (float64, error) {
	r, err := h.Solve()
	return r.Measurement, err
}

// Solve computes the measurement over wires of the helical gear and all
// intermediate values. If the final measurement is not positive the filled
// result is returned together with an error wrapping ErrNegativeResult.
func (h Helical) Solve() (HelicalResult, error) {
	var r HelicalResult
	if err := h.validate(); err != nil {
		return r, err
	}
	var st stages
	r.HelixAngle = mow.DtoR(h.Helix)
	phi := mow.DtoR(h.PA)
	cosPsi := math.Cos(r.HelixAngle)
	r.NormalPitch = st.check("normal pitch", h.P/cosPsi)
	r.NormalThickness = st.check("normal thickness", math.Pi/(2*r.NormalPitch))
	r.TanNormalPressure = st.check("tan normal pressure angle", math.Tan(phi)/cosPsi)
	r.NormalPressureAngle = math.Atan(r.TanNormalPressure)
	r.PitchDiameter = PitchDiameter(h.N, h.P)
	r.BaseDiameter = st.nonzero("base diameter", r.PitchDiameter*math.Cos(r.NormalPressureAngle))
	r.BaseHelixAngle = math.Atan(st.check("tan base helix angle", float64(math.Tan(r.HelixAngle)*math.Cos(r.NormalPressureAngle))))
	r.WireDiameter = st.check("wire diameter", WireFactor/r.NormalPitch)
	r.DiscWireDiameter = st.check("disc wire diameter", r.WireDiameter/st.nonzero("cos base helix angle", math.Cos(r.BaseHelixAngle)))
	r.InvWorkingAngle = st.check("involute of working angle",
		r.DiscWireDiameter/r.BaseDiameter+Involute(r.NormalPressureAngle)-math.Pi/(2*float64(h.N)))
	if st.err != nil {
		return HelicalResult{}, st.err
	}
	r.Seed = LaskinSeed(r.InvWorkingAngle)
	phiW, err := Laskin(r.InvWorkingAngle)
	if err != nil {
		return HelicalResult{}, err
	}
	r.WorkingAngle = phiW
	r.WireCenterDiameter = st.check("wire center diameter", r.BaseDiameter/st.nonzero("cos working angle", math.Cos(phiW)))
	r.Untouched = r.WireCenterDiameter + r.WireDiameter
	if h.N%2 != 0 {
		r.Untouched /= 2
	}
	r.ChangeFactor = st.check("change factor", math.Cos(r.NormalPressureAngle)/st.nonzero("sin working angle", math.Sin(phiW)))
	r.Reduction = st.check("reduction", float64(r.ChangeFactor*h.Thinning)/cosPsi)
	r.Measurement = st.check("measurement", r.Untouched-r.Reduction)
	if st.err != nil {
		return HelicalResult{}, st.err
	}
	if r.Measurement <= 0 {
		return r, negative(r.Measurement)
	}
	return r, nil
}

// HelicalMeasurement returns the measurement over wires of a helical gear with
// n teeth, transverse diametral pitch p, pressure angle pa and helix angle in
// degrees and tooth thinning allowance.
func HelicalMeasurement(n int, p, pa, helix, thinning float64) (float64, error) {
	return Helical{N: n, P: p, PA: pa, Helix: helix, Thinning: thinning}.Measure()
}
