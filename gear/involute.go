package gear

import (
	"fmt"
	"math"
)

// LaskinIterations is the fixed number of correction steps applied by Laskin.
// There is no convergence check.
const LaskinIterations = 8

// Laskin seed coefficients.
const (
	laskinCbrtCoef = 1.441
	laskinLinCoef  = 0.374
)

// Involute returns the involute function tan(phi) - phi for phi in radians.
func Involute(phi float64) float64 {
	return math.Tan(phi) - phi
}

// PitchDiameter returns the pitch diameter of a gear with n teeth and diametral pitch p.
func PitchDiameter(n int, p float64) float64 {
	return float64(n) / p
}

// ToothThickness returns the standard circular tooth thickness for diametral pitch p.
func ToothThickness(p float64) float64 {
	return math.Pi / (2 * p)
}

// LaskinSeed returns the closed form initial guess of the angle whose
// involute is inv. Negative targets use the real cube root.
func LaskinSeed(inv float64) float64 {
	return float64(laskinCbrtCoef*math.Cbrt(inv)) - float64(laskinLinCoef*inv)
}

// Laskin solves Involute(phi) = inv for phi starting from LaskinSeed
// and applying exactly LaskinIterations Newton corrections
//
//	phi += (inv - Involute(phi)) / tan(phi)²
func Laskin(inv float64) (float64, error) {
	var st stages
	phi := st.check("laskin seed", LaskinSeed(inv))
	for i := 0; i < LaskinIterations && st.err == nil; i++ {
		stage := fmt.Sprintf("laskin step %d", i+1)
		tan := st.nonzero(stage, math.Tan(phi))
		if st.err != nil {
			break
		}
		phi = st.check(stage, phi+(inv-(tan-phi))/(tan*tan))
	}
	if st.err != nil {
		return 0, st.err
	}
	return phi, nil
}
