package gear

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/mow"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

const tol = 1e-12

func near(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !scalar.EqualWithinAbsOrRel(got, want, tol, tol) {
		t.Errorf("%s: got %v, want %v (diff %g)", name, got, want, got-want)
	}
}

var (
	// 55 tooth, 3 DP, 20° spur gear thinned 0.004.
	spurA = Spur{N: 55, P: 3, PA: 20, Thinning: 0.004}
	// 14 tooth, 40° helix gear thinned 0.002.
	helicalB = Helical{N: 14, P: 18.3850656, PA: 14.50, Helix: 40, Thinning: 0.002}
)

func TestSpurScenario(t *testing.T) {
	r, err := spurA.Solve()
	if err != nil {
		t.Fatal(err)
	}
	near(t, "pressure angle", r.PressureAngle, 0.3490658503988659)
	near(t, "pitch diameter", r.PitchDiameter, 18.333333333333332)
	near(t, "tooth thickness", r.ToothThickness, 0.5235987755982988)
	near(t, "base diameter", r.BaseDiameter, 17.227698047741654)
	near(t, "inv pressure angle", r.InvPressureAngle, 0.014904383867336446)
	near(t, "wire diameter", r.WireDiameter, 0.576)
	near(t, "inv working angle", r.InvWorkingAngle, 0.019778981395399707)
	near(t, "working angle", r.WorkingAngle, 0.38228071775667394)
	near(t, "wire center diameter", r.WireCenterDiameter, 18.568006255963784)
	near(t, "untouched", r.Untouched, 19.136434089846375)
	near(t, "change factor", r.ChangeFactor, 2.5190297445139116)
	near(t, "reduction", r.Reduction, 0.010076118978055647)
	near(t, "measurement", r.Measurement, 19.12635797086832)
	if math.Abs(r.Seed-r.WorkingAngle) > 1e-3 {
		t.Errorf("seed %g too far from working angle %g", r.Seed, r.WorkingAngle)
	}

	m, err := SpurMeasurement(55, 3, 20, 0.004)
	if err != nil {
		t.Fatal(err)
	}
	if m != r.Measurement {
		t.Errorf("SpurMeasurement=%v differs from Solve=%v", m, r.Measurement)
	}
}

func TestHelicalScenario(t *testing.T) {
	r, err := helicalB.Solve()
	if err != nil {
		t.Fatal(err)
	}
	near(t, "normal pitch", r.NormalPitch, 23.999998649092124)
	near(t, "normal thickness", r.NormalThickness, 0.06544985063381731)
	near(t, "tan normal pressure", r.TanNormalPressure, 0.3376012797676846)
	near(t, "normal pressure angle", r.NormalPressureAngle, 0.32558677550878634)
	near(t, "base diameter", r.BaseDiameter, 0.7214815056158727)
	near(t, "base helix angle", r.BaseHelixAngle, 0.6716945343604036)
	near(t, "wire diameter", r.WireDiameter, 0.07200000405272386)
	near(t, "disc wire diameter", r.DiscWireDiameter, 0.09198125144995774)
	near(t, "inv working angle", r.InvWorkingAngle, 0.02730417659337711)
	near(t, "working angle", r.WorkingAngle, 0.4236330566736443)
	near(t, "wire center diameter", r.WireCenterDiameter, 0.7914439642865178)
	near(t, "untouched", r.Untouched, 0.8634439683392416)
	near(t, "change factor", r.ChangeFactor, 2.3048423417905024)
	near(t, "reduction", r.Reduction, 0.006017515987470002)
	near(t, "measurement", r.Measurement, 0.8574264523517716)

	m, err := HelicalMeasurement(14, 18.3850656, 14.50, 40, 0.002)
	if err != nil {
		t.Fatal(err)
	}
	if m != r.Measurement {
		t.Errorf("HelicalMeasurement=%v differs from Solve=%v", m, r.Measurement)
	}
}

func TestDeterministic(t *testing.T) {
	for _, g := range []mow.Measurer{spurA, helicalB, spurA.Thinned(0), helicalB.Thinned(0)} {
		first, err := g.Measure()
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 10; i++ {
			got, _ := g.Measure()
			if math.Float64bits(got) != math.Float64bits(first) {
				t.Fatalf("%+v: call %d got %v, first call %v", g, i, got, first)
			}
		}
	}
}

func TestInvolute(t *testing.T) {
	if got := Involute(0); got != 0 {
		t.Errorf("Involute(0) = %g", got)
	}
	const steps = 1000
	prev := Involute(0)
	for i := 1; i < steps; i++ {
		phi := (math.Pi / 2) * float64(i) / steps
		v := Involute(phi)
		if !(v > prev) {
			t.Fatalf("involute not increasing at %g: %g <= %g", phi, v, prev)
		}
		prev = v
	}
}

func TestLaskinConvergence(t *testing.T) {
	for inv := 0.005; inv <= 0.05; inv += 0.0025 {
		// Find the exact angle by bisection so the check does not depend on Laskin.
		lo, hi := 0.0, 1.0
		for i := 0; i < 200; i++ {
			mid := (lo + hi) / 2
			if Involute(mid) < inv {
				lo = mid
			} else {
				hi = mid
			}
		}
		phi, err := Laskin(inv)
		if err != nil {
			t.Fatalf("inv=%g: %v", inv, err)
		}
		if !scalar.EqualWithinAbs(phi, lo, 1e-6) {
			t.Errorf("inv=%g: laskin=%g, want %g", inv, phi, lo)
		}
	}
	for _, x := range []float64{0.25, 0.3, 0.35, 0.4, 0.45} {
		phi, err := Laskin(Involute(x))
		if err != nil {
			t.Fatal(err)
		}
		if !scalar.EqualWithinAbs(phi, x, 1e-6) {
			t.Errorf("laskin(inv(%g)) = %g", x, phi)
		}
	}
}

func TestLaskinNegativeTarget(t *testing.T) {
	if seed := LaskinSeed(-0.02); !(seed < 0) || math.IsNaN(seed) {
		t.Fatalf("seed of negative target must be a negative real, got %g", seed)
	}
	if a, b := LaskinSeed(-0.02), LaskinSeed(0.02); a != -b {
		t.Errorf("seed not odd: %g, %g", a, b)
	}
	phi, err := Laskin(Involute(-0.3))
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(phi, -0.3, 1e-6) {
		t.Errorf("got %g, want -0.3", phi)
	}
}

func TestLaskinZeroTangent(t *testing.T) {
	_, err := Laskin(0)
	if !errors.Is(err, ErrNumericDomain) {
		t.Fatalf("want numeric domain error, got %v", err)
	}
	var serr *StageError
	if !errors.As(err, &serr) {
		t.Fatalf("want *StageError, got %T", err)
	}
	if serr.Stage != "laskin step 1" {
		t.Errorf("unexpected stage %q", serr.Stage)
	}
}

func TestSpurParity(t *testing.T) {
	for _, n := range []int{54, 55, 20, 21} {
		s := spurA
		s.N = n
		r, err := s.Solve()
		if err != nil {
			t.Fatal(err)
		}
		var want float64
		if n%2 == 0 {
			want = r.WireCenterDiameter + r.WireDiameter
		} else {
			want = r.WireCenterDiameter*math.Cos(mow.DtoR(90)/float64(n)) + r.WireDiameter
		}
		near(t, "untouched", r.Untouched, want)
	}
}

func TestHelicalParity(t *testing.T) {
	for _, n := range []int{14, 15} {
		h := helicalB
		h.N = n
		r, err := h.Solve()
		if err != nil {
			t.Fatal(err)
		}
		want := r.WireCenterDiameter + r.WireDiameter
		if n%2 != 0 {
			want /= 2
		}
		near(t, "untouched", r.Untouched, want)
	}
}

func TestZeroThinning(t *testing.T) {
	sr, err := spurA.Thinned(0).Solve()
	if err != nil {
		t.Fatal(err)
	}
	if sr.Reduction != 0 || sr.Measurement != sr.Untouched {
		t.Errorf("spur: reduction=%g measurement=%g untouched=%g", sr.Reduction, sr.Measurement, sr.Untouched)
	}
	hr, err := helicalB.Thinned(0).Solve()
	if err != nil {
		t.Fatal(err)
	}
	if hr.Reduction != 0 || hr.Measurement != hr.Untouched {
		t.Errorf("helical: reduction=%g measurement=%g untouched=%g", hr.Reduction, hr.Measurement, hr.Untouched)
	}
}

func TestHelixTowardsZero(t *testing.T) {
	h := Helical{N: 30, P: 6, PA: 20, Helix: 1e-9}
	r, err := h.Solve()
	if err != nil {
		t.Fatal(err)
	}
	near(t, "normal pitch", r.NormalPitch, h.P)
	near(t, "normal thickness", r.NormalThickness, ToothThickness(h.P))
	near(t, "normal pressure angle", r.NormalPressureAngle, mow.DtoR(h.PA))
}

func TestInvalidInput(t *testing.T) {
	for _, g := range []mow.Measurer{
		Spur{N: 0, P: 3, PA: 20},
		Spur{N: -4, P: 3, PA: 20},
		Spur{N: 20, P: 0, PA: 20},
		Spur{N: 20, P: -3, PA: 20},
		Spur{N: 20, P: math.Inf(1), PA: 20},
		Spur{N: 20, P: math.NaN(), PA: 20},
		Spur{N: 20, P: 3, PA: 90},
		Spur{N: 20, P: 3, PA: -90},
		Spur{N: 20, P: 3, PA: math.NaN()},
		Spur{N: 20, P: 3, PA: 20, Thinning: -0.001},
		Spur{N: 20, P: 3, PA: 20, Thinning: math.Inf(1)},
		Helical{N: 20, P: 3, PA: 20, Helix: 0},
		Helical{N: 20, P: 3, PA: 20, Helix: 90},
		Helical{N: 20, P: 3, PA: 20, Helix: -90.5},
		Helical{N: 0, P: 3, PA: 20, Helix: 30},
		Helical{N: 20, P: 3, PA: 20, Helix: 30, Thinning: -1},
	} {
		m, err := g.Measure()
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%+v: want invalid input error, got %v", g, err)
		}
		if m != 0 {
			t.Errorf("%+v: want no result, got %g", g, m)
		}
	}
}

func TestNegativeResult(t *testing.T) {
	m, err := spurA.Thinned(100).Measure()
	if !errors.Is(err, ErrNegativeResult) {
		t.Fatalf("want negative result error, got %v", err)
	}
	if !(m < 0) {
		t.Errorf("negative measurement must not be clamped, got %g", m)
	}
	m, err = helicalB.Thinned(10).Measure()
	if !errors.Is(err, ErrNegativeResult) || !(m < 0) {
		t.Errorf("helical: got %g, %v", m, err)
	}
}

func TestWireCenters(t *testing.T) {
	for _, n := range []int{54, 55, 7, 8} {
		s := spurA
		s.N = n
		r, err := s.Solve()
		if err != nil {
			t.Fatal(err)
		}
		c, err := s.WireCenters()
		if err != nil {
			t.Fatal(err)
		}
		if c[0].Y != c[1].Y {
			t.Errorf("N=%d: wires not level: %v", n, c)
		}
		near(t, "wire radius", r2.Norm(c[0]), r.WireCenterDiameter/2)
		near(t, "span over wires", r2.Norm(r2.Sub(c[0], c[1]))+r.WireDiameter, r.Untouched)
		if n%2 == 0 && c[0].Y != 0 {
			t.Errorf("N=%d: even gear wires must be diametrically opposed, got %v", n, c)
		}
	}
	if _, err := (Spur{}).WireCenters(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("want invalid input, got %v", err)
	}
}

func TestInvoluteFlank(t *testing.T) {
	r, err := spurA.Solve()
	if err != nil {
		t.Fatal(err)
	}
	rb := r.BaseDiameter / 2
	ro := spurA.OutsideDiameter() / 2
	pts, err := InvoluteFlank(rb, ro, 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 50 {
		t.Fatalf("got %d points", len(pts))
	}
	near(t, "flank start", r2.Norm(pts[0]), rb)
	near(t, "flank end", r2.Norm(pts[len(pts)-1]), ro)
	// The flank crosses the pitch circle at a polar angle equal to the involute of the pressure angle.
	pitch, err := InvoluteFlank(rb, r.PitchDiameter/2, 2)
	if err != nil {
		t.Fatal(err)
	}
	near(t, "pitch point polar angle", math.Atan2(pitch[1].Y, pitch[1].X), r.InvPressureAngle)
	for i := 1; i < len(pts); i++ {
		if r2.Norm(pts[i]) <= r2.Norm(pts[i-1]) {
			t.Fatalf("flank radius not increasing at %d", i)
		}
	}
	for _, bad := range []struct {
		rb, ro float64
		n      int
	}{{0, 1, 10}, {2, 1, 10}, {1, 2, 1}} {
		if _, err := InvoluteFlank(bad.rb, bad.ro, bad.n); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%+v: want invalid input, got %v", bad, err)
		}
	}
}
