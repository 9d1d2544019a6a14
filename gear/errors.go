package gear

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput is returned before any computation when a gear
	// parameter lies outside its domain.
	ErrInvalidInput = errors.New("invalid gear input")
	// ErrNumericDomain is wrapped by a *StageError when an intermediate
	// quantity is not finite.
	ErrNumericDomain = errors.New("numeric domain error")
	// ErrNegativeResult is returned alongside the computed measurement when it
	// is not positive, i.e. the thinning allowance exceeds the nominal measurement.
	ErrNegativeResult = errors.New("measurement over wires is not positive")
)

// StageError names the calculation stage that produced a non-finite value.
type StageError struct {
	Stage string
	Value float64
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v (got %g)", e.Stage, e.Err, e.Value)
}

func (e *StageError) Unwrap() error { return e.Err }

// stages records the first non-finite intermediate of a calculation.
// Once an error is recorded later checks are no-ops.
type stages struct {
	err error
}

func (s *stages) check(stage string, v float64) float64 {
	if s.err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
		s.err = &StageError{Stage: stage, Value: v, Err: ErrNumericDomain}
	}
	return v
}

// nonzero records a division-by-zero hazard for divisor v.
func (s *stages) nonzero(stage string, v float64) float64 {
	if s.err == nil && v == 0 {
		s.err = &StageError{Stage: stage, Value: v, Err: ErrNumericDomain}
	}
	return s.check(stage, v)
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidInput}, args...)...)
}

func validPitch(p float64) error {
	if !(p > 0) || math.IsInf(p, 0) {
		return invalid("diametral pitch must be positive and finite, got %g", p)
	}
	return nil
}

func validTeeth(n int) error {
	if n < 1 {
		return invalid("tooth count must be at least 1, got %d", n)
	}
	return nil
}

// validAngle checks an angle in degrees lies in (-90, 90).
func validAngle(name string, deg float64) error {
	if !(deg > -90 && deg < 90) {
		return invalid("%s must be in (-90, 90) degrees, got %g", name, deg)
	}
	return nil
}

func validThinning(t float64) error {
	if !(t >= 0) || math.IsInf(t, 0) {
		return invalid("teeth thinning must be non-negative and finite, got %g", t)
	}
	return nil
}

func negative(m float64) error {
	return fmt.Errorf("%w: got %g", ErrNegativeResult, m)
}
