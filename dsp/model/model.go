package model

import (
	"errors"
	"fmt"
	"math"
)

// Type identifies an analog signal model.
type Type int

const (
	// TypeSine is a unit-amplitude sine wave; the parameter is the frequency in Hz.
	TypeSine Type = iota
	// TypeTriangle is a unit-amplitude triangle wave; the parameter is the frequency in Hz.
	TypeTriangle
	// TypeExponential is a decaying exponential; the parameter is the decay constant.
	TypeExponential
)

// Errors returned by model functions.
var (
	ErrUnknownType  = errors.New("model: unknown signal type")
	ErrInvalidParam = errors.New("model: parameter must be positive")
)

// Types returns the closed set of supported signal types.
func Types() []Type {
	return []Type{TypeSine, TypeTriangle, TypeExponential}
}

// String returns the canonical name of the signal type.
func (t Type) String() string {
	switch t {
	case TypeSine:
		return "sine"
	case TypeTriangle:
		return "triangle"
	case TypeExponential:
		return "exponential"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType resolves a signal type from its canonical name.
func ParseType(name string) (Type, error) {
	switch name {
	case "sine":
		return TypeSine, nil
	case "triangle":
		return TypeTriangle, nil
	case "exponential":
		return TypeExponential, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

// Func returns the time-domain evaluator for signal type t.
//
// The evaluator is pure and defined (finite) for all non-negative times.
// The parameter must be positive.
func Func(t Type, param float64) (func(float64) float64, error) {
	if param <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParam, param)
	}

	switch t {
	case TypeSine:
		// x(t) = sin(2*pi*f*t)
		return func(ti float64) float64 {
			return math.Sin(2 * math.Pi * param * ti)
		}, nil
	case TypeTriangle:
		// Unit amplitude, exactly periodic with period 1/f:
		//
		//	x(t) = 2*|2*(f*t - floor(f*t + 0.5))| - 1
		return func(ti float64) float64 {
			x := param * ti
			return 2*math.Abs(2*(x-math.Floor(x+0.5))) - 1
		}, nil
	case TypeExponential:
		// x(t) = exp(-a*t): unity at t=0, decays towards zero.
		return func(ti float64) float64 {
			return math.Exp(-param * ti)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
}

// Evaluate computes the amplitude of signal type t at time ti.
func Evaluate(t Type, ti, param float64) (float64, error) {
	fn, err := Func(t, param)
	if err != nil {
		return 0, err
	}

	return fn(ti), nil
}

// EvaluateAll evaluates signal type t at every time in times.
func EvaluateAll(t Type, times []float64, param float64) ([]float64, error) {
	fn, err := Func(t, param)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(times))
	for i, ti := range times {
		out[i] = fn(ti)
	}

	return out, nil
}
