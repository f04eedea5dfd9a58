package sampler

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidRate indicates a non-positive sampling rate.
var ErrInvalidRate = errors.New("sampler: sampling rate must be positive")

// Set holds uniformly spaced samples of a signal over a half-open interval.
type Set struct {
	Times  []float64 // sample instants, strictly increasing
	Values []float64 // signal value at each instant
	Period float64   // spacing between samples, 1/rate
}

// Len returns the number of samples in the set.
func (s Set) Len() int { return len(s.Times) }

// Sample evaluates fn at tStart + k*Ts for integer k >= 0 and Ts = 1/rate,
// keeping every instant strictly below tEnd (half-open interval).
//
// Instants are computed as k-multiples of the period rather than an
// accumulated sum, matching fixed-step range generation: no sample is emitted
// at or past tEnd. An empty interval yields an empty set, not an error.
func Sample(fn func(float64) float64, tStart, tEnd, rate float64) (Set, error) {
	if rate <= 0 {
		return Set{}, fmt.Errorf("%w: %v", ErrInvalidRate, rate)
	}

	ts := 1 / rate
	set := Set{Period: ts}

	if tEnd <= tStart {
		return set, nil
	}

	// Upper bound on the sample count; the loop guard trims any overshoot
	// from the rounded-up division.
	n := int(math.Ceil((tEnd - tStart) * rate))
	set.Times = make([]float64, 0, n)
	set.Values = make([]float64, 0, n)

	for k := 0; k < n; k++ {
		t := tStart + float64(k)*ts
		if t >= tEnd {
			break
		}

		set.Times = append(set.Times, t)
		set.Values = append(set.Values, fn(t))
	}

	return set, nil
}

// Grid returns n evenly spaced points spanning [start, end] inclusive.
// It returns nil for n < 2.
func Grid(start, end float64, n int) []float64 {
	if n < 2 {
		return nil
	}

	return floats.Span(make([]float64, n), start, end)
}
