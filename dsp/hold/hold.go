package hold

import "errors"

// Errors returned by the reconstructors.
var (
	ErrNoSamples      = errors.New("hold: need at least one sample")
	ErrLengthMismatch = errors.New("hold: times and values must have equal length")
)

// ZeroOrder reconstructs a signal by holding each sample value constant until
// the next sample instant.
//
// For every grid point g the output is the value of the last sample at or
// before g: a step function constant on each half-open interval
// [times[i], times[i+1]). Grid points before the first sample hold the first
// value; points at or after the last sample instant hold the last value.
// Sample times and the grid must be ascending.
func ZeroOrder(times, values, grid []float64) ([]float64, error) {
	if len(times) != len(values) {
		return nil, ErrLengthMismatch
	}

	if len(times) == 0 {
		return nil, ErrNoSamples
	}

	out := make([]float64, len(grid))

	i := 0
	for j, g := range grid {
		for i+1 < len(times) && times[i+1] <= g {
			i++
		}

		out[j] = values[i]
	}

	return out, nil
}

// FirstOrder reconstructs a signal by linear interpolation between adjacent
// samples.
//
// For a grid point g between times[i] and times[i+1]:
//
//	out = values[i] + (values[i+1]-values[i]) / (times[i+1]-times[i]) * (g-times[i])
//
// Outside [times[0], times[n-1]] the nearest edge segment's slope is used to
// extrapolate linearly, not to clamp. With a single sample the output is that
// value everywhere. Sample times and the grid must be ascending.
func FirstOrder(times, values, grid []float64) ([]float64, error) {
	if len(times) != len(values) {
		return nil, ErrLengthMismatch
	}

	if len(times) == 0 {
		return nil, ErrNoSamples
	}

	out := make([]float64, len(grid))

	if len(times) == 1 {
		for j := range out {
			out[j] = values[0]
		}

		return out, nil
	}

	seg := 0
	last := len(times) - 2

	for j, g := range grid {
		for seg < last && g >= times[seg+1] {
			seg++
		}

		slope := (values[seg+1] - values[seg]) / (times[seg+1] - times[seg])
		out[j] = values[seg] + slope*(g-times[seg])
	}

	return out, nil
}
