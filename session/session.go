// Package session orchestrates one full sample/reconstruct/measure cycle per
// parameter change. The display surface calls [Compute] with the current
// signal type, parameter and sampling rate and renders the returned arrays.
package session

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-sampling/dsp/hold"
	"github.com/cwbudde/algo-sampling/dsp/model"
	"github.com/cwbudde/algo-sampling/dsp/sampler"
	"github.com/cwbudde/algo-sampling/measure/reconerr"
)

const defaultGridSize = 1000

// ErrInvalidDuration indicates a non-positive signal duration.
var ErrInvalidDuration = errors.New("session: duration must be positive")

type config struct {
	gridSize int
}

// Option configures a computation.
type Option func(*config)

// WithGridSize overrides the evaluation grid resolution.
// Values below 2 are ignored.
func WithGridSize(n int) Option {
	return func(cfg *config) {
		if n > 1 {
			cfg.gridSize = n
		}
	}
}

// Result bundles everything needed to render one parameter combination.
type Result struct {
	Grid         []float64 // evaluation grid spanning [0, duration]
	Continuous   []float64 // reference signal evaluated on the grid
	SampleTimes  []float64
	SampleValues []float64
	SamplePeriod float64
	ZOH          []float64 // zero-order hold reconstruction on the grid
	FOH          []float64 // first-order hold reconstruction on the grid
	ZOHError     float64   // mean squared error of the ZOH reconstruction
	FOHError     float64   // mean squared error of the FOH reconstruction
}

// Compute evaluates signal type typ with parameter param on a high-resolution
// grid over [0, duration], samples the same function at rate over
// [0, duration), reconstructs the samples with both hold methods onto the grid
// and quantifies both reconstruction errors against the reference.
//
// The call is pure: it keeps no state between invocations and every call
// returns fresh slices, so repeated calls with different parameters carry no
// residue from prior calls. Errors from the model or the sampler propagate
// unchanged; no partial result is returned on error.
func Compute(typ model.Type, param, rate, duration float64, opts ...Option) (Result, error) {
	if duration <= 0 {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidDuration, duration)
	}

	cfg := config{gridSize: defaultGridSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	fn, err := model.Func(typ, param)
	if err != nil {
		return Result{}, err
	}

	res := Result{Grid: sampler.Grid(0, duration, cfg.gridSize)}

	res.Continuous = make([]float64, len(res.Grid))
	for i, t := range res.Grid {
		res.Continuous[i] = fn(t)
	}

	set, err := sampler.Sample(fn, 0, duration, rate)
	if err != nil {
		return Result{}, err
	}

	res.SampleTimes = set.Times
	res.SampleValues = set.Values
	res.SamplePeriod = set.Period

	res.ZOH, err = hold.ZeroOrder(set.Times, set.Values, res.Grid)
	if err != nil {
		return Result{}, err
	}

	res.FOH, err = hold.FirstOrder(set.Times, set.Values, res.Grid)
	if err != nil {
		return Result{}, err
	}

	res.ZOHError, err = reconerr.MSE(res.Continuous, res.ZOH)
	if err != nil {
		return Result{}, err
	}

	res.FOHError, err = reconerr.MSE(res.Continuous, res.FOH)
	if err != nil {
		return Result{}, err
	}

	return res, nil
}
