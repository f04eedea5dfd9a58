// Package ratesweep evaluates both hold reconstructions across a set of
// sampling rates or model parameters and aggregates the error statistics.
package ratesweep

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-sampling/dsp/model"
	"github.com/cwbudde/algo-sampling/session"
)

// Errors returned by sweep validation.
var (
	ErrNoRates         = errors.New("ratesweep: at least one sampling rate is required")
	ErrNoParams        = errors.New("ratesweep: at least one model parameter is required")
	ErrInvalidRate     = errors.New("ratesweep: sampling rates must be positive")
	ErrInvalidDuration = errors.New("ratesweep: duration must be positive")
)

// Config describes a sampling-rate sweep for one signal model.
type Config struct {
	Type     model.Type
	Param    float64   // frequency in Hz or decay constant, must be positive
	Duration float64   // signal duration in seconds
	GridSize int       // evaluation grid resolution, 0 selects the session default
	Rates    []float64 // sampling rates to evaluate, in Hz
}

// Validate checks that the sweep parameters are valid.
func (c *Config) Validate() error {
	if c.Duration <= 0 {
		return ErrInvalidDuration
	}

	if len(c.Rates) == 0 {
		return ErrNoRates
	}

	for _, r := range c.Rates {
		if r <= 0 {
			return ErrInvalidRate
		}
	}

	return nil
}

// Point holds both reconstruction errors for a single sweep step.
type Point struct {
	Rate    float64 // sampling rate in Hz
	Param   float64 // model parameter used for this step
	Samples int
	ZOH     float64 // mean squared error of the zero-order hold
	FOH     float64 // mean squared error of the first-order hold
}

// Summary aggregates a sweep.
//
// On smooth models sampled below their characteristic rate MeanFOH tends to
// stay at or below MeanZOH; individual points may still invert.
type Summary struct {
	Points  []Point
	MeanZOH float64
	MeanFOH float64
}

// Run computes both reconstructions for every configured sampling rate.
func Run(cfg Config) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}

	var opts []session.Option
	if cfg.GridSize > 0 {
		opts = append(opts, session.WithGridSize(cfg.GridSize))
	}

	sum := Summary{Points: make([]Point, 0, len(cfg.Rates))}
	zoh := make([]float64, 0, len(cfg.Rates))
	foh := make([]float64, 0, len(cfg.Rates))

	for _, rate := range cfg.Rates {
		res, err := session.Compute(cfg.Type, cfg.Param, rate, cfg.Duration, opts...)
		if err != nil {
			return Summary{}, err
		}

		sum.Points = append(sum.Points, Point{
			Rate:    rate,
			Param:   cfg.Param,
			Samples: len(res.SampleTimes),
			ZOH:     res.ZOHError,
			FOH:     res.FOHError,
		})
		zoh = append(zoh, res.ZOHError)
		foh = append(foh, res.FOHError)
	}

	sum.MeanZOH = stat.Mean(zoh, nil)
	sum.MeanFOH = stat.Mean(foh, nil)

	return sum, nil
}

// FrequencyConfig describes a model-parameter sweep at a fixed sampling rate.
type FrequencyConfig struct {
	Type     model.Type
	Rate     float64   // sampling rate in Hz, must be positive
	Duration float64   // signal duration in seconds
	GridSize int       // evaluation grid resolution, 0 selects the session default
	Params   []float64 // model parameters to evaluate
}

// Validate checks that the sweep parameters are valid.
func (c *FrequencyConfig) Validate() error {
	if c.Duration <= 0 {
		return ErrInvalidDuration
	}

	if c.Rate <= 0 {
		return ErrInvalidRate
	}

	if len(c.Params) == 0 {
		return ErrNoParams
	}

	return nil
}

// RunFrequencies computes both reconstructions for every configured model
// parameter at a fixed sampling rate.
func RunFrequencies(cfg FrequencyConfig) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}

	var opts []session.Option
	if cfg.GridSize > 0 {
		opts = append(opts, session.WithGridSize(cfg.GridSize))
	}

	sum := Summary{Points: make([]Point, 0, len(cfg.Params))}
	zoh := make([]float64, 0, len(cfg.Params))
	foh := make([]float64, 0, len(cfg.Params))

	for _, param := range cfg.Params {
		res, err := session.Compute(cfg.Type, param, cfg.Rate, cfg.Duration, opts...)
		if err != nil {
			return Summary{}, err
		}

		sum.Points = append(sum.Points, Point{
			Rate:    cfg.Rate,
			Param:   param,
			Samples: len(res.SampleTimes),
			ZOH:     res.ZOHError,
			FOH:     res.FOHError,
		})
		zoh = append(zoh, res.ZOHError)
		foh = append(foh, res.FOHError)
	}

	sum.MeanZOH = stat.Mean(zoh, nil)
	sum.MeanFOH = stat.Mean(foh, nil)

	return sum, nil
}
