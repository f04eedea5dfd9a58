// Package reconerr quantifies the deviation of a reconstructed signal from
// its reference on a shared time grid.
package reconerr

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ErrLengthMismatch indicates reference and test signals of different length.
var ErrLengthMismatch = errors.New("reconerr: signals must have equal length")

// MSE returns the mean squared error between a reference signal and a test
// signal on a shared time grid:
//
//	MSE = (1/N) * sum_i (reference[i] - test[i])^2
//
// Summation is Kahan-compensated for stability on long grids. The result is
// zero iff the signals are pointwise equal. Empty inputs yield 0.
func MSE(reference, test []float64) (float64, error) {
	if len(reference) != len(test) {
		return 0, ErrLengthMismatch
	}

	if len(reference) == 0 {
		return 0, nil
	}

	var sum, c float64
	for i, r := range reference {
		d := r - test[i]
		y := d*d - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(reference)), nil
}

// RMSE returns the root of the mean squared error.
func RMSE(reference, test []float64) (float64, error) {
	mse, err := MSE(reference, test)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(mse), nil
}

// PeakError returns the largest absolute pointwise deviation.
func PeakError(reference, test []float64) (float64, error) {
	if len(reference) != len(test) {
		return 0, ErrLengthMismatch
	}

	if len(reference) == 0 {
		return 0, nil
	}

	diff := make([]float64, len(reference))
	for i, r := range reference {
		diff[i] = r - test[i]
	}

	return vecmath.MaxAbs(diff), nil
}

// SignalToErrorDB returns the ratio of reference energy to error energy in
// decibels (10*log10 convention).
//
// It returns +Inf for an exact reconstruction and -Inf for an all-zero
// reference.
func SignalToErrorDB(reference, test []float64) (float64, error) {
	if len(reference) != len(test) {
		return 0, ErrLengthMismatch
	}

	if len(reference) == 0 {
		return 0, nil
	}

	diff := make([]float64, len(reference))
	for i, r := range reference {
		diff[i] = r - test[i]
	}

	signal := vecmath.DotProduct(reference, reference)
	noise := vecmath.DotProduct(diff, diff)

	if signal == 0 {
		return math.Inf(-1), nil
	}

	if noise == 0 {
		return math.Inf(1), nil
	}

	return 10 * math.Log10(signal/noise), nil
}
