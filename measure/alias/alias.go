// Package alias inspects the spectrum of a discrete sample set.
//
// The dominant bin of an undersampled signal sits at the folded (apparent)
// frequency rather than the model frequency, which makes the effect of a too
// low sampling rate directly visible.
package alias

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by Analyze.
var (
	ErrEmptyInput        = errors.New("alias: input signal is empty")
	ErrInvalidSampleRate = errors.New("alias: sample rate must be positive")
)

// Config holds spectrum analysis parameters.
type Config struct {
	// SampleRate is the rate the input was sampled at, in Hz.
	SampleRate float64

	// FFTSize overrides the transform size. When zero, or smaller than the
	// input, the next power of two of the input length is used.
	FFTSize int
}

// Result holds the magnitude spectrum of a sample set and its dominant
// component.
type Result struct {
	// Spectrum contains magnitudes for the non-negative-frequency bins
	// [0..Nyquist].
	Spectrum []float64

	// BinWidth is the frequency resolution in Hz per bin.
	BinWidth float64

	// PeakFreq is the frequency of the strongest non-DC bin.
	PeakFreq float64

	// PeakLevel is the magnitude at PeakFreq.
	PeakLevel float64
}

// Analyze computes the magnitude spectrum of a sampled signal and locates its
// dominant non-DC component.
//
// The input is Hann-windowed and zero-padded to a power-of-two FFT size.
func Analyze(samples []float64, cfg Config) (Result, error) {
	if len(samples) == 0 {
		return Result{}, ErrEmptyInput
	}

	if cfg.SampleRate <= 0 {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidSampleRate, cfg.SampleRate)
	}

	fftSize := cfg.FFTSize
	if fftSize < len(samples) {
		fftSize = nextPowerOf2(len(samples))
	}

	n := len(samples)
	in := make([]complex128, fftSize)

	for i, v := range samples {
		w := 1.0
		if n > 1 {
			// Hann window, symmetric form.
			w = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		}

		in[i] = complex(v*w, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("alias: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("alias: forward FFT failed: %w", err)
	}

	binCount := fftSize/2 + 1

	re := make([]float64, binCount)
	im := make([]float64, binCount)

	for i := 0; i < binCount; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, binCount)
	vecmath.Magnitude(mag, re, im)

	res := Result{
		Spectrum: mag,
		BinWidth: cfg.SampleRate / float64(fftSize),
	}

	if binCount < 2 {
		return res, nil
	}

	peakBin := 1
	for i := 2; i < binCount; i++ {
		if mag[i] > mag[peakBin] {
			peakBin = i
		}
	}

	res.PeakFreq = float64(peakBin) * res.BinWidth
	res.PeakLevel = mag[peakBin]

	return res, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
