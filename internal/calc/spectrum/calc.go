package spectrum

import (
	"errors"
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrInvalidInput marks signals the FFT cannot be applied to.
var ErrInvalidInput = errors.New("invalid input")

type Input struct {
	Samples    []float64 `json:"samples"`
	SamplingHz float64   `json:"sampling_hz"`
}

type Result struct {
	FrequencyHz    []float64 `json:"frequency_hz"`
	Amplitude      []float64 `json:"amplitude"`
	PSD            []float64 `json:"psd"`
	SampleCount    int       `json:"sample_count"`
	ResolutionHz   float64   `json:"resolution_hz"`
	MaxFrequencyHz float64   `json:"max_frequency_hz"`
	Notes          string    `json:"notes"`
}

// Calculate returns the single-sided amplitude spectrum and power spectral
// density of a uniformly sampled signal. An odd-length signal is truncated
// by one trailing sample so the bin layout stays even.
func Calculate(in Input) (Result, error) {
	if in.SamplingHz <= 0 {
		return Result{}, fmt.Errorf("non-positive sampling frequency: %w", ErrInvalidInput)
	}
	n := (len(in.Samples) / 2) * 2
	if n < 2 {
		return Result{}, fmt.Errorf("need at least two samples: %w", ErrInvalidInput)
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, in.Samples[:n])

	// Single-sided amplitude: |C_i| / n, interior bins doubled to fold in
	// the negative frequencies. DC and Nyquist have no mirror.
	amp := make([]float64, len(coeffs))
	for i, c := range coeffs {
		amp[i] = cmplx.Abs(c) / float64(n)
	}
	for i := 1; i < len(amp)-1; i++ {
		amp[i] *= 2
	}

	df := in.SamplingHz / float64(n)
	freq := make([]float64, len(coeffs))
	psd := make([]float64, len(coeffs))
	for i := range coeffs {
		freq[i] = df * float64(i)
		psd[i] = amp[i] * amp[i] / 2 / df
	}

	return Result{
		FrequencyHz:    freq,
		Amplitude:      amp,
		PSD:            psd,
		SampleCount:    n,
		ResolutionHz:   df,
		MaxFrequencyHz: in.SamplingHz / 2,
		Notes:          "Single-sided amplitude spectrum and PSD.",
	}, nil
}

// Peak returns the dominant bin, skipping DC so a standing offset does not
// mask the oscillatory content. Zero values for an empty result.
func (r Result) Peak() (freqHz, amplitude float64) {
	for i := 1; i < len(r.Amplitude); i++ {
		if r.Amplitude[i] > amplitude {
			freqHz = r.FrequencyHz[i]
			amplitude = r.Amplitude[i]
		}
	}
	return freqHz, amplitude
}
