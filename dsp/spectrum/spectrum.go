// Package spectrum provides magnitude-spectrum analysis helpers used to
// observe how the shaping filters color generated noise.
package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Magnitude returns |X[k]| for the one-sided spectrum of samples,
// zero-padding to the next power of two. The result has fftSize/2+1
// bins; use BinFrequency to map bin indices to Hz.
func Magnitude(samples []float64) ([]float64, int, error) {
	if len(samples) == 0 {
		return nil, 0, fmt.Errorf("spectrum: input must not be empty")
	}

	fftSize := nextPowerOf2(len(samples))

	padded := make([]complex128, fftSize)
	for i, v := range samples {
		padded[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, 0, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, 0, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(freq[i])
		im[i] = imag(freq[i])
	}

	out := make([]float64, bins)
	vecmath.Magnitude(out, re, im)

	return out, fftSize, nil
}

// BinFrequency returns the center frequency in Hz of bin for the given
// FFT size and sample rate.
func BinFrequency(bin, fftSize int, sampleRate float64) float64 {
	if fftSize <= 0 {
		return 0
	}

	return float64(bin) * sampleRate / float64(fftSize)
}

// BandEnergy sums squared magnitudes of all bins whose center frequency
// falls in [loHz, hiHz).
func BandEnergy(mags []float64, fftSize int, sampleRate, loHz, hiHz float64) float64 {
	var sum float64
	for i, m := range mags {
		f := BinFrequency(i, fftSize, sampleRate)
		if f >= loHz && f < hiHz {
			sum += m * m
		}
	}

	return sum
}

// PeakBin returns the index of the largest magnitude bin.
func PeakBin(mags []float64) int {
	peak := 0
	for i, m := range mags {
		if m > mags[peak] {
			peak = i
		}
	}

	return peak
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}
