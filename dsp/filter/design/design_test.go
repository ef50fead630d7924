package design

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/filter/biquad"
)

func rms(buf []float64) float64 {
	var sum float64
	for _, v := range buf {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(buf)))
}

func sine(freqHz, sampleRate float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = math.Sin(step * float64(i))
	}
	return out
}

func filteredRMS(c biquad.Coefficients, in []float64) float64 {
	s := biquad.NewSection(c)
	buf := make([]float64, len(in))
	copy(buf, in)
	s.ProcessBlock(buf)
	// Discard the transient before measuring.
	return rms(buf[len(buf)/2:])
}

func TestLowpassPassesLowAttenuatesHigh(t *testing.T) {
	const sampleRate = 48000
	c := Lowpass(1000, DefaultQ, sampleRate)

	low := filteredRMS(c, sine(100, sampleRate, 8192))
	high := filteredRMS(c, sine(10000, sampleRate, 8192))

	ref := rms(sine(100, sampleRate, 8192)[4096:])
	if math.Abs(low-ref)/ref > 0.05 {
		t.Fatalf("passband RMS %g deviates from %g", low, ref)
	}
	if high > 0.05*ref {
		t.Fatalf("stopband RMS %g insufficiently attenuated", high)
	}
}

func TestHighpassPassesHighAttenuatesLow(t *testing.T) {
	const sampleRate = 48000
	c := Highpass(1000, DefaultQ, sampleRate)

	high := filteredRMS(c, sine(10000, sampleRate, 8192))
	low := filteredRMS(c, sine(100, sampleRate, 8192))

	ref := rms(sine(10000, sampleRate, 8192)[4096:])
	if math.Abs(high-ref)/ref > 0.05 {
		t.Fatalf("passband RMS %g deviates from %g", high, ref)
	}
	if low > 0.05*ref {
		t.Fatalf("stopband RMS %g insufficiently attenuated", low)
	}
}

func TestCornerGainIsMinus3dB(t *testing.T) {
	const sampleRate = 48000
	c := Lowpass(1000, DefaultQ, sampleRate)

	corner := filteredRMS(c, sine(1000, sampleRate, 16384))
	ref := rms(sine(1000, sampleRate, 16384)[8192:])

	want := ref * core.DBToLinear(-3.01)
	if math.Abs(corner-want)/ref > 0.04 {
		t.Fatalf("corner RMS = %g, want about %g (-3 dB)", corner, want)
	}
}

func TestInvalidFrequencyYieldsZeroCoefficients(t *testing.T) {
	const sampleRate = 48000
	for _, freq := range []float64{0, -10, sampleRate / 2, sampleRate, math.NaN(), math.Inf(1)} {
		if c := Lowpass(freq, DefaultQ, sampleRate); c != (biquad.Coefficients{}) {
			t.Fatalf("Lowpass(%g) = %+v, want zero coefficients", freq, c)
		}
		if c := Highpass(freq, DefaultQ, sampleRate); c != (biquad.Coefficients{}) {
			t.Fatalf("Highpass(%g) = %+v, want zero coefficients", freq, c)
		}
	}
}

func TestInvalidQFallsBackToDefault(t *testing.T) {
	a := Lowpass(1000, 0, 48000)
	b := Lowpass(1000, DefaultQ, 48000)
	if a != b {
		t.Fatal("q <= 0 should use the default quality factor")
	}

	c := Lowpass(1000, math.NaN(), 48000)
	if c != b {
		t.Fatal("NaN q should use the default quality factor")
	}
}

func TestResonancePeaksNearCorner(t *testing.T) {
	const sampleRate = 48000
	flat := Lowpass(1000, DefaultQ, sampleRate)
	peaked := Lowpass(1000, 4, sampleRate)

	in := sine(1000, sampleRate, 16384)
	if filteredRMS(peaked, in) <= filteredRMS(flat, in) {
		t.Fatal("high Q should emphasize the corner frequency")
	}
}
