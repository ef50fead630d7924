package noise

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/params"
)

// zeroSource yields 0.5 forever, which Fill maps to noise samples of
// exactly 0. With silent noise the output exposes the ramp weights:
// for DC input of 1, out[i] == 1 - weight[i].
type zeroSource struct{}

func (zeroSource) Float64() float64 { return 0.5 }

// countingSource counts draws so tests can assert the bypass path never
// touches the generator.
type countingSource struct {
	draws int
}

func (s *countingSource) Float64() float64 {
	s.draws++
	return 0.5
}

func testConfig() core.ProcessorConfig {
	return core.ApplyProcessorOptions(core.WithSampleRate(44100), core.WithBlockSize(512))
}

func newTestState(t *testing.T, src Source) *ChannelState {
	t.Helper()

	st, err := NewChannelState(2048, WithRandomSource(src))
	if err != nil {
		t.Fatalf("NewChannelState() error = %v", err)
	}

	return st
}

func seededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

func loadedWhiteNoise(t *testing.T, drywet, gain, filter float64) *Effect {
	t.Helper()

	e := NewWhiteNoise()
	err := e.LoadParameters(params.Set{
		ParamDryWet: params.Constant(drywet),
		ParamGain:   params.Constant(gain),
		ParamFilter: params.Constant(filter),
	})
	if err != nil {
		t.Fatalf("LoadParameters() error = %v", err)
	}

	return e
}

func loadedNoiseColor(t *testing.T, mix, res float64) *Effect {
	t.Helper()

	e := NewNoiseColor()
	err := e.LoadParameters(params.Set{
		ParamMix: params.Constant(mix),
		ParamRes: params.Constant(res),
	})
	if err != nil {
		t.Fatalf("LoadParameters() error = %v", err)
	}

	return e
}

func blockRMS(buf []float64) float64 {
	var sum float64
	for _, v := range buf {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(buf)))
}

func dcBuf(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
