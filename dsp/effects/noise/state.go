package noise

import (
	"fmt"

	"github.com/cwbudde/algo-noise/dsp/filter/biquad"
)

// EnableState is the host-driven lifecycle of an effect slot.
type EnableState int

const (
	// Enabled means the effect processes normally.
	Enabled EnableState = iota
	// Disabling means this block is the fade-out toward bypass: the
	// stored ramp target is forced to the neutral value so the next
	// block glides to silence instead of cutting or holding.
	Disabling
	// Disabled means the host has fully bypassed the slot.
	Disabled
)

// String returns the state name.
func (e EnableState) String() string {
	switch e {
	case Enabled:
		return "enabled"
	case Disabling:
		return "disabling"
	case Disabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// FeatureState carries optional per-channel host features (tempo or
// gain envelopes) that some effects consume. The noise effects accept
// it for interface compatibility and ignore it.
type FeatureState struct {
	Tempo    float64
	HasTempo bool
}

// ChannelState is the per-channel persistent state of the effect:
// ramp continuity, filter memory, the channel-owned noise source and
// preallocated scratch buffers. It is exclusively owned by one channel
// and must only be touched by the thread driving that channel's blocks.
type ChannelState struct {
	previousWeight float64
	previousQ      float64

	gen         *Generator
	noiseBuf    []float64
	filteredBuf []float64

	highpass *biquad.Section
	lowpass  *biquad.Section
}

type stateConfig struct {
	source Source
}

// StateOption configures a ChannelState at construction.
type StateOption func(*stateConfig) error

// WithRandomSource substitutes the channel's noise source. Intended for
// deterministic tests and offline rendering.
func WithRandomSource(src Source) StateOption {
	return func(cfg *stateConfig) error {
		if src == nil {
			return fmt.Errorf("noise: random source must not be nil")
		}
		cfg.source = src
		return nil
	}
}

// NewChannelState allocates all per-channel resources for blocks of up
// to maxBlockSize samples. The per-block path never allocates; blocks
// larger than maxBlockSize are rejected by ProcessChannel.
func NewChannelState(maxBlockSize int, opts ...StateOption) (*ChannelState, error) {
	if maxBlockSize <= 0 {
		return nil, fmt.Errorf("noise: max block size must be > 0: %d", maxBlockSize)
	}

	cfg := stateConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &ChannelState{
		gen:         NewGenerator(cfg.source),
		noiseBuf:    make([]float64, maxBlockSize),
		filteredBuf: make([]float64, maxBlockSize),
		highpass:    biquad.NewSection(biquad.Coefficients{}),
		lowpass:     biquad.NewSection(biquad.Coefficients{}),
	}, nil
}

// MaxBlockSize returns the largest block the state can process.
func (st *ChannelState) MaxBlockSize() int {
	return len(st.noiseBuf)
}

// PreviousWeight returns the mix weight stored at the end of the last
// block, i.e. the ramp start of the next one.
func (st *ChannelState) PreviousWeight() float64 {
	return st.previousWeight
}

// PreviousResonance returns the last resonance applied by the Noise
// Color variant. Informational; it is not re-applied without a fresh
// parameter read.
func (st *ChannelState) PreviousResonance() float64 {
	return st.previousQ
}

// Reset clears ramp and filter memory, as after a fresh instantiation.
// The noise source is kept; its sequence position is not part of the
// audible state.
func (st *ChannelState) Reset() {
	st.previousWeight = 0
	st.previousQ = 0
	st.highpass.Reset()
	st.lowpass.Reset()
}
