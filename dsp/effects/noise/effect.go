package noise

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-noise/dsp/control"
	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/filter/design"
	"github.com/cwbudde/algo-noise/dsp/params"
)

const (
	// weightEpsilon is the audibility threshold: when both the current
	// and previous mix weight are at or below it, the wet path is
	// skipped entirely and the input is copied through.
	weightEpsilon = 1e-4

	// drywetDeadzone suppresses controller jitter around the rest
	// position of the mix controls.
	drywetDeadzone = 0.01

	// White Noise sweeps both corners over the near-full audio range
	// with a linear curve.
	whiteMinFreq = 17.0
	whiteMaxFreq = 22050.0

	// Noise Color sweeps logarithmically over a narrower range and
	// shares one resonance control between both filters.
	colorMinFreq = 100.0
	colorMaxFreq = 22050.0

	minResonance     = 0.4
	maxResonance     = 4.0
	defaultResonance = design.DefaultQ

	// minCornerHz and the Nyquist guard keep retuned corners inside
	// the valid design range at any engine sample rate.
	minCornerHz       = 10.0
	nyquistGuardRatio = 0.49
)

// frame is the per-block control snapshot: everything the signal path
// needs, derived fresh from the parameter reads at block start.
type frame struct {
	weight        float64
	hpHz, lpHz, q float64
	postGain      float64
}

// variant is the control policy distinguishing the two effects: how raw
// readings become a mix weight and filter corners, and how the ramp
// target is persisted for the next block.
type variant interface {
	bind(set params.Set) error
	frame(enable EnableState) frame
	storePrevious(st *ChannelState, f frame, enable EnableState)
}

// Effect blends generated white noise with the dry input, shaping the
// noise through a high-pass/low-pass pair. One Effect may serve many
// channels; all mutable per-channel state lives in ChannelState.
type Effect struct {
	manifest Manifest
	variant  variant
	loaded   bool
}

// NewWhiteNoise returns the White Noise variant: unipolar dry/wet with
// separate gain and a linear filter-sweep control.
func NewWhiteNoise() *Effect {
	return &Effect{
		manifest: whiteNoiseManifest(),
		variant:  &whiteNoiseVariant{},
	}
}

// NewNoiseColor returns the Noise Color variant: bipolar mix around a
// dry center, logarithmic corner sweeps and a shared resonance control.
func NewNoiseColor() *Effect {
	return &Effect{
		manifest: noiseColorManifest(),
		variant:  &noiseColorVariant{},
	}
}

// Manifest returns the host registration descriptor.
func (e *Effect) Manifest() Manifest {
	return e.manifest
}

// LoadParameters binds every declared parameter to the supplied set.
// A missing id is a configuration error surfaced here, at load time;
// the per-block path assumes bindings already succeeded.
func (e *Effect) LoadParameters(set params.Set) error {
	if err := e.variant.bind(set); err != nil {
		return fmt.Errorf("noise: load %s: %w", e.manifest.ID, err)
	}

	e.loaded = true

	return nil
}

// ProcessChannel processes one block for one channel, writing exactly
// len(in) samples to out. in and out must be distinct buffers of equal
// length. The call never blocks, locks or allocates. The features
// argument is accepted for host compatibility and unused here.
func (e *Effect) ProcessChannel(
	st *ChannelState,
	in, out []float64,
	cfg core.ProcessorConfig,
	enable EnableState,
	_ FeatureState,
) error {
	if !e.loaded {
		return fmt.Errorf("noise: %s: parameters not loaded", e.manifest.ID)
	}
	if st == nil {
		return fmt.Errorf("noise: nil channel state")
	}
	if len(out) != len(in) {
		return fmt.Errorf("noise: buffer length mismatch: in=%d out=%d", len(in), len(out))
	}
	if len(in) > st.MaxBlockSize() {
		return fmt.Errorf("noise: block of %d exceeds channel capacity %d", len(in), st.MaxBlockSize())
	}
	if cfg.SampleRate <= 0 {
		return fmt.Errorf("noise: sample rate must be > 0: %g", cfg.SampleRate)
	}
	if len(in) == 0 {
		return nil
	}

	f := e.variant.frame(enable)

	if f.weight <= weightEpsilon && st.previousWeight <= weightEpsilon {
		// Inaudible in this block and the last: skip noise generation
		// and filtering entirely.
		copy(out, in)
	} else {
		e.processActive(st, in, out, cfg.SampleRate, f)
	}

	e.variant.storePrevious(st, f, enable)

	return nil
}

func (e *Effect) processActive(st *ChannelState, in, out []float64, sampleRate float64, f frame) {
	n := len(in)

	// Corners may move every block, so coefficients are recomputed
	// unconditionally; stale coefficients would glitch under parameter
	// automation. The delay lines persist across the update.
	guard := sampleRate * nyquistGuardRatio
	hpHz := core.Clamp(f.hpHz, minCornerHz, guard)
	lpHz := core.Clamp(f.lpHz, minCornerHz, guard)
	st.highpass.SetCoefficients(design.Highpass(hpHz, f.q, sampleRate))
	st.lowpass.SetCoefficients(design.Lowpass(lpHz, f.q, sampleRate))

	noiseBuf := st.noiseBuf[:n]
	filtered := st.filteredBuf[:n]

	st.gen.Fill(noiseBuf)
	st.highpass.ProcessBlockTo(filtered, noiseBuf)
	st.lowpass.ProcessBlock(filtered)

	ramp := NewRamp(st.previousWeight, f.weight, n)
	if f.postGain == 1 {
		for i := 0; i < n; i++ {
			w := ramp.At(i)
			out[i] = in[i]*(1-w) + filtered[i]*w
		}
		return
	}
	for i := 0; i < n; i++ {
		w := ramp.At(i)
		out[i] = (in[i]*(1-w) + filtered[i]*w) * f.postGain
	}
}

// whiteNoiseVariant implements the unipolar control policy.
type whiteNoiseVariant struct {
	drywet params.Control
	gain   params.Control
	filter params.Control
}

func (v *whiteNoiseVariant) bind(set params.Set) error {
	var err error
	if v.drywet, err = set.Lookup(ParamDryWet); err != nil {
		return err
	}
	if v.gain, err = set.Lookup(ParamGain); err != nil {
		return err
	}
	if v.filter, err = set.Lookup(ParamFilter); err != nil {
		return err
	}

	return nil
}

func (v *whiteNoiseVariant) frame(EnableState) frame {
	drywet := control.ApplyDeadzone(v.drywet.Value(), drywetDeadzone, 1)

	filter := v.filter.Value()
	hpHz, lpHz := whiteMinFreq, whiteMaxFreq
	if filter < 0.5 {
		hpHz = control.CurveLinear.Map(filter*2, whiteMinFreq, whiteMaxFreq)
	} else {
		lpHz = control.CurveLinear.Map((filter-0.5)*2, whiteMinFreq, whiteMaxFreq)
	}

	return frame{
		weight:   drywet,
		hpHz:     hpHz,
		lpHz:     lpHz,
		q:        design.DefaultQ,
		postGain: v.gain.Value(),
	}
}

func (v *whiteNoiseVariant) storePrevious(st *ChannelState, f frame, enable EnableState) {
	if enable == Disabling {
		// Force the fade target to silence: the next block, if any,
		// ramps down instead of holding the last audible weight.
		st.previousWeight = 0
		return
	}

	st.previousWeight = f.weight
}

// noiseColorVariant implements the bipolar control policy.
type noiseColorVariant struct {
	mix params.Control
	res params.Control
}

func (v *noiseColorVariant) bind(set params.Set) error {
	var err error
	if v.mix, err = set.Lookup(ParamMix); err != nil {
		return err
	}
	if v.res, err = set.Lookup(ParamRes); err != nil {
		return err
	}

	return nil
}

func (v *noiseColorVariant) frame(enable EnableState) frame {
	raw := v.mix.Value()

	// While disabling, the deadzoned mix is pinned to the dry center
	// regardless of the raw reading, so disable always fades to dry.
	deadzoned := 0.5
	if enable != Disabling {
		deadzoned = control.CenterDeadzone(raw, drywetDeadzone)
	}

	weight := math.Min(1, math.Abs(deadzoned-0.5)*2)

	// The sweep side is keyed on the raw reading, not the deadzoned
	// one: inside the dead zone the weight is zero anyway, and using
	// raw keeps the corner continuous across the zone edges.
	hpHz, lpHz := colorMinFreq, colorMaxFreq
	if raw < 0.5 {
		lpHz = control.CurveLogarithmic.Map(raw*2, colorMinFreq, colorMaxFreq)
	} else {
		hpHz = control.CurveLogarithmic.Map((raw-0.5)*2, colorMinFreq, colorMaxFreq)
	}

	return frame{
		weight:   weight,
		hpHz:     hpHz,
		lpHz:     lpHz,
		q:        core.Clamp(v.res.Value(), minResonance, maxResonance),
		postGain: 1,
	}
}

func (v *noiseColorVariant) storePrevious(st *ChannelState, f frame, _ EnableState) {
	// Unconditional: the Disabling case already produced weight 0
	// through the pinned center, so storing the current values covers
	// the fade without a separate reset.
	st.previousWeight = f.weight
	st.previousQ = f.q
}
