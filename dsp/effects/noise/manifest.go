package noise

// Scaling hints how a host UI should map its knob travel onto the
// declared parameter range.
type Scaling int

const (
	// ScalingLinear maps knob travel linearly onto [Min, Max].
	ScalingLinear Scaling = iota
	// ScalingLogarithmic maps knob travel logarithmically, for
	// frequency-like parameters where equal movements should feel
	// like equal perceptual steps.
	ScalingLogarithmic
)

// String returns the scaling name.
func (s Scaling) String() string {
	if s == ScalingLogarithmic {
		return "logarithmic"
	}

	return "linear"
}

// ParameterSpec declares one control in an effect manifest.
type ParameterSpec struct {
	ID          string
	Name        string
	Description string
	Default     float64
	Min         float64
	Max         float64
	Scaling     Scaling
	// Linked marks parameters a host may bind to its metaknob.
	Linked bool
}

// Manifest describes an effect for host registration. It is consumed
// once at load time, never per block.
type Manifest struct {
	ID              string
	Name            string
	Author          string
	Version         string
	Description     string
	RampsFromDry    bool
	MetaknobDefault float64
	Parameters      []ParameterSpec
}

// Parameter returns the declared spec for id.
func (m Manifest) Parameter(id string) (ParameterSpec, bool) {
	for _, p := range m.Parameters {
		if p.ID == id {
			return p, true
		}
	}

	return ParameterSpec{}, false
}

const (
	// ParamDryWet is the unipolar crossfade control of the White Noise
	// variant: 0 is fully dry, 1 fully wet.
	ParamDryWet = "dry_wet"
	// ParamGain is the output gain control of the White Noise variant.
	ParamGain = "gain"
	// ParamFilter is the filter-sweep control of the White Noise
	// variant: below 0.5 sweeps the high-pass corner, at or above 0.5
	// the low-pass corner.
	ParamFilter = "filter"
	// ParamMix is the bipolar color control of the Noise Color
	// variant: 0.5 is fully dry, the extremes are full wet with a dark
	// color below center and a bright one above.
	ParamMix = "mix"
	// ParamRes is the shared resonance (Q) control of the Noise Color
	// variant.
	ParamRes = "res"
)

func whiteNoiseManifest() Manifest {
	return Manifest{
		ID:              "com.cwbudde.effects.whitenoise",
		Name:            "White Noise",
		Author:          "algo-noise contributors",
		Version:         "1.0",
		Description:     "Mix white noise with the input signal",
		RampsFromDry:    true,
		MetaknobDefault: 0.5,
		Parameters: []ParameterSpec{
			{
				ID:          ParamDryWet,
				Name:        "Dry/Wet",
				Description: "Crossfade the noise with the dry signal",
				Default:     1, Min: 0, Max: 1,
				Scaling: ScalingLogarithmic,
			},
			{
				ID:          ParamGain,
				Name:        "Gain",
				Description: "Gain for white noise",
				Default:     1, Min: 0, Max: 1,
				Scaling: ScalingLinear,
			},
			{
				ID:          ParamFilter,
				Name:        "Filter",
				Description: "Filter for white noise",
				Default:     0.5, Min: 0, Max: 1,
				Scaling: ScalingLinear,
				Linked:  true,
			},
		},
	}
}

func noiseColorManifest() Manifest {
	return Manifest{
		ID:              "com.cwbudde.effects.noisecolor",
		Name:            "Noise Color",
		Author:          "algo-noise contributors",
		Version:         "1.0",
		Description:     "Blend dark or bright filtered noise on either side of center",
		RampsFromDry:    true,
		MetaknobDefault: 0.5,
		Parameters: []ParameterSpec{
			{
				ID:          ParamMix,
				Name:        "Mix",
				Description: "Dry at center, dark noise below, bright noise above",
				Default:     0.5, Min: 0, Max: 1,
				Scaling: ScalingLinear,
				Linked:  true,
			},
			{
				ID:          ParamRes,
				Name:        "Resonance",
				Description: "Peak emphasis of the shaping filters",
				Default:     defaultResonance, Min: minResonance, Max: maxResonance,
				Scaling: ScalingLogarithmic,
			},
		},
	}
}
