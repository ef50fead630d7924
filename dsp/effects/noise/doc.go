// Package noise implements a per-channel white-noise blend effect:
// generated noise is shaped by a high-pass/low-pass filter pair and
// crossfaded with the dry input under a click-free per-block ramp.
//
// Two variants share the same signal path and differ only in control
// policy:
//
//   - White Noise: a unipolar dry/wet control with a separate output
//     gain and a dedicated filter-sweep control (linear curve).
//   - Noise Color: a bipolar mix control centered at 0.5 (fully dry)
//     that sweeps a dark noise color below center and a bright one
//     above, with a shared resonance control (logarithmic curves).
//
// All per-block processing is allocation-free and lock-free; each
// channel owns a ChannelState that carries filter memory, ramp state
// and scratch buffers across block boundaries.
package noise
