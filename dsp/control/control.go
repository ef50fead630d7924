// Package control converts raw normalized control readings into domain
// values: dead-zone suppression near rest positions, affine rescaling,
// and linear or logarithmic sweep curves.
package control

import (
	"math"

	"github.com/cwbudde/algo-noise/dsp/core"
)

// ApplyDeadzone suppresses readings below deadzone and linearly rescales
// the remainder to span [0, 1] of the original range. The result is never
// negative, so controller jitter around the rest position maps to exact
// silence instead of a faint bleed.
func ApplyDeadzone(value, deadzone, max float64) float64 {
	return math.Max(0, (value-deadzone)/(max-deadzone))
}

// MapValue performs a standard affine rescale of value from
// [inFrom, inTo] to [outFrom, outTo].
//
// Degenerate ranges are programming errors and panic.
func MapValue(value, inFrom, inTo, outFrom, outTo float64) float64 {
	if inFrom == inTo {
		panic("control: MapValue input range is degenerate")
	}
	if outFrom == outTo {
		panic("control: MapValue output range is degenerate")
	}

	normalized := (value - inFrom) / (inTo - inFrom)

	return outFrom + normalized*(outTo-outFrom)
}

// InterpolateLog maps x in [0, 1] onto [fMin, fMax] with a logarithmic
// curve, so equal control movements produce equal perceived frequency
// steps. x is clamped to [0, 1] before exponentiation.
//
// Non-positive endpoints are programming errors and panic.
func InterpolateLog(x, fMin, fMax float64) float64 {
	if fMin <= 0 || fMax <= 0 {
		panic("control: InterpolateLog endpoints must be > 0")
	}

	return fMin * math.Pow(fMax/fMin, core.Clamp(x, 0, 1))
}

// CenterDeadzone snaps readings within deadzone of 0.5 to exactly 0.5
// and remaps the two outer ranges so they still span the full (0.5, 1]
// and [0, 0.5) intervals. This keeps an exact neutral point at center
// without freezing a notch of control travel around it.
func CenterDeadzone(value, deadzone float64) float64 {
	const center = 0.5

	switch {
	case value > center+deadzone:
		return center + (value-center-deadzone)/(center-deadzone)*center
	case value < center-deadzone:
		return center - (center-deadzone-value)/(center-deadzone)*center
	default:
		return center
	}
}

// Curve identifies a control-to-frequency sweep shape.
type Curve int

const (
	// CurveLinear rescales the control range with MapValue.
	CurveLinear Curve = iota
	// CurveLogarithmic rescales the control range with InterpolateLog.
	CurveLogarithmic
)

// Map applies the curve to x in [0, 1], producing a value in [from, to].
func (c Curve) Map(x, from, to float64) float64 {
	if c == CurveLogarithmic {
		return InterpolateLog(x, from, to)
	}

	return MapValue(x, 0, 1, from, to)
}

// String returns the curve name.
func (c Curve) String() string {
	if c == CurveLogarithmic {
		return "logarithmic"
	}

	return "linear"
}
