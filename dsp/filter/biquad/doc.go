// Package biquad implements second-order IIR filter sections in
// Direct Form II Transposed, suitable for per-block retuning: replacing
// coefficients keeps the delay line intact so parameter automation does
// not produce output discontinuities.
package biquad
