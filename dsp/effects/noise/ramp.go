package noise

// Ramp linearly interpolates a scalar control value across one block,
// from a previous value at sample 0 toward a current value at the block
// end. It is stateless; the previous value lives in ChannelState so the
// first sample of block k+1 continues exactly where block k left off.
type Ramp struct {
	start, step float64
}

// NewRamp builds a ramp from from to to over length samples.
// A non-positive length yields a constant ramp at to.
func NewRamp(from, to float64, length int) Ramp {
	if length <= 0 {
		return Ramp{start: to}
	}

	return Ramp{start: from, step: (to - from) / float64(length)}
}

// At returns the interpolated value for sample index i.
func (r Ramp) At(i int) float64 {
	return r.start + r.step*float64(i)
}
