package noise

import (
	"math/rand"
)

// Source yields uniform pseudo-random values in [0, 1).
// *rand.Rand satisfies it; tests substitute deterministic sources to
// assert exact sample sequences.
type Source interface {
	Float64() float64
}

// Generator fills scratch buffers with uniform white noise in [-1, 1].
// It owns no buffer itself; the caller supplies channel-owned scratch.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator drawing from src. A nil src gets a
// private randomly-seeded source, so independent channels never share
// generator state.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = rand.New(rand.NewSource(rand.Int63()))
	}

	return &Generator{src: src}
}

// Fill writes len(buf) uniform samples in [-1, 1], advancing the source
// by exactly len(buf) draws.
func (g *Generator) Fill(buf []float64) {
	for i := range buf {
		buf[i] = g.src.Float64()*2 - 1
	}
}
