// Package params models the host-owned control surface an effect reads
// from. Controls are bound by id once at load time; per-block reads are
// plain float64 getters with no locking, so they are safe inside a
// real-time audio callback.
package params

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
)

// ErrUnknownParameter is returned when a declared parameter id is not
// present in the supplied set. This is a load-time configuration error;
// the per-block path assumes all bindings already succeeded.
var ErrUnknownParameter = errors.New("unknown parameter")

// Control is a single host-owned control value. Value must be cheap and
// safe to call from the audio callback thread; implementations must not
// block.
type Control interface {
	Value() float64
}

// Constant is a fixed-value Control, handy for offline rendering and tests.
type Constant float64

// Value returns the constant.
func (c Constant) Value() float64 { return float64(c) }

// Atomic is a lock-free mutable Control. A UI or automation thread may
// Set concurrently with audio-thread reads.
type Atomic struct {
	bits atomic.Uint64
}

// NewAtomic returns an Atomic control holding v.
func NewAtomic(v float64) *Atomic {
	a := &Atomic{}
	a.Set(v)
	return a
}

// Set stores a new control value.
func (a *Atomic) Set(v float64) {
	a.bits.Store(math.Float64bits(v))
}

// Value returns the most recently stored value.
func (a *Atomic) Value() float64 {
	return math.Float64frombits(a.bits.Load())
}

// Set maps parameter ids to their controls.
type Set map[string]Control

// Lookup returns the control registered under id.
func (s Set) Lookup(id string) (Control, error) {
	c, ok := s[id]
	if !ok || c == nil {
		return nil, fmt.Errorf("params: %w: %q", ErrUnknownParameter, id)
	}

	return c, nil
}
