package noise

import (
	"errors"
	"fmt"
)

// Factory builds one Effect instance.
type Factory func() *Effect

// Registry maps manifest ids to effect factories. Hosts consult it once
// at load time to enumerate manifests and instantiate effects.
type Registry struct {
	factories map[string]Factory
	order     []string
}

var errDuplicateEffect = errors.New("duplicate effect id")

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under the given manifest id.
func (r *Registry) Register(id string, factory Factory) error {
	if id == "" {
		return errors.New("empty effect id")
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	if _, exists := r.factories[id]; exists {
		return fmt.Errorf("%w: %s", errDuplicateEffect, id)
	}

	r.factories[id] = factory
	r.order = append(r.order, id)

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(id string, factory Factory) {
	err := r.Register(id, factory)
	if err != nil {
		panic("noise registry: " + err.Error())
	}
}

// Lookup returns the factory for the given id, or nil.
func (r *Registry) Lookup(id string) Factory {
	return r.factories[id]
}

// Manifests returns the manifests of all registered effects in
// registration order.
func (r *Registry) Manifests() []Manifest {
	out := make([]Manifest, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.factories[id]().Manifest())
	}

	return out
}

// DefaultRegistry returns a Registry pre-populated with both built-in
// variants.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(whiteNoiseManifest().ID, NewWhiteNoise)
	r.MustRegister(noiseColorManifest().ID, NewNoiseColor)

	return r
}
