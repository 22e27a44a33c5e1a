package codegen

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnsupportedTarget is returned when no generator is registered for a target
var ErrUnsupportedTarget = errors.New("unsupported target")

// Registry manages available code generators
type Registry struct {
	generators map[string]Factory
}

// NewRegistry creates a new generator registry
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Factory),
	}
}

// Register adds a new generator factory to the registry
func (r *Registry) Register(target string, factory Factory) {
	r.generators[target] = factory
}

// Get returns a generator for the specified target
func (r *Registry) Get(target string, opts Options) (Generator, error) {
	factory, exists := r.generators[target]
	if !exists {
		err := errors.Wrapf(ErrUnsupportedTarget, "target %q", target)
		return nil, errors.WithHintf(err, "supported targets: %s", strings.Join(r.Targets(), ", "))
	}
	return factory(opts), nil
}

// Targets returns the registered target names in sorted order
func (r *Registry) Targets() []string {
	targets := make([]string, 0, len(r.generators))
	for target := range r.generators {
		targets = append(targets, target)
	}
	slices.Sort(targets)
	return targets
}
