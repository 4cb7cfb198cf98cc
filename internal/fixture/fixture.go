// Package fixture provides named chains with a known cycle status for
// verifying and benchmarking the detectors.
package fixture

import (
	"errors"
	"fmt"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/goloop/internal/chain"
)

// ErrUnknownFixture is returned when a fixture name is not registered.
var ErrUnknownFixture = errors.New("unknown fixture")

// ErrUnknownShape is returned when a shape name cannot be parsed.
var ErrUnknownShape = errors.New("unknown shape")

// Shape is the cycle status a fixture is built with.
type Shape int

const (
	Acyclic  Shape = iota // Tail ends in none
	TailLoop              // Tail links back to a node after the start
	FullLoop              // Tail links back to the start
)

func (s Shape) String() string {
	switch s {
	case Acyclic:
		return "acyclic"
	case TailLoop:
		return "tail-loop"
	case FullLoop:
		return "full-loop"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// Cyclic reports whether chains of this shape contain a loop.
func (s Shape) Cyclic() bool {
	return s == TailLoop || s == FullLoop
}

// ParseShape converts a shape name to a Shape.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "acyclic":
		return Acyclic, nil
	case "tail-loop":
		return TailLoop, nil
	case "full-loop":
		return FullLoop, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
}

// Fixture is a named recipe for a chain of known shape. Build returns a new
// chain on every call.
type Fixture struct {
	Name        string
	Description string
	Shape       Shape
	Build       func() *chain.Chain
}

// Cyclic is the ground truth detectors are checked against.
func (f Fixture) Cyclic() bool {
	return f.Shape.Cyclic()
}

// Registry holds fixtures in registration order.
type Registry struct {
	fixtures *orderedmap.OrderedMap[string, Fixture]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{fixtures: orderedmap.NewOrderedMap[string, Fixture]()}
}

// Default returns a registry holding the built-in fixtures.
func Default() *Registry {
	r := NewRegistry()
	for _, f := range builtins() {
		// Built-in names are distinct.
		_ = r.Register(f)
	}
	return r
}

// Register adds f. Names must be unique.
func (r *Registry) Register(f Fixture) error {
	if f.Name == "" {
		return errors.New("fixture name is empty")
	}
	if f.Build == nil {
		return fmt.Errorf("fixture %q has no builder", f.Name)
	}
	if _, exists := r.fixtures.Get(f.Name); exists {
		return fmt.Errorf("duplicate fixture %q", f.Name)
	}
	r.fixtures.Set(f.Name, f)
	return nil
}

// Lookup returns the fixture registered under name.
func (r *Registry) Lookup(name string) (Fixture, error) {
	f, ok := r.fixtures.Get(name)
	if !ok {
		return Fixture{}, fmt.Errorf("%w: %q", ErrUnknownFixture, name)
	}
	return f, nil
}

// All returns every fixture in registration order.
func (r *Registry) All() []Fixture {
	out := make([]Fixture, 0, r.fixtures.Len())
	for el := r.fixtures.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// Names returns fixture names in registration order.
func (r *Registry) Names() []string {
	return r.fixtures.Keys()
}

// Len returns the number of registered fixtures.
func (r *Registry) Len() int {
	return r.fixtures.Len()
}

// Select resolves names to fixtures, keeping the order given. An empty list
// selects every fixture.
func (r *Registry) Select(names []string) ([]Fixture, error) {
	if len(names) == 0 {
		return r.All(), nil
	}
	out := make([]Fixture, 0, len(names))
	for _, name := range names {
		f, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
