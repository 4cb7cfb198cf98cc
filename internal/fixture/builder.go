package fixture

import (
	"fmt"

	"github.com/dbsmedya/goloop/internal/chain"
	"github.com/dbsmedya/goloop/internal/config"
)

// Builder constructs a fixture from a user-defined configuration entry.
type Builder struct {
	name string
	cfg  *config.FixtureConfig
}

// NewBuilder creates a new fixture builder for the named configuration entry.
func NewBuilder(name string, cfg *config.FixtureConfig) *Builder {
	return &Builder{name: name, cfg: cfg}
}

// Build validates the entry and returns the fixture. The chain is generated
// once here to fail fast; Build on the returned fixture makes fresh copies.
func (b *Builder) Build() (Fixture, error) {
	if b.cfg == nil {
		return Fixture{}, fmt.Errorf("fixture %q: configuration is nil", b.name)
	}
	if b.name == "" {
		return Fixture{}, fmt.Errorf("fixture name is empty")
	}

	shape, err := ParseShape(b.cfg.Shape)
	if err != nil {
		return Fixture{}, fmt.Errorf("fixture %q: %w", b.name, err)
	}

	length, entry := b.cfg.Length, b.cfg.Entry
	if _, err := Generate(shape, length, entry); err != nil {
		return Fixture{}, fmt.Errorf("fixture %q: %w", b.name, err)
	}

	desc := b.cfg.Description
	if desc == "" {
		desc = fmt.Sprintf("%d configured nodes, %s", length, shape)
	}

	return Fixture{
		Name:        b.name,
		Description: desc,
		Shape:       shape,
		Build: func() *chain.Chain {
			c, _ := Generate(shape, length, entry)
			return c
		},
	}, nil
}

// FromConfig returns the built-in fixtures, generated fixtures of
// cfg.Bench.Size, and every fixture defined in cfg, in that order.
func FromConfig(cfg *config.Config) (*Registry, error) {
	r := Default()

	for _, f := range Generated(cfg.Bench.Size) {
		if err := r.Register(f); err != nil {
			return nil, err
		}
	}

	for _, name := range cfg.ListFixtures() {
		fc := cfg.Fixtures[name]
		f, err := NewBuilder(name, &fc).Build()
		if err != nil {
			return nil, err
		}
		if err := r.Register(f); err != nil {
			return nil, err
		}
	}

	return r, nil
}
