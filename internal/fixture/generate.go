package fixture

import (
	"fmt"

	"github.com/dbsmedya/goloop/internal/chain"
)

// Generate builds a chain of length nodes labelled N0, N1, ... with the given
// shape. entry is the loop target for TailLoop and must be 0 otherwise.
func Generate(shape Shape, length, entry int) (*chain.Chain, error) {
	if length <= 0 {
		return nil, fmt.Errorf("length must be positive, got %d", length)
	}

	loopTo := -1
	switch shape {
	case Acyclic:
		if entry != 0 {
			return nil, fmt.Errorf("entry %d given for an acyclic chain", entry)
		}
	case FullLoop:
		if entry != 0 {
			return nil, fmt.Errorf("entry %d given for a full loop", entry)
		}
		loopTo = 0
	case TailLoop:
		if entry < 1 || entry >= length {
			return nil, fmt.Errorf("tail loop entry must be between 1 and %d, got %d", length-1, entry)
		}
		loopTo = entry
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownShape, shape)
	}

	c := chain.New()
	for i := 0; i < length; i++ {
		c.Append(fmt.Sprintf("N%d", i))
	}
	if loopTo >= 0 {
		if err := c.LoopBack(loopTo); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Generated returns synthetic fixtures of the given size, one per shape, for
// benchmarking at a scale the city fixtures do not reach. The tail loop
// enters halfway along.
func Generated(size int) []Fixture {
	if size < 2 {
		return nil
	}
	mk := func(shape Shape, entry int) func() *chain.Chain {
		return func() *chain.Chain {
			// Arguments are valid for size >= 2.
			c, _ := Generate(shape, size, entry)
			return c
		}
	}
	return []Fixture{
		{
			Name:        fmt.Sprintf("acyclic-%d", size),
			Description: fmt.Sprintf("%d generated nodes ending in none", size),
			Shape:       Acyclic,
			Build:       mk(Acyclic, 0),
		},
		{
			Name:        fmt.Sprintf("tail-loop-%d", size),
			Description: fmt.Sprintf("%d generated nodes, tail links back to node %d", size, size/2),
			Shape:       TailLoop,
			Build:       mk(TailLoop, size/2),
		},
		{
			Name:        fmt.Sprintf("full-loop-%d", size),
			Description: fmt.Sprintf("%d generated nodes, tail links back to the start", size),
			Shape:       FullLoop,
			Build:       mk(FullLoop, 0),
		},
	}
}
