package detect

import (
	"errors"
	"fmt"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/goloop/internal/chain"
)

// ErrUnknownStrategy is returned when a strategy name is not registered.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy describes a registered detector and its trade-offs.
type Strategy struct {
	Name     string // Registry key used on the command line and in config
	Title    string // Human readable name
	Time     string // Time complexity
	Space    string // Extra space
	Mutates  bool   // Leaves writes on the chain after returning
	Restores bool   // Writes to the chain but undoes them before returning
	Notes    string

	algo algorithm
}

// Trace is the outcome of a single detector run with its work counted.
type Trace struct {
	Cycle    bool
	Advances int // Forward links dereferenced
}

// HasCycle runs the strategy on start.
func (s Strategy) HasCycle(start *chain.Node) (bool, error) {
	return run(s.algo, start)
}

// Trace runs the strategy on start and counts forward-link dereferences.
func (s Strategy) Trace(start *chain.Node) (Trace, error) {
	if start == nil {
		return Trace{}, ErrInvalidInput
	}
	w := &walker{}
	cycle := s.algo(start, w)
	return Trace{Cycle: cycle, Advances: w.advances}, nil
}

// Repeatable reports whether the strategy gives the same answer when run twice
// on an untouched chain.
func (s Strategy) Repeatable() bool {
	return !s.Mutates
}

var registry = newRegistry()

func newRegistry() *orderedmap.OrderedMap[string, Strategy] {
	m := orderedmap.NewOrderedMap[string, Strategy]()
	for _, s := range []Strategy{
		{
			Name:    "mark",
			Title:   "Mark each node",
			Time:    "O(n)",
			Space:   "O(1) flag per node",
			Mutates: true,
			Notes:   "marks persist; rerun on the same chain reports a cycle",
			algo:    markAndSweep,
		},
		{
			Name:  "seen-set",
			Title: "Hash set of seen nodes",
			Time:  "O(n)",
			Space: "O(n)",
			Notes: "identity keyed set",
			algo:  seenSet,
		},
		{
			Name:    "back-reference",
			Title:   "Opportunistic back-reference",
			Time:    "O(n)",
			Space:   "O(1) back-reference per node",
			Mutates: true,
			Notes:   "trusts existing back-references",
			algo:    backReference,
		},
		{
			Name:  "prefix-rescan",
			Title: "Rescan the list so far",
			Time:  "O(n^2)",
			Space: "O(1)",
			algo:  prefixRescan,
		},
		{
			Name:    "reversal",
			Title:   "Reverse the list",
			Time:    "O(n)",
			Space:   "O(1)",
			Mutates: true,
			Notes:   "leaves every link reversed",
			algo:    reversal,
		},
		{
			Name:     "reversal-restore",
			Title:    "Reverse the list twice",
			Time:     "O(n)",
			Space:    "O(1)",
			Restores: true,
			Notes:    "second reversal restores the links",
			algo:     reversalRestore,
		},
		{
			Name:  "checkpoint",
			Title: "Catch larger and larger loops",
			Time:  "O(n)",
			Space: "O(1)",
			algo:  checkpoint,
		},
		{
			Name:  "two-pointer",
			Title: "Tortoise and hare",
			Time:  "O(n)",
			Space: "O(1)",
			Notes: "recommended default",
			algo:  twoPointer,
		},
	} {
		m.Set(s.Name, s)
	}
	return m
}

// All returns every registered strategy in declaration order.
func All() []Strategy {
	out := make([]Strategy, 0, registry.Len())
	for el := registry.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// Names returns the registered strategy names in declaration order.
func Names() []string {
	return registry.Keys()
}

// Lookup returns the strategy registered under name.
func Lookup(name string) (Strategy, error) {
	s, ok := registry.Get(name)
	if !ok {
		return Strategy{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// Select resolves names to strategies, keeping the order given. An empty list
// selects every strategy.
func Select(names []string) ([]Strategy, error) {
	if len(names) == 0 {
		return All(), nil
	}
	out := make([]Strategy, 0, len(names))
	for _, name := range names {
		s, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
