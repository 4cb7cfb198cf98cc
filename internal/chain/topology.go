package chain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNilStart is returned by Inspect when no start node is given.
var ErrNilStart = errors.New("start node is nil")

// Topology describes the shape reachable from a start node.
type Topology struct {
	Nodes   []*Node // Distinct nodes in visit order
	TailLen int     // Nodes visited before entering the loop
	LoopLen int     // Nodes in the loop, 0 if the chain ends in none
	Entry   *Node   // First loop node, nil if the chain ends in none
}

// Inspect walks from start and reports the loop tail and loop it finds.
// It keys visited nodes by identity and is the ground truth the fixtures and
// tests compare detectors against; it is not one of the detectors.
func Inspect(start *Node) (*Topology, error) {
	if start == nil {
		return nil, ErrNilStart
	}

	index := make(map[*Node]int)
	topo := &Topology{}

	for current := start; current != nil; current = current.Next {
		if at, seen := index[current]; seen {
			topo.Entry = current
			topo.TailLen = at
			topo.LoopLen = len(topo.Nodes) - at
			return topo, nil
		}
		index[current] = len(topo.Nodes)
		topo.Nodes = append(topo.Nodes, current)
	}

	topo.TailLen = len(topo.Nodes)
	return topo, nil
}

// Cyclic reports whether the walk revisited a node.
func (t *Topology) Cyclic() bool {
	return t.Entry != nil
}

// FullLoop reports whether the start node itself is inside the loop.
func (t *Topology) FullLoop() bool {
	return t.Cyclic() && t.TailLen == 0
}

// Len returns the number of distinct reachable nodes.
func (t *Topology) Len() int {
	return len(t.Nodes)
}

// Path formats the walk as "A -> B -> C -> B", repeating the loop entry at the
// end for cyclic chains and ending in "none" otherwise. label formats payloads;
// nil uses fmt.Sprint.
func (t *Topology) Path(label func(any) string) string {
	if label == nil {
		label = func(v any) string { return fmt.Sprint(v) }
	}

	parts := make([]string, 0, len(t.Nodes)+1)
	for _, node := range t.Nodes {
		parts = append(parts, label(node.Value))
	}
	if t.Cyclic() {
		parts = append(parts, label(t.Entry.Value))
	} else {
		parts = append(parts, "none")
	}
	return strings.Join(parts, " -> ")
}

// String summarises the topology for logs and error messages.
func (t *Topology) String() string {
	switch {
	case !t.Cyclic():
		return fmt.Sprintf("acyclic: %d nodes", t.Len())
	case t.FullLoop():
		return fmt.Sprintf("full loop: %d nodes", t.LoopLen)
	default:
		return fmt.Sprintf("tail loop: %d tail + %d loop nodes", t.TailLen, t.LoopLen)
	}
}
