// Package chain provides the singly-linked node and chain structures that the
// cycle detectors in goloop walk over.
package chain

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a node index does not exist in the chain.
var ErrIndexOutOfRange = errors.New("node index out of range")

// ErrEmptyChain is returned when an operation needs at least one node.
var ErrEmptyChain = errors.New("chain has no nodes")

// Node is a single element of a chain. Two nodes are the same only if they are
// the same pointer; Value is payload and plays no part in cycle detection.
type Node struct {
	Value any   // Payload carried by the node
	Next  *Node // Forward link, nil terminates the chain

	marked  bool  // Seen flag for the mark-and-sweep detector
	back    *Node // Recorded predecessor, meaningful only when backSet
	backSet bool  // Distinguishes "unset" from "set to none"
}

// Mark sets the node's seen flag and reports whether it was already set.
func (n *Node) Mark() (already bool) {
	already = n.marked
	n.marked = true
	return already
}

// Marked reports whether the seen flag is set.
func (n *Node) Marked() bool {
	return n.marked
}

// ClearMark resets the seen flag.
func (n *Node) ClearMark() {
	n.marked = false
}

// Back returns the recorded back-reference. ok is false while the
// back-reference is unset; a nil node with ok == true means it was recorded
// as pointing to none.
func (n *Node) Back() (prev *Node, ok bool) {
	return n.back, n.backSet
}

// SetBack records prev as the node's back-reference. Passing nil records
// "set to none", which is different from never having been set.
func (n *Node) SetBack(prev *Node) {
	n.back = prev
	n.backSet = true
}

// ClearBack returns the back-reference to the unset state.
func (n *Node) ClearBack() {
	n.back = nil
	n.backSet = false
}

// Chain is an append-only sequence of nodes. It remembers the append order so
// the original links can be restored after a destructive traversal.
type Chain struct {
	nodes  []*Node
	loopTo int // index the tail links back to, -1 for none
}

// New creates an empty chain.
func New() *Chain {
	return &Chain{loopTo: -1}
}

// Append adds a terminal node carrying value and returns it.
func (c *Chain) Append(value any) *Node {
	node := &Node{Value: value}
	if len(c.nodes) > 0 {
		c.nodes[len(c.nodes)-1].Next = node
	}
	c.nodes = append(c.nodes, node)
	// A new tail always ends in none; a previous loop is gone.
	c.loopTo = -1
	return node
}

// Start returns the first appended node, or nil for an empty chain.
func (c *Chain) Start() *Node {
	if len(c.nodes) == 0 {
		return nil
	}
	return c.nodes[0]
}

// Tail returns the last appended node, or nil for an empty chain.
func (c *Chain) Tail() *Node {
	if len(c.nodes) == 0 {
		return nil
	}
	return c.nodes[len(c.nodes)-1]
}

// Len returns the number of appended nodes.
func (c *Chain) Len() int {
	return len(c.nodes)
}

// At returns the i-th appended node, or nil if i is out of range.
func (c *Chain) At(i int) *Node {
	if i < 0 || i >= len(c.nodes) {
		return nil
	}
	return c.nodes[i]
}

// Nodes returns the nodes in append order. The slice is a copy.
func (c *Chain) Nodes() []*Node {
	out := make([]*Node, len(c.nodes))
	copy(out, c.nodes)
	return out
}

// LoopBack rewires the tail's forward link to the i-th node. LoopBack(0)
// produces a full loop; any other index leaves a non-empty loop tail.
func (c *Chain) LoopBack(i int) error {
	if len(c.nodes) == 0 {
		return ErrEmptyChain
	}
	if i < 0 || i >= len(c.nodes) {
		return fmt.Errorf("loop back to %d in chain of %d nodes: %w", i, len(c.nodes), ErrIndexOutOfRange)
	}
	c.nodes[len(c.nodes)-1].Next = c.nodes[i]
	c.loopTo = i
	return nil
}

// LoopIndex returns the index the tail links back to, or -1 if the chain ends
// in none.
func (c *Chain) LoopIndex() int {
	return c.loopTo
}

// Restore relinks every node in append order, reapplies the loop set with
// LoopBack, and clears all marks and back-references.
func (c *Chain) Restore() {
	for i, node := range c.nodes {
		node.ClearMark()
		node.ClearBack()
		if i+1 < len(c.nodes) {
			node.Next = c.nodes[i+1]
		} else {
			node.Next = nil
		}
	}
	if c.loopTo >= 0 && len(c.nodes) > 0 {
		c.nodes[len(c.nodes)-1].Next = c.nodes[c.loopTo]
	}
}
