// Package detect implements the cycle detection strategies for singly-linked
// chains. Every strategy answers the same question: does following Next from
// a start node ever revisit a node? They differ in time, memory, and whether
// they write to the nodes they walk.
//
// None of the strategies are safe to run concurrently on the same chain. The
// mutating ones (mark, back-reference, reversal) leave state on the nodes that
// a second detector would misread.
package detect

import (
	"errors"

	"github.com/dbsmedya/goloop/internal/chain"
)

// ErrInvalidInput is returned when a detector is called without a start node.
var ErrInvalidInput = errors.New("invalid input: start node is nil")

// Func is the signature shared by every detector.
type Func func(start *chain.Node) (bool, error)

// walker follows forward links and counts how many it dereferenced. A nil
// walker follows links without counting.
type walker struct {
	advances int
}

func (w *walker) next(n *chain.Node) *chain.Node {
	if w != nil {
		w.advances++
	}
	return n.Next
}

// step is next with a guard for cursors that may already have run off the end.
func (w *walker) step(n *chain.Node) *chain.Node {
	if n == nil {
		return nil
	}
	return w.next(n)
}

type algorithm func(start *chain.Node, w *walker) bool

func run(algo algorithm, start *chain.Node) (bool, error) {
	if start == nil {
		return false, ErrInvalidInput
	}
	return algo(start, nil), nil
}

// MarkAndSweep flags every visited node and reports a cycle on the first node
// found already flagged. The flags persist: calling it again on the same chain
// reports a cycle even for an acyclic chain until the marks are cleared.
func MarkAndSweep(start *chain.Node) (bool, error) {
	return run(markAndSweep, start)
}

// SeenSet keeps the identity of every visited node in a set. It never writes to
// the chain but needs memory proportional to its length.
func SeenSet(start *chain.Node) (bool, error) {
	return run(seenSet, start)
}

// BackReference records each node's predecessor as its back-reference when
// none is set yet, and reports a cycle when a recorded back-reference disagrees
// with the predecessor it was actually reached from.
//
// It trusts back-references that are already present. If they were set by
// something else and are wrong, a true result means "inconsistent
// back-references", not necessarily a cycle. A full loop whose existing
// back-references all agree is still reported, because the walk arrives back
// at start.
func BackReference(start *chain.Node) (bool, error) {
	return run(backReference, start)
}

// PrefixRescan checks each newly reached node against every node before it by
// walking again from start. Quadratic time, no extra memory.
func PrefixRescan(start *chain.Node) (bool, error) {
	return run(prefixRescan, start)
}

// Reversal reverses every forward link while walking. Reversing a cycle leads
// the walk back to start; reversing an acyclic chain ends at its old tail.
// The chain is left reversed. Callers that need the original order must
// restore it or use ReversalRestore.
func Reversal(start *chain.Node) (bool, error) {
	return run(reversal, start)
}

// ReversalRestore runs the same reversal as Reversal and then reverses again,
// so the chain is back in its original orientation when it returns.
func ReversalRestore(start *chain.Node) (bool, error) {
	return run(reversalRestore, start)
}

// Checkpoint keeps a single checkpoint node that is moved to the cursor at
// doubling intervals. A cycle is reported when the cursor reaches the
// checkpoint again.
func Checkpoint(start *chain.Node) (bool, error) {
	return run(checkpoint, start)
}

// TwoPointer is the tortoise and hare: a slow cursor moves one link per
// iteration while the fast cursor moves two, one link at a time. A cycle is
// reported when the slow cursor meets either fast position.
func TwoPointer(start *chain.Node) (bool, error) {
	return run(twoPointer, start)
}
