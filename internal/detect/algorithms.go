package detect

import "github.com/dbsmedya/goloop/internal/chain"

func markAndSweep(start *chain.Node, w *walker) bool {
	for current := start; current != nil; current = w.next(current) {
		if current.Mark() {
			return true
		}
	}
	return false
}

func seenSet(start *chain.Node, w *walker) bool {
	seen := make(map[*chain.Node]struct{})
	for current := start; current != nil; current = w.next(current) {
		if _, ok := seen[current]; ok {
			return true
		}
		seen[current] = struct{}{}
	}
	return false
}

func backReference(start *chain.Node, w *walker) bool {
	var previous *chain.Node
	for current := start; current != nil; current = w.next(current) {
		// Reaching start again closes a full loop even when every
		// back-reference agrees, as on a consistently back-linked ring.
		if current == start && previous != nil {
			return true
		}
		back, ok := current.Back()
		if previous != nil && ok && back != previous {
			return true
		}
		if !ok {
			// start records "set to none", which a later arrival from the
			// tail of a full loop will disagree with.
			current.SetBack(previous)
		}
		previous = current
	}
	return false
}

func prefixRescan(start *chain.Node, w *walker) bool {
	// current sits at position seen; positions 0..seen-1 are the prefix.
	seen := 1
	for current := w.next(start); current != nil; current = w.next(current) {
		scan := start
		for i := 0; i < seen; i++ {
			if scan == current {
				return true
			}
			scan = w.next(scan)
		}
		seen++
	}
	return false
}

// reverseFrom reverses links from start until it runs off the end and returns
// the last node it visited.
func reverseFrom(start *chain.Node, w *walker) *chain.Node {
	var previous *chain.Node
	current := start
	for current != nil {
		next := w.next(current)
		current.Next = previous
		previous = current
		current = next
	}
	return previous
}

func reversal(start *chain.Node, w *walker) bool {
	if start.Next == nil {
		return false
	}
	return reverseFrom(start, w) == start
}

func reversalRestore(start *chain.Node, w *walker) bool {
	if start.Next == nil {
		return false
	}
	end := reverseFrom(start, w)
	// A reversed cycle is walked back into start, an acyclic chain from its
	// old tail. Either way reversing from end restores the original links.
	reverseFrom(end, w)
	return end == start
}

func checkpoint(start *chain.Node, w *walker) bool {
	var mark *chain.Node
	since, limit := 0, 2
	for current := start; current != nil; current = w.next(current) {
		if current == mark {
			return true
		}
		if since >= limit {
			mark = current
			since = 0
			limit *= 2
		}
		since++
	}
	return false
}

func twoPointer(start *chain.Node, w *walker) bool {
	slow, fast := start, start
	for {
		fast1 := w.step(fast)
		fast2 := w.step(fast1)
		if fast1 == nil || fast2 == nil {
			return false
		}
		if slow == fast1 || slow == fast2 {
			return true
		}
		// fast2 is non-nil and ahead of slow, so slow has a successor.
		slow = w.next(slow)
		fast = fast2
	}
}
