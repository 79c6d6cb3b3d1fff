package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Reorder moves a node to position at among its current siblings, shifting
// the siblings in between by one position. at is clamped into [0,n-1], where
// n is the number of children of the node's parent, so any large value means
// "make it the last sibling".
//
// The root cannot be reordered (it has no siblings).
func (t *Tree) Reorder(id NodeID, at int) error {
	if id.IsRoot() {
		return fmt.Errorf("%w: root cannot be reordered", ErrInvalidOperation)
	}
	n, ok := t.store[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	siblings := t.children[n.parent]
	at = clamp(at, 0, len(siblings)-1)
	if at == n.index {
		return nil
	}
	// Close the gap the node leaves behind, then open a slot at the target.
	for sib := range siblings {
		if sib == id {
			continue
		}
		s := t.store[sib]
		if s.index > n.index {
			s.index--
		}
		if s.index >= at {
			s.index++
		}
	}
	T().Debugf("tree: reordered %s from %d to %d", id, n.index, at)
	n.index = at
	return nil
}
