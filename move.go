package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Move reparents a node, together with its whole subtree, under a new parent,
// at position at among the new parent's children (clamped, Insert-style).
// Moving a node under its current parent degenerates to Reorder, with
// Reorder's clamping rules.
//
// Move fails with ErrInvalidOperation if id is the root, or if the move would
// make the node an ancestor of itself, i.e. if the new parent is the node
// itself or one of its descendants. It fails with ErrNotFound if either id is
// absent. A failed move leaves the tree untouched.
func (t *Tree) Move(id, parent NodeID, at int) error {
	if id.IsRoot() {
		return fmt.Errorf("%w: root cannot be moved", ErrInvalidOperation)
	}
	n, ok := t.store[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if !t.Has(parent) {
		return fmt.Errorf("%w: parent %s", ErrNotFound, parent)
	}
	if parent == n.parent {
		return t.Reorder(id, at)
	}
	// Cycle guard: id must not lie on the new parent's root-ward chain.
	for anc := parent; !anc.IsRoot(); anc = t.store[anc].parent {
		if anc == id {
			return fmt.Errorf("%w: %s is an ancestor of %s", ErrInvalidOperation, id, parent)
		}
	}
	// Detach from the old parent, closing the index gap left behind.
	oldSiblings := t.children[n.parent]
	delete(oldSiblings, id)
	for sib := range oldSiblings {
		if s := t.store[sib]; s.index > n.index {
			s.index--
		}
	}
	// Open a slot among the new siblings and relink.
	newSiblings := t.childSet(parent)
	at = clamp(at, 0, len(newSiblings))
	for sib := range newSiblings {
		if s := t.store[sib]; s.index >= at {
			s.index++
		}
	}
	T().Debugf("tree: moved %s from %s/%d to %s/%d", id, n.parent, n.index, parent, at)
	n.parent = parent
	n.index = at
	newSiblings[id] = struct{}{}
	return nil
}

// MoveBefore moves a node directly in front of an anchor node. The anchor's
// parent and position are read before the move takes place; if id and anchor
// are already siblings, the subsequent reorder accounts for the shift caused
// by taking id out of the sequence.
func (t *Tree) MoveBefore(id, anchor NodeID) error {
	return t.moveRelative(id, anchor, 0)
}

// MoveAfter moves a node directly behind an anchor node. See MoveBefore for
// the sibling-shift semantics.
func (t *Tree) MoveAfter(id, anchor NodeID) error {
	return t.moveRelative(id, anchor, 1)
}

func (t *Tree) moveRelative(id, anchor NodeID, offset int) error {
	if anchor.IsRoot() {
		return fmt.Errorf("%w: root cannot anchor a relative move", ErrInvalidOperation)
	}
	a, ok := t.store[anchor]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, anchor)
	}
	return t.Move(id, a.parent, a.index+offset)
}

// Ancestors returns the chain of ancestors of a node, starting with its
// parent and ending with the root. The root itself has no ancestors.
func (t *Tree) Ancestors(id NodeID) ([]NodeID, error) {
	if id.IsRoot() {
		return []NodeID{}, nil
	}
	n, ok := t.store[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	chain := []NodeID{n.parent}
	for anc := n.parent; !anc.IsRoot(); {
		anc = t.store[anc].parent
		chain = append(chain, anc)
	}
	return chain, nil
}

// Depth returns the number of ancestors of a node; the root has depth 0.
func (t *Tree) Depth(id NodeID) (int, error) {
	chain, err := t.Ancestors(id)
	if err != nil {
		return 0, err
	}
	return len(chain), nil
}
