package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// DeleteStrategy selects how Delete treats the children of the deleted node.
type DeleteStrategy int

const (
	// DeleteRefuse refuses to delete a node which has children.
	DeleteRefuse DeleteStrategy = iota
	// DeleteCascade deletes the node together with all of its descendants.
	DeleteCascade
	// DeleteReattach appends the node's children, in their current order, to
	// the children of the node's parent before deleting the node.
	DeleteReattach
)

func (s DeleteStrategy) String() string {
	switch s {
	case DeleteRefuse:
		return "refuse"
	case DeleteCascade:
		return "cascade"
	case DeleteReattach:
		return "reattach"
	}
	return fmt.Sprintf("DeleteStrategy(%d)", int(s))
}

// Delete removes a node from the tree. The fate of the node's children is
// determined by the chosen strategy, see DeleteStrategy. The root cannot be
// deleted. A failed delete leaves the tree untouched.
func (t *Tree) Delete(id NodeID, strategy DeleteStrategy) error {
	if id.IsRoot() {
		return fmt.Errorf("%w: root cannot be deleted", ErrInvalidOperation)
	}
	n, ok := t.store[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	switch strategy {
	case DeleteRefuse:
		if len(t.children[id]) > 0 {
			return fmt.Errorf("%w: %s", ErrHasChildren, id)
		}
	case DeleteCascade:
		// The whole subtree goes away wholesale; no sibling renumbering is
		// needed below id.
		for _, desc := range t.collect(id, DFS)[1:] {
			delete(t.store, desc)
			delete(t.children, desc)
		}
	case DeleteReattach:
		// Append the children, in sibling order, behind the current children
		// of id's parent. The gap-closing below fixes up their indices once
		// id itself is gone.
		newSiblings := t.childSet(n.parent)
		for _, child := range t.orderedChildren(id) {
			c := t.store[child]
			c.parent = n.parent
			c.index = len(newSiblings)
			newSiblings[child] = struct{}{}
		}
	default:
		return fmt.Errorf("%w: unknown delete strategy %s", ErrInvalidOperation, strategy)
	}
	t.removeLeaf(n)
	T().Debugf("tree: deleted %s (%s)", id, strategy)
	return nil
}

// removeLeaf removes a single node with no remaining children of its own,
// closing the index gap among its former siblings.
func (t *Tree) removeLeaf(n *node) {
	siblings := t.children[n.parent]
	delete(siblings, n.id)
	for sib := range siblings {
		if s := t.store[sib]; s.index > n.index {
			s.index--
		}
	}
	delete(t.store, n.id)
	delete(t.children, n.id)
}
