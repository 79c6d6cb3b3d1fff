package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"math"
)

// Tree is an ordered tree of identified nodes.
//
// A tree consists of a node store, mapping ids to node records, and a child
// index, mapping each parent to the set of its direct children. The implicit
// root has no record of its own. Both maps are kept consistent on every
// mutation; the per-parent ordering lives in the records' index fields and is
// always dense.
//
// A Tree is not safe for concurrent use; wrap it in a Guard (or another
// single-writer serialization point) when sharing it between goroutines.
type Tree struct {
	store    map[NodeID]*node
	children map[NodeID]map[NodeID]struct{}
}

// node is the record kept per non-root node.
type node struct {
	id     NodeID
	parent NodeID
	index  int            // zero-based position among current siblings
	data   map[string]any // never nil
}

// NewTree creates an empty tree, containing just the implicit root.
func NewTree() *Tree {
	return &Tree{
		store:    make(map[NodeID]*node),
		children: make(map[NodeID]map[NodeID]struct{}),
	}
}

// Has reports whether a node exists in the tree. The root is always present.
func (t *Tree) Has(id NodeID) bool {
	if id.IsRoot() {
		return true
	}
	_, ok := t.store[id]
	return ok
}

// Insert creates a new node with the given id as a child of parent, at
// position at among the parent's children. at is clamped into [0,n], where n
// is the current child count; siblings at or after the insertion point move
// one position up. The new node starts out with empty data.
//
// Insert fails with ErrDuplicateID if id is already present (the root counts
// as present), and with ErrNotFound if the parent does not exist. The
// duplicate check takes precedence.
func (t *Tree) Insert(parent, id NodeID, at int) error {
	if t.Has(id) {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	if !t.Has(parent) {
		return fmt.Errorf("%w: parent %s", ErrNotFound, parent)
	}
	siblings := t.childSet(parent)
	at = clamp(at, 0, len(siblings))
	for sib := range siblings {
		if s := t.store[sib]; s.index >= at {
			s.index++
		}
	}
	t.store[id] = &node{
		id:     id,
		parent: parent,
		index:  at,
		data:   make(map[string]any),
	}
	siblings[id] = struct{}{}
	T().Debugf("tree: inserted %s under %s at %d", id, parent, at)
	return nil
}

// Append creates a new node as the last child of parent. It is shorthand for
// Insert with an index beyond the current child count.
func (t *Tree) Append(parent, id NodeID) error {
	return t.Insert(parent, id, math.MaxInt)
}

// Children returns the direct children of a node in sibling order.
// A childless node yields an empty slice.
func (t *Tree) Children(id NodeID) ([]NodeID, error) {
	if !t.Has(id) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return t.orderedChildren(id), nil
}

// ChildCount returns the number of direct children of a node.
func (t *Tree) ChildCount(id NodeID) (int, error) {
	if !t.Has(id) {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return len(t.children[id]), nil
}

// Parent returns the parent of a node. The root has no parent.
func (t *Tree) Parent(id NodeID) (NodeID, error) {
	if id.IsRoot() {
		return NodeID{}, fmt.Errorf("%w: root has no parent", ErrInvalidOperation)
	}
	n, ok := t.store[id]
	if !ok {
		return NodeID{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return n.parent, nil
}

// Index returns a node's zero-based position among its current siblings.
func (t *Tree) Index(id NodeID) (int, error) {
	if id.IsRoot() {
		return 0, fmt.Errorf("%w: root has no siblings", ErrInvalidOperation)
	}
	n, ok := t.store[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return n.index, nil
}

// Data returns a node's user data. The returned map is the live payload, not
// a copy: entries set on it stick with the node. The root carries no data.
func (t *Tree) Data(id NodeID) (map[string]any, error) {
	if id.IsRoot() {
		return nil, fmt.Errorf("%w: root carries no data", ErrInvalidOperation)
	}
	n, ok := t.store[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return n.data, nil
}

// SetData replaces a node's user data wholesale. A nil map is rejected with
// ErrInvalidData; pass an empty map to clear a node's payload.
func (t *Tree) SetData(id NodeID, data map[string]any) error {
	if id.IsRoot() {
		return fmt.Errorf("%w: root carries no data", ErrInvalidOperation)
	}
	if data == nil {
		return ErrInvalidData
	}
	n, ok := t.store[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	n.data = data
	return nil
}

// Len returns the number of nodes in the tree, not counting the root.
func (t *Tree) Len() int {
	return len(t.store)
}

// --- Helpers ---------------------------------------------------------------

// childSet returns the (mutable) child set of a node, creating it on demand.
func (t *Tree) childSet(id NodeID) map[NodeID]struct{} {
	set, ok := t.children[id]
	if !ok {
		set = make(map[NodeID]struct{})
		t.children[id] = set
	}
	return set
}

// orderedChildren reconstructs the sibling ordering from the index fields.
// Relies on the dense-index invariant.
func (t *Tree) orderedChildren(id NodeID) []NodeID {
	set := t.children[id]
	ordered := make([]NodeID, len(set))
	for child := range set {
		ordered[t.store[child].index] = child
	}
	return ordered
}

func clamp(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}
