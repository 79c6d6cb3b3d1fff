package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
)

// Order selects a traversal ordering.
type Order int

const (
	// DFS visits nodes depth-first in pre-order: a node first, then each
	// child's subtree in sibling order.
	DFS Order = iota
	// BFS visits nodes level by level: a node first, then its children in
	// sibling order, then grandchildren in the order their parents were
	// visited, and so on.
	BFS
)

func (ord Order) String() string {
	if ord == BFS {
		return "breadth-first"
	}
	return "depth-first"
}

// Nodes returns the ids of all nodes of the subtree rooted at start, in the
// given traversal order. The starting node itself comes first. Traversal is a
// pure function of the current tree structure: repeated calls without
// intervening mutation return identical sequences.
func (t *Tree) Nodes(start NodeID, ord Order) ([]NodeID, error) {
	if !t.Has(start) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, start)
	}
	return t.collect(start, ord), nil
}

// Descendants returns the subtree of a node in traversal order, without the
// node itself.
func (t *Tree) Descendants(id NodeID, ord Order) ([]NodeID, error) {
	all, err := t.Nodes(id, ord)
	if err != nil {
		return nil, err
	}
	return all[1:], nil
}

// Leaves returns all nodes without children, in traversal order over the
// whole tree. An empty tree has a single leaf: the root.
func (t *Tree) Leaves(ord Order) []NodeID {
	var leaves []NodeID
	for _, id := range t.collect(Root, ord) {
		if len(t.children[id]) == 0 {
			leaves = append(leaves, id)
		}
	}
	return leaves
}

// Branches returns all nodes with at least one child, in traversal order over
// the whole tree.
func (t *Tree) Branches(ord Order) []NodeID {
	var branches []NodeID
	for _, id := range t.collect(Root, ord) {
		if len(t.children[id]) > 0 {
			branches = append(branches, id)
		}
	}
	return branches
}

// RangeNodes returns an iterator over the subtree rooted at start, in the
// given traversal order. A missing start yields an empty sequence.
func (t *Tree) RangeNodes(start NodeID, ord Order) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		if !t.Has(start) {
			return
		}
		for _, id := range t.collect(start, ord) {
			if !yield(id) {
				return
			}
		}
	}
}

// EachNode visits the subtree rooted at start in the given traversal order.
//
// The callback receives each node id together with its depth relative to
// start (the starting node has relative depth 0). Iteration stops at the
// first callback error and returns that error to the caller.
func (t *Tree) EachNode(start NodeID, ord Order, f func(NodeID, int) error) error {
	if !t.Has(start) {
		return fmt.Errorf("%w: %s", ErrNotFound, start)
	}
	type visit struct {
		id    NodeID
		depth int
	}
	agenda := []visit{{start, 0}}
	for len(agenda) > 0 {
		var v visit
		if ord == BFS {
			v, agenda = agenda[0], agenda[1:]
		} else {
			v, agenda = agenda[len(agenda)-1], agenda[:len(agenda)-1]
		}
		if err := f(v.id, v.depth); err != nil {
			return err
		}
		kids := t.orderedChildren(v.id)
		if ord == BFS {
			for _, kid := range kids {
				agenda = append(agenda, visit{kid, v.depth + 1})
			}
		} else {
			for i := len(kids) - 1; i >= 0; i-- {
				agenda = append(agenda, visit{kids[i], v.depth + 1})
			}
		}
	}
	return nil
}

// collect flattens a subtree into a slice, starting node included.
// The caller guarantees that start exists.
func (t *Tree) collect(start NodeID, ord Order) []NodeID {
	out := make([]NodeID, 0, len(t.store)+1)
	_ = t.EachNode(start, ord, func(id NodeID, _ int) error {
		out = append(out, id)
		return nil
	})
	return out
}
