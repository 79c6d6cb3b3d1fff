package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Check validates structural tree invariants: agreement between node store
// and child index, the single-parent property, dense per-parent sibling
// indices, and root-reachability of every node (which rules out cycles).
//
// Every mutating operation preserves these invariants, so for trees built
// through the Tree API a failing Check indicates a bug in this package.
// Check earns its keep at trust boundaries, on trees reconstructed by
// FromMapping from data of uncertain origin.
func (t *Tree) Check() error {
	for parent, set := range t.children {
		if !t.Has(parent) {
			return fmt.Errorf("%w: child index lists unknown parent %s", ErrInconsistent, parent)
		}
		seen := make([]bool, len(set))
		for child := range set {
			n, ok := t.store[child]
			if !ok {
				return fmt.Errorf("%w: child index lists unknown node %s", ErrInconsistent, child)
			}
			if n.parent != parent {
				return fmt.Errorf("%w: %s indexed under %s but records parent %s",
					ErrInconsistent, child, parent, n.parent)
			}
			if n.index < 0 || n.index >= len(set) {
				return fmt.Errorf("%w: index %d of %s outside of [0,%d)",
					ErrInconsistent, n.index, child, len(set))
			}
			if seen[n.index] {
				return fmt.Errorf("%w: duplicate sibling index %d under %s",
					ErrInconsistent, n.index, parent)
			}
			seen[n.index] = true
		}
	}
	for id, n := range t.store {
		set, ok := t.children[n.parent]
		if !ok {
			return fmt.Errorf("%w: %s not indexed under its parent %s", ErrInconsistent, id, n.parent)
		}
		if _, ok := set[id]; !ok {
			return fmt.Errorf("%w: %s not indexed under its parent %s", ErrInconsistent, id, n.parent)
		}
		if err := t.checkRooted(id); err != nil {
			return err
		}
	}
	return nil
}

// checkRooted walks the parent chain of a node and verifies that it reaches
// the root within len(store) steps. A chain which does not is cyclic or
// dangling.
func (t *Tree) checkRooted(id NodeID) error {
	anc := id
	for steps := 0; steps <= len(t.store); steps++ {
		n, ok := t.store[anc]
		if !ok {
			return fmt.Errorf("%w: ancestor chain of %s leaves the store at %s",
				ErrInconsistent, id, anc)
		}
		if n.parent.IsRoot() {
			return nil
		}
		anc = n.parent
	}
	return fmt.Errorf("%w: ancestor chain of %s does not reach the root", ErrInconsistent, id)
}
