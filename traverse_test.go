package arbor

import (
	"errors"
	"testing"
)

// fixtureTree builds
//
//	#root ── a ── a1
//	      │    └─ a2
//	      ├─ b
//	      └─ c ── c1 ── c11
func fixtureTree(t *testing.T) *Tree {
	t.Helper()
	tree := NewTree()
	edges := []struct{ parent, child string }{
		{"", "a"}, {"", "b"}, {"", "c"},
		{"a", "a1"}, {"a", "a2"},
		{"c", "c1"}, {"c1", "c11"},
	}
	for _, e := range edges {
		parent := Root
		if e.parent != "" {
			parent = MkID(e.parent)
		}
		if err := tree.Append(parent, MkID(e.child)); err != nil {
			t.Fatalf("building fixture: %v", err)
		}
	}
	checked(t, tree)
	return tree
}

func ids(names ...string) []NodeID {
	out := make([]NodeID, len(names))
	for i, name := range names {
		if name == "#root" {
			out[i] = Root
			continue
		}
		out[i] = MkID(name)
	}
	return out
}

func TestTraversalDFS(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := fixtureTree(t)
	seq, err := tree.Nodes(Root, DFS)
	if err != nil {
		t.Fatal(err)
	}
	want := ids("#root", "a", "a1", "a2", "b", "c", "c1", "c11")
	if !sameIDs(seq, want) {
		t.Errorf("DFS sequence %v, want %v", seq, want)
	}
}

func TestTraversalBFS(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := fixtureTree(t)
	seq, err := tree.Nodes(Root, BFS)
	if err != nil {
		t.Fatal(err)
	}
	want := ids("#root", "a", "b", "c", "a1", "a2", "c1", "c11")
	if !sameIDs(seq, want) {
		t.Errorf("BFS sequence %v, want %v", seq, want)
	}
}

func TestTraversalDeterminism(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := fixtureTree(t)
	for _, ord := range []Order{DFS, BFS} {
		first, _ := tree.Nodes(Root, ord)
		second, _ := tree.Nodes(Root, ord)
		if !sameIDs(first, second) {
			t.Errorf("%s traversal not deterministic: %v vs %v", ord, first, second)
		}
	}
}

func TestSubtreeTraversal(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := fixtureTree(t)
	seq, err := tree.Nodes(MkID("c"), DFS)
	if err != nil {
		t.Fatal(err)
	}
	if !sameIDs(seq, ids("c", "c1", "c11")) {
		t.Errorf("subtree sequence %v", seq)
	}
	desc, err := tree.Descendants(MkID("a"), DFS)
	if err != nil {
		t.Fatal(err)
	}
	if !sameIDs(desc, ids("a1", "a2")) {
		t.Errorf("descendants of a = %v", desc)
	}
	if _, err := tree.Nodes(MkID("nowhere"), DFS); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLeavesAndBranches(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := fixtureTree(t)
	if leaves := tree.Leaves(DFS); !sameIDs(leaves, ids("a1", "a2", "b", "c11")) {
		t.Errorf("leaves = %v", leaves)
	}
	if branches := tree.Branches(DFS); !sameIDs(branches, ids("#root", "a", "c", "c1")) {
		t.Errorf("branches = %v", branches)
	}
	// An empty tree consists of a single leaf: the root.
	empty := NewTree()
	if leaves := empty.Leaves(DFS); !sameIDs(leaves, []NodeID{Root}) {
		t.Errorf("leaves of empty tree = %v", leaves)
	}
	if branches := empty.Branches(DFS); len(branches) != 0 {
		t.Errorf("branches of empty tree = %v", branches)
	}
}

func TestRangeNodes(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := fixtureTree(t)
	var collected []NodeID
	for id := range tree.RangeNodes(Root, DFS) {
		collected = append(collected, id)
		if len(collected) == 3 {
			break // early stop must not run the full traversal
		}
	}
	if !sameIDs(collected, ids("#root", "a", "a1")) {
		t.Errorf("ranged prefix %v", collected)
	}
	for range tree.RangeNodes(MkID("nowhere"), DFS) {
		t.Fatal("expected empty sequence for missing start node")
	}
}

func TestEachNodeDepths(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := fixtureTree(t)
	depths := make(map[NodeID]int)
	err := tree.EachNode(MkID("c"), DFS, func(id NodeID, depth int) error {
		depths[id] = depth
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// Depths are relative to the start of the traversal.
	if depths[MkID("c")] != 0 || depths[MkID("c1")] != 1 || depths[MkID("c11")] != 2 {
		t.Errorf("relative depths = %v", depths)
	}
	// A callback error stops the traversal and propagates.
	boom := errors.New("boom")
	visited := 0
	err = tree.EachNode(Root, BFS, func(NodeID, int) error {
		visited++
		if visited == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected callback error to propagate, got %v", err)
	}
	if visited != 2 {
		t.Errorf("expected traversal to stop at the error, visited %d", visited)
	}
}
