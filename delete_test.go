package arbor

import (
	"errors"
	"testing"
)

func TestDeleteRefuse(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := NewTree()
	n1, n2, n3 := MkID("n1"), MkID("n2"), MkID("n3")
	tree.Append(Root, n1)
	tree.Append(n1, n2)
	tree.Append(n2, n3)
	if err := tree.Delete(n1, DeleteRefuse); !errors.Is(err, ErrHasChildren) {
		t.Errorf("expected ErrHasChildren, got %v", err)
	}
	checked(t, tree)
	if !tree.Has(n1) {
		t.Error("refused delete must not remove the node")
	}
	if err := tree.Delete(n3, DeleteRefuse); err != nil {
		t.Fatalf("expected leaf delete to succeed, got %v", err)
	}
	checked(t, tree)
	if tree.Has(n3) {
		t.Error("expected n3 to be gone")
	}
}

func TestDeleteRefuseClosesGap(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := NewTree()
	a, b, c := MkID("a"), MkID("b"), MkID("c")
	for _, id := range []NodeID{a, b, c} {
		tree.Append(Root, id)
	}
	if err := tree.Delete(b, DeleteRefuse); err != nil {
		t.Fatal(err)
	}
	checked(t, tree)
	if kids := childrenOf(t, tree, Root); !sameIDs(kids, []NodeID{a, c}) {
		t.Errorf("expected [a c] after deleting b, got %v", kids)
	}
}

func TestDeleteReattach(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := NewTree()
	n1, n2, n3 := MkID("n1"), MkID("n2"), MkID("n3")
	tree.Append(Root, n1)
	tree.Append(n1, n2)
	tree.Append(n2, n3)
	if err := tree.Delete(n1, DeleteReattach); err != nil {
		t.Fatal(err)
	}
	checked(t, tree)
	desc, err := tree.Descendants(Root, DFS)
	if err != nil {
		t.Fatal(err)
	}
	if !sameIDs(desc, []NodeID{n2, n3}) {
		t.Errorf("expected descendants [n2 n3], got %v", desc)
	}
	if parent, _ := tree.Parent(n2); parent != Root {
		t.Errorf("expected n2 to be a direct child of the root, parent is %s", parent)
	}
	if parent, _ := tree.Parent(n3); parent != n2 {
		t.Errorf("expected n3 to keep its parent n2, is %s", parent)
	}
}

func TestDeleteReattachKeepsOrder(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := NewTree()
	n1, x := MkID("n1"), MkID("x")
	a, b := MkID("a"), MkID("b")
	tree.Append(Root, n1)
	tree.Append(Root, x)
	tree.Append(n1, a)
	tree.Append(n1, b)
	if err := tree.Delete(n1, DeleteReattach); err != nil {
		t.Fatal(err)
	}
	checked(t, tree)
	// Children reattach in their relative order, appended to the parent's
	// remaining children.
	if kids := childrenOf(t, tree, Root); !sameIDs(kids, []NodeID{x, a, b}) {
		t.Errorf("expected [x a b], got %v", kids)
	}
}

func TestDeleteCascade(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := NewTree()
	n1, n2, n3, n4, sib := MkID("n1"), MkID("n2"), MkID("n3"), MkID("n4"), MkID("sib")
	tree.Append(Root, n1)
	tree.Append(Root, sib)
	tree.Append(n1, n2)
	tree.Append(n2, n3)
	tree.Append(n2, n4)
	if err := tree.Delete(n2, DeleteCascade); err != nil {
		t.Fatal(err)
	}
	checked(t, tree)
	for _, id := range []NodeID{n2, n3, n4} {
		if tree.Has(id) {
			t.Errorf("expected %s to be gone after cascade", id)
		}
	}
	desc, _ := tree.Descendants(Root, DFS)
	if !sameIDs(desc, []NodeID{n1, sib}) {
		t.Errorf("expected descendants [n1 sib], got %v", desc)
	}
}

func TestDeleteErrors(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := NewTree()
	n1 := MkID("n1")
	tree.Append(Root, n1)
	if err := tree.Delete(Root, DeleteCascade); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("expected ErrInvalidOperation for root delete, got %v", err)
	}
	if err := tree.Delete(MkID("nowhere"), DeleteCascade); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := tree.Delete(n1, DeleteStrategy(42)); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("expected ErrInvalidOperation for unknown strategy, got %v", err)
	}
	checked(t, tree)
	if !tree.Has(n1) {
		t.Error("failed deletes must not change the tree")
	}
}
