package core_test

import (
	"testing"

	"github.com/dendrogo/dendro/core"
)

// TestArrayNode_MultiParentLifecycle exercises the MultiParentNode
// surface: append, positional replace, removal by position and
// reference, and bulk detach — each keeping the child side consistent.
func TestArrayNode_MultiParentLifecycle(t *testing.T) {
	f := core.NewFactory()
	n := f.NewArrayNode()
	p1, p2, p3 := f.NewArrayNode(), f.NewArrayNode(), f.NewArrayNode()

	if !n.AddParent(p1) || !n.AddParent(p2) {
		t.Fatal("AddParent of fresh parents returned false")
	}
	if got := n.ParentCount(); got != 2 {
		t.Fatalf("ParentCount = %d; want 2", got)
	}
	if n.Parent() != core.Node(p1) || n.ParentAt(1) != core.Node(p2) {
		t.Fatal("parent slots out of order")
	}
	// reciprocal: n must be a child of both parents
	if p1.ChildCount() != 1 || p1.Child(0) != core.Node(n) {
		t.Error("AddParent did not register child on p1")
	}
	if p2.ChildCount() != 1 || p2.Child(0) != core.Node(n) {
		t.Error("AddParent did not register child on p2")
	}

	// SetParentAt replaces slot 1 and severs p2's child link
	if !n.SetParentAt(1, p3) {
		t.Fatal("SetParentAt(1, p3) = false; want true")
	}
	if n.ParentAt(1) != core.Node(p3) {
		t.Error("slot 1 not replaced")
	}
	if p2.ChildCount() != 0 {
		t.Error("displaced parent keeps stale child link")
	}
	if p3.ChildCount() != 1 || p3.Child(0) != core.Node(n) {
		t.Error("new parent missing child link")
	}

	// removal by position, then by reference
	if got := n.RemoveParentAt(1); got != core.Node(p3) {
		t.Fatalf("RemoveParentAt(1) = %v; want p3", got)
	}
	if p3.ChildCount() != 0 {
		t.Error("RemoveParentAt left stale child link")
	}
	if !n.RemoveParent(p1) {
		t.Fatal("RemoveParent(p1) = false; want true")
	}
	if n.RemoveParent(p1) {
		t.Error("RemoveParent of absent parent = true; want false")
	}
	if n.ParentCount() != 0 || n.Parent() != nil {
		t.Error("parent slots not empty after removals")
	}
}

// TestArrayNode_DuplicateParentRejected pins the failure-return (not
// panic, not error) contract for duplicate parent insertion.
func TestArrayNode_DuplicateParentRejected(t *testing.T) {
	f := core.NewFactory()
	n, p, q := f.NewArrayNode(), f.NewArrayNode(), f.NewArrayNode()

	if !n.AddParent(p) {
		t.Fatal("first AddParent = false")
	}
	if n.AddParent(p) {
		t.Error("duplicate AddParent = true; want false")
	}
	if got := n.ParentCount(); got != 1 {
		t.Errorf("ParentCount after duplicate append = %d; want 1", got)
	}
	if p.ChildCount() != 1 {
		t.Errorf("duplicate append touched the parent's children: %d", p.ChildCount())
	}

	n.AddParent(q)
	if n.SetParentAt(0, q) {
		t.Error("SetParentAt with existing parent = true; want false")
	}
	if n.Parent() != core.Node(p) {
		t.Error("rejected SetParentAt still mutated slot 0")
	}
}

// TestArrayNode_RemoveAllParents verifies bulk detach from the parent side.
func TestArrayNode_RemoveAllParents(t *testing.T) {
	f := core.NewFactory()
	n := f.NewArrayNode()
	parents := []*core.ArrayNode{f.NewArrayNode(), f.NewArrayNode()}
	for _, p := range parents {
		n.AddParent(p)
	}
	n.RemoveAllParents()
	if n.ParentCount() != 0 {
		t.Fatalf("ParentCount = %d; want 0", n.ParentCount())
	}
	for _, p := range parents {
		if p.ChildCount() != 0 {
			t.Errorf("parent %d keeps stale child after RemoveAllParents", p.ID())
		}
	}
}

// TestArrayNode_CompactingShift verifies removal leaves no hole before
// the logical end of the child buffer.
func TestArrayNode_CompactingShift(t *testing.T) {
	f := core.NewFactory()
	p := f.NewArrayNode()
	var kids []*core.ArrayNode
	for i := 0; i < 5; i++ {
		k := f.NewArrayNode()
		kids = append(kids, k)
		p.AddChild(k)
	}
	p.RemoveChildAt(2)
	want := []*core.ArrayNode{kids[0], kids[1], kids[3], kids[4]}
	for i, w := range want {
		if p.Child(i) != core.Node(w) {
			t.Fatalf("Child(%d) = node %d; want node %d", i, p.Child(i).ID(), w.ID())
		}
	}
}
