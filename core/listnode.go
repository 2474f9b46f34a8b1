package core

import "math"

// ListNode is the low-memory Node variant: a first-child pointer plus a
// next-sibling chain and a single parent back-reference. Three pointers
// per node, no slices.
//
// Trade-offs versus ArrayNode: ChildCount, Child(i) and append are all
// O(k) chain walks, and ListNode implements Node only — the
// multi-parent surface of MultiParentNode is a documented gap (one
// parent slot exists, ever). Use it for very large, read-mostly trees
// where per-node memory dominates.
//
// ListNode children must themselves be ListNodes; inserting an
// ArrayNode child panics (programmer error — one variant per tree).
type ListNode struct {
	id      uint64
	name    string
	length  float64 // NaN = unset
	size    int
	support float64

	parent     *ListNode
	firstChild *ListNode
	nextSib    *ListNode
}

var _ Node = (*ListNode)(nil)

// asListNode narrows a Node to *ListNode, panicking on foreign variants.
func asListNode(n Node) *ListNode {
	ln, ok := n.(*ListNode)
	if !ok {
		panic("core: ListNode trees cannot mix in other node variants")
	}

	return ln
}

// ID reports the Factory-assigned identity.
func (n *ListNode) ID() uint64 { return n.id }

// Name returns the node's name ("" = unnamed).
func (n *ListNode) Name() string { return n.name }

// SetName sets the node's name.
func (n *ListNode) SetName(name string) { n.name = name }

// Length returns the branch length to the parent, or NaN when unset.
func (n *ListNode) Length() float64 { return n.length }

// SetLength sets the branch length.
func (n *ListNode) SetLength(length float64) { n.length = length }

// HasLength reports whether a branch length has been set.
func (n *ListNode) HasLength() bool { return !math.IsNaN(n.length) }

// ClearLength marks the branch length unset again.
func (n *ListNode) ClearLength() { n.length = math.NaN() }

// Size returns the user-defined size metric.
func (n *ListNode) Size() int { return n.size }

// SetSize sets the size metric.
func (n *ListNode) SetSize(size int) { n.size = size }

// Support returns the auxiliary scalar.
func (n *ListNode) Support() float64 { return n.support }

// SetSupport sets the auxiliary scalar.
func (n *ListNode) SetSupport(support float64) { n.support = support }

// ChildCount reports the number of children. Complexity: O(k)
func (n *ListNode) ChildCount() int {
	count := 0
	for c := n.firstChild; c != nil; c = c.nextSib {
		count++
	}

	return count
}

// Child returns the child at position i. Panics when i is out of range.
// Complexity: O(k)
func (n *ListNode) Child(i int) Node {
	if i < 0 {
		panic("core: Child position out of range")
	}
	for c := n.firstChild; c != nil; c = c.nextSib {
		if i == 0 {
			return c
		}
		i--
	}
	panic("core: Child position out of range")
}

// FirstChild returns the first child, or nil when childless.
func (n *ListNode) FirstChild() Node {
	if n.firstChild == nil {
		return nil
	}

	return n.firstChild
}

// LastChild returns the last child, or nil when childless.
// Complexity: O(k)
func (n *ListNode) LastChild() Node {
	if n.firstChild == nil {
		return nil
	}
	c := n.firstChild
	for c.nextSib != nil {
		c = c.nextSib
	}

	return c
}

// AddChild appends c to the sibling chain and sets its parent
// back-reference. Complexity: O(k)
func (n *ListNode) AddChild(c Node) {
	lc := asListNode(c)
	lc.nextSib = nil
	if n.firstChild == nil {
		n.firstChild = lc
	} else {
		last := n.firstChild
		for last.nextSib != nil {
			last = last.nextSib
		}
		last.nextSib = lc
	}
	lc.linkParent(n)
}

// InsertChild splices c into the chain at position i; i == ChildCount()
// appends. Panics when i is out of range. Complexity: O(k)
func (n *ListNode) InsertChild(i int, c Node) {
	if i < 0 {
		panic("core: InsertChild position out of range")
	}
	lc := asListNode(c)
	if i == 0 {
		lc.nextSib = n.firstChild
		n.firstChild = lc
		lc.linkParent(n)

		return
	}
	prev := n.firstChild
	for j := 1; j < i; j++ {
		if prev == nil {
			panic("core: InsertChild position out of range")
		}
		prev = prev.nextSib
	}
	if prev == nil {
		panic("core: InsertChild position out of range")
	}
	lc.nextSib = prev.nextSib
	prev.nextSib = lc
	lc.linkParent(n)
}

// ReplaceChild swaps the child at position i for c and returns the
// displaced child. Panics when i is out of range. Complexity: O(k)
func (n *ListNode) ReplaceChild(i int, c Node) Node {
	lc := asListNode(c)
	old := asListNode(n.Child(i))
	lc.nextSib = old.nextSib
	if n.firstChild == old {
		n.firstChild = lc
	} else {
		prev := n.firstChild
		for prev.nextSib != old {
			prev = prev.nextSib
		}
		prev.nextSib = lc
	}
	old.nextSib = nil
	old.unlinkParent(n)
	lc.linkParent(n)

	return old
}

// RemoveChildAt removes and returns the child at position i.
// Panics when i is out of range. Complexity: O(k)
func (n *ListNode) RemoveChildAt(i int) Node {
	old := asListNode(n.Child(i))
	n.spliceOut(old)
	old.unlinkParent(n)

	return old
}

// RemoveChild removes c by reference; false when c is not a child.
// Complexity: O(k)
func (n *ListNode) RemoveChild(c Node) bool {
	for have := n.firstChild; have != nil; have = have.nextSib {
		if Node(have) == c {
			n.spliceOut(have)
			have.unlinkParent(n)

			return true
		}
	}

	return false
}

// RemoveAllChildren detaches every child. Complexity: O(k)
func (n *ListNode) RemoveAllChildren() {
	for c := n.firstChild; c != nil; {
		next := c.nextSib
		c.nextSib = nil
		c.parent = nil
		c = next
	}
	n.firstChild = nil
}

// Parent returns the single parent slot, or nil for a root.
func (n *ListNode) Parent() Node {
	if n.parent == nil {
		return nil
	}

	return n.parent
}

// ShallowClone returns an unlinked ListNode with the same identity,
// name and branch length. Size and support are not copied.
func (n *ListNode) ShallowClone() Node {
	return &ListNode{id: n.id, name: n.name, length: n.length}
}

// spliceOut unhooks c from the sibling chain, leaving c detached.
func (n *ListNode) spliceOut(c *ListNode) {
	if n.firstChild == c {
		n.firstChild = c.nextSib
	} else {
		prev := n.firstChild
		for prev.nextSib != c {
			prev = prev.nextSib
		}
		prev.nextSib = c.nextSib
	}
	c.nextSib = nil
}

// linkParent stores p in the single parent slot without reciprocating.
// A previous parent is simply displaced; ListNode has one slot.
func (n *ListNode) linkParent(p Node) { n.parent = asListNode(p) }

// unlinkParent clears the parent slot when it holds p.
func (n *ListNode) unlinkParent(p Node) bool {
	if n.parent != nil && Node(n.parent) == p {
		n.parent = nil

		return true
	}

	return false
}

// linkChild appends c to the chain without reciprocating.
func (n *ListNode) linkChild(c Node) {
	lc := asListNode(c)
	lc.nextSib = nil
	if n.firstChild == nil {
		n.firstChild = lc

		return
	}
	last := n.firstChild
	for last.nextSib != nil {
		last = last.nextSib
	}
	last.nextSib = lc
}

// unlinkChild removes c from the chain without reciprocating.
func (n *ListNode) unlinkChild(c Node) bool {
	lc, ok := c.(*ListNode)
	if !ok {
		return false
	}
	for have := n.firstChild; have != nil; have = have.nextSib {
		if have == lc {
			n.spliceOut(lc)

			return true
		}
	}

	return false
}
