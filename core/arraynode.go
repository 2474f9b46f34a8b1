package core

import "math"

// ArrayNode is the production Node variant: children and parent slots
// live in growable slices. Child access is O(1); insert and remove are
// O(k) with a compacting shift (k = child count, small in practice).
//
// ArrayNode implements MultiParentNode. The zero value is not usable;
// create nodes through a Factory.
type ArrayNode struct {
	id      uint64
	name    string
	length  float64 // NaN = unset
	size    int
	support float64

	children []Node
	parents  []Node
}

// compile-time interface checks
var (
	_ Node            = (*ArrayNode)(nil)
	_ MultiParentNode = (*ArrayNode)(nil)
)

// ID reports the Factory-assigned identity.
func (n *ArrayNode) ID() uint64 { return n.id }

// Name returns the node's name ("" = unnamed).
func (n *ArrayNode) Name() string { return n.name }

// SetName sets the node's name.
func (n *ArrayNode) SetName(name string) { n.name = name }

// Length returns the branch length to the parent, or NaN when unset.
func (n *ArrayNode) Length() float64 { return n.length }

// SetLength sets the branch length.
func (n *ArrayNode) SetLength(length float64) { n.length = length }

// HasLength reports whether a branch length has been set.
func (n *ArrayNode) HasLength() bool { return !math.IsNaN(n.length) }

// ClearLength marks the branch length unset again.
func (n *ArrayNode) ClearLength() { n.length = math.NaN() }

// Size returns the user-defined size metric.
func (n *ArrayNode) Size() int { return n.size }

// SetSize sets the size metric.
func (n *ArrayNode) SetSize(size int) { n.size = size }

// Support returns the auxiliary scalar.
func (n *ArrayNode) Support() float64 { return n.support }

// SetSupport sets the auxiliary scalar.
func (n *ArrayNode) SetSupport(support float64) { n.support = support }

// ChildCount reports the number of children. Complexity: O(1)
func (n *ArrayNode) ChildCount() int { return len(n.children) }

// Child returns the child at position i. Panics when i is out of range.
// Complexity: O(1)
func (n *ArrayNode) Child(i int) Node { return n.children[i] }

// FirstChild returns the first child, or nil when childless.
func (n *ArrayNode) FirstChild() Node {
	if len(n.children) == 0 {
		return nil
	}

	return n.children[0]
}

// LastChild returns the last child, or nil when childless.
func (n *ArrayNode) LastChild() Node {
	if len(n.children) == 0 {
		return nil
	}

	return n.children[len(n.children)-1]
}

// AddChild appends c and registers the receiver in c's parent slots.
// Complexity: amortized O(1)
func (n *ArrayNode) AddChild(c Node) {
	n.children = append(n.children, c)
	c.linkParent(n)
}

// InsertChild inserts c at position i, shifting later children right.
// i == ChildCount() appends. Panics when i is out of range.
// Complexity: O(k)
func (n *ArrayNode) InsertChild(i int, c Node) {
	if i < 0 || i > len(n.children) {
		panic("core: InsertChild position out of range")
	}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
	c.linkParent(n)
}

// ReplaceChild puts c at position i and returns the displaced child.
// Panics when i is out of range. Complexity: O(1)
func (n *ArrayNode) ReplaceChild(i int, c Node) Node {
	old := n.children[i]
	old.unlinkParent(n)
	n.children[i] = c
	c.linkParent(n)

	return old
}

// RemoveChildAt removes and returns the child at position i, shifting
// later children left so the sequence stays gapless. Panics when i is
// out of range. Complexity: O(k)
func (n *ArrayNode) RemoveChildAt(i int) Node {
	c := n.children[i]
	n.children = append(n.children[:i], n.children[i+1:]...)
	c.unlinkParent(n)

	return c
}

// RemoveChild removes c by reference; false when c is not a child.
// Complexity: O(k)
func (n *ArrayNode) RemoveChild(c Node) bool {
	for i, have := range n.children {
		if have == c {
			n.RemoveChildAt(i)

			return true
		}
	}

	return false
}

// RemoveAllChildren detaches every child. Complexity: O(k)
func (n *ArrayNode) RemoveAllChildren() {
	for _, c := range n.children {
		c.unlinkParent(n)
	}
	n.children = n.children[:0]
}

// Parent returns parent slot 0, or nil for a root.
func (n *ArrayNode) Parent() Node {
	if len(n.parents) == 0 {
		return nil
	}

	return n.parents[0]
}

// ParentCount reports the number of parent slots in use.
func (n *ArrayNode) ParentCount() int { return len(n.parents) }

// ParentAt returns the parent at position i. Panics when i is out of range.
func (n *ArrayNode) ParentAt(i int) Node { return n.parents[i] }

// AddParent appends p and registers the receiver as p's child.
// Reports false when p is already a parent. Complexity: O(k)
func (n *ArrayNode) AddParent(p Node) bool {
	if n.hasParent(p) {
		return false
	}
	n.parents = append(n.parents, p)
	p.linkChild(n)

	return true
}

// SetParentAt replaces the parent at position i with p, severing the
// old parent's child link. Reports false when p is already a parent.
// Panics when i is out of range.
func (n *ArrayNode) SetParentAt(i int, p Node) bool {
	if n.hasParent(p) {
		return false
	}
	old := n.parents[i]
	old.unlinkChild(n)
	n.parents[i] = p
	p.linkChild(n)

	return true
}

// RemoveParentAt removes and returns the parent at position i.
// Panics when i is out of range.
func (n *ArrayNode) RemoveParentAt(i int) Node {
	p := n.parents[i]
	n.parents = append(n.parents[:i], n.parents[i+1:]...)
	p.unlinkChild(n)

	return p
}

// RemoveParent removes p by reference; false when p is not a parent.
func (n *ArrayNode) RemoveParent(p Node) bool {
	for i, have := range n.parents {
		if have == p {
			n.RemoveParentAt(i)

			return true
		}
	}

	return false
}

// RemoveAllParents detaches every parent.
func (n *ArrayNode) RemoveAllParents() {
	for _, p := range n.parents {
		p.unlinkChild(n)
	}
	n.parents = n.parents[:0]
}

// ShallowClone returns an unlinked ArrayNode with the same identity,
// name and branch length. Size and support are not copied.
func (n *ArrayNode) ShallowClone() Node {
	return &ArrayNode{id: n.id, name: n.name, length: n.length}
}

// hasParent reports whether p already occupies a parent slot.
func (n *ArrayNode) hasParent(p Node) bool {
	for _, have := range n.parents {
		if have == p {
			return true
		}
	}

	return false
}

// linkParent records p as a parent without reciprocating.
func (n *ArrayNode) linkParent(p Node) { n.parents = append(n.parents, p) }

// unlinkParent forgets p as a parent without reciprocating.
func (n *ArrayNode) unlinkParent(p Node) bool {
	for i, have := range n.parents {
		if have == p {
			n.parents = append(n.parents[:i], n.parents[i+1:]...)

			return true
		}
	}

	return false
}

// linkChild records c as a child without reciprocating.
func (n *ArrayNode) linkChild(c Node) { n.children = append(n.children, c) }

// unlinkChild forgets c as a child without reciprocating.
func (n *ArrayNode) unlinkChild(c Node) bool {
	for i, have := range n.children {
		if have == c {
			n.children = append(n.children[:i], n.children[i+1:]...)

			return true
		}
	}

	return false
}
