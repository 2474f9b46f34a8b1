// types.go declares the Node and MultiParentNode interfaces and the
// link-maintenance contract shared by both implementations.

package core

// Node is the single-parent view of a tree node. It is the interface
// every algorithm in traverse/ and rooting/ consumes.
//
// A Node carries four user-visible attributes besides its identity:
// a name (blank allowed), a branch length (distance to its parent,
// unset by default), an integer size (auxiliary metric, typically the
// subtree leaf count) and a support value (auxiliary scalar).
//
// Child order is semantically significant: it drives encode order and
// the default leaf ordering.
//
// The unexported link methods restrict implementations to this package
// and are what lets every mutating operation update both sides of the
// parent/child relation atomically.
type Node interface {
	// ID reports the node's Factory-assigned identity.
	// IDs are unique and strictly increasing within one Factory.
	ID() uint64

	// Name returns the node's name; the empty string means unnamed.
	Name() string
	// SetName sets the node's name.
	SetName(name string)

	// Length returns the branch length to the parent, or NaN when unset.
	Length() float64
	// SetLength sets the branch length.
	SetLength(length float64)
	// HasLength reports whether a branch length has been set.
	HasLength() bool
	// ClearLength marks the branch length unset again.
	ClearLength()

	// Size returns the user-defined size metric (see traverse.InitSizes).
	Size() int
	// SetSize sets the size metric.
	SetSize(size int)

	// Support returns the auxiliary scalar (e.g. a bootstrap value).
	Support() float64
	// SetSupport sets the auxiliary scalar.
	SetSupport(support float64)

	// ChildCount reports the number of children. Complexity: O(1) for
	// ArrayNode, O(k) for ListNode.
	ChildCount() int
	// Child returns the child at position i; panics when i is out of
	// range (programmer error — check ChildCount first).
	Child(i int) Node
	// FirstChild returns the first child, or nil when childless.
	FirstChild() Node
	// LastChild returns the last child, or nil when childless.
	LastChild() Node

	// AddChild appends c to the child sequence and registers the
	// receiver in c's parent slots in the same call.
	AddChild(c Node)
	// InsertChild inserts c at position i, shifting later children one
	// slot to the right; i may equal ChildCount (append). Panics when i
	// is out of range.
	InsertChild(i int, c Node)
	// ReplaceChild puts c at position i and returns the displaced
	// child, whose parent link is severed. Panics when i is out of range.
	ReplaceChild(i int, c Node) Node
	// RemoveChildAt removes and returns the child at position i,
	// compacting the sequence. Panics when i is out of range.
	RemoveChildAt(i int) Node
	// RemoveChild removes c by reference. It reports false when c is
	// not a child of the receiver.
	RemoveChild(c Node) bool
	// RemoveAllChildren detaches every child.
	RemoveAllChildren()

	// Parent returns parent slot 0, or nil for a root.
	Parent() Node

	// ShallowClone returns a new unlinked node of the same variant
	// carrying the receiver's identity, name and branch length only.
	// Size and support are not copied.
	ShallowClone() Node

	// Reciprocal link maintenance. One-sided: callers are the public
	// mutators on the opposite endpoint.
	linkParent(p Node)
	unlinkParent(p Node) bool
	linkChild(c Node)
	unlinkChild(c Node) bool
}

// MultiParentNode extends Node with the ordered multi-parent surface
// kept for future reticulate-network variants. Every algorithm shipped
// here assumes single-parent trees and reads slot 0 only.
type MultiParentNode interface {
	Node

	// ParentCount reports the number of parent slots in use.
	ParentCount() int
	// ParentAt returns the parent at position i; panics when i is out
	// of range.
	ParentAt(i int) Node
	// AddParent appends p to the parent slots and registers the
	// receiver as p's child. It reports false (and does nothing) when p
	// is already a parent.
	AddParent(p Node) bool
	// SetParentAt replaces the parent at position i with p, severing
	// the old parent's child link. It reports false when p is already a
	// parent. Panics when i is out of range.
	SetParentAt(i int, p Node) bool
	// RemoveParentAt removes and returns the parent at position i.
	// Panics when i is out of range.
	RemoveParentAt(i int) Node
	// RemoveParent removes p by reference. It reports false when p is
	// not a parent of the receiver.
	RemoveParent(p Node) bool
	// RemoveAllParents detaches every parent.
	RemoveAllParents()
}
