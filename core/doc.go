// Package core provides the mutable tree-node primitives every other
// dendro package is built on: the Node abstraction, an array-backed
// production implementation, a linked-list low-memory implementation,
// and the Factory that hands out node identities.
//
// The one invariant worth remembering:
//
//	for every parent P and child C:  C ∈ P.children  ⇔  P ∈ C.parents
//
// Every mutating operation maintains both sides of that relation in a
// single call — AddChild links the child's parent slot, RemoveChildAt
// unlinks it, AddParent registers the node with the new parent, and so
// on. You never patch the other side yourself.
//
// Two interfaces:
//
//   - Node — the single-parent view consumed by every algorithm in
//     traverse/ and rooting/. Parent() returns parent slot 0 (nil for
//     roots).
//   - MultiParentNode — superset adding the multi-parent slots kept for
//     future network layouts. No algorithm in this library uses more
//     than slot 0.
//
// Two implementations:
//
//   - ArrayNode — children and parents in growable slices; Child(i) is
//     O(1), insert/remove O(k) with a compacting shift. Implements
//     MultiParentNode. This is the production variant.
//   - ListNode — first-child/next-sibling links plus one parent
//     back-reference; most child operations are O(k). Implements Node
//     only; the multi-parent surface is a documented gap.
//
// Identity: every node is created through a Factory, which owns a
// strictly-increasing counter. IDs are unique within a Factory and are
// never reused. Give each test its own Factory and there is no
// cross-test interference.
//
// Error policy (deliberately boring):
//
//   - remove-by-reference of an absent node  → false, nothing raised
//   - duplicate parent insertion             → false, nothing raised
//   - out-of-bounds positional access        → panic (programmer error;
//     check ChildCount/ParentCount first)
//   - mixing ArrayNode and ListNode children inside one tree → panic
//     (programmer error; pick one variant per tree)
//
// Concurrency: none. Nodes and Factories are unsynchronized by design;
// a tree is owned by one call stack at a time.
package core
