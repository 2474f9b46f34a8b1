package core

import "math"

// Factory hands out node identities and constructs both node variants.
//
// The identity counter is plain (unsynchronized) state: a Factory, like
// the nodes it creates, belongs to one call stack at a time. Create one
// Factory per tree-building context — or per test — and identities stay
// strictly increasing with no interference.
type Factory struct {
	nextID uint64
}

// NewFactory returns a Factory whose first node will have ID 1.
// Complexity: O(1)
func NewFactory() *Factory {
	return &Factory{}
}

// next reserves and returns the next identity.
func (f *Factory) next() uint64 {
	f.nextID++

	return f.nextID
}

// NewArrayNode creates an unnamed, unlinked ArrayNode with an unset
// branch length.
// Complexity: O(1)
func (f *Factory) NewArrayNode() *ArrayNode {
	return &ArrayNode{id: f.next(), length: math.NaN()}
}

// NewListNode creates an unnamed, unlinked ListNode with an unset
// branch length.
// Complexity: O(1)
func (f *Factory) NewListNode() *ListNode {
	return &ListNode{id: f.next(), length: math.NaN()}
}

// NewLike creates a fresh node of the same variant as prototype, so
// structure-rewriting algorithms never mix variants inside one tree.
// Complexity: O(1)
func (f *Factory) NewLike(prototype Node) Node {
	if _, ok := prototype.(*ListNode); ok {
		return f.NewListNode()
	}

	return f.NewArrayNode()
}
