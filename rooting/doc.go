// Package rooting implements the tree algorithms that reason about or
// rewrite ancestry: most-recent-common-ancestor queries, patristic and
// topological distances, rerooting (by node and split distance, or by
// outgroup name), midpoint rooting, and deep copy.
//
// All operations are stateless over the tree they are handed: they
// either return a new root reference or mutate in place, and they keep
// nothing between calls. Every algorithm assumes single-parent
// trees — it consumes the core.Node view and reads parent slot 0 only.
//
// Ancestry queries answer with documented sentinels rather than
// errors where "no answer" is an ordinary outcome: MRCA returns nil for nodes of disjoint trees, and
// TopologicalDistance returns -1. PatristicDistance, whose zero value
// is a legitimate distance, reports ErrDisjoint instead. Identity in
// these walks is node identity (pointer), never the numeric ID — two
// independent Factories may hand out the same ID values.
//
// Rerooting reverses the ancestry chain above the target: each former
// parent along that one path becomes a child of its former child, a
// fresh node (from the caller's Factory) becomes the root with the
// target and its former parent as children, and a degree-1 old root is
// spliced out with its branch lengths summed. Every path that does not
// cross the new root keeps its total length exactly.
//
// Split-point boundaries are deliberately permissive: a split distance
// of exactly 0 or exactly the target's branch length is accepted and
// produces a zero-length edge rather than a special case.
//
// Midpoint rooting scans all leaf pairs — O(L²) patristic lookups, a
// documented ceiling that is comfortable for moderate trees — then
// walks from the farther endpoint of the widest pair to the halfway
// point and delegates to Reroot.
//
// Errors:
//
//	ErrNilNode          - nil node argument.
//	ErrNilFactory       - nil Factory argument.
//	ErrDisjoint         - nodes belong to disjoint trees.
//	ErrLengthUnset      - reroot target has no branch length.
//	ErrSplitOutOfRange  - split distance outside [0, target length].
//	ErrOutgroupNotFound - no leaf matches the outgroup name.
package rooting
