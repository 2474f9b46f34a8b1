// Package traverse provides the traversal contracts and derived tree
// queries built purely on the core.Node abstraction: no knowledge of
// Newick, no knowledge of rooting transforms.
//
// Traversals visit every node reachable from the root exactly once and
// come in two flavors per order:
//
//   - PreOrder / PostOrder — the "stable" variants. They re-read the
//     child count at every step, so a visitor may restructure the tree
//     under its own feet (remove the node it stands on, splice in
//     subtrees) without the walk going stale.
//   - PreOrderFixed / PostOrderFixed — the "fixed" variants. They
//     snapshot each node's children before recursing: measurably faster,
//     and unsafe when the visitor mutates structure. Pick explicitly;
//     the names exist so the unsafe-but-fast path is always a conscious
//     opt-in.
//
// LevelOrder walks breadth-first on an explicit FIFO queue; Find is its
// early-terminating cousin, returning the first node matching a
// predicate. PreOrderDepth bounds the descent by a depth budget while
// still visiting the frontier it stops at.
//
// Every visitor may return ErrStop to end the walk early without an
// error, or any other error to abort the walk and surface it.
//
// Derived queries: Leaves (depth-first order — callers rely on it),
// LeafCount, FirstLeaf/LastLeaf, Siblings, Ancestors (parent→root) and
// Path (inclusive ancestor→descendant chain).
//
// Sizes and ladderization: InitSizes runs a post-order accumulation
// (leaf = 1, internal = sum of children); Ladderize recomputes sizes
// and reorders every node's children by subtree size, branch length
// breaking ties, ascending or descending. The reorder is stable and
// never changes any node's size.
//
// Errors:
//
//	ErrNilRoot       - nil root node.
//	ErrNilVisitor    - nil visitor function.
//	ErrNegativeDepth - negative depth budget.
//	ErrBadDirection  - Direction outside Ascending/Descending.
//	ErrNotRelated    - Path endpoints not on one line of descent.
//	ErrStop          - visitor sentinel: stop the walk, report success.
package traverse
