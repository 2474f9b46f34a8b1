package traverse

import (
	"sort"

	"github.com/dendrogo/dendro/core"
)

// InitSizes assigns every node its subtree size by post-order
// accumulation: a leaf counts 1, an internal node the sum of its
// children. Nil roots are a no-op.
// Complexity: O(n)
func InitSizes(root core.Node) {
	if root == nil {
		return
	}
	_ = PostOrderFixed(root, func(n core.Node) error {
		count := n.ChildCount()
		if count == 0 {
			n.SetSize(1)

			return nil
		}
		sum := 0
		for i := 0; i < count; i++ {
			sum += n.Child(i).Size()
		}
		n.SetSize(sum)

		return nil
	})
}

// Ladderize reorders every node's children by subtree size, branch
// length breaking ties, in the chosen direction. Sizes are recomputed
// first (InitSizes) and are not altered by the reorder; equal-size,
// equal-length siblings keep their relative order (stable sort).
// Complexity: O(n log k), k = max child count
func Ladderize(root core.Node, dir Direction) error {
	if root == nil {
		return ErrNilRoot
	}
	if dir != Ascending && dir != Descending {
		return ErrBadDirection
	}

	InitSizes(root)

	return PostOrderFixed(root, func(n core.Node) error {
		if n.ChildCount() < 2 {
			return nil
		}
		reorderChildren(n, dir)

		return nil
	})
}

// reorderChildren detaches, stably sorts and relinks n's children, so
// the parent/child invariant holds through the shuffle.
func reorderChildren(n core.Node, dir Direction) {
	kids := snapshot(n)
	sort.SliceStable(kids, func(i, j int) bool {
		a, b := kids[i], kids[j]
		if dir == Descending {
			a, b = b, a
		}
		if a.Size() != b.Size() {
			return a.Size() < b.Size()
		}

		return a.Length() < b.Length()
	})
	n.RemoveAllChildren()
	for _, k := range kids {
		n.AddChild(k)
	}
}
