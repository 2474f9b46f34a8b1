package treegen

import (
	"fmt"

	"github.com/dendrogo/dendro/core"
)

// Caterpillar builds the maximally unbalanced tree over the given leaf
// count: a spine of internal nodes, each holding one leaf and the next
// spine node, with the last spine node holding the final two leaves.
// Leaf i sits at depth min(i+1, leaves-1), so the shape exercises the
// worst case of every depth-bound algorithm.
// Complexity: O(leaves) time and space.
func Caterpillar(f *core.Factory, leaves int, opts ...Option) (core.Node, error) {
	if f == nil {
		return nil, ErrNilFactory
	}
	if leaves < 2 {
		return nil, fmt.Errorf("%w: leaves %d < 2", ErrTooSmall, leaves)
	}
	cfg := resolve(opts)

	root := cfg.newNode(f)
	root.ClearLength()
	spine := root
	for i := 0; i < leaves-2; i++ {
		leaf := cfg.newNode(f)
		leaf.SetName(cfg.nameFn(i))
		spine.AddChild(leaf)

		next := cfg.newNode(f)
		spine.AddChild(next)
		spine = next
	}
	for i := leaves - 2; i < leaves; i++ {
		leaf := cfg.newNode(f)
		leaf.SetName(cfg.nameFn(i))
		spine.AddChild(leaf)
	}

	return root, nil
}
