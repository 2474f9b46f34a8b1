package treegen

import (
	"fmt"

	"github.com/dendrogo/dendro/core"
)

// Balanced builds a full binary tree with the given depth: 2^depth
// leaves, every root-to-leaf path the same edge count. depth 0 yields
// a single named leaf.
// Complexity: O(2^depth) time and space.
func Balanced(f *core.Factory, depth int, opts ...Option) (core.Node, error) {
	if f == nil {
		return nil, ErrNilFactory
	}
	if depth < 0 {
		return nil, fmt.Errorf("%w: depth %d < 0", ErrTooSmall, depth)
	}
	cfg := resolve(opts)

	leafIdx := 0
	var build func(level int) core.Node
	build = func(level int) core.Node {
		n := cfg.newNode(f)
		if level == depth {
			n.SetName(cfg.nameFn(leafIdx))
			leafIdx++

			return n
		}
		n.AddChild(build(level + 1))
		n.AddChild(build(level + 1))

		return n
	}

	root := build(0)
	root.ClearLength()

	return root, nil
}
