package treegen

import (
	"fmt"

	"github.com/dendrogo/dendro/core"
)

// Star builds the completely unresolved tree: every leaf hangs
// directly off the root. Useful as the degenerate input for resolution
// and ladderization tests.
// Complexity: O(leaves) time and space.
func Star(f *core.Factory, leaves int, opts ...Option) (core.Node, error) {
	if f == nil {
		return nil, ErrNilFactory
	}
	if leaves < 2 {
		return nil, fmt.Errorf("%w: leaves %d < 2", ErrTooSmall, leaves)
	}
	cfg := resolve(opts)

	root := cfg.newNode(f)
	root.ClearLength()
	for i := 0; i < leaves; i++ {
		leaf := cfg.newNode(f)
		leaf.SetName(cfg.nameFn(i))
		root.AddChild(leaf)
	}

	return root, nil
}
