package newick

import (
	"strings"

	"github.com/dendrogo/dendro/core"
)

// Encode serializes the tree under root to Newick text, terminator
// included. Leaves render through the leaf codec; an internal node
// renders its children comma-joined inside grouping marks, then its own
// label through the internal codec. Child order is preserved exactly.
//
// No cycle protection: a graph with a cycle through child links will
// not terminate. Well-formed trees are the caller's responsibility.
//
// Complexity: O(n) time, O(height) call-stack space.
func Encode(root core.Node, opts ...Option) (string, error) {
	if root == nil {
		return "", ErrNilNode
	}
	o, err := resolve(opts)
	if err != nil {
		return "", err
	}

	renderLeaf, renderInternal := RenderFragment, RenderFragment
	if o.codecs != nil {
		renderLeaf = o.codecs.Leaf.Render
		renderInternal = o.codecs.Internal.Render
	}

	var sb strings.Builder
	encodeNode(&sb, root, renderLeaf, renderInternal)
	sb.WriteByte(';')

	return sb.String(), nil
}

// encodeNode writes one subtree, recursively.
func encodeNode(sb *strings.Builder, n core.Node, leaf, internal func(core.Node) string) {
	count := n.ChildCount()
	if count == 0 {
		sb.WriteString(leaf(n))

		return
	}
	sb.WriteByte('(')
	for i := 0; i < count; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		encodeNode(sb, n.Child(i), leaf, internal)
	}
	sb.WriteByte(')')
	sb.WriteString(internal(n))
}
