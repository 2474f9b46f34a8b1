package traverse

import "github.com/dendrogo/dendro/core"

// Leaves collects every childless node under root in depth-first
// order. That ordering is part of the contract — alignment columns and
// display rows downstream depend on it. A leaf root yields itself.
// Complexity: O(n)
func Leaves(root core.Node) []core.Node {
	if root == nil {
		return nil
	}
	var leaves []core.Node
	_ = PreOrderFixed(root, func(n core.Node) error {
		if n.ChildCount() == 0 {
			leaves = append(leaves, n)
		}

		return nil
	})

	return leaves
}

// LeafCount reports the number of childless nodes under root.
// Complexity: O(n)
func LeafCount(root core.Node) int {
	count := 0
	if root == nil {
		return 0
	}
	_ = PreOrderFixed(root, func(n core.Node) error {
		if n.ChildCount() == 0 {
			count++
		}

		return nil
	})

	return count
}

// FirstLeaf descends along first children to the leftmost leaf.
// Complexity: O(height)
func FirstLeaf(root core.Node) core.Node {
	if root == nil {
		return nil
	}
	n := root
	for n.ChildCount() > 0 {
		n = n.FirstChild()
	}

	return n
}

// LastLeaf descends along last children to the rightmost leaf.
// Complexity: O(height)
func LastLeaf(root core.Node) core.Node {
	if root == nil {
		return nil
	}
	n := root
	for n.ChildCount() > 0 {
		n = n.LastChild()
	}

	return n
}

// Siblings returns n's co-children in order, excluding n itself.
// A root has no siblings.
// Complexity: O(k)
func Siblings(n core.Node) []core.Node {
	if n == nil {
		return nil
	}
	p := n.Parent()
	if p == nil {
		return nil
	}
	sibs := make([]core.Node, 0, p.ChildCount()-1)
	for i := 0; i < p.ChildCount(); i++ {
		if c := p.Child(i); c != n {
			sibs = append(sibs, c)
		}
	}

	return sibs
}

// Ancestors returns the chain from n's parent up to the root, leaf
// side first. A root has none.
// Complexity: O(depth)
func Ancestors(n core.Node) []core.Node {
	if n == nil {
		return nil
	}
	var chain []core.Node
	for p := n.Parent(); p != nil; p = p.Parent() {
		chain = append(chain, p)
	}

	return chain
}

// Path returns the inclusive chain from ancestor down to descendant.
// ErrNotRelated when ancestor is not on descendant's root line.
// Complexity: O(depth)
func Path(ancestor, descendant core.Node) ([]core.Node, error) {
	if ancestor == nil || descendant == nil {
		return nil, ErrNilRoot
	}
	var reversed []core.Node
	for n := descendant; n != nil; n = n.Parent() {
		reversed = append(reversed, n)
		if n == ancestor {
			// flip to ancestor-first order
			for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
				reversed[i], reversed[j] = reversed[j], reversed[i]
			}

			return reversed, nil
		}
	}

	return nil, ErrNotRelated
}
