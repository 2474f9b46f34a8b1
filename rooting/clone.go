package rooting

import "github.com/dendrogo/dendro/core"

// DeepCopy clones the whole graph under root depth-first into a fully
// independent tree. Each node is a shallow clone — identity, name and
// branch length travel; size and support do not. Mutating either tree
// afterwards never touches the other.
// Complexity: O(n)
func DeepCopy(root core.Node) core.Node {
	if root == nil {
		return nil
	}
	clone := root.ShallowClone()
	for i := 0; i < root.ChildCount(); i++ {
		clone.AddChild(DeepCopy(root.Child(i)))
	}

	return clone
}
