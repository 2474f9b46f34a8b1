package rooting

import (
	"fmt"
	"strings"

	"github.com/dendrogo/dendro/core"
	"github.com/dendrogo/dendro/traverse"
)

// Reroot makes the edge above target the tree's new root edge. The
// ancestry chain from target up to the old root is reversed — each
// former parent along that single path becomes a child of its former
// child — and a fresh node from f becomes the root, holding target at
// length split and target's former parent at the remaining
// (original − split). An old root left with exactly one child is
// spliced out, its branch length folded into that child's.
//
// split of exactly 0 or exactly target's length is legal and yields a
// zero-length edge. Rerooting at a node that already is the root is a
// no-op returning that root. Every path that does not cross the new
// root keeps its total length.
// Complexity: O(depth)
func Reroot(f *core.Factory, target core.Node, split float64) (core.Node, error) {
	if f == nil {
		return nil, ErrNilFactory
	}
	if target == nil {
		return nil, ErrNilNode
	}
	parent := target.Parent()
	if parent == nil {
		return target, nil
	}
	if !target.HasLength() {
		return nil, ErrLengthUnset
	}
	if split < 0 || split > target.Length() {
		return nil, fmt.Errorf("%w: %v not within [0, %v]", ErrSplitOutOfRange, split, target.Length())
	}

	// chain[0] = target, chain[1] = its parent, ..., chain[k] = old root;
	// the edge chain[i]—chain[i+1] carries chain[i]'s length.
	chain := []core.Node{target}
	for n := parent; n != nil; n = n.Parent() {
		chain = append(chain, n)
	}
	edgeLens := make([]float64, len(chain)-1)
	edgeSet := make([]bool, len(chain)-1)
	for i := 0; i < len(chain)-1; i++ {
		edgeLens[i] = chain[i].Length()
		edgeSet[i] = chain[i].HasLength()
	}

	// sever every edge along the chain, then rebuild it reversed
	for i := 1; i < len(chain); i++ {
		chain[i].RemoveChild(chain[i-1])
	}
	for i := 1; i < len(chain)-1; i++ {
		chain[i].AddChild(chain[i+1])
		if edgeSet[i] {
			chain[i+1].SetLength(edgeLens[i])
		} else {
			chain[i+1].ClearLength()
		}
	}

	newRoot := f.NewLike(target)
	newRoot.AddChild(target)
	target.SetLength(split)
	newRoot.AddChild(parent)
	parent.SetLength(edgeLens[0] - split)

	spliceDegreeOne(chain[len(chain)-1])

	return newRoot, nil
}

// RerootOutgroup reroots at the leaf whose name matches name exactly,
// case-insensitively, using half its branch length as the split
// distance. A match already hanging off the current root leaves the
// tree untouched. ErrOutgroupNotFound when no leaf matches.
// Complexity: O(n) search + O(depth) reroot
func RerootOutgroup(f *core.Factory, root core.Node, name string) (core.Node, error) {
	if f == nil {
		return nil, ErrNilFactory
	}
	if root == nil {
		return nil, ErrNilNode
	}
	leaf := traverse.Find(root, func(n core.Node) bool {
		return n.ChildCount() == 0 && strings.EqualFold(n.Name(), name)
	})
	if leaf == nil {
		return nil, fmt.Errorf("%w: %q", ErrOutgroupNotFound, name)
	}
	if leaf.Parent() == root {
		return root, nil
	}

	return Reroot(f, leaf, leaf.Length()/2)
}

// spliceDegreeOne removes oldRoot when the rerooting left it with a
// single child, reattaching that child to oldRoot's own new parent
// with the two branch lengths summed.
func spliceDegreeOne(oldRoot core.Node) {
	if oldRoot.ChildCount() != 1 {
		return
	}
	holder := oldRoot.Parent()
	if holder == nil {
		return
	}
	only := oldRoot.FirstChild()
	combined := lengthOrZero(only) + lengthOrZero(oldRoot)
	hadLength := only.HasLength() || oldRoot.HasLength()

	oldRoot.RemoveChild(only)
	holder.RemoveChild(oldRoot)
	holder.AddChild(only)
	if hadLength {
		only.SetLength(combined)
	}
}
