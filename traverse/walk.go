package traverse

import (
	"errors"

	"github.com/dendrogo/dendro/core"
)

// PreOrder walks internal-first: visit the node, then its children in
// order. This is the stable variant — the child count is re-read after
// every step, so the visitor may restructure the tree mid-walk.
// Complexity: O(n) time, O(height) call-stack space.
func PreOrder(root core.Node, visit Visit) error {
	if err := checkWalk(root, visit); err != nil {
		return err
	}

	return done(preOrderStable(root, visit))
}

// PreOrderFixed is the snapshot variant of PreOrder: each node's
// children are captured before recursing. Faster, and unsafe when the
// visitor mutates structure.
func PreOrderFixed(root core.Node, visit Visit) error {
	if err := checkWalk(root, visit); err != nil {
		return err
	}

	return done(preOrderFixed(root, visit))
}

// PostOrder walks leaf-first: children in order, then the node itself.
// Stable variant; see PreOrder for the contract.
func PostOrder(root core.Node, visit Visit) error {
	if err := checkWalk(root, visit); err != nil {
		return err
	}

	return done(postOrderStable(root, visit))
}

// PostOrderFixed is the snapshot variant of PostOrder.
func PostOrderFixed(root core.Node, visit Visit) error {
	if err := checkWalk(root, visit); err != nil {
		return err
	}

	return done(postOrderFixed(root, visit))
}

// LevelOrder walks breadth-first on an explicit FIFO queue — iterative,
// no recursion. Complexity: O(n) time, O(width) queue space.
func LevelOrder(root core.Node, visit Visit) error {
	if err := checkWalk(root, visit); err != nil {
		return err
	}

	queue := []core.Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if err := visit(n); err != nil {
			return done(err)
		}
		for i := 0; i < n.ChildCount(); i++ {
			queue = append(queue, n.Child(i))
		}
	}

	return nil
}

// Find runs a level-order search and returns the first node matching
// pred, or nil. Safe on a nil root.
func Find(root core.Node, pred func(core.Node) bool) core.Node {
	if root == nil || pred == nil {
		return nil
	}

	var match core.Node
	_ = LevelOrder(root, func(n core.Node) error {
		if pred(n) {
			match = n

			return ErrStop
		}

		return nil
	})

	return match
}

// PreOrderDepth walks pre-order but never descends past maxDepth edges
// below the root: the frontier at the budget is still visited, its
// children are not. maxDepth 0 visits the root alone.
func PreOrderDepth(root core.Node, maxDepth int, visit Visit) error {
	if err := checkWalk(root, visit); err != nil {
		return err
	}
	if maxDepth < 0 {
		return ErrNegativeDepth
	}

	return done(preOrderDepth(root, 0, maxDepth, visit))
}

// checkWalk validates the shared traversal inputs.
func checkWalk(root core.Node, visit Visit) error {
	if root == nil {
		return ErrNilRoot
	}
	if visit == nil {
		return ErrNilVisitor
	}

	return nil
}

// done maps the ErrStop sentinel to success.
func done(err error) error {
	if errors.Is(err, ErrStop) {
		return nil
	}

	return err
}

func preOrderStable(n core.Node, visit Visit) error {
	if err := visit(n); err != nil {
		return err
	}
	// re-read ChildCount every iteration: the visitor may restructure
	for i := 0; i < n.ChildCount(); i++ {
		if err := preOrderStable(n.Child(i), visit); err != nil {
			return err
		}
	}

	return nil
}

func preOrderFixed(n core.Node, visit Visit) error {
	if err := visit(n); err != nil {
		return err
	}
	for _, c := range snapshot(n) {
		if err := preOrderFixed(c, visit); err != nil {
			return err
		}
	}

	return nil
}

func postOrderStable(n core.Node, visit Visit) error {
	for i := 0; i < n.ChildCount(); i++ {
		if err := postOrderStable(n.Child(i), visit); err != nil {
			return err
		}
	}

	return visit(n)
}

func postOrderFixed(n core.Node, visit Visit) error {
	for _, c := range snapshot(n) {
		if err := postOrderFixed(c, visit); err != nil {
			return err
		}
	}

	return visit(n)
}

func preOrderDepth(n core.Node, depth, maxDepth int, visit Visit) error {
	if err := visit(n); err != nil {
		return err
	}
	if depth == maxDepth {
		return nil
	}
	for i := 0; i < n.ChildCount(); i++ {
		if err := preOrderDepth(n.Child(i), depth+1, maxDepth, visit); err != nil {
			return err
		}
	}

	return nil
}

// snapshot copies the current child sequence.
func snapshot(n core.Node) []core.Node {
	count := n.ChildCount()
	if count == 0 {
		return nil
	}
	kids := make([]core.Node, count)
	for i := 0; i < count; i++ {
		kids[i] = n.Child(i)
	}

	return kids
}
