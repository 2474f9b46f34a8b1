package rooting

import "github.com/dendrogo/dendro/core"

// MRCA returns the most recent common ancestor of x and y: the first
// node on y's root line that also lies on x's. Nil when the two nodes
// belong to disjoint trees. MRCA(x, x) is x; the operation is
// symmetric.
// Complexity: O(depth) time and space.
func MRCA(x, y core.Node) core.Node {
	if x == nil || y == nil {
		return nil
	}
	seen := make(map[core.Node]struct{})
	for n := x; n != nil; n = n.Parent() {
		seen[n] = struct{}{}
	}
	for n := y; n != nil; n = n.Parent() {
		if _, ok := seen[n]; ok {
			return n
		}
	}

	return nil
}

// PatristicDistance sums branch lengths along both paths from x and y
// to their MRCA. One upward pass over x records cumulative distances,
// so the ancestor set is never materialized twice. Unset lengths count
// as zero. ErrDisjoint when the nodes share no ancestry.
// Complexity: O(depth) time and space.
func PatristicDistance(x, y core.Node) (float64, error) {
	if x == nil || y == nil {
		return 0, ErrNilNode
	}
	upward := make(map[core.Node]float64)
	acc := 0.0
	for n := x; n != nil; n = n.Parent() {
		upward[n] = acc
		acc += lengthOrZero(n)
	}
	acc = 0
	for n := y; n != nil; n = n.Parent() {
		if d, ok := upward[n]; ok {
			return d + acc, nil
		}
		acc += lengthOrZero(n)
	}

	return 0, ErrDisjoint
}

// TopologicalDistance counts the edges between x and y through their
// MRCA: 0 for a node and itself, -1 when the nodes belong to disjoint
// trees.
// Complexity: O(depth) time and space.
func TopologicalDistance(x, y core.Node) int {
	if x == nil || y == nil {
		return -1
	}
	upward := make(map[core.Node]int)
	edges := 0
	for n := x; n != nil; n = n.Parent() {
		upward[n] = edges
		edges++
	}
	edges = 0
	for n := y; n != nil; n = n.Parent() {
		if d, ok := upward[n]; ok {
			return d + edges
		}
		edges++
	}

	return -1
}

// lengthOrZero treats an unset branch length as zero distance.
func lengthOrZero(n core.Node) float64 {
	if !n.HasLength() {
		return 0
	}

	return n.Length()
}

// distanceToAncestor accumulates branch lengths walking n up to anc.
// The caller guarantees anc is on n's root line.
func distanceToAncestor(n, anc core.Node) float64 {
	acc := 0.0
	for cur := n; cur != anc; cur = cur.Parent() {
		acc += lengthOrZero(cur)
	}

	return acc
}
