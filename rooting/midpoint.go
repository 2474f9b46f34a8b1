package rooting

import (
	"github.com/dendrogo/dendro/core"
	"github.com/dendrogo/dendro/traverse"
)

// MidpointRoot reroots the tree at the midpoint of its longest
// leaf-to-leaf path: the classic heuristic when no outgroup is known.
// Trees with fewer than two leaves, or with a zero-length widest pair,
// come back unchanged.
//
// The widest pair is found by scanning every leaf pair — O(L²)
// patristic lookups, a deliberate, documented ceiling that is fine for
// the moderate trees midpoint rooting is used on.
func MidpointRoot(f *core.Factory, root core.Node) (core.Node, error) {
	if f == nil {
		return nil, ErrNilFactory
	}
	if root == nil {
		return nil, ErrNilNode
	}

	leaves := traverse.Leaves(root)
	if len(leaves) < 2 {
		return root, nil
	}

	var farA, farB core.Node
	maxDist := 0.0
	for i := 0; i < len(leaves); i++ {
		for j := i + 1; j < len(leaves); j++ {
			d, err := PatristicDistance(leaves[i], leaves[j])
			if err != nil {
				return nil, err
			}
			if d > maxDist {
				maxDist, farA, farB = d, leaves[i], leaves[j]
			}
		}
	}
	if maxDist == 0 {
		return root, nil
	}

	// walk from the farther endpoint toward the MRCA until the
	// accumulated distance first reaches the halfway point
	anc := MRCA(farA, farB)
	half := maxDist / 2
	start := farA
	if distanceToAncestor(farA, anc) < half {
		start = farB
	}

	acc := 0.0
	cur := start
	for cur != anc {
		edge := lengthOrZero(cur)
		if acc+edge >= half {
			break
		}
		acc += edge
		cur = cur.Parent()
	}

	return Reroot(f, cur, half-acc)
}
