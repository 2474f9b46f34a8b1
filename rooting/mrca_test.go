package rooting_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dendrogo/dendro/core"
	"github.com/dendrogo/dendro/newick"
	"github.com/dendrogo/dendro/rooting"
	"github.com/dendrogo/dendro/traverse"
)

// byName finds a node in root's tree by exact name.
func byName(t *testing.T, root core.Node, name string) core.Node {
	t.Helper()
	n := traverse.Find(root, func(n core.Node) bool { return n.Name() == name })
	require.NotNil(t, n, "node %q not found", name)

	return n
}

func decode(t *testing.T, src string) core.Node {
	t.Helper()
	root, err := newick.DecodeString(src)
	require.NoError(t, err)

	return root
}

func TestMRCA(t *testing.T) {
	root := decode(t, "((A:1,B:2)AB:3,C:4)r;")
	a, b, c, ab := byName(t, root, "A"), byName(t, root, "B"), byName(t, root, "C"), byName(t, root, "AB")

	require.Same(t, ab, rooting.MRCA(a, b))
	require.Same(t, root, rooting.MRCA(a, c))
	require.Same(t, ab, rooting.MRCA(a, ab), "ancestor of itself and a descendant")

	// idempotence and symmetry
	require.Same(t, a, rooting.MRCA(a, a))
	require.Same(t, rooting.MRCA(a, c), rooting.MRCA(c, a))
}

// TestMRCA_DisjointTrees uses two independently decoded trees whose
// numeric IDs coincide (fresh factory each) — pointer identity, not
// ID, must drive the visited set.
func TestMRCA_DisjointTrees(t *testing.T) {
	t1 := decode(t, "(A:1,B:2);")
	t2 := decode(t, "(A:1,B:2);")
	x := byName(t, t1, "A")
	y := byName(t, t2, "B")
	require.Equal(t, t1.ID(), t2.ID(), "fixture: IDs should coincide across factories")

	require.Nil(t, rooting.MRCA(x, y))
}

func TestPatristicDistance(t *testing.T) {
	root := decode(t, "((A:1,B:2)AB:3,C:4)r;")
	a, b, c := byName(t, root, "A"), byName(t, root, "B"), byName(t, root, "C")

	d, err := rooting.PatristicDistance(a, b)
	require.NoError(t, err)
	require.Equal(t, 3.0, d)

	d, err = rooting.PatristicDistance(a, c)
	require.NoError(t, err)
	require.Equal(t, 8.0, d)

	// zero distance to self is a legitimate answer, not a sentinel
	d, err = rooting.PatristicDistance(a, a)
	require.NoError(t, err)
	require.Equal(t, 0.0, d)

	// unset lengths count as zero
	bare := decode(t, "((A,B)ab,C);")
	d, err = rooting.PatristicDistance(byName(t, bare, "A"), byName(t, bare, "C"))
	require.NoError(t, err)
	require.Equal(t, 0.0, d)
}

func TestPatristicDistance_Disjoint(t *testing.T) {
	t1 := decode(t, "(A:1,B:2);")
	t2 := decode(t, "(C:1,D:2);")
	_, err := rooting.PatristicDistance(byName(t, t1, "A"), byName(t, t2, "C"))
	require.ErrorIs(t, err, rooting.ErrDisjoint)
}

func TestTopologicalDistance(t *testing.T) {
	root := decode(t, "((A:1,B:2)AB:3,C:4)r;")
	a, b, c := byName(t, root, "A"), byName(t, root, "B"), byName(t, root, "C")

	require.Equal(t, 3, rooting.TopologicalDistance(a, c), "A->AB->r->C")
	require.Equal(t, 2, rooting.TopologicalDistance(a, b))
	require.Equal(t, 0, rooting.TopologicalDistance(a, a))
	require.Equal(t, rooting.TopologicalDistance(c, a), rooting.TopologicalDistance(a, c))

	other := decode(t, "(X,Y);")
	require.Equal(t, -1, rooting.TopologicalDistance(a, byName(t, other, "X")))
}
