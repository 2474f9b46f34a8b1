package rooting_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dendrogo/dendro/core"
	"github.com/dendrogo/dendro/rooting"
	"github.com/dendrogo/dendro/traverse"
)

// maxLeafDepth is the largest root-to-leaf path length.
func maxLeafDepth(t *testing.T, root core.Node) float64 {
	t.Helper()
	far := 0.0
	for _, leaf := range traverse.Leaves(root) {
		d, err := rooting.PatristicDistance(root, leaf)
		require.NoError(t, err)
		if d > far {
			far = d
		}
	}

	return far
}

func TestMidpointRoot(t *testing.T) {
	f := core.NewFactory()
	root := decode(t, "(A:1,(B:1,C:8)i:4)r;")
	before := leafDistances(t, root)

	// widest pair is A—C at 13; the midpoint falls 6.5 into C's edge
	newRoot, err := rooting.MidpointRoot(f, root)
	require.NoError(t, err)
	require.NotSame(t, root, newRoot)

	c := byName(t, newRoot, "C")
	require.Same(t, newRoot, c.Parent())
	require.Equal(t, 6.5, c.Length())
	require.Equal(t, 6.5, maxLeafDepth(t, newRoot))
	require.Equal(t, before, leafDistances(t, newRoot))
}

func TestMidpointRoot_MidpointOnInnerEdge(t *testing.T) {
	f := core.NewFactory()
	root := decode(t, "((A:1,B:1)ab:10,(C:1,D:1)cd:10)r;")

	// the halfway point of the 22-long widest path lands on an internal
	// edge, 10 in from either leaf
	newRoot, err := rooting.MidpointRoot(f, root)
	require.NoError(t, err)
	require.Equal(t, 11.0, maxLeafDepth(t, newRoot))
}

func TestMidpointRoot_NoOps(t *testing.T) {
	f := core.NewFactory()

	leaf := decode(t, "A:1;")
	got, err := rooting.MidpointRoot(f, leaf)
	require.NoError(t, err)
	require.Same(t, leaf, got, "fewer than two leaves")

	flat := decode(t, "(A:0,B:0)r;")
	got, err = rooting.MidpointRoot(f, flat)
	require.NoError(t, err)
	require.Same(t, flat, got, "zero-width widest pair")
}

func TestMidpointRoot_Validation(t *testing.T) {
	f := core.NewFactory()
	root := decode(t, "(A:1,B:2)r;")

	_, err := rooting.MidpointRoot(nil, root)
	require.ErrorIs(t, err, rooting.ErrNilFactory)

	_, err = rooting.MidpointRoot(f, nil)
	require.ErrorIs(t, err, rooting.ErrNilNode)
}
