package treegen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dendrogo/dendro/core"
	"github.com/dendrogo/dendro/newick"
	"github.com/dendrogo/dendro/traverse"
	"github.com/dendrogo/dendro/treegen"
)

func TestBalanced(t *testing.T) {
	root, err := treegen.Balanced(core.NewFactory(), 3)
	require.NoError(t, err)

	leaves := traverse.Leaves(root)
	require.Len(t, leaves, 8)
	for i, leaf := range leaves {
		require.Equal(t, len(traverse.Ancestors(leaf)), 3, "uniform depth")
		require.Equal(t, leaf.Name(), "L"+string(rune('0'+i)))
	}
	require.False(t, root.HasLength(), "roots stay lengthless")
	require.True(t, leaves[0].HasLength())
	require.Equal(t, 1.0, leaves[0].Length())
}

func TestBalanced_DepthZero(t *testing.T) {
	root, err := treegen.Balanced(core.NewFactory(), 0)
	require.NoError(t, err)
	require.Equal(t, 0, root.ChildCount())
	require.Equal(t, "L0", root.Name())
}

func TestCaterpillar(t *testing.T) {
	root, err := treegen.Caterpillar(core.NewFactory(), 5)
	require.NoError(t, err)

	src, err := newick.Encode(root)
	require.NoError(t, err)
	require.Equal(t,
		"(L0:1.000000,(L1:1.000000,(L2:1.000000,(L3:1.000000,L4:1.000000):1.000000):1.000000):1.000000);",
		src)

	require.Same(t, root.FirstChild(), traverse.FirstLeaf(root))
	require.Equal(t, "L4", traverse.LastLeaf(root).Name())
}

func TestCaterpillar_TwoLeaves(t *testing.T) {
	root, err := treegen.Caterpillar(core.NewFactory(), 2)
	require.NoError(t, err)
	require.Equal(t, 2, root.ChildCount())
	require.Equal(t, 2, traverse.LeafCount(root))
}

func TestStar(t *testing.T) {
	root, err := treegen.Star(core.NewFactory(), 6)
	require.NoError(t, err)
	require.Equal(t, 6, root.ChildCount())
	for i := 0; i < root.ChildCount(); i++ {
		require.Equal(t, 0, root.Child(i).ChildCount())
	}
}

func TestValidation(t *testing.T) {
	f := core.NewFactory()

	_, err := treegen.Balanced(nil, 2)
	require.ErrorIs(t, err, treegen.ErrNilFactory)

	_, err = treegen.Balanced(f, -1)
	require.ErrorIs(t, err, treegen.ErrTooSmall)

	_, err = treegen.Caterpillar(f, 1)
	require.ErrorIs(t, err, treegen.ErrTooSmall)

	_, err = treegen.Star(f, 1)
	require.ErrorIs(t, err, treegen.ErrTooSmall)
}

func TestOptions(t *testing.T) {
	root, err := treegen.Star(core.NewFactory(), 3,
		treegen.WithNameFn(func(i int) string { return "taxon" + string(rune('A'+i)) }),
		treegen.WithLengthFn(func(r *rand.Rand) float64 { return r.Float64() }),
		treegen.WithSeed(42),
	)
	require.NoError(t, err)
	require.Equal(t, "taxonA", root.FirstChild().Name())
	require.Equal(t, "taxonC", root.LastChild().Name())

	// same seed, same lengths
	again, err := treegen.Star(core.NewFactory(), 3,
		treegen.WithLengthFn(func(r *rand.Rand) float64 { return r.Float64() }),
		treegen.WithSeed(42),
	)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.Equal(t, again.Child(i).Length(), root.Child(i).Length())
	}
}

func TestWithListNodes(t *testing.T) {
	root, err := treegen.Balanced(core.NewFactory(), 2, treegen.WithListNodes())
	require.NoError(t, err)
	_, ok := root.(*core.ListNode)
	require.True(t, ok)
	require.Equal(t, 4, traverse.LeafCount(root))
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { treegen.WithNameFn(nil) })
	require.Panics(t, func() { treegen.WithLengthFn(nil) })
	require.Panics(t, func() { treegen.WithRand(nil) })
}
