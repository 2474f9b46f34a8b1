package newick_test

import (
	"strings"
	"testing"

	"github.com/dendrogo/dendro/newick"
)

// balancedNewick builds the text of a complete binary tree of the given
// depth, every branch length 1.
func balancedNewick(depth int) []byte {
	var build func(d int) string
	build = func(d int) string {
		if d == 0 {
			return "x:1"
		}
		sub := build(d - 1)

		return "(" + sub + "," + sub + "):1"
	}

	return []byte(build(depth) + ";")
}

// BenchmarkDecode_Balanced measures the linear-pass decoder on a
// ~16k-leaf balanced tree.
func BenchmarkDecode_Balanced(b *testing.B) {
	src := balancedNewick(14)
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := newick.Decode(src); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDecode_DeepCaterpillar stresses the explicit stack: depth
// 50k, where recursive descent would overflow.
func BenchmarkDecode_DeepCaterpillar(b *testing.B) {
	const depth = 50_000
	src := []byte(strings.Repeat("(", depth) + "x" + strings.Repeat(")", depth) + ";")
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := newick.Decode(src); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEncode_Balanced measures the recursive encoder.
func BenchmarkEncode_Balanced(b *testing.B) {
	root, err := newick.Decode(balancedNewick(14))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = newick.Encode(root); err != nil {
			b.Fatal(err)
		}
	}
}
