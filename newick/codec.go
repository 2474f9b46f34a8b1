package newick

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dendrogo/dendro/core"
)

// Codec converts one node's local text fragment ("name:length") to and
// from a node. It never sees the surrounding tree structure — the
// decoder and encoder own that.
//
// New must be a plain function value (no reflection): it runs once per
// node while decoding inputs that may hold millions of nodes.
type Codec struct {
	// New creates the node a parsed fragment will populate.
	New func() core.Node

	// Parse populates n in place from a fragment. The fragment may be
	// empty (anonymous node, no length).
	Parse func(n core.Node, fragment string) error

	// Render produces the fragment for n.
	Render func(n core.Node) string
}

// CodecSet pairs the two node roles a Newick text distinguishes:
// leaves, and internal nodes labeled after their closing ')'.
type CodecSet struct {
	Leaf     Codec
	Internal Codec
}

// LeafCodec returns the standard codec for leaf fragments, creating
// nodes with newNode.
func LeafCodec(newNode func() core.Node) Codec {
	return Codec{New: newNode, Parse: ParseFragment, Render: RenderFragment}
}

// InternalCodec returns the standard codec for internal-node fragments.
// The default behavior matches LeafCodec — the split exists so callers
// can give internal labels their own meaning without touching leaves.
func InternalCodec(newNode func() core.Node) Codec {
	return Codec{New: newNode, Parse: ParseFragment, Render: RenderFragment}
}

// ArrayCodecs returns the default CodecSet building ArrayNodes from f.
func ArrayCodecs(f *core.Factory) CodecSet {
	mk := func() core.Node { return f.NewArrayNode() }

	return CodecSet{Leaf: LeafCodec(mk), Internal: InternalCodec(mk)}
}

// ListCodecs returns a CodecSet building low-memory ListNodes from f.
func ListCodecs(f *core.Factory) CodecSet {
	mk := func() core.Node { return f.NewListNode() }

	return CodecSet{Leaf: LeafCodec(mk), Internal: InternalCodec(mk)}
}

// ParseFragment applies the shared label rule to n: the text before the
// first ':' (possibly empty) is the name; non-empty text after it must
// parse as a branch length. No colon means name-only.
func ParseFragment(n core.Node, fragment string) error {
	colon := strings.IndexByte(fragment, ':')
	if colon < 0 {
		n.SetName(fragment)

		return nil
	}
	n.SetName(fragment[:colon])
	rest := fragment[colon+1:]
	if rest == "" {
		return nil
	}
	length, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBadLength, rest)
	}
	n.SetLength(length)

	return nil
}

// RenderFragment is the inverse of ParseFragment: name, then ":length"
// when a length is set, formatted by FormatLength.
func RenderFragment(n core.Node) string {
	if !n.HasLength() {
		return n.Name()
	}

	return n.Name() + ":" + FormatLength(n.Length())
}

// FormatLength renders a branch length with exactly six fractional
// digits, rounding halves away from zero.
func FormatLength(v float64) string {
	scaled := v * 1e6
	if scaled >= 0 {
		scaled = math.Floor(scaled + 0.5)
	} else {
		scaled = math.Ceil(scaled - 0.5)
	}

	return strconv.FormatFloat(scaled/1e6, 'f', 6, 64)
}
