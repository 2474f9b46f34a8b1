// Package newick converts between Newick text and dendro trees.
//
// Grammar (no quoting or comment extensions):
//
//	tree     := subtree ';'?
//	subtree  := leaf | internal
//	internal := '(' subtree (',' subtree)* ')' label?
//	leaf     := label
//	label    := name? (':' length)?
//
// name is any run of characters excluding '(' ')' ',' ':'; length is a
// decimal literal. On output, lengths are rendered with exactly six
// fractional digits, rounding halves away from zero. A trailing ';' is
// recognized and discarded on input; Encode always appends one.
//
// The decoder is the performance-sensitive piece: one linear pass over
// the input, no recursion, an explicit stack of open internal nodes.
// That makes it O(n) time and O(height) auxiliary space, so arbitrarily
// deep trees cannot overflow the call stack. Decode accepts any []byte
// — including a region the caller memory-mapped — without copying;
// DecodeFile maps the file itself via golang.org/x/exp/mmap and
// releases the mapping on every exit path.
//
// Parsing of each node's local fragment ("name:length") goes through a
// pluggable Codec: a (New, Parse, Render) triple, one for leaves and
// one for internal nodes. The default codecs build ArrayNodes from a
// Factory; supply your own with WithCodecs to build ListNodes or to
// give internal labels a different meaning (support values, say). New
// is a plain function value — construction never goes through
// reflection, keeping the decode hot loop allocation-predictable.
//
// Whitespace: tolerated only when the caller opts in. With
// WithStripWhitespace, a pre-pass removes every ASCII whitespace byte;
// without it, whitespace is ordinary name content.
//
// Boundary case, decided: a bare single-leaf input with no grouping
// marks at all ("A:1" or just "A") is supported and decodes to that
// leaf as the root.
//
// Errors:
//
//	ErrEmptyInput      - input empty after terminator stripping.
//	ErrUnbalanced      - grouping marks do not balance.
//	ErrBadLength       - post-colon text is not a decimal literal.
//	ErrNilNode         - Encode called with a nil root.
//	ErrOptionViolation - invalid Option supplied.
//
// Malformed input fails the whole decode; no partial tree is returned.
package newick
