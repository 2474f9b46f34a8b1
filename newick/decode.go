package newick

import (
	"fmt"

	"github.com/dendrogo/dendro/core"
)

// Decode parses Newick text into a rooted tree and returns the root.
//
// The scan is a single left-to-right pass with one cursor and an
// explicit stack of open internal nodes — no recursion, so input depth
// is bounded by memory, not by the call stack. Four bytes are
// structural: '(' ',' ')' ';'. Everything between structural bytes is a
// node's local fragment, handed to the leaf or internal codec.
//
// src may be any in-memory byte region, including one the caller
// memory-mapped; Decode never copies it except for the node fragments
// themselves. A trailing terminator is stripped first.
//
// Complexity: O(n) time, O(height) auxiliary space.
func Decode(src []byte, opts ...Option) (core.Node, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	data := src
	if o.strip {
		data = stripWhitespace(data)
	}
	if n := len(data); n > 0 && data[n-1] == ';' {
		data = data[:n-1]
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	cs := o.codecSet()
	var root core.Node
	stack := make([]core.Node, 0, 16)

	// filled reports whether the open group on top of the stack has
	// consumed an element (leaf or subgroup) since the last '(' or ','.
	// A ',' or ')' arriving while it is false means an anonymous leaf:
	// the grammar's label is fully optional, so ",," and "()" carry
	// empty-fragment leaves that must still materialize as nodes.
	filled := false
	anonLeaf := func() error {
		leaf := cs.Leaf.New()
		if err := cs.Leaf.Parse(leaf, ""); err != nil {
			return err
		}
		stack[len(stack)-1].AddChild(leaf)

		return nil
	}

	i := 0
	for i < len(data) {
		switch data[i] {
		case '(':
			n := cs.Internal.New()
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: second tree at offset %d", ErrUnbalanced, i)
				}
				root = n
			} else {
				stack[len(stack)-1].AddChild(n)
			}
			stack = append(stack, n)
			filled = false
			i++

		case ',':
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: ',' outside any group at offset %d", ErrUnbalanced, i)
			}
			if !filled {
				if err = anonLeaf(); err != nil {
					return nil, err
				}
			}
			filled = false
			i++

		case ')':
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: ')' without '(' at offset %d", ErrUnbalanced, i)
			}
			if !filled {
				if err = anonLeaf(); err != nil {
					return nil, err
				}
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			// the fragment after ')' is the internal node's own label
			j := nextStructural(data, i+1)
			if err = cs.Internal.Parse(top, string(data[i+1:j])); err != nil {
				return nil, err
			}
			filled = true
			i = j

		case ';':
			return nil, fmt.Errorf("%w: content after terminator at offset %d", ErrUnbalanced, i)

		default:
			j := nextStructural(data, i)
			leaf := cs.Leaf.New()
			if err = cs.Leaf.Parse(leaf, string(data[i:j])); err != nil {
				return nil, err
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: leaf outside any group at offset %d", ErrUnbalanced, i)
				}
				// bare single-leaf input, no grouping marks: supported
				root = leaf
			} else {
				stack[len(stack)-1].AddChild(leaf)
			}
			filled = true
			i = j
		}
	}

	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: %d group(s) left open", ErrUnbalanced, len(stack))
	}

	return root, nil
}

// DecodeString parses Newick text held in a string.
func DecodeString(s string, opts ...Option) (core.Node, error) {
	return Decode([]byte(s), opts...)
}

// nextStructural returns the index of the next structural byte at or
// after i, or len(data).
func nextStructural(data []byte, i int) int {
	for ; i < len(data); i++ {
		switch data[i] {
		case '(', ',', ')', ';':
			return i
		}
	}

	return len(data)
}

// stripWhitespace removes every ASCII whitespace byte. The input is
// returned untouched when it contains none.
func stripWhitespace(data []byte) []byte {
	clean := -1
	for i, b := range data {
		if isSpace(b) {
			clean = i

			break
		}
	}
	if clean < 0 {
		return data
	}
	out := make([]byte, clean, len(data))
	copy(out, data[:clean])
	for _, b := range data[clean:] {
		if !isSpace(b) {
			out = append(out, b)
		}
	}

	return out
}

// isSpace reports ASCII whitespace.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}

	return false
}
