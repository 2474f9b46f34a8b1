// types.go declares the sentinel errors for the rooting package.

package rooting

import "errors"

// Sentinel errors for ancestry queries and rooting transforms.
var (
	// ErrNilNode indicates a nil node argument.
	ErrNilNode = errors.New("rooting: nil node")

	// ErrNilFactory indicates a nil Factory argument.
	ErrNilFactory = errors.New("rooting: nil factory")

	// ErrDisjoint indicates the nodes share no root ancestry.
	ErrDisjoint = errors.New("rooting: nodes belong to disjoint trees")

	// ErrLengthUnset indicates a reroot target without a branch length
	// to split.
	ErrLengthUnset = errors.New("rooting: target branch length unset")

	// ErrSplitOutOfRange indicates a split distance outside the target
	// branch.
	ErrSplitOutOfRange = errors.New("rooting: split distance outside the target branch")

	// ErrOutgroupNotFound indicates no leaf matched the outgroup name.
	ErrOutgroupNotFound = errors.New("rooting: outgroup not found")
)
