// types.go declares the visitor contract, direction enum, and sentinel
// errors for the traverse package.

package traverse

import (
	"errors"

	"github.com/dendrogo/dendro/core"
)

// Visit is the visitor callback every traversal accepts. Returning
// ErrStop ends the walk early and successfully; any other error aborts
// the walk and is returned to the caller.
type Visit func(n core.Node) error

// Direction selects the ladderization order.
type Direction int

const (
	// Ascending puts the smallest subtrees first.
	Ascending Direction = iota
	// Descending puts the largest subtrees first.
	Descending
)

// Sentinel errors for traversal execution.
var (
	// ErrStop is the visitor sentinel: stop walking, report success.
	ErrStop = errors.New("traverse: stop")

	// ErrNilRoot is returned when the root node is nil.
	ErrNilRoot = errors.New("traverse: nil root")

	// ErrNilVisitor is returned when the visitor function is nil.
	ErrNilVisitor = errors.New("traverse: nil visitor")

	// ErrNegativeDepth is returned for a negative depth budget.
	ErrNegativeDepth = errors.New("traverse: negative depth budget")

	// ErrBadDirection is returned for a Direction outside the enum.
	ErrBadDirection = errors.New("traverse: invalid direction")

	// ErrNotRelated is returned by Path when the claimed ancestor is
	// not on the descendant's root line.
	ErrNotRelated = errors.New("traverse: nodes not on one line of descent")
)
