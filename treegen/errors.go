package treegen

import "errors"

// ErrNilFactory reports a nil *core.Factory argument. Constructors
// cannot mint node identities without one.
var ErrNilFactory = errors.New("treegen: nil factory")

// ErrTooSmall reports a size parameter below the constructor's
// minimum (negative depth, fewer than two leaves). The wrapping error
// names the offending parameter and bound.
var ErrTooSmall = errors.New("treegen: parameter too small")
