// types.go declares the sentinel errors and functional options shared
// by Decode and Encode.

package newick

import (
	"errors"
	"fmt"

	"github.com/dendrogo/dendro/core"
)

// Sentinel errors for Newick decoding and encoding.
var (
	// ErrEmptyInput indicates the input was empty once the optional
	// trailing terminator (and, when enabled, whitespace) was stripped.
	ErrEmptyInput = errors.New("newick: empty input")

	// ErrUnbalanced indicates grouping marks that do not balance, or
	// content outside the outermost group.
	ErrUnbalanced = errors.New("newick: not in Newick format: unbalanced grouping marks")

	// ErrBadLength indicates a label whose post-colon text does not
	// parse as a decimal literal.
	ErrBadLength = errors.New("newick: not in Newick format: bad branch length")

	// ErrNilNode is returned by Encode for a nil root.
	ErrNilNode = errors.New("newick: nil node")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("newick: invalid option supplied")
)

// Option configures Decode/Encode behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the call runs.
type Option func(*Options)

// Options holds the resolved configuration for one Decode/Encode call.
type Options struct {
	// factory supplies node identities when the default codecs are in
	// play. A fresh Factory is created per call when unset.
	factory *core.Factory

	// codecs overrides the default ArrayNode codecs entirely.
	codecs *CodecSet

	// strip enables the whitespace-stripping pre-pass.
	strip bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the zero configuration: fresh factory,
// ArrayNode codecs, no whitespace stripping.
func DefaultOptions() Options {
	return Options{}
}

// WithFactory makes the default codecs draw identities from f instead
// of a call-local Factory. Ignored when WithCodecs is also given.
func WithFactory(f *core.Factory) Option {
	return func(o *Options) {
		if f == nil {
			o.err = fmt.Errorf("%w: WithFactory(nil)", ErrOptionViolation)

			return
		}
		o.factory = f
	}
}

// WithCodecs substitutes the leaf and internal codecs wholesale.
// Decode requires New and Parse on both; Encode requires Render.
func WithCodecs(cs CodecSet) Option {
	return func(o *Options) {
		o.codecs = &cs
	}
}

// WithStripWhitespace enables a pre-pass that removes every ASCII
// whitespace byte before scanning. Without it, whitespace is ordinary
// name content.
func WithStripWhitespace() Option {
	return func(o *Options) {
		o.strip = true
	}
}

// resolve folds opts into a configuration, reporting any recorded
// option violation.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// codecSet materializes the codecs for this call: the caller's, or the
// ArrayNode defaults over the configured (or a fresh) Factory.
func (o *Options) codecSet() CodecSet {
	if o.codecs != nil {
		return *o.codecs
	}
	f := o.factory
	if f == nil {
		f = core.NewFactory()
	}

	return ArrayCodecs(f)
}
