package treegen

import (
	"math/rand"
	"strconv"

	"github.com/dendrogo/dendro/core"
)

// Option mutates the build configuration before construction begins.
// Option constructors validate and panic on meaningless input;
// constructors themselves never panic.
type Option func(*config)

type config struct {
	nameFn   func(int) string
	lengthFn func(*rand.Rand) float64
	rng      *rand.Rand
	lists    bool
}

func defaults() config {
	return config{
		nameFn:   func(i int) string { return "L" + strconv.Itoa(i) },
		lengthFn: func(*rand.Rand) float64 { return 1 },
	}
}

func resolve(opts []Option) config {
	cfg := defaults()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithNameFn sets the leaf naming scheme: leaf index (creation order,
// zero-based) to name. Panics on nil.
func WithNameFn(fn func(int) string) Option {
	if fn == nil {
		panic("treegen: WithNameFn(nil)")
	}

	return func(c *config) { c.nameFn = fn }
}

// WithLengthFn overrides the per-node branch length generator. The
// function receives the configured RNG, which is nil unless WithSeed
// or WithRand was given. Panics on nil.
func WithLengthFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("treegen: WithLengthFn(nil)")
	}

	return func(c *config) { c.lengthFn = fn }
}

// WithSeed equips the builder with a deterministic RNG for stochastic
// length functions.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit RNG. Panics on nil; prefer WithSeed
// for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("treegen: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithListNodes builds the tree out of first-child/next-sibling nodes
// instead of the array-backed default.
func WithListNodes() Option {
	return func(c *config) { c.lists = true }
}

// newNode mints a node of the configured variant with branch length
// already applied. Naming is the caller's business.
func (c *config) newNode(f *core.Factory) core.Node {
	var n core.Node
	if c.lists {
		n = f.NewListNode()
	} else {
		n = f.NewArrayNode()
	}
	n.SetLength(c.lengthFn(c.rng))

	return n
}
