// Package treegen constructs deterministic tree topologies for tests,
// benchmarks and examples.
//
// What you get:
//
//   - Balanced(f, depth)     — full binary tree, 2^depth leaves.
//   - Caterpillar(f, leaves) — maximally unbalanced chain, one leaf per
//     internal node.
//   - Star(f, leaves)        — one root, every leaf directly below it.
//
// Every constructor takes the core.Factory that mints node identities
// and a variadic option list. Defaults are chosen so the result is
// immediately usable by the distance and rooting algorithms: every
// non-root node carries branch length 1, leaves are named "L0", "L1",
// ... in creation order, internal nodes stay anonymous, and nodes are
// array-backed.
//
// Determinism is explicit: constructors never read global randomness.
// A stochastic length function only sees the *rand.Rand supplied via
// WithSeed or WithRand.
//
// Error policy:
//
//   - Option constructors validate their input and panic on nil — a
//     misconfigured option is a programmer error, surfaced early.
//   - Constructors themselves never panic; they return sentinel errors
//     (ErrNilFactory, ErrTooSmall) checked with errors.Is.
//
// Complexity: every constructor is O(n) in the number of nodes built.
package treegen
