// Package dendro is an in-memory toolkit for building, parsing and
// rewriting phylogenetic trees — from mutable node primitives up to
// rerooting and midpoint-rooting transforms.
//
// 🌲 What is dendro?
//
//	A small, deterministic library that brings together:
//		• Core primitives: mutable nodes with bidirectionally consistent
//		  parent/child links, in array-backed and linked-list variants
//		• Newick I/O: a single-pass, stack-driven decoder and a
//		  codec-based encoder (6-digit, half-up branch lengths)
//		• Traversals: pre-, post-, level-order and depth-bounded walks,
//		  each in restructuring-safe and snapshot variants
//		• Derived queries: leaves, siblings, ancestors, paths, subtree
//		  sizes, ladderization
//		• Rooting algorithms: MRCA, patristic & topological distance,
//		  reroot-at-node, outgroup rooting, midpoint rooting, deep copy
//
// ✨ Why choose dendro?
//
//   - Predictable – every node identity comes from an explicit Factory,
//     and every mutation keeps both sides of the parent/child link in sync
//   - Scales – the Newick decoder is recursion-free and parses very deep
//     trees in one linear pass with only O(height) auxiliary space
//   - Pure Go – no cgo; memory-mapped input via golang.org/x/exp/mmap
//   - Extensible – pluggable leaf/internal codecs, visitor hooks with an
//     early-stop sentinel
//
// Everything is organized under five subpackages:
//
//	core/     — Node abstraction, ArrayNode & ListNode variants, Factory
//	newick/   — codec framework, Decode/Encode, memory-mapped sources
//	traverse/ — traversal contracts, derived queries, ladderization
//	rooting/  — MRCA, distances, rerooting, midpoint rooting, deep copy
//	treegen/  — deterministic tree fixtures for tests and benchmarks
//
// Quick ASCII example:
//
//	the Newick text "((A:1,B:2)AB:3,C:4);" decodes to
//
//	        root
//	       ╱    ╲
//	     AB:3   C:4
//	    ╱    ╲
//	  A:1    B:2
//
// Concurrency: dendro is single-threaded by design. A tree is owned by
// one call stack at a time; synchronize externally if you must share.
//
//	go get github.com/dendrogo/dendro
package dendro
