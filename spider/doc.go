// SPDX-License-Identifier: MIT

// Package spider synthesizes spider diagrams over composite types and
// decomposes high-arity spiders into trees of low-arity primitives.
//
// 🚀 What is a spider?
//
//	The Frobenius generator of a hypergraph category: n legs in, m legs
//	out, all on one atomic wire type. It generalizes copying, merging,
//	discarding and creating a wire, and behaves like an undirected
//	hyperedge connecting all of its legs.
//
// ✨ Key features:
//
//   - Spiders(n, m, t): the canonical (n, m)-spider diagram over a
//     composite type t, built as one primitive spider per atomic symbol
//     with swap networks routing copy-major wire order to symbol-major
//     and back
//   - Decompose / DecomposeLegs: rewrite any spider into a balanced
//     binary tree over {Spider(1,0), Spider(2,1)} primitives (and their
//     daggers), O(log n) depth and O(n) generators
//   - Options.MaxLegs: an explicit resource bound, surfaced as
//     ErrLegLimit instead of unbounded recursion
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hypercat/spider"
//
//	u := core.TyOf("a", "b")
//	d, err := spider.Spiders(2, 3, u, nil)  // dom u ⊗ u, cod u ⊗ u ⊗ u
//
//	s, _ := core.NewSpider(5, 1, core.TyOf("x"))
//	tree, err := spider.Decompose(s, nil)   // (… ⊗ id) >> Spider(2,1,x)
//
// Performance:
//
//   - Spiders: O((n·k)²) swaps worst case for k symbols, n copies
//   - Decompose: O(n) generators, O(log n) recursion depth
//
// Errors:
//
//	ErrLegLimit          - requested arity exceeds Options.MaxLegs.
//	core.ErrNotAtomic    - DecomposeLegs on a composite type.
//	core.ErrNegativeLegs - negative leg counts.
package spider
