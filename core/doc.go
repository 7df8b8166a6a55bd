// Package core defines the central Ob, Ty, Generator, and Diagram types
// of a free hypergraph category, and the operations for combining them.
//
// 🚀 What lives here?
//
//	Everything the algorithm packages (spider, coherence, functor) build on:
//	  • Ob — an atomic, self-dual wire label
//	  • Ty — an ordered sequence of objects, the type of a bundle of wires
//	  • Generator — the primitive morphisms: Box, Cup, Cap, Swap, Spider
//	  • Diagram — an immutable morphism, a sequence of generator layers
//
// ✨ Key guarantees:
//
//   - Immutability – every operation returns a fresh value; constructors
//     copy their inputs; nothing is mutated after creation, so values are
//     safe to share across goroutines without synchronization
//   - Eager validation – Cup/Cap check adjointness, Spider checks
//     atomicity, Compose checks type agreement; no invalid value is ever
//     observable
//   - Structural equality – Equal and Key are purely structural; Key
//     returns a canonical string suitable for map keys and memoization
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hypercat/core"
//
//	x := core.TyOf("x")
//	s, _ := core.NewSpider(2, 1, x)            // merge two wires into one
//	d := core.Single(s).Tensor(core.Id(x))     // Spider(2,1,x) ⊗ id(x)
//	d2, err := d.Compose(core.Single(s))       // … >> Spider(2,1,x)
//
// Errors:
//
//	ErrNotAtomic       - a composite type where an atomic one is required.
//	ErrAdjointMismatch - Cup/Cap arguments are not exact adjoints.
//	ErrComposeMismatch - cod/dom disagreement between composed diagrams.
//	ErrNegativeLegs    - negative spider leg count.
//	ErrBadPermutation  - Permutation indices are not a permutation.
package core
