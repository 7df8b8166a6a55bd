// Package coherence lifts any single-wire generator family to
// composite types by recursive case analysis on the requested arity.
//
// 🚀 What is coherence?
//
//	A family like spiders or phase shifters is usually defined on one
//	atomic wire by a factory: f(a, b, x, phase) for atomic x. Coherence
//	is the canonical way to extend that family to a whole bundle of
//	wires at once, so that build(a, b, x) exists for every composite x
//	and every arity (a, b) — one fixed, reproducible diagram per input.
//
// ✨ Key features:
//
//   - Lift(factory, opts) returns a Builder closed over the factory;
//     the same recursion serves spiders, phase gates, and any other
//     Frobenius-like single-wire family
//   - Phase families: a uniform per-wire phase is applied between a
//     full merge and a full split
//   - Deterministic: "canonical" means reproducible by this exact
//     algorithm, not unique up to all rewritings
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hypercat/coherence"
//
//	build := coherence.Lift(func(a, b int, x core.Ty, phase any) (core.Diagram, error) {
//		s, err := core.NewSpider(a, b, x)
//		return core.Single(s), err
//	}, nil)
//	d, err := build(2, 1, core.TyOf("a", "b"), nil)
//
// Errors:
//
//	ErrNilFactory        - Lift called with a nil factory.
//	ErrLegLimit          - arity exceeds Options.MaxLegs.
//	core.ErrNegativeLegs - negative arities.
package coherence
