package coherence

import (
	"fmt"

	"github.com/katalvlaran/hypercat/core"
)

// Lift turns a single-wire factory into a Builder defined on every
// composite type.
//
// Description:
//
//	The builder constructs the canonical (a, b)-arity diagram of the
//	family over x by case analysis, recursing over the same factory:
//
//	  1. x empty, no phase      → identity on the empty type.
//	  2. x atomic               → the factory itself.
//	  3. phase given            → build(a,1,x) >> shift >> build(1,b,x),
//	     where shift tensors factory(1, 1, ·, phase) per component:
//	     merge all a copies, apply the per-wire phase once, split to b.
//	  4. (a,b) = (1,1)          → tensor of factory(1, 1, ·) per
//	     component (per-wire endomorphism).
//	  5. (a,b) ∈ {(1,0), (0,1)} → tensor of factory(a, b, ·) per
//	     component (unit/counit family).
//	  6. (a,b) ∈ {(1,2), (2,1)} → peel the head component, apply the
//	     factory there, thread the tail past it with a swap so wire
//	     order is preserved; spider before braid for (1,2), mirror
//	     order for (2,1).
//	  7. a = 1, b > 2           → build(1,b-1,x) >> build(1,2,x) ⊗ x^(b-2).
//	  8. b = 1, a > 2           → build(2,1,x) ⊗ x^(a-2) >> build(a-1,1,x).
//	  9. otherwise (a, b > 1)   → build(a,1,x) >> build(1,b,x).
//
// Complexity: O(a + b) recursion depth, O((a + b)·len(x)) generators.
//
// The result is deterministic: one fixed diagram per (a, b, x, phase).
// A nil opts uses DefaultOptions.
func Lift(f Factory, opts *Options) Builder {
	max := opts.maxLegs()

	return func(a, b int, x core.Ty, phase any) (core.Diagram, error) {
		if f == nil {
			return core.Diagram{}, ErrNilFactory
		}

		return build(f, max, a, b, x, phase)
	}
}

// build is the recursion behind Lift; see the case list there.
func build(f Factory, max, a, b int, x core.Ty, phase any) (core.Diagram, error) {
	if a < 0 || b < 0 {
		return core.Diagram{}, fmt.Errorf("coherence (%d, %d): %w", a, b, core.ErrNegativeLegs)
	}
	if k := x.Len(); a > max || b > max || a*k > max || b*k > max {
		return core.Diagram{}, fmt.Errorf("coherence (%d, %d) over %d wires: %w", a, b, x.Len(), ErrLegLimit)
	}

	if x.Len() == 0 && phase == nil {
		return core.Id(x), nil
	}
	if x.Atomic() {
		return f(a, b, x, phase)
	}

	if phase != nil {
		shift := core.Id(core.Ty{})
		for i := 0; i < x.Len(); i++ {
			wire, err := f(1, 1, x.Slice(i, i+1), phase)
			if err != nil {
				return core.Diagram{}, err
			}
			shift = shift.Tensor(wire)
		}
		merge, err := build(f, max, a, 1, x, nil)
		if err != nil {
			return core.Diagram{}, err
		}
		split, err := build(f, max, 1, b, x, nil)
		if err != nil {
			return core.Diagram{}, err
		}

		return merge.Compose(shift, split)
	}

	if a == 1 && b == 0 || a == 0 && b == 1 || a == 1 && b == 1 {
		// Unit, counit and per-wire endomorphism families act on each
		// component independently.
		out := core.Id(core.Ty{})
		for i := 0; i < x.Len(); i++ {
			wire, err := f(a, b, x.Slice(i, i+1), nil)
			if err != nil {
				return core.Diagram{}, err
			}
			out = out.Tensor(wire)
		}

		return out, nil
	}

	if a == 1 && b == 2 || a == 2 && b == 1 {
		head, tail := x.Slice(0, 1), x.Slice(1, x.Len())
		prim, err := f(a, b, head, nil)
		if err != nil {
			return core.Diagram{}, err
		}
		rest, err := build(f, max, a, b, tail, nil)
		if err != nil {
			return core.Diagram{}, err
		}
		pair := prim.Tensor(rest)
		if a == 1 {
			braid := core.Id(head).Tensor(core.Single(core.NewSwap(head, tail)), core.Id(tail))

			return pair.Compose(braid)
		}
		braid := core.Id(head).Tensor(core.Single(core.NewSwap(tail, head)), core.Id(tail))

		return braid.Compose(pair)
	}

	if a == 1 { // b > 2: fan one extra leg out at a time.
		grow, err := build(f, max, 1, b-1, x, nil)
		if err != nil {
			return core.Diagram{}, err
		}
		last, err := build(f, max, 1, 2, x, nil)
		if err != nil {
			return core.Diagram{}, err
		}

		return grow.Compose(last.Tensor(core.Id(x.Pow(b - 2))))
	}
	if b == 1 { // a > 2: mirror of the fan-out.
		first, err := build(f, max, 2, 1, x, nil)
		if err != nil {
			return core.Diagram{}, err
		}
		shrink, err := build(f, max, a-1, 1, x, nil)
		if err != nil {
			return core.Diagram{}, err
		}

		return first.Tensor(core.Id(x.Pow(a - 2))).Compose(shrink)
	}

	merge, err := build(f, max, a, 1, x, nil)
	if err != nil {
		return core.Diagram{}, err
	}
	split, err := build(f, max, 1, b, x, nil)
	if err != nil {
		return core.Diagram{}, err
	}

	return merge.Compose(split)
}
