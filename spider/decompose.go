// SPDX-License-Identifier: MIT

package spider

import (
	"fmt"

	"github.com/katalvlaran/hypercat/core"
)

// Decompose rewrites the spider into a tree of primitives.
// See DecomposeLegs for the algorithm and its guarantees.
func Decompose(s core.Spider, opts *Options) (core.Diagram, error) {
	return DecomposeLegs(s.LegsIn(), s.LegsOut(), s.Type(), opts)
}

// DecomposeLegs rewrites the (nIn, nOut)-spider on an atomic type into
// a diagram using only Spider(1, 0, t) and Spider(2, 1, t) primitives
// (and their daggers), identity, tensor and composition.
//
// Algorithm Outline:
//  1. nOut > nIn: decompose the transposed spider, then dagger —
//     spiders are symmetric under dagger + leg-count swap.
//  2. (1, 0): the primitive itself. (1, 1): the identity.
//  3. nOut ≠ 1: merge to one leg, then fan out — decompose(nIn, 1)
//     >> decompose(1, nOut).
//  4. (2, 1): the primitive itself.
//  5. nIn odd, > 2: peel one leg — (decompose(nIn-1, 1) ⊗ id) >>
//     Spider(2, 1, t).
//  6. nIn even, > 2: balanced split — (half ⊗ half) >> Spider(2, 1, t)
//     with half = decompose(nIn/2, 1).
//
// The result has dom t^nIn, cod t^nOut, O(nIn + nOut) generators and
// O(log(nIn + nOut)) recursion depth. It is behaviorally equal to the
// original spider under the Frobenius laws: all legs remain connected
// through one component.
//
// Complexity: O(n) generators, O(log n) depth.
//
// A nil opts uses DefaultOptions. Fails with core.ErrNotAtomic on a
// composite type, core.ErrNegativeLegs on negative arities, and
// ErrLegLimit above Options.MaxLegs.
func DecomposeLegs(nIn, nOut int, t core.Ty, opts *Options) (core.Diagram, error) {
	// Validate through the spider constructor so the arity and
	// atomicity rules stay in one place.
	if _, err := core.NewSpider(nIn, nOut, t); err != nil {
		return core.Diagram{}, err
	}
	if max := opts.maxLegs(); nIn > max || nOut > max {
		return core.Diagram{}, fmt.Errorf("decompose (%d, %d): %w", nIn, nOut, ErrLegLimit)
	}

	return decompose(nIn, nOut, t)
}

// decompose is the recursion behind DecomposeLegs; inputs are already
// validated.
func decompose(nIn, nOut int, t core.Ty) (core.Diagram, error) {
	if nOut > nIn {
		d, err := decompose(nOut, nIn, t)
		if err != nil {
			return core.Diagram{}, err
		}

		return d.Dagger(), nil
	}

	if nIn == 1 && nOut == 0 {
		return primitive(1, 0, t)
	}
	if nIn == 1 && nOut == 1 {
		return core.Id(t), nil
	}

	if nOut != 1 {
		merge, err := decompose(nIn, 1, t)
		if err != nil {
			return core.Diagram{}, err
		}
		split, err := decompose(1, nOut, t)
		if err != nil {
			return core.Diagram{}, err
		}

		return merge.Compose(split)
	}

	if nIn == 2 {
		return primitive(2, 1, t)
	}

	pair, err := primitive(2, 1, t)
	if err != nil {
		return core.Diagram{}, err
	}

	if nIn%2 == 1 {
		rest, err := decompose(nIn-1, 1, t)
		if err != nil {
			return core.Diagram{}, err
		}

		return rest.Tensor(core.Id(t)).Compose(pair)
	}

	half, err := decompose(nIn/2, 1, t)
	if err != nil {
		return core.Diagram{}, err
	}

	return half.Tensor(half).Compose(pair)
}

// primitive returns the one-layer diagram of Spider(nIn, nOut, t).
func primitive(nIn, nOut int, t core.Ty) (core.Diagram, error) {
	s, err := core.NewSpider(nIn, nOut, t)
	if err != nil {
		return core.Diagram{}, err
	}

	return core.Single(s), nil
}
