// SPDX-License-Identifier: MIT

package spider

import (
	"fmt"

	"github.com/katalvlaran/hypercat/core"
)

// Spiders constructs the canonical (nIn, nOut)-spider diagram over a
// composite type t, with dom = t^nIn and cod = t^nOut.
//
// Description:
//
//	A spider is primitive only on an atomic type. Over a composite type
//	of width k the diagram is one primitive spider per atomic symbol,
//	interleaved with swap networks that reconcile two wire orders:
//
//	  symbol-major — t₀^nIn ⊗ t₁^nIn ⊗ … (the base tensor's domain,
//	                 all copies of each symbol grouped together)
//	  copy-major   — (t₀ t₁ … t_{k-1})^nIn (the declared domain t^nIn)
//
// Algorithm Outline:
//  1. If t is empty or atomic, return id or the primitive spider.
//  2. base = Spider(nIn, nOut, t₀) ⊗ … ⊗ Spider(nIn, nOut, t_{k-1}).
//  3. The two orders read the k×nIn wire grid row- vs column-major, so
//     the wire at copy-major position j·k+i sits at symbol-major
//     position i·nIn+j. Realize that block transpose with
//     core.Permutation before the base, and its nOut counterpart
//     (inverted) after it.
//  4. Return pre >> base >> post.
//
// Complexity: O((n·k)²) adjacent swaps worst case, O(k) spiders.
//
// A nil opts uses DefaultOptions. Fails with ErrLegLimit when nIn, nOut
// or the implied wire totals exceed Options.MaxLegs, and with
// core.ErrNegativeLegs on negative arities.
func Spiders(nIn, nOut int, t core.Ty, opts *Options) (core.Diagram, error) {
	if nIn < 0 || nOut < 0 {
		return core.Diagram{}, fmt.Errorf("spiders (%d, %d): %w", nIn, nOut, core.ErrNegativeLegs)
	}
	max := opts.maxLegs()
	k := t.Len()
	if nIn > max || nOut > max || nIn*k > max || nOut*k > max {
		return core.Diagram{}, fmt.Errorf("spiders (%d, %d) over %d symbols: %w", nIn, nOut, k, ErrLegLimit)
	}

	if k == 0 {
		return core.Id(core.Ty{}), nil
	}
	if k == 1 {
		s, err := core.NewSpider(nIn, nOut, t)
		if err != nil {
			return core.Diagram{}, err
		}

		return core.Single(s), nil
	}

	base := core.Id(core.Ty{})
	for i := 0; i < k; i++ {
		s, err := core.NewSpider(nIn, nOut, t.Slice(i, i+1))
		if err != nil {
			return core.Diagram{}, err
		}
		base = base.Tensor(core.Single(s))
	}

	pre, err := core.Permutation(t.Pow(nIn), transpose(k, nIn, false))
	if err != nil {
		return core.Diagram{}, err
	}
	post, err := core.Permutation(base.Cod(), transpose(k, nOut, true))
	if err != nil {
		return core.Diagram{}, err
	}

	return pre.Compose(base, post)
}

// transpose returns the permutation of the k×n wire grid between
// copy-major and symbol-major order. With invert=false, symbol-major
// output position i·n+j draws the copy-major wire j·k+i; with
// invert=true the inverse, copy-major position j·k+i draws the
// symbol-major wire i·n+j.
func transpose(k, n int, invert bool) []int {
	perm := make([]int, k*n)
	for i := 0; i < k; i++ {
		for j := 0; j < n; j++ {
			if invert {
				perm[j*k+i] = i*n + j
			} else {
				perm[i*n+j] = j*k + i
			}
		}
	}

	return perm
}
