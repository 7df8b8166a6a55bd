// This file builds composite diagrams out of primitives: nested cups
// and caps over composite adjoint pairs, and wire permutations realized
// as networks of adjacent atomic swaps.

package core

import "fmt"

// Cups returns the nested cup diagram contracting a composite type with
// its right adjoint: dom = left ⊗ right, cod = empty. The innermost
// pair is contracted first, then the construction recurses outward.
//
// It fails with ErrAdjointMismatch unless right equals the exact right
// adjoint of left (and left the left adjoint of right).
// Complexity: O(len²) wire bookkeeping, len layers.
func Cups(left, right Ty) (Diagram, error) {
	if !right.Equal(left.R()) || !left.Equal(right.L()) {
		return Diagram{}, fmt.Errorf("cups over %v and %v: %w", left, right, ErrAdjointMismatch)
	}
	n := left.Len()
	out := Id(left.Tensor(right))
	for k := 1; k <= n; k++ {
		cup, err := NewCup(left.Slice(n-k, n-k+1), right.Slice(k-1, k))
		if err != nil {
			return Diagram{}, err
		}
		step := Id(left.Slice(0, n-k)).Tensor(Single(cup), Id(right.Slice(k, n)))
		out, err = out.Compose(step)
		if err != nil {
			return Diagram{}, err
		}
	}

	return out, nil
}

// Caps returns the nested cap diagram creating a composite type next to
// its right adjoint: dom = empty, cod = left ⊗ right. It is the dagger
// of Cups on the same pair, with identical validation.
func Caps(left, right Ty) (Diagram, error) {
	cups, err := Cups(left, right)
	if err != nil {
		return Diagram{}, err
	}

	return cups.Dagger(), nil
}

// Permutation realizes a wire permutation of the type t as a diagram of
// adjacent atomic swaps: output position i carries the wire t.At(perm[i]).
// The network is built by selection: each target wire is bubbled into
// place with adjacent transpositions, so the result is deterministic.
//
// It fails with ErrBadPermutation unless perm is a permutation of
// 0..t.Len()-1.
// Complexity: O(n²) swaps worst case.
func Permutation(t Ty, perm []int) (Diagram, error) {
	n := t.Len()
	if len(perm) != n {
		return Diagram{}, fmt.Errorf("permutation of length %d over %d wires: %w", len(perm), n, ErrBadPermutation)
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return Diagram{}, fmt.Errorf("permutation %v: %w", perm, ErrBadPermutation)
		}
		seen[p] = true
	}

	// cur[pos] is the source index of the wire currently at pos.
	cur := make([]int, n)
	for i := range cur {
		cur[i] = i
	}
	atomic := func(pos int) Ty { return NewTy(t.At(cur[pos])) }
	runningTy := func(i, j int) Ty {
		obs := make([]Ob, 0, j-i)
		for p := i; p < j; p++ {
			obs = append(obs, t.At(cur[p]))
		}

		return NewTy(obs...)
	}

	out := Id(t)
	for i := 0; i < n; i++ {
		j := i
		for cur[j] != perm[i] {
			j++
		}
		for p := j; p > i; p-- {
			step := Id(runningTy(0, p-1)).Tensor(
				Single(NewSwap(atomic(p-1), atomic(p))),
				Id(runningTy(p+1, n)),
			)
			var err error
			if out, err = out.Compose(step); err != nil {
				return Diagram{}, err
			}
			cur[p-1], cur[p] = cur[p], cur[p-1]
		}
	}

	return out, nil
}
