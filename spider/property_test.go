// SPDX-License-Identifier: MIT

package spider_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/hypercat/core"
	"github.com/katalvlaran/hypercat/spider"
)

// unionFind is a minimal disjoint-set forest for the connectivity
// oracle below.
type unionFind struct {
	parent []int
}

func (u *unionFind) add() int {
	u.parent = append(u.parent, len(u.parent))

	return len(u.parent) - 1
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

func (u *unionFind) union(a, b int) {
	u.parent[u.find(a)] = u.find(b)
}

// boundaryPartition evaluates a diagram under the Frobenius reading —
// a spider connects all of its legs, a cup/cap connects its pair, a
// swap only reroutes — and returns the induced partition of boundary
// wires. Labels are "d<i>" for domain positions and "c<i>" for codomain
// positions; classes and their members are sorted, so two diagrams are
// behaviorally equal on connectivity iff their partitions are
// reflect-equal.
func boundaryPartition(t *testing.T, d core.Diagram) [][]string {
	t.Helper()
	uf := &unionFind{}
	frontier := make([]int, d.Dom().Len())
	for i := range frontier {
		frontier[i] = uf.add()
	}
	domIDs := append([]int(nil), frontier...)

	for _, l := range d.Layers() {
		off, w := l.Offset(), l.Gen.Dom().Len()
		seg := append([]int(nil), frontier[off:off+w]...)
		var out []int
		switch gen := l.Gen.(type) {
		case core.Spider:
			out = make([]int, gen.LegsOut())
			for i := range out {
				out[i] = uf.add()
			}
			all := append(append([]int(nil), seg...), out...)
			for i := 1; i < len(all); i++ {
				uf.union(all[0], all[i])
			}
		case core.Swap:
			p := gen.Left().Len()
			out = append(append([]int(nil), seg[p:]...), seg[:p]...)
		case core.Cup:
			uf.union(seg[0], seg[1])
		case core.Cap:
			a, b := uf.add(), uf.add()
			uf.union(a, b)
			out = []int{a, b}
		default:
			t.Fatalf("boundaryPartition: opaque generator %v", l.Gen)
		}
		next := make([]int, 0, len(frontier)-w+len(out))
		next = append(next, frontier[:off]...)
		next = append(next, out...)
		next = append(next, frontier[off+w:]...)
		frontier = next
	}

	classes := make(map[int][]string)
	for i, id := range domIDs {
		root := uf.find(id)
		classes[root] = append(classes[root], fmt.Sprintf("d%d", i))
	}
	for i, id := range frontier {
		root := uf.find(id)
		classes[root] = append(classes[root], fmt.Sprintf("c%d", i))
	}
	out := make([][]string, 0, len(classes))
	for _, members := range classes {
		sort.Strings(members)
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

// TestSpiderProperties validates the semantic contracts with randomized
// inputs. These properties must hold for every arity and type width.
func TestSpiderProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	names := []string{"a", "b", "c", "d", "e"}

	// Property 1: the synthesizer's dom/cod contract over composite types.
	properties.Property("spiders dom/cod equal type powers", prop.ForAll(
		func(k, nIn, nOut int) bool {
			u := core.TyOf(names[:k]...)
			d, err := spider.Spiders(nIn, nOut, u, nil)
			if err != nil {
				return false
			}

			return d.Dom().Equal(u.Pow(nIn)) && d.Cod().Equal(u.Pow(nOut))
		},
		gen.IntRange(1, 5),
		gen.IntRange(0, 6),
		gen.IntRange(0, 6),
	))

	// Property 2: synthesis routes every copy of a symbol into that
	// symbol's spider: the boundary partition has one class per symbol,
	// holding exactly its copy-major positions on both sides.
	properties.Property("spiders connect exactly the wires of each symbol", prop.ForAll(
		func(k, nIn, nOut int) bool {
			u := core.TyOf(names[:k]...)
			d, err := spider.Spiders(nIn, nOut, u, nil)
			if err != nil {
				return false
			}
			want := make([][]string, k)
			for i := 0; i < k; i++ {
				var members []string
				for j := 0; j < nOut; j++ {
					members = append(members, fmt.Sprintf("c%d", j*k+i))
				}
				for j := 0; j < nIn; j++ {
					members = append(members, fmt.Sprintf("d%d", j*k+i))
				}
				sort.Strings(members)
				want[i] = members
			}
			sort.Slice(want, func(a, b int) bool { return want[a][0] < want[b][0] })

			return equalPartitions(boundaryPartition(t, d), want)
		},
		gen.IntRange(1, 4),
		gen.IntRange(1, 5),
		gen.IntRange(1, 5),
	))

	// Property 3: decomposition is behaviorally the original spider —
	// all legs end up in a single connected component.
	properties.Property("decomposition preserves spider connectivity", prop.ForAll(
		func(nIn, nOut int) bool {
			x := core.TyOf("x")
			d, err := spider.DecomposeLegs(nIn, nOut, x, nil)
			if err != nil {
				return false
			}
			s, err := core.NewSpider(nIn, nOut, x)
			if err != nil {
				return false
			}
			if !d.Dom().Equal(s.Dom()) || !d.Cod().Equal(s.Cod()) {
				return false
			}

			return equalPartitions(boundaryPartition(t, d), boundaryPartition(t, core.Single(s)))
		},
		gen.IntRange(0, 24),
		gen.IntRange(0, 24),
	))

	// Property 4: the spider dagger swaps the leg counts.
	properties.Property("spider dagger swaps legs", prop.ForAll(
		func(nIn, nOut int) bool {
			x := core.TyOf("x")
			s, err := core.NewSpider(nIn, nOut, x)
			if err != nil {
				return false
			}
			want, err := core.NewSpider(nOut, nIn, x)
			if err != nil {
				return false
			}

			return s.Dagger().Key() == want.Key()
		},
		gen.IntRange(0, 16),
		gen.IntRange(0, 16),
	))

	// Property 5: a permutation diagram followed by its inverse keeps
	// every wire in its own class pair (d_i with c_i).
	properties.Property("permutation round trip is the identity routing", prop.ForAll(
		func(k int) bool {
			u := core.TyOf(names[:k]...)
			perm := make([]int, k)
			for i := range perm {
				perm[i] = k - 1 - i
			}
			fwd, err := core.Permutation(u, perm)
			if err != nil {
				return false
			}
			back, err := core.Permutation(fwd.Cod(), perm)
			if err != nil {
				return false
			}
			round, err := fwd.Compose(back)
			if err != nil {
				return false
			}
			part := boundaryPartition(t, round)
			if len(part) != k {
				return false
			}
			for i, class := range part {
				if len(class) != 2 || class[0] != fmt.Sprintf("c%d", i) || class[1] != fmt.Sprintf("d%d", i) {
					return false
				}
			}

			return true
		},
		gen.IntRange(1, 5),
	))

	properties.TestingRun(t)
}

// equalPartitions compares two canonical partitions.
func equalPartitions(a, b [][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}

	return true
}
