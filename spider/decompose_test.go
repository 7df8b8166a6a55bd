// SPDX-License-Identifier: MIT

package spider_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypercat/core"
	"github.com/katalvlaran/hypercat/spider"
)

// mustSpider builds a primitive one-layer spider diagram for tests.
func mustSpider(t *testing.T, nIn, nOut int, typ core.Ty) core.Diagram {
	t.Helper()
	s, err := core.NewSpider(nIn, nOut, typ)
	require.NoError(t, err)

	return core.Single(s)
}

// TestDecompose_BaseCases covers the (1,0), (1,1) and (2,1) leaves.
func TestDecompose_BaseCases(t *testing.T) {
	x := core.TyOf("x")

	d, err := spider.DecomposeLegs(1, 0, x, nil)
	require.NoError(t, err)
	require.True(t, d.Equal(mustSpider(t, 1, 0, x)))

	d, err = spider.DecomposeLegs(1, 1, x, nil)
	require.NoError(t, err)
	require.True(t, d.Equal(core.Id(x)), "the (1,1)-spider decomposes to the identity")

	d, err = spider.DecomposeLegs(2, 1, x, nil)
	require.NoError(t, err)
	require.True(t, d.Equal(mustSpider(t, 2, 1, x)))
}

// TestDecompose_FourToOne verifies the balanced even split:
// decompose(4,1,x) = (Spider(2,1,x) ⊗ Spider(2,1,x)) >> Spider(2,1,x).
func TestDecompose_FourToOne(t *testing.T) {
	x := core.TyOf("x")
	got, err := spider.DecomposeLegs(4, 1, x, nil)
	require.NoError(t, err)

	s21 := mustSpider(t, 2, 1, x)
	want, err := s21.Tensor(s21).Compose(s21)
	require.NoError(t, err)
	require.True(t, got.Equal(want), "got %v; want %v", got, want)
}

// TestDecompose_FiveToOne verifies the odd peel:
// decompose(5,1,x) = (decompose(4,1,x) ⊗ id(x)) >> Spider(2,1,x).
func TestDecompose_FiveToOne(t *testing.T) {
	x := core.TyOf("x")
	got, err := spider.DecomposeLegs(5, 1, x, nil)
	require.NoError(t, err)

	four, err := spider.DecomposeLegs(4, 1, x, nil)
	require.NoError(t, err)
	want, err := four.Tensor(core.Id(x)).Compose(mustSpider(t, 2, 1, x))
	require.NoError(t, err)
	require.True(t, got.Equal(want), "got %v; want %v", got, want)
}

// TestDecompose_DaggerNormalization verifies that more outputs than
// inputs reduce to the daggered transpose.
func TestDecompose_DaggerNormalization(t *testing.T) {
	x := core.TyOf("x")
	got, err := spider.DecomposeLegs(1, 4, x, nil)
	require.NoError(t, err)

	four, err := spider.DecomposeLegs(4, 1, x, nil)
	require.NoError(t, err)
	require.True(t, got.Equal(four.Dagger()))
}

// TestDecompose_MergeThenSplit verifies the general (n, m) reduction
// through a single middle wire.
func TestDecompose_MergeThenSplit(t *testing.T) {
	x := core.TyOf("x")
	got, err := spider.DecomposeLegs(3, 2, x, nil)
	require.NoError(t, err)
	require.True(t, got.Dom().Equal(x.Pow(3)))
	require.True(t, got.Cod().Equal(x.Pow(2)))

	merge, err := spider.DecomposeLegs(3, 1, x, nil)
	require.NoError(t, err)
	split, err := spider.DecomposeLegs(1, 2, x, nil)
	require.NoError(t, err)
	want, err := merge.Compose(split)
	require.NoError(t, err)
	require.True(t, got.Equal(want))
}

// TestDecompose_ZeroZero verifies the scalar spider: no legs at all
// still decomposes into a unit against a counit.
func TestDecompose_ZeroZero(t *testing.T) {
	x := core.TyOf("x")
	d, err := spider.DecomposeLegs(0, 0, x, nil)
	require.NoError(t, err)
	require.Equal(t, 0, d.Dom().Len())
	require.Equal(t, 0, d.Cod().Len())
	require.Equal(t, 2, d.Size())
}

// TestDecompose_PrimitiveSet verifies that every generator in a
// decomposition is Spider(1,0), Spider(2,1) or a dagger of those.
func TestDecompose_PrimitiveSet(t *testing.T) {
	x := core.TyOf("x")
	allowed := map[[2]int]bool{{1, 0}: true, {0, 1}: true, {2, 1}: true, {1, 2}: true}
	for nIn := 0; nIn <= 9; nIn++ {
		for nOut := 0; nOut <= 9; nOut++ {
			d, err := spider.DecomposeLegs(nIn, nOut, x, nil)
			require.NoError(t, err, "decompose(%d, %d)", nIn, nOut)
			for _, l := range d.Layers() {
				s, ok := l.Gen.(core.Spider)
				require.True(t, ok, "decompose(%d, %d): non-spider generator %v", nIn, nOut, l.Gen)
				require.True(t, allowed[[2]int{s.LegsIn(), s.LegsOut()}],
					"decompose(%d, %d): non-primitive %v", nIn, nOut, s)
			}
		}
	}
}

// TestDecompose_ManyLegs is the boundary scenario: a few hundred legs
// must terminate with the right types and a linear generator count.
func TestDecompose_ManyLegs(t *testing.T) {
	x := core.TyOf("x")
	const legs = 300
	d, err := spider.DecomposeLegs(legs, 2, x, nil)
	require.NoError(t, err)
	require.True(t, d.Dom().Equal(x.Pow(legs)))
	require.True(t, d.Cod().Equal(x.Pow(2)))
	require.LessOrEqual(t, d.Size(), 2*(legs+2), "generator count must stay linear in the leg count")
}

// TestDecompose_Errors covers the validation surface.
func TestDecompose_Errors(t *testing.T) {
	x := core.TyOf("x")

	_, err := spider.DecomposeLegs(1, 1, core.TyOf("x", "y"), nil)
	require.ErrorIs(t, err, core.ErrNotAtomic)

	_, err = spider.DecomposeLegs(-2, 1, x, nil)
	require.ErrorIs(t, err, core.ErrNegativeLegs)

	_, err = spider.DecomposeLegs(9, 1, x, &spider.Options{MaxLegs: 8})
	require.ErrorIs(t, err, spider.ErrLegLimit)

	// Decompose on a constructed Spider routes through the same checks.
	s, err := core.NewSpider(9, 1, x)
	require.NoError(t, err)
	_, err = spider.Decompose(s, &spider.Options{MaxLegs: 8})
	require.ErrorIs(t, err, spider.ErrLegLimit)
}
