// SPDX-License-Identifier: MIT

package spider_test

import (
	"fmt"

	"github.com/katalvlaran/hypercat/core"
	"github.com/katalvlaran/hypercat/spider"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDecomposeLegs
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Four legs merging into one. The even split yields the balanced
//	tree (Spider(2,1,x) ⊗ Spider(2,1,x)) >> Spider(2,1,x).
//
// Complexity: O(n) generators, O(log n) depth.
//
// ExampleDecomposeLegs demonstrates the balanced binary decomposition.
func ExampleDecomposeLegs() {
	x := core.TyOf("x")
	d, err := spider.DecomposeLegs(4, 1, x, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(d)
	fmt.Printf("%s -> %s\n", d.Dom(), d.Cod())
	// Output:
	// Spider(2, 1, x) >> Spider(2, 1, x) >> Spider(2, 1, x)
	// x @ x @ x @ x -> x
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSpiders
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A (2, 1)-spider over the composite type u = a ⊗ b: one spider per
//	symbol, with swap networks translating between copy-major wire
//	order (a b a b) and symbol-major order (a a b b).
//
// ExampleSpiders demonstrates synthesis over a composite type.
func ExampleSpiders() {
	u := core.TyOf("a", "b")
	d, err := spider.Spiders(2, 1, u, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("dom: %s\n", d.Dom())
	fmt.Printf("cod: %s\n", d.Cod())
	fmt.Println(d)
	// Output:
	// dom: a @ b @ a @ b
	// cod: a @ b
	// Swap(b, a) >> Spider(2, 1, a) >> Spider(2, 1, b)
}
