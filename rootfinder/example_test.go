// SPDX-License-Identifier: MIT

package rootfinder_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/realroots/interval"
	"github.com/katalvlaran/realroots/poly"
	"github.com/katalvlaran/realroots/rootfinder"
)

// ExampleRealRoots isolates every real root of x^3 - 2x. Bisection from
// the midpoint hits 0 exactly; the irrational roots come back as intervals.
func ExampleRealRoots() {
	roots, err := rootfinder.RealRoots(poly.MustParse("x^3 - 2x"),
		rootfinder.WithStrategy(rootfinder.Generic))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range roots {
		fmt.Printf("%.6f exact=%v\n", r.Float64(), r.IsExact())
	}
	// Output:
	// -1.414214 exact=false
	// 0.000000 exact=true
	// 1.414214 exact=false
}

// ExampleFinder_Next pulls roots one at a time until Done.
func ExampleFinder_Next() {
	search, _ := interval.Open(big.NewRat(-10, 1), big.NewRat(10, 1))
	f, err := rootfinder.New(poly.MustParse("x^2 - x - 1"), rootfinder.WithInterval(search))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for {
		r, err := f.Next()
		if err == rootfinder.Done {
			break
		}
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%.6f\n", r.Float64())
	}
	fmt.Println(f.State())
	// Output:
	// -0.618034
	// 1.618034
	// exhausted
}

// ExampleCountRealRoots counts without isolating.
func ExampleCountRealRoots() {
	n, _ := rootfinder.CountRealRoots(poly.MustParse("x^5 - x - 1"), interval.Unbounded())
	fmt.Println(n)
	// Output: 1
}
