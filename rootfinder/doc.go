// SPDX-License-Identifier: MIT

// Package rootfinder isolates the real roots of a univariate rational
// polynomial inside a search interval, lazily and in ascending order.
//
// A Finder holds a work queue of open intervals ordered by diameter (largest
// first). Each popped interval is classified with the Sturm counter:
//
//   - no root: dropped;
//   - one root: certified as an isolating interval;
//   - two or more: handed to its splitting strategy, which reports exact roots
//     it hits, certified intervals, and sub-intervals to enqueue.
//
// Next returns the smallest root not yet returned as soon as no queued region
// lies to its left, so roots stream out in ascending order long before the
// queue is empty.
//
// Strategies:
//
//   - Generic:      bisect at the midpoint.
//   - BinarySample: bisect at a simple rational from the middle half.
//   - BinaryNewton: split at a float Newton step clamped into the interval.
//   - Grid:         cut into GridCells equal cells.
//   - EigenValue:   seed narrow intervals around eigenvalues of the companion matrix.
//   - Aberth:       seed narrow intervals around Aberth–Ehrlich approximations.
//
// Numerical strategies only propose candidates; every interval that reaches
// the root list has been certified by exact Sturm counting, and a failed
// approximation falls back to BinarySample bisection.
//
// Complexity: each queue item costs one Sturm count, O(n²) rational operations
// per endpoint for a degree-n polynomial; EigenValue adds O(n³) float work per
// working polynomial (cached between items).
//
// Errors (sentinel):
//
//   - ErrInvalidInterval  if a seed interval has its bounds reversed.
//   - ErrDegenerateInput  if the polynomial is zero.
//   - ErrUnknownStrategy  if a strategy tag is outside the enumeration.
//   - ErrBudgetExceeded   if Next spent its step budget (non-fatal, call again).
//   - Done                when every root has been returned.
//
// Example usage:
//
//	f, err := rootfinder.New(poly.MustParse("x^3 - 2x"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for r, err := range f.Roots() {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(r)
//	}
package rootfinder
