// SPDX-License-Identifier: MIT

package interval

import "math/big"

// Simplest returns the rational with the smallest denominator (ties: smallest
// magnitude) strictly between l and r, found by descending the Stern–Brocot
// tree via continued fractions. Returns nil unless l < r.
// Complexity: O(number of continued-fraction terms of the endpoints).
func Simplest(l, r *big.Rat) *big.Rat {
	if l.Cmp(r) >= 0 {
		return nil
	}
	switch {
	case l.Sign() < 0 && r.Sign() > 0:
		return new(big.Rat)
	case r.Sign() <= 0:
		s := simplestAbove(new(big.Rat).Neg(r), new(big.Rat).Neg(l))
		return s.Neg(s)
	default:
		return simplestAbove(l, r)
	}
}

// simplestAbove handles 0 ≤ l < r; r == nil stands for +∞.
func simplestAbove(l, r *big.Rat) *big.Rat {
	// floor(l) for l ≥ 0
	fl := new(big.Int).Quo(l.Num(), l.Denom())
	n := new(big.Rat).SetInt(new(big.Int).Add(fl, big.NewInt(1)))
	if r == nil || n.Cmp(r) < 0 {
		return n
	}

	// fl ≤ l < r ≤ fl+1: write x = fl + 1/y and recurse on y
	base := new(big.Rat).SetInt(fl)
	lf := new(big.Rat).Sub(l, base)
	rf := new(big.Rat).Sub(r, base)
	lo := new(big.Rat).Inv(rf)
	var hi *big.Rat
	if lf.Sign() != 0 {
		hi = new(big.Rat).Inv(lf)
	}
	y := simplestAbove(lo, hi)

	return base.Add(base, y.Inv(y))
}
