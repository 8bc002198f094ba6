// SPDX-License-Identifier: MIT

package rootfinder

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/realroots/interval"
)

// sqrtStartBits is the initial binary precision of the √disc bounds.
const sqrtStartBits = 16

// solveTrivial records the roots of a working polynomial of degree ≤ 2
// lying in the open interval core, without queueing anything.
//
// Degree 1 and quadratics with a rational square discriminant give exact
// roots. Otherwise √disc is bracketed by rationals lo < √disc < hi, which
// brackets both roots; the precision doubles until each bracket lies entirely
// inside or entirely outside core and the two brackets are disjoint.
func (f *Finder) solveTrivial(core interval.Interval) {
	p := f.p
	switch p.Degree() {
	case 1:
		x := new(big.Rat).Quo(p.Coeff(0), p.Coeff(1))
		x.Neg(x)
		if core.ContainsOpen(x) {
			f.AddRoot(x)
		}
		return
	case 2:
	default:
		return
	}

	a, b, c := p.Coeff(2), p.Coeff(1), p.Coeff(0)
	disc := new(big.Rat).Mul(b, b)
	disc.Sub(disc, new(big.Rat).Mul(big.NewRat(4, 1), new(big.Rat).Mul(a, c)))
	if disc.Sign() < 0 {
		f.log.Debug("no real roots", zap.Stringer("polynomial", p))
		return
	}

	twoA := new(big.Rat).Add(a, a)
	negB := new(big.Rat).Neg(b)
	if s, ok := ratSqrt(disc); ok {
		for _, sg := range []int{-1, 1} {
			x := new(big.Rat).Mul(s, big.NewRat(int64(sg), 1))
			x.Add(x, negB)
			x.Quo(x, twoA)
			if core.ContainsOpen(x) {
				f.AddRoot(x)
			}
		}
		return
	}

	for bits := uint(sqrtStartBits); ; bits *= 2 {
		lo, hi := sqrtBounds(disc, bits)
		minus := rootBracket(negB, new(big.Rat).Neg(hi), new(big.Rat).Neg(lo), twoA)
		plus := rootBracket(negB, lo, hi, twoA)
		if minus.Overlaps(plus) || !decided(minus, core) || !decided(plus, core) {
			continue
		}
		for _, iv := range []interval.Interval{minus, plus} {
			if inside(iv, core) {
				f.AddIsolated(iv)
			}
		}
		return
	}
}

// rootBracket returns the open interval spanned by (negB + t) / twoA for t in (lo, hi).
func rootBracket(negB, lo, hi, twoA *big.Rat) interval.Interval {
	x := new(big.Rat).Add(negB, lo)
	x.Quo(x, twoA)
	y := new(big.Rat).Add(negB, hi)
	y.Quo(y, twoA)
	if x.Cmp(y) > 0 {
		x, y = y, x
	}
	iv, _ := interval.Open(x, y) // lo < hi and twoA ≠ 0

	return iv
}

// decided reports whether iv lies entirely inside or entirely outside core.
func decided(iv, core interval.Interval) bool {
	return inside(iv, core) || !iv.Overlaps(core)
}

func inside(iv, core interval.Interval) bool {
	return iv.Left().Cmp(core.Left()) >= 0 && iv.Right().Cmp(core.Right()) <= 0
}

// ratSqrt returns the exact square root of a non-negative rational when it is rational.
func ratSqrt(x *big.Rat) (*big.Rat, bool) {
	n, d := x.Num(), x.Denom()
	sn := new(big.Int).Sqrt(n)
	if new(big.Int).Mul(sn, sn).Cmp(n) != 0 {
		return nil, false
	}
	sd := new(big.Int).Sqrt(d)
	if new(big.Int).Mul(sd, sd).Cmp(d) != 0 {
		return nil, false
	}

	return new(big.Rat).SetFrac(sn, sd), true
}

// sqrtBounds returns rationals lo < √x < hi with hi - lo = 1/(denom(x)·2^bits),
// for a positive rational x that is not a rational square.
func sqrtBounds(x *big.Rat, bits uint) (lo, hi *big.Rat) {
	// √(n/d) = √(n·d·4^bits) / (d·2^bits)
	d := x.Denom()
	scaled := new(big.Int).Mul(x.Num(), d)
	scaled.Lsh(scaled, 2*bits)
	s := new(big.Int).Sqrt(scaled)
	den := new(big.Int).Lsh(d, bits)
	lo = new(big.Rat).SetFrac(s, den)
	hi = new(big.Rat).SetFrac(new(big.Int).Add(s, big.NewInt(1)), den)

	return lo, hi
}
