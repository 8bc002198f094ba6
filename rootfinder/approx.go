// SPDX-License-Identifier: MIT

package rootfinder

import (
	"fmt"
	"math"
	"math/big"
	"math/cmplx"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/realroots/interval"
	"github.com/katalvlaran/realroots/matrix/ops"
)

const (
	// seedRelWidth is the half-width of a seed interval relative to max(|v|, 1).
	seedRelWidth = 1e-6
	// realTol decides when an approximation's imaginary part is negligible.
	realTol = 1e-7

	aberthMaxIter = 500
	aberthTol     = 1e-14
)

// fallbackNoter is implemented by contexts that count rejected seeds.
type fallbackNoter interface {
	noteFallback()
}

// splitNumeric returns the split function of a numerical strategy. Every
// approximation inside iv seeds a narrow open interval; the gaps between
// seeds are enqueued as BinarySample and the cut points are checked exactly.
// If any seed fails to hold exactly one root, iv is bisected instead.
func splitNumeric(kind Strategy) splitFunc {
	return func(iv interval.Interval, ctx Context) {
		log := ctx.Logger()
		approx, err := ctx.RealApproximations(kind)
		if err != nil {
			log.Debug("approximation failed", zap.Stringer("strategy", kind), zap.Error(err))
			fallback(iv, ctx)
			return
		}
		seeds := seedIntervals(iv, approx)
		if len(seeds) == 0 {
			log.Debug("no approximation inside interval",
				zap.Stringer("strategy", kind), zap.Stringer("interval", iv))
			fallback(iv, ctx)
			return
		}
		seq := ctx.Sturm()
		for _, s := range seeds {
			if n := seq.RootCountIn(s); n != 1 {
				log.Debug("seed rejected",
					zap.Stringer("strategy", kind), zap.Stringer("seed", s), zap.Int("roots", n))
				fallback(iv, ctx)
				return
			}
		}

		left, right := iv.Left(), iv.Right()
		for _, s := range seeds {
			sl, sr := s.Left(), s.Right()
			if sl.Cmp(left) > 0 {
				checkRoot(ctx, sl)
				gap, _ := interval.Open(left, sl)
				enqueue(ctx, gap, BinarySample)
			}
			if sr.Cmp(right) < 0 {
				checkRoot(ctx, sr)
			}
			ctx.AddIsolated(s)
			left = sr
		}
		if left.Cmp(right) < 0 {
			gap, _ := interval.Open(left, right)
			enqueue(ctx, gap, BinarySample)
		}
	}
}

func fallback(iv interval.Interval, ctx Context) {
	if fn, ok := ctx.(fallbackNoter); ok {
		fn.noteFallback()
	}
	splitBinarySample(iv, ctx)
}

// seedIntervals builds disjoint open intervals around the approximations
// lying in iv, clipped to iv, sorted, with overlapping or touching seeds merged.
func seedIntervals(iv interval.Interval, approx []float64) []interval.Interval {
	var seeds []interval.Interval
	for _, v := range approx {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		c := new(big.Rat).SetFloat64(v)
		w := new(big.Rat).SetFloat64(math.Max(math.Abs(v), 1) * seedRelWidth)
		s, err := interval.Open(new(big.Rat).Sub(c, w), new(big.Rat).Add(c, w))
		if err != nil {
			continue
		}
		clipped, ok := s.Intersect(iv)
		if !ok || clipped.IsPoint() {
			continue
		}
		seeds = append(seeds, clipped)
	}
	sort.Slice(seeds, func(i, j int) bool { return seeds[i].Left().Cmp(seeds[j].Left()) < 0 })

	merged := seeds[:0]
	for _, s := range seeds {
		if k := len(merged) - 1; k >= 0 && s.Left().Cmp(merged[k].Right()) <= 0 {
			right := merged[k].Right()
			if s.Right().Cmp(right) > 0 {
				right = s.Right()
			}
			merged[k], _ = interval.Open(merged[k].Left(), right)
			continue
		}
		merged = append(merged, s)
	}

	return merged
}

// realApproximations runs the numerical method kind on coefficients c
// (low→high) and returns the real parts of the nearly real roots, ascending.
func realApproximations(kind Strategy, c []float64) ([]float64, error) {
	var (
		roots []complex128
		err   error
	)
	switch kind {
	case EigenValue:
		roots, err = ops.PolyRoots(c)
	case Aberth:
		roots, err = aberthRoots(c)
	default:
		return nil, fmt.Errorf("realApproximations(%s): %w", kind, ErrUnknownStrategy)
	}
	if err != nil {
		return nil, fmt.Errorf("realApproximations(%s): %w", kind, err)
	}

	out := make([]float64, 0, len(roots))
	for _, z := range roots {
		if math.Abs(imag(z)) <= realTol*math.Max(1, math.Abs(real(z))) {
			out = append(out, real(z))
		}
	}
	sort.Float64s(out)

	return out, nil
}

// aberthRoots approximates all complex roots of the polynomial with
// coefficients c (low→high) by Aberth–Ehrlich iteration started on a circle
// of the Cauchy radius.
func aberthRoots(c []float64) ([]complex128, error) {
	n := len(c) - 1
	if n < 1 || c[n] == 0 {
		return nil, fmt.Errorf("aberthRoots: %w", ops.ErrBadPolynomial)
	}
	radius := 0.0
	for i, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("aberthRoots: %w", ops.ErrBadPolynomial)
		}
		if i < n {
			radius = math.Max(radius, math.Abs(v/c[n]))
		}
	}
	radius++

	z := make([]complex128, n)
	for k := range z {
		theta := 2*math.Pi*float64(k)/float64(n) + math.Pi/(2*float64(n))
		z[k] = cmplx.Rect(radius, theta)
	}

	for iter := 0; iter < aberthMaxIter; iter++ {
		converged := true
		for k := range z {
			f, df := hornerComplex(c, z[k])
			if f == 0 {
				continue
			}
			ratio := f / df
			var sum complex128
			for j := range z {
				if j != k {
					sum += 1 / (z[k] - z[j])
				}
			}
			w := ratio / (1 - ratio*sum)
			if cmplx.IsNaN(w) || cmplx.IsInf(w) {
				return nil, fmt.Errorf("aberthRoots: step %d: %w", iter, ErrNotConverged)
			}
			z[k] -= w
			if cmplx.Abs(w) > aberthTol*(1+cmplx.Abs(z[k])) {
				converged = false
			}
		}
		if converged {
			return z, nil
		}
	}

	return nil, fmt.Errorf("aberthRoots: %d iterations: %w", aberthMaxIter, ErrNotConverged)
}

// hornerComplex evaluates p(x) and p'(x).
func hornerComplex(c []float64, x complex128) (p, dp complex128) {
	for i := len(c) - 1; i >= 0; i-- {
		dp = dp*x + p
		p = p*x + complex(c[i], 0)
	}

	return p, dp
}
