// SPDX-License-Identifier: MIT

package rootfinder

import (
	"math"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/realroots/interval"
)

// newtonMargin keeps a Newton split point out of the outer 1/16 on each side.
var newtonMargin = big.NewRat(1, 16)

// checkRoot reports whether x is a root and records it.
func checkRoot(ctx Context, x *big.Rat) bool {
	if ctx.Polynomial().Sign(x) != 0 {
		return false
	}
	ctx.AddRoot(x)

	return true
}

// splitAt enqueues both halves of iv around a point strictly inside it.
func splitAt(ctx Context, iv interval.Interval, at *big.Rat, s Strategy) {
	lo, hi, err := iv.Split(at)
	if err != nil {
		ctx.Logger().Debug("split point outside interval",
			zap.Stringer("interval", iv), zap.String("at", at.RatString()))
		return
	}
	enqueue(ctx, lo, s)
	enqueue(ctx, hi, s)
}

func enqueue(ctx Context, iv interval.Interval, s Strategy) {
	if err := ctx.AddQueue(iv, s); err != nil {
		ctx.Logger().Debug("enqueue rejected", zap.Stringer("interval", iv), zap.Error(err))
	}
}

// splitGeneric bisects at the midpoint.
func splitGeneric(iv interval.Interval, ctx Context) {
	m := iv.Midpoint()
	checkRoot(ctx, m)
	splitAt(ctx, iv, m, Generic)
}

// splitBinarySample bisects at the sample point, or at the midpoint when that is a root.
func splitBinarySample(iv interval.Interval, ctx Context) {
	m := iv.Midpoint()
	if checkRoot(ctx, m) {
		splitAt(ctx, iv, m, BinarySample)
		return
	}
	s := iv.Sample()
	checkRoot(ctx, s)
	splitAt(ctx, iv, s, BinarySample)
}

// splitBinaryNewton splits at one float Newton step from the midpoint,
// clamped into the central 7/8 of iv.
func splitBinaryNewton(iv interval.Interval, ctx Context) {
	m := iv.Midpoint()
	if checkRoot(ctx, m) {
		splitAt(ctx, iv, m, BinaryNewton)
		return
	}
	at := newtonPoint(iv, m, ctx)
	checkRoot(ctx, at)
	splitAt(ctx, iv, at, BinaryNewton)
}

// newtonPoint returns the Newton split point, or m when the step is unusable.
func newtonPoint(iv interval.Interval, m *big.Rat, ctx Context) *big.Rat {
	x0, _ := m.Float64()
	fx := ctx.Polynomial().EvalFloat(x0)
	dfx := ctx.Derivative().EvalFloat(x0)
	if dfx == 0 || math.IsNaN(fx) || math.IsInf(fx, 0) || math.IsNaN(dfx) || math.IsInf(dfx, 0) {
		return m
	}
	x1 := x0 - fx/dfx
	if math.IsNaN(x1) || math.IsInf(x1, 0) {
		return m
	}
	at := new(big.Rat).SetFloat64(x1)
	if !iv.ContainsOpen(at) {
		return m
	}

	margin := iv.Diameter()
	margin.Mul(margin, newtonMargin)
	lo := new(big.Rat).Add(iv.Left(), margin)
	hi := new(big.Rat).Sub(iv.Right(), margin)
	switch {
	case at.Cmp(lo) < 0:
		return lo
	case at.Cmp(hi) > 0:
		return hi
	default:
		return at
	}
}

// splitGrid cuts iv into GridCells equal cells, checking interior grid
// points exactly; cells continue as Generic.
func splitGrid(iv interval.Interval, ctx Context) {
	n := ctx.GridCells()
	step := iv.Diameter()
	step.Quo(step, new(big.Rat).SetInt64(int64(n)))

	left := iv.Left()
	for i := 1; i <= n; i++ {
		var right *big.Rat
		if i == n {
			right = iv.Right()
		} else {
			right = new(big.Rat).Add(left, step)
			checkRoot(ctx, right)
		}
		cell, err := interval.Open(left, right)
		if err == nil {
			enqueue(ctx, cell, Generic)
		}
		left = right
	}
}
