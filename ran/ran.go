// SPDX-License-Identifier: MIT

// Package ran represents real algebraic numbers: a real root held either as an
// exact rational value or as an isolating interval together with a defining
// polynomial that has exactly one root inside it.
//
// Ordering between numbers of one finder is well defined because their
// isolating intervals are pairwise disjoint; Less relies on that.
package ran

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/realroots/interval"
	"github.com/katalvlaran/realroots/poly"
	"github.com/katalvlaran/realroots/sturm"
)

// ErrNotIsolating indicates an interval that does not contain exactly one root of the polynomial.
var ErrNotIsolating = errors.New("ran: interval does not isolate exactly one root")

// float64Precision is the diameter Float64 refines to before reading the midpoint.
var float64Precision = big.NewRat(1, 1<<40)

// Number is a real algebraic number. The zero value is not usable; build with
// NewExact or NewIsolated.
type Number struct {
	value *big.Rat          // set iff exact
	iv    interval.Interval // isolating interval (open) when not exact
	p     poly.Polynomial   // defining polynomial when not exact
	seq   *sturm.Sequence   // cached Sturm sequence of p
}

// NewExact wraps an exact rational value (copied).
func NewExact(x *big.Rat) *Number {
	return &Number{value: new(big.Rat).Set(x)}
}

// NewIsolated builds an interval-represented number. iv must be bounded and
// contain exactly one root of p; a point interval collapses to an exact value.
// Returns ErrNotIsolating otherwise, or the sturm error for the zero polynomial.
func NewIsolated(p poly.Polynomial, iv interval.Interval) (*Number, error) {
	seq, err := sturm.New(p)
	if err != nil {
		return nil, fmt.Errorf("NewIsolated: %w", err)
	}

	return newIsolated(p, seq, iv)
}

// NewIsolatedSeq is NewIsolated with a precomputed Sturm sequence of p.
func NewIsolatedSeq(p poly.Polynomial, seq *sturm.Sequence, iv interval.Interval) (*Number, error) {
	return newIsolated(p, seq, iv)
}

func newIsolated(p poly.Polynomial, seq *sturm.Sequence, iv interval.Interval) (*Number, error) {
	if !iv.IsBounded() {
		return nil, fmt.Errorf("NewIsolated(%s): %w", iv, interval.ErrUnbounded)
	}
	if n := seq.RootCountIn(iv); n != 1 {
		return nil, fmt.Errorf("NewIsolated(%s, %s): %d roots: %w", p, iv, n, ErrNotIsolating)
	}
	if iv.IsPoint() {
		return NewExact(iv.Left()), nil
	}
	// Closed endpoints that are roots collapse to the exact value.
	if l := iv.Left(); !iv.LeftOpen() && p.Sign(l) == 0 {
		return NewExact(l), nil
	}
	if r := iv.Right(); !iv.RightOpen() && p.Sign(r) == 0 {
		return NewExact(r), nil
	}
	open, _ := interval.Open(iv.Left(), iv.Right()) // bounded, non-point: cannot fail

	return &Number{iv: open, p: p, seq: seq}, nil
}

// IsExact reports whether the value is known exactly.
func (n *Number) IsExact() bool { return n.value != nil }

// Value returns a copy of the exact value, or nil when not exact.
func (n *Number) Value() *big.Rat {
	if n.value == nil {
		return nil
	}

	return new(big.Rat).Set(n.value)
}

// Interval returns the isolating interval; for exact numbers it is the point [v, v].
func (n *Number) Interval() interval.Interval {
	if n.value != nil {
		return interval.Point(n.value)
	}

	return n.iv
}

// Polynomial returns the defining polynomial; for exact numbers it is x - v.
func (n *Number) Polynomial() poly.Polynomial {
	if n.value != nil {
		return poly.Linear(n.value)
	}

	return n.p
}

// Contains reports whether x is this number (exact) or lies in its isolating interval.
func (n *Number) Contains(x *big.Rat) bool {
	if n.value != nil {
		return n.value.Cmp(x) == 0
	}

	return n.iv.Contains(x)
}

// Refine bisects the isolating interval in place until its diameter is at most eps,
// or until a bisection point hits the root exactly (the number then becomes exact).
// It is a no-op for exact numbers.
func (n *Number) Refine(eps *big.Rat) {
	for n.value == nil && n.iv.Diameter().Cmp(eps) > 0 {
		n.bisect()
	}
}

// bisect halves the isolating interval once.
func (n *Number) bisect() {
	m := n.iv.Midpoint()
	if n.p.Sign(m) == 0 {
		n.value, n.seq = m, nil
		return
	}
	lo, hi, _ := n.iv.Split(m) // midpoint of an open non-point interval is inside
	if n.seq.RootCountIn(lo) == 1 {
		n.iv = lo
	} else {
		n.iv = hi
	}
}

// Float64 returns a float64 approximation without modifying n.
func (n *Number) Float64() float64 {
	if n.value != nil {
		f, _ := n.value.Float64()
		return f
	}
	c := n.Clone()
	c.Refine(float64Precision)
	if c.value != nil {
		f, _ := c.value.Float64()
		return f
	}
	f, _ := c.iv.Midpoint().Float64()

	return f
}

// Less reports n < o for numbers with disjoint isolating intervals (as produced
// by one finder). An exact value equal to the other's open left endpoint is less.
func (n *Number) Less(o *Number) bool {
	switch {
	case n.value != nil && o.value != nil:
		return n.value.Cmp(o.value) < 0
	case n.value != nil:
		return n.value.Cmp(o.iv.Left()) <= 0
	case o.value != nil:
		return n.iv.Right().Cmp(o.value) <= 0
	default:
		return n.iv.Before(o.iv)
	}
}

// Clone returns an independent copy (safe to keep beyond the producing finder).
func (n *Number) Clone() *Number {
	if n.value != nil {
		return NewExact(n.value)
	}

	return &Number{iv: n.iv, p: n.p, seq: n.seq}
}

// String renders "3/2" for exact values and "root of x^2 - 2 in (1, 3/2)" otherwise.
func (n *Number) String() string {
	if n.value != nil {
		return n.value.RatString()
	}

	return fmt.Sprintf("root of %s in %s", n.p, n.iv)
}
