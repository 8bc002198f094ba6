// SPDX-License-Identifier: MIT

// Package interval provides intervals over ℚ with exact endpoints, open or
// closed bounds and optional infinite sides.
//
// An Interval is an immutable value. Endpoints are copied on the way in and
// on the way out, so callers may keep or mutate the *big.Rat they pass or get.
//
// Bounded operations (Diameter, Midpoint, Sample, Split) require both sides
// finite; on an unbounded interval they return nil / ErrUnbounded.
package interval

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Sentinel errors.
var (
	// ErrInvalidBounds indicates left > right.
	ErrInvalidBounds = errors.New("interval: left bound exceeds right bound")

	// ErrOpenPoint indicates a zero-width interval with an open side (the empty set).
	ErrOpenPoint = errors.New("interval: zero-width interval must be closed")

	// ErrUnbounded indicates a bounded-only operation was applied to an unbounded interval.
	ErrUnbounded = errors.New("interval: interval is unbounded")

	// ErrSplitOutside indicates a split point not strictly inside the interval.
	ErrSplitOutside = errors.New("interval: split point not strictly inside")
)

// Interval is (left, right) with per-side open/closed flags.
// A nil endpoint means that side is infinite (and therefore open).
type Interval struct {
	left, right         *big.Rat
	leftOpen, rightOpen bool
}

// New builds an interval; nil endpoints denote -∞ / +∞ (their open flag is forced to true).
// Returns ErrInvalidBounds if left > right and ErrOpenPoint for an open zero-width interval.
func New(left, right *big.Rat, leftOpen, rightOpen bool) (Interval, error) {
	iv := Interval{leftOpen: leftOpen || left == nil, rightOpen: rightOpen || right == nil}
	if left != nil {
		iv.left = new(big.Rat).Set(left)
	}
	if right != nil {
		iv.right = new(big.Rat).Set(right)
	}
	if left != nil && right != nil {
		switch left.Cmp(right) {
		case 1:
			return Interval{}, fmt.Errorf("New(%s, %s): %w", left.RatString(), right.RatString(), ErrInvalidBounds)
		case 0:
			if iv.leftOpen || iv.rightOpen {
				return Interval{}, fmt.Errorf("New(%s): %w", left.RatString(), ErrOpenPoint)
			}
		}
	}

	return iv, nil
}

// Open returns (a, b). Returns ErrInvalidBounds if a > b and ErrOpenPoint if a == b.
func Open(a, b *big.Rat) (Interval, error) { return New(a, b, true, true) }

// Closed returns [a, b]. Returns ErrInvalidBounds if a > b.
func Closed(a, b *big.Rat) (Interval, error) { return New(a, b, false, false) }

// Point returns the degenerate interval [x, x].
func Point(x *big.Rat) Interval {
	return Interval{left: new(big.Rat).Set(x), right: new(big.Rat).Set(x)}
}

// Unbounded returns (-∞, +∞).
func Unbounded() Interval {
	return Interval{leftOpen: true, rightOpen: true}
}

// Left returns a copy of the left endpoint, or nil when the left side is infinite.
func (iv Interval) Left() *big.Rat { return copyRat(iv.left) }

// Right returns a copy of the right endpoint, or nil when the right side is infinite.
func (iv Interval) Right() *big.Rat { return copyRat(iv.right) }

// LeftOpen reports whether the left bound is excluded.
func (iv Interval) LeftOpen() bool { return iv.leftOpen }

// RightOpen reports whether the right bound is excluded.
func (iv Interval) RightOpen() bool { return iv.rightOpen }

// LeftUnbounded reports whether the left side is -∞.
func (iv Interval) LeftUnbounded() bool { return iv.left == nil }

// RightUnbounded reports whether the right side is +∞.
func (iv Interval) RightUnbounded() bool { return iv.right == nil }

// IsBounded reports whether both sides are finite.
func (iv Interval) IsBounded() bool { return iv.left != nil && iv.right != nil }

// IsPoint reports whether iv is [x, x].
func (iv Interval) IsPoint() bool {
	return iv.IsBounded() && iv.left.Cmp(iv.right) == 0
}

// Diameter returns right - left, or nil for an unbounded interval.
func (iv Interval) Diameter() *big.Rat {
	if !iv.IsBounded() {
		return nil
	}

	return new(big.Rat).Sub(iv.right, iv.left)
}

// Midpoint returns (left + right) / 2, or nil for an unbounded interval.
func (iv Interval) Midpoint() *big.Rat {
	if !iv.IsBounded() {
		return nil
	}
	m := new(big.Rat).Add(iv.left, iv.right)

	return m.Quo(m, big.NewRat(2, 1))
}

// Sample returns a point strictly inside iv that differs from the midpoint:
// the simplest rational (smallest denominator, then smallest magnitude) in the
// middle half (left + d/4, right - d/4), or in its left quarter when the
// simplest one is the midpoint itself. Each piece of a split at Sample is at
// most 3/4 of the diameter. Returns nil for unbounded or point intervals.
func (iv Interval) Sample() *big.Rat {
	if !iv.IsBounded() || iv.IsPoint() {
		return nil
	}
	quarter := iv.Diameter()
	quarter.Quo(quarter, big.NewRat(4, 1))
	lo := new(big.Rat).Add(iv.left, quarter)
	hi := new(big.Rat).Sub(iv.right, quarter)
	mid := iv.Midpoint()

	s := Simplest(lo, hi)
	if s.Cmp(mid) != 0 {
		return s
	}

	return Simplest(lo, mid)
}

// Contains reports whether x lies in iv, honouring open/closed bounds.
func (iv Interval) Contains(x *big.Rat) bool {
	if iv.left != nil {
		c := x.Cmp(iv.left)
		if c < 0 || c == 0 && iv.leftOpen {
			return false
		}
	}
	if iv.right != nil {
		c := x.Cmp(iv.right)
		if c > 0 || c == 0 && iv.rightOpen {
			return false
		}
	}

	return true
}

// ContainsOpen reports whether x lies strictly between the endpoints, regardless of bound flags.
func (iv Interval) ContainsOpen(x *big.Rat) bool {
	if iv.left != nil && x.Cmp(iv.left) <= 0 {
		return false
	}
	if iv.right != nil && x.Cmp(iv.right) >= 0 {
		return false
	}

	return true
}

// Split cuts iv at a point strictly inside into (left, at) and (at, right);
// the outer bounds keep their flags, both sides at the cut are open.
// Returns ErrSplitOutside when at is not strictly inside.
func (iv Interval) Split(at *big.Rat) (Interval, Interval, error) {
	if !iv.ContainsOpen(at) {
		return Interval{}, Interval{}, fmt.Errorf("Split(%s, %s): %w", iv, at.RatString(), ErrSplitOutside)
	}
	lo := Interval{left: copyRat(iv.left), right: new(big.Rat).Set(at), leftOpen: iv.leftOpen, rightOpen: true}
	hi := Interval{left: new(big.Rat).Set(at), right: copyRat(iv.right), leftOpen: true, rightOpen: iv.rightOpen}

	return lo, hi, nil
}

// Intersect returns iv ∩ other; ok is false when the intersection is empty.
func (iv Interval) Intersect(other Interval) (Interval, bool) {
	out := Interval{}
	// left side: the larger bound wins; on ties, open beats closed
	switch {
	case iv.left == nil:
		out.left, out.leftOpen = copyRat(other.left), other.leftOpen
	case other.left == nil:
		out.left, out.leftOpen = copyRat(iv.left), iv.leftOpen
	default:
		switch iv.left.Cmp(other.left) {
		case 1:
			out.left, out.leftOpen = copyRat(iv.left), iv.leftOpen
		case -1:
			out.left, out.leftOpen = copyRat(other.left), other.leftOpen
		default:
			out.left, out.leftOpen = copyRat(iv.left), iv.leftOpen || other.leftOpen
		}
	}
	// right side: the smaller bound wins
	switch {
	case iv.right == nil:
		out.right, out.rightOpen = copyRat(other.right), other.rightOpen
	case other.right == nil:
		out.right, out.rightOpen = copyRat(iv.right), iv.rightOpen
	default:
		switch iv.right.Cmp(other.right) {
		case -1:
			out.right, out.rightOpen = copyRat(iv.right), iv.rightOpen
		case 1:
			out.right, out.rightOpen = copyRat(other.right), other.rightOpen
		default:
			out.right, out.rightOpen = copyRat(iv.right), iv.rightOpen || other.rightOpen
		}
	}
	if out.left != nil && out.right != nil {
		c := out.left.Cmp(out.right)
		if c > 0 || c == 0 && (out.leftOpen || out.rightOpen) {
			return Interval{}, false
		}
	}

	return out, true
}

// Before reports whether every point of iv is ≤ every point of other, and
// they share at most an excluded endpoint (so iv lies entirely to the left).
func (iv Interval) Before(other Interval) bool {
	if iv.right == nil || other.left == nil {
		return false
	}
	c := iv.right.Cmp(other.left)

	return c < 0 || c == 0 && (iv.rightOpen || other.leftOpen)
}

// Overlaps reports whether iv and other share at least one point.
func (iv Interval) Overlaps(other Interval) bool {
	_, ok := iv.Intersect(other)

	return ok
}

// Equal reports identical bounds and flags.
func (iv Interval) Equal(other Interval) bool {
	return ratEq(iv.left, other.left) && ratEq(iv.right, other.right) &&
		iv.leftOpen == other.leftOpen && iv.rightOpen == other.rightOpen
}

// String renders the interval in math notation, e.g. "(-2, 3/2]", "(-inf, 0)".
func (iv Interval) String() string {
	var sb strings.Builder
	if iv.leftOpen {
		sb.WriteByte('(')
	} else {
		sb.WriteByte('[')
	}
	if iv.left == nil {
		sb.WriteString("-inf")
	} else {
		sb.WriteString(iv.left.RatString())
	}
	sb.WriteString(", ")
	if iv.right == nil {
		sb.WriteString("+inf")
	} else {
		sb.WriteString(iv.right.RatString())
	}
	if iv.rightOpen {
		sb.WriteByte(')')
	} else {
		sb.WriteByte(']')
	}

	return sb.String()
}

func copyRat(x *big.Rat) *big.Rat {
	if x == nil {
		return nil
	}

	return new(big.Rat).Set(x)
}

func ratEq(a, b *big.Rat) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Cmp(b) == 0
}
