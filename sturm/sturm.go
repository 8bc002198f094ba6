// SPDX-License-Identifier: MIT

// Package sturm builds Sturm sequences of univariate rational polynomials and
// counts distinct real roots in an interval by sign variations.
//
// The canonical sequence is
//
//	p0 = p, p1 = p', p(i+1) = -rem(p(i-1), p(i))
//
// stopping when the next remainder is zero. Every term is additionally scaled
// by a positive rational (1/|leading coefficient|), which leaves all signs and
// therefore all variation counts unchanged but keeps coefficients small.
//
// Sturm's theorem as used here: for a < b, V(a) - V(b) equals the number of
// distinct real roots of p in (a, b]. RootCountIn turns this into the exact
// count for any open, closed, half-open or unbounded interval.
//
// Complexity: building costs O(n) polynomial divisions (n = deg p); each
// VariationsAt costs O(n²) rational operations.
package sturm

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/realroots/interval"
	"github.com/katalvlaran/realroots/poly"
)

// ErrZeroPolynomial is returned when a Sturm sequence is requested for the zero polynomial,
// whose root set is all of ℝ.
var ErrZeroPolynomial = errors.New("sturm: zero polynomial has infinitely many roots")

// Sequence is an immutable Sturm sequence.
type Sequence struct {
	terms []poly.Polynomial
}

// New builds the Sturm sequence of p.
// Returns ErrZeroPolynomial for the zero polynomial; a nonzero constant yields a
// one-term sequence (no roots anywhere).
func New(p poly.Polynomial) (*Sequence, error) {
	if p.IsZero() {
		return nil, fmt.Errorf("New: %w", ErrZeroPolynomial)
	}

	terms := []poly.Polynomial{normalize(p)}
	if p.IsConstant() {
		return &Sequence{terms: terms}, nil
	}
	terms = append(terms, normalize(p.Derivative()))
	for {
		prev, cur := terms[len(terms)-2], terms[len(terms)-1]
		if cur.IsConstant() {
			break
		}
		r, err := prev.Rem(cur)
		if err != nil {
			return nil, fmt.Errorf("New: %w", err) // unreachable: cur is nonzero
		}
		if r.IsZero() {
			break
		}
		terms = append(terms, normalize(r.Neg()))
	}

	return &Sequence{terms: terms}, nil
}

// normalize scales p by 1/|lc(p)| (a positive factor).
func normalize(p poly.Polynomial) poly.Polynomial {
	lc := p.LeadingCoeff()
	if lc.Sign() == 0 {
		return p
	}

	return p.Scale(lc.Inv(lc.Abs(lc)))
}

// Len returns the number of terms.
func (s *Sequence) Len() int { return len(s.terms) }

// Terms returns the sequence terms (polynomials are immutable values).
func (s *Sequence) Terms() []poly.Polynomial {
	out := make([]poly.Polynomial, len(s.terms))
	copy(out, s.terms)

	return out
}

// Polynomial returns p0 (normalized to a positive leading coefficient's magnitude 1).
func (s *Sequence) Polynomial() poly.Polynomial { return s.terms[0] }

// VariationsAt returns V(x): sign changes of p_i(x), zeros skipped.
func (s *Sequence) VariationsAt(x *big.Rat) int {
	signs := make([]int, len(s.terms))
	for i, t := range s.terms {
		signs[i] = t.Sign(x)
	}

	return SignVariations(signs)
}

// VariationsAtNegInf returns V(-∞), read off the leading coefficients and degree parities.
func (s *Sequence) VariationsAtNegInf() int {
	signs := make([]int, len(s.terms))
	for i, t := range s.terms {
		signs[i] = t.LeadingCoeff().Sign()
		if t.Degree()%2 == 1 {
			signs[i] = -signs[i]
		}
	}

	return SignVariations(signs)
}

// VariationsAtPosInf returns V(+∞).
func (s *Sequence) VariationsAtPosInf() int {
	signs := make([]int, len(s.terms))
	for i, t := range s.terms {
		signs[i] = t.LeadingCoeff().Sign()
	}

	return SignVariations(signs)
}

// RootCountIn returns the number of distinct real roots of p inside iv,
// honouring open/closed bounds and infinite sides.
func (s *Sequence) RootCountIn(iv interval.Interval) int {
	p := s.terms[0]
	if iv.IsPoint() {
		if p.Sign(iv.Left()) == 0 {
			return 1
		}
		return 0
	}

	// V(a) - V(b) counts roots in (a, b]
	var va, vb int
	left, right := iv.Left(), iv.Right()
	if left == nil {
		va = s.VariationsAtNegInf()
	} else {
		va = s.VariationsAt(left)
	}
	if right == nil {
		vb = s.VariationsAtPosInf()
	} else {
		vb = s.VariationsAt(right)
	}
	n := va - vb
	if right != nil && iv.RightOpen() && p.Sign(right) == 0 {
		n--
	}
	if left != nil && !iv.LeftOpen() && p.Sign(left) == 0 {
		n++
	}

	return n
}

// SignVariations counts sign changes in signs, ignoring zeros.
func SignVariations(signs []int) int {
	var (
		last    int
		changes int
	)
	for _, sg := range signs {
		if sg == 0 {
			continue
		}
		if last != 0 && sg != last {
			changes++
		}
		last = sg
	}

	return changes
}
