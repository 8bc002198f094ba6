// SPDX-License-Identifier: MIT

package poly

import (
	"errors"
	"math"
	"math/big"
	"strings"
)

// Sentinel errors for polynomial operations.
var (
	// ErrDivisionByZero is returned by DivMod/Quo/Rem when the divisor is the zero polynomial.
	ErrDivisionByZero = errors.New("poly: division by zero polynomial")

	// ErrParse indicates a malformed textual polynomial.
	ErrParse = errors.New("poly: cannot parse polynomial")
)

// Polynomial is a univariate polynomial Σ c[i]·x^i over ℚ.
// The coefficient slice is trimmed: len(c)==0 for zero, else c[len(c)-1] != 0.
type Polynomial struct {
	c []*big.Rat // low→high, never aliased by callers
}

// New builds a polynomial from coefficients given low→high (c[0] is the constant term).
// Inputs are copied; nil entries are treated as zero.
func New(coeffs ...*big.Rat) Polynomial {
	c := make([]*big.Rat, len(coeffs))
	for i, v := range coeffs {
		if v == nil {
			c[i] = new(big.Rat)
			continue
		}
		c[i] = new(big.Rat).Set(v)
	}

	return Polynomial{c: trim(c)}
}

// FromInts builds a polynomial from integer coefficients given low→high.
func FromInts(coeffs ...int64) Polynomial {
	c := make([]*big.Rat, len(coeffs))
	for i, v := range coeffs {
		c[i] = new(big.Rat).SetInt64(v)
	}

	return Polynomial{c: trim(c)}
}

// FromRoots returns Π (x - r) over the given rational roots.
// With no roots it returns the constant 1.
func FromRoots(roots ...*big.Rat) Polynomial {
	p := FromInts(1)
	for _, r := range roots {
		p = p.Mul(Linear(r))
	}

	return p
}

// Linear returns the monic linear factor x - r.
func Linear(r *big.Rat) Polynomial {
	return New(new(big.Rat).Neg(r), big.NewRat(1, 1))
}

// trim drops zero leading coefficients in place.
func trim(c []*big.Rat) []*big.Rat {
	n := len(c)
	for n > 0 && c[n-1].Sign() == 0 {
		n--
	}

	return c[:n]
}

// Degree returns the degree, or -1 for the zero polynomial.
func (p Polynomial) Degree() int { return len(p.c) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return len(p.c) == 0 }

// IsConstant reports whether p has degree ≤ 0 (the zero polynomial counts as constant).
func (p Polynomial) IsConstant() bool { return len(p.c) <= 1 }

// Coeff returns a copy of the coefficient of x^i (zero when i is out of range).
func (p Polynomial) Coeff(i int) *big.Rat {
	if i < 0 || i >= len(p.c) {
		return new(big.Rat)
	}

	return new(big.Rat).Set(p.c[i])
}

// Coeffs returns copies of all coefficients low→high.
func (p Polynomial) Coeffs() []*big.Rat {
	out := make([]*big.Rat, len(p.c))
	for i, v := range p.c {
		out[i] = new(big.Rat).Set(v)
	}

	return out
}

// LeadingCoeff returns a copy of the leading coefficient (zero for the zero polynomial).
func (p Polynomial) LeadingCoeff() *big.Rat {
	return p.Coeff(len(p.c) - 1)
}

// Eval computes p(x) exactly using Horner's scheme.
// Complexity: O(deg) big.Rat multiplications.
func (p Polynomial) Eval(x *big.Rat) *big.Rat {
	acc := new(big.Rat)
	for i := len(p.c) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, p.c[i])
	}

	return acc
}

// Sign returns the sign (-1, 0, +1) of p(x).
func (p Polynomial) Sign(x *big.Rat) int {
	return p.Eval(x).Sign()
}

// EvalFloat evaluates p at x in float64 arithmetic (approximate).
func (p Polynomial) EvalFloat(x float64) float64 {
	acc := 0.0
	var f float64
	for i := len(p.c) - 1; i >= 0; i-- {
		f, _ = p.c[i].Float64()
		acc = acc*x + f
	}

	return acc
}

// Float64s returns float64 approximations of the coefficients low→high.
func (p Polynomial) Float64s() []float64 {
	out := make([]float64, len(p.c))
	for i, v := range p.c {
		out[i], _ = v.Float64()
	}

	return out
}

// Equal reports whether p and q have identical coefficients.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.c) != len(q.c) {
		return false
	}
	for i := range p.c {
		if p.c[i].Cmp(q.c[i]) != 0 {
			return false
		}
	}

	return true
}

// CauchyBound returns B = 1 + max|c_i / c_n| so that every complex root x of p
// satisfies |x| < B. The zero polynomial and constants yield 1.
func (p Polynomial) CauchyBound() *big.Rat {
	bound := big.NewRat(1, 1)
	n := p.Degree()
	if n <= 0 {
		return bound
	}
	lc := p.c[n]
	var (
		maxRatio = new(big.Rat)
		ratio    = new(big.Rat)
	)
	for i := 0; i < n; i++ {
		ratio.Quo(p.c[i], lc)
		ratio.Abs(ratio)
		if ratio.Cmp(maxRatio) > 0 {
			maxRatio.Set(ratio)
		}
	}

	return bound.Add(bound, maxRatio)
}

// CauchyBoundFloat is CauchyBound as float64, saturating at math.MaxFloat64.
func (p Polynomial) CauchyBoundFloat() float64 {
	f, _ := p.CauchyBound().Float64()
	if math.IsInf(f, 0) {
		return math.MaxFloat64
	}

	return f
}

// String renders p high→low in the same syntax Parse accepts, e.g. "x^2 - 2".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	var abs big.Rat
	for i := len(p.c) - 1; i >= 0; i-- {
		c := p.c[i]
		if c.Sign() == 0 {
			continue
		}
		switch {
		case sb.Len() == 0 && c.Sign() < 0:
			sb.WriteString("-")
		case sb.Len() > 0 && c.Sign() < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		abs.Abs(c)
		unit := abs.IsInt() && abs.Num().IsInt64() && abs.Num().Int64() == 1
		if !unit || i == 0 {
			sb.WriteString(abs.RatString())
		}
		if i >= 1 {
			sb.WriteString("x")
		}
		if i >= 2 {
			sb.WriteString("^")
			sb.WriteString(big.NewInt(int64(i)).String())
		}
	}

	return sb.String()
}
