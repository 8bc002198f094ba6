// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"math/big"
)

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := max(len(p.c), len(q.c))
	c := make([]*big.Rat, n)
	for i := 0; i < n; i++ {
		c[i] = new(big.Rat)
		if i < len(p.c) {
			c[i].Add(c[i], p.c[i])
		}
		if i < len(q.c) {
			c[i].Add(c[i], q.c[i])
		}
	}

	return Polynomial{c: trim(c)}
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	c := make([]*big.Rat, len(p.c))
	for i, v := range p.c {
		c[i] = new(big.Rat).Neg(v)
	}

	return Polynomial{c: c}
}

// Scale returns k·p.
func (p Polynomial) Scale(k *big.Rat) Polynomial {
	if k.Sign() == 0 {
		return Polynomial{}
	}
	c := make([]*big.Rat, len(p.c))
	for i, v := range p.c {
		c[i] = new(big.Rat).Mul(v, k)
	}

	return Polynomial{c: c}
}

// Mul returns p·q (schoolbook, O(deg p · deg q)).
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Polynomial{}
	}
	c := make([]*big.Rat, len(p.c)+len(q.c)-1)
	for i := range c {
		c[i] = new(big.Rat)
	}
	var t big.Rat
	for i, a := range p.c {
		for j, b := range q.c {
			t.Mul(a, b)
			c[i+j].Add(c[i+j], &t)
		}
	}

	return Polynomial{c: trim(c)}
}

// Derivative returns p'.
func (p Polynomial) Derivative() Polynomial {
	if len(p.c) <= 1 {
		return Polynomial{}
	}
	c := make([]*big.Rat, len(p.c)-1)
	for i := 1; i < len(p.c); i++ {
		c[i-1] = new(big.Rat).Mul(p.c[i], new(big.Rat).SetInt64(int64(i)))
	}

	return Polynomial{c: trim(c)}
}

// Monic returns p divided by its leading coefficient; the zero polynomial is returned unchanged.
func (p Polynomial) Monic() Polynomial {
	if p.IsZero() {
		return p
	}

	return p.Scale(new(big.Rat).Inv(p.c[len(p.c)-1]))
}

// DivMod performs Euclidean division over ℚ: p = q·d + r with deg r < deg d.
// Returns ErrDivisionByZero when d is the zero polynomial.
// Complexity: O(deg p · deg d).
func (p Polynomial) DivMod(d Polynomial) (q, r Polynomial, err error) {
	if d.IsZero() {
		return Polynomial{}, Polynomial{}, fmt.Errorf("DivMod(%s): %w", p, ErrDivisionByZero)
	}
	// Stage 1: working copy of the dividend
	rem := p.Coeffs()
	dd := d.Degree()
	if len(rem)-1 < dd {
		return Polynomial{}, New(rem...), nil
	}
	lc := d.c[dd]

	// Stage 2: long division from the top coefficient down
	quo := make([]*big.Rat, len(rem)-dd)
	var (
		t    big.Rat
		k, j int
	)
	for k = len(rem) - 1; k >= dd; k-- {
		f := new(big.Rat).Quo(rem[k], lc) // next quotient coefficient
		quo[k-dd] = f
		if f.Sign() == 0 {
			continue
		}
		for j = 0; j <= dd; j++ {
			t.Mul(f, d.c[j])
			rem[k-dd+j].Sub(rem[k-dd+j], &t)
		}
	}

	// Stage 3: finalize
	return Polynomial{c: trim(quo)}, Polynomial{c: trim(rem[:dd])}, nil
}

// Quo returns the quotient of p / d.
func (p Polynomial) Quo(d Polynomial) (Polynomial, error) {
	q, _, err := p.DivMod(d)

	return q, err
}

// Rem returns the remainder of p / d.
func (p Polynomial) Rem(d Polynomial) (Polynomial, error) {
	_, r, err := p.DivMod(d)

	return r, err
}

// GCD returns the monic greatest common divisor of p and q.
// gcd(0, 0) is the zero polynomial.
func GCD(p, q Polynomial) Polynomial {
	a, b := p, q
	for !b.IsZero() {
		r, _ := a.Rem(b) // b is nonzero here
		a, b = b, r.Monic()
	}

	return a.Monic()
}

// SquareFree returns p / gcd(p, p'): same distinct roots as p, each simple.
// The result keeps the sign of p's leading coefficient; zero and constants are returned as is.
func (p Polynomial) SquareFree() Polynomial {
	if p.Degree() <= 1 {
		return p
	}
	g := GCD(p, p.Derivative())
	if g.Degree() == 0 {
		return p
	}
	q, _ := p.Quo(g) // g is nonzero

	return q
}

// Deflate divides p by (x - r). ok is false when r is not a root of p,
// in which case p is returned unchanged.
func (p Polynomial) Deflate(r *big.Rat) (Polynomial, bool) {
	if p.IsZero() || p.Sign(r) != 0 {
		return p, false
	}
	// synthetic division by (x - r)
	n := len(p.c)
	quo := make([]*big.Rat, n-1)
	carry := new(big.Rat)
	for i := n - 1; i >= 1; i-- {
		carry = new(big.Rat).Add(new(big.Rat).Mul(carry, r), p.c[i])
		quo[i-1] = carry
	}

	return Polynomial{c: trim(quo)}, true
}
