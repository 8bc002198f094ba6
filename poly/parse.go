// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// maxParseDegree bounds exponents accepted by Parse so a typo cannot allocate gigabytes.
const maxParseDegree = 1 << 12

// Parse reads a polynomial in one variable written as a sum of terms,
// e.g. "x^2 - 2", "3/2x^3 - x + 1", "0.5*t^2 + t". Coefficients may be
// integers, fractions or decimals; the variable is any single letter and
// must be the same across terms. Whitespace is ignored.
func Parse(s string) (Polynomial, error) {
	src := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if src == "" {
		return Polynomial{}, fmt.Errorf("Parse(%q): empty input: %w", s, ErrParse)
	}

	var (
		coeffs = map[int]*big.Rat{}
		varName rune
		pos     int
		top     int
	)
	for pos < len(src) {
		// 1) sign
		sign := 1
		if src[pos] == '+' || src[pos] == '-' {
			if src[pos] == '-' {
				sign = -1
			}
			pos++
		} else if pos > 0 {
			return Polynomial{}, fmt.Errorf("Parse(%q): expected sign at %d: %w", s, pos, ErrParse)
		}

		// 2) coefficient
		coef, n, err := scanCoeff(src[pos:])
		if err != nil {
			return Polynomial{}, fmt.Errorf("Parse(%q): %v: %w", s, err, ErrParse)
		}
		pos += n
		if pos < len(src) && src[pos] == '*' {
			if n == 0 {
				return Polynomial{}, fmt.Errorf("Parse(%q): dangling '*' at %d: %w", s, pos, ErrParse)
			}
			pos++
		}

		// 3) variable and exponent
		exp := 0
		if pos < len(src) && unicode.IsLetter(rune(src[pos])) {
			v := rune(src[pos])
			if varName != 0 && v != varName {
				return Polynomial{}, fmt.Errorf("Parse(%q): mixed variables %c and %c: %w", s, varName, v, ErrParse)
			}
			varName = v
			pos++
			exp = 1
			if pos < len(src) && src[pos] == '^' {
				pos++
				end := pos
				for end < len(src) && src[end] >= '0' && src[end] <= '9' {
					end++
				}
				if end == pos {
					return Polynomial{}, fmt.Errorf("Parse(%q): missing exponent at %d: %w", s, pos, ErrParse)
				}
				exp, err = strconv.Atoi(src[pos:end])
				if err != nil || exp > maxParseDegree {
					return Polynomial{}, fmt.Errorf("Parse(%q): bad exponent %q: %w", s, src[pos:end], ErrParse)
				}
				pos = end
			}
		} else if n == 0 {
			return Polynomial{}, fmt.Errorf("Parse(%q): empty term at %d: %w", s, pos, ErrParse)
		}
		if pos < len(src) && src[pos] != '+' && src[pos] != '-' {
			return Polynomial{}, fmt.Errorf("Parse(%q): unexpected %q at %d: %w", s, src[pos], pos, ErrParse)
		}

		// 4) accumulate
		if sign < 0 {
			coef.Neg(coef)
		}
		if acc, ok := coeffs[exp]; ok {
			acc.Add(acc, coef)
		} else {
			coeffs[exp] = coef
		}
		top = max(top, exp)
	}

	c := make([]*big.Rat, top+1)
	for i := range c {
		if v, ok := coeffs[i]; ok {
			c[i] = v
		} else {
			c[i] = new(big.Rat)
		}
	}

	return Polynomial{c: trim(c)}, nil
}

// MustParse is Parse that panics on error; intended for tests and literals.
func MustParse(s string) Polynomial {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return p
}

// scanCoeff reads an optional rational literal (digits, '.', '/') at the start of s.
// It returns 1 and n==0 when no literal is present.
func scanCoeff(s string) (*big.Rat, int, error) {
	n := 0
	for n < len(s) && (s[n] >= '0' && s[n] <= '9' || s[n] == '.' || s[n] == '/') {
		n++
	}
	if n == 0 {
		return big.NewRat(1, 1), 0, nil
	}
	r, ok := new(big.Rat).SetString(s[:n])
	if !ok {
		return nil, 0, fmt.Errorf("bad coefficient %q", s[:n])
	}

	return r, n, nil
}
