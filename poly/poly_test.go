// SPDX-License-Identifier: MIT

// Package poly_test contains unit tests for exact polynomial arithmetic.
package poly_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/realroots/poly"
)

func rat(a, b int64) *big.Rat { return big.NewRat(a, b) }

// ratStrings renders coefficients for readable diffs.
func ratStrings(p poly.Polynomial) []string {
	out := make([]string, 0, p.Degree()+1)
	for _, c := range p.Coeffs() {
		out = append(out, c.RatString())
	}
	return out
}

func TestNew_TrimsLeadingZeros(t *testing.T) {
	p := poly.FromInts(1, 2, 0, 0)
	require.Equal(t, 1, p.Degree())
	require.False(t, p.IsZero())

	z := poly.FromInts(0, 0)
	require.True(t, z.IsZero())
	require.Equal(t, -1, z.Degree())
	require.True(t, z.IsConstant())
}

func TestEvalAndSign(t *testing.T) {
	p := poly.MustParse("x^2 - 2")
	require.Equal(t, 0, p.Eval(rat(3, 2)).Cmp(rat(1, 4)))
	require.Equal(t, -1, p.Sign(rat(1, 1)))
	require.Equal(t, 1, p.Sign(rat(-2, 1)))
	require.InDelta(t, 2.0, p.EvalFloat(2), 1e-12)
}

func TestFromRoots(t *testing.T) {
	p := poly.FromRoots(rat(1, 1), rat(2, 1), rat(3, 1))
	require.Equal(t, 3, p.Degree())
	for _, r := range []int64{1, 2, 3} {
		require.Zero(t, p.Sign(rat(r, 1)), "root %d", r)
	}
	// (x-1)(x-2)(x-3) = x^3 - 6x^2 + 11x - 6
	require.True(t, p.Equal(poly.FromInts(-6, 11, -6, 1)))
}

func TestDerivative(t *testing.T) {
	p := poly.MustParse("x^3 - 6x^2 + 11x - 6")
	want := []string{"11", "-12", "3"}
	if diff := cmp.Diff(want, ratStrings(p.Derivative())); diff != "" {
		t.Fatalf("derivative mismatch (-want +got):\n%s", diff)
	}
	require.True(t, poly.FromInts(5).Derivative().IsZero())
}

func TestDivMod(t *testing.T) {
	p := poly.MustParse("x^3 - 6x^2 + 11x - 6")
	d := poly.MustParse("x - 1")
	q, r, err := p.DivMod(d)
	require.NoError(t, err)
	require.True(t, r.IsZero())
	require.True(t, q.Equal(poly.MustParse("x^2 - 5x + 6")))

	// non-exact: x^2 + 1 = (x)(x) + 1
	q, r, err = poly.MustParse("x^2 + 1").DivMod(poly.MustParse("x"))
	require.NoError(t, err)
	require.True(t, q.Equal(poly.MustParse("x")))
	require.True(t, r.Equal(poly.FromInts(1)))

	// rational leading coefficient
	q, r, err = poly.MustParse("x^2").DivMod(poly.MustParse("2x + 1"))
	require.NoError(t, err)
	require.True(t, q.Equal(poly.New(rat(-1, 4), rat(1, 2))))
	require.True(t, r.Equal(poly.New(rat(1, 4))))

	_, _, err = p.DivMod(poly.Polynomial{})
	require.ErrorIs(t, err, poly.ErrDivisionByZero)
}

func TestGCDAndSquareFree(t *testing.T) {
	// (x-1)^2 (x+2)
	p := poly.FromRoots(rat(1, 1), rat(1, 1), rat(-2, 1))
	g := poly.GCD(p, p.Derivative())
	require.True(t, g.Equal(poly.MustParse("x - 1")))

	sf := p.SquareFree()
	require.Equal(t, 2, sf.Degree())
	require.Zero(t, sf.Sign(rat(1, 1)))
	require.Zero(t, sf.Sign(rat(-2, 1)))

	already := poly.MustParse("x^2 - 2")
	require.True(t, already.SquareFree().Equal(already))
}

func TestDeflate(t *testing.T) {
	p := poly.MustParse("x^3 - 6x^2 + 11x - 6")
	q, ok := p.Deflate(rat(2, 1))
	require.True(t, ok)
	require.True(t, q.Equal(poly.MustParse("x^2 - 4x + 3")))

	same, ok := p.Deflate(rat(5, 1))
	require.False(t, ok)
	require.True(t, same.Equal(p))
}

func TestCauchyBound(t *testing.T) {
	p := poly.MustParse("x^3 - 6x^2 + 11x - 6")
	b := p.CauchyBound()
	require.Equal(t, 0, b.Cmp(rat(12, 1)))
	for _, r := range []int64{1, 2, 3} {
		require.Equal(t, -1, rat(r, 1).Cmp(b))
	}
	require.Equal(t, 0, poly.FromInts(7).CauchyBound().Cmp(rat(1, 1)))
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"x^2 - 2", []string{"-2", "0", "1"}},
		{"3/2x^3 - x + 1", []string{"1", "-1", "0", "3/2"}},
		{"0.5*t^2 + t", []string{"0", "1", "1/2"}},
		{"-x", []string{"0", "-1"}},
		{"x + x", []string{"0", "2"}},
		{"7", []string{"7"}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			p, err := poly.Parse(tc.in)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, ratStrings(p)); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "x^", "x + y", "2**x", "1/0", "x^2 3", "+"} {
		_, err := poly.Parse(in)
		assert.ErrorIs(t, err, poly.ErrParse, "input %q", in)
	}
}

func TestString_RoundTrip(t *testing.T) {
	for _, in := range []string{"x^2 - 2", "3/2x^3 - x + 1", "-x^4 + 1/3x", "5"} {
		p := poly.MustParse(in)
		back, err := poly.Parse(p.String())
		require.NoError(t, err)
		require.True(t, back.Equal(p), "round trip of %q via %q", in, p.String())
	}
	require.Equal(t, "x^2 - 2", poly.MustParse("x^2-2").String())
	require.Equal(t, "0", poly.Polynomial{}.String())
}
