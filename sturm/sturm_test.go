// SPDX-License-Identifier: MIT

// Package sturm_test contains unit tests for Sturm sequences and root counting.
package sturm_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/realroots/interval"
	"github.com/katalvlaran/realroots/poly"
	"github.com/katalvlaran/realroots/sturm"
)

func rat(a, b int64) *big.Rat { return big.NewRat(a, b) }

func mustOpen(t *testing.T, a, b *big.Rat) interval.Interval {
	t.Helper()
	iv, err := interval.Open(a, b)
	require.NoError(t, err)
	return iv
}

func TestNew_Degenerate(t *testing.T) {
	_, err := sturm.New(poly.Polynomial{})
	require.ErrorIs(t, err, sturm.ErrZeroPolynomial)

	s, err := sturm.New(poly.FromInts(3))
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	require.Zero(t, s.RootCountIn(interval.Unbounded()))
}

func TestSignVariations(t *testing.T) {
	require.Equal(t, 0, sturm.SignVariations(nil))
	require.Equal(t, 0, sturm.SignVariations([]int{1, 0, 1}))
	require.Equal(t, 1, sturm.SignVariations([]int{1, 0, -1}))
	require.Equal(t, 3, sturm.SignVariations([]int{1, -1, 0, 0, 1, -1}))
}

func TestRootCount_Cubic(t *testing.T) {
	s, err := sturm.New(poly.MustParse("x^3 - 6x^2 + 11x - 6"))
	require.NoError(t, err)

	require.Equal(t, 3, s.RootCountIn(interval.Unbounded()))
	require.Equal(t, 3, s.RootCountIn(mustOpen(t, rat(0, 1), rat(4, 1))))
	require.Equal(t, 1, s.RootCountIn(mustOpen(t, rat(0, 1), rat(3, 2))))

	// endpoints exactly on roots
	require.Equal(t, 1, s.RootCountIn(mustOpen(t, rat(1, 1), rat(3, 1))), "(1,3) holds only 2")
	closed, err := interval.Closed(rat(1, 1), rat(3, 1))
	require.NoError(t, err)
	require.Equal(t, 3, s.RootCountIn(closed))
	half, err := interval.New(rat(1, 1), rat(3, 1), false, true)
	require.NoError(t, err)
	require.Equal(t, 2, s.RootCountIn(half), "[1,3) holds 1 and 2")

	require.Equal(t, 1, s.RootCountIn(interval.Point(rat(2, 1))))
	require.Equal(t, 0, s.RootCountIn(interval.Point(rat(5, 2))))
}

func TestRootCount_Irrational(t *testing.T) {
	s, err := sturm.New(poly.MustParse("x^2 - 2"))
	require.NoError(t, err)
	require.Equal(t, 2, s.RootCountIn(mustOpen(t, rat(-2, 1), rat(2, 1))))
	require.Equal(t, 1, s.RootCountIn(mustOpen(t, rat(0, 1), rat(2, 1))))
	require.Equal(t, 1, s.RootCountIn(mustOpen(t, rat(141, 100), rat(142, 100))))
	require.Equal(t, 0, s.RootCountIn(mustOpen(t, rat(-1, 1), rat(1, 1))))

	noReal, err := sturm.New(poly.MustParse("x^2 + 1"))
	require.NoError(t, err)
	require.Equal(t, 0, noReal.RootCountIn(interval.Unbounded()))
}

func TestRootCount_HalfLines(t *testing.T) {
	s, err := sturm.New(poly.MustParse("x^3 - x"))
	require.NoError(t, err)
	neg, err := interval.New(nil, rat(0, 1), true, true)
	require.NoError(t, err)
	require.Equal(t, 1, s.RootCountIn(neg))
	pos, err := interval.New(rat(0, 1), nil, false, true)
	require.NoError(t, err)
	require.Equal(t, 2, s.RootCountIn(pos), "[0, +inf) holds 0 and 1")
}

func TestRootCount_MultipleRootsCountedOnce(t *testing.T) {
	// (x-1)^2 (x+1): two distinct roots
	s, err := sturm.New(poly.FromRoots(rat(1, 1), rat(1, 1), rat(-1, 1)))
	require.NoError(t, err)
	require.Equal(t, 2, s.RootCountIn(mustOpen(t, rat(-3, 1), rat(3, 1))))
}

func TestTermsEndWithNonzero(t *testing.T) {
	s, err := sturm.New(poly.MustParse("x^4 - 3x^2 + x + 1"))
	require.NoError(t, err)
	terms := s.Terms()
	require.GreaterOrEqual(t, len(terms), 2)
	for _, term := range terms {
		require.False(t, term.IsZero())
		require.Equal(t, 0, new(big.Rat).Abs(term.LeadingCoeff()).Cmp(rat(1, 1)), "terms are normalized")
	}
}
