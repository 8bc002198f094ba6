// SPDX-License-Identifier: MIT

// Package rootfinder_test contains behavioural tests for the root finder.
package rootfinder_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/realroots/interval"
	"github.com/katalvlaran/realroots/poly"
	"github.com/katalvlaran/realroots/ran"
	"github.com/katalvlaran/realroots/rootfinder"
)

func rat(a, b int64) *big.Rat { return big.NewRat(a, b) }

func openIv(t *testing.T, a, b *big.Rat) interval.Interval {
	t.Helper()
	iv, err := interval.Open(a, b)
	require.NoError(t, err)
	return iv
}

func floats(roots []*ran.Number) []float64 {
	out := make([]float64, len(roots))
	for i, r := range roots {
		out[i] = r.Float64()
	}
	return out
}

var approx = cmpopts.EquateApprox(0, 1e-9)

// requireIsolating checks that roots are ascending, pairwise disjoint, each
// isolating for p, and that none is missing from search.
func requireIsolating(t *testing.T, p poly.Polynomial, search interval.Interval, roots []*ran.Number) {
	t.Helper()
	want, err := rootfinder.CountRealRoots(p, search)
	require.NoError(t, err)
	require.Len(t, roots, want, "completeness")

	for i, r := range roots {
		if r.IsExact() {
			require.Zero(t, p.Sign(r.Value()), "exact root %s", r)
			require.True(t, search.Contains(r.Value()))
		} else {
			n, err := rootfinder.CountRealRoots(p, r.Interval())
			require.NoError(t, err)
			require.Equal(t, 1, n, "isolation of %s", r)
			require.False(t, r.Interval().IsPoint())
		}
		if i > 0 {
			require.True(t, roots[i-1].Less(r), "ordering %s < %s", roots[i-1], r)
			require.False(t, roots[i-1].Interval().Overlaps(r.Interval()), "disjoint %s, %s", roots[i-1], r)
		}
	}
}

// TestExample_SqrtTwo: x^2 - 2 over (-2, 2).
func TestExample_SqrtTwo(t *testing.T) {
	p := poly.MustParse("x^2 - 2")
	search := openIv(t, rat(-2, 1), rat(2, 1))
	for _, trivial := range []bool{true, false} {
		roots, err := rootfinder.RealRoots(p,
			rootfinder.WithInterval(search), rootfinder.WithTrivialSolver(trivial))
		require.NoError(t, err)
		require.Len(t, roots, 2)
		for _, r := range roots {
			require.False(t, r.Interval().Contains(rat(0, 1)))
		}
		require.Empty(t, cmp.Diff([]float64{-math.Sqrt2, math.Sqrt2}, floats(roots), approx))
		requireIsolating(t, p, search, roots)
	}
}

// TestExample_Cubic: (x-1)(x-2)(x-3) over (0, 4).
func TestExample_Cubic(t *testing.T) {
	p := poly.FromRoots(rat(1, 1), rat(2, 1), rat(3, 1))
	search := openIv(t, rat(0, 1), rat(4, 1))
	for _, s := range rootfinder.Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			roots, err := rootfinder.RealRoots(p,
				rootfinder.WithInterval(search), rootfinder.WithStrategy(s))
			require.NoError(t, err)
			require.Empty(t, cmp.Diff([]float64{1, 2, 3}, floats(roots), approx))
			for _, r := range roots {
				hits := 0
				for _, k := range []int64{1, 2, 3} {
					if r.Interval().Contains(rat(k, 1)) {
						hits++
					}
				}
				require.Equal(t, 1, hits, "root %s", r)
			}
			requireIsolating(t, p, search, roots)
		})
	}
}

// TestExample_NoRealRoots: x^2 + 1 signals completion at once, idempotently.
func TestExample_NoRealRoots(t *testing.T) {
	f, err := rootfinder.New(poly.MustParse("x^2 + 1"),
		rootfinder.WithInterval(openIv(t, rat(-100, 1), rat(100, 1))))
	require.NoError(t, err)
	require.Equal(t, rootfinder.Seeded, f.State())
	require.Zero(t, f.Pending())

	for i := 0; i < 3; i++ {
		r, err := f.Next()
		require.Nil(t, r)
		require.ErrorIs(t, err, rootfinder.Done)
		require.Equal(t, rootfinder.Exhausted, f.State())
	}
}

// TestStrategiesAgree runs every strategy on polynomials with exact,
// irrational, clustered and repeated roots.
func TestStrategiesAgree(t *testing.T) {
	cases := []struct {
		name string
		p    poly.Polynomial
	}{
		{"mixed", poly.MustParse("x^2 - 2").Mul(poly.MustParse("x^2 - 3")).Mul(poly.MustParse("2x - 1"))},
		{"quintic", poly.MustParse("x^5 - x - 1")},
		{"repeated", poly.FromRoots(rat(1, 1), rat(1, 1), rat(1, 1), rat(-2, 1))},
		{"cluster", poly.FromRoots(rat(1, 1000), rat(2, 1000), rat(-5, 1)).Mul(poly.MustParse("x^2 - 1/1000000"))},
		{"wide", poly.MustParse("x^4 - 10001x^2 + 10000")},
		{"complex-pairs", poly.MustParse("x^4 + 1").Mul(poly.MustParse("x^3 - 7"))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ref []float64
			for _, s := range rootfinder.Strategies() {
				for _, deflate := range []bool{true, false} {
					roots, err := rootfinder.RealRoots(tc.p,
						rootfinder.WithStrategy(s), rootfinder.WithDeflation(deflate))
					require.NoError(t, err, "%s deflate=%v", s, deflate)
					requireIsolating(t, tc.p, interval.Unbounded(), roots)
					got := floats(roots)
					if ref == nil {
						ref = got
						continue
					}
					require.Empty(t, cmp.Diff(ref, got, approx), "%s deflate=%v", s, deflate)
				}
			}
		})
	}
}

// TestTrivialSolverAgrees compares closed-form results with queue isolation:
// rational roots must match exactly, irrational ones must have overlapping brackets.
func TestTrivialSolverAgrees(t *testing.T) {
	cases := []struct {
		p     string
		exact bool // every root is rational
	}{
		{"x - 3/7", true},
		{"x^2 - 2", false},
		{"x^2 - x - 1", false},
		{"4x^2 - 9", true},
		{"-3x^2 + x + 5", false},
		{"x^2 + x + 1", true},
		{"7", true},
	}
	bounds := [][2]*big.Rat{{rat(-10, 1), rat(10, 1)}, {rat(0, 1), rat(3, 2)}, {rat(-3, 2), rat(1, 2)}}
	for _, tc := range cases {
		p := poly.MustParse(tc.p)
		for _, b := range bounds {
			search := openIv(t, b[0], b[1])
			fast, err := rootfinder.RealRoots(p, rootfinder.WithInterval(search))
			require.NoError(t, err)
			slow, err := rootfinder.RealRoots(p, rootfinder.WithInterval(search), rootfinder.WithTrivialSolver(false))
			require.NoError(t, err)
			require.Len(t, fast, len(slow), "%s on %s", tc.p, search)
			requireIsolating(t, p, search, fast)

			for i, r := range fast {
				require.Equal(t, tc.exact, r.IsExact(), "%s on %s: %s", tc.p, search, r)
				switch {
				case r.IsExact() && slow[i].IsExact():
					require.Zero(t, r.Value().Cmp(slow[i].Value()), "%s vs %s", r, slow[i])
				case r.IsExact():
					require.True(t, slow[i].Contains(r.Value()), "%s vs %s", r, slow[i])
				default:
					require.True(t, r.Interval().Overlaps(slow[i].Interval()), "%s vs %s", r, slow[i])
				}
			}
		}
	}
}

// TestClosedEndpoints: roots on closed bounds are reported exactly; open bounds exclude them.
func TestClosedEndpoints(t *testing.T) {
	p := poly.MustParse("x^3 - x")
	closed, err := interval.Closed(rat(0, 1), rat(1, 1))
	require.NoError(t, err)
	roots, err := rootfinder.RealRoots(p, rootfinder.WithInterval(closed))
	require.NoError(t, err)
	require.Len(t, roots, 2)
	require.True(t, roots[0].IsExact())
	require.True(t, roots[1].IsExact())

	roots, err = rootfinder.RealRoots(p, rootfinder.WithInterval(openIv(t, rat(0, 1), rat(1, 1))))
	require.NoError(t, err)
	require.Empty(t, roots)

	roots, err = rootfinder.RealRoots(p, rootfinder.WithInterval(interval.Point(rat(-1, 1))))
	require.NoError(t, err)
	require.Len(t, roots, 1)
	require.Equal(t, "-1", roots[0].String())
}

// TestHalfLines resolves unbounded sides through the Cauchy bound.
func TestHalfLines(t *testing.T) {
	p := poly.MustParse("x^3 - 2x")
	pos, err := interval.New(rat(0, 1), nil, false, true)
	require.NoError(t, err)
	roots, err := rootfinder.RealRoots(p, rootfinder.WithInterval(pos))
	require.NoError(t, err)
	require.Empty(t, cmp.Diff([]float64{0, math.Sqrt2}, floats(roots), approx))

	far, err := interval.New(rat(1000, 1), nil, true, true)
	require.NoError(t, err)
	roots, err = rootfinder.RealRoots(p, rootfinder.WithInterval(far))
	require.NoError(t, err)
	require.Empty(t, roots)
}

// TestDeflationLeavesInputUntouched checks the caller's polynomial survives.
func TestDeflationLeavesInputUntouched(t *testing.T) {
	p := poly.FromRoots(rat(1, 2), rat(2, 1), rat(-3, 1)).Mul(poly.MustParse("x^2 - 5"))
	before := p.String()
	search, err := interval.Closed(rat(-3, 1), rat(2, 1))
	require.NoError(t, err)
	f, err := rootfinder.New(p,
		rootfinder.WithInterval(search), rootfinder.WithStrategy(rootfinder.BinarySample))
	require.NoError(t, err)
	roots, err := f.RootCache()
	require.NoError(t, err)
	require.Empty(t, cmp.Diff([]float64{-3, -math.Sqrt(5), 0.5, 2}, floats(roots), approx))
	requireIsolating(t, p, search, roots)

	require.Equal(t, before, p.String())
	require.True(t, f.Input().Equal(p))
	require.Less(t, f.Polynomial().Degree(), p.Degree(), "working polynomial was deflated")
	require.Positive(t, f.Stats().Deflations)
}

// TestBudgetIsResumable exhausts a tiny step budget and resumes.
func TestBudgetIsResumable(t *testing.T) {
	p := poly.FromRoots(rat(1, 1), rat(2, 1), rat(3, 1))
	f, err := rootfinder.New(p,
		rootfinder.WithInterval(openIv(t, rat(0, 1), rat(4, 1))),
		rootfinder.WithStrategy(rootfinder.Generic),
		rootfinder.WithStepBudget(1))
	require.NoError(t, err)

	var (
		got       []float64
		exhausted int
	)
	for {
		r, err := f.Next()
		if err == rootfinder.Done {
			break
		}
		if err == rootfinder.ErrBudgetExceeded {
			exhausted++
			require.Equal(t, rootfinder.Draining, f.State())
			continue
		}
		require.NoError(t, err)
		got = append(got, r.Float64())
	}
	require.Positive(t, exhausted)
	require.Empty(t, cmp.Diff([]float64{1, 2, 3}, got, approx))

	all, err := f.RootCache()
	require.NoError(t, err)
	require.Len(t, all, 3)
}

// TestRootsIterator streams roots in ascending order.
func TestRootsIterator(t *testing.T) {
	f, err := rootfinder.New(poly.MustParse("x^4 - 5x^2 + 4"))
	require.NoError(t, err)
	var got []float64
	for r, err := range f.Roots() {
		require.NoError(t, err)
		got = append(got, r.Float64())
	}
	require.Empty(t, cmp.Diff([]float64{-2, -1, 1, 2}, got, approx))
}

// TestAddQueue covers validation and clipping of external seeds.
func TestAddQueue(t *testing.T) {
	p := poly.MustParse("x^2 - 2")
	f, err := rootfinder.New(p,
		rootfinder.WithInterval(openIv(t, rat(0, 1), rat(10, 1))),
		rootfinder.WithTrivialSolver(false))
	require.NoError(t, err)

	require.ErrorIs(t, f.AddQueue(openIv(t, rat(0, 1), rat(1, 1)), rootfinder.Strategy(99)), rootfinder.ErrUnknownStrategy)

	pending := f.Pending()
	require.NoError(t, f.AddQueue(openIv(t, rat(-5, 1), rat(-1, 1)), rootfinder.Generic), "clipped to nothing")
	require.Equal(t, pending, f.Pending())

	far, err := interval.New(rat(1000, 1), nil, true, true)
	require.NoError(t, err)
	require.NoError(t, f.AddQueue(far, rootfinder.Generic), "beyond the Cauchy bound")
	require.Equal(t, pending, f.Pending())

	// overlapping seed: the root is reported once
	require.NoError(t, f.AddQueue(openIv(t, rat(-5, 1), rat(3, 1)), rootfinder.Generic))
	roots, err := f.RootCache()
	require.NoError(t, err)
	require.Len(t, roots, 1)
	require.InDelta(t, math.Sqrt2, roots[0].Float64(), 1e-9)
}

// TestAddQueue_PointsAndUnbounded seeds a known root as a point and the whole line.
func TestAddQueue_PointsAndUnbounded(t *testing.T) {
	p := poly.FromRoots(rat(2, 1), rat(5, 1))
	f, err := rootfinder.New(p,
		rootfinder.WithInterval(openIv(t, rat(0, 1), rat(3, 1))),
		rootfinder.WithTrivialSolver(false))
	require.NoError(t, err)
	pending := f.Pending()

	require.NoError(t, f.AddQueue(interval.Point(rat(1, 1)), rootfinder.Generic), "not a root")
	require.Zero(t, f.Stats().Exact)
	require.NoError(t, f.AddQueue(interval.Point(rat(5, 1)), rootfinder.Generic), "outside the search interval")
	require.Zero(t, f.Stats().Exact)

	require.NoError(t, f.AddQueue(interval.Point(rat(2, 1)), rootfinder.Generic))
	require.Equal(t, 1, f.Stats().Exact)
	require.Equal(t, pending, f.Pending())

	require.NoError(t, f.AddQueue(interval.Unbounded(), rootfinder.BinarySample))
	require.Equal(t, pending+1, f.Pending())

	roots, err := f.RootCache()
	require.NoError(t, err)
	require.Len(t, roots, 1)
	require.True(t, roots[0].IsExact())
	require.Equal(t, "2", roots[0].String())

	// returned roots fence off later seeds
	require.NoError(t, f.AddQueue(interval.Point(rat(2, 1)), rootfinder.Generic))
	_, err = f.Next()
	require.ErrorIs(t, err, rootfinder.Done)
}

// TestStateTransitions follows Seeded, Draining and Exhausted.
func TestStateTransitions(t *testing.T) {
	f, err := rootfinder.New(poly.MustParse("x - 1"))
	require.NoError(t, err)
	require.Equal(t, rootfinder.Seeded, f.State())

	r, err := f.Next()
	require.NoError(t, err)
	require.Equal(t, "1", r.String())
	require.Zero(t, f.Pending())
	require.Equal(t, rootfinder.Exhausted, f.State(), "last root returned")

	_, err = f.Next()
	require.ErrorIs(t, err, rootfinder.Done)

	g, err := rootfinder.New(poly.FromRoots(rat(1, 1), rat(2, 1)),
		rootfinder.WithInterval(openIv(t, rat(0, 1), rat(3, 1))),
		rootfinder.WithTrivialSolver(false))
	require.NoError(t, err)
	require.Equal(t, rootfinder.Seeded, g.State())
	require.True(t, g.ProcessQueueItem())
	require.Equal(t, rootfinder.Draining, g.State())
}

// TestCommonRealRoots intersects the root sets of several polynomials.
func TestCommonRealRoots(t *testing.T) {
	ps := []poly.Polynomial{
		poly.FromRoots(rat(1, 1), rat(-1, 2)).Mul(poly.MustParse("x^2 - 2")),
		poly.MustParse("x^2 - 2").Mul(poly.MustParse("x - 1")),
		{},
	}
	roots, err := rootfinder.CommonRealRoots(ps)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff([]float64{-math.Sqrt2, 1, math.Sqrt2}, floats(roots), approx))

	roots, err = rootfinder.CommonRealRoots([]poly.Polynomial{poly.MustParse("x - 1"), poly.MustParse("x - 2")})
	require.NoError(t, err)
	require.Empty(t, roots)

	_, err = rootfinder.CommonRealRoots([]poly.Polynomial{{}})
	require.ErrorIs(t, err, rootfinder.ErrDegenerateInput)
	_, err = rootfinder.CommonRealRoots(nil)
	require.ErrorIs(t, err, rootfinder.ErrDegenerateInput)
}

// TestNew_Errors covers degenerate input.
func TestNew_Errors(t *testing.T) {
	_, err := rootfinder.New(poly.Polynomial{})
	require.ErrorIs(t, err, rootfinder.ErrDegenerateInput)

	_, err = rootfinder.RealRoots(poly.Polynomial{})
	require.ErrorIs(t, err, rootfinder.ErrDegenerateInput)

	_, err = rootfinder.CountRealRoots(poly.Polynomial{}, interval.Unbounded())
	require.ErrorIs(t, err, rootfinder.ErrDegenerateInput)

	require.Panics(t, func() { rootfinder.WithStepBudget(0)(&rootfinder.Options{}) })
	require.Panics(t, func() { rootfinder.WithGridCells(1)(&rootfinder.Options{}) })
	require.Panics(t, func() { rootfinder.WithStrategy(-1)(&rootfinder.Options{}) })
}

// TestParseStrategy round-trips names.
func TestParseStrategy(t *testing.T) {
	for _, s := range rootfinder.Strategies() {
		got, err := rootfinder.ParseStrategy(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
	got, err := rootfinder.ParseStrategy(" Default ")
	require.NoError(t, err)
	require.Equal(t, rootfinder.Default, got)

	_, err = rootfinder.ParseStrategy("newton")
	require.ErrorIs(t, err, rootfinder.ErrUnknownStrategy)
	require.Equal(t, "Strategy(42)", rootfinder.Strategy(42).String())
}

