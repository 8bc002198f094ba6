// SPDX-License-Identifier: MIT

package rootfinder

import (
	"fmt"

	"github.com/katalvlaran/realroots/interval"
	"github.com/katalvlaran/realroots/poly"
	"github.com/katalvlaran/realroots/ran"
	"github.com/katalvlaran/realroots/sturm"
)

// RealRoots returns every real root of p in the configured interval, ascending.
func RealRoots(p poly.Polynomial, opts ...Option) ([]*ran.Number, error) {
	f, err := New(p, opts...)
	if err != nil {
		return nil, fmt.Errorf("RealRoots: %w", err)
	}
	roots, err := f.RootCache()
	if err != nil {
		return roots, fmt.Errorf("RealRoots: %w", err)
	}

	return roots, nil
}

// CountRealRoots returns the number of distinct real roots of p in iv
// without isolating them.
func CountRealRoots(p poly.Polynomial, iv interval.Interval) (int, error) {
	if p.IsZero() {
		return 0, fmt.Errorf("CountRealRoots: %w", ErrDegenerateInput)
	}
	seq, err := sturm.New(p.SquareFree())
	if err != nil {
		return 0, fmt.Errorf("CountRealRoots: %w", err)
	}

	return seq.RootCountIn(iv), nil
}

// CommonRealRoots returns the real roots shared by every polynomial in ps,
// ascending, in the configured interval. Zero polynomials impose no
// constraint; ErrDegenerateInput is returned when ps has no nonzero member.
func CommonRealRoots(ps []poly.Polynomial, opts ...Option) ([]*ran.Number, error) {
	var g poly.Polynomial
	for _, p := range ps {
		g = poly.GCD(g, p)
	}
	if g.IsZero() {
		return nil, fmt.Errorf("CommonRealRoots: %w", ErrDegenerateInput)
	}
	if g.IsConstant() {
		return nil, nil
	}
	roots, err := RealRoots(g, opts...)
	if err != nil {
		return roots, fmt.Errorf("CommonRealRoots: %w", err)
	}

	return roots, nil
}
