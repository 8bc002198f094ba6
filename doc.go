// SPDX-License-Identifier: MIT

// Package realroots isolates the real roots of univariate polynomials with
// rational coefficients, exactly and incrementally.
//
// What you get:
//
//	• Exact arithmetic: every coefficient, bound and split point is a *big.Rat
//	• Certified output: each root is an exact rational or an interval that a
//	  Sturm sequence proves to hold exactly that root
//	• Lazy, ordered results: roots stream out in ascending order while the
//	  rest of the search interval is still being processed
//	• Pluggable splitting: bisection, sample points, Newton, grids, and
//	  numerical seeding from companion-matrix eigenvalues or Aberth iteration
//
// Under the hood, the work is organized into subpackages:
//
//	poly/        - Polynomial over ℚ: arithmetic, division, GCD, square-free part, parsing
//	interval/    - exact intervals with open, closed and infinite bounds
//	sturm/       - Sturm sequences and root counting by sign variations
//	ran/         - real algebraic numbers (exact value or isolating interval)
//	matrix/      - small dense float64 matrix
//	matrix/ops/  - Householder QR, shifted-QR eigenvalues, companion matrices
//	rootfinder/  - work queue, splitting strategies and the Finder state machine
//	cmd/realroots - command-line front end
//
// Quick example:
//
//	roots, err := rootfinder.RealRoots(poly.MustParse("x^3 - 2x"))
//	// roots: an interval around -√2, the exact value 0, an interval around √2
//
//	go install github.com/katalvlaran/realroots/cmd/realroots@latest
package realroots
