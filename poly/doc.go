// SPDX-License-Identifier: MIT

// Package poly implements dense univariate polynomials with exact rational
// coefficients (math/big.Rat).
//
// What is provided:
//
//   - Construction: New, FromInts, FromRoots and a small textual Parse
//     ("3/2x^3 - x + 1", "x^2-2").
//   - Exact evaluation at rational points, sign queries and a float64
//     approximation for numeric strategies.
//   - Ring operations: Add, Sub, Mul, Neg, Scale, Derivative.
//   - Euclidean division over ℚ (DivMod, Quo, Rem), monic GCD and the
//     square-free part p / gcd(p, p').
//   - CauchyBound: a rational B with |x| < B for every complex root x.
//
// Polynomial is an immutable value: no method mutates its receiver, so values
// may be shared freely between goroutines.
//
// Coefficients are stored low→high; the zero polynomial has Degree() == -1.
package poly
