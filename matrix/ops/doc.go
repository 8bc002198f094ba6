// SPDX-License-Identifier: MIT

// Package ops provides advanced matrix operations for the matrix package:
//
//   - QR: Householder factorization m = Q×R.
//   - Eigenvalues: all (complex) eigenvalues of a real square matrix by the
//     shifted QR algorithm with deflation of 1×1 and 2×2 trailing blocks.
//   - Companion / PolyRoots: polynomial roots as companion-matrix eigenvalues.
//
// Results are floating-point approximations. Callers needing exact answers
// (the root finder) use them only as hints and certify them independently.
package ops
