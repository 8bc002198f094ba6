// SPDX-License-Identifier: MIT

// Package matrix provides a small dense float64 matrix used by the numeric
// root-approximation strategies.
//
// The package provides:
//
//   - Matrix, the minimal interface (Rows, Cols, At, Set, Clone).
//   - Dense, a row-major implementation backed by one flat slice.
//   - Mul, Transpose, AddDiagonal and Leading for the QR iteration in ops.
//
// All operations validate shapes up front and return sentinel errors
// (errors.go) wrapped with the operation name; nothing panics on user input.
//
// See subpackage ops for the Householder QR factorization and the
// general (non-symmetric) eigenvalue solver used on companion matrices.
package matrix
