// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/realroots/matrix"
)

// NormZero is the additive identity for norm accumulation.
const NormZero = 0.0

// QR returns Q and R for the decomposition m = Q×R using Householder
// reflections: Q orthogonal, R upper-triangular.
// It returns ErrNonSquare if m is not square.
// Complexity: O(n³) time, O(n²) memory where n = m.Rows().
func QR(m matrix.Matrix) (*matrix.Dense, *matrix.Dense, error) {
	// Stage 1: Validate input dimensions
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, nil, fmt.Errorf("QR: %w", err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows != cols {
		return nil, nil, fmt.Errorf("QR: non-square %dx%d: %w", rows, cols, matrix.ErrNonSquare)
	}
	n := rows

	// Stage 2: Prepare working matrices and Householder vector
	A, err := matrix.AddDiagonal(m, 0) // working copy as *Dense
	if err != nil {
		return nil, nil, fmt.Errorf("QR: %w", err)
	}
	H, err := matrix.NewIdentity(n) // accumulates H_k···H_1
	if err != nil {
		return nil, nil, fmt.Errorf("QR: %w", err)
	}
	v := make([]float64, n)

	// Stage 3: Execute Householder reflections
	var (
		k, i, j    int
		sum, alpha float64
		norm, beta float64
		val        float64
		tau        float64
	)
	for k = 0; k < n; k++ {
		// 3.1: norm of A[k:n][k]
		norm = NormZero
		for i = k; i < n; i++ {
			val, _ = A.At(i, k)
			norm += val * val
		}
		norm = math.Sqrt(norm)
		if norm == NormZero {
			continue // skip zero column
		}
		// 3.2: alpha = -sign(A[k][k]) * norm
		val, _ = A.At(k, k)
		alpha = -math.Copysign(norm, val)
		// 3.3: Householder vector v
		for i = 0; i < n; i++ {
			v[i] = NormZero
		}
		for i = k; i < n; i++ {
			v[i], _ = A.At(i, k)
		}
		v[k] -= alpha
		// 3.4: beta = vᵀv
		beta = NormZero
		for i = k; i < n; i++ {
			beta += v[i] * v[i]
		}
		if beta == NormZero {
			continue // column already reduced
		}
		tau = 2.0 / beta

		// 3.5: apply reflection to A (builds R)
		for j = k; j < n; j++ {
			sum = NormZero
			for i = k; i < n; i++ {
				val, _ = A.At(i, j)
				sum += v[i] * val
			}
			for i = k; i < n; i++ {
				val, _ = A.At(i, j)
				_ = A.Set(i, j, val-tau*v[i]*sum)
			}
		}

		// 3.6: apply reflection to H
		for j = 0; j < n; j++ {
			sum = NormZero
			for i = k; i < n; i++ {
				val, _ = H.At(i, j)
				sum += v[i] * val
			}
			for i = k; i < n; i++ {
				val, _ = H.At(i, j)
				_ = H.Set(i, j, val-tau*v[i]*sum)
			}
		}
	}

	// Stage 4: H·m = R, so Q = Hᵀ
	Q, err := matrix.Transpose(H)
	if err != nil {
		return nil, nil, fmt.Errorf("QR: %w", err)
	}

	return Q, A, nil
}
