// SPDX-License-Identifier: MIT

package ops

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/realroots/matrix"
)

// ErrEigenFailed is returned if the QR iteration does not converge within the iteration budget.
var ErrEigenFailed = errors.New("ops: eigenvalue iteration did not converge")

const (
	// DefaultEigenTol is the relative size below which a subdiagonal entry counts as zero.
	DefaultEigenTol = 1e-12

	// DefaultEigenMaxIter caps QR sweeps per eigenvalue (the total budget is maxIter·n).
	DefaultEigenMaxIter = 60

	// exceptionalEvery forces an off-centre shift after this many sweeps without deflation.
	exceptionalEvery = 10

	// tinyAbs is the absolute threshold for a negligible entry when the diagonal is ~0.
	tinyAbs = 1e-300
)

// Eigenvalues computes all eigenvalues of the real square matrix m.
// Complex eigenvalues come in conjugate pairs. Order is deflation order
// (bottom of the matrix first), not sorted.
// tol is the relative deflation threshold; maxIter caps sweeps per eigenvalue.
// Returns ErrNonSquare or ErrEigenFailed.
// Complexity: O(n³) per sweep, O(maxIter·n⁴) worst case; Memory: O(n²).
func Eigenvalues(m matrix.Matrix, tol float64, maxIter int) ([]complex128, error) {
	// Stage 1: Validate input
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Eigenvalues: %w", err)
	}
	n := m.Rows()
	if n != m.Cols() {
		return nil, fmt.Errorf("Eigenvalues: non-square %dx%d: %w", n, m.Cols(), matrix.ErrNonSquare)
	}
	if tol <= 0 {
		tol = DefaultEigenTol
	}
	if maxIter <= 0 {
		maxIter = DefaultEigenMaxIter
	}

	// Stage 2: Prepare the active block B (leading hi×hi of the iterate)
	B, err := matrix.Leading(m, n)
	if err != nil {
		return nil, fmt.Errorf("Eigenvalues: %w", err)
	}
	eigs := make([]complex128, 0, n)

	// Stage 3: Shifted QR sweeps with deflation from the bottom
	var (
		hi    = n
		stall int
		total int
		mu    float64
		Q, R  *matrix.Dense
		RQ    *matrix.Dense
	)
	for hi > 0 {
		if hi == 1 {
			a, _ := B.At(0, 0)
			eigs = append(eigs, complex(a, 0))
			break
		}
		if negligibleRow(B, hi-1, hi-1, tol) {
			d, _ := B.At(hi-1, hi-1)
			eigs = append(eigs, complex(d, 0))
			hi--
			B, _ = matrix.Leading(B, hi)
			stall = 0
			continue
		}
		if hi == 2 {
			l1, l2 := block2(B, 0)
			eigs = append(eigs, l1, l2)
			break
		}
		if negligibleRow(B, hi-2, hi-2, tol) && negligibleRow(B, hi-1, hi-2, tol) {
			l1, l2 := block2(B, hi-2)
			eigs = append(eigs, l1, l2)
			hi -= 2
			B, _ = matrix.Leading(B, hi)
			stall = 0
			continue
		}
		if total >= maxIter*n {
			return nil, fmt.Errorf("Eigenvalues: %d sweeps: %w", total, ErrEigenFailed)
		}

		// 3.1: choose shift
		mu = wilkinsonShift(B, hi)
		if stall > 0 && stall%exceptionalEvery == 0 {
			c, _ := B.At(hi-1, hi-2)
			mu += 1.5 * math.Abs(c)
		}
		// 3.2: B - μI = QR, B' = RQ + μI
		S, _ := matrix.AddDiagonal(B, -mu)
		if Q, R, err = QR(S); err != nil {
			return nil, fmt.Errorf("Eigenvalues: %w", err)
		}
		if RQ, err = matrix.Mul(R, Q); err != nil {
			return nil, fmt.Errorf("Eigenvalues: %w", err)
		}
		B, _ = matrix.AddDiagonal(RQ, mu)
		stall++
		total++
	}

	// Stage 4: Finalize
	return eigs, nil
}

// negligibleRow reports whether B[row][0:upto] is negligible relative to the
// diagonal entries it couples.
func negligibleRow(B *matrix.Dense, row, upto int, tol float64) bool {
	d, _ := B.At(row, row)
	var v, scale float64
	for j := 0; j < upto; j++ {
		v, _ = B.At(row, j)
		scale, _ = B.At(j, j)
		scale = math.Abs(scale) + math.Abs(d)
		if math.Abs(v) > tinyAbs && math.Abs(v) > tol*scale {
			return false
		}
	}

	return true
}

// block2 returns the eigenvalues of the 2×2 block starting at (i, i).
func block2(B *matrix.Dense, i int) (complex128, complex128) {
	a, _ := B.At(i, i)
	b, _ := B.At(i, i+1)
	c, _ := B.At(i+1, i)
	d, _ := B.At(i+1, i+1)
	p := (a + d) / 2
	disc := (a-d)*(a-d)/4 + b*c
	if disc >= 0 {
		s := math.Sqrt(disc)
		return complex(p+s, 0), complex(p-s, 0)
	}
	s := math.Sqrt(-disc)

	return complex(p, s), complex(p, -s)
}

// wilkinsonShift picks the eigenvalue of the trailing 2×2 block closest to its
// bottom-right entry, or the block's real part when the pair is complex.
func wilkinsonShift(B *matrix.Dense, hi int) float64 {
	l1, l2 := block2(B, hi-2)
	if imag(l1) != 0 {
		return real(l1)
	}
	d, _ := B.At(hi-1, hi-1)
	if math.Abs(real(l1)-d) < math.Abs(real(l2)-d) {
		return real(l1)
	}

	return real(l2)
}
