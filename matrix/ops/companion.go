// SPDX-License-Identifier: MIT

package ops

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/realroots/matrix"
)

// ErrBadPolynomial indicates coefficients that do not define a polynomial of degree ≥ 1
// with a finite, nonzero leading coefficient.
var ErrBadPolynomial = errors.New("ops: polynomial must have degree >= 1 and finite coefficients")

// Companion returns the companion matrix (upper Hessenberg form) of the polynomial
// with coefficients c given low→high. Its eigenvalues are the polynomial's roots:
//
//	[ -c[n-1]/c[n]  -c[n-2]/c[n]  ...  -c[0]/c[n] ]
//	[       1             0       ...       0      ]
//	[       0             1       ...       0      ]
//	[      ...                    1         0      ]
func Companion(c []float64) (*matrix.Dense, error) {
	n := len(c) - 1
	if n < 1 || c[n] == 0 {
		return nil, fmt.Errorf("Companion: %w", ErrBadPolynomial)
	}
	for _, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("Companion: %w", ErrBadPolynomial)
		}
	}
	C, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Companion: %w", err)
	}
	for j := 0; j < n; j++ {
		_ = C.Set(0, j, -c[n-1-j]/c[n])
	}
	for i := 1; i < n; i++ {
		_ = C.Set(i, i-1, 1)
	}

	return C, nil
}

// PolyRoots approximates all complex roots of the polynomial with coefficients
// c (low→high) as eigenvalues of its companion matrix.
func PolyRoots(c []float64) ([]complex128, error) {
	C, err := Companion(c)
	if err != nil {
		return nil, err
	}

	return Eigenvalues(C, DefaultEigenTol, DefaultEigenMaxIter)
}
