// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opAddDiagonal = "AddDiagonal"
	opLeading     = "Leading"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix for a nil Matrix.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return ErrNilMatrix
	}

	return nil
}

// Mul performs standard matrix multiplication of a and b (a × b).
// Stage 1 (Validate): nil-check and inner-dimension match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): triple loop, with fast-path for *Dense.
// Complexity: O(r*n*c) time and O(r*c) memory.
func Mul(a, b Matrix) (*Dense, error) {
	// Stage 1: Validate inputs
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	// Stage 2: Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av, bv  float64
	)
	// Stage 3: Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i = 0; i < aRows; i++ {
				for k = 0; k < aCols; k++ {
					av = da.data[i*aCols+k]
					if av == 0 {
						continue // skip zero for performance
					}
					for j = 0; j < bCols; j++ {
						res.data[i*bCols+j] += av * db.data[k*bCols+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum := 0.0
			for k = 0; k < aCols; k++ {
				av, _ = a.At(i, k)
				bv, _ = b.At(k, j)
				sum += av * bv
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns a new Dense where rows and columns of m are swapped.
// Complexity: O(r·c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ = m.At(i, j)
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// AddDiagonal returns m + alpha·I for a square m.
// Used for the shift steps (A - μI, RQ + μI) of the QR algorithm.
func AddDiagonal(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAddDiagonal, err)
	}
	if m.Rows() != m.Cols() {
		return nil, matrixErrorf(opAddDiagonal, ErrNonSquare)
	}
	n := m.Rows()
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opAddDiagonal, err)
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ = m.At(i, j)
			if i == j {
				v += alpha
			}
			res.data[i*n+j] = v
		}
	}

	return res, nil
}

// Leading returns a copy of the leading k×k block of a square m (1 ≤ k ≤ n).
func Leading(m Matrix, k int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opLeading, err)
	}
	if m.Rows() != m.Cols() {
		return nil, matrixErrorf(opLeading, ErrNonSquare)
	}
	if k < 1 || k > m.Rows() {
		return nil, matrixErrorf(opLeading, ErrIndexOutOfBounds)
	}
	res, _ := NewDense(k, k) // k ≥ 1 checked above
	var v float64
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			v, _ = m.At(i, j)
			res.data[i*k+j] = v
		}
	}

	return res, nil
}
