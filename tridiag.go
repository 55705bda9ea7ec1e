package spline

import (
	"fmt"
	"math"
)

// SolveTridiagonal solves the linear system A·x = d, where A is the tridiagonal
// matrix with sub-diagonal a, diagonal b, and super-diagonal c. Row i reads
//
//	a[i]·x[i-1] + b[i]·x[i] + c[i]·x[i+1] = d[i]
//
// a[0] and c[n-1] are ignored. All slices must have the same, non-zero length.
// None of the inputs are modified.
//
// The system is solved with the Thomas algorithm, a forward sweep eliminating
// the sub-diagonal followed by back-substitution, in O(n) time. It doesn't
// pivot, so A should be diagonally dominant. A zero or non-finite pivot, as
// well as a non-finite solution, results in an error wrapping
// [ErrNumericalFailure].
func SolveTridiagonal(a, b, c, d []float64) ([]float64, error) {
	n := len(d)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty tridiagonal system", ErrInvalidInput)
	}
	if len(a) != n || len(b) != n || len(c) != n {
		return nil, fmt.Errorf("%w: coefficient lengths %d, %d, %d don't match %d right-hand sides",
			ErrInvalidInput, len(a), len(b), len(c), n)
	}

	// cp holds the modified super-diagonal, x doubles as the modified
	// right-hand side until back-substitution overwrites it.
	cp := make([]float64, n)
	x := make([]float64, n)

	pivot := b[0]
	if !isPivot(pivot) {
		return nil, fmt.Errorf("%w: pivot %g in row 0", ErrNumericalFailure, pivot)
	}
	cp[0] = c[0] / pivot
	x[0] = d[0] / pivot
	for i := 1; i < n; i++ {
		pivot = b[i] - a[i]*cp[i-1]
		if !isPivot(pivot) {
			return nil, fmt.Errorf("%w: pivot %g in row %d", ErrNumericalFailure, pivot, i)
		}
		if i < n-1 {
			cp[i] = c[i] / pivot
		}
		x[i] = (d[i] - a[i]*x[i-1]) / pivot
	}

	for i := n - 2; i >= 0; i-- {
		x[i] -= cp[i] * x[i+1]
	}
	for i, v := range x {
		if !isFinite(v) {
			return nil, fmt.Errorf("%w: non-finite solution %g in row %d", ErrNumericalFailure, v, i)
		}
	}
	return x, nil
}

func isPivot(v float64) bool {
	return v != 0 && isFinite(v)
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
