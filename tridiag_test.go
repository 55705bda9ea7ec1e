package spline

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// residual returns the largest absolute error of x in A·x = d.
func residual(a, b, c, d, x []float64) float64 {
	var worst float64
	n := len(x)
	for i := range n {
		v := b[i] * x[i]
		if i > 0 {
			v += a[i] * x[i-1]
		}
		if i < n-1 {
			v += c[i] * x[i+1]
		}
		worst = max(worst, math.Abs(v-d[i]))
	}
	return worst
}

func TestSolveTridiagonal(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d []float64
		want       []float64
	}{
		{
			name: "single",
			a:    []float64{0},
			b:    []float64{4},
			c:    []float64{0},
			d:    []float64{2},
			want: []float64{0.5},
		},
		{
			name: "identity",
			a:    []float64{0, 0, 0},
			b:    []float64{1, 1, 1},
			c:    []float64{0, 0, 0},
			d:    []float64{3, -1, 7},
			want: []float64{3, -1, 7},
		},
		{
			// 2x + y = 4, x + 3y = 7
			name: "two",
			a:    []float64{0, 1},
			b:    []float64{2, 3},
			c:    []float64{1, 0},
			d:    []float64{4, 7},
			want: []float64{1, 2},
		},
		{
			name: "laplacian",
			a:    []float64{0, -1, -1, -1},
			b:    []float64{2, 2, 2, 2},
			c:    []float64{-1, -1, -1, 0},
			d:    []float64{1, 0, 0, 1},
			want: []float64{1, 1, 1, 1},
		},
		{
			// a[0] and c[n-1] must be ignored.
			name: "unused corners",
			a:    []float64{99, 1},
			b:    []float64{2, 3},
			c:    []float64{1, 99},
			d:    []float64{4, 7},
			want: []float64{1, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SolveTridiagonal(tt.a, tt.b, tt.c, tt.d)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, tt.want, got, cmpopts.EquateApprox(0, 1e-12))
		})
	}
}

func TestSolveTridiagonalResidual(t *testing.T) {
	const n = 50
	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	d := make([]float64, n)
	for i := range n {
		a[i] = 1 + float64(i%3)
		b[i] = 10 + float64(i%5)
		c[i] = -2 + float64(i%2)
		d[i] = math.Sin(float64(i))
	}
	x, err := SolveTridiagonal(a, b, c, d)
	if err != nil {
		t.Fatal(err)
	}
	if r := residual(a, b, c, d, x); r > 1e-12 {
		t.Errorf("got residual %g, want at most 1e-12", r)
	}
}

func TestSolveTridiagonalDoesNotModifyInput(t *testing.T) {
	a := []float64{0, 1, 1}
	b := []float64{2, 4, 7}
	c := []float64{1, 1, 0}
	d := []float64{1, 2, 3}
	want := [][]float64{slices.Clone(a), slices.Clone(b), slices.Clone(c), slices.Clone(d)}
	if _, err := SolveTridiagonal(a, b, c, d); err != nil {
		t.Fatal(err)
	}
	diff(t, want, [][]float64{a, b, c, d})
}

func TestSolveTridiagonalErrors(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	tests := []struct {
		name       string
		a, b, c, d []float64
		want       error
	}{
		{"empty", nil, nil, nil, nil, ErrInvalidInput},
		{"length mismatch", []float64{0, 1}, []float64{1}, []float64{0, 0}, []float64{1, 1}, ErrInvalidInput},
		{"zero first pivot", []float64{0, 1}, []float64{0, 1}, []float64{1, 0}, []float64{1, 1}, ErrNumericalFailure},
		// The second pivot is 1 - 1·(1/1) = 0.
		{"zero eliminated pivot", []float64{0, 1}, []float64{1, 1}, []float64{1, 0}, []float64{1, 1}, ErrNumericalFailure},
		{"NaN pivot", []float64{0, 1}, []float64{nan, 1}, []float64{1, 0}, []float64{1, 1}, ErrNumericalFailure},
		{"infinite pivot", []float64{0, 1}, []float64{2, inf}, []float64{1, 0}, []float64{1, 1}, ErrNumericalFailure},
		{"NaN right-hand side", []float64{0, 1}, []float64{2, 2}, []float64{1, 0}, []float64{1, nan}, ErrNumericalFailure},
		{"infinite right-hand side", []float64{0, 1}, []float64{2, 2}, []float64{1, 0}, []float64{inf, 1}, ErrNumericalFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := SolveTridiagonal(tt.a, tt.b, tt.c, tt.d)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got error %v, want %v", err, tt.want)
			}
			if x != nil {
				t.Errorf("got partial result %v", x)
			}
		})
	}
}
