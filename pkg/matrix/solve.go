package matrix

import (
	"errors"
	"math"

	"circuitcore/internal/consts"
)

// ErrSingular is returned when the entire system collapses under
// pivoting — every column degenerate, not just a floating subnet.
var ErrSingular = errors.New("singular matrix")

// pivotTolerance is the spec.md §4.1 / §9 threshold below which a
// pivot is treated as degenerate. This is intentional: circuits with
// floating subnets should yield partial results, not a hard failure.
const pivotTolerance = consts.PivotTolerance

// SolveReal solves A·x = b by Gaussian elimination with partial
// pivoting on a working copy of (A, b). A column whose best available
// pivot falls below pivotTolerance is skipped — its elimination step
// is dropped and back-substitution leaves that unknown at 0. If every
// column in the system is degenerate this way, ErrSingular is returned
// so the caller can surface a diagnostic; a partially singular system
// (a genuine floating subnet) is not an error.
func SolveReal(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	work := make([][]float64, n)
	for i := range work {
		work[i] = append([]float64(nil), a[i]...)
	}
	rhs := append([]float64(nil), b...)

	degenerate := make([]bool, n)
	degenerateCount := 0

	for col := 0; col < n; col++ {
		pivotRow := col
		best := math.Abs(work[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(work[r][col]); v > best {
				best = v
				pivotRow = r
			}
		}

		if best < pivotTolerance {
			degenerate[col] = true
			degenerateCount++
			continue
		}

		if pivotRow != col {
			work[col], work[pivotRow] = work[pivotRow], work[col]
			rhs[col], rhs[pivotRow] = rhs[pivotRow], rhs[col]
		}

		pivot := work[col][col]
		for r := col + 1; r < n; r++ {
			factor := work[r][col] / pivot
			if factor == 0 {
				continue
			}
			for c := col; c < n; c++ {
				work[r][c] -= factor * work[col][c]
			}
			rhs[r] -= factor * rhs[col]
		}
	}

	if degenerateCount == n {
		return make([]float64, n), ErrSingular
	}

	x := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		if degenerate[row] {
			x[row] = 0
			continue
		}
		sum := rhs[row]
		for c := row + 1; c < n; c++ {
			sum -= work[row][c] * x[c]
		}
		x[row] = sum / work[row][row]
	}

	return x, nil
}

// SolveComplex is the complex-valued counterpart of SolveReal, used by
// the AC Sweep Engine.
func SolveComplex(a [][]Complex, b []Complex) ([]Complex, error) {
	n := len(b)
	work := make([][]Complex, n)
	for i := range work {
		work[i] = append([]Complex(nil), a[i]...)
	}
	rhs := append([]Complex(nil), b...)

	degenerate := make([]bool, n)
	degenerateCount := 0

	for col := 0; col < n; col++ {
		pivotRow := col
		best := work[col][col].Magnitude()
		for r := col + 1; r < n; r++ {
			if v := work[r][col].Magnitude(); v > best {
				best = v
				pivotRow = r
			}
		}

		if best < pivotTolerance {
			degenerate[col] = true
			degenerateCount++
			continue
		}

		if pivotRow != col {
			work[col], work[pivotRow] = work[pivotRow], work[col]
			rhs[col], rhs[pivotRow] = rhs[pivotRow], rhs[col]
		}

		pivot := work[col][col]
		for r := col + 1; r < n; r++ {
			if work[r][col].Magnitude() == 0 {
				continue
			}
			factor := work[r][col].Div(pivot)
			for c := col; c < n; c++ {
				work[r][c] = work[r][c].Sub(factor.Mul(work[col][c]))
			}
			rhs[r] = rhs[r].Sub(factor.Mul(rhs[col]))
		}
	}

	if degenerateCount == n {
		return make([]Complex, n), ErrSingular
	}

	x := make([]Complex, n)
	for row := n - 1; row >= 0; row-- {
		if degenerate[row] {
			x[row] = Complex{}
			continue
		}
		sum := rhs[row]
		for c := row + 1; c < n; c++ {
			sum = sum.Sub(work[row][c].Mul(x[c]))
		}
		x[row] = sum.Div(work[row][row])
	}

	return x, nil
}
