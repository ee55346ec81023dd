package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circuitcore/pkg/matrix"
)

func TestSolveReal_WellConditioned(t *testing.T) {
	a := [][]float64{
		{2, 1},
		{5, 7},
	}
	b := []float64{11, 13}

	x, err := matrix.SolveReal(a, b)
	require.NoError(t, err)

	// Verify ‖A·x - b‖ < 1e-9·‖b‖ per spec.md §8 property 6.
	r0 := a[0][0]*x[0] + a[0][1]*x[1] - b[0]
	r1 := a[1][0]*x[0] + a[1][1]*x[1] - b[1]
	assert.InDelta(t, 0, r0, 1e-9)
	assert.InDelta(t, 0, r1, 1e-9)
}

func TestSolveReal_FloatingSubnetTolerated(t *testing.T) {
	// Second row/column is entirely zero: a genuinely singular column,
	// not a fully singular system. Spec.md §4.1 says this is tolerated,
	// not an error.
	a := [][]float64{
		{1, 0},
		{0, 0},
	}
	b := []float64{4, 0}

	x, err := matrix.SolveReal(a, b)
	require.NoError(t, err)
	assert.Equal(t, 4.0, x[0])
	assert.Equal(t, 0.0, x[1])
}

func TestSolveReal_FullySingularReturnsError(t *testing.T) {
	a := [][]float64{
		{0, 0},
		{0, 0},
	}
	b := []float64{1, 1}

	_, err := matrix.SolveReal(a, b)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSolveComplex_WellConditioned(t *testing.T) {
	a := [][]matrix.Complex{
		{{Re: 1, Im: 0}, {Re: 0, Im: 1}},
		{{Re: 0, Im: 1}, {Re: 1, Im: 0}},
	}
	b := []matrix.Complex{{Re: 1, Im: 0}, {Re: 0, Im: 1}}

	x, err := matrix.SolveComplex(a, b)
	require.NoError(t, err)

	r0 := a[0][0].Mul(x[0]).Add(a[0][1].Mul(x[1])).Sub(b[0])
	assert.InDelta(t, 0, r0.Magnitude(), 1e-9)
}

func TestComplexDivByZeroGuarded(t *testing.T) {
	a := matrix.Complex{Re: 3, Im: 4}
	zero := matrix.Complex{}
	assert.Equal(t, matrix.Complex{}, a.Div(zero))
}

func TestComplexMagnitudePhase(t *testing.T) {
	c := matrix.Complex{Re: 3, Im: 4}
	assert.InDelta(t, 5.0, c.Magnitude(), 1e-9)
	assert.InDelta(t, math.Atan2(4, 3), c.Phase(), 1e-9)
}
