package kinematics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRRRForwardIKRoundTrip(t *testing.T) {
	r := NewRRR()
	q := []float64{0.4, 0.3, -0.2}
	x := r.Forward(q)
	count, qIK := r.AnalyticalIK(x)
	assert.Equal(t, 2, count)
	xIK := r.Forward(qIK)
	assert.InDelta(t, x[0], xIK[0], 1e-9)
	assert.InDelta(t, x[1], xIK[1], 1e-9)
	assert.InDelta(t, x[2], xIK[2], 1e-9)
}

func TestRRRSingularity(t *testing.T) {
	r := NewRRR()
	count, q := r.AnalyticalIK([]float64{0, 0, r.l0})
	assert.Equal(t, -1, count)
	assert.NotNil(t, q)
}

func TestRRRJacobianMatchesFiniteDifference(t *testing.T) {
	r := NewRRR()
	q := []float64{0.2, -0.4, 0.1}
	j := r.Jacobian(q)
	h := 1e-6
	for col := 0; col < 3; col++ {
		qPlus := append([]float64(nil), q...)
		qMinus := append([]float64(nil), q...)
		qPlus[col] += h
		qMinus[col] -= h
		fPlus := r.Forward(qPlus)
		fMinus := r.Forward(qMinus)
		for row := 0; row < 3; row++ {
			fd := (fPlus[row] - fMinus[row]) / (2 * h)
			assert.InDelta(t, fd, j[row][col], 1e-5)
		}
	}
}
