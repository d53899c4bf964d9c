package kinematics

import (
	"testing"

	"github.com/nrodrigues64/td3-trajectory/internal/xerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMGIAnalytical(t *testing.T) {
	r := NewRT()
	q := []float64{0.4, 0.15}
	target := r.Forward(q)
	got, err := ComputeMGI(r, q, target, MethodAnalytical, 0, nil)
	require.NoError(t, err)
	assert.InDelta(t, q[0], got[0], 1e-9)
	assert.InDelta(t, q[1], got[1], 1e-9)
}

func TestComputeMGIUnknownMethod(t *testing.T) {
	r := NewRT()
	_, err := ComputeMGI(r, []float64{0, 0}, []float64{0.3, 0}, Method("bogus"), 0, nil)
	assert.ErrorIs(t, err, xerrors.ErrUnknownIKMethod)
}

func TestComputeMGIJacobianInverse(t *testing.T) {
	r := NewRT()
	target := r.Forward([]float64{0.3, 0.1})
	seed := int64(1)
	got, err := ComputeMGI(r, []float64{0.25, 0.08}, target, MethodJacobianInverse, 500, &seed)
	require.NoError(t, err)
	pos := r.Forward(got)
	assert.InDelta(t, target[0], pos[0], 1e-2)
	assert.InDelta(t, target[1], pos[1], 1e-2)
}
