package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInverseIdentity(t *testing.T) {
	m := Eye(3)
	inv, err := m.Inverse()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, m[i][j], inv[i][j], 1e-12)
		}
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := NewFromRows([][]float64{
		{4, 7},
		{2, 6},
	})
	inv, err := m.Inverse()
	require.NoError(t, err)
	prod, err := m.Mul(inv)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, prod[0][0], 1e-9)
	assert.InDelta(t, 0.0, prod[0][1], 1e-9)
	assert.InDelta(t, 0.0, prod[1][0], 1e-9)
	assert.InDelta(t, 1.0, prod[1][1], 1e-9)
}

func TestInverseSingular(t *testing.T) {
	m := NewFromRows([][]float64{
		{1, 2},
		{2, 4},
	})
	_, err := m.Inverse()
	assert.ErrorIs(t, err, ErrSingular)
}

func TestPseudoInverseSquareNonSingular(t *testing.T) {
	m := NewFromRows([][]float64{
		{2, 0},
		{0, 4},
	})
	pinv, err := m.PseudoInverse()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, pinv[0][0], 1e-9)
	assert.InDelta(t, 0.25, pinv[1][1], 1e-9)
}

func TestPseudoInverseSingularDoesNotError(t *testing.T) {
	m := NewFromRows([][]float64{
		{1, 1},
		{1, 1},
	})
	pinv, err := m.PseudoInverse()
	require.NoError(t, err)
	require.Equal(t, 2, pinv.Rows())
	require.Equal(t, 2, pinv.Cols())
}

func TestMulVec(t *testing.T) {
	m := NewFromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	out, err := m.MulVec([]float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, out)
}
