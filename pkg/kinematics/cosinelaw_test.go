package kinematics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineLawTwoSolutions(t *testing.T) {
	sols := cosineLaw(1, 1, 1, 1)
	require.Len(t, sols, 2)
	assert.InDelta(t, math.Pi/2, sols[0].Alpha, 1e-9)
	assert.InDelta(t, -math.Pi/2, sols[0].Beta, 1e-9)
}

func TestCosineLawUnreachable(t *testing.T) {
	assert.Nil(t, cosineLaw(10, 10, 1, 1))
	assert.Nil(t, cosineLaw(0, 0, 1, 2))
}

func TestCosineLawSingleSolutionAtFullExtension(t *testing.T) {
	sols := cosineLaw(2, 0, 1, 1)
	require.Len(t, sols, 1)
}
