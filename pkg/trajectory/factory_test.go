package trajectory

import (
	"testing"

	"github.com/nrodrigues64/td3-trajectory/internal/xerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnknownType(t *testing.T) {
	_, err := New(TypeName("bogus"), 0, []Knot{{0, 0}, {1, 1}}, nil, Params{})
	assert.ErrorIs(t, err, xerrors.ErrUnknownTrajectoryType)
}

func TestNewTrapezoidalRequiresParameters(t *testing.T) {
	_, err := New(TypeTrapezoidalVelocity, 0, []Knot{{0, 0}, {1, 1}}, nil, Params{})
	assert.ErrorIs(t, err, xerrors.ErrMissingParameter)
}

func TestNewCubicWideStencilRequiresFourKnots(t *testing.T) {
	_, err := New(TypeCubicWideStencil, 0, []Knot{{0, 0}, {1, 1}, {2, 2}}, nil, Params{})
	assert.ErrorIs(t, err, xerrors.ErrMalformedKnots)
}

func TestNewConstantSplineBuilds(t *testing.T) {
	tr, err := New(TypeConstant, 0, []Knot{{0, 5}, {1, 5}}, nil, Params{})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, tr.ValueAt(0.5, 0), 1e-9)
}
