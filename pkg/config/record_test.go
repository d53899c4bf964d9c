package config

import (
	"strings"
	"testing"

	"github.com/nrodrigues64/td3-trajectory/internal/xerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTrajectoryYAML(t *testing.T) {
	doc := `
type_name: LinearSpline
start: 0
knots:
  - [0, 0]
  - [1, 2]
  - [3, 2]
`
	rec, err := DecodeTrajectoryYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "LinearSpline", rec.TypeName)

	tr, err := rec.Build()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, tr.ValueAt(0.5, 0), 1e-9)
}

func TestDecodeTrajectoryJSON(t *testing.T) {
	doc := `{"type_name":"ConstantSpline","start":0,"knots":[[0,5],[1,5]]}`
	rec, err := DecodeTrajectoryJSON(strings.NewReader(doc))
	require.NoError(t, err)
	tr, err := rec.Build()
	require.NoError(t, err)
	assert.InDelta(t, 5.0, tr.ValueAt(0.5, 0), 1e-9)
}

func TestTrapezoidalRecordRequiresParameters(t *testing.T) {
	rec := TrajectoryRecord{
		TypeName: "TrapezoidalVelocity",
		Knots:    [][]float64{{0, 0}, {1, 1}},
	}
	_, err := rec.Build()
	assert.ErrorIs(t, err, xerrors.ErrMissingParameter)
}

func TestTrapezoidalRecordWithParameters(t *testing.T) {
	rec := TrajectoryRecord{
		TypeName:   "TrapezoidalVelocity",
		Knots:      [][]float64{{0, 0}, {1, 1}},
		Parameters: &ParametersRecord{VelMax: 10, AccMax: 100},
	}
	tr, err := rec.Build()
	require.NoError(t, err)
	assert.NotNil(t, tr)
}

func TestRobotTrajectoryRecordUnknownModel(t *testing.T) {
	rec := RobotTrajectoryRecord{
		ModelName:          "NotARobot",
		TrajectoryType:     "LinearSpline",
		TargetSpace:        "joint",
		PlanificationSpace: "joint",
		Targets:            [][]float64{{0, 0, 0.1}, {1, 0.2, 0.2}},
	}
	_, err := rec.Build()
	assert.ErrorIs(t, err, xerrors.ErrUnknownRobotModel)
}

func TestRobotTrajectoryRecordUnsupportedSpace(t *testing.T) {
	rec := RobotTrajectoryRecord{
		ModelName:          "RobotRT",
		TrajectoryType:     "LinearSpline",
		TargetSpace:        "bogus",
		PlanificationSpace: "joint",
		Targets:            [][]float64{{0, 0, 0.1}, {1, 0.2, 0.2}},
	}
	_, err := rec.Build()
	assert.ErrorIs(t, err, xerrors.ErrUnsupportedSpace)
}
