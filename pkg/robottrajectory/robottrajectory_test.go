package robottrajectory

import (
	"testing"

	"github.com/nrodrigues64/td3-trajectory/pkg/kinematics"
	"github.com/nrodrigues64/td3-trajectory/pkg/trajectory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRobotTrajectoryOperationalTargetsPlannedInJointSpace(t *testing.T) {
	model := kinematics.NewRRR()

	reachable := func(t, q0, q1, q2 float64) []float64 {
		pos := model.Forward([]float64{q0, q1, q2})
		return []float64{t, pos[0], pos[1], pos[2]}
	}
	targets := [][]float64{
		reachable(0, 0.3, 0.2, -0.1),
		reachable(1, 0.4, 0.1, 0.0),
		reachable(2, 0.35, 0.0, 0.1),
	}

	rt, err := New(model, targets, true, nil, trajectory.TypeLinear, SpaceOperational, SpaceJoint, 0, trajectory.Params{})
	require.NoError(t, err)

	maxEnd := 0.0
	for _, row := range targets {
		if row[0] > maxEnd {
			maxEnd = row[0]
		}
	}
	assert.InDelta(t, maxEnd, rt.End(), 1e-9)

	last := targets[len(targets)-1]
	for dim := 0; dim < 3; dim++ {
		got, err := rt.Value(rt.End(), dim, DegreePosition, SpaceOperational)
		require.NoError(t, err)
		assert.InDelta(t, last[dim+1], got, 1e-6)
	}
}

func TestRobotTrajectoryDirectSpaceQuery(t *testing.T) {
	model := kinematics.NewRT()
	targets := [][]float64{
		{0, 0.0, 0.1},
		{1, 0.2, 0.2},
	}
	rt, err := New(model, targets, true, nil, trajectory.TypeLinear, SpaceJoint, SpaceJoint, 0, trajectory.Params{})
	require.NoError(t, err)

	got, err := rt.Value(0.5, 0, DegreePosition, SpaceJoint)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, got, 1e-9)
}

func TestRobotTrajectoryJointToOperationalVelocity(t *testing.T) {
	model := kinematics.NewRT()
	targets := [][]float64{
		{0, 0.0, 0.1},
		{1, 0.4, 0.2},
	}
	rt, err := New(model, targets, true, nil, trajectory.TypeLinear, SpaceJoint, SpaceJoint, 0, trajectory.Params{})
	require.NoError(t, err)

	_, err = rt.Value(0.5, 0, DegreeVelocity, SpaceOperational)
	require.NoError(t, err)
}

func TestRobotTrajectoryUnreachableTargetErrors(t *testing.T) {
	model := kinematics.NewRT()
	targets := [][]float64{
		{0, 100, 100},
		{1, 100, 100},
	}
	_, err := New(model, targets, true, nil, trajectory.TypeLinear, SpaceOperational, SpaceJoint, 0, trajectory.Params{})
	assert.Error(t, err)
}

func TestRobotTrajectoryHigherDegreeNotAvailable(t *testing.T) {
	model := kinematics.NewRT()
	targets := [][]float64{
		{0, 0.0, 0.1},
		{1, 0.2, 0.2},
	}
	rt, err := New(model, targets, true, nil, trajectory.TypeLinear, SpaceJoint, SpaceJoint, 0, trajectory.Params{})
	require.NoError(t, err)
	_, err = rt.Value(0.5, 0, 3, SpaceJoint)
	assert.Error(t, err)
}
