// Package config ingests the two configuration records spec.md §6 and
// SPEC_FULL.md §6.4 describe: a 1-D trajectory record and a robot
// trajectory record. Records decode from YAML (gopkg.in/yaml.v3, the
// teacher's marshalling dependency) or JSON, and build directly into
// pkg/trajectory / pkg/robottrajectory values. File loading is out of
// scope; the decode functions read from an already-open io.Reader.
package config

import (
	"github.com/nrodrigues64/td3-trajectory/internal/xerrors"
	"github.com/nrodrigues64/td3-trajectory/pkg/kinematics"
	"github.com/nrodrigues64/td3-trajectory/pkg/robottrajectory"
	"github.com/nrodrigues64/td3-trajectory/pkg/trajectory"
)

// ParametersRecord carries the optional parameters a trajectory record
// may supply; only TrapezoidalVelocity requires VelMax/AccMax.
type ParametersRecord struct {
	VelMax float64 `yaml:"vel_max" json:"vel_max"`
	AccMax float64 `yaml:"acc_max" json:"acc_max"`
}

// TrajectoryRecord mirrors spec.md §6's 1-D trajectory configuration
// record. Knots columns are (time, value) or (time, value, velocity) for
// CubicCustomDerivativeSpline.
type TrajectoryRecord struct {
	TypeName   string            `yaml:"type_name" json:"type_name"`
	Start      float64           `yaml:"start" json:"start"`
	Knots      [][]float64       `yaml:"knots" json:"knots"`
	Parameters *ParametersRecord `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// RobotTrajectoryRecord mirrors spec.md §6's robot trajectory
// configuration record: the start time and parameters of a
// TrajectoryRecord, with targets and trajectory_type in place of knots and
// type_name, plus the fields naming the robot model and the two spaces.
type RobotTrajectoryRecord struct {
	ModelName          string            `yaml:"model_name" json:"model_name"`
	Targets            [][]float64       `yaml:"targets" json:"targets"`
	TrajectoryType     string            `yaml:"trajectory_type" json:"trajectory_type"`
	TargetSpace        string            `yaml:"target_space" json:"target_space"`
	PlanificationSpace string            `yaml:"planification_space" json:"planification_space"`
	Start              float64           `yaml:"start" json:"start"`
	Parameters         *ParametersRecord `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// Build validates and constructs the 1-D trajectory the record describes.
// Knot rows with 3 columns are treated as (t, x, v) for
// CubicCustomDerivativeSpline; 2-column rows carry no velocity.
func (r TrajectoryRecord) Build() (trajectory.Trajectory, error) {
	if len(r.Knots) == 0 {
		return nil, xerrors.ErrMalformedKnots
	}

	knots := make([]trajectory.Knot, len(r.Knots))
	var velocities []float64
	hasVelocity := len(r.Knots[0]) >= 3

	for i, row := range r.Knots {
		if len(row) < 2 {
			return nil, xerrors.ErrMalformedKnots
		}
		knots[i] = trajectory.Knot{T: row[0], X: row[1]}
		if hasVelocity {
			if len(row) < 3 {
				return nil, xerrors.ErrMalformedKnots
			}
			if velocities == nil {
				velocities = make([]float64, len(r.Knots))
			}
			velocities[i] = row[2]
		}
	}

	params := trajectory.Params{}
	if r.Parameters != nil {
		params.VelMax = r.Parameters.VelMax
		params.AccMax = r.Parameters.AccMax
	}

	return trajectory.New(trajectory.TypeName(r.TypeName), r.Start, knots, velocities, params)
}

// Build validates and constructs the robot trajectory the record describes.
func (r RobotTrajectoryRecord) Build() (*robottrajectory.RobotTrajectory, error) {
	model, err := kinematics.NewModel(kinematics.ModelName(r.ModelName))
	if err != nil {
		return nil, err
	}
	targetSpace, err := parseSpace(r.TargetSpace)
	if err != nil {
		return nil, err
	}
	planificationSpace, err := parseSpace(r.PlanificationSpace)
	if err != nil {
		return nil, err
	}

	params := trajectory.Params{}
	if r.Parameters != nil {
		params.VelMax = r.Parameters.VelMax
		params.AccMax = r.Parameters.AccMax
	}

	return robottrajectory.New(
		model,
		r.Targets,
		true,
		nil,
		trajectory.TypeName(r.TrajectoryType),
		targetSpace,
		planificationSpace,
		r.Start,
		params,
	)
}

func parseSpace(s string) (robottrajectory.Space, error) {
	switch s {
	case "joint":
		return robottrajectory.SpaceJoint, nil
	case "operational":
		return robottrajectory.SpaceOperational, nil
	default:
		return "", xerrors.ErrUnsupportedSpace
	}
}
