// Package robottrajectory composes one 1-D trajectory per planning
// dimension into a multi-dimensional robot trajectory, converting targets
// between joint and operational space at construction and converting
// values between spaces at query time via the model's Jacobian (and its
// pseudoinverse). Grounded in spec.md §4.5 and original_source/robots.py's
// RobotTrajectory class.
package robottrajectory

import (
	"github.com/nrodrigues64/td3-trajectory/internal/xerrors"
	"github.com/nrodrigues64/td3-trajectory/pkg/kinematics"
	"github.com/nrodrigues64/td3-trajectory/pkg/trajectory"
)

// Space names the two coordinate systems a robot trajectory can plan or
// query in, per spec.md §4.5.
type Space string

const (
	SpaceJoint       Space = "joint"
	SpaceOperational Space = "operational"
)

// Degree names the derivative orders RobotTrajectory.Value supports.
const (
	DegreePosition     = 0
	DegreeVelocity     = 1
	DegreeAcceleration = 2
)

// RobotTrajectory owns a model and one 1-D trajectory per planning-space
// dimension. It is immutable after construction.
type RobotTrajectory struct {
	model              kinematics.Model
	dims               []trajectory.Trajectory
	planificationSpace Space
	start, end         float64
}

// New builds a RobotTrajectory from a model, a target matrix (one row per
// knot; each row is [t, d0, d1, ...] when hasTime is true, else [d0, d1,
// ...]), the trajectory type for every planning dimension, the space the
// targets are expressed in, the planning space, a start offset and
// parameters (used only by TrapezoidalVelocity). Rows are converted
// between spaces at construction when targetSpace != planificationSpace,
// per spec.md §4.5.
func New(
	model kinematics.Model,
	targets [][]float64,
	hasTime bool,
	velocities [][]float64,
	trajType trajectory.TypeName,
	targetSpace, planificationSpace Space,
	start float64,
	params trajectory.Params,
) (*RobotTrajectory, error) {
	targetDim, err := dimension(model, targetSpace)
	if err != nil {
		return nil, err
	}
	planDim, err := dimension(model, planificationSpace)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, xerrors.ErrMalformedKnots
	}
	expectedCols := targetDim
	if hasTime {
		expectedCols++
	}
	for _, row := range targets {
		if len(row) != expectedCols {
			return nil, xerrors.ErrMalformedKnots
		}
	}

	converted := make([][]float64, len(targets))
	for i, row := range targets {
		vec := row
		if hasTime {
			vec = row[1:]
		}
		if targetSpace != planificationSpace {
			vec, err = convertPosition(model, vec, targetSpace)
			if err != nil {
				return nil, err
			}
		}
		converted[i] = vec
	}

	dims := make([]trajectory.Trajectory, planDim)
	end := start
	for d := 0; d < planDim; d++ {
		knots := make([]trajectory.Knot, len(targets))
		for i := range targets {
			t := float64(i)
			if hasTime {
				t = targets[i][0]
			}
			knots[i] = trajectory.Knot{T: t, X: converted[i][d]}
		}
		var vel []float64
		if velocities != nil {
			vel = make([]float64, len(velocities))
			for i := range velocities {
				vel[i] = velocities[i][d]
			}
		}
		traj, err := trajectory.New(trajType, start, knots, vel, params)
		if err != nil {
			return nil, err
		}
		dims[d] = traj
		if traj.End() > end {
			end = traj.End()
		}
	}

	return &RobotTrajectory{
		model:              model,
		dims:               dims,
		planificationSpace: planificationSpace,
		start:              start,
		end:                end,
	}, nil
}

// Start returns the trajectory's start time.
func (rt *RobotTrajectory) Start() float64 { return rt.start }

// End returns max_i dims[i].End().
func (rt *RobotTrajectory) End() float64 { return rt.end }

// PlanificationSpace returns the space the underlying per-dimension
// trajectories are stored in.
func (rt *RobotTrajectory) PlanificationSpace() Space { return rt.planificationSpace }

// DimensionCount returns the number of scalar dimensions space has for this
// trajectory's model (joint count or operational dimension count).
func (rt *RobotTrajectory) DimensionCount(space Space) (int, error) {
	return dimension(rt.model, space)
}

func dimension(model kinematics.Model, space Space) (int, error) {
	switch space {
	case SpaceJoint:
		return len(model.JointNames()), nil
	case SpaceOperational:
		return len(model.OperationalNames()), nil
	default:
		return 0, xerrors.ErrUnsupportedSpace
	}
}

// convertPosition maps a vector expressed in fromSpace into the model's
// other space, via forward kinematics (joint→operational) or the first
// analytical IK solution (operational→joint), per spec.md §4.5.
func convertPosition(model kinematics.Model, vec []float64, fromSpace Space) ([]float64, error) {
	switch fromSpace {
	case SpaceJoint:
		return model.Forward(vec), nil
	case SpaceOperational:
		count, q := model.AnalyticalIK(vec)
		if count == 0 {
			return nil, xerrors.ErrUnreachableTarget
		}
		return q, nil
	default:
		return nil, xerrors.ErrUnsupportedSpace
	}
}

// positionVector samples every planning dimension's degree-th derivative at t.
func (rt *RobotTrajectory) positionVector(t float64, degree int) []float64 {
	v := make([]float64, len(rt.dims))
	for i, d := range rt.dims {
		v[i] = d.ValueAt(t, degree)
	}
	return v
}

// Value answers a (t, dim, degree, space) query, per spec.md §4.5.
func (rt *RobotTrajectory) Value(t float64, dim int, degree int, space Space) (float64, error) {
	if degree > DegreeAcceleration {
		return 0, xerrors.ErrDegreeNotAvailable
	}
	if space == rt.planificationSpace {
		if dim < 0 || dim >= len(rt.dims) {
			return 0, xerrors.ErrUnsupportedSpace
		}
		return rt.dims[dim].ValueAt(t, degree), nil
	}

	switch degree {
	case DegreePosition, DegreeAcceleration:
		vec := rt.positionVector(t, degree)
		converted, err := convertPosition(rt.model, vec, rt.planificationSpace)
		if err != nil {
			return 0, err
		}
		if dim < 0 || dim >= len(converted) {
			return 0, xerrors.ErrUnsupportedSpace
		}
		return converted[dim], nil
	case DegreeVelocity:
		return rt.crossSpaceVelocity(t, dim, space)
	default:
		return 0, xerrors.ErrDegreeNotAvailable
	}
}

// crossSpaceVelocity implements spec.md §4.5's Jacobian (joint→operational)
// and pseudoinverse-Jacobian (operational→joint) velocity conversion.
func (rt *RobotTrajectory) crossSpaceVelocity(t float64, dim int, space Space) (float64, error) {
	q := rt.positionVector(t, DegreePosition)
	qdot := rt.positionVector(t, DegreeVelocity)

	switch {
	case rt.planificationSpace == SpaceJoint && space == SpaceOperational:
		j := rt.model.Jacobian(q)
		result, err := j.MulVec(qdot)
		if err != nil {
			return 0, xerrors.ErrSingularJacobian
		}
		if dim < 0 || dim >= len(result) {
			return 0, xerrors.ErrUnsupportedSpace
		}
		return result[dim], nil
	case rt.planificationSpace == SpaceOperational && space == SpaceJoint:
		count, qHat := rt.model.AnalyticalIK(q)
		if count == 0 {
			return 0, xerrors.ErrUnreachableTarget
		}
		j := rt.model.Jacobian(qHat)
		pinv, err := j.PseudoInverse()
		if err != nil {
			return 0, xerrors.ErrSingularJacobian
		}
		result, err := pinv.MulVec(qdot)
		if err != nil {
			return 0, xerrors.ErrSingularJacobian
		}
		if dim < 0 || dim >= len(result) {
			return 0, xerrors.ErrUnsupportedSpace
		}
		return result[dim], nil
	default:
		return 0, xerrors.ErrUnsupportedSpace
	}
}

