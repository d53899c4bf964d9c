// Package xerrors collects the sentinel errors for the configuration
// taxonomy described in spec.md §7, plus the robot-trajectory query and
// conversion errors. Analytical IK reports an unreachable target as a
// value (zero solution count), and the numerical solvers recover from
// singularities by silent noise injection; only the robot-trajectory layer
// turns an unreachable target into ErrUnreachableTarget. Mirrors the
// teacher's kinematics/types.ErrInvalidDimensions sentinel-plus-wrap convention.
package xerrors

import "errors"

var (
	// ErrUnknownTrajectoryType is returned when a trajectory record names an
	// unsupported type_name.
	ErrUnknownTrajectoryType = errors.New("xerrors: unknown trajectory type")
	// ErrUnknownRobotModel is returned when a robot trajectory record names an
	// unsupported model_name.
	ErrUnknownRobotModel = errors.New("xerrors: unknown robot model")
	// ErrUnknownIKMethod is returned by the numerical-IK selector for an
	// unrecognized method name.
	ErrUnknownIKMethod = errors.New("xerrors: unknown inverse kinematics method")
	// ErrMissingParameter is returned when a required parameter (e.g.
	// vel_max/acc_max for TrapezoidalVelocity) is absent.
	ErrMissingParameter = errors.New("xerrors: missing required parameter")
	// ErrMalformedKnots is returned when a knot matrix has the wrong shape
	// or fewer than the minimum number of rows the trajectory type requires.
	ErrMalformedKnots = errors.New("xerrors: malformed knots")
	// ErrUnsupportedSpace is returned when target_space/planification_space
	// is not "joint" or "operational".
	ErrUnsupportedSpace = errors.New("xerrors: unsupported space")
	// ErrUnreachableTarget is returned when a robot trajectory's
	// operational→joint conversion cannot place every knot (analytical IK
	// returned zero solutions for at least one row).
	ErrUnreachableTarget = errors.New("xerrors: target unreachable by analytical inverse kinematics")
	// ErrDegreeNotAvailable is returned when a robot trajectory query asks
	// for a derivative order higher than position/velocity/acceleration.
	ErrDegreeNotAvailable = errors.New("xerrors: derivative order not available")
	// ErrSingularJacobian is returned when a cross-space velocity query
	// hits a Jacobian (or its pseudoinverse) that cannot be formed.
	ErrSingularJacobian = errors.New("xerrors: jacobian not available at this configuration")
)
