package kinematics

import "github.com/nrodrigues64/td3-trajectory/internal/xerrors"

// ModelName names the robot models spec.md §6 recognizes in a
// configuration record.
type ModelName string

const (
	ModelRT       ModelName = "RobotRT"
	ModelRRR      ModelName = "RobotRRR"
	ModelLegRobot ModelName = "LegRobot"
)

// NewModel builds the named robot model, or fails for an unrecognized name.
func NewModel(name ModelName) (Model, error) {
	switch name {
	case ModelRT:
		return NewRT(), nil
	case ModelRRR:
		return NewRRR(), nil
	case ModelLegRobot:
		return NewLegRobot(), nil
	default:
		return nil, xerrors.ErrUnknownRobotModel
	}
}
