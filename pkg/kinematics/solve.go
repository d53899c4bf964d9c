package kinematics

import "github.com/nrodrigues64/td3-trajectory/internal/xerrors"

// Method names the spec.md §4.3 public selector accepts.
type Method string

const (
	MethodAnalytical         Method = "analyticalMGI"
	MethodJacobianInverse    Method = "jacobianInverse"
	MethodJacobianTransposed Method = "jacobianTransposed"
)

// ComputeMGI routes a method name to the matching solver; unknown names
// fail with ErrUnknownIKMethod rather than a panic (spec.md §4.3, §7). An
// unreachable target under MethodAnalytical yields a nil q and a nil error.
func ComputeMGI(model Model, joints, target []float64, method Method, maxSteps int, seed *int64) ([]float64, error) {
	switch method {
	case MethodAnalytical:
		_, q := model.AnalyticalIK(target)
		return q, nil
	case MethodJacobianInverse:
		params := JacInverseParams{Seed: seed}
		if maxSteps > 0 {
			params.MaxSteps = maxSteps
		}
		return SolveJacobianInverse(model, joints, target, params), nil
	case MethodJacobianTransposed:
		params := JacTransposeParams{Seed: seed}
		if maxSteps > 0 {
			params.MaxEpochs = maxSteps
		}
		return SolveJacobianTranspose(model, joints, target, params), nil
	default:
		return nil, xerrors.ErrUnknownIKMethod
	}
}
