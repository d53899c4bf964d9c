package trajectory

import "github.com/nrodrigues64/td3-trajectory/internal/xerrors"

// TypeName names the eight trajectory implementations a configuration
// record can select, per spec.md §6.
type TypeName string

const (
	TypeConstant              TypeName = "ConstantSpline"
	TypeLinear                TypeName = "LinearSpline"
	TypeCubicZeroDerivative   TypeName = "CubicZeroDerivativeSpline"
	TypeCubicWideStencil      TypeName = "CubicWideStencilSpline"
	TypeCubicCustomDerivative TypeName = "CubicCustomDerivativeSpline"
	TypeNaturalCubic          TypeName = "NaturalCubicSpline"
	TypePeriodicCubic         TypeName = "PeriodicCubicSpline"
	TypeTrapezoidalVelocity   TypeName = "TrapezoidalVelocity"
)

// Params carries the optional configuration-record parameters recognized
// by spec.md §6 ("parameters"); only TrapezoidalVelocity requires them.
type Params struct {
	VelMax float64
	AccMax float64
}

// New builds the trajectory implementation named by typeName from start,
// time-value knots and, for CubicCustomDerivativeSpline, a parallel slice
// of per-knot velocities. Returns a configuration error (spec.md §7) for an
// unknown type, too few knots, or missing vel_max/acc_max.
func New(typeName TypeName, start float64, knots []Knot, velocities []float64, params Params) (Trajectory, error) {
	if len(knots) < 2 {
		return nil, xerrors.ErrMalformedKnots
	}

	switch typeName {
	case TypeConstant:
		return NewConstantSpline(start, knots), nil
	case TypeLinear:
		return NewLinearSpline(start, knots), nil
	case TypeCubicZeroDerivative:
		return NewCubicZeroDerivativeSpline(start, knots), nil
	case TypeCubicWideStencil:
		if len(knots) < 4 {
			return nil, xerrors.ErrMalformedKnots
		}
		return NewCubicWideStencilSpline(start, knots), nil
	case TypeCubicCustomDerivative:
		if len(velocities) != len(knots) {
			return nil, xerrors.ErrMalformedKnots
		}
		kv := make([]KnotWithVelocity, len(knots))
		for i, k := range knots {
			kv[i] = KnotWithVelocity{T: k.T, X: k.X, V: velocities[i]}
		}
		return NewCubicCustomDerivativeSpline(start, kv), nil
	case TypeNaturalCubic:
		return NewNaturalCubicSpline(start, knots), nil
	case TypePeriodicCubic:
		return NewPeriodicCubicSpline(start, knots), nil
	case TypeTrapezoidalVelocity:
		if len(knots) != 2 {
			return nil, xerrors.ErrMalformedKnots
		}
		if params.VelMax == 0 || params.AccMax == 0 {
			return nil, xerrors.ErrMissingParameter
		}
		return NewTrapezoidalVelocity(start, knots[0].X, knots[1].X, params.VelMax, params.AccMax), nil
	default:
		return nil, xerrors.ErrUnknownTrajectoryType
	}
}
