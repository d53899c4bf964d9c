package kinematics

import (
	"math"

	"github.com/nrodrigues64/td3-trajectory/pkg/mat"
	"github.com/nrodrigues64/td3-trajectory/pkg/spatial"
)

// LegRobot models a 4-revolute-joint leg whose operational space is 4-D
// (x, y, z, r32), where r32 is the (3,2) entry of the base-to-tool
// rotation. Constants per spec.md §3.
type LegRobot struct {
	w, l0, l1, l2, l3, l4   float64
	t01, t12, t23, t34, t4E mat.Matrix
}

var _ Model = (*LegRobot)(nil)

// NewLegRobot builds the leg model with its fixed link constants and transforms.
func NewLegRobot() *LegRobot {
	w := 0.05
	l0 := 1.0 + w/2
	l1 := 0.5
	l2 := 0.3
	l3 := 0.3
	l4 := 0.2 + w/2

	r := &LegRobot{w: w, l0: l0, l1: l1, l2: l2, l3: l3, l4: l4}
	r.t01 = spatial.Translation([3]float64{0, 0, l0})
	r.t12 = spatial.Translation([3]float64{w, l1, 0})
	r.t23 = spatial.Translation([3]float64{-w, l2, 0})
	r.t34 = spatial.Translation([3]float64{w, l3, 0})
	r.t4E = spatial.Translation([3]float64{0, l4, 0})
	return r
}

// JointNames returns ["q1", "q2", "q3", "q4"].
func (r *LegRobot) JointNames() []string { return []string{"q1", "q2", "q3", "q4"} }

// OperationalNames returns ["x", "y", "z", "r32"].
func (r *LegRobot) OperationalNames() []string { return []string{"x", "y", "z", "r32"} }

// JointLimits returns four joints each in [-π, π].
func (r *LegRobot) JointLimits() []Limits {
	lim := Limits{-math.Pi, math.Pi}
	return []Limits{lim, lim, lim, lim}
}

// OperationalLimits returns the reachable box/range from the chain's geometry.
func (r *LegRobot) OperationalLimits() []Limits {
	xyMax := math.Hypot(r.l1+r.l2+r.l3+r.l4, r.w)
	zOffset := math.Hypot(r.l2+r.l3+r.l4, r.w)
	zMin := r.l0 - zOffset
	zMax := r.l0 + zOffset
	return []Limits{{-xyMax, xyMax}, {-xyMax, xyMax}, {zMin, zMax}, {-1, 1}}
}

// BaseToTool composes the four revolute transforms in series.
func (r *LegRobot) BaseToTool(q []float64) mat.Matrix {
	return spatial.Mul(
		r.t01, spatial.RotZ(q[0]),
		r.t12, spatial.RotX(q[1]),
		r.t23, spatial.RotX(q[2]),
		r.t34, spatial.RotX(q[3]),
		r.t4E,
	)
}

// extractLegPose reads (x, y, z, r32) off a homogeneous transform, per spec.md §4.2.
func extractLegPose(h mat.Matrix) []float64 {
	return []float64{h[0][3], h[1][3], h[2][3], h[2][1]}
}

// Forward returns (x, y, z, r32).
func (r *LegRobot) Forward(q []float64) []float64 {
	return extractLegPose(r.BaseToTool(q))
}

// AnalyticalIK solves the leg chain: align q0 to the target's XY direction
// (accounting for the W link offset), split the cumulative wrist pitch
// sin(q1+q2+q3)=r32 into two branches, subtract the last link's
// contribution, then solve the remaining planar 2-link problem. Per
// spec.md §4.2.
func (r *LegRobot) AnalyticalIK(target []float64) (int, []float64) {
	xyNorm := math.Hypot(target[0], target[1])
	if xyNorm < r.w {
		return 0, nil
	}

	alpha := math.Atan2(target[1], target[0]) - math.Pi/2
	beta := math.Asin(r.w / xyNorm)

	var solutions [][]float64
	for _, q0 := range []float64{alpha + beta, math.Pi + alpha - beta} {
		targetInQ0 := []float64{target[0], target[1], target[2], 1}
		transform := spatial.Mul(spatial.RotZ(-q0), spatial.Invert(r.t01))
		targetIn1, err := transform.MulVec(targetInQ0)
		if err != nil {
			continue
		}
		yIn1 := targetIn1[1]
		zIn1 := targetIn1[2]

		asinR32 := math.Asin(clamp(target[3], -1, 1))
		for _, q123 := range []float64{asinR32, math.Pi - asinR32} {
			y3In1 := yIn1 - math.Cos(q123)*r.l4
			z3In1 := zIn1 - math.Sin(q123)*r.l4
			for _, q12 := range cosineLaw(y3In1-r.l1, z3In1, r.l2, r.l3) {
				q3 := q123 - q12.Alpha - q12.Beta
				solutions = append(solutions, []float64{q0, q12.Alpha, q12.Beta, q3})
			}
		}
	}

	if len(solutions) == 0 {
		return 0, nil
	}
	return len(solutions), solutions[0]
}

// Jacobian differentiates each joint's transform in turn and reads off the
// (x, y, z, r32) column of the resulting chain, per spec.md §4.2.
func (r *LegRobot) Jacobian(q []float64) mat.Matrix {
	j := mat.New(4, 4)

	rz := spatial.RotZ(q[0])
	rx1 := spatial.RotX(q[1])
	rx2 := spatial.RotX(q[2])
	rx3 := spatial.RotX(q[3])
	drz := spatial.DRotZ(q[0])
	drx1 := spatial.DRotX(q[1])
	drx2 := spatial.DRotX(q[2])
	drx3 := spatial.DRotX(q[3])

	set := func(col int, h mat.Matrix) {
		p := extractLegPose(h)
		for row := 0; row < 4; row++ {
			j[row][col] = p[row]
		}
	}

	set(0, spatial.Mul(r.t01, drz, r.t12, rx1, r.t23, rx2, r.t34, rx3, r.t4E))
	set(1, spatial.Mul(r.t01, rz, r.t12, drx1, r.t23, rx2, r.t34, rx3, r.t4E))
	set(2, spatial.Mul(r.t01, rz, r.t12, rx1, r.t23, drx2, r.t34, rx3, r.t4E))
	set(3, spatial.Mul(r.t01, rz, r.t12, rx1, r.t23, rx2, r.t34, drx3, r.t4E))

	return j
}
