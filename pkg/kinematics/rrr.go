package kinematics

import (
	"math"

	"github.com/nrodrigues64/td3-trajectory/pkg/mat"
	"github.com/nrodrigues64/td3-trajectory/pkg/spatial"
)

// rrrSingularityTolerance below which the target is considered to lie on
// the wrist's rotation axis (infinite solutions), per spec.md §4.2.
const rrrSingularityTolerance = 1e-9

// RRR models a 3-revolute-joint robot whose operational space is 3-D
// (x, y, z). Constants per spec.md §3.
type RRR struct {
	w, l0, l1, l2, l3  float64
	t01, t12, t23, t3E mat.Matrix
}

var _ Model = (*RRR)(nil)

// NewRRR builds the RRR model with its fixed link constants and transforms.
func NewRRR() *RRR {
	w := 0.05
	l0 := 1.0 + w/2
	l1 := 0.5
	l2 := 0.4
	l3 := 0.3 + w/2

	r := &RRR{w: w, l0: l0, l1: l1, l2: l2, l3: l3}
	r.t01 = spatial.Translation([3]float64{0, 0, l0})
	r.t12 = spatial.Translation([3]float64{0, l1, 0})
	r.t23 = spatial.Translation([3]float64{0, l2, 0})
	r.t3E = spatial.Translation([3]float64{0, l3, 0})
	return r
}

// JointNames returns ["q1", "q2", "q3"].
func (r *RRR) JointNames() []string { return []string{"q1", "q2", "q3"} }

// OperationalNames returns ["x", "y", "z"].
func (r *RRR) OperationalNames() []string { return []string{"x", "y", "z"} }

// JointLimits returns three joints each in [-π, π].
func (r *RRR) JointLimits() []Limits {
	return []Limits{{-math.Pi, math.Pi}, {-math.Pi, math.Pi}, {-math.Pi, math.Pi}}
}

// OperationalLimits returns the reachable box from the chain's geometry.
func (r *RRR) OperationalLimits() []Limits {
	maxXY := r.l1 + r.l2 + r.l3
	minZ := r.l0 - r.l2 - r.l3
	maxZ := r.l0 + r.l2 + r.l3
	return []Limits{{-maxXY, maxXY}, {-maxXY, maxXY}, {minZ, maxZ}}
}

// BaseToTool composes T_0_1(q0)*T_1_2(q1)*T_2_3(q2)*T_3_E.
func (r *RRR) BaseToTool(q []float64) mat.Matrix {
	t01 := spatial.Mul(r.t01, spatial.RotZ(q[0]))
	t12 := spatial.Mul(r.t12, spatial.RotX(q[1]))
	t23 := spatial.Mul(r.t23, spatial.RotX(q[2]))
	return spatial.Mul(t01, t12, t23, r.t3E)
}

// Forward returns (x, y, z) of the tool origin.
func (r *RRR) Forward(q []float64) []float64 {
	origin := spatial.Origin(r.BaseToTool(q))
	return []float64{origin[0], origin[1], origin[2]}
}

// AnalyticalIK solves the RRR chain by aligning q0 to the target direction
// (two candidate base rotations) and running the planar cosine-law solver
// on the remaining 2-link wrist, per spec.md §4.2.
func (r *RRR) AnalyticalIK(target []float64) (int, []float64) {
	singularity := math.Hypot(target[0], target[1]) < rrrSingularityTolerance

	theta := 0.0
	if !singularity {
		theta = math.Atan2(target[1], target[0]) - math.Pi/2
	}

	targetIn0 := []float64{target[0], target[1], target[2], 1}

	var solutions [][]float64
	for _, q0 := range []float64{theta, theta + math.Pi} {
		transform := spatial.Mul(spatial.Invert(r.t12), spatial.RotZ(-q0), spatial.Invert(r.t01))
		targetIn2a, err := transform.MulVec(targetIn0)
		if err != nil {
			continue
		}
		for _, q12 := range cosineLaw(targetIn2a[1], targetIn2a[2], r.l2, r.l3) {
			solutions = append(solutions, []float64{q0, q12.Alpha, q12.Beta})
		}
	}

	if len(solutions) == 0 {
		return 0, nil
	}
	if singularity {
		return -1, solutions[0]
	}
	return len(solutions), solutions[0]
}

// Jacobian differentiates each joint's transform in turn and reads off the
// (x, y, z) column of the resulting chain, per spec.md §4.2.
func (r *RRR) Jacobian(q []float64) mat.Matrix {
	j := mat.New(3, 3)

	rz := spatial.RotZ(q[0])
	rx1 := spatial.RotX(q[1])
	rx2 := spatial.RotX(q[2])
	drz := spatial.DRotZ(q[0])
	drx1 := spatial.DRotX(q[1])
	drx2 := spatial.DRotX(q[2])

	set := func(col int, h mat.Matrix) {
		o := spatial.Origin(h)
		j[0][col], j[1][col], j[2][col] = o[0], o[1], o[2]
	}

	set(0, spatial.Mul(r.t01, drz, r.t12, rx1, r.t23, rx2, r.t3E))
	set(1, spatial.Mul(r.t01, rz, r.t12, drx1, r.t23, rx2, r.t3E))
	set(2, spatial.Mul(r.t01, rz, r.t12, rx1, r.t23, drx2, r.t3E))

	return j
}
