package kinematics

import (
	"math"

	"github.com/nrodrigues64/td3-trajectory/pkg/mat"
	"github.com/nrodrigues64/td3-trajectory/pkg/spatial"
)

// RT models a 2-DoF revolute-translational robot whose operational space is
// the 2-D plane (x, y). Constants per spec.md §3.
type RT struct {
	w, l0, l1, l2, maxQ1 float64
	t01, t12, t2E        mat.Matrix
}

var _ Model = (*RT)(nil)

// NewRT builds the RT model with its fixed link constants and transforms.
func NewRT() *RT {
	w := 0.05
	l0 := 1.0
	l1 := 0.2
	l2 := 0.25 + w/2
	maxQ1 := 0.25

	r := &RT{w: w, l0: l0, l1: l1, l2: l2, maxQ1: maxQ1}
	r.t01 = spatial.Translation([3]float64{0, 0, l0 + w/2})
	r.t12 = spatial.Translation([3]float64{l1, 0, 0})
	r.t2E = spatial.Mul(spatial.Translation([3]float64{0, -l2, 0}), spatial.RotZ(math.Pi))
	return r
}

// JointNames returns ["q1", "q2"].
func (r *RT) JointNames() []string { return []string{"q1", "q2"} }

// OperationalNames returns ["x", "y"].
func (r *RT) OperationalNames() []string { return []string{"x", "y"} }

// JointLimits returns q1 ∈ [-π, π] revolute, q2 ∈ [0, 0.55] prismatic.
func (r *RT) JointLimits() []Limits {
	return []Limits{{-math.Pi, math.Pi}, {0, 0.55}}
}

// OperationalLimits returns the reachable box derived from the max
// extension of the chain.
func (r *RT) OperationalLimits() []Limits {
	maxDist := math.Hypot(r.l1+r.maxQ1, r.l2)
	return []Limits{{-maxDist, maxDist}, {-maxDist, maxDist}}
}

// BaseToTool composes T_0_1(q1) * T_1_2(q2) * T_2_E.
func (r *RT) BaseToTool(q []float64) mat.Matrix {
	t01 := spatial.Mul(r.t01, spatial.RotZ(q[0]))
	t12 := spatial.Mul(r.t12, spatial.Translation([3]float64{q[1], 0, 0}))
	return spatial.Mul(t01, t12, r.t2E)
}

// Forward returns (x, y) of the tool origin.
func (r *RT) Forward(q []float64) []float64 {
	origin := spatial.Origin(r.BaseToTool(q))
	return []float64{origin[0], origin[1]}
}

// AnalyticalIK inverts the RT chain in closed form per spec.md §4.2.
func (r *RT) AnalyticalIK(target []float64) (int, []float64) {
	dist := math.Hypot(target[0], target[1])
	minDist := math.Hypot(r.l1, r.l2)
	maxDist := math.Hypot(r.l1+r.maxQ1, r.l2)
	if dist < minDist || dist > maxDist {
		return 0, nil
	}

	q2 := math.Sqrt(dist*dist-r.l2*r.l2) - r.l1
	dirToTarget := math.Atan2(target[1], target[0])
	dirOffset := math.Atan2(r.l2, r.l1+q2)
	q1 := dirToTarget + dirOffset
	return 1, []float64{q1, q2}
}

// Jacobian differentiates each joint's transform in turn and reads off the
// (x, y) column of the resulting chain, per spec.md §4.2.
func (r *RT) Jacobian(q []float64) mat.Matrix {
	j := mat.New(2, 2)

	col0 := spatial.Mul(r.t01, spatial.DRotZ(q[0]), r.t12,
		spatial.Translation([3]float64{q[1], 0, 0}), r.t2E)
	origin0 := spatial.Origin(col0)
	j[0][0], j[1][0] = origin0[0], origin0[1]

	col1 := spatial.Mul(r.t01, spatial.RotZ(q[0]), r.t12,
		spatial.DTranslation([3]float64{1, 0, 0}), r.t2E)
	origin1 := spatial.Origin(col1)
	j[0][1], j[1][1] = origin1[0], origin1[1]

	return j
}
