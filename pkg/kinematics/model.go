// Package kinematics implements forward and inverse kinematics for the
// three robot topologies of spec.md §3 (RT, RRR, LegRobot): closed-form
// forward kinematics from homogeneous transforms, closed-form analytical
// inverse kinematics via the cosine law, and numerical inverse kinematics
// via Jacobian inverse / Jacobian transpose. Grounded in the teacher's
// kinematics/types.Model contract
// (x/math/control/kinematics/types/types.go) and joint implementations
// (x/math/control/kinematics/joints/planar).
package kinematics

import "github.com/nrodrigues64/td3-trajectory/pkg/mat"

// Limits is a [min, max] pair for one joint or operational dimension.
type Limits struct {
	Min, Max float64
}

// Model is the shared capability set every robot topology implements. Each
// variant (RT, RRR, LegRobot) is an independent type; there is no shared
// base struct, only this interface, matching spec.md §9's guidance against
// inheritance chains.
type Model interface {
	// JointNames lists the joints in the order State/Jacobian columns use.
	JointNames() []string
	// OperationalNames lists the operational dimensions in forward's order.
	OperationalNames() []string
	// JointLimits returns one Limits per joint.
	JointLimits() []Limits
	// OperationalLimits returns one Limits per operational dimension.
	OperationalLimits() []Limits
	// BaseToTool composes the homogeneous transform from base to tool frame.
	BaseToTool(q []float64) mat.Matrix
	// Forward computes the operational-space position for joint values q.
	Forward(q []float64) []float64
	// Jacobian computes the m×n (operational × joint) Jacobian at q.
	Jacobian(q []float64) mat.Matrix
	// AnalyticalIK solves for joint values reaching target analytically.
	// count is 0 (unreachable, q is nil), -1 (infinite solutions, q is one
	// representative), or the number of discrete branches found (q is the
	// first, per spec.md §4.1's ordering contract).
	AnalyticalIK(target []float64) (count int, q []float64)
}
