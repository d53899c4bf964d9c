package kinematics

import "math"

// cosineLawTolerance below which only one solution is reported, matching
// the teacher's planar joint solvers.
const cosineLawTolerance = 1e-9

// planarSolution is one (alpha, beta) joint-angle pair reaching a planar
// 2-link target.
type planarSolution struct {
	Alpha, Beta float64
}

// cosineLaw solves the planar 2-link inverse kinematics problem: given a
// target (x, y) and link lengths L1, L2, returns the zero, one, or two
// (alpha, beta) solutions. The first solution returned is the one
// downstream callers default to (spec.md §4.1).
func cosineLaw(x, y, l1, l2 float64) []planarSolution {
	dist := math.Hypot(x, y)
	if dist < math.Abs(l1-l2) || dist > l1+l2 {
		return nil
	}

	phi := math.Atan2(y, x)
	alpha := math.Acos(clamp((l1*l1+dist*dist-l2*l2)/(2*l1*dist), -1, 1))
	beta := math.Acos(clamp((l1*l1+l2*l2-dist*dist)/(2*l1*l2), -1, 1))

	solutions := []planarSolution{{Alpha: phi + alpha, Beta: beta - math.Pi}}
	if math.Abs(alpha) > cosineLawTolerance {
		solutions = append(solutions, planarSolution{Alpha: phi - alpha, Beta: math.Pi - beta})
	}
	return solutions
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
