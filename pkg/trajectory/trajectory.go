// Package trajectory implements the one-dimensional trajectory contract of
// spec.md §4.4: a shared value_at(t, d) interface with eight implementations
// ranging from constant/linear interpolation through global cubic splines to
// a trapezoidal-velocity profile. Grounded in the teacher's kinematics joint
// variant layout (closed interfaces over structs, no inheritance), and in
// original_source/trajectories.py for the exact per-implementation algebra.
package trajectory

// Trajectory is the shared one-dimensional contract. ValueAt(t, d) evaluates
// the d-th derivative of the trajectory at time t; Start and End bound the
// domain (End wraps for periodic trajectories, but reports the same value
// as the underlying knot span).
type Trajectory interface {
	ValueAt(t float64, d int) float64
	Start() float64
	End() float64
}

// Knot is a single (time, value) via-point.
type Knot struct {
	T, X float64
}

// KnotWithVelocity extends Knot with a prescribed derivative, used by
// CubicCustomDerivativeSpline.
type KnotWithVelocity struct {
	T, X, V float64
}

// evalPoly evaluates the d-th derivative of c0 + c1*u + c2*u^2 + c3*u^3 at
// local time u, per spec.md §4.4's derivative-shift rule.
func evalPoly(c [4]float64, u float64, d int) float64 {
	switch d {
	case 0:
		return c[0] + u*(c[1]+u*(c[2]+u*c[3]))
	case 1:
		return c[1] + u*(2*c[2]+u*3*c[3])
	case 2:
		return 2*c[2] + 6*c[3]*u
	case 3:
		return 6 * c[3]
	default:
		return 0
	}
}

// locateSegment returns the index i such that offsets[i] <= tau <= offsets[i+1],
// scanning linearly (design note: O(n) scan is acceptable at this scale).
// Interior ties resolve to the later segment (local u = 0); the outer boundary rule
// handles tau at the very first or last offset.
func locateSegment(offsets []float64, tau float64) int {
	last := len(offsets) - 2
	for i := 0; i < last; i++ {
		if tau < offsets[i+1] {
			return i
		}
	}
	return last
}

// hermite returns the coefficients of the cubic matching x(0)=x0, x(h)=x1,
// x'(0)=v0, x'(h)=v1, per the closed-form Hermite basis solution.
func hermite(x0, x1, v0, v1, h float64) [4]float64 {
	h2 := h * h
	h3 := h2 * h
	return [4]float64{
		x0,
		v0,
		(3*(x1-x0) - h*(2*v0+v1)) / h2,
		(2*(x0-x1) + h*(v0+v1)) / h3,
	}
}

// boundedSpline holds the common machinery shared by every non-periodic
// piecewise-cubic implementation: knot offsets relative to start, a start
// time, and per-segment coefficients.
type boundedSpline struct {
	start   float64
	offsets []float64
	coeffs  [][4]float64
	xStart  float64
	xEnd    float64
}

func (b *boundedSpline) Start() float64 { return b.start }

func (b *boundedSpline) End() float64 { return b.start + b.offsets[len(b.offsets)-1] }

func (b *boundedSpline) ValueAt(t float64, d int) float64 {
	if t <= b.start {
		if d == 0 {
			return b.xStart
		}
		return 0
	}
	end := b.End()
	if t >= end {
		if d == 0 {
			return b.xEnd
		}
		return 0
	}
	tau := t - b.start
	i := locateSegment(b.offsets, tau)
	u := tau - b.offsets[i]
	return evalPoly(b.coeffs[i], u, d)
}

func offsetsFromKnots(knots []Knot) []float64 {
	offsets := make([]float64, len(knots))
	t0 := knots[0].T
	for i, k := range knots {
		offsets[i] = k.T - t0
	}
	return offsets
}
