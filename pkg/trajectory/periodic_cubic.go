package trajectory

import "math"

// PeriodicCubicSpline solves the same global system as NaturalCubicSpline
// but with periodic boundary conditions tying the first and last segment,
// per spec.md §4.4. Evaluation wraps: value_at(t, d) = inner.value_at(start
// + (t-start) mod (end-start), d).
type PeriodicCubicSpline struct {
	inner boundedSpline
}

var _ Trajectory = (*PeriodicCubicSpline)(nil)

// NewPeriodicCubicSpline builds a PeriodicCubicSpline from at least two knots.
func NewPeriodicCubicSpline(start float64, knots []Knot) *PeriodicCubicSpline {
	offsets := offsetsFromKnots(knots)
	values := make([]float64, len(knots))
	for i, k := range knots {
		values[i] = k.X
	}
	coeffs := solveGlobalCubic(offsets, values, boundaryPeriodic)
	return &PeriodicCubicSpline{inner: boundedSpline{
		start:   start,
		offsets: offsets,
		coeffs:  coeffs,
		xStart:  knots[0].X,
		xEnd:    knots[len(knots)-1].X,
	}}
}

func (p *PeriodicCubicSpline) Start() float64 { return p.inner.Start() }

func (p *PeriodicCubicSpline) End() float64 { return p.inner.End() }

func (p *PeriodicCubicSpline) ValueAt(t float64, d int) float64 {
	start := p.inner.Start()
	period := p.inner.End() - start
	wrapped := start + math.Mod(t-start, period)
	if wrapped < start {
		wrapped += period
	}
	return p.inner.ValueAt(wrapped, d)
}
