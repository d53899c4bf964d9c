package trajectory

// CubicZeroDerivativeSpline fits, per segment, the Hermite cubic with zero
// endpoint velocities: x(0)=x_i, x(Δt)=x_{i+1}, x'(0)=x'(Δt)=0.
type CubicZeroDerivativeSpline struct {
	boundedSpline
}

var _ Trajectory = (*CubicZeroDerivativeSpline)(nil)

// NewCubicZeroDerivativeSpline builds a CubicZeroDerivativeSpline from at
// least two knots.
func NewCubicZeroDerivativeSpline(start float64, knots []Knot) *CubicZeroDerivativeSpline {
	offsets := offsetsFromKnots(knots)
	coeffs := make([][4]float64, len(knots)-1)
	for i := range coeffs {
		h := offsets[i+1] - offsets[i]
		coeffs[i] = hermite(knots[i].X, knots[i+1].X, 0, 0, h)
	}
	return &CubicZeroDerivativeSpline{boundedSpline{
		start:   start,
		offsets: offsets,
		coeffs:  coeffs,
		xStart:  knots[0].X,
		xEnd:    knots[len(knots)-1].X,
	}}
}
