package trajectory

// CubicCustomDerivativeSpline fits, per segment, the Hermite cubic using
// caller-supplied endpoint velocities v_i, v_{i+1}, per spec.md §4.4.
type CubicCustomDerivativeSpline struct {
	boundedSpline
}

var _ Trajectory = (*CubicCustomDerivativeSpline)(nil)

// NewCubicCustomDerivativeSpline builds a CubicCustomDerivativeSpline from
// at least two knots, each carrying a prescribed velocity.
func NewCubicCustomDerivativeSpline(start float64, knots []KnotWithVelocity) *CubicCustomDerivativeSpline {
	plain := make([]Knot, len(knots))
	for i, k := range knots {
		plain[i] = Knot{T: k.T, X: k.X}
	}
	offsets := offsetsFromKnots(plain)
	coeffs := make([][4]float64, len(knots)-1)
	for i := range coeffs {
		h := offsets[i+1] - offsets[i]
		coeffs[i] = hermite(knots[i].X, knots[i+1].X, knots[i].V, knots[i+1].V, h)
	}
	return &CubicCustomDerivativeSpline{boundedSpline{
		start:   start,
		offsets: offsets,
		coeffs:  coeffs,
		xStart:  knots[0].X,
		xEnd:    knots[len(knots)-1].X,
	}}
}
