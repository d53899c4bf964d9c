package trajectory

// ConstantSpline holds a single value across the whole domain: each segment
// carries c0 = x_i, every other slot zero, per spec.md §4.4.
type ConstantSpline struct {
	boundedSpline
}

var _ Trajectory = (*ConstantSpline)(nil)

// NewConstantSpline builds a ConstantSpline from at least two knots.
func NewConstantSpline(start float64, knots []Knot) *ConstantSpline {
	offsets := offsetsFromKnots(knots)
	coeffs := make([][4]float64, len(knots)-1)
	for i := range coeffs {
		coeffs[i] = [4]float64{knots[i].X, 0, 0, 0}
	}
	return &ConstantSpline{boundedSpline{
		start:   start,
		offsets: offsets,
		coeffs:  coeffs,
		xStart:  knots[0].X,
		xEnd:    knots[len(knots)-1].X,
	}}
}
