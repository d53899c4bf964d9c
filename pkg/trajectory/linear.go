package trajectory

// LinearSpline interpolates linearly between consecutive knots: c0 = x_i,
// c1 = (x_{i+1}-x_i)/(t_{i+1}-t_i), per spec.md §4.4.
type LinearSpline struct {
	boundedSpline
}

var _ Trajectory = (*LinearSpline)(nil)

// NewLinearSpline builds a LinearSpline from at least two knots.
func NewLinearSpline(start float64, knots []Knot) *LinearSpline {
	offsets := offsetsFromKnots(knots)
	coeffs := make([][4]float64, len(knots)-1)
	for i := range coeffs {
		h := offsets[i+1] - offsets[i]
		slope := (knots[i+1].X - knots[i].X) / h
		coeffs[i] = [4]float64{knots[i].X, slope, 0, 0}
	}
	return &LinearSpline{boundedSpline{
		start:   start,
		offsets: offsets,
		coeffs:  coeffs,
		xStart:  knots[0].X,
		xEnd:    knots[len(knots)-1].X,
	}}
}
