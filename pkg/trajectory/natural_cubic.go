package trajectory

// NaturalCubicSpline solves the full 4(n-1)x4(n-1) system at construction
// with natural boundary conditions (zero second derivative at both ends),
// per spec.md §4.4.
type NaturalCubicSpline struct {
	boundedSpline
}

var _ Trajectory = (*NaturalCubicSpline)(nil)

// NewNaturalCubicSpline builds a NaturalCubicSpline from at least two knots.
func NewNaturalCubicSpline(start float64, knots []Knot) *NaturalCubicSpline {
	offsets := offsetsFromKnots(knots)
	values := make([]float64, len(knots))
	for i, k := range knots {
		values[i] = k.X
	}
	coeffs := solveGlobalCubic(offsets, values, boundaryNatural)
	return &NaturalCubicSpline{boundedSpline{
		start:   start,
		offsets: offsets,
		coeffs:  coeffs,
		xStart:  knots[0].X,
		xEnd:    knots[len(knots)-1].X,
	}}
}
