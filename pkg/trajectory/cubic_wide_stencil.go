package trajectory

import "github.com/nrodrigues64/td3-trajectory/pkg/mat"

// CubicWideStencilSpline requires at least 4 knots. Each segment fits a
// single cubic through a 4-point stencil (the segment's own endpoints plus
// two neighbors) in a local frame centered at the segment start, per
// spec.md §4.4. The stencil choice: segment 0 uses knots 0..3, the last
// segment uses its last four knots, interior segments center the stencil
// on themselves (i-1..i+2).
type CubicWideStencilSpline struct {
	boundedSpline
}

var _ Trajectory = (*CubicWideStencilSpline)(nil)

// NewCubicWideStencilSpline builds a CubicWideStencilSpline from at least
// four knots.
func NewCubicWideStencilSpline(start float64, knots []Knot) *CubicWideStencilSpline {
	n := len(knots)
	offsets := offsetsFromKnots(knots)
	coeffs := make([][4]float64, n-1)
	for i := range coeffs {
		lo := stencilStart(i, n)
		coeffs[i] = fitStencilCubic(offsets, knots, lo, offsets[i])
	}
	return &CubicWideStencilSpline{boundedSpline{
		start:   start,
		offsets: offsets,
		coeffs:  coeffs,
		xStart:  knots[0].X,
		xEnd:    knots[n-1].X,
	}}
}

// stencilStart returns the first index of the 4-point window used for
// segment i, per spec.md §4.4.
func stencilStart(i, n int) int {
	switch {
	case i == 0:
		return 0
	case i == n-2:
		return i - 2
	default:
		return i - 1
	}
}

// fitStencilCubic solves the 4x4 Vandermonde system for the cubic passing
// through knots[lo:lo+4] in a local frame centered at origin.
func fitStencilCubic(offsets []float64, knots []Knot, lo int, origin float64) [4]float64 {
	vander := mat.New(4, 4)
	rhs := make([]float64, 4)
	for row := 0; row < 4; row++ {
		tau := offsets[lo+row] - origin
		p := 1.0
		for col := 0; col < 4; col++ {
			vander[row][col] = p
			p *= tau
		}
		rhs[row] = knots[lo+row].X
	}
	inv, err := vander.Inverse()
	if err != nil {
		return [4]float64{knots[lo].X, 0, 0, 0}
	}
	c, err := inv.MulVec(rhs)
	if err != nil {
		return [4]float64{knots[lo].X, 0, 0, 0}
	}
	return [4]float64{c[0], c[1], c[2], c[3]}
}
