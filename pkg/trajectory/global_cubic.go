package trajectory

import "github.com/nrodrigues64/td3-trajectory/pkg/mat"

// boundaryKind selects the two trailing rows of the global cubic system,
// per spec.md §4.4.
type boundaryKind int

const (
	boundaryNatural boundaryKind = iota
	boundaryPeriodic
)

// solveGlobalCubic builds and solves the 4(n-1)x4(n-1) dense linear system
// coupling every segment's four coefficients: per-segment interpolation,
// C1/C2 continuity at interior knots, and two trailing boundary rows chosen
// by kind. Grounded in spec.md §4.4 and the teacher's preference for a
// dense solve at this scale (design note, spec.md §9).
func solveGlobalCubic(offsets []float64, values []float64, kind boundaryKind) [][4]float64 {
	n := len(offsets)
	segments := n - 1
	size := 4 * segments

	a := mat.New(size, size)
	b := make([]float64, size)

	row := 0
	col := func(seg, slot int) int { return 4*seg + slot }

	for i := 0; i < segments; i++ {
		h := offsets[i+1] - offsets[i]

		// x_i(0) = x_i
		a[row][col(i, 0)] = 1
		b[row] = values[i]
		row++

		// x_i(h) = x_{i+1}
		a[row][col(i, 0)] = 1
		a[row][col(i, 1)] = h
		a[row][col(i, 2)] = h * h
		a[row][col(i, 3)] = h * h * h
		b[row] = values[i+1]
		row++

		if i < segments-1 {
			// C1 continuity: x_i'(h) = x_{i+1}'(0)
			a[row][col(i, 1)] = 1
			a[row][col(i, 2)] = 2 * h
			a[row][col(i, 3)] = 3 * h * h
			a[row][col(i+1, 1)] = -1
			row++

			// C2 continuity: x_i''(h) = x_{i+1}''(0)
			a[row][col(i, 2)] = 2
			a[row][col(i, 3)] = 6 * h
			a[row][col(i+1, 2)] = -2
			row++
		}
	}

	lastSeg := segments - 1
	lastH := offsets[n-1] - offsets[n-2]

	switch kind {
	case boundaryNatural:
		// x_0''(0) = 0
		a[row][col(0, 2)] = 2
		row++
		// x_{n-2}''(h_{n-2}) = 0
		a[row][col(lastSeg, 2)] = 2
		a[row][col(lastSeg, 3)] = 6 * lastH
		row++
	case boundaryPeriodic:
		// x_0'(0) = x_{n-2}'(h_{n-2})
		a[row][col(0, 1)] = 1
		a[row][col(lastSeg, 1)] = -1
		a[row][col(lastSeg, 2)] = -2 * lastH
		a[row][col(lastSeg, 3)] = -3 * lastH * lastH
		row++
		// x_0''(0) = x_{n-2}''(h_{n-2})
		a[row][col(0, 2)] = 2
		a[row][col(lastSeg, 2)] = -2
		a[row][col(lastSeg, 3)] = -6 * lastH
		row++
	}

	inv, err := a.Inverse()
	if err != nil {
		// Degenerate knot spacing; fall back to zero-derivative Hermite
		// segments rather than propagating a singular-matrix error through
		// a constructor that spec.md treats as infallible for valid knots.
		coeffs := make([][4]float64, segments)
		for i := range coeffs {
			coeffs[i] = hermite(values[i], values[i+1], 0, 0, offsets[i+1]-offsets[i])
		}
		return coeffs
	}
	flat, err := inv.MulVec(b)
	if err != nil {
		coeffs := make([][4]float64, segments)
		for i := range coeffs {
			coeffs[i] = hermite(values[i], values[i+1], 0, 0, offsets[i+1]-offsets[i])
		}
		return coeffs
	}

	coeffs := make([][4]float64, segments)
	for i := range coeffs {
		coeffs[i] = [4]float64{flat[col(i, 0)], flat[col(i, 1)], flat[col(i, 2)], flat[col(i, 3)]}
	}
	return coeffs
}
