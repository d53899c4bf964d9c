package mat

import "math"

// PseudoInverseTolerance is the relative threshold below which a singular
// value is treated as zero (and its contribution to the inverse dropped).
const PseudoInverseTolerance = 1e-9

// PseudoInverse computes the Moore-Penrose pseudo-inverse via SVD, which
// degrades gracefully at rank-deficient (singular) configurations instead
// of failing outright the way a normal-equations approach would.
func (m Matrix) PseudoInverse() (Matrix, error) {
	rows, cols := m.Rows(), m.Cols()
	transposed := false
	work := m
	if rows < cols {
		work = m.Transpose()
		rows, cols = cols, rows
		transposed = true
	}

	svd, err := work.SVD()
	if err != nil {
		return nil, err
	}

	maxS := 0.0
	for _, v := range svd.S {
		if v > maxS {
			maxS = v
		}
	}
	threshold := PseudoInverseTolerance * maxS

	// V * diag(1/s) * U^T
	v := svd.Vt.Transpose()
	ut := svd.U.Transpose()

	sInv := New(cols, cols)
	for i := 0; i < cols; i++ {
		if svd.S[i] > threshold {
			sInv[i][i] = 1 / svd.S[i]
		}
	}

	vsInv, err := v.Mul(sInv)
	if err != nil {
		return nil, err
	}
	pinv, err := vsInv.Mul(ut)
	if err != nil {
		return nil, err
	}

	if transposed {
		return pinv.Transpose(), nil
	}
	return pinv, nil
}

// Norm2 returns the Euclidean norm of a vector.
func Norm2(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
