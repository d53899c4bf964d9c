// Package spatial implements the homogeneous-transform primitives spec.md
// treats as an external linear-algebra dependency: 4×4 rigid-body
// placement, rotation about a principal axis, translation, their
// derivatives (for Jacobian columns), and inversion. Grounded in the
// teacher's pkg/core/math/mat/homogeneous.go and matrix3x3.go, ported from
// float32 to float64 and reduced to the Z/X axes the robot models use.
package spatial

import (
	"math"

	"github.com/nrodrigues64/td3-trajectory/pkg/mat"
)

// Identity returns the 4×4 identity transform.
func Identity() mat.Matrix {
	return mat.Eye(4)
}

// Translation builds the homogeneous transform that translates by t=(x,y,z).
func Translation(t [3]float64) mat.Matrix {
	m := mat.Eye(4)
	m[0][3] = t[0]
	m[1][3] = t[1]
	m[2][3] = t[2]
	return m
}

// DTranslation is the derivative of Translation(s*axis) with respect to s:
// a matrix whose translation column is axis and whose linear part is zero.
func DTranslation(axis [3]float64) mat.Matrix {
	m := mat.New(4, 4)
	m[0][3] = axis[0]
	m[1][3] = axis[1]
	m[2][3] = axis[2]
	return m
}

// RotZ builds the homogeneous transform that rotates by theta about Z.
func RotZ(theta float64) mat.Matrix {
	c, s := math.Cos(theta), math.Sin(theta)
	m := mat.Eye(4)
	m[0][0], m[0][1] = c, -s
	m[1][0], m[1][1] = s, c
	return m
}

// DRotZ is the derivative of RotZ(theta) with respect to theta.
func DRotZ(theta float64) mat.Matrix {
	c, s := math.Cos(theta), math.Sin(theta)
	m := mat.New(4, 4)
	m[0][0], m[0][1] = -s, -c
	m[1][0], m[1][1] = c, -s
	return m
}

// RotX builds the homogeneous transform that rotates by theta about X.
func RotX(theta float64) mat.Matrix {
	c, s := math.Cos(theta), math.Sin(theta)
	m := mat.Eye(4)
	m[1][1], m[1][2] = c, -s
	m[2][1], m[2][2] = s, c
	return m
}

// DRotX is the derivative of RotX(theta) with respect to theta.
func DRotX(theta float64) mat.Matrix {
	c, s := math.Cos(theta), math.Sin(theta)
	m := mat.New(4, 4)
	m[1][1], m[1][2] = -s, -c
	m[2][1], m[2][2] = c, -s
	return m
}

// Invert computes the inverse of a homogeneous transform using the closed
// form H^-1 = [R^T, -R^T*t; 0, 1] rather than a general matrix inverse.
func Invert(h mat.Matrix) mat.Matrix {
	out := mat.Eye(4)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = h[j][i]
		}
	}
	for i := 0; i < 3; i++ {
		var acc float64
		for j := 0; j < 3; j++ {
			acc += out[i][j] * h[j][3]
		}
		out[i][3] = -acc
	}
	return out
}

// Mul chains homogeneous transforms left to right, panicking only on
// dimension mismatches that indicate a programming error (all transforms
// here are 4×4 by construction).
func Mul(ms ...mat.Matrix) mat.Matrix {
	out := ms[0]
	for _, m := range ms[1:] {
		next, err := out.Mul(m)
		if err != nil {
			panic(err)
		}
		out = next
	}
	return out
}

// Origin extracts the translation column (x, y, z) of a homogeneous transform.
func Origin(h mat.Matrix) [3]float64 {
	return [3]float64{h[0][3], h[1][3], h[2][3]}
}
