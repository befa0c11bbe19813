package math3d

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// RotX returns the 3x3 matrix for a right-handed rotation of theta radians
// about the X axis.
func RotX(theta float64) *mat.Dense {
	c := math.Cos(theta)
	s := math.Sin(theta)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}

// RotY returns the 3x3 matrix for a right-handed rotation of theta radians
// about the Y axis.
func RotY(theta float64) *mat.Dense {
	c := math.Cos(theta)
	s := math.Sin(theta)
	return mat.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}

// RotZ returns the 3x3 matrix for a right-handed rotation of theta radians
// about the Z axis.
func RotZ(theta float64) *mat.Dense {
	c := math.Cos(theta)
	s := math.Sin(theta)
	return mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}
