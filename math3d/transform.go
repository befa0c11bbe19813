// Package math3d holds the rigid-body math that everything else is built
// on: rotation matrices, 4x4 homogeneous transforms, and the exact inverse
// for members of the rigid-motion group.
package math3d

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// debugChecks turns on the rigidity assertion in RigidInverse. It costs a
// determinant per call, so it stays off outside of debugging sessions.
const debugChecks = false

// Identity returns the 4x4 identity transform.
func Identity() *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Homogeneous builds a 4x4 rigid transform from a 3x3 rotation and a
// translation vector.
func Homogeneous(rot *mat.Dense, trans r3.Vector) *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		rot.At(0, 0), rot.At(0, 1), rot.At(0, 2), trans.X,
		rot.At(1, 0), rot.At(1, 1), rot.At(1, 2), trans.Y,
		rot.At(2, 0), rot.At(2, 1), rot.At(2, 2), trans.Z,
		0, 0, 0, 1,
	})
}

// Compose multiplies two transforms. Composition is associative but not
// commutative: Compose(a, b) applies b within a's frame.
func Compose(a, b *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Mul(a, b)
	return &out
}

// RigidInverse returns the exact inverse of a rigid transform: the
// rotation block is transposed and the translation becomes -R'·t. This is
// both faster and better conditioned than a general matrix inverse, but it
// is only correct for rigid transforms. Passing anything else is a caller
// bug, caught only when debugChecks is on.
func RigidInverse(t *mat.Dense) *mat.Dense {
	if debugChecks && !IsRigid(t, 1e-9) {
		panic("math3d: RigidInverse of a non-rigid transform")
	}

	r00, r01, r02 := t.At(0, 0), t.At(0, 1), t.At(0, 2)
	r10, r11, r12 := t.At(1, 0), t.At(1, 1), t.At(1, 2)
	r20, r21, r22 := t.At(2, 0), t.At(2, 1), t.At(2, 2)
	tx, ty, tz := t.At(0, 3), t.At(1, 3), t.At(2, 3)

	return mat.NewDense(4, 4, []float64{
		r00, r10, r20, -(r00*tx + r10*ty + r20*tz),
		r01, r11, r21, -(r01*tx + r11*ty + r21*tz),
		r02, r12, r22, -(r02*tx + r12*ty + r22*tz),
		0, 0, 0, 1,
	})
}

// TransformPoint applies t to the point p in homogeneous coordinates and
// returns the first three components of the result.
func TransformPoint(t *mat.Dense, p r3.Vector) r3.Vector {
	return r3.Vector{
		X: t.At(0, 0)*p.X + t.At(0, 1)*p.Y + t.At(0, 2)*p.Z + t.At(0, 3),
		Y: t.At(1, 0)*p.X + t.At(1, 1)*p.Y + t.At(1, 2)*p.Z + t.At(1, 3),
		Z: t.At(2, 0)*p.X + t.At(2, 1)*p.Y + t.At(2, 2)*p.Z + t.At(2, 3),
	}
}

// Translation returns the translation column of a transform.
func Translation(t *mat.Dense) r3.Vector {
	return r3.Vector{X: t.At(0, 3), Y: t.At(1, 3), Z: t.At(2, 3)}
}

// IsRigid reports whether t is 4x4 with an orthonormal rotation block of
// determinant +1 and a (0,0,0,1) bottom row, within tol.
func IsRigid(t *mat.Dense, tol float64) bool {
	rows, cols := t.Dims()
	if rows != 4 || cols != 4 {
		return false
	}

	rot := t.Slice(0, 3, 0, 3)
	var rrt mat.Dense
	rrt.Mul(rot, rot.T())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(rrt.At(i, j)-want) > tol {
				return false
			}
		}
	}

	if math.Abs(mat.Det(rot)-1) > tol {
		return false
	}

	for j, want := range []float64{0, 0, 0, 1} {
		if math.Abs(t.At(3, j)-want) > tol {
			return false
		}
	}

	return true
}
