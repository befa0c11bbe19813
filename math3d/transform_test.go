package math3d

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func assertMatInDelta(t *testing.T, exp, act *mat.Dense, delta float64) {
	t.Helper()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, exp.At(i, j), act.At(i, j), delta, "element (%d,%d)", i, j)
		}
	}
}

func TestRigidInverseRoundTrip(t *testing.T) {
	examples := []*mat.Dense{
		Identity(),
		Homogeneous(RotX(0.3), r3.Vector{X: 1, Y: 2, Z: 3}),
		Homogeneous(RotY(-1.1), r3.Vector{X: -2, Y: 0.5, Z: 4}),
		Homogeneous(RotZ(2.8), r3.Vector{Y: -7}),
		Compose(
			Homogeneous(RotX(0.3), r3.Vector{X: 1, Y: 2, Z: 3}),
			Homogeneous(RotY(-1.1), r3.Vector{X: -2, Y: 0.5, Z: 4}),
		),
	}

	for _, tf := range examples {
		assertMatInDelta(t, Identity(), Compose(tf, RigidInverse(tf)), 1e-12)
		assertMatInDelta(t, Identity(), Compose(RigidInverse(tf), tf), 1e-12)
	}
}

func TestRigidInversePoint(t *testing.T) {
	tf := Compose(
		Homogeneous(RotZ(0.7), r3.Vector{X: 0.2, Y: -0.4, Z: 1}),
		Homogeneous(RotY(-0.2), r3.Vector{Z: -3}),
	)
	p := r3.Vector{X: 5, Y: -2, Z: 0.5}

	back := TransformPoint(RigidInverse(tf), TransformPoint(tf, p))
	assert.InDelta(t, p.X, back.X, 1e-12)
	assert.InDelta(t, p.Y, back.Y, 1e-12)
	assert.InDelta(t, p.Z, back.Z, 1e-12)
}

func TestComposeOrder(t *testing.T) {
	a := Homogeneous(RotZ(math.Pi/2), r3.Vector{X: 1})
	b := Homogeneous(RotZ(0), r3.Vector{Y: 1})

	ab := TransformPoint(Compose(a, b), r3.Vector{})
	ba := TransformPoint(Compose(b, a), r3.Vector{})

	assert.InDelta(t, 0, ab.X, 1e-12)
	assert.InDelta(t, 0, ab.Y, 1e-12)
	assert.InDelta(t, 1, ba.X, 1e-12)
	assert.InDelta(t, 1, ba.Y, 1e-12)
}

func TestTransformPoint(t *testing.T) {
	tf := Homogeneous(RotZ(0), r3.Vector{X: 10, Y: 20, Z: 30})
	act := TransformPoint(tf, r3.Vector{X: 1, Y: 2, Z: 3})

	assert.InDelta(t, 11, act.X, 1e-12)
	assert.InDelta(t, 22, act.Y, 1e-12)
	assert.InDelta(t, 33, act.Z, 1e-12)
}

func TestIsRigid(t *testing.T) {
	assert.True(t, IsRigid(Identity(), 1e-12))
	assert.True(t, IsRigid(Homogeneous(RotY(0.4), r3.Vector{X: 9}), 1e-12))

	// Scaling is not rigid.
	scaled := mat.NewDense(4, 4, []float64{
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		0, 0, 0, 1,
	})
	assert.False(t, IsRigid(scaled, 1e-12))

	// A mirror has determinant -1.
	mirror := mat.NewDense(4, 4, []float64{
		-1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	assert.False(t, IsRigid(mirror, 1e-12))

	// Bottom row must be (0,0,0,1).
	sheared := Identity()
	sheared.Set(3, 0, 0.1)
	assert.False(t, IsRigid(sheared, 1e-12))
}
