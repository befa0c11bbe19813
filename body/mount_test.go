package body

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asdlei99/spot-micro-kinematics/legs"
	"github.com/asdlei99/spot-micro-kinematics/math3d"
)

func TestMountPlacement(t *testing.T) {
	type eg struct {
		id  LegID
		exp [3]float64
	}

	// With the body at the origin, the mounts sit exactly on the corners
	// of the footprint rectangle.
	fp := Footprint{Length: 2, Width: 1}
	examples := []eg{
		{RightBack, [3]float64{-1, 0, 0.5}},
		{RightFront, [3]float64{1, 0, 0.5}},
		{LeftFront, [3]float64{1, 0, -0.5}},
		{LeftBack, [3]float64{-1, 0, -0.5}},
	}

	for _, x := range examples {
		p := math3d.Translation(MountTransform(math3d.Identity(), x.id, fp))
		assert.InDelta(t, x.exp[0], p.X, 1e-12, "%s: X", x.id)
		assert.InDelta(t, x.exp[1], p.Y, 1e-12, "%s: Y", x.id)
		assert.InDelta(t, x.exp[2], p.Z, 1e-12, "%s: Z", x.id)
	}
}

func TestMountOrientation(t *testing.T) {
	// The quarter turn about Y points each mount's Z axis (the hip joint
	// axis) along the body's fore-aft axis, mirrored between the sides.
	fp := Footprint{Length: 2, Width: 1}

	for _, id := range []LegID{RightBack, RightFront, LeftFront, LeftBack} {
		m := MountTransform(math3d.Identity(), id, fp)
		exp := 1.0
		if id.Side() == legs.Left {
			exp = -1.0
		}
		assert.InDelta(t, exp, m.At(0, 2), 1e-12, "%s", id)
		assert.True(t, math3d.IsRigid(m, 1e-12), "%s", id)
	}
}

func TestLegSides(t *testing.T) {
	assert.Equal(t, legs.Right, RightBack.Side())
	assert.Equal(t, legs.Right, RightFront.Side())
	assert.Equal(t, legs.Left, LeftFront.Side())
	assert.Equal(t, legs.Left, LeftBack.Side())
}
