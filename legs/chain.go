package legs

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"github.com/asdlei99/spot-micro-kinematics/math3d"
)

// The chain below follows the leg model of Şen, Bakırcıoğlu & Kalyoncu,
// "Inverse Kinematic Analysis Of A Quadruped Robot" (IJSTR, 2017), with
// two corrections to matrices that are misprinted in the paper. Those
// corrections are load-bearing: reverting either one makes an axis of the
// chain vanish.

// hipTransform is the joint 0 to 1 transform: a rotation of theta about
// the chain's Z axis, with the hip offset swung through the same angle
// rather than fixed. The paper prints the third rotation row as (1,0,0),
// which drops the Z axis; the diagrams show plain Z rotation, used here.
func hipTransform(theta, l1 float64) *mat.Dense {
	return math3d.Homogeneous(math3d.RotZ(theta), r3.Vector{
		X: -l1 * math.Cos(theta),
		Y: -l1 * math.Sin(theta),
	})
}

// swivelTransform is the fixed joint 1 to 2 reorientation that lines the
// axes up ahead of the upper-leg joint. No angle, no offset. The paper
// prints the third row as (0,0,1), which drops the Y axis; it should be
// (0,1,0).
func swivelTransform() *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		0, 0, -1, 0,
		-1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	})
}

// upperTransform is the joint 2 to 3 transform for the upper leg.
func upperTransform(theta, l2 float64) *mat.Dense {
	return math3d.Homogeneous(math3d.RotZ(theta), r3.Vector{
		X: l2 * math.Cos(theta),
		Y: l2 * math.Sin(theta),
	})
}

// lowerTransform is the joint 3 to 4 transform for the lower leg.
func lowerTransform(theta, l3 float64) *mat.Dense {
	return math3d.Homogeneous(math3d.RotZ(theta), r3.Vector{
		X: l3 * math.Cos(theta),
		Y: l3 * math.Sin(theta),
	})
}

// Forward composes the whole chain and returns the foot (point 4) pose in
// the leg mount frame (frame 0). Only the translation column means
// anything to callers; the rotation block just comes along for the ride.
func Forward(a Angles, ln Links) *mat.Dense {
	t := math3d.Compose(hipTransform(a.Hip, ln.Hip), swivelTransform())
	t = math3d.Compose(t, upperTransform(a.Upper, ln.Upper))
	return math3d.Compose(t, lowerTransform(a.Lower, ln.Lower))
}

// FootPosition runs forward kinematics and returns just the foot point.
func FootPosition(a Angles, ln Links) r3.Vector {
	return math3d.Translation(Forward(a, ln))
}
