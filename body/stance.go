package body

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/asdlei99/spot-micro-kinematics/legs"
	"github.com/asdlei99/spot-micro-kinematics/math3d"
)

// FootPoints holds one point per leg, in canonical leg order.
type FootPoints [4]r3.Vector

// JointAngles holds the solved angles for all four legs, in canonical leg
// order.
type JointAngles [4]legs.Angles

// LegDeltas maps world-frame foot targets into each leg's mount frame.
// This is the only place the two coordinate spaces meet: each mount pose
// is inverted with the exact rigid inverse and applied to the foot's
// homogeneous coordinate. The results feed straight into legs.Solve.
func LegDeltas(bodyPose *mat.Dense, feet FootPoints, fp Footprint) FootPoints {
	var out FootPoints
	for id := RightBack; id <= LeftBack; id++ {
		inv := math3d.RigidInverse(MountTransform(bodyPose, id, fp))
		out[id] = math3d.TransformPoint(inv, feet[id])
	}
	return out
}

// Stance solves the whole body at once: map the world-frame feet into
// each leg's frame, then run the inverse solver per leg with that side's
// knee branch.
func Stance(bodyPose *mat.Dense, feet FootPoints, fp Footprint, ln legs.Links) (JointAngles, error) {
	deltas := LegDeltas(bodyPose, feet, fp)

	var out JointAngles
	for id := RightBack; id <= LeftBack; id++ {
		a, err := legs.Solve(deltas[id], ln, id.Side())
		if err != nil {
			return JointAngles{}, errors.Wrapf(err, "%s leg", id)
		}
		out[id] = a
	}

	return out, nil
}

// NeutralStance returns the world-frame foot points of a square stand:
// each foot under its own mount corner, dropped by height and pushed
// outward by spread. Spread should be at least the hip link length or the
// feet end up inside the hip cylinder.
func NeutralStance(fp Footprint, height, spread float64) FootPoints {
	l := fp.Length / 2
	w := fp.Width/2 + spread

	return FootPoints{
		{X: -l, Y: -height, Z: w},
		{X: l, Y: -height, Z: w},
		{X: l, Y: -height, Z: -w},
		{X: -l, Y: -height, Z: -w},
	}
}

// PitchStance tilts the body by pitch radians about its width axis with
// no translation, keeps the given feet planted in the world frame, and
// solves all four legs. Positive pitch raises the front of the body.
func PitchStance(pitch float64, feet FootPoints, fp Footprint, ln legs.Links) (JointAngles, error) {
	pose := math3d.Homogeneous(math3d.RotZ(pitch), r3.Vector{})
	return Stance(pose, feet, fp, ln)
}
