// Package body places the four leg mount frames on the robot and bridges
// world-frame foot targets into each leg's own frame.
package body

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"github.com/asdlei99/spot-micro-kinematics/legs"
	"github.com/asdlei99/spot-micro-kinematics/math3d"
)

// LegID names one of the four legs, in canonical order.
type LegID int

const (
	RightBack LegID = iota
	RightFront
	LeftFront
	LeftBack
)

func (id LegID) String() string {
	switch id {
	case RightBack:
		return "right back"
	case RightFront:
		return "right front"
	case LeftFront:
		return "left front"
	case LeftBack:
		return "left back"
	}
	return "unknown"
}

// Side returns the solver branch for this leg.
func (id LegID) Side() legs.Side {
	if id == RightBack || id == RightFront {
		return legs.Right
	}
	return legs.Left
}

// Footprint is the rectangle the four mounts sit on the corners of,
// defined by the body length and width.
type Footprint struct {
	Length float64
	Width  float64
}

// MountTransform returns the world-frame pose of one leg's mount point:
// the body pose swung 90 degrees about the body Y axis (positive for the
// right pair, negative for the left) and pushed out to its corner of the
// footprint. The rotation and offset signs are a contract with the leg
// chain and the motor wiring; don't reorder them.
func MountTransform(bodyPose *mat.Dense, id LegID, fp Footprint) *mat.Dense {
	l := fp.Length / 2
	w := fp.Width / 2

	var local *mat.Dense
	switch id {
	case RightBack:
		local = math3d.Homogeneous(math3d.RotY(math.Pi/2), r3.Vector{X: -l, Z: w})
	case RightFront:
		local = math3d.Homogeneous(math3d.RotY(math.Pi/2), r3.Vector{X: l, Z: w})
	case LeftFront:
		local = math3d.Homogeneous(math3d.RotY(-math.Pi/2), r3.Vector{X: l, Z: -w})
	case LeftBack:
		local = math3d.Homogeneous(math3d.RotY(-math.Pi/2), r3.Vector{X: -l, Z: -w})
	default:
		panic("body: unknown leg")
	}

	return math3d.Compose(bodyPose, local)
}
