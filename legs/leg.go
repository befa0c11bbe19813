// Package legs models one three-joint quadruped leg: the chain of
// transforms from the mount point out to the foot, and the closed-form
// inverse that turns a foot target back into joint angles.
package legs

// Links holds the link lengths of a leg, in the same unit as foot targets.
// Hip is the short offset between the hip axis and the plane of the two
// long links; Upper and Lower are the long links themselves.
type Links struct {
	Hip   float64
	Upper float64
	Lower float64
}

// Angles is one joint angle per link, in radians.
type Angles struct {
	Hip   float64
	Upper float64
	Lower float64
}

// Side selects the analytic branch of the inverse solver. Both knee
// solutions reach any reachable target, but the right pair and the left
// pair must bend in opposite directions or a leg folds into the body.
type Side int

const (
	Right Side = iota
	Left
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}
