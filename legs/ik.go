package legs

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

var (
	// ErrUnreachable means the foot target lies outside the workspace the
	// link lengths can span. Callers get the error rather than a clamped
	// solution: a plausible-looking wrong joint command is worse than none.
	ErrUnreachable = errors.New("foot target out of reach")

	// ErrHipRadius means the target is inside the cylinder swept by the
	// hip offset, where the upper-leg angle has no real solution.
	ErrHipRadius = errors.New("foot target inside hip radius")
)

// Solve returns the joint angles that place the foot at p, expressed in
// the leg mount frame, such that Forward reproduces p. Closed form, no
// iteration. The side picks which of the two knee branches to take.
func Solve(p r3.Vector, ln Links, s Side) (Angles, error) {
	rr := p.X*p.X + p.Y*p.Y + p.Z*p.Z

	// Law-of-cosines term for the knee. Outside [-1,1] there is no real
	// knee angle: the target is beyond, or within, what the two long
	// links can span.
	d := (rr - ln.Hip*ln.Hip - ln.Upper*ln.Upper - ln.Lower*ln.Lower) /
		(2 * ln.Upper * ln.Lower)
	if d < -1 || d > 1 {
		return Angles{}, errors.Wrapf(ErrUnreachable, "D=%0.4f for (%0.4f, %0.4f, %0.4f)", d, p.X, p.Y, p.Z)
	}

	// Squared distance from the hip axis, less the hip offset. Negative
	// means the target is inside the hip cylinder.
	hr := p.X*p.X + p.Y*p.Y - ln.Hip*ln.Hip
	if hr < 0 {
		return Angles{}, errors.Wrapf(ErrHipRadius, "x^2+y^2=%0.4f < l1^2=%0.4f", p.X*p.X+p.Y*p.Y, ln.Hip*ln.Hip)
	}

	q3 := math.Atan2(math.Sqrt(1-d*d), d)
	if s == Left {
		q3 = math.Atan2(-math.Sqrt(1-d*d), d)
	}

	q2 := math.Atan2(p.Z, math.Sqrt(hr)) -
		math.Atan2(ln.Lower*math.Sin(q3), ln.Upper+ln.Lower*math.Cos(q3))

	// The hip equation as published has two sign errors (a stray minus on
	// y and a global negation); this is the corrected form.
	q1 := math.Atan2(p.Y, p.X) + math.Atan2(math.Sqrt(hr), -ln.Hip)

	return Angles{Hip: q1, Upper: q2, Lower: q3}, nil
}
