package geometry

import (
	"math"

	"github.com/pkg/errors"
)

func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Orientation returns twice the signed area of the triangle (a, b, c): positive
// when c is left of a->b, negative when right, zero when collinear. It is
// exactly zero when c equals a or b.
func Orientation(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

var fullTurn = 2 * math.Pi
var lastBeforeFullTurn = math.Nextafter(fullTurn, 0)

// AngleToAxis returns the direction of p2-p1 relative to the positive x-axis,
// in [0, 2pi).
func AngleToAxis(p1, p2 Point) float64 {
	a := math.Atan2(p2.Y-p1.Y, p2.X-p1.X)
	if a < 0 {
		a += fullTurn
		if a >= fullTurn {
			a = lastBeforeFullTurn
		}
	}

	return a
}

// AngleBetween returns the unsigned angle in [0, pi] at b between the rays
// b->a and b->c.
func AngleBetween(a, b, c Point) (float64, error) {
	u := a.Sub(b)
	v := c.Sub(b)

	lenU := math.Hypot(u.X, u.Y)
	lenV := math.Hypot(v.X, v.Y)
	if lenU == 0 || lenV == 0 {
		return 0, errors.Wrapf(ErrDegenerate, "angle at %v between %v and %v", b, a, c)
	}

	cos := (u.X*v.X + u.Y*v.Y) / (lenU * lenV)
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos), nil
}
