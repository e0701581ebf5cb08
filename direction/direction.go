// Package direction computes orientations that face one point from another.
package direction

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"libepn/quatutil"
)

// AnglesLookingAt returns the Euler angles at from that face to.
//
// Each angle is measured in its own plane: Alpha about Z on the X/Y plane,
// Beta about Y on the X/Z plane, Gamma about X on the Y/Z plane.
// When from == to every angle is atan2(0, 0) = 0, which names no real
// direction.
func AnglesLookingAt(from, to r3.Vec) quatutil.EulerAngles {
	dp := r3.Sub(to, from)

	return quatutil.EulerAngles{
		Alpha: math.Atan2(dp.Y, dp.X),
		Beta:  math.Atan2(dp.Z, dp.X),
		Gamma: math.Atan2(dp.Z, dp.Y),
	}
}
