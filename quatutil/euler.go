package quatutil

import (
	"fmt"
	"math"

	"libepn/internal/mathutil"
)

// EulerAngles holds a Z-Y-X rotation in radians.
// Alpha is applied about Z (yaw), then Beta about Y (pitch), then Gamma about X (roll).
//
// Equal compares exactly, with no tolerance. Callers that need a tolerance
// must compare the fields themselves.
type EulerAngles struct {
	Alpha float64
	Beta  float64
	Gamma float64
}

// NewEulerAngles builds EulerAngles from yaw, pitch and roll in radians.
func NewEulerAngles(alpha, beta, gamma float64) EulerAngles {
	return EulerAngles{Alpha: alpha, Beta: beta, Gamma: gamma}
}

// Equal reports whether all three angles are exactly equal. Two NaNs are
// equal here, so the angles of a zero quaternion still equal themselves.
func (e EulerAngles) Equal(o EulerAngles) bool {
	return Same(e.Alpha, o.Alpha) && Same(e.Beta, o.Beta) && Same(e.Gamma, o.Gamma)
}

// Same is exact float equality that also matches NaN with NaN.
func Same(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// Degrees returns the same angles converted to degrees.
func (e EulerAngles) Degrees() [3]float64 {
	return [3]float64{mathutil.Rad2Deg(e.Alpha), mathutil.Rad2Deg(e.Beta), mathutil.Rad2Deg(e.Gamma)}
}

func (e EulerAngles) String() string {
	return fmt.Sprintf("<[%.4f, %.4f, %.4f]>", e.Alpha, e.Beta, e.Gamma)
}

// StringDegrees formats the angles like String, in degrees.
func (e EulerAngles) StringDegrees() string {
	d := e.Degrees()
	return fmt.Sprintf("<[%.4f, %.4f, %.4f]>", d[0], d[1], d[2])
}
