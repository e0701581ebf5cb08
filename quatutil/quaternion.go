// Package quatutil converts between Z-Y-X Euler angles and quaternions and
// rotates vectors by quaternions.
//
// Quaternions are gonum quat.Number values: Real is q0, Imag/Jmag/Kmag are
// q1/q2/q3. None of the functions require unit length input.
package quatutil

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// PoleThreshold is the fraction of the squared norm above which ToEuler
// treats a quaternion as sitting on a gimbal-lock pole.
const PoleThreshold = 0.499

// FromEuler converts Euler angles to a quaternion.
func FromEuler(angles EulerAngles) quat.Number {
	return FromEulerAngles(angles.Alpha, angles.Beta, angles.Gamma)
}

// FromEulerAngles converts Z-Y-X Euler angles (radians) to a quaternion using
// the half-angle product form.
func FromEulerAngles(alpha, beta, gamma float64) quat.Number {
	cy, sy := math.Cos(alpha*0.5), math.Sin(alpha*0.5)
	cp, sp := math.Cos(beta*0.5), math.Sin(beta*0.5)
	cr, sr := math.Cos(gamma*0.5), math.Sin(gamma*0.5)

	return quat.Number{
		Real: cr*cp*cy + sr*sp*sy,
		Imag: sr*cp*cy - cr*sp*sy,
		Jmag: cr*sp*cy + sr*cp*sy,
		Kmag: cr*cp*sy - sr*sp*cy,
	}
}

// ToEuler converts a quaternion to Z-Y-X Euler angles in radians.
//
// The squared norm scales the pole test and the asin argument, so a
// non-normalized quaternion gives the same angles as its unit form.
//
// Near the poles precision is lost: several quaternions map to the same
// angles, and feeding the result back through FromEuler gives an equivalent
// but not bit-identical rotation. On a pole the fixed 90° lands in Alpha,
// not Beta, and Gamma is zero.
func ToEuler(q quat.Number) EulerAngles {
	sqw := q.Real * q.Real
	sqx := q.Imag * q.Imag
	sqy := q.Jmag * q.Jmag
	sqz := q.Kmag * q.Kmag

	// 1 for a unit quaternion
	correction := sqx + sqy + sqz + sqw

	test := q.Imag*q.Jmag + q.Kmag*q.Real

	// North pole
	if test > PoleThreshold*correction {
		return EulerAngles{Alpha: math.Pi / 2, Beta: 2 * math.Atan2(q.Imag, q.Real), Gamma: 0}
	}

	// South pole
	if test < -PoleThreshold*correction {
		return EulerAngles{Alpha: math.Pi / 2, Beta: -2 * math.Atan2(q.Imag, q.Real), Gamma: 0}
	}

	return EulerAngles{
		Alpha: math.Asin(2 * test / correction),
		Beta:  math.Atan2(2*q.Jmag*q.Real-2*q.Imag*q.Kmag, sqx-sqy-sqz+sqw),
		Gamma: math.Atan2(2*q.Imag*q.Real-2*q.Jmag*q.Kmag, -sqx+sqy-sqz+sqw),
	}
}

// RotateVector rotates v by q.
//
// A non-unit q rotates and scales at once. The zero quaternion leaves v
// unchanged.
func RotateVector(v r3.Vec, q quat.Number) r3.Vec {
	n1 := 2 * q.Imag
	n2 := 2 * q.Jmag
	n3 := 2 * q.Kmag
	n4 := q.Imag * n1
	n5 := q.Jmag * n2
	n6 := q.Kmag * n3
	n7 := q.Imag * n2
	n8 := q.Imag * n3
	n9 := q.Jmag * n3
	n10 := q.Real * n1
	n11 := q.Real * n2
	n12 := q.Real * n3

	return r3.Vec{
		X: (1-(n5+n6))*v.X + (n7-n12)*v.Y + (n8+n11)*v.Z,
		Y: (n7+n12)*v.X + (1-(n4+n6))*v.Y + (n9-n10)*v.Z,
		Z: (n8-n11)*v.X + (n9+n10)*v.Y + (1-(n4+n5))*v.Z,
	}
}
