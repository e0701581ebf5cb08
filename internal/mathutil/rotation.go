package mathutil

import "math"

// axisRot builds a right-handed rotation by a radians about basis axis k.
// The two other axes (i, j) follow in cyclic order.
func axisRot(k int, a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	i, j := (k+1)%3, (k+2)%3

	var m Mat3
	m[k*3+k] = 1
	m[i*3+i], m[i*3+j] = c, -s
	m[j*3+i], m[j*3+j] = s, c
	return m
}

// RotX rotates about X by a radians.
func RotX(a float64) Mat3 { return axisRot(0, a) }

// RotY rotates about Y by a radians.
func RotY(a float64) Mat3 { return axisRot(1, a) }

// RotZ rotates about Z by a radians.
func RotZ(a float64) Mat3 { return axisRot(2, a) }

const degPerRad = 180 / math.Pi

func Deg2Rad(d float64) float64 { return d / degPerRad }

func Rad2Deg(r float64) float64 { return r * degPerRad }
