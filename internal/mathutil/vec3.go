package mathutil

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is the index-addressed vector the renderer works in.
// Index 0, 1, 2 are X, Y, Z.
type Vec3 [3]float64

func FromR3(v r3.Vec) Vec3 { return Vec3{v.X, v.Y, v.Z} }

func (v Vec3) R3() r3.Vec { return r3.Vec{X: v[0], Y: v[1], Z: v[2]} }

func (v Vec3) Add(o Vec3) Vec3 { return FromR3(r3.Add(v.R3(), o.R3())) }

func (v Vec3) Sub(o Vec3) Vec3 { return FromR3(r3.Sub(v.R3(), o.R3())) }

func (v Vec3) Scale(f float64) Vec3 { return FromR3(r3.Scale(f, v.R3())) }

func (v Vec3) Dot(o Vec3) float64 { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] }

func (v Vec3) Cross(o Vec3) Vec3 { return FromR3(r3.Cross(v.R3(), o.R3())) }

func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns the unit vector, or zero for a near-zero v.
func (v Vec3) Normalize() Vec3 {
	n := v.Len()
	if n < 1e-12 {
		return Vec3{}
	}
	return v.Scale(1 / n)
}
