// Package pose provides an immutable 3D position + rotation value.
package pose

import (
	"fmt"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"libepn/direction"
	"libepn/quatutil"
)

// Pose is a position in 3D space with a quaternion rotation.
//
// The Euler angles and normal are derived once when the Pose is built.
// Pose holds no references, so assigning a Pose copies it.
type Pose struct {
	position r3.Vec
	normal   r3.Vec

	rotation    quat.Number
	eulerAngles quatutil.EulerAngles
}

// Supplier produces a Pose on demand.
type Supplier func() Pose

// New builds a Pose from a position and a rotation. The rotation is stored
// as given, it is not normalized.
func New(position r3.Vec, rotation quat.Number) Pose {
	return Pose{
		position:    position,
		normal:      quatutil.RotateVector(position, rotation),
		rotation:    rotation,
		eulerAngles: quatutil.ToEuler(rotation),
	}
}

// FromYAngle builds a Pose rotated only about the Y axis (radians).
func FromYAngle(position r3.Vec, yAngle float64) Pose {
	return FromEuler(position, quatutil.EulerAngles{Beta: yAngle})
}

// FromEuler builds a Pose from Euler angles in radians.
func FromEuler(position r3.Vec, angles quatutil.EulerAngles) Pose {
	return New(position, quatutil.FromEuler(angles))
}

// LookingAt builds a Pose at position facing target.
func LookingAt(position, target r3.Vec) Pose {
	return FromEuler(position, direction.AnglesLookingAt(position, target))
}

// AtPosition builds a Pose with the zero quaternion as its rotation.
// The zero quaternion is not the identity (1, 0, 0, 0) and has no inverse.
// Its Alpha angle is NaN. RotateVector treats it as the identity, so the
// normal equals the position.
func AtPosition(position r3.Vec) Pose {
	return New(position, quat.Number{})
}

// FromRotation builds a Pose at the origin.
func FromRotation(rotation quat.Number) Pose {
	return New(r3.Vec{}, rotation)
}

func (p Pose) Position() r3.Vec { return p.position }

// Normal is the position rotated by the pose's own rotation.
func (p Pose) Normal() r3.Vec { return p.normal }

func (p Pose) Rotation() quat.Number { return p.rotation }

// EulerAngles returns the rotation as Euler angles. Precision may be lost
// near the gimbal-lock poles.
func (p Pose) EulerAngles() quatutil.EulerAngles { return p.eulerAngles }

func (p Pose) X() float64 { return p.position.X }
func (p Pose) Y() float64 { return p.position.Y }
func (p Pose) Z() float64 { return p.position.Z }

func (p Pose) QW() float64 { return p.rotation.Real }
func (p Pose) QX() float64 { return p.rotation.Imag }
func (p Pose) QY() float64 { return p.rotation.Jmag }
func (p Pose) QZ() float64 { return p.rotation.Kmag }

// RelativeTo returns other - p. Both the position and the quaternion are
// subtracted component-wise. The quaternion difference is not a relative
// rotation and is generally not unit length.
func (p Pose) RelativeTo(other Pose) Pose {
	return New(r3.Sub(other.position, p.position), quat.Sub(other.rotation, p.rotation))
}

// Equal reports whether every field matches exactly. Use it instead of ==,
// which never matches a pose whose Euler angles hold NaN.
func (p Pose) Equal(other Pose) bool {
	return sameVec(p.position, other.position) &&
		sameVec(p.normal, other.normal) &&
		sameQuat(p.rotation, other.rotation) &&
		p.eulerAngles.Equal(other.eulerAngles)
}

func sameVec(a, b r3.Vec) bool {
	return quatutil.Same(a.X, b.X) && quatutil.Same(a.Y, b.Y) && quatutil.Same(a.Z, b.Z)
}

func sameQuat(a, b quat.Number) bool {
	return quatutil.Same(a.Real, b.Real) && quatutil.Same(a.Imag, b.Imag) &&
		quatutil.Same(a.Jmag, b.Jmag) && quatutil.Same(a.Kmag, b.Kmag)
}

func (p Pose) String() string {
	return fmt.Sprintf("<Pose: [XYZ: (%.4f, %.4f, %.4f), Rads: %s]>",
		p.position.X, p.position.Y, p.position.Z, p.eulerAngles)
}
