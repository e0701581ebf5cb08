package mathutil

import "gonum.org/v1/gonum/num/quat"

// QuatToMat3 converts a quaternion to a 3×3 rotation matrix.
// The zero quaternion maps to the identity, same as quatutil.RotateVector.
func QuatToMat3(q quat.Number) Mat3 {
	x, y, z, w := q.Imag, q.Jmag, q.Kmag, q.Real
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}
