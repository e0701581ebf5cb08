package mathutil

// Mat3 is a row-major 3×3 matrix; element (r, c) lives at index r*3+c.
type Mat3 [9]float64

func Mat3Identity() Mat3 {
	return Mat3{0: 1, 4: 1, 8: 1}
}

func (m Mat3) at(r, c int) float64 { return m[r*3+c] }

// Row returns row r as a vector.
func (m Mat3) Row(r int) Vec3 {
	return Vec3{m.at(r, 0), m.at(r, 1), m.at(r, 2)}
}

// Col returns column c as a vector.
func (m Mat3) Col(c int) Vec3 {
	return Vec3{m.at(0, c), m.at(1, c), m.at(2, c)}
}

// Mat3Mul returns a × b.
func Mat3Mul(a, b Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		row := a.Row(r)
		for c := 0; c < 3; c++ {
			out[r*3+c] = row.Dot(b.Col(c))
		}
	}
	return out
}

// MulVec3 returns m × v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{m.Row(0).Dot(v), m.Row(1).Dot(v), m.Row(2).Dot(v)}
}

// Det is the scalar triple product of the rows.
func (m Mat3) Det() float64 {
	a, b, c := m.Row(0), m.Row(1), m.Row(2)
	return a.Dot(b.Cross(c))
}

// Transpose is also the inverse when m is a rotation.
func (m Mat3) Transpose() Mat3 {
	var t Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			t[c*3+r] = m[r*3+c]
		}
	}
	return t
}
