package quatutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"libepn/internal/mathutil"
)

func assertQuatInDelta(t *testing.T, want, got quat.Number, delta float64) {
	t.Helper()
	assert.InDelta(t, want.Real, got.Real, delta, "real")
	assert.InDelta(t, want.Imag, got.Imag, delta, "imag")
	assert.InDelta(t, want.Jmag, got.Jmag, delta, "jmag")
	assert.InDelta(t, want.Kmag, got.Kmag, delta, "kmag")
}

func assertVecInDelta(t *testing.T, want, got r3.Vec, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x")
	assert.InDelta(t, want.Y, got.Y, delta, "y")
	assert.InDelta(t, want.Z, got.Z, delta, "z")
}

func TestFromEulerAngles_QuarterYaw(t *testing.T) {
	q := FromEulerAngles(mathutil.Deg2Rad(90), 0, 0)
	assertQuatInDelta(t, quat.Number{Real: 0.7071065431725605, Kmag: 0.7071070192004544}, q, 0.0001)
}

func TestFromEulerAngles_Identity(t *testing.T) {
	assert.Equal(t, quat.Number{Real: 1}, FromEulerAngles(0, 0, 0))
}

func TestFromEuler_MatchesFromEulerAngles(t *testing.T) {
	a := NewEulerAngles(0.3, -1.1, 2.4)
	assert.Equal(t, FromEulerAngles(0.3, -1.1, 2.4), FromEuler(a))
}

func TestFromEulerAngles_UnitLength(t *testing.T) {
	for _, a := range []EulerAngles{
		{0.1, 0.2, 0.3},
		{-3, 1.5, 0.7},
		{10, -20, 30},
	} {
		assert.InDelta(t, 1.0, quat.Abs(FromEuler(a)), 1e-12, "%v", a)
	}
}

func TestToEuler_Reference(t *testing.T) {
	a := ToEuler(quat.Number{Real: -0.2706, Imag: 0.65328, Jmag: 0.2706, Kmag: -0.65328})
	d := a.Degrees()

	assert.InDelta(t, 45, d[0], 0.001, "alpha")
	assert.InDelta(t, 90, d[1], 0.001, "beta")
	// +180 and -180 are the same roll
	assert.InDelta(t, 180, math.Abs(d[2]), 0.001, "gamma")
}

func TestToEuler_SingleAxisRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		angle EulerAngles
	}{
		{"yaw", EulerAngles{Alpha: 0.3}},
		{"negative yaw", EulerAngles{Alpha: -1.2}},
		{"pitch", EulerAngles{Beta: 0.3}},
		{"large pitch", EulerAngles{Beta: 2.9}},
		{"negative pitch", EulerAngles{Beta: -1.7}},
		{"roll", EulerAngles{Gamma: 0.3}},
		{"negative roll", EulerAngles{Gamma: -2.2}},
		{"zero", EulerAngles{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToEuler(FromEuler(tt.angle))
			assert.InDelta(t, tt.angle.Alpha, got.Alpha, 1e-6, "alpha")
			assert.InDelta(t, tt.angle.Beta, got.Beta, 1e-6, "beta")
			assert.InDelta(t, tt.angle.Gamma, got.Gamma, 1e-6, "gamma")
		})
	}
}

// ToEuler inverts the composition heading(Y) * attitude(Z) * bank(X).
func TestToEuler_InvertsYZXComposition(t *testing.T) {
	for _, a := range []EulerAngles{
		{0.3, 0.2, 0.1},
		{0.5, 1.0, -0.4},
		{-1.2, 2.5, 3.0},
		{1.4, -3.0, -1.5},
	} {
		q := quat.Mul(quat.Mul(FromEulerAngles(0, a.Beta, 0), FromEulerAngles(a.Alpha, 0, 0)), FromEulerAngles(0, 0, a.Gamma))
		got := ToEuler(q)
		assert.InDelta(t, a.Alpha, got.Alpha, 1e-6, "alpha %v", a)
		assert.InDelta(t, a.Beta, got.Beta, 1e-6, "beta %v", a)
		assert.InDelta(t, a.Gamma, got.Gamma, 1e-6, "gamma %v", a)
	}
}

func TestToEuler_NonNormalized(t *testing.T) {
	q := quat.Mul(FromEulerAngles(0, 0.4, 0), FromEulerAngles(0.7, 0, 0))
	want := ToEuler(q)
	got := ToEuler(quat.Scale(3.5, q))

	assert.InDelta(t, want.Alpha, got.Alpha, 1e-9)
	assert.InDelta(t, want.Beta, got.Beta, 1e-9)
	assert.InDelta(t, want.Gamma, got.Gamma, 1e-9)
}

func TestToEuler_NorthPole(t *testing.T) {
	q := FromEulerAngles(math.Pi/2, 0, 0)
	got := ToEuler(q)

	assert.Equal(t, math.Pi/2, got.Alpha)
	assert.InDelta(t, 2*math.Atan2(q.Imag, q.Real), got.Beta, 1e-12)
	assert.Equal(t, 0.0, got.Gamma)
}

func TestToEuler_SouthPoleKeepsPositiveAlpha(t *testing.T) {
	q := quat.Number{Real: 0.5, Imag: 0.5, Jmag: -0.5, Kmag: -0.5}
	got := ToEuler(q)

	assert.Equal(t, math.Pi/2, got.Alpha)
	assert.InDelta(t, -math.Pi/2, got.Beta, 1e-12)
	assert.Equal(t, 0.0, got.Gamma)
}

func TestToEuler_PoleThresholdScalesWithNorm(t *testing.T) {
	q := FromEulerAngles(math.Pi/2, 0, 0)
	scaled := quat.Scale(10, q)

	assert.Equal(t, ToEuler(q).Alpha, ToEuler(scaled).Alpha)
	assert.Equal(t, 0.0, ToEuler(scaled).Gamma)
}

func TestRotateVector_QuarterYaw(t *testing.T) {
	got := RotateVector(r3.Vec{Y: -1}, FromEulerAngles(math.Pi/2, 0, 0))
	assertVecInDelta(t, r3.Vec{X: 1}, got, 1e-3)
}

func TestRotateVector_ZeroVector(t *testing.T) {
	for _, q := range []quat.Number{
		{Real: 1},
		{},
		FromEulerAngles(1, 2, 3),
		{Real: 4, Imag: -2, Jmag: 7, Kmag: 0.5},
	} {
		assert.Equal(t, r3.Vec{}, RotateVector(r3.Vec{}, q))
	}
}

func TestRotateVector_ZeroQuaternionIsIdentity(t *testing.T) {
	v := r3.Vec{X: 1.5, Y: -2, Z: 3}
	assert.Equal(t, v, RotateVector(v, quat.Number{}))
}

func TestRotateVector_PreservesLength(t *testing.T) {
	q := FromEulerAngles(0.4, -0.9, 2.1)
	v := r3.Vec{X: 3, Y: -4, Z: 12}
	assert.InDelta(t, r3.Norm(v), r3.Norm(RotateVector(v, q)), 1e-9)
}

func TestRotateVector_MatchesConjugation(t *testing.T) {
	q := FromEulerAngles(-0.6, 0.25, 1.3)
	v := r3.Vec{X: 0.5, Y: 2, Z: -1}

	p := quat.Mul(quat.Mul(q, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(q))
	assertVecInDelta(t, r3.Vec{X: p.Imag, Y: p.Jmag, Z: p.Kmag}, RotateVector(v, q), 1e-9)
}

func TestRotateVector_MatchesMatrix(t *testing.T) {
	q := FromEulerAngles(2.2, -0.3, 0.8)
	v := r3.Vec{X: -1, Y: 0.25, Z: 4}

	m := mathutil.QuatToMat3(q).MulVec3(mathutil.FromR3(v))
	assertVecInDelta(t, m.R3(), RotateVector(v, q), 1e-12)
}
