package raster

import (
	"math"

	"libepn/internal/mathutil"
)

// Light is a double-sided directional light.
type Light struct {
	Dir       mathutil.Vec3 // unit, pointing toward the light
	Intensity float64
}

// LightConfig is the shading model for gizmo faces: ambient plus a
// hemisphere fill, a set of directional lights, and one Blinn-Phong
// highlight from the first light.
type LightConfig struct {
	Ambient  float64
	Hemi     float64
	Lights   []Light
	SpecInt  float64
	SpecPow  float64
	Exposure float64
	InvGamma float64

	half mathutil.Vec3
}

// DefaultLightConfig returns a key light from the upper right and a cool
// rim light from behind, viewed down -Z.
func DefaultLightConfig() LightConfig {
	lc := LightConfig{
		Ambient: 0.45,
		Hemi:    0.40,
		Lights: []Light{
			{Dir: mathutil.Vec3{0.5, 0.8, 0.6}.Normalize(), Intensity: 1.20},
			{Dir: mathutil.Vec3{-0.6, 0.4, -0.7}.Normalize(), Intensity: 0.35},
		},
		SpecInt:  0.30,
		SpecPow:  16,
		Exposure: 1,
		InvGamma: 1 / 2.2,
	}
	view := mathutil.Vec3{0, 0, -1}
	lc.half = lc.Lights[0].Dir.Sub(view).Normalize()
	return lc
}

// ComputeShade returns the lighting scalar for a unit face normal.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3) float64 {
	// Faces pointing sideways get more fill than floor and ceiling.
	shade := lc.Ambient + lc.Hemi*(0.5+0.5*(1-math.Abs(normal[1])))

	for _, l := range lc.Lights {
		shade += math.Abs(normal.Dot(l.Dir)) * l.Intensity
	}

	if ndh := normal.Dot(lc.half); ndh > 0 {
		shade += math.Pow(ndh, lc.SpecPow) * lc.SpecInt
	}
	return shade
}

// srgbToLinear maps an 8-bit sRGB channel to linear light (gamma 2.2).
var srgbToLinear = func() (t [256]float64) {
	for i := range t {
		t[i] = math.Pow(float64(i)/255, 2.2)
	}
	return t
}()

// ACESTonemap is the Narkowicz fit of the ACES filmic curve.
func ACESTonemap(x float64) float64 {
	const a, b, c, d, e = 2.51, 0.03, 2.43, 0.59, 0.14
	return x * (a*x + b) / (x*(c*x+d) + e)
}
