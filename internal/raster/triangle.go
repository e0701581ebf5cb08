package raster

import (
	"image"
	"image/color"
	"math"

	"libepn/internal/mathutil"
)

// vertex is one projected corner: screen x/y, view depth and texture u/v.
type vertex struct {
	x, y, z, u, v float64
}

// corners gathers the three projected vertices of a triangle. ok is false
// when a vertex index is out of range; textured is false when any UV index is.
func corners(px, py, pz []float64, uvs [][2]float32, vi, ti [3]int) (vs [3]vertex, ok, textured bool) {
	textured = true
	for k := 0; k < 3; k++ {
		i := vi[k]
		if i < 0 || i >= len(px) || i >= len(py) || i >= len(pz) {
			return vs, false, false
		}
		vs[k] = vertex{x: px[i], y: py[i], z: pz[i]}
		if t := ti[k]; t >= 0 && t < len(uvs) {
			vs[k].u, vs[k].v = float64(uvs[t][0]), float64(uvs[t][1])
		} else {
			textured = false
		}
	}
	return vs, true, textured
}

// RasterizeTriangle fills one flat-shaded triangle into fb with a depth
// test. Texels come from tex when every UV index is valid, otherwise base
// is used. Either winding fills.
func RasterizeTriangle(
	fb *FrameBuffer,
	px, py, pz []float64,
	uvs [][2]float32,
	vi, ti [3]int,
	tex *image.NRGBA,
	base color.NRGBA,
	lc *LightConfig,
) {
	vs, ok, textured := corners(px, py, pz, uvs, vi, ti)
	if !ok {
		return
	}
	textured = textured && tex != nil
	a, b, c := vs[0], vs[1], vs[2]

	n := mathutil.Vec3{b.x - a.x, b.y - a.y, b.z - a.z}.Cross(mathutil.Vec3{c.x - a.x, c.y - a.y, c.z - a.z})
	if n.Len() < 1e-8 {
		return
	}
	shade := lc.ComputeShade(n.Normalize())

	minX := max(int(min(a.x, b.x, c.x)), 0)
	maxX := min(int(max(a.x, b.x, c.x))+1, fb.Width-1)
	minY := max(int(min(a.y, b.y, c.y)), 0)
	maxY := min(int(max(a.y, b.y, c.y))+1, fb.Height-1)
	if minX >= maxX || minY >= maxY {
		return
	}

	area := (b.y-c.y)*(a.x-c.x) + (c.x-b.x)*(a.y-c.y)
	if math.Abs(area) < 1e-8 {
		return
	}
	inv := 1 / area

	for sy := minY; sy <= maxY; sy++ {
		dy := float64(sy) - c.y
		for sx := minX; sx <= maxX; sx++ {
			dx := float64(sx) - c.x
			wa := ((b.y-c.y)*dx + (c.x-b.x)*dy) * inv
			wb := ((c.y-a.y)*dx + (a.x-c.x)*dy) * inv
			wc := 1 - wa - wb
			if wa < -0.001 || wb < -0.001 || wc < -0.001 {
				continue
			}

			i := sy*fb.Width + sx
			z := wa*a.z + wb*b.z + wc*c.z
			if z <= fb.ZBuf[i] {
				continue
			}

			texel := base
			if textured {
				texel.R, texel.G, texel.B, texel.A = SampleTexture(tex, wa*a.u+wb*b.u+wc*c.u, wa*a.v+wb*b.v+wc*c.v)
			}
			if texel.A < 8 {
				continue
			}
			fb.ZBuf[i] = z

			out := fb.Color[i*4 : i*4+4]
			out[0] = lc.expose(texel.R, shade)
			out[1] = lc.expose(texel.G, shade)
			out[2] = lc.expose(texel.B, shade)
			out[3] = texel.A
		}
	}
}

// expose lights one sRGB channel in linear space, tone maps it and encodes
// it back to sRGB.
func (lc *LightConfig) expose(ch uint8, shade float64) uint8 {
	v := math.Pow(ACESTonemap(srgbToLinear[ch]*shade*lc.Exposure), lc.InvGamma) * 255
	return uint8(math.Max(0, math.Min(255, v)) + 0.5)
}
