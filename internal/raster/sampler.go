package raster

import (
	"image"
	"math"
)

// wrap maps a texture coordinate onto [0, n-1] for repeat addressing,
// returning the two neighbouring texels and the blend weight between them.
func wrap(t float64, n int) (i0, i1 int, f float64) {
	t = (t - math.Floor(t)) * float64(n-1)
	i0 = int(t)
	return i0, (i0 + 1) % n, t - float64(i0)
}

// SampleTexture bilinearly filters tex at (u, v) with repeat wrapping, so a
// floor quad with UVs beyond 1 tiles its texture.
func SampleTexture(tex *image.NRGBA, u, v float64) (r, g, b, a uint8) {
	w, h := tex.Rect.Dx(), tex.Rect.Dy()
	if w == 0 || h == 0 {
		return 0, 0, 0, 0
	}
	x0, x1, fx := wrap(u, w)
	y0, y1, fy := wrap(v, h)

	at := func(x, y int) []uint8 {
		o := y*tex.Stride + x*4
		return tex.Pix[o : o+4]
	}
	p00, p10, p01, p11 := at(x0, y0), at(x1, y0), at(x0, y1), at(x1, y1)

	var out [4]uint8
	for c := range out {
		top := float64(p00[c]) + (float64(p10[c])-float64(p00[c]))*fx
		bot := float64(p01[c]) + (float64(p11[c])-float64(p01[c]))*fx
		out[c] = uint8(top + (bot-top)*fy + 0.5)
	}
	return out[0], out[1], out[2], out[3]
}
