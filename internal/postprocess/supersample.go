package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample shrinks a supersampled render by factor. Filtering runs on
// premultiplied pixels so transparent edges don't bleed dark halos into the
// gizmo silhouettes. A factor below 2 returns img unchanged.
func Downsample(img *image.NRGBA, factor int) *image.NRGBA {
	b := img.Bounds()
	if factor < 2 || b.Dx() < factor || b.Dy() < factor {
		return img
	}

	// Drawing NRGBA onto RGBA premultiplies.
	premul := image.NewRGBA(b)
	draw.Draw(premul, b, img, b.Min, draw.Src)

	small := image.NewRGBA(image.Rect(0, 0, b.Dx()/factor, b.Dy()/factor))
	draw.CatmullRom.Scale(small, small.Bounds(), premul, b, draw.Src, nil)

	return unpremultiply(small)
}

// unpremultiply converts by hand instead of through color.NRGBAModel:
// CatmullRom ringing can leave a channel above alpha, which must clamp.
func unpremultiply(src *image.RGBA) *image.NRGBA {
	out := image.NewNRGBA(src.Bounds())
	for i := 0; i+3 < len(src.Pix); i += 4 {
		a := src.Pix[i+3]
		out.Pix[i+3] = a
		if a <= 1 {
			continue
		}
		scale := 255 / float64(a)
		for c := 0; c < 3; c++ {
			out.Pix[i+c] = clamp8(float64(src.Pix[i+c]) * scale)
		}
	}
	return out
}

func clamp8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}
