package raster

import (
	"image"
	"math"
	"slices"
)

// FrameBuffer is the render target: non-premultiplied RGBA plus one depth
// value per pixel. Larger depth is nearer.
type FrameBuffer struct {
	Width, Height int
	Color         []uint8
	ZBuf          []float64
}

// NewFrameBuffer returns a fully transparent buffer with every depth at -Inf.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, 4*w*h),
		ZBuf:   slices.Repeat([]float64{math.Inf(-1)}, w*h),
	}
}

// Image copies the color buffer out as an NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
