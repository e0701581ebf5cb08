package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownsample_Size(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 32))
	out := Downsample(img, 2)
	assert.Equal(t, image.Rect(0, 0, 32, 16), out.Bounds())
}

func TestDownsample_FactorOneIsNoop(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	assert.Same(t, img, Downsample(img, 1))
}

func TestDownsample_KeepsSolidColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	c := color.NRGBA{200, 80, 40, 255}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	out := Downsample(img, 4)
	got := out.NRGBAAt(2, 2)
	assert.InDelta(t, 200, int(got.R), 1)
	assert.InDelta(t, 80, int(got.G), 1)
	assert.InDelta(t, 40, int(got.B), 1)
	assert.Equal(t, uint8(255), got.A)
}

func TestDownsample_TransparentStaysTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	out := Downsample(img, 2)
	assert.Equal(t, color.NRGBA{}, out.NRGBAAt(1, 1))
}
