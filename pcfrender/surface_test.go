package pcfrender

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImageSurfaceClipsFill(t *testing.T) {
	img, surface := newCanvas(8, 8)
	err := surface.FillRect(image.Rect(-4, -4, 4, 4), color.White)
	require.NoError(t, err)
	white := color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	require.Equal(t, white, img.RGBAAt(0, 0))
	require.Equal(t, white, img.RGBAAt(3, 3))
	require.NotEqual(t, white, img.RGBAAt(4, 4))
}

func TestImageSurfaceClipsPixels(t *testing.T) {
	img, surface := newCanvas(8, 8)
	err := surface.DrawPixels([]Pixel{
		{Point: image.Pt(2, 2), Color: color.White},
		{Point: image.Pt(-1, 0), Color: color.White},
		{Point: image.Pt(0, 99), Color: color.White},
	})
	require.NoError(t, err)
	white := color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	require.Equal(t, white, img.RGBAAt(2, 2))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x == 2 && y == 2 {
				continue
			}
			require.NotEqual(t, white, img.RGBAAt(x, y), "unexpected pixel at (%d,%d)", x, y)
		}
	}
}
