package pcfface

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/npillmayer/pcfont/internal/fontgen"
	"github.com/npillmayer/pcfont/pcf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func testFont(t *testing.T) *pcf.Font {
	t.Helper()
	glyphs := []fontgen.Glyph{
		{Encoding: ' ', Advance: 3},
		{Encoding: 'A', LSB: 0, Advance: 5, Ascent: 6, Descent: 0, Bitmap: []string{
			".XX.",
			"X..X",
			"X..X",
			"XXXX",
			"X..X",
			"X..X",
		}},
		{Encoding: 'g', LSB: 1, Advance: 5, Ascent: 4, Descent: 2, Bitmap: []string{
			".XX",
			"X.X",
			".XX",
			"..X",
			"..X",
			"XX.",
		}},
	}
	blob := fontgen.Build(fontgen.Options{DefaultChar: 'A'}, glyphs)
	f, err := pcf.Parse(bytes.NewReader(blob))
	require.NoError(t, err, "cannot parse generated font")
	return f
}

func TestFaceMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcf.face")
	defer teardown()
	//
	face := New(testFont(t))
	m := face.Metrics()
	require.Equal(t, fixed.I(8), m.Height)
	require.Equal(t, fixed.I(7), m.Ascent)
	require.Equal(t, fixed.I(2), m.Descent)
}

func TestFaceGlyphBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcf.face")
	defer teardown()
	//
	face := New(testFont(t))
	bounds, advance, ok := face.GlyphBounds('g')
	require.True(t, ok)
	require.Equal(t, fixed.I(5), advance)
	require.Equal(t, fixed.R(1, -4, 4, 2), bounds)
}

func TestFaceGlyphAdvance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcf.face")
	defer teardown()
	//
	face := New(testFont(t))
	advance, ok := face.GlyphAdvance(' ')
	require.True(t, ok)
	require.Equal(t, fixed.I(3), advance)
	// missing glyphs fall back to the default character
	advance, ok = face.GlyphAdvance('!')
	require.True(t, ok)
	require.Equal(t, fixed.I(5), advance)
	require.Equal(t, fixed.Int26_6(0), face.Kern('A', 'g'))
}

func TestFaceWithDrawer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcf.face")
	defer teardown()
	//
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: New(testFont(t)),
		Dot:  fixed.P(0, 10),
	}
	drawer.DrawString("A")
	require.Equal(t, fixed.P(5, 10), drawer.Dot, "advance of 'A' expected")
	white := color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	// 'A' has ascent 6, so its first bitmap row ".XX." lands at y = 4
	require.Equal(t, white, img.RGBAAt(1, 4))
	require.NotEqual(t, white, img.RGBAAt(0, 4))
	require.Equal(t, white, img.RGBAAt(0, 9), "bottom glyph row expected on the baseline")
}
