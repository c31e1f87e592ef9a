package pcfrender

import (
	"image"
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestStyleBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcf.render")
	defer teardown()
	//
	font := testFont(t)
	built := NewStyleBuilder(font).
		TextColor(color.White).
		Underline(DecorationTextColor()).
		Build()
	require.False(t, built.IsTransparent())

	manual := NewTextStyle(font)
	manual.SetTextColor(color.White)
	manual.SetUnderlineColor(DecorationTextColor())

	builtImg, builtSurface := newCanvas(16, 16)
	_, err := built.DrawString("Ag", image.Pt(0, 10), BaselineAlphabetic, builtSurface)
	require.NoError(t, err)
	manualImg, manualSurface := newCanvas(16, 16)
	_, err = manual.DrawString("Ag", image.Pt(0, 10), BaselineAlphabetic, manualSurface)
	require.NoError(t, err)
	require.Equal(t, manualImg.Pix, builtImg.Pix, "built style must draw like the hand-assembled one")
}
