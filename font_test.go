package pcfont

import (
	"testing"

	"github.com/npillmayer/pcfont/internal/fontgen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func testFontBlob() []byte {
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
	return fontgen.Build(fontgen.Options{DefaultChar: 'A'}, glyphs)
}

func TestParseBitmapFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfont")
	defer teardown()
	//
	font, err := ParseBitmapFont(testFontBlob())
	if err != nil {
		t.Fatal(err)
	}
	if GlyphCount(font) != 3 {
		t.Errorf("expected 3 glyphs, have %d", GlyphCount(font))
	}
	metrics := FontMetrics(font)
	t.Logf("font metrics = %+v", metrics)
	if metrics.Ascent != 7 || metrics.Descent != 2 {
		t.Errorf("expected ascent/descent 7/2, have %d/%d", metrics.Ascent, metrics.Descent)
	}
	if metrics.LineHeight != 8 {
		t.Errorf("expected line height 8, have %d", metrics.LineHeight)
	}
}

func TestHasGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfont")
	defer teardown()
	//
	font, err := ParseBitmapFont(testFontBlob())
	if err != nil {
		t.Fatal(err)
	}
	if !HasGlyph(font, 'A') {
		t.Error("expected a glyph for 'A'")
	}
	if HasGlyph(font, '!') {
		t.Error("expected no glyph for '!'")
	}
}

func TestNewHandle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfont")
	defer teardown()
	//
	font, err := ParseBitmapFont(testFontBlob())
	if err != nil {
		t.Fatal(err)
	}
	handle, err := font.NewHandle()
	if err != nil {
		t.Fatal(err)
	}
	if handle == font.PCF {
		t.Error("expected an independent handle")
	}
	if handle.GlyphCount() != font.PCF.GlyphCount() {
		t.Error("handles disagree about the glyph count")
	}
}
