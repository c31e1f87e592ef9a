package pcf

import (
	"bytes"
	"testing"

	"github.com/npillmayer/pcfont/internal/fontgen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// testGlyphs is a small font: 'A', 'B', a descender glyph 'g' and a blank
// space. The encoding domain 0x20..0x67 contains plenty of holes.
func testGlyphs() []fontgen.Glyph {
	return []fontgen.Glyph{
		{Encoding: ' ', Advance: 3},
		{Encoding: 'A', LSB: 0, Advance: 5, Ascent: 6, Descent: 0, Bitmap: []string{
			".XX.",
			"X..X",
			"X..X",
			"XXXX",
			"X..X",
			"X..X",
		}},
		{Encoding: 'B', LSB: 0, Advance: 5, Ascent: 6, Descent: 0, Bitmap: []string{
			"XXX.",
			"X..X",
			"XXX.",
			"X..X",
			"X..X",
			"XXX.",
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
}

func buildFont(t *testing.T, opts fontgen.Options) *Font {
	t.Helper()
	if opts.DefaultChar == 0 {
		opts.DefaultChar = 'A'
	}
	blob := fontgen.Build(opts, testGlyphs())
	font, err := Parse(bytes.NewReader(blob))
	if err != nil {
		t.Fatalf("cannot parse generated font: %v", err)
	}
	return font
}

func TestParseWellFormed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.pcf")
	defer teardown()
	//
	font := buildFont(t, fontgen.Options{CompressedMetrics: true, IncludeProperties: true})
	if font.GlyphCount() != 4 {
		t.Errorf("expected 4 glyphs, have %d", font.GlyphCount())
	}
	bbox := font.BoundingBox()
	t.Logf("bounding box = %+v", bbox)
	if bbox.Width != 4 || bbox.Height != 8 {
		t.Errorf("expected bounding box 4x8, have %dx%d", bbox.Width, bbox.Height)
	}
	if bbox.XOffset != 0 || bbox.YOffset != -2 {
		t.Errorf("expected bbox offsets (0,-2), have (%d,%d)", bbox.XOffset, bbox.YOffset)
	}
	if bbox.MaxAscent() != 6 {
		t.Errorf("expected max ascent 6, have %d", bbox.MaxAscent())
	}
	if font.Ascent() != 7 || font.Descent() != 2 {
		t.Errorf("expected font ascent/descent 7/2, have %d/%d", font.Ascent(), font.Descent())
	}
	if font.RowPadding() != PadToByte {
		t.Errorf("expected byte padding, have %v", font.RowPadding())
	}
	if font.MaxBytesPerGlyph() != 8 {
		t.Errorf("expected max 8 bytes per glyph, have %d", font.MaxBytesPerGlyph())
	}
	if font.DefaultChar() != 'A' {
		t.Errorf("expected default char 'A', have %#x", font.DefaultChar())
	}
}

func TestParseStandardMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.pcf")
	defer teardown()
	//
	font := buildFont(t, fontgen.Options{})
	if font.MetricsCompressed() {
		t.Error("expected standard metrics")
	}
	metrics, err := font.GlyphMetrics('g')
	if err != nil {
		t.Fatal(err)
	}
	if metrics.CharacterAscent != 4 || metrics.CharacterDescent != 2 {
		t.Errorf("unexpected metrics for 'g': %+v", metrics)
	}
}

func TestParseBDFAcceleratorSubstitution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.pcf")
	defer teardown()
	//
	// plain accelerators stand in for a missing BDF accelerators table
	plain := buildFont(t, fontgen.Options{BDFAccelerators: false})
	dedicated := buildFont(t, fontgen.Options{BDFAccelerators: true})
	if plain.BoundingBox() != dedicated.BoundingBox() {
		t.Errorf("bounding boxes differ: %+v vs %+v", plain.BoundingBox(), dedicated.BoundingBox())
	}
}

func TestParseInkBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.pcf")
	defer teardown()
	//
	font := buildFont(t, fontgen.Options{InkBounds: true})
	if font.BoundingBox().Width != 4 {
		t.Errorf("expected bbox width 4, have %d", font.BoundingBox().Width)
	}
}

func TestParseBadMagic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.pcf")
	defer teardown()
	//
	blob := fontgen.Build(fontgen.Options{BadMagic: true}, testGlyphs())
	_, err := Parse(bytes.NewReader(blob))
	if KindOf(err) != UnsupportedFormat {
		t.Errorf("expected UnsupportedFormat, got %v", err)
	}
}

func TestParseMetricsCountMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.pcf")
	defer teardown()
	//
	blob := fontgen.Build(fontgen.Options{MetricsCountDelta: 1}, testGlyphs())
	_, err := Parse(bytes.NewReader(blob))
	if KindOf(err) != CorruptedData {
		t.Errorf("expected CorruptedData, got %v", err)
	}
}

func TestParseReservedPadding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.pcf")
	defer teardown()
	//
	blob := fontgen.Build(fontgen.Options{ReservedPadding: true}, testGlyphs())
	_, err := Parse(bytes.NewReader(blob))
	if KindOf(err) != CorruptedData {
		t.Errorf("expected CorruptedData, got %v", err)
	}
}

func TestParseScanUnit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.pcf")
	defer teardown()
	//
	blob := fontgen.Build(fontgen.Options{ScanUnit: 1}, testGlyphs())
	_, err := Parse(bytes.NewReader(blob))
	if KindOf(err) != UnsupportedFormat {
		t.Errorf("expected UnsupportedFormat, got %v", err)
	}
}

func TestParseByteOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.pcf")
	defer teardown()
	//
	blob := fontgen.Build(fontgen.Options{LSByteMetrics: true}, testGlyphs())
	_, err := Parse(bytes.NewReader(blob))
	if KindOf(err) != UnsupportedFormat {
		t.Errorf("expected UnsupportedFormat, got %v", err)
	}
}

func TestParseMissingTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.pcf")
	defer teardown()
	//
	blob := fontgen.Build(fontgen.Options{OmitEncodings: true}, testGlyphs())
	_, err := Parse(bytes.NewReader(blob))
	if KindOf(err) != CorruptedData {
		t.Errorf("expected CorruptedData, got %v", err)
	}
}
