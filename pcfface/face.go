/*
Package pcfface wraps a PCF bitmap font as a font.Face of package
golang.org/x/image/font.

This lets PCF fonts drive any renderer speaking the x/image drawing
interfaces, e.g. font.Drawer. Bitmap fonts have whole-pixel metrics, so all
fixed-point values the Face reports are integral; there is no hinting and
no kerning.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package pcfface

import (
	"image"
	"image/color"

	"github.com/npillmayer/pcfont/pcf"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// tracer writes to trace with key 'pcf.face'
func tracer() tracing.Trace {
	return tracing.Select("pcf.face")
}

// Face adapts a PCF font to the font.Face interface. A Face mutates its
// font handle's read cursor and reuses internal buffers, so it must not be
// used concurrently; this matches the expectations font.Face documents.
type Face struct {
	font   *pcf.Font
	mapper pcf.CharMapper
	buf    []byte
}

var _ font.Face = (*Face)(nil)

// New wraps a parsed PCF font as a font.Face. Runes are addressed with
// their Unicode value unless a different CharMapper is set.
func New(f *pcf.Font) *Face {
	return &Face{
		font:   f,
		mapper: pcf.UnicodeMapper{},
		buf:    make([]byte, f.MaxBytesPerGlyph()),
	}
}

// SetCharMapper changes how runes are mapped to the font's code points.
func (f *Face) SetCharMapper(m pcf.CharMapper) {
	f.mapper = m
}

// Close is a no-op; the Face holds no resources of its own.
func (f *Face) Close() error {
	return nil
}

// glyph resolves a rune to bitmap data and metrics, falling back to the
// font's default character for runes without a glyph.
func (f *Face) glyph(r rune) (data []byte, metrics pcf.MetricsEntry, ok bool) {
	cp, mapped := f.mapper.CodePoint(r)
	if !mapped {
		cp = f.font.DefaultChar()
	}
	length, metrics, err := f.font.ReadGlyph(cp, f.buf)
	if err != nil && pcf.KindOf(err) == pcf.NotFound && cp != f.font.DefaultChar() {
		length, metrics, err = f.font.ReadGlyph(f.font.DefaultChar(), f.buf)
	}
	if err != nil {
		tracer().Debugf("character %#U not available: %v", r, err)
		return nil, metrics, false
	}
	return f.buf[:length], metrics, true
}

// Glyph returns the glyph mask for a rune, positioned for drawing the rune
// with its dot at the given fixed-point position. Fractional dot positions
// are truncated; PCF glyphs sit on the pixel grid.
func (f *Face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image,
	maskp image.Point, advance fixed.Int26_6, ok bool) {
	//
	data, metrics, ok := f.glyph(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	width := metrics.GlyphWidth()
	height := metrics.GlyphHeight()
	alpha := image.NewAlpha(image.Rect(0, 0, width, height))
	if height > 0 {
		rowBytes := len(data) / height
		for y := 0; y < height; y++ {
			row := data[y*rowBytes : (y+1)*rowBytes]
			for x := 0; x < width; x++ {
				if row[x/8]&(0x80>>(x%8)) != 0 {
					alpha.SetAlpha(x, y, color.Alpha{A: 0xFF})
				}
			}
		}
	}
	origin := image.Pt(
		dot.X.Floor()+int(metrics.LeftSideBearing),
		dot.Y.Floor()-int(metrics.CharacterAscent))
	dr = image.Rectangle{Min: origin, Max: origin.Add(image.Pt(width, height))}
	return dr, alpha, image.Point{}, fixed.I(int(metrics.CharacterWidth)), true
}

// GlyphBounds returns the bounding box of a rune's glyph, relative to the
// dot, and its advance.
func (f *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	_, metrics, ok := f.glyph(r)
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	bounds = fixed.R(
		int(metrics.LeftSideBearing),
		-int(metrics.CharacterAscent),
		int(metrics.RightSideBearing),
		int(metrics.CharacterDescent))
	return bounds, fixed.I(int(metrics.CharacterWidth)), true
}

// GlyphAdvance returns the advance width of a rune's glyph.
func (f *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	cp, mapped := f.mapper.CodePoint(r)
	if !mapped {
		cp = f.font.DefaultChar()
	}
	metrics, err := f.font.GlyphMetrics(cp)
	if err != nil && pcf.KindOf(err) == pcf.NotFound && cp != f.font.DefaultChar() {
		metrics, err = f.font.GlyphMetrics(f.font.DefaultChar())
	}
	if err != nil {
		return 0, false
	}
	return fixed.I(int(metrics.CharacterWidth)), true
}

// Kern returns the kerning between two runes, which is always zero for
// PCF fonts.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 {
	return 0
}

// Metrics reports the font's global metrics. PCF fonts do not carry
// x-height or cap-height values; both are approximated with the ascent.
func (f *Face) Metrics() font.Metrics {
	ascent := int(f.font.Ascent())
	descent := int(f.font.Descent())
	return font.Metrics{
		Height:     fixed.I(f.font.BoundingBox().Height),
		Ascent:     fixed.I(ascent),
		Descent:    fixed.I(descent),
		XHeight:    fixed.I(ascent),
		CapHeight:  fixed.I(ascent),
		CaretSlope: image.Pt(0, 1),
	}
}
