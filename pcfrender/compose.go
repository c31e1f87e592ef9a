package pcfrender

import (
	"image"
	"image/color"

	"github.com/npillmayer/pcfont/pcf"
)

// Compositing of 1-bit glyph bitmaps into caller-chosen colors.
//
// Which of the style's colors are set decides the drawing strategy for a
// whole DrawString call: the combination is resolved once, up front, into a
// compositor value; the per-glyph blit then follows that choice without
// re-branching per pixel. Background pixels are never painted glyph by
// glyph: when a background color is set, the string's full bounding box is
// filled in one batch before any glyph is blitted.

type compositeMode int

const (
	compositeNeither    compositeMode = iota // advance the pen, draw nothing
	compositeForeground                      // draw "on" pixels only
	compositeBackground                      // batch-fill background only
	compositeBoth                            // batch-fill background, then "on" pixels
)

type compositor struct {
	mode compositeMode
	fg   color.Color
	bg   color.Color
}

// newCompositor selects the compositing mode from the set/unset color pair.
func newCompositor(fg, bg Option[color.Color]) compositor {
	f, hasFg := fg.Unwrap()
	b, hasBg := bg.Unwrap()
	switch {
	case hasFg && hasBg:
		return compositor{mode: compositeBoth, fg: f, bg: b}
	case hasFg:
		return compositor{mode: compositeForeground, fg: f}
	case hasBg:
		return compositor{mode: compositeBackground, bg: b}
	}
	return compositor{mode: compositeNeither}
}

func (c compositor) drawsGlyphs() bool {
	return c.mode == compositeForeground || c.mode == compositeBoth
}

func (c compositor) fillsBackground() bool {
	return c.mode == compositeBackground || c.mode == compositeBoth
}

// blitGlyph draws the "on" pixels of a byte-padded glyph bitmap, offset by
// (left side bearing, -ascent) relative to the pen position. Glyphs without
// bitmap data draw nothing.
func (c compositor) blitGlyph(data []byte, metrics pcf.MetricsEntry, pen image.Point,
	surface Surface) error {
	//
	if !c.drawsGlyphs() || len(data) == 0 {
		return nil
	}
	width := metrics.GlyphWidth()
	height := metrics.GlyphHeight()
	rowBytes := len(data) / height
	origin := pen.Add(image.Pt(int(metrics.LeftSideBearing), -int(metrics.CharacterAscent)))
	pixels := make([]Pixel, 0, width*height)
	for y := 0; y < height; y++ {
		row := data[y*rowBytes : (y+1)*rowBytes]
		for x := 0; x < width; x++ {
			if row[x/8]&(0x80>>(x%8)) != 0 {
				pixels = append(pixels, Pixel{
					Point: origin.Add(image.Pt(x, y)),
					Color: c.fg,
				})
			}
		}
	}
	return surface.DrawPixels(pixels)
}
