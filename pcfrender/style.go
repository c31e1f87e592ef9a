package pcfrender

import (
	"image"
	"image/color"

	"github.com/npillmayer/pcfont/pcf"
)

// Baseline is the reference line glyphs are vertically aligned to.
type Baseline int

const (
	// BaselineAlphabetic aligns the font's baseline with the lower edge of
	// the anchor pixel.
	BaselineAlphabetic Baseline = iota
	// BaselineTop aligns the top of the font's bounding box with the anchor.
	BaselineTop
	// BaselineBottom aligns the bottom of the font's bounding box with the
	// anchor.
	BaselineBottom
	// BaselineMiddle splits the bounding box at the anchor pixel's lower
	// edge; the lower half may be the bigger one.
	BaselineMiddle
)

// --- Decoration colors -----------------------------------------------------

type decorationKind int

const (
	decorationNone decorationKind = iota
	decorationCustom
	decorationTextColor
)

// DecorationColor specifies the color of an underline or strikethrough
// line: disabled, a custom color, or "same as the text color". The zero
// value is the disabled decoration.
type DecorationColor struct {
	kind   decorationKind
	custom color.Color
}

// DecorationOff disables a decoration.
func DecorationOff() DecorationColor {
	return DecorationColor{}
}

// DecorationWithColor enables a decoration with a custom color.
func DecorationWithColor(c color.Color) DecorationColor {
	return DecorationColor{kind: decorationCustom, custom: c}
}

// DecorationTextColor enables a decoration drawn in the style's text color.
// A transparent text color leaves the decoration invisible.
func DecorationTextColor() DecorationColor {
	return DecorationColor{kind: decorationTextColor}
}

// IsOff reports whether the decoration is disabled.
func (d DecorationColor) IsOff() bool {
	return d.kind == decorationNone
}

func (d DecorationColor) resolve(textColor Option[color.Color]) (color.Color, bool) {
	switch d.kind {
	case decorationCustom:
		return d.custom, true
	case decorationTextColor:
		return textColor.Unwrap()
	}
	return nil, false
}

// --- Text style ------------------------------------------------------------

// TextStyle combines a font handle with rendering state: optional text and
// background colors and optional line decorations. A fresh style is fully
// transparent; drawing with it advances the pen without touching any pixel.
//
// A TextStyle mutates its font handle's read cursor while drawing and keeps
// a scratch buffer for glyph data, so a style must not be shared between
// concurrent draw operations.
type TextStyle struct {
	font               *pcf.Font
	mapper             pcf.CharMapper
	textColor          Option[color.Color]
	backgroundColor    Option[color.Color]
	underlineColor     DecorationColor
	strikethroughColor DecorationColor
	buf                []byte // glyph scratch, sized for the font's largest glyph
}

// NewTextStyle creates a style for a font, with all colors transparent and
// all decorations disabled. Fonts are addressed with the rune's Unicode
// value unless a different CharMapper is set.
func NewTextStyle(font *pcf.Font) *TextStyle {
	return &TextStyle{
		font:   font,
		mapper: pcf.UnicodeMapper{},
		buf:    make([]byte, font.MaxBytesPerGlyph()),
	}
}

// Font returns the style's font handle.
func (s *TextStyle) Font() *pcf.Font {
	return s.font
}

// SetCharMapper changes how runes are mapped to the font's code points.
func (s *TextStyle) SetCharMapper(m pcf.CharMapper) {
	s.mapper = m
}

// SetTextColor sets the color glyph pixels are drawn with.
func (s *TextStyle) SetTextColor(c color.Color) {
	s.textColor = Some(c)
}

// ResetTextColor makes the text color transparent again.
func (s *TextStyle) ResetTextColor() {
	s.textColor = None[color.Color]()
}

// SetBackgroundColor sets the color the text bounding box is filled with.
func (s *TextStyle) SetBackgroundColor(c color.Color) {
	s.backgroundColor = Some(c)
}

// ResetBackgroundColor makes the background transparent again.
func (s *TextStyle) ResetBackgroundColor() {
	s.backgroundColor = None[color.Color]()
}

// SetUnderlineColor configures the underline decoration.
func (s *TextStyle) SetUnderlineColor(d DecorationColor) {
	s.underlineColor = d
}

// SetStrikethroughColor configures the strikethrough decoration.
func (s *TextStyle) SetStrikethroughColor(d DecorationColor) {
	s.strikethroughColor = d
}

// IsTransparent reports whether drawing with this style cannot change any
// pixel.
func (s *TextStyle) IsTransparent() bool {
	return s.textColor.IsNone() && s.backgroundColor.IsNone() &&
		s.underlineColor.IsOff() && s.strikethroughColor.IsOff()
}

// LineHeight returns the vertical distance between adjacent text lines.
func (s *TextStyle) LineHeight() int {
	return s.font.BoundingBox().Height
}

// baselineOffset is the vertical distance from the requested anchor point
// down to the font's internal drawing origin. The added 1 treats the
// anchor's lower pixel edge as the baseline, matching the convention of
// other text renderers.
func (s *TextStyle) baselineOffset(baseline Baseline) int {
	bbox := s.font.BoundingBox()
	switch baseline {
	case BaselineTop:
		return bbox.MaxAscent()
	case BaselineBottom:
		return 1 + bbox.MaxDescent()
	case BaselineMiddle:
		return 1 + bbox.Height/2 + bbox.MaxDescent()
	}
	return 1 // alphabetic
}

// codePoint maps a rune through the style's CharMapper.
func (s *TextStyle) codePoint(r rune) (uint16, bool) {
	return s.mapper.CodePoint(r)
}

// advanceWidth sums the character widths of a string. Characters without
// usable metrics fall back to the font's bounding box width. This same
// width computation backs both measuring and the measure-only drawing
// paths, so the two cannot diverge.
func (s *TextStyle) advanceWidth(text string) int {
	defaultWidth := s.font.BoundingBox().Width
	width := 0
	for _, r := range text {
		cp, ok := s.codePoint(r)
		if !ok {
			width += defaultWidth
			continue
		}
		if metrics, err := s.font.GlyphMetrics(cp); err == nil {
			width += int(metrics.CharacterWidth)
		} else {
			width += defaultWidth
		}
	}
	return width
}

// textBBox computes the rectangle covered by a string drawn at the given
// pen position. The boolean result is false for the empty string.
func (s *TextStyle) textBBox(text string, position image.Point) (image.Rectangle, bool) {
	if text == "" {
		return image.Rectangle{}, false
	}
	bbox := s.font.BoundingBox()
	topLeft := position.Add(image.Pt(0, -bbox.MaxAscent()))
	size := image.Pt(s.advanceWidth(text), bbox.Height)
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(size)}, true
}

// TextMetrics is the result of measuring a string.
type TextMetrics struct {
	BoundingBox  image.Rectangle // region the rendered string would cover
	NextPosition image.Point     // pen position after drawing the string
}

// MeasureString measures a string without drawing it. Width is the sum of
// the character advances, height is always the font's bounding box height.
// An empty string measures to an empty rectangle.
func (s *TextStyle) MeasureString(text string, position image.Point, baseline Baseline) TextMetrics {
	bbox, ok := s.textBBox(text, position)
	if ok {
		bbox = bbox.Add(image.Pt(0, s.baselineOffset(baseline)))
	} else {
		corner := position.Add(image.Pt(0, s.baselineOffset(baseline)-s.baselineOffset(BaselineTop)))
		bbox = image.Rectangle{Min: corner, Max: corner}
	}
	return TextMetrics{
		BoundingBox:  bbox,
		NextPosition: position.Add(image.Pt(bbox.Dx(), 0)),
	}
}

// DrawString draws a string onto a surface, anchored at position relative
// to the chosen baseline, and returns the pen position for the text that
// would follow.
//
// Characters without a glyph are drawn as the font's default character;
// characters which still cannot be resolved contribute zero advance and
// draw nothing. Such failures never abort the string.
func (s *TextStyle) DrawString(text string, position image.Point, baseline Baseline,
	surface Surface) (image.Point, error) {
	//
	position = position.Add(image.Pt(0, s.baselineOffset(baseline)))
	comp := newCompositor(s.textColor, s.backgroundColor)
	next, err := s.drawComposited(text, position, comp, surface)
	if err != nil {
		return next, err
	}
	if next.X > position.X {
		if err := s.drawDecorations(next.X-position.X, position, surface); err != nil {
			return next, err
		}
	}
	return next.Sub(image.Pt(0, s.baselineOffset(baseline))), nil
}

func (s *TextStyle) drawComposited(text string, position image.Point, comp compositor,
	surface Surface) (image.Point, error) {
	//
	if comp.mode == compositeNeither {
		// nothing can change a pixel; just advance the pen
		return position.Add(image.Pt(s.advanceWidth(text), 0)), nil
	}
	if comp.fillsBackground() {
		// glyphs do not necessarily cover their full advance, so the
		// background of the whole string is filled in one batch
		if bbox, ok := s.textBBox(text, position); ok {
			if err := surface.FillRect(bbox, comp.bg); err != nil {
				return position, err
			}
		}
	}
	for _, r := range text {
		var err error
		if position, err = s.drawChar(r, position, comp, surface); err != nil {
			return position, err
		}
	}
	return position, nil
}

// drawChar draws a single character and advances the pen. Font-level
// failures are contained here: a missing glyph falls back to the default
// character once, anything else skips the character. Surface errors do
// propagate.
func (s *TextStyle) drawChar(r rune, pen image.Point, comp compositor,
	surface Surface) (image.Point, error) {
	//
	cp, ok := s.codePoint(r)
	if !ok {
		cp = s.font.DefaultChar()
	}
	length, metrics, err := s.font.ReadGlyph(cp, s.buf)
	if err != nil && pcf.KindOf(err) == pcf.NotFound && cp != s.font.DefaultChar() {
		length, metrics, err = s.font.ReadGlyph(s.font.DefaultChar(), s.buf)
	}
	if err != nil {
		// assume zero width; see the package documentation on skipping
		tracer().Debugf("character %#U not drawable: %v", r, err)
		return pen, nil
	}
	if err := comp.blitGlyph(s.buf[:length], metrics, pen, surface); err != nil {
		return pen, err
	}
	return pen.Add(image.Pt(int(metrics.CharacterWidth), 0)), nil
}

// drawDecorations draws the configured 1-pixel line decorations over an
// already advanced span of text. Strikethrough runs at the middle baseline
// offset, underline at the bottom one.
func (s *TextStyle) drawDecorations(width int, position image.Point, surface Surface) error {
	if c, ok := s.strikethroughColor.resolve(s.textColor); ok {
		start := position.Add(image.Pt(0, -s.baselineOffset(BaselineMiddle)))
		line := image.Rectangle{Min: start, Max: start.Add(image.Pt(width, 1))}
		if err := surface.FillRect(line, c); err != nil {
			return err
		}
	}
	if c, ok := s.underlineColor.resolve(s.textColor); ok {
		start := position.Add(image.Pt(0, -s.baselineOffset(BaselineBottom)))
		line := image.Rectangle{Min: start, Max: start.Add(image.Pt(width, 1))}
		if err := surface.FillRect(line, c); err != nil {
			return err
		}
	}
	return nil
}

// DrawWhitespace renders a glyph-less run of the given advance width:
// background fill (if set) over the font's full height, decorations, and a
// pen advance. Layout engines use this for pre-computed word-spacing gaps.
func (s *TextStyle) DrawWhitespace(width int, position image.Point, baseline Baseline,
	surface Surface) (image.Point, error) {
	//
	if width <= 0 {
		return position, nil
	}
	bbox := s.font.BoundingBox()
	position.Y += s.baselineOffset(baseline) - bbox.MaxAscent()
	if bg, ok := s.backgroundColor.Unwrap(); ok {
		box := image.Rectangle{Min: position, Max: position.Add(image.Pt(width, bbox.Height))}
		if err := surface.FillRect(box, bg); err != nil {
			return position, err
		}
	}
	position.Y += bbox.MaxAscent()
	if err := s.drawDecorations(width, position, surface); err != nil {
		return position, err
	}
	position.Y -= s.baselineOffset(baseline)
	position.X += width
	return position, nil
}
