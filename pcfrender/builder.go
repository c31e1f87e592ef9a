package pcfrender

import (
	"image/color"

	"github.com/npillmayer/pcfont/pcf"
)

// StyleBuilder assembles a TextStyle step by step. It is a convenience for
// clients configuring several style aspects at once; every setter is also
// available on TextStyle directly.
//
//	style := pcfrender.NewStyleBuilder(font).
//		TextColor(color.White).
//		Underline(pcfrender.DecorationTextColor()).
//		Build()
type StyleBuilder struct {
	style *TextStyle
}

// NewStyleBuilder starts building a style for a font.
func NewStyleBuilder(font *pcf.Font) *StyleBuilder {
	return &StyleBuilder{style: NewTextStyle(font)}
}

// TextColor sets the color glyph pixels are drawn with.
func (b *StyleBuilder) TextColor(c color.Color) *StyleBuilder {
	b.style.SetTextColor(c)
	return b
}

// BackgroundColor sets the color the text bounding box is filled with.
func (b *StyleBuilder) BackgroundColor(c color.Color) *StyleBuilder {
	b.style.SetBackgroundColor(c)
	return b
}

// Underline configures the underline decoration.
func (b *StyleBuilder) Underline(d DecorationColor) *StyleBuilder {
	b.style.SetUnderlineColor(d)
	return b
}

// Strikethrough configures the strikethrough decoration.
func (b *StyleBuilder) Strikethrough(d DecorationColor) *StyleBuilder {
	b.style.SetStrikethroughColor(d)
	return b
}

// CharMapper sets how runes are mapped to the font's code points.
func (b *StyleBuilder) CharMapper(m pcf.CharMapper) *StyleBuilder {
	b.style.SetCharMapper(m)
	return b
}

// Build returns the assembled style. The builder must not be reused after
// calling Build.
func (b *StyleBuilder) Build() *TextStyle {
	return b.style
}
