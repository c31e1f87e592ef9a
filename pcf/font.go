package pcf

import "io"

// Font is an opened PCF font handle. It owns the byte source it was parsed
// from and performs one or more seek+read operations against it for every
// glyph query. A Font is only ever constructed by Parse, and only after all
// required tables validated successfully.
//
// Because glyph queries mutate the byte source's read cursor, a Font must
// not be shared between concurrent draw operations. Open one handle per
// logical reader instead; handles over the same immutable bytes are cheap.
type Font struct {
	data io.ReadSeeker

	glyphCount uint32 // informative; original field is signed
	ascent     int32  // pixels above the baseline of a typical ascender
	descent    int32  // pixels below the baseline of a typical descender

	metricsCompressed bool
	rowPadding        RowPadding
	bounds            Bounds

	// encoding domain; the four range fields only ever carry byte-sized
	// values, split out of 16-bit code points
	minCharOrByte2 uint16
	maxCharOrByte2 uint16
	minByte1       uint16
	maxByte1       uint16
	defaultChar    uint16

	// absolute byte offsets derived during parsing
	encodedIndicesLocation uint32 // code point -> glyph index table
	bitmapLUTLocation      uint32 // glyph index -> bitmap data offset table
	bitmapDataLocation     uint32 // first glyph bitmap
	metricsDataLocation    uint32 // first metrics entry
}

// GlyphCount returns the number of glyphs contained in the font.
func (f *Font) GlyphCount() int {
	return int(f.glyphCount)
}

// Ascent returns the number of pixels above the baseline of a typical
// ascender.
func (f *Font) Ascent() int {
	return int(f.ascent)
}

// Descent returns the number of pixels below the baseline of a typical
// descender.
func (f *Font) Descent() int {
	return int(f.descent)
}

// BoundingBox returns the maximum glyph extent of the font.
func (f *Font) BoundingBox() Bounds {
	return f.bounds
}

// RowPadding returns the storage padding convention of glyph bitmap rows.
// Glyph data returned by ReadGlyph is always re-padded to bytes, regardless
// of this mode.
func (f *Font) RowPadding() RowPadding {
	return f.rowPadding
}

// MetricsCompressed reports whether the font stores compressed (byte-sized)
// per-glyph metrics.
func (f *Font) MetricsCompressed() bool {
	return f.metricsCompressed
}

// MaxBytesPerGlyph returns the buffer size sufficient to hold any glyph of
// this font in byte-padded form. Use it to size the buffer for ReadGlyph.
func (f *Font) MaxBytesPerGlyph() int {
	return f.bounds.Height * bytesPerRow(f.bounds.Width, 1)
}

// DefaultChar returns the code point drawn in place of code points which
// have no glyph.
func (f *Font) DefaultChar() uint16 {
	return f.defaultChar
}

// OverrideDefaultChar replaces the font's default character. Whether the
// default character is consulted at all depends on the client; the renderer
// in package pcfrender falls back to it once per undrawable character.
func (f *Font) OverrideDefaultChar(codePoint uint16) {
	f.defaultChar = codePoint
}
