package pcf

import "fmt"

// The per-glyph lookup/decode pipeline:
//
//	code point -> glyph index -> metrics -> bitmap
//
// Every step is a seek+read against the font's byte source; nothing is
// cached. The cost per glyph is 3 seeks plus one seek per bitmap row for
// fonts with short/int row padding.

// GlyphIndex maps a 16-bit code point to the font's glyph index for it.
// A NotFound error is returned for code points outside the font's encoding
// domain and for code points the encoding table marks as absent.
func (f *Font) GlyphIndex(codePoint uint16) (GlyphIndex, error) {
	const section = "encodings"
	enc1 := (codePoint >> 8) & 0xFF
	enc2 := codePoint & 0xFF
	if enc1 < f.minByte1 || enc1 > f.maxByte1 ||
		enc2 < f.minCharOrByte2 || enc2 > f.maxCharOrByte2 {
		return 0, errNotFound(section, fmt.Sprintf("code point %#x outside encoding range", codePoint))
	}
	// the index table is row-major over (byte1, byte2); the procedure is the
	// same for 1- and 2-byte encodings
	index := uint32(enc1-f.minByte1)*uint32(f.maxCharOrByte2-f.minCharOrByte2+1) +
		uint32(enc2-f.minCharOrByte2)
	if err := seekTo(f.data, int64(f.encodedIndicesLocation)+int64(index)*2, section); err != nil {
		return 0, err
	}
	var buf [2]byte
	if err := readExact(f.data, buf[:], section); err != nil {
		return 0, err
	}
	glyph := u16(buf[:])
	if glyph == noGlyph {
		return 0, errNotFound(section, fmt.Sprintf("no glyph for code point %#x", codePoint))
	}
	return GlyphIndex(glyph), nil
}

// Metrics reads the metrics entry for a glyph index.
func (f *Font) Metrics(glyph GlyphIndex) (MetricsEntry, error) {
	const section = "metrics"
	var buf [12]byte
	if f.metricsCompressed {
		offset := int64(f.metricsDataLocation) + int64(glyph)*5
		if err := seekTo(f.data, offset, section); err != nil {
			return MetricsEntry{}, err
		}
		if err := readExact(f.data, buf[:5], section); err != nil {
			return MetricsEntry{}, err
		}
		return metricsFromCompressed(buf[:5]), nil
	}
	offset := int64(f.metricsDataLocation) + int64(glyph)*12
	if err := seekTo(f.data, offset, section); err != nil {
		return MetricsEntry{}, err
	}
	if err := readExact(f.data, buf[:12], section); err != nil {
		return MetricsEntry{}, err
	}
	return metricsFromStandard(buf[:12]), nil
}

// GlyphMetrics resolves a code point and reads its glyph's metrics.
func (f *Font) GlyphMetrics(codePoint uint16) (MetricsEntry, error) {
	glyph, err := f.GlyphIndex(codePoint)
	if err != nil {
		return MetricsEntry{}, err
	}
	return f.Metrics(glyph)
}

// bitmapOffset reads the offset of a glyph's bitmap data, relative to the
// start of the font's bitmap data region.
func (f *Font) bitmapOffset(glyph GlyphIndex) (uint32, error) {
	const section = "bitmaps"
	if err := seekTo(f.data, int64(f.bitmapLUTLocation)+int64(glyph)*4, section); err != nil {
		return 0, err
	}
	var buf [4]byte
	if err := readExact(f.data, buf[:], section); err != nil {
		return 0, err
	}
	return u32(buf[:]), nil
}

// ReadGlyph reads the raw bitmap data of the glyph for the given code point
// into buf and returns the number of bytes written together with the glyph's
// metrics. Rows are re-padded from the font's storage convention to whole
// bytes, most significant bit first; the glyph's pixel width is
// metrics.GlyphWidth().
//
// Glyph sizes vary; buf must hold MaxBytesPerGlyph bytes to be sufficient
// for every glyph of the font. A zero-length result is valid and represents
// a glyph with no visible pixels but nonzero advance.
func (f *Font) ReadGlyph(codePoint uint16, buf []byte) (int, MetricsEntry, error) {
	const section = "bitmaps"
	glyph, err := f.GlyphIndex(codePoint)
	if err != nil {
		return 0, MetricsEntry{}, err
	}
	bitmapOffset, err := f.bitmapOffset(glyph)
	if err != nil {
		return 0, MetricsEntry{}, err
	}
	metrics, err := f.Metrics(glyph)
	if err != nil {
		return 0, MetricsEntry{}, err
	}

	glyphWidth := metrics.GlyphWidth()
	glyphHeight := metrics.GlyphHeight()
	if glyphWidth < 0 || glyphHeight < 0 {
		return 0, MetricsEntry{}, errCorrupt(section,
			fmt.Sprintf("glyph %d has negative extent %dx%d", glyph, glyphWidth, glyphHeight))
	}
	sourceRowBytes := bytesPerRow(glyphWidth, f.rowPadding.Units())
	// normalize all padding schemes to byte-padded rows
	standardRowBytes := bytesPerRow(glyphWidth, 1)
	length := glyphHeight * standardRowBytes
	if length > len(buf) {
		return 0, MetricsEntry{}, &FontError{Kind: Other, Section: section,
			Issue: fmt.Sprintf("buffer too small: need %d bytes, have %d", length, len(buf))}
	}

	if err := seekTo(f.data, int64(f.bitmapDataLocation)+int64(bitmapOffset), section); err != nil {
		return 0, MetricsEntry{}, err
	}
	skipCount := sourceRowBytes - standardRowBytes
	for row := 0; row < glyphHeight; row++ {
		bufStart := row * standardRowBytes
		if err := readExact(f.data, buf[bufStart:bufStart+standardRowBytes], section); err != nil {
			return 0, MetricsEntry{}, err
		}
		if skipCount > 0 {
			if err := skip(f.data, int64(skipCount), section); err != nil {
				return 0, MetricsEntry{}, err
			}
		}
	}
	return length, metrics, nil
}
