package pcfont

// FontMetricsInfo contains selected metrics of a bitmap font.
// All values are in pixels.
type FontMetricsInfo struct {
	Ascent     int // pixels above the baseline of a typical ascender
	Descent    int // pixels below the baseline of a typical descender
	LineHeight int // height of the font's bounding box
	MaxAdvance int // width of the font's bounding box
}

// FontMetrics retrieves selected metrics of a font.
func FontMetrics(f *BitmapFont) FontMetricsInfo {
	metrics := FontMetricsInfo{}
	if f == nil || f.PCF == nil {
		return metrics
	}
	bbox := f.PCF.BoundingBox()
	metrics.Ascent = f.PCF.Ascent()
	metrics.Descent = f.PCF.Descent()
	metrics.LineHeight = bbox.Height
	metrics.MaxAdvance = bbox.Width
	tracer().Debugf("font metrics = %v", metrics)
	return metrics
}

// GlyphCount returns the number of glyphs contained in the font.
func GlyphCount(f *BitmapFont) int {
	if f == nil || f.PCF == nil {
		return 0
	}
	return f.PCF.GlyphCount()
}

// HasGlyph checks whether the font contains a glyph for the given code point.
func HasGlyph(f *BitmapFont, codePoint uint16) bool {
	if f == nil || f.PCF == nil {
		return false
	}
	_, err := f.PCF.GlyphIndex(codePoint)
	return err == nil
}
