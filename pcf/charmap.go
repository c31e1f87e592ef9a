package pcf

import (
	"golang.org/x/text/encoding/charmap"
)

// PCF fonts carry code points in whatever character set the font was
// compiled for. Unicode-encoded fonts can be addressed with the rune value
// directly, but many PCF fonts in the wild use ISO 8859 variants or KOI8.
// A CharMapper bridges Go runes to such font encodings; the x/text charmap
// tables cover the common single-byte sets.

// CharMapper maps a rune to a font code point. The boolean result is false
// when the rune has no representation in the font's character set.
type CharMapper interface {
	CodePoint(r rune) (uint16, bool)
}

// UnicodeMapper addresses fonts encoded in Unicode (ISO 10646-1). Runes
// beyond the Basic Multilingual Plane have no 16-bit code point and are
// rejected.
type UnicodeMapper struct{}

// CodePoint implements CharMapper.
func (UnicodeMapper) CodePoint(r rune) (uint16, bool) {
	if r < 0 || r > 0xFFFF {
		return 0, false
	}
	return uint16(r), true
}

// CharmapMapper addresses fonts encoded in a single-byte character set,
// e.g. charmap.ISO8859_1 or charmap.KOI8R.
type CharmapMapper struct {
	Charmap *charmap.Charmap
}

// CodePoint implements CharMapper.
func (m CharmapMapper) CodePoint(r rune) (uint16, bool) {
	if m.Charmap == nil {
		return 0, false
	}
	b, ok := m.Charmap.EncodeRune(r)
	if !ok {
		return 0, false
	}
	return uint16(b), true
}
