/*
Package pcfont is for bitmap typeface and font handling.

A PCF font is a pre-rendered font: every glyph is stored as a 1-bit-per-pixel
bitmap together with fixed metrics. There is no scaling and no hinting; what
is in the file is what ends up on the screen. This makes PCF fonts a good fit
for small displays and for environments where fonts live in read-only storage
and are queried glyph-by-glyph.

# Status

Only single-encoding PCF files (1- or 2-byte encodings) are supported.
Properties, scalable widths and glyph names tables are not interpreted.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package pcfont

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/pcfont/pcf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pcfont'
func tracer() tracing.Trace {
	return tracing.Select("pcfont")
}

// BitmapFont is an internal representation of a bitmap font of type PCF.
type BitmapFont struct {
	Fontname string
	Filepath string    // file path
	Binary   []byte    // raw data
	PCF      *pcf.Font // the font's container
}

// LoadBitmapFont loads a PCF bitmap font from a file.
func LoadBitmapFont(fontfile string) (*BitmapFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseBitmapFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	f.Fontname = strings.TrimSuffix(filepath.Base(fontfile), filepath.Ext(fontfile))
	return f, nil
}

// ParseBitmapFont loads a PCF bitmap font from memory. The byte data is
// retained by the returned font and must not change while the font is in use.
func ParseBitmapFont(fbytes []byte) (f *BitmapFont, err error) {
	f = &BitmapFont{Binary: fbytes}
	f.PCF, err = pcf.Parse(bytes.NewReader(fbytes))
	if err != nil {
		return nil, err
	}
	tracer().Debugf("loaded and parsed PCF font with %d glyphs", f.PCF.GlyphCount())
	return f, nil
}

// NewHandle opens an additional, independent handle onto the same font data.
// Glyph lookup mutates a handle's read cursor, so concurrent callers each
// need a handle of their own. The underlying bytes are shared and immutable.
func (f *BitmapFont) NewHandle() (*pcf.Font, error) {
	return pcf.Parse(bytes.NewReader(f.Binary))
}
