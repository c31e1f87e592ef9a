package pcf

import (
	"fmt"
	"io"
)

// Code comments often cite passages from the PCF format reference;
// see https://fontforge.org/docs/techref/pcf-format.html.

// tocEntry is one 16-byte record of the table of contents. It is only
// needed while parsing; after the absolute data offsets are derived the
// entries are discarded.
type tocEntry struct {
	format uint32
	size   uint32
	offset uint32
}

// Slots for the tables we retain from the TOC. BDF accelerators and plain
// accelerators are semantically equivalent for our purposes, so the plain
// table acts as a stand-in when the BDF variant is missing.
const (
	slotBitmaps = iota
	slotMetrics
	slotEncodings
	slotAccelerators
	slotPlainAccelerators
	slotCount
)

var slotTables = [slotCount]TableType{
	TableBitmaps,
	TableMetrics,
	TableBDFEncodings,
	TableBDFAccelerators,
	TableAccelerators,
}

// Parse reads a PCF font from a byte source supporting random access.
// The source is retained by the returned Font and every glyph query will
// seek and read on it; it must stay valid for the lifetime of the Font.
//
// Parsing is all-or-nothing: either a fully initialized Font is returned,
// or an error and no Font.
func Parse(data io.ReadSeeker) (*Font, error) {
	var buf [16]byte
	if err := seekTo(data, 0, "header"); err != nil {
		return nil, err
	}

	// verify the magic signature
	if err := readExact(data, buf[:4], "header"); err != nil {
		return nil, err
	}
	if [4]byte(buf[:4]) != magic {
		return nil, errUnsupported("header", "missing PCF magic signature")
	}

	toc, err := parseTOC(data, buf[:])
	if err != nil {
		return nil, err
	}

	// The BDF accelerator table carries the metrics bounds computed over the
	// glyphs actually encoded; the plain accelerator table covers all glyphs.
	// Either will do for deriving the font bounding box.
	if toc[slotAccelerators] == nil {
		toc[slotAccelerators] = toc[slotPlainAccelerators]
	}
	for slot, entry := range toc[:slotAccelerators+1] {
		if entry == nil {
			return nil, errCorrupt(slotTables[slot].String(), "required table missing")
		}
		if entry.format&(formatMSByteFirst|formatMSBitFirst) != (formatMSByteFirst | formatMSBitFirst) {
			// only MSByte-first tables with MSBit-first bitmap rows are supported
			return nil, errUnsupported(slotTables[slot].String(),
				fmt.Sprintf("byte/bit order of format %#x not supported", entry.format))
		}
	}

	font := &Font{data: data}
	if err := parseBitmapsTable(data, toc[slotBitmaps], font, buf[:]); err != nil {
		return nil, err
	}
	if err := parseMetricsTable(data, toc[slotMetrics], font, buf[:]); err != nil {
		return nil, err
	}
	if err := parseEncodingTable(data, toc[slotEncodings], font, buf[:]); err != nil {
		return nil, err
	}
	if err := parseAcceleratorTable(data, toc[slotAccelerators], font, buf[:]); err != nil {
		return nil, err
	}

	// All table payloads are sane; derive the absolute offsets used for
	// per-glyph random access.
	font.bitmapLUTLocation = toc[slotBitmaps].offset + 4 + 4
	font.bitmapDataLocation = font.bitmapLUTLocation + (font.glyphCount+4)*4
	if font.metricsCompressed {
		font.metricsDataLocation = toc[slotMetrics].offset + 4 + 2
	} else {
		font.metricsDataLocation = toc[slotMetrics].offset + 4 + 4
	}
	font.encodedIndicesLocation = toc[slotEncodings].offset + 4 + 5*2

	tracer().Debugf("parsed PCF font: %d glyphs, ascent %d, descent %d, bbox %v",
		font.glyphCount, font.ascent, font.descent, font.bounds)
	return font, nil
}

// parseTOC reads the table of contents and retains the entries for the five
// table kinds we care about. Records of other table kinds are discarded.
// All TOC fields are little-endian.
func parseTOC(data io.ReadSeeker, buf []byte) ([slotCount]*tocEntry, error) {
	var toc [slotCount]*tocEntry
	if err := readExact(data, buf[:4], "TOC"); err != nil {
		return toc, err
	}
	tableCount := u32le(buf[:4])
	for i := uint32(0); i < tableCount; i++ {
		if err := readExact(data, buf[:16], "TOC"); err != nil {
			return toc, err
		}
		entry := &tocEntry{
			format: u32le(buf[4:8]),
			size:   u32le(buf[8:12]),
			offset: u32le(buf[12:16]),
		}
		switch TableType(u32le(buf[0:4])) {
		case TableBitmaps:
			toc[slotBitmaps] = entry
		case TableMetrics:
			toc[slotMetrics] = entry
		case TableBDFEncodings:
			toc[slotEncodings] = entry
		case TableBDFAccelerators:
			toc[slotAccelerators] = entry
		case TableAccelerators:
			toc[slotPlainAccelerators] = entry
		}
	}
	return toc, nil
}

// parseBitmapsTable extracts the glyph count and the row padding convention.
// The bitmap table is laid out as:
//
//	format      u32 (LE, repeated from the TOC)
//	glyph_count u32
//	offsets     u32[glyph_count]   // per-glyph offsets into the bitmap data
//	bitmapSizes u32[4]             // total data size for each padding mode
//	bitmap data
func parseBitmapsTable(data io.ReadSeeker, entry *tocEntry, font *Font, buf []byte) error {
	const section = "bitmaps"
	if entry.format&formatScanUnitMask != 0 {
		// bits stored in shorts or ints would require swapping within scan
		// units; only byte-granularity storage is handled
		return errUnsupported(section, "scan unit other than bytes")
	}
	padding := entry.format & formatGlyphPadMask
	if padding == formatGlyphPadMask {
		return errCorrupt(section, "reserved glyph padding value 3")
	}
	font.rowPadding = RowPadding(padding)

	if err := seekTo(data, int64(entry.offset)+4, section); err != nil {
		return err
	}
	if err := readExact(data, buf[:4], section); err != nil {
		return err
	}
	font.glyphCount = u32(buf[:4])
	// skip the per-glyph offsets to verify the bitmapSizes array is present
	if err := skip(data, int64(font.glyphCount)*4, section); err != nil {
		return err
	}
	return readExact(data, buf[:12], section)
}

// parseMetricsTable reads the metrics compression flag and cross-checks the
// metrics count against the bitmap table's glyph count.
func parseMetricsTable(data io.ReadSeeker, entry *tocEntry, font *Font, buf []byte) error {
	const section = "metrics"
	if err := seekTo(data, int64(entry.offset), section); err != nil {
		return err
	}
	if err := readExact(data, buf[:8], section); err != nil {
		return err
	}
	font.metricsCompressed = entry.format&formatCompressedMetrics != 0
	var metricsCount uint32
	if font.metricsCompressed {
		metricsCount = uint32(u16(buf[4:6]))
	} else {
		metricsCount = u32(buf[4:8])
	}
	if metricsCount != font.glyphCount {
		return errCorrupt(section, fmt.Sprintf("metrics count %d does not match glyph count %d",
			metricsCount, font.glyphCount))
	}
	return nil
}

// parseEncodingTable reads the 2-dimensional code point domain and the
// default character. The table is laid out as:
//
//	format            u32 (LE)
//	min_char_or_byte2 u16
//	max_char_or_byte2 u16
//	min_byte1         u16
//	max_byte1         u16
//	default_char      u16
//	glyph_indices     u16[...]    // row-major over the encoding domain
func parseEncodingTable(data io.ReadSeeker, entry *tocEntry, font *Font, buf []byte) error {
	const section = "encodings"
	if err := seekTo(data, int64(entry.offset)+4, section); err != nil {
		return err
	}
	if err := readExact(data, buf[:10], section); err != nil {
		return err
	}
	font.minCharOrByte2 = u16(buf[0:2])
	font.maxCharOrByte2 = u16(buf[2:4])
	font.minByte1 = u16(buf[4:6])
	font.maxByte1 = u16(buf[6:8])
	font.defaultChar = u16(buf[8:10])
	return nil
}

// parseAcceleratorTable reads the font-wide ascent/descent and derives the
// bounding box from the min/max metrics bounds. The table is laid out as:
//
//	format        u32 (LE)
//	8 bytes of per-font boolean flags and padding
//	font_ascent   i32
//	font_descent  i32
//	max_overlap   i32
//	minbounds     12-byte standard metrics
//	maxbounds     12-byte standard metrics
//	[ink_minbounds, ink_maxbounds]   // present iff format&0x100
//
// When ink bounds are present the regular bounds are skipped in their favor,
// giving the tight extent of actually inked pixels.
func parseAcceleratorTable(data io.ReadSeeker, entry *tocEntry, font *Font, buf []byte) error {
	const section = "accelerators"
	if err := seekTo(data, int64(entry.offset)+4+8, section); err != nil {
		return err
	}
	if err := readExact(data, buf[:8], section); err != nil {
		return err
	}
	font.ascent = i32(buf[0:4])
	font.descent = i32(buf[4:8])
	if err := skip(data, 4, section); err != nil { // max_overlap
		return err
	}
	if entry.format&formatInkBounds != 0 {
		if err := skip(data, 24, section); err != nil {
			return err
		}
	}
	if err := readExact(data, buf[:12], section); err != nil {
		return err
	}
	minbounds := metricsFromStandard(buf[:12])
	if err := readExact(data, buf[:12], section); err != nil {
		return err
	}
	maxbounds := metricsFromStandard(buf[:12])
	font.bounds = Bounds{
		Width:   int(maxbounds.RightSideBearing) - int(minbounds.LeftSideBearing),
		Height:  int(maxbounds.CharacterAscent) + int(maxbounds.CharacterDescent),
		XOffset: int(minbounds.LeftSideBearing),
		YOffset: -int(maxbounds.CharacterDescent),
	}
	return nil
}
