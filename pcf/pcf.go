package pcf

import "fmt"

// magic is the 4-byte signature at the start of every PCF file.
var magic = [4]byte{0x01, 0x66, 0x63, 0x70} // \x01fcp

// TableType identifies one of the sub-tables of a PCF font. A font contains
// at most one table per type.
type TableType uint32

const (
	TableProperties      TableType = 1 << 0
	TableAccelerators    TableType = 1 << 1
	TableMetrics         TableType = 1 << 2
	TableBitmaps         TableType = 1 << 3
	TableInkMetrics      TableType = 1 << 4
	TableBDFEncodings    TableType = 1 << 5
	TableSWidths         TableType = 1 << 6
	TableGlyphNames      TableType = 1 << 7
	TableBDFAccelerators TableType = 1 << 8
)

// String returns the table name as used by the PCF format reference.
func (t TableType) String() string {
	switch t {
	case TableProperties:
		return "properties"
	case TableAccelerators:
		return "accelerators"
	case TableMetrics:
		return "metrics"
	case TableBitmaps:
		return "bitmaps"
	case TableInkMetrics:
		return "ink metrics"
	case TableBDFEncodings:
		return "encodings"
	case TableSWidths:
		return "swidths"
	case TableGlyphNames:
		return "glyph names"
	case TableBDFAccelerators:
		return "BDF accelerators"
	}
	return fmt.Sprintf("unknown table (%#x)", uint32(t))
}

// Format flags, present once in each TOC record and repeated at the start of
// each table payload. From the PCF format reference:
//
//	/* the byte order     (format&4 => MSByte first) */
//	/* the bit order      (format&8 => MSBit first) */
//	/* how each row in each glyph's bitmap is padded (format&3) */
//	/*    0=>bytes, 1=>shorts, 2=>ints */
//	/* what the bits are stored in (bytes, shorts, ints) (format>>4)&3 */
//	/*    0=>bytes, 1=>shorts, 2=>ints */
const (
	formatGlyphPadMask = 3 << 0
	formatMSByteFirst  = 1 << 2
	formatMSBitFirst   = 1 << 3
	formatScanUnitMask = 3 << 4
	// formatInkBounds flags an accelerator table carrying extra ink-bound
	// metrics after the regular min/max bounds.
	formatInkBounds = 0x00000100
	// formatCompressedMetrics flags a metrics table with byte-sized,
	// 0x80-biased entries instead of 16-bit fields.
	formatCompressedMetrics = 0x00000100
)

// RowPadding is the byte-alignment convention each glyph bitmap row is
// rounded up to in storage.
type RowPadding int

const (
	PadToByte  RowPadding = iota // rows padded to 1 byte
	PadToShort                   // rows padded to 2 bytes
	PadToInt                     // rows padded to 4 bytes
)

// Units returns the padding unit in bytes.
func (p RowPadding) Units() int {
	switch p {
	case PadToShort:
		return 2
	case PadToInt:
		return 4
	}
	return 1
}

func (p RowPadding) String() string {
	switch p {
	case PadToByte:
		return "byte"
	case PadToShort:
		return "short"
	case PadToInt:
		return "int"
	}
	return fmt.Sprintf("RowPadding(%d)", int(p))
}

// bytesPerRow returns the length in bytes of a bitmap row of `width` pixels,
// rounded up to a whole number of `align`-byte units.
func bytesPerRow(width, align int) int {
	unitAlignBits := align * 8
	blockCount := (width + unitAlignBits - 1) / unitAlignBits
	return blockCount * align
}

// --- Glyph metrics ---------------------------------------------------------

// GlyphIndex is a glyph index in a font.
type GlyphIndex uint16

// noGlyph is the encoding table's sentinel for "no glyph at this code point".
const noGlyph = 0xFFFF

// MetricsEntry holds the metrics of a single glyph. Pen advance is
// CharacterWidth; the visible pixels of the glyph cover the horizontal span
// from LeftSideBearing to RightSideBearing, relative to the pen position.
type MetricsEntry struct {
	LeftSideBearing     int16
	RightSideBearing    int16
	CharacterWidth      int16
	CharacterAscent     int16
	CharacterDescent    int16
	CharacterAttributes uint16
}

// GlyphWidth returns the width in pixels of the glyph's visible bitmap.
func (m MetricsEntry) GlyphWidth() int {
	return int(m.RightSideBearing) - int(m.LeftSideBearing)
}

// GlyphHeight returns the height in pixels of the glyph's visible bitmap.
func (m MetricsEntry) GlyphHeight() int {
	return int(m.CharacterAscent) + int(m.CharacterDescent)
}

// metricsFromCompressed decodes a 5-byte compressed metrics entry. Each byte
// carries a bias of 0x80; attributes are implied to be zero.
// Data must be at least 5 bytes long.
func metricsFromCompressed(data []byte) MetricsEntry {
	return MetricsEntry{
		LeftSideBearing:  int16(data[0]) - 0x80,
		RightSideBearing: int16(data[1]) - 0x80,
		CharacterWidth:   int16(data[2]) - 0x80,
		CharacterAscent:  int16(data[3]) - 0x80,
		CharacterDescent: int16(data[4]) - 0x80,
	}
}

// metricsFromStandard decodes a 12-byte standard metrics entry.
// Data must be at least 12 bytes long.
func metricsFromStandard(data []byte) MetricsEntry {
	return MetricsEntry{
		LeftSideBearing:     i16(data[0:2]),
		RightSideBearing:    i16(data[2:4]),
		CharacterWidth:      i16(data[4:6]),
		CharacterAscent:     i16(data[6:8]),
		CharacterDescent:    i16(data[8:10]),
		CharacterAttributes: u16(data[10:12]),
	}
}

// --- Font bounding box -----------------------------------------------------

// Bounds is the maximum glyph extent of a font, derived from the accelerator
// table's min/max metrics. YOffset is the negated maximum descent, so it is
// zero or negative for typical fonts.
type Bounds struct {
	Width   int
	Height  int
	XOffset int
	YOffset int
}

// MaxAscent returns the maximum pixels above the baseline of any glyph.
func (b Bounds) MaxAscent() int {
	return b.Height + b.YOffset
}

// MaxDescent returns the negated maximum pixels below the baseline, i.e. a
// value ≤ 0 for typical fonts.
func (b Bounds) MaxDescent() int {
	return b.YOffset
}
