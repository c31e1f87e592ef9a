// Package fontgen builds synthetic PCF font containers in memory.
//
// It is test support: the generated fonts are small, deterministic and can
// be selectively malformed to exercise the parser's error paths. The
// builder deliberately avoids importing package pcf so that pcf's own
// in-package tests can use it.
package fontgen

// PCF table type values.
const (
	tableProperties      = 1 << 0
	tableAccelerators    = 1 << 1
	tableMetrics         = 1 << 2
	tableBitmaps         = 1 << 3
	tableBDFEncodings    = 1 << 5
	tableBDFAccelerators = 1 << 8
)

// format flag bits
const (
	fmtMSByteFirst = 1 << 2
	fmtMSBitFirst  = 1 << 3
	fmtInkBounds   = 0x100
	fmtCompressed  = 0x100
)

// Glyph describes one glyph of a synthetic font. Bitmap rows use 'X' or '#'
// for inked pixels; all rows must have equal length. The number of rows must
// equal Ascent+Descent, and the row length is the glyph width (right side
// bearing = LSB + width).
type Glyph struct {
	Encoding uint16
	LSB      int
	Advance  int
	Ascent   int
	Descent  int
	Bitmap   []string
}

func (g Glyph) width() int {
	if len(g.Bitmap) == 0 {
		return 0
	}
	return len(g.Bitmap[0])
}

func (g Glyph) height() int {
	return g.Ascent + g.Descent
}

// Options controls layout variants and deliberate corruption of the
// generated container.
type Options struct {
	Ascent      int // font ascent; defaults to max glyph ascent + 1
	Descent     int // font descent; defaults to max glyph descent
	DefaultChar uint16

	Padding           int  // glyph row padding unit: 1 (default), 2 or 4
	CompressedMetrics bool // emit 5-byte biased metrics entries
	InkBounds         bool // accelerator table with extra ink bounds
	BDFAccelerators   bool // emit a dedicated BDF accelerators table
	IncludeProperties bool // emit a (skipped) properties table

	// corruption knobs
	BadMagic          bool // break the magic signature
	MetricsCountDelta int  // offset the metrics count against the glyph count
	ScanUnit          int  // nonzero: claim short/int scan units in the bitmap format
	ReservedPadding   bool // claim the reserved glyph padding value 3
	LSByteMetrics     bool // drop the MSByte/MSBit flags from the metrics format
	OmitEncodings     bool // drop the encodings table entirely
}

func (o Options) padUnits() int {
	switch o.Padding {
	case 2, 4:
		return o.Padding
	}
	return 1
}

func (o Options) padBits() uint32 {
	if o.ReservedPadding {
		return 3
	}
	switch o.Padding {
	case 2:
		return 1
	case 4:
		return 2
	}
	return 0
}

func bytesPerRow(width, align int) int {
	bits := align * 8
	return (width + bits - 1) / bits * align
}

// Build assembles a PCF container for the given glyphs. Glyph indices are
// assigned in slice order.
func Build(opts Options, glyphs []Glyph) []byte {
	ascent, descent := opts.Ascent, opts.Descent
	for _, g := range glyphs {
		if g.Ascent+1 > ascent {
			ascent = g.Ascent + 1
		}
		if g.Descent > descent {
			descent = g.Descent
		}
	}

	bitmaps, bitmapsFormat := bitmapsTable(opts, glyphs)
	metrics, metricsFormat := metricsTable(opts, glyphs)
	encodings := encodingTable(opts, glyphs)
	accel, accelFormat := acceleratorTable(opts, glyphs, ascent, descent)

	type table struct {
		typ     uint32
		format  uint32
		payload []byte
	}
	tables := []table{}
	if opts.IncludeProperties {
		tables = append(tables, table{tableProperties, baseFormat(), leU32(baseFormat())})
	}
	tables = append(tables,
		table{tableBitmaps, bitmapsFormat, bitmaps},
		table{tableMetrics, metricsFormat, metrics},
	)
	if !opts.OmitEncodings {
		tables = append(tables, table{tableBDFEncodings, baseFormat(), encodings})
	}
	accelType := uint32(tableAccelerators)
	if opts.BDFAccelerators {
		accelType = tableBDFAccelerators
	}
	tables = append(tables, table{accelType, accelFormat, accel})

	out := []byte{0x01, 0x66, 0x63, 0x70}
	if opts.BadMagic {
		out = []byte{0x00, 0x66, 0x63, 0x70}
	}
	out = append(out, leU32(uint32(len(tables)))...)
	offset := uint32(len(out) + len(tables)*16)
	for _, t := range tables {
		out = append(out, leU32(t.typ)...)
		out = append(out, leU32(t.format)...)
		out = append(out, leU32(uint32(len(t.payload)))...)
		out = append(out, leU32(offset)...)
		offset += uint32(len(t.payload))
	}
	for _, t := range tables {
		out = append(out, t.payload...)
	}
	return out
}

func baseFormat() uint32 {
	return fmtMSByteFirst | fmtMSBitFirst
}

// bitmapsTable lays out: format, glyph count, per-glyph offsets, the four
// bitmapSizes entries, then the padded bitmap data.
func bitmapsTable(opts Options, glyphs []Glyph) ([]byte, uint32) {
	format := baseFormat() | opts.padBits() | uint32(opts.ScanUnit)<<4
	pad := opts.padUnits()

	var data []byte
	offsets := make([]uint32, len(glyphs))
	for i, g := range glyphs {
		offsets[i] = uint32(len(data))
		rowBytes := bytesPerRow(g.width(), pad)
		for _, row := range g.Bitmap {
			packed := make([]byte, rowBytes)
			for x, c := range row {
				if c == 'X' || c == '#' {
					packed[x/8] |= 0x80 >> (x % 8)
				}
			}
			data = append(data, packed...)
		}
	}

	out := leU32(format)
	out = append(out, beU32(uint32(len(glyphs)))...)
	for _, off := range offsets {
		out = append(out, beU32(off)...)
	}
	for _, unit := range []int{1, 2, 4, 8} {
		size := uint32(0)
		for _, g := range glyphs {
			size += uint32(bytesPerRow(g.width(), unit) * g.height())
		}
		out = append(out, beU32(size)...)
	}
	return append(out, data...), format
}

func metricsTable(opts Options, glyphs []Glyph) ([]byte, uint32) {
	format := baseFormat()
	if opts.LSByteMetrics {
		format = 0
	}
	count := uint32(len(glyphs)) + uint32(opts.MetricsCountDelta)
	out := leU32(format)
	if opts.CompressedMetrics {
		format |= fmtCompressed
		out = append(out, beU16(uint16(count))...)
		for _, g := range glyphs {
			out = append(out,
				byte(g.LSB+0x80),
				byte(g.LSB+g.width()+0x80),
				byte(g.Advance+0x80),
				byte(g.Ascent+0x80),
				byte(g.Descent+0x80))
		}
	} else {
		out = append(out, beU32(count)...)
		for _, g := range glyphs {
			out = append(out, standardMetrics(g)...)
		}
	}
	return out, format
}

func standardMetrics(g Glyph) []byte {
	out := beU16(uint16(int16(g.LSB)))
	out = append(out, beU16(uint16(int16(g.LSB+g.width())))...)
	out = append(out, beU16(uint16(int16(g.Advance)))...)
	out = append(out, beU16(uint16(int16(g.Ascent)))...)
	out = append(out, beU16(uint16(int16(g.Descent)))...)
	return append(out, beU16(0)...)
}

func encodingTable(opts Options, glyphs []Glyph) []byte {
	minB1, maxB1 := uint16(0xFF), uint16(0)
	minB2, maxB2 := uint16(0xFF), uint16(0)
	for _, g := range glyphs {
		b1, b2 := g.Encoding>>8, g.Encoding&0xFF
		minB1, maxB1 = min(minB1, b1), max(maxB1, b1)
		minB2, maxB2 = min(minB2, b2), max(maxB2, b2)
	}

	out := leU32(baseFormat())
	out = append(out, beU16(minB2)...)
	out = append(out, beU16(maxB2)...)
	out = append(out, beU16(minB1)...)
	out = append(out, beU16(maxB1)...)
	out = append(out, beU16(opts.DefaultChar)...)

	cols := int(maxB2-minB2) + 1
	rows := int(maxB1-minB1) + 1
	grid := make([]uint16, rows*cols)
	for i := range grid {
		grid[i] = 0xFFFF // no glyph
	}
	for i, g := range glyphs {
		b1, b2 := g.Encoding>>8, g.Encoding&0xFF
		grid[int(b1-minB1)*cols+int(b2-minB2)] = uint16(i)
	}
	for _, index := range grid {
		out = append(out, beU16(index)...)
	}
	return out
}

func acceleratorTable(opts Options, glyphs []Glyph, ascent, descent int) ([]byte, uint32) {
	format := baseFormat()
	if opts.InkBounds {
		format |= fmtInkBounds
	}

	minb, maxb := boundsOf(glyphs)
	out := leU32(format)
	out = append(out, make([]byte, 8)...) // boolean flags and padding
	out = append(out, beU32(uint32(int32(ascent)))...)
	out = append(out, beU32(uint32(int32(descent)))...)
	out = append(out, beU32(0)...) // max_overlap
	if opts.InkBounds {
		// non-ink bounds come first and are skipped by readers wanting
		// ink bounds; emit the same values for both
		out = append(out, minb...)
		out = append(out, maxb...)
	}
	out = append(out, minb...)
	out = append(out, maxb...)
	return out, format
}

func boundsOf(glyphs []Glyph) (minb, maxb []byte) {
	lo := Glyph{LSB: 1 << 14, Advance: 1 << 14, Ascent: 1 << 14, Descent: 1 << 14}
	hi := Glyph{LSB: -(1 << 14), Advance: -(1 << 14), Ascent: -(1 << 14), Descent: -(1 << 14)}
	hiRSB, loRSB := -(1 << 14), 1<<14
	for _, g := range glyphs {
		lo.LSB = min(lo.LSB, g.LSB)
		lo.Advance = min(lo.Advance, g.Advance)
		lo.Ascent = min(lo.Ascent, g.Ascent)
		lo.Descent = min(lo.Descent, g.Descent)
		loRSB = min(loRSB, g.LSB+g.width())
		hi.LSB = max(hi.LSB, g.LSB)
		hi.Advance = max(hi.Advance, g.Advance)
		hi.Ascent = max(hi.Ascent, g.Ascent)
		hi.Descent = max(hi.Descent, g.Descent)
		hiRSB = max(hiRSB, g.LSB+g.width())
	}
	minb = metricsBytes(lo.LSB, loRSB, lo.Advance, lo.Ascent, lo.Descent)
	maxb = metricsBytes(hi.LSB, hiRSB, hi.Advance, hi.Ascent, hi.Descent)
	return
}

func metricsBytes(lsb, rsb, advance, ascent, descent int) []byte {
	out := beU16(uint16(int16(lsb)))
	out = append(out, beU16(uint16(int16(rsb)))...)
	out = append(out, beU16(uint16(int16(advance)))...)
	out = append(out, beU16(uint16(int16(ascent)))...)
	out = append(out, beU16(uint16(int16(descent)))...)
	return append(out, beU16(0)...)
}

func leU32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func beU32(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func beU16(v uint16) []byte {
	return []byte{byte(v >> 8), byte(v)}
}
