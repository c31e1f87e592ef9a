/*
Package pcf provides access to the tables of a PCF bitmap font.

PCF ("portable compiled format") is the binary font container used by the
X Window System for bitmap fonts. A PCF file starts with a 4-byte magic
signature, followed by a table of contents which locates up to nine
sub-tables. This package reads the four tables needed to serve glyphs:
bitmaps, metrics, encodings and accelerators. Everything else (properties,
scalable widths, glyph names, ink metrics) is skipped.

Unlike package designs which slurp a whole font into typed structures,
package `pcf` keeps the font in its byte source and performs seek+read
operations per glyph query. This mirrors how PCF fonts are used on
resource-constrained targets: the font stays in (read-only) storage and
only the glyph currently being drawn is ever in memory.

A Font handle owns its byte source, including the source's read cursor.
Handles are therefore not safe for concurrent use; clients needing
concurrent glyph queries should open one handle per logical reader over
the same immutable bytes.

Format references:

▪︎ https://fontforge.org/docs/techref/pcf-format.html

▪︎ https://formats.kaitai.io/pcf_font/index.html

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package pcf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.pcf'
func tracer() tracing.Trace {
	return tracing.Select("font.pcf")
}
