/*
Package pcfrender draws text set in a PCF bitmap font onto a pixel surface.

The renderer positions glyphs relative to a chosen baseline, composites
glyph bitmaps with configurable foreground and background colors, measures
strings and draws underline/strikethrough decorations. It performs no
shaping: PCF glyphs carry a fixed advance each, so layout is a plain
left-to-right accumulation of character widths.

The pixel surface is an interface (see Surface); clients bring their own
display or use ImageSurface to render into a standard library image.

Font-level failures are contained per character: a code point without a
glyph is retried once with the font's default character, and a character
that still cannot be resolved is skipped with zero advance. A skipped
character is therefore indistinguishable from an intentionally absent one;
callers wanting to distinguish the two should probe the font directly
before drawing. Errors of the pixel surface are never swallowed.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package pcfrender

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pcf.render'
func tracer() tracing.Trace {
	return tracing.Select("pcf.render")
}
