package glyphview

import (
	"io"
	"os"
)

// Renderer holds the configuration for image-to-cell conversion.
// A zero-value Renderer is not ready for use; construct one with
// NewRenderer so defaults and the glyph table are set.
type Renderer struct {
	colors256     bool
	halfBlockOnly bool
	teletext      bool
	parallelism   int
	diag          io.Writer
	table         []BitmapEntry
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a Renderer with the given options. Defaults:
// truecolor output, glyph matching against the built-in block
// graphics table, serial classification, diagnostics to stderr.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		parallelism: 1,
		diag:        os.Stderr,
		table:       glyphTable,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.parallelism < 1 {
		r.parallelism = 1
	}
	return r
}

// WithColors256 emits 256-color indexed escapes instead of truecolor.
// Needed for terminals without 24-bit color support.
func WithColors256() RendererOption {
	return func(r *Renderer) { r.colors256 = true }
}

// WithHalfBlockOnly disables glyph matching: every cell uses the lower
// half block and averages the literal top and bottom halves of its
// tile. Cheap fallback for fonts with poor block-graphics coverage.
func WithHalfBlockOnly() RendererOption {
	return func(r *Renderer) { r.halfBlockOnly = true }
}

// WithTeletext extends matching into the legacy teletext sextant
// characters after the regular block set.
func WithTeletext() RendererOption {
	return func(r *Renderer) { r.teletext = true }
}

// WithGlyphTable replaces the built-in pattern table, e.g. with one
// built from a terminal font by BuildGlyphTable. The table must carry
// both sentinel entries; NewGlyphTable takes care of that.
func WithGlyphTable(table []BitmapEntry) RendererOption {
	return func(r *Renderer) { r.table = table }
}

// WithParallelism classifies tile rows on up to n goroutines. Output
// order and escape elision are unaffected: emission always runs
// serially in raster order over the classified rows.
func WithParallelism(n int) RendererOption {
	return func(r *Renderer) { r.parallelism = n }
}

// WithDiagnostics redirects non-fatal diagnostics (invalid code
// points) away from stderr. The primary output stream never carries
// diagnostics.
func WithDiagnostics(w io.Writer) RendererOption {
	return func(r *Renderer) { r.diag = w }
}

// TermColor encodes a single color as an escape sequence in the
// renderer's color mode, for the foreground or background role.
func (r *Renderer) TermColor(c RGB, background bool) string {
	return string(appendTermColor(nil, c, background, r.colors256))
}

// classifyTile produces the CharData for the tile at (x0, y0).
func (r *Renderer) classifyTile(src PixelSource, x0, y0 int) CharData {
	if r.halfBlockOnly {
		return averageCharData(src, x0, y0, DefaultCodePoint, DefaultPattern)
	}

	st := scanTile(src, x0, y0)
	m := buildMask(src, x0, y0, st)
	match := matchGlyph(r.table, m.bits, r.teletext)

	if m.direct {
		return resolveDirect(m, match)
	}
	return averageCharData(src, x0, y0, match.CodePoint, match.Pattern)
}
