// Package glyphview approximates a raster image as a grid of terminal
// character cells. Each 4x8 pixel tile of the source image is reduced
// to a single Unicode glyph plus a foreground and background color so
// that the rendered cell visually approximates the underlying pixels.
//
// The pipeline per tile: gather per-channel statistics and an exact
// color histogram, reduce the tile to a 1-bit mask (either against the
// two dominant colors or by thresholding the widest color channel),
// find the closest glyph bitmap by Hamming distance (trying each
// pattern and its complement), resolve the two cell colors, and emit
// ANSI escape sequences in truecolor or 256-color indexed form.
package glyphview

// RGB represents a color with 8-bit channels. Channel values are
// always clamped to [0,255] before any distance or encoding math.
type RGB struct {
	R, G, B uint8
}

// toUint32 packs the channels into a 24-bit key, R in the high byte.
func (c RGB) toUint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// rgbFromUint32 unpacks a 24-bit color key produced by toUint32.
func rgbFromUint32(key uint32) RGB {
	return RGB{
		R: uint8(key >> 16),
		G: uint8(key >> 8),
		B: uint8(key),
	}
}

// clampByte clamps an int to the [0,255] channel range.
func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// PixelSource provides read-only per-pixel access over a decoded RGB
// buffer. Decoding, scaling and file handling are the caller's
// responsibility; imageutil.RGBAImage satisfies this interface.
type PixelSource interface {
	Width() int
	Height() int
	RGBAt(x, y int) (r, g, b uint8)
}

// Cell geometry. One terminal character cell covers a 4x8 pixel tile.
const (
	CellWidth  = 4
	CellHeight = 8

	cellPixels = CellWidth * CellHeight
)

// CharData is the classification result for one tile: the glyph to
// draw and its two colors. It is created fresh per tile; the emitter
// only retains the previous tile's CharData to elide color escapes.
type CharData struct {
	FG        RGB
	BG        RGB
	CodePoint rune
}
