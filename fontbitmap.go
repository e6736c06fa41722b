package glyphview

import (
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// patternBit reports whether the pattern pixel at (x, y) is set. The
// most significant bit is the top-left pixel, rows are raster order.
func patternBit(p uint32, x, y int) bool {
	if x < 0 || x >= CellWidth || y < 0 || y >= CellHeight {
		return false
	}
	return p&(1<<uint(31-(y*CellWidth+x))) != 0
}

// setPatternBit sets the pattern pixel at (x, y).
func setPatternBit(p *uint32, x, y int) {
	if x < 0 || x >= CellWidth || y < 0 || y >= CellHeight {
		return
	}
	*p |= 1 << uint(31-(y*CellWidth+x))
}

// glyphThreshold is the alpha level above which a rasterized pixel
// counts as foreground. Anti-aliased rendering leaves many edge pixels
// at 25-75% coverage; a 25% threshold keeps thin strokes from
// vanishing in a cell this small.
const glyphThreshold = 64

// RenderGlyphPattern rasterizes a single rune into a 4x8 cell pattern
// using the given TrueType font. Runes the font cannot draw come back
// as an empty pattern.
func RenderGlyphPattern(ttf *truetype.Font, r rune) uint32 {
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(CellHeight),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	img := image.NewAlpha(image.Rect(0, 0, CellWidth, CellHeight))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(float64(CellHeight))
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	// Baseline from the font metrics so descenders are not clipped.
	metrics := face.Metrics()
	ascent := int(metrics.Ascent >> 6)
	descent := int(metrics.Descent >> 6)
	baselineY := (CellHeight + ascent - descent) / 2

	pt := freetype.Pt(0, baselineY)
	if _, err := ctx.DrawString(string(r), pt); err != nil {
		return 0
	}

	var pattern uint32
	for y := 0; y < CellHeight; y++ {
		for x := 0; x < CellWidth; x++ {
			if img.AlphaAt(x, y).A > glyphThreshold {
				setPatternBit(&pattern, x, y)
			}
		}
	}
	return pattern
}

// BuildGlyphTable rasterizes the given runes from a TrueType font file
// into a matcher-compatible glyph table. Rune order is preserved, so
// earlier runes win Hamming-distance ties. Runes that rasterize to an
// empty pattern are dropped: the empty cell is already covered by the
// matcher's complement handling of the full patterns.
func BuildGlyphTable(fontPath string, runes []rune) ([]BitmapEntry, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("reading font: %w", err)
	}
	ttf, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", fontPath, err)
	}

	entries := make([]BitmapEntry, 0, len(runes))
	for _, r := range runes {
		if r < 32 {
			continue
		}
		p := RenderGlyphPattern(ttf, r)
		if p == 0 {
			continue
		}
		entries = append(entries, BitmapEntry{Pattern: p, CodePoint: r})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("font %s produced no usable glyphs", fontPath)
	}
	return NewGlyphTable(entries, nil), nil
}

// BlockRunes is a rune set suited to BuildGlyphTable: the block
// elements and box drawing characters the built-in table approximates.
func BlockRunes() []rune {
	seen := make(map[rune]bool, len(glyphTable))
	runes := make([]rune, 0, len(glyphTable))
	for _, e := range glyphTable {
		if e.CodePoint < 32 || seen[e.CodePoint] {
			continue
		}
		seen[e.CodePoint] = true
		runes = append(runes, e.CodePoint)
	}
	return runes
}
