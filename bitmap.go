package glyphview

import "math/bits"

// BitmapEntry pairs a 4x8 cell pattern with the Unicode code point
// that draws it. Pattern bits are in raster order with the most
// significant bit at the top-left pixel.
type BitmapEntry struct {
	Pattern   uint32
	CodePoint rune
}

// Sentinel code points inside glyph tables. Entries whose code point
// is below 32 are markers, never real glyphs: 0 terminates the regular
// block-graphics set, 1 terminates the extended teletext set.
const (
	endRegular  rune = 0
	endTeletext rune = 1
)

// Default glyph used when no table entry scores below the similarity
// floor, and by the half-block-only fallback mode: the lower half
// block, whose pattern covers the bottom four rows of the cell.
const (
	DefaultCodePoint rune   = 0x2584
	DefaultPattern   uint32 = 0x0000ffff
)

// glyphTable maps cell patterns to code points. Each hex digit of a
// pattern is one 4-pixel row. Scan order is part of the matching
// contract: the first entry reaching a strictly smaller Hamming
// distance wins and is never displaced by a later tie.
//
// Patterns redundant under inversion (upper half vs lower half, full
// block vs space, 3/4 quadrants vs 1/4 quadrants) are omitted; the
// matcher tries every pattern's complement anyway.
var glyphTable = []BitmapEntry{
	{0x00000000, 0x00a0}, // no-break space

	// Block graphics
	{0x0000000f, 0x2581}, // lower 1/8
	{0x000000ff, 0x2582}, // lower 1/4
	{0x00000fff, 0x2583},
	{0x0000ffff, 0x2584}, // lower 1/2
	{0x000fffff, 0x2585},
	{0x00ffffff, 0x2586}, // lower 3/4
	{0x0fffffff, 0x2587},

	{0xeeeeeeee, 0x258a}, // left 3/4
	{0xcccccccc, 0x258c}, // left 1/2
	{0x88888888, 0x258e}, // left 1/4

	{0x0000cccc, 0x2596}, // quadrant lower left
	{0x00003333, 0x2597}, // quadrant lower right
	{0xcccc0000, 0x2598}, // quadrant upper left
	{0xcccc3333, 0x259a}, // diagonal 1/2
	{0x33330000, 0x259d}, // quadrant upper right

	// Line drawing subset: no double lines, no complex light lines
	{0x000ff000, 0x2501}, // heavy horizontal
	{0x66666666, 0x2503}, // heavy vertical

	{0x00077666, 0x250f}, // heavy down and right
	{0x000ee666, 0x2513}, // heavy down and left
	{0x66677000, 0x2517}, // heavy up and right
	{0x666ee000, 0x251b}, // heavy up and left

	{0x66677666, 0x2523}, // heavy vertical and right
	{0x666ee666, 0x252b}, // heavy vertical and left
	{0x000ff666, 0x2533}, // heavy down and horizontal
	{0x666ff000, 0x253b}, // heavy up and horizontal
	{0x666ff666, 0x254b}, // heavy cross

	{0x000cc000, 0x2578}, // bold horizontal left
	{0x00066000, 0x2579}, // bold horizontal up
	{0x00033000, 0x257a}, // bold horizontal right
	{0x00066000, 0x257b}, // bold horizontal down

	{0x06600660, 0x254f}, // heavy double dash vertical

	{0x000f0000, 0x2500}, // light horizontal
	{0x0000f000, 0x2500},
	{0x44444444, 0x2502}, // light vertical
	{0x22222222, 0x2502},

	{0x000e0000, 0x2574}, // light left
	{0x0000e000, 0x2574},
	{0x44440000, 0x2575}, // light up
	{0x22220000, 0x2575},
	{0x00030000, 0x2576}, // light right
	{0x00003000, 0x2576},
	{0x00004444, 0x2577}, // light down
	{0x00002222, 0x2577},

	// Misc technical
	{0x44444444, 0x23a2}, // [ extension
	{0x22222222, 0x23a5}, // ] extension

	{0x0f000000, 0x23ba}, // horizontal scanline 1
	{0x00f00000, 0x23bb}, // horizontal scanline 3
	{0x00000f00, 0x23bc}, // horizontal scanline 7
	{0x000000f0, 0x23bd}, // horizontal scanline 9

	{0x00066000, 0x25aa}, // black small square

	{0, endRegular},

	// Teletext / legacy computing 3x2 sextant characters, using a
	// 3-2-3 row split of the 8 cell rows.
	{0xccc00000, 0x1fb00}, {0x33300000, 0x1fb01}, {0xfff00000, 0x1fb02},
	{0x000cc000, 0x1fb03}, {0xccccc000, 0x1fb04}, {0x333cc000, 0x1fb05},
	{0xfffcc000, 0x1fb06}, {0x00033000, 0x1fb07}, {0xccc33000, 0x1fb08},
	{0x33333000, 0x1fb09}, {0xfff33000, 0x1fb0a}, {0x000ff000, 0x1fb0b},
	{0xcccff000, 0x1fb0c}, {0x333ff000, 0x1fb0d}, {0xfffff000, 0x1fb0e},
	{0x00000ccc, 0x1fb0f},

	{0xccc00ccc, 0x1fb10}, {0x33300ccc, 0x1fb11}, {0xfff00ccc, 0x1fb12},
	{0x000ccccc, 0x1fb13}, {0x333ccccc, 0x1fb14}, {0xfffccccc, 0x1fb15},
	{0x00033ccc, 0x1fb16}, {0xccc33ccc, 0x1fb17}, {0x33333ccc, 0x1fb18},
	{0xfff33ccc, 0x1fb19}, {0x000ffccc, 0x1fb1a}, {0xcccffccc, 0x1fb1b},
	{0x333ffccc, 0x1fb1c}, {0xfffffccc, 0x1fb1d}, {0x00000333, 0x1fb1e},
	{0xccc00333, 0x1fb1f},

	{0x33300333, 0x1fb20}, {0xfff00333, 0x1fb21}, {0x000cc333, 0x1fb22},
	{0xccccc333, 0x1fb23}, {0x333cc333, 0x1fb24}, {0xfffcc333, 0x1fb25},
	{0x00033333, 0x1fb26}, {0xccc33333, 0x1fb27}, {0xfff33333, 0x1fb28},
	{0x000ff333, 0x1fb29}, {0xcccff333, 0x1fb2a}, {0x333ff333, 0x1fb2b},
	{0xfffff333, 0x1fb2c}, {0x00000fff, 0x1fb2d}, {0xccc00fff, 0x1fb2e},
	{0x33300fff, 0x1fb2f},

	{0xfff00fff, 0x1fb30}, {0x000ccfff, 0x1fb31}, {0xcccccfff, 0x1fb32},
	{0x333ccfff, 0x1fb33}, {0xfffccfff, 0x1fb34}, {0x00033fff, 0x1fb35},
	{0xccc33fff, 0x1fb36}, {0x33333fff, 0x1fb37}, {0xfff33fff, 0x1fb38},
	{0x000fffff, 0x1fb39}, {0xcccfffff, 0x1fb3a}, {0x333fffff, 0x1fb3b},

	{0, endTeletext},
}

// matchResult records the winning glyph for a tile mask. Pattern is
// the entry's original, non-complemented pattern; Inverted reports
// whether the complemented orientation produced the winning distance,
// in which case the foreground and background color roles swap.
type matchResult struct {
	Pattern   uint32
	CodePoint rune
	Inverted  bool
}

// matchGlyph finds the table entry whose pattern (or complement) has
// the smallest Hamming distance to mask. The best distance is seeded
// at 8, acting as a similarity floor: if no candidate scores below it,
// the lower half block is kept as the default. Scanning stops at the
// regular sentinel unless teletext is enabled, in which case it
// continues through the legacy block to the second sentinel.
func matchGlyph(table []BitmapEntry, mask uint32, teletext bool) matchResult {
	best := matchResult{
		Pattern:   DefaultPattern,
		CodePoint: DefaultCodePoint,
	}
	bestDiff := 8

	end := endRegular
	if teletext {
		end = endTeletext
	}
	for _, e := range table {
		if e.CodePoint == end {
			break
		}
		if e.CodePoint < 32 {
			// Internal marker row, not a glyph.
			continue
		}
		p := e.Pattern
		for j := 0; j < 2; j++ {
			diff := bits.OnesCount32(p ^ mask)
			if diff < bestDiff {
				bestDiff = diff
				best.Pattern = e.Pattern
				best.CodePoint = e.CodePoint
				best.Inverted = p != e.Pattern
			}
			p = ^p
		}
	}
	return best
}

// NewGlyphTable assembles a matcher-compatible table from raw entries:
// the regular set, the optional teletext set, and the two terminating
// sentinels. Entry order is preserved and determines tie-breaking.
func NewGlyphTable(regular, teletext []BitmapEntry) []BitmapEntry {
	table := make([]BitmapEntry, 0, len(regular)+len(teletext)+2)
	table = append(table, regular...)
	table = append(table, BitmapEntry{0, endRegular})
	table = append(table, teletext...)
	table = append(table, BitmapEntry{0, endTeletext})
	return table
}
