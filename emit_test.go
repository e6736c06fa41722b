package glyphview

import (
	"strings"
	"testing"
)

// nbsp is the glyph matched by an all-zero mask (uniform tiles).
const nbsp = "\u00a0"

// sideBySide builds an image from tiles laid out left to right.
func sideBySide(tiles ...*testImage) *testImage {
	img := newTestImage(CellWidth*len(tiles), CellHeight)
	for i, tile := range tiles {
		for y := 0; y < CellHeight; y++ {
			for x := 0; x < CellWidth; x++ {
				r, g, b := tile.RGBAt(x, y)
				img.set(i*CellWidth+x, y, RGB{r, g, b})
			}
		}
	}
	return img
}

func fgEsc(c RGB) string { return string(appendTermColor(nil, c, false, false)) }
func bgEsc(c RGB) string { return string(appendTermColor(nil, c, true, false)) }

func uniformTile(c RGB) *testImage {
	img := newTestImage(CellWidth, CellHeight)
	img.fill(0, 0, c)
	return img
}

func TestClassifyUniformWhiteTile(t *testing.T) {
	t.Parallel()

	// Uniform tiles are trivially direct (count2 = 32) and must come
	// out with identical fg and bg regardless of the matched glyph.
	cd := NewRenderer().classifyTile(uniformTile(white), 0, 0)
	if cd.FG != white || cd.BG != white {
		t.Errorf("fg/bg = %v/%v, want white/white", cd.FG, cd.BG)
	}
}

func TestClassifyHalfBlackWhiteTile(t *testing.T) {
	t.Parallel()

	// Top four rows black, bottom four white: an exact lower half
	// block. Whichever of the tied dominant colors is scanned first,
	// the inversion handling must resolve to fg white over bg black.
	cd := NewRenderer().classifyTile(halfTile(black, white), 0, 0)
	if cd.CodePoint != 0x2584 {
		t.Errorf("code point = %U, want U+2584", cd.CodePoint)
	}
	if cd.FG != white || cd.BG != black {
		t.Errorf("fg/bg = %v/%v, want white/black", cd.FG, cd.BG)
	}
}

func TestClassifyHalfBlockOnly(t *testing.T) {
	t.Parallel()

	red := RGB{200, 0, 0}
	blue := RGB{0, 0, 200}
	cd := NewRenderer(WithHalfBlockOnly()).classifyTile(halfTile(red, blue), 0, 0)
	if cd.CodePoint != DefaultCodePoint {
		t.Errorf("code point = %U, want the half block", cd.CodePoint)
	}
	// Bottom half is the pattern's foreground.
	if cd.FG != blue || cd.BG != red {
		t.Errorf("fg/bg = %v/%v, want blue/red", cd.FG, cd.BG)
	}
}

func TestSplitModeAveragesBuckets(t *testing.T) {
	t.Parallel()

	// Bottom half bright with per-pixel green jitter, top half dark
	// with jitter: more than two dominant colors, so split mode runs
	// and the resolved colors are bucket averages, not exact pixels.
	img := newTestImage(CellWidth, CellHeight)
	for i := 0; i < cellPixels; i++ {
		x, y := i%CellWidth, i/CellWidth
		if y < CellHeight/2 {
			img.set(x, y, RGB{10, uint8(i), 10})
		} else {
			img.set(x, y, RGB{200, uint8(200 + i%8), 200})
		}
	}

	cd := NewRenderer().classifyTile(img, 0, 0)
	if cd.CodePoint != 0x2584 {
		t.Fatalf("code point = %U, want U+2584", cd.CodePoint)
	}
	if cd.FG.R != 200 || cd.FG.B != 200 {
		t.Errorf("fg = %v, want the bright bucket average", cd.FG)
	}
	if cd.BG.R != 10 || cd.BG.B != 10 {
		t.Errorf("bg = %v, want the dark bucket average", cd.BG)
	}
}

func TestRenderElidesUnchangedColors(t *testing.T) {
	t.Parallel()

	img := sideBySide(uniformTile(white), uniformTile(white))
	out, err := NewRenderer().RenderString(img)
	if err != nil {
		t.Fatal(err)
	}

	// The second tile is identical: its escapes are elided entirely.
	want := bgEsc(white) + fgEsc(white) + nbsp + nbsp + "\x1b[0m\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRenderReEmitsOnlyChangedRole(t *testing.T) {
	t.Parallel()

	// Tile 1: uniform white (fg = bg = white). Tile 2: lower half
	// block, fg white, bg black. Only the background escape may be
	// re-emitted for tile 2.
	img := sideBySide(uniformTile(white), halfTile(black, white))
	out, err := NewRenderer().RenderString(img)
	if err != nil {
		t.Fatal(err)
	}

	want := bgEsc(white) + fgEsc(white) + nbsp +
		bgEsc(black) + "▄" + "\x1b[0m\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRenderRowResetAndColumnZero(t *testing.T) {
	t.Parallel()

	// Two rows of one identical tile each: colors are re-emitted at
	// the start of every row even though nothing changed.
	img := newTestImage(CellWidth, 2*CellHeight)
	img.fill(0, 0, white)
	img.fill(0, CellHeight, white)

	out, err := NewRenderer().RenderString(img)
	if err != nil {
		t.Fatal(err)
	}

	row := bgEsc(white) + fgEsc(white) + nbsp + "\x1b[0m\n"
	if out != row+row {
		t.Errorf("output = %q, want %q", out, row+row)
	}
}

func TestRenderIgnoresRemainderPixels(t *testing.T) {
	t.Parallel()

	// 11x10 pixels: two full tiles across, one row down; the trailing
	// 3 pixel columns and 2 pixel rows are not rendered.
	img := newTestImage(11, 10)
	for i := range img.pix {
		img.pix[i] = white
	}
	out, err := NewRenderer().RenderString(img)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("rows rendered = %d, want 1", got)
	}
	if got := strings.Count(out, nbsp); got != 2 {
		t.Errorf("glyphs rendered = %d, want 2", got)
	}

	// Smaller than one tile: nothing at all.
	small := newTestImage(3, 7)
	out, err = NewRenderer().RenderString(small)
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
}

func TestRender256ColorMode(t *testing.T) {
	t.Parallel()

	out, err := NewRenderer(WithColors256()).RenderString(uniformTile(RGB{255, 0, 0}))
	if err != nil {
		t.Fatal(err)
	}
	want := "\x1b[48;5;196m\x1b[38;5;196m" + nbsp + "\x1b[0m\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}
