package glyphview

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Render classifies src tile by tile and writes the ANSI rendition to
// w. Tiles are visited in raster order; color escapes are emitted only
// when the color differs from the previous tile's, except at the start
// of each row where both are always emitted. Each row ends with a
// formatting reset and a newline. Remainder pixels beyond the last
// full 4x8 tile are not rendered.
//
// A code point outside the valid Unicode range is reported to the
// diagnostics writer and its glyph is skipped; the row continues.
func (r *Renderer) Render(src PixelSource, w io.Writer) error {
	cols := src.Width() / CellWidth
	rows := src.Height() / CellHeight
	if cols == 0 || rows == 0 {
		return nil
	}

	grid := r.classifyGrid(src, cols, rows)

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	var prev CharData
	for _, row := range grid {
		for x, cd := range row {
			buf = buf[:0]
			if x == 0 || cd.BG != prev.BG {
				buf = appendTermColor(buf, cd.BG, true, r.colors256)
			}
			if x == 0 || cd.FG != prev.FG {
				buf = appendTermColor(buf, cd.FG, false, r.colors256)
			}
			if cd.CodePoint > unicode.MaxRune {
				fmt.Fprintf(r.diag,
					"glyphview: code point 0x%08x out of range, skipping glyph\n",
					cd.CodePoint)
			} else {
				buf = utf8.AppendRune(buf, cd.CodePoint)
			}
			if _, err := bw.Write(buf); err != nil {
				return err
			}
			prev = cd
		}
		if _, err := bw.WriteString(esc + "[0m\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// RenderString renders src to a string.
func (r *Renderer) RenderString(src PixelSource) (string, error) {
	var sb strings.Builder
	if err := r.Render(src, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// classifyGrid classifies every full tile of src. Classification is
// free of cross-tile dependencies, so rows can be handed to multiple
// goroutines; the caller serializes emission afterwards.
func (r *Renderer) classifyGrid(src PixelSource, cols, rows int) [][]CharData {
	grid := make([][]CharData, rows)
	for i := range grid {
		grid[i] = make([]CharData, cols)
	}

	classifyRow := func(ty int) {
		y0 := ty * CellHeight
		for tx := 0; tx < cols; tx++ {
			grid[ty][tx] = r.classifyTile(src, tx*CellWidth, y0)
		}
	}

	if r.parallelism <= 1 || rows == 1 {
		for ty := 0; ty < rows; ty++ {
			classifyRow(ty)
		}
		return grid
	}

	var wg sync.WaitGroup
	next := make(chan int)
	workers := r.parallelism
	if workers > rows {
		workers = rows
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ty := range next {
				classifyRow(ty)
			}
		}()
	}
	for ty := 0; ty < rows; ty++ {
		next <- ty
	}
	close(next)
	wg.Wait()
	return grid
}
