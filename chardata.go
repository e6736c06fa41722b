package glyphview

// averageCharData builds a CharData for the tile at (x0, y0) by
// bucketing every pixel according to the given pattern bit: pixels
// under a set bit accumulate into the foreground color, the rest into
// the background, and each bucket is averaged per channel. A bucket
// with no pixels leaves its color at zero rather than dividing.
//
// The pattern is used exactly as matched, never complemented: the
// foreground bucket must cover the pixels where the glyph draws ink,
// regardless of which orientation won the Hamming match.
func averageCharData(src PixelSource, x0, y0 int, codePoint rune, pattern uint32) CharData {
	var fgSum, bgSum [3]int
	fgCount, bgCount := 0, 0

	bit := uint32(0x80000000)
	for y := 0; y < CellHeight; y++ {
		for x := 0; x < CellWidth; x++ {
			r, g, b := src.RGBAt(x0+x, y0+y)
			if pattern&bit != 0 {
				fgSum[0] += int(r)
				fgSum[1] += int(g)
				fgSum[2] += int(b)
				fgCount++
			} else {
				bgSum[0] += int(r)
				bgSum[1] += int(g)
				bgSum[2] += int(b)
				bgCount++
			}
			bit >>= 1
		}
	}

	cd := CharData{CodePoint: codePoint}
	if fgCount != 0 {
		cd.FG = RGB{
			clampByte(fgSum[0] / fgCount),
			clampByte(fgSum[1] / fgCount),
			clampByte(fgSum[2] / fgCount),
		}
	}
	if bgCount != 0 {
		cd.BG = RGB{
			clampByte(bgSum[0] / bgCount),
			clampByte(bgSum[1] / bgCount),
			clampByte(bgSum[2] / bgCount),
		}
	}
	return cd
}

// resolveDirect builds a CharData from the two dominant tile colors.
// Mask bit 1 meant "closer to color2", so color2 is the foreground;
// when the matcher won with the complemented orientation the roles
// swap.
func resolveDirect(m tileMask, match matchResult) CharData {
	c1, c2 := m.color1, m.color2
	if match.Inverted {
		c1, c2 = c2, c1
	}
	return CharData{
		FG:        rgbFromUint32(c2),
		BG:        rgbFromUint32(c1),
		CodePoint: match.CodePoint,
	}
}
