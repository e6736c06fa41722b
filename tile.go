package glyphview

// tileStats holds the per-channel extrema and the exact-color
// histogram for one 4x8 tile. Identical tile contents always produce
// identical statistics.
type tileStats struct {
	min    [3]int
	max    [3]int
	counts map[uint32]int
}

// scanTile reads the tile with top-left corner (x0, y0) and gathers
// per-channel min/max plus a count per exact 24-bit color.
func scanTile(src PixelSource, x0, y0 int) tileStats {
	st := tileStats{
		min:    [3]int{255, 255, 255},
		counts: make(map[uint32]int, cellPixels),
	}
	for y := 0; y < CellHeight; y++ {
		for x := 0; x < CellWidth; x++ {
			r, g, b := src.RGBAt(x0+x, y0+y)
			for i, d := range [3]int{int(r), int(g), int(b)} {
				if d < st.min[i] {
					st.min[i] = d
				}
				if d > st.max[i] {
					st.max[i] = d
				}
			}
			st.counts[RGB{r, g, b}.toUint32()]++
		}
	}
	return st
}

// topTwoColors returns the two most frequent colors in the histogram
// and their combined pixel count. With fewer than two distinct colors
// both results are the same color. When two colors tie on count the
// histogram iteration order decides; the pipeline never depends on
// which of the tied colors wins.
func (st tileStats) topTwoColors() (color1, color2 uint32, count2 int) {
	c1, c2 := -1, -1
	for key, n := range st.counts {
		switch {
		case n > c1:
			c2, color2 = c1, color1
			c1, color1 = n, key
		case n > c2:
			c2, color2 = n, key
		}
	}
	if c2 < 0 {
		color2 = color1
		c2 = 0
	}
	return color1, color2, c1 + c2
}

// tileMask is the 1-bit-per-pixel reduction of a tile, with the mode
// that produced it. In direct mode color1 and color2 carry the two
// dominant colors for the resolver.
type tileMask struct {
	bits   uint32
	direct bool
	color1 uint32
	color2 uint32
}

// buildMask reduces the tile at (x0, y0) to a 32-bit mask.
//
// Direct mode is selected when the two most frequent colors cover more
// than half of the tile's 32 pixels; each pixel's bit is set when it
// is strictly closer (squared RGB distance) to the second color.
// Otherwise split mode thresholds the channel with the widest range at
// the middle of its interval; bits are set for values strictly above
// the threshold.
func buildMask(src PixelSource, x0, y0 int, st tileStats) tileMask {
	color1, color2, count2 := st.topTwoColors()

	m := tileMask{direct: count2 > cellPixels/2, color1: color1, color2: color2}
	if m.direct {
		dom1 := rgbFromUint32(color1)
		dom2 := rgbFromUint32(color2)
		for y := 0; y < CellHeight; y++ {
			for x := 0; x < CellWidth; x++ {
				m.bits <<= 1
				r, g, b := src.RGBAt(x0+x, y0+y)
				c := RGB{r, g, b}
				if sqDist(c, dom1) > sqDist(c, dom2) {
					m.bits |= 1
				}
			}
		}
		return m
	}

	// Channel with the greatest range; earlier channels win ties.
	splitIndex := 0
	bestSplit := 0
	for i := 0; i < 3; i++ {
		if st.max[i]-st.min[i] > bestSplit {
			bestSplit = st.max[i] - st.min[i]
			splitIndex = i
		}
	}
	// Split at the middle of the interval rather than the median.
	splitValue := st.min[splitIndex] + bestSplit/2

	for y := 0; y < CellHeight; y++ {
		for x := 0; x < CellWidth; x++ {
			m.bits <<= 1
			r, g, b := src.RGBAt(x0+x, y0+y)
			if int([3]uint8{r, g, b}[splitIndex]) > splitValue {
				m.bits |= 1
			}
		}
	}
	return m
}

// sqDist is the squared Euclidean distance between two colors in RGB
// space.
func sqDist(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
