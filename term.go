package glyphview

import (
	"math"
	"strconv"
)

const esc = "\x1b"

// colorSteps are the channel values of the 6x6x6 color cube in the
// 256-color terminal palette.
var colorSteps = [6]int{0, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

// grayscaleSteps are the 24 values of the grayscale ramp occupying
// palette indices 232-255.
var grayscaleSteps = [24]int{
	0x08, 0x12, 0x1c, 0x26, 0x30, 0x3a, 0x44, 0x4e, 0x58, 0x62, 0x6c, 0x76,
	0x80, 0x8a, 0x94, 0x9e, 0xa8, 0xb2, 0xbc, 0xc6, 0xd0, 0xda, 0xe4, 0xee,
}

// bestIndex returns the index of the step closest to value by absolute
// difference. Only a strictly smaller difference replaces the running
// best, so ties favor the lower index.
func bestIndex(value int, steps []int) int {
	best := 0
	bestDiff := abs(steps[0] - value)
	for i := 1; i < len(steps); i++ {
		if d := abs(steps[i] - value); d < bestDiff {
			best = i
			bestDiff = d
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sqr(n float64) float64 { return n * n }

// index256 quantizes a color to the 256-color palette: each channel
// snaps independently to the nearest cube step, the perceptual luma
// snaps to the nearest grayscale step, and whichever candidate has the
// smaller luma-weighted squared error against the original channels
// wins. The cube wins only on strictly smaller error.
func index256(c RGB) int {
	r, g, b := int(c.R), int(c.G), int(c.B)

	ri := bestIndex(r, colorSteps[:])
	gi := bestIndex(g, colorSteps[:])
	bi := bestIndex(b, colorSteps[:])

	rq := colorSteps[ri]
	gq := colorSteps[gi]
	bq := colorSteps[bi]

	gray := int(math.Round(
		float64(r)*0.2989 + float64(g)*0.5870 + float64(b)*0.1140))
	gri := bestIndex(gray, grayscaleSteps[:])
	grq := grayscaleSteps[gri]

	cubeErr := 0.3*sqr(float64(rq-r)) +
		0.59*sqr(float64(gq-g)) +
		0.11*sqr(float64(bq-b))
	grayErr := 0.3*sqr(float64(grq-r)) +
		0.59*sqr(float64(grq-g)) +
		0.11*sqr(float64(grq-b))
	if cubeErr < grayErr {
		return 16 + 36*ri + 6*gi + bi
	}
	return 232 + gri
}

// appendTermColor appends the escape sequence selecting color c for
// the foreground or background role. Truecolor uses the direct 24-bit
// form; indexed mode quantizes to the 256-color palette first.
func appendTermColor(dst []byte, c RGB, background, indexed bool) []byte {
	dst = append(dst, esc...)
	dst = append(dst, '[')
	if background {
		dst = append(dst, '4', '8')
	} else {
		dst = append(dst, '3', '8')
	}
	if indexed {
		dst = append(dst, ';', '5', ';')
		dst = strconv.AppendInt(dst, int64(index256(c)), 10)
	} else {
		dst = append(dst, ';', '2', ';')
		dst = strconv.AppendInt(dst, int64(c.R), 10)
		dst = append(dst, ';')
		dst = strconv.AppendInt(dst, int64(c.G), 10)
		dst = append(dst, ';')
		dst = strconv.AppendInt(dst, int64(c.B), 10)
	}
	return append(dst, 'm')
}
