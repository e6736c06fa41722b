package glyphview

import "testing"

func TestPatternBitRoundTrip(t *testing.T) {
	t.Parallel()

	var p uint32
	setPatternBit(&p, 0, 0)
	if p != 0x80000000 {
		t.Errorf("top-left bit: pattern = %08x, want 80000000", p)
	}
	setPatternBit(&p, CellWidth-1, CellHeight-1)
	if p != 0x80000001 {
		t.Errorf("bottom-right bit: pattern = %08x, want 80000001", p)
	}

	for y := 0; y < CellHeight; y++ {
		for x := 0; x < CellWidth; x++ {
			var q uint32
			setPatternBit(&q, x, y)
			if !patternBit(q, x, y) {
				t.Fatalf("bit (%d,%d) not readable after set", x, y)
			}
			if q != 1<<uint(31-(y*CellWidth+x)) {
				t.Fatalf("bit (%d,%d) landed at %08x", x, y, q)
			}
		}
	}
}

func TestPatternBitOutOfRange(t *testing.T) {
	t.Parallel()

	p := uint32(0xffffffff)
	if patternBit(p, -1, 0) || patternBit(p, CellWidth, 0) ||
		patternBit(p, 0, -1) || patternBit(p, 0, CellHeight) {
		t.Error("out-of-range read reported a set bit")
	}

	var q uint32
	setPatternBit(&q, CellWidth, 0)
	setPatternBit(&q, 0, CellHeight)
	setPatternBit(&q, -1, -1)
	if q != 0 {
		t.Errorf("out-of-range writes changed the pattern: %08x", q)
	}
}

func TestPatternBitMatchesHalfBlock(t *testing.T) {
	t.Parallel()

	// The default pattern's set bits are exactly the bottom four rows.
	for y := 0; y < CellHeight; y++ {
		for x := 0; x < CellWidth; x++ {
			want := y >= CellHeight/2
			if got := patternBit(DefaultPattern, x, y); got != want {
				t.Errorf("bit (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBlockRunes(t *testing.T) {
	t.Parallel()

	runes := BlockRunes()
	seen := make(map[rune]bool, len(runes))
	for _, r := range runes {
		if r < 32 {
			t.Errorf("rune set contains table sentinel %U", r)
		}
		if seen[r] {
			t.Errorf("rune set contains duplicate %U", r)
		}
		seen[r] = true
	}
	for _, want := range []rune{0x00a0, 0x2584, 0x2596, 0x1fb00} {
		if !seen[want] {
			t.Errorf("rune set is missing %U", want)
		}
	}
}
