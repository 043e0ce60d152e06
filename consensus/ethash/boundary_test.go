package ethash

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestBoundaryFromDifficultyAllOnesAtLowDifficulty(t *testing.T) {
	for _, d := range []*uint256.Int{nil, uint256.NewInt(0), uint256.NewInt(1)} {
		b := BoundaryFromDifficulty(d)
		for i, v := range b {
			if v != 0xff {
				t.Fatalf("BoundaryFromDifficulty(%v)[%d] = %#x, want 0xff", d, i, v)
			}
		}
	}
}

func TestBoundaryMonotonicity(t *testing.T) {
	d1 := uint256.NewInt(1000)
	d2 := uint256.NewInt(2000)
	b1 := BoundaryFromDifficulty(d1)
	b2 := BoundaryFromDifficulty(d2)

	if !lexicallyGreater(b1, b2) {
		t.Fatalf("boundary(%v)=%x should be lexically greater than boundary(%v)=%x", d1, b1, d2, b2)
	}
}

func lexicallyGreater(a, b Hash256) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}

func TestBoundaryFromCompact(t *testing.T) {
	// 0x1d00ffff is Bitcoin genesis's compact target.
	value, negative, overflow := BoundaryFromCompact(0x1d00ffff)
	if negative || overflow {
		t.Fatalf("0x1d00ffff should decode cleanly, got negative=%v overflow=%v", negative, overflow)
	}
	want := uint256.NewInt(0xffff)
	want = new(uint256.Int).Lsh(want, 8*(0x1d-3))
	wantBytes := want.Bytes32()
	if value != Hash256(wantBytes) {
		t.Errorf("BoundaryFromCompact(0x1d00ffff) = %x, want %x", value, wantBytes)
	}
}

func TestBoundaryFromCompactSmallSize(t *testing.T) {
	// size=2, word=0x008000: value = word >> (8*(3-size)) = 0x8000 >> 8 = 0x80.
	value, negative, overflow := BoundaryFromCompact(0x02008000)
	if negative || overflow {
		t.Fatalf("unexpected negative/overflow for size<=3 case")
	}
	var want Hash256
	want[31] = 0x80
	if value != want {
		t.Errorf("BoundaryFromCompact(size=2) = %x, want %x", value, want)
	}
}
