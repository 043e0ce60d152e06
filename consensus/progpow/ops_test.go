package progpow

import "testing"

func TestRandomMergeOperationSelection(t *testing.T) {
	a, b := uint32(5), uint32(7)
	if got, want := randomMerge(a, b, 0), a*33+b; got != want {
		t.Errorf("sel%%4==0: got %d, want %d", got, want)
	}
	if got, want := randomMerge(a, b, 1), (a^b)*33; got != want {
		t.Errorf("sel%%4==1: got %d, want %d", got, want)
	}
}

func TestRandomMathCoversAllSelectors(t *testing.T) {
	a, b := uint32(0xdeadbeef), uint32(0x12345678)
	seen := make(map[uint32]bool)
	for sel := uint32(0); sel < 11; sel++ {
		seen[randomMath(a, b, sel)] = true
	}
	if len(seen) < 8 {
		t.Errorf("random_math selectors produced too few distinct outputs: %d", len(seen))
	}
}

func TestRandomMathAddAndXor(t *testing.T) {
	a, b := uint32(10), uint32(20)
	if got := randomMath(a, b, 0); got != 30 {
		t.Errorf("sel=0 (add): got %d, want 30", got)
	}
	if got := randomMath(a, b, 8); got != (a ^ b) {
		t.Errorf("sel=8 (xor): got %d, want %d", got, a^b)
	}
	if got := randomMath(a, b, 6); got != (a & b) {
		t.Errorf("sel=6 (and): got %d, want %d", got, a&b)
	}
	if got := randomMath(a, b, 7); got != (a | b) {
		t.Errorf("sel=7 (or): got %d, want %d", got, a|b)
	}
}
