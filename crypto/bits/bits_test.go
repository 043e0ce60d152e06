package bits

import "testing"

func TestFNV(t *testing.T) {
	if got := FNV1(0, 0); got != 0 {
		t.Errorf("FNV1(0,0) = %#x, want 0", got)
	}
	offset, prime := uint32(FNVOffsetBasis), uint32(fnvPrime)
	if got := FNV1a(FNVOffsetBasis, 0); got != offset*prime {
		t.Errorf("FNV1a(offset,0) = %#x, want %#x", got, offset*prime)
	}
}

func TestRotations(t *testing.T) {
	if got := RotL32(1, 1); got != 2 {
		t.Errorf("RotL32(1,1) = %d, want 2", got)
	}
	if got := RotR32(2, 1); got != 1 {
		t.Errorf("RotR32(2,1) = %d, want 1", got)
	}
	if got := RotL32(0x80000000, 1); got != 1 {
		t.Errorf("RotL32(0x80000000,1) = %#x, want 1", got)
	}
	if got := RotL64(1, 64); got != 1 {
		t.Errorf("RotL64(1,64) = %d, want 1", got)
	}
}

func TestClzPopcnt(t *testing.T) {
	if got := CLZ32(1); got != 31 {
		t.Errorf("CLZ32(1) = %d, want 31", got)
	}
	if got := CLZ32(0); got != 32 {
		t.Errorf("CLZ32(0) = %d, want 32", got)
	}
	if got := PopCnt32(0xffffffff); got != 32 {
		t.Errorf("PopCnt32(all-ones) = %d, want 32", got)
	}
}

func TestMulHi32(t *testing.T) {
	if got := MulHi32(0xffffffff, 2); got != 1 {
		t.Errorf("MulHi32(max,2) = %d, want 1", got)
	}
	if got := MulHi32(1, 1); got != 0 {
		t.Errorf("MulHi32(1,1) = %d, want 0", got)
	}
}
