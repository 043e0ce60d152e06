package keccak

// rc64 holds the 24 round constants for Keccak-f[1600]. The Keccak-f[800]
// round constants are the low 32 bits of the first 22 of these (see rc32
// in permute800.go) — the reference implementation
// (original ethminer libcrypto/keccak.cpp) tabulates both separately, but
// they are the same sequence truncated, so we derive one from the other.
var rc64 = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotc and piln are the rotation-offset and lane-permutation tables used by
// the generic (loop-based) permutation, shared between the 1600- and
// 800-bit variants — the offsets are taken mod the lane width by the
// rotation helper, and the Keccak rho/pi step uses the same relative lane
// permutation regardless of lane width.
var rotc = [24]uint32{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

var piln = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}
