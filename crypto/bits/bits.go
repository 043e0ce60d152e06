// Package bits provides the small set of wrapping integer primitives the
// Ethash and ProgPoW mixing functions are built from: rotations, a leading
// zero / population count pair, a 32x32->64 high-multiply, and the two
// FNV-1 variants used throughout both algorithms.
//
// All arithmetic here wraps modulo 2^32 (or 2^64 for the Keccak lane
// rotations), matching the C reference's reliance on unsigned overflow.
package bits

import "math/bits"

// fnvPrime and FNVOffsetBasis are the 32-bit FNV-1 constants used by both
// Ethash (dataset/mix folding) and ProgPoW (RNG seeding, lane reduction).
const (
	fnvPrime       = 0x01000193
	FNVOffsetBasis = 0x811c9dc5
)

// FNV1 combines u and v the way Ethash's dataset generation and mix-folding
// do: multiply-then-xor.
func FNV1(u, v uint32) uint32 {
	return (u * fnvPrime) ^ v
}

// FNV1a combines u and v the way ProgPoW's RNG seeding and lane reduction
// do: xor-then-multiply.
func FNV1a(u, v uint32) uint32 {
	return (u ^ v) * fnvPrime
}

// RotL32 rotates x left by n bits, n taken mod 32.
func RotL32(x uint32, n uint32) uint32 {
	return bits.RotateLeft32(x, int(n%32))
}

// RotR32 rotates x right by n bits, n taken mod 32.
func RotR32(x uint32, n uint32) uint32 {
	return bits.RotateLeft32(x, -int(n%32))
}

// RotL64 rotates x left by n bits, used by the Keccak-f[1600] permutation.
func RotL64(x uint64, n uint) uint64 {
	return bits.RotateLeft64(x, int(n))
}

// CLZ32 returns the count of leading zero bits in x.
func CLZ32(x uint32) uint32 {
	return uint32(bits.LeadingZeros32(x))
}

// PopCnt32 returns the number of set bits in x.
func PopCnt32(x uint32) uint32 {
	return uint32(bits.OnesCount32(x))
}

// MulHi32 returns the high 32 bits of the 64-bit product of x and y.
func MulHi32(x, y uint32) uint32 {
	return uint32((uint64(x) * uint64(y)) >> 32)
}
