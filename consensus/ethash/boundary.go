// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package ethash

import "github.com/holiman/uint256"

// maxTarget256 is 2^256 - 1, the dividend of BoundaryFromDifficulty.
var maxTarget256 = func() *uint256.Int {
	max := new(uint256.Int)
	return max.Not(max) // 0 - 1 wraps to all-ones
}()

// BoundaryFromDifficulty returns floor((2^256-1) / difficulty) as 32
// big-endian bytes. For difficulty <= 1 the boundary is all-ones.
func BoundaryFromDifficulty(difficulty *uint256.Int) Hash256 {
	var out Hash256
	if difficulty == nil || difficulty.Cmp(uint256.NewInt(1)) <= 0 {
		for i := range out {
			out[i] = 0xff
		}
		return out
	}
	boundary := new(uint256.Int).Div(maxTarget256, difficulty)
	b32 := boundary.Bytes32()
	copy(out[:], b32[:])
	return out
}

// BoundaryFromCompact decompresses a Bitcoin-style "nBits" compact
// difficulty encoding into a 32-byte big-endian boundary-target value,
// for stratum interop. negative/overflow flag the malformed encodings the
// Bitcoin compact format defines as invalid.
func BoundaryFromCompact(nbits uint32) (value Hash256, negative bool, overflow bool) {
	size := nbits >> 24
	word := nbits & 0x007fffff

	result := new(uint256.Int).SetUint64(uint64(word))
	if size <= 3 {
		result = new(uint256.Int).Rsh(result, uint(8*(3-size)))
	} else {
		shift := uint(8 * (size - 3))
		if shift >= 256 {
			overflow = true
		} else {
			result = new(uint256.Int).Lsh(result, shift)
		}
	}

	negative = word != 0 && (nbits&0x00800000) != 0
	if !overflow {
		overflow = word != 0 && ((size > 34) ||
			(word > 0xff && size > 33) ||
			(word > 0xffff && size > 32))
	}

	b32 := result.Bytes32()
	copy(value[:], b32[:])
	return value, negative, overflow
}
