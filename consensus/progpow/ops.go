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

package progpow

import powbits "github.com/erigontech/erigon-pow/crypto/bits"

// randomMerge folds b into a using one of four operations selected by sel,
// with a rotation amount derived from sel's upper bits.
func randomMerge(a, b, sel uint32) uint32 {
	x := (sel>>16)%31 + 1
	switch sel % 4 {
	case 0:
		return a*33 + b
	case 1:
		return (a ^ b) * 33
	case 2:
		return powbits.RotL32(a, x) ^ b
	default:
		return powbits.RotR32(a, x) ^ b
	}
}

// randomMath computes one of eleven binary/unary operations on (a, b),
// selected by sel % 11.
func randomMath(a, b, sel uint32) uint32 {
	switch sel % 11 {
	case 0:
		return a + b
	case 1:
		return a * b
	case 2:
		return powbits.MulHi32(a, b)
	case 3:
		return min32(a, b)
	case 4:
		return powbits.RotL32(a, b)
	case 5:
		return powbits.RotR32(a, b)
	case 6:
		return a & b
	case 7:
		return a | b
	case 8:
		return a ^ b
	case 9:
		return powbits.CLZ32(a) + powbits.CLZ32(b)
	default:
		return powbits.PopCnt32(a) + powbits.PopCnt32(b)
	}
}

func min32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
