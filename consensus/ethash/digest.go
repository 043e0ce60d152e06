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

import (
	"encoding/binary"
	"encoding/hex"
	"sync"

	"github.com/erigontech/erigon-pow/crypto/keccak"
)

// Hash256, Hash512, Hash1024 and Hash2048 are the fixed-width digests the
// core operates on: a block header fingerprint and final hash (256), a
// light-cache item or Keccak-512 output (512), a DAG item (1024), and an
// L1 cache tile or ProgPoW DAG read (2048). Storage is host-order bytes;
// Word32/Word64 apply the little-endian view the algorithm requires.
type (
	Hash256  [32]byte
	Hash512  [64]byte
	Hash1024 [128]byte
	Hash2048 [256]byte
)

// Word32 returns the i-th 32-bit little-endian word of the digest.
func (h Hash256) Word32(i int) uint32 { return binary.LittleEndian.Uint32(h[i*4:]) }
func (h Hash512) Word32(i int) uint32 { return binary.LittleEndian.Uint32(h[i*4:]) }

// Word64 returns the i-th 64-bit little-endian word of the digest.
func (h Hash512) Word64(i int) uint64 { return binary.LittleEndian.Uint64(h[i*8:]) }

// SetWord32 stores v as the i-th 32-bit little-endian word.
func (h *Hash256) SetWord32(i int, v uint32) { binary.LittleEndian.PutUint32(h[i*4:], v) }
func (h *Hash512) SetWord32(i int, v uint32) { binary.LittleEndian.PutUint32(h[i*4:], v) }

// Hex renders the digest as a 0x-prefixed lowercase hex string.
func (h Hash256) Hex() string  { return "0x" + hex.EncodeToString(h[:]) }
func (h Hash512) Hex() string  { return "0x" + hex.EncodeToString(h[:]) }
func (h Hash1024) Hex() string { return "0x" + hex.EncodeToString(h[:]) }
func (h Hash2048) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

// IsLessOrEqual compares a and b as big-endian unsigned 256-bit integers,
// the convention used to test a final hash against a target boundary.
func IsLessOrEqual(a, b Hash256) bool {
	for i := 0; i < 32; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return true
}

// IsEqual compares two digests byte-wise.
func IsEqual(a, b Hash256) bool { return a == b }

// hasher512Pool recycles Keccak-512 sponge state across the hot dataset-item
// and light-cache loops, following the sync.Pool pattern in
// erigon-lib/common/hasher.go (there built around golang.org/x/crypto/sha3,
// here around this module's own sponge since Ethash/ProgPoW need the
// non-standard 0x01 suffix byte that package also implements).
var hasher512Pool = sync.Pool{
	New: func() any { return keccak.NewKeccak512() },
}

// keccak512 hashes data with a pooled Keccak-512 sponge.
func keccak512(data ...[]byte) Hash512 {
	h := hasher512Pool.Get().(*keccak.Hasher)
	h.Reset()
	for _, d := range data {
		h.Write(d)
	}
	var out Hash512
	copy(out[:], h.Sum(nil))
	hasher512Pool.Put(h)
	return out
}

var hasher256Pool = sync.Pool{
	New: func() any { return keccak.NewKeccak256() },
}

// keccak256 hashes data with a pooled Keccak-256 sponge.
func keccak256(data ...[]byte) Hash256 {
	h := hasher256Pool.Get().(*keccak.Hasher)
	h.Reset()
	for _, d := range data {
		h.Write(d)
	}
	var out Hash256
	copy(out[:], h.Sum(nil))
	hasher256Pool.Put(h)
	return out
}

// xor512 returns the bitwise XOR of two 512-bit digests.
func xor512(a, b Hash512) Hash512 {
	var out Hash512
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}
