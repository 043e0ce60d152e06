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
	"sync/atomic"

	powbits "github.com/erigontech/erigon-pow/crypto/bits"
)

// itemState derives a single 512-bit dataset "sub-item" for seedIdx: a
// Keccak-512 of the light-cache entry at seedIdx, folded 256 times against
// pseudo-random cache entries selected by FNV-1, then hashed once more.
// See generateDatasetItem in the reference algorithm.go this is grounded on.
func itemState(cache []Hash512, seedIdx uint64) Hash512 {
	n := uint64(len(cache))
	mix := cache[seedIdx%n]
	mix.SetWord32(0, mix.Word32(0)^uint32(seedIdx))
	mix = keccak512(mix[:])

	for round := uint32(0); round < fullDatasetParents; round++ {
		t := powbits.FNV1(uint32(seedIdx)^round, mix.Word32(int(round%16)))
		p := uint64(t) % n
		parent := cache[p]
		for lane := 0; lane < 16; lane++ {
			mix.SetWord32(lane, powbits.FNV1(mix.Word32(lane), parent.Word32(lane)))
		}
	}

	return keccak512(mix[:])
}

// Dataset1024 returns the 1024-bit DAG item at index i: the concatenation
// of itemState(2i) and itemState(2i+1).
func Dataset1024(cache []Hash512, i uint64) Hash1024 {
	var out Hash1024
	a := itemState(cache, 2*i)
	b := itemState(cache, 2*i+1)
	copy(out[:64], a[:])
	copy(out[64:], b[:])
	return out
}

// Dataset2048 returns the 2048-bit DAG tile at index i: four consecutive
// itemState values, i.e. Dataset1024(2i) concatenated with Dataset1024(2i+1).
func Dataset2048(cache []Hash512, i uint64) Hash2048 {
	var out Hash2048
	for k := 0; k < 4; k++ {
		s := itemState(cache, 4*i+uint64(k))
		copy(out[k*64:(k+1)*64], s[:])
	}
	return out
}

// fullDataset is the lazily-filled, reference-counted full DAG. Rather
// than the reference's zero-word sentinel (benign-race-dependent and
// fragile, see §9 of the design notes), presence is tracked with an
// explicit atomic bitmap: one bit per 1024-bit item, set only after the
// item's bytes are fully written. This removes the zero-word hazard for
// items that legitimately hash to a leading zero word.
type fullDataset struct {
	cache    []Hash512
	items    []Hash1024
	present  []atomic.Uint64
	numItems uint64
}

func newFullDataset(cache []Hash512, numItems uint64) *fullDataset {
	return &fullDataset{
		cache:    cache,
		items:    make([]Hash1024, numItems),
		present:  make([]atomic.Uint64, (numItems+63)/64),
		numItems: numItems,
	}
}

func (d *fullDataset) isPresent(i uint64) bool {
	word := d.present[i/64].Load()
	return word&(uint64(1)<<(i%64)) != 0
}

func (d *fullDataset) markPresent(i uint64) {
	for {
		old := d.present[i/64].Load()
		next := old | (uint64(1) << (i % 64))
		if d.present[i/64].CompareAndSwap(old, next) {
			return
		}
	}
}

// item1024 returns DAG item i, deriving and caching it on first access.
// Concurrent callers computing the same item race harmlessly: the
// computation is pure, so two racing writers produce identical bytes, and
// the presence bit is only observed after a write completes.
func (d *fullDataset) item1024(i uint64) Hash1024 {
	if d.isPresent(i) {
		return d.items[i]
	}
	item := Dataset1024(d.cache, i)
	d.items[i] = item
	d.markPresent(i)
	return item
}

// item2048 returns the 2048-bit tile at index i by combining two adjacent
// 1024-bit items, used by ProgPoW's DAG-merge step.
func (d *fullDataset) item2048(i uint64) Hash2048 {
	var out Hash2048
	a := d.item1024(2 * i)
	b := d.item1024(2*i + 1)
	copy(out[:128], a[:])
	copy(out[128:], b[:])
	return out
}
