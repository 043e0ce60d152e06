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
	"time"

	log "github.com/erigontech/erigon-pow/erigon-lib/log/v3"
)

// BuildLightCache derives the light cache for an epoch: a sequential
// Keccak-512 chain seeded from the epoch seed, followed by three rounds of
// RandMemoHash. This is a single-threaded, deterministic pass; see
// generateCache in the reference algorithm.go this is grounded on.
func BuildLightCache(numItems uint64, seed Hash256) []Hash512 {
	start := time.Now()
	cache := make([]Hash512, numItems)

	cache[0] = keccak512(seed[:])
	for i := uint64(1); i < numItems; i++ {
		cache[i] = keccak512(cache[i-1][:])
	}

	for round := 0; round < lightCacheRounds; round++ {
		for i := uint64(0); i < numItems; i++ {
			v := uint64(cache[i].Word32(0)) % numItems
			w := (i - 1 + numItems) % numItems
			xored := xor512(cache[v], cache[w])
			cache[i] = keccak512(xored[:])
		}
	}

	log.Debug("ethash light cache generated", "items", numItems, "elapsed", time.Since(start))
	return cache
}
