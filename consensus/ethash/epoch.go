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

import "math/big"

// EpochLength is the number of consecutive blocks sharing one epoch
// context (kEpoch_length in the reference), owned by this package.
const EpochLength = 7500

const (
	lightCacheItemSize   = 64  // bytes per light-cache item (one Hash512)
	fullDatasetItemSize  = 128 // bytes per DAG item (one Hash1024)
	lightCacheInitSize   = 1 << 24 / lightCacheItemSize
	lightCacheGrowth     = 1 << 17 / lightCacheItemSize
	fullDatasetInitSize  = 1 << 30 / fullDatasetItemSize
	fullDatasetGrowth    = 1 << 23 / fullDatasetItemSize
	lightCacheRounds     = 3
	fullDatasetParents   = 256 // full_dataset_item_parents
	maxEpochSeedIterates = 30000
)

// GetEpochFromBlock returns the epoch number a block belongs to.
func GetEpochFromBlock(block uint64) uint64 { return block / EpochLength }

// EpochParams holds the sizes derived for a given epoch.
type EpochParams struct {
	Epoch                uint64
	LightCacheNumItems   uint64
	FullDatasetNumItems  uint64
	LightCacheSizeBytes  uint64
	FullDatasetSizeBytes uint64
}

// CalcEpochParams derives the light-cache and full-dataset sizes for an
// epoch: the nominal item count grows linearly with the epoch number, and
// is then rounded down to the nearest prime so that the RandMemoHash and
// dataset-item FNV walks have full-period modular arithmetic.
func CalcEpochParams(epoch uint64) EpochParams {
	lightItems := FindLargestPrimeBelow(lightCacheInitSize + lightCacheGrowth*epoch)
	fullItems := FindLargestPrimeBelow(fullDatasetInitSize + fullDatasetGrowth*epoch)
	return EpochParams{
		Epoch:                epoch,
		LightCacheNumItems:   lightItems,
		FullDatasetNumItems:  fullItems,
		LightCacheSizeBytes:  lightItems * lightCacheItemSize,
		FullDatasetSizeBytes: fullItems * fullDatasetItemSize,
	}
}

// FindLargestPrimeBelow returns the largest prime <= upperBound (which must
// be at least 2), walking odd candidates downward and testing each with
// isPrime.
func FindLargestPrimeBelow(upperBound uint64) uint64 {
	if upperBound == 2 {
		return 2
	}
	n := upperBound
	if n%2 == 0 {
		n--
	}
	for !isPrime(n) {
		n -= 2
	}
	return n
}

// isPrime reports whether n is prime, via math/big's Miller-Rabin test.
// ProbablyPrime(1) is always accurate for n < 2^64, which every candidate
// here is (light-cache and full-dataset item counts fit comfortably under
// that bound), matching the reference's own use of the same check.
func isPrime(n uint64) bool {
	return new(big.Int).SetUint64(n).ProbablyPrime(1)
}

// EpochSeed returns keccak256 iterated epoch times over 32 zero bytes.
func EpochSeed(epoch uint64) Hash256 {
	var seed Hash256
	for i := uint64(0); i < epoch; i++ {
		seed = keccak256(seed[:])
	}
	return seed
}

// EpochFromSeed recovers an epoch number from its seed by a linear scan,
// bounded at maxEpochSeedIterates iterations as the reference does; it
// returns ErrUnknownEpochSeed if no match was found within that bound.
func EpochFromSeed(seed Hash256) (epoch uint64, err error) {
	var cur Hash256
	for i := uint64(0); i < maxEpochSeedIterates; i++ {
		if cur == seed {
			return i, nil
		}
		cur = keccak256(cur[:])
	}
	return 0, ErrUnknownEpochSeed
}
