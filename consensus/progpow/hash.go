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

// Package progpow implements the ProgPoW v0.9.4 mix: a 64-round program
// over a register file, driven by a KISS99 RNG and DAG reads, layered on
// top of the Ethash epoch context and Keccak-f[800] from the sibling
// packages.
package progpow

import (
	"encoding/binary"

	powbits "github.com/erigontech/erigon-pow/crypto/bits"
	"github.com/erigontech/erigon-pow/crypto/keccak"
	"github.com/erigontech/erigon-pow/crypto/kiss99"

	"github.com/erigontech/erigon-pow/consensus/ethash"
)

const (
	kLanes        = 16
	kDagLoads     = 4
	kCacheBytes   = 16384
	kCacheWords   = kCacheBytes / 4
	kDagCount     = 64
	kCacheCount   = 11
	kMathCount    = 18
	kPeriodLength = 1
	kWordsPerLane = 4
)

// VerificationResult mirrors ethash.VerificationResult for ProgPoW's
// verify_full outcomes.
type VerificationResult = ethash.VerificationResult

const (
	OK             = ethash.OK
	InvalidNonce   = ethash.InvalidNonce
	InvalidMixHash = ethash.InvalidMixHash
)

// Result is the output of a ProgPoW hash evaluation.
type Result struct {
	Final ethash.Hash256
	Mix   ethash.Hash256
}

// PeriodFromBlock returns block / kPeriodLength, the "program" index that
// determines the random math schedule shared by all nonces in the period.
func PeriodFromBlock(block uint64) uint64 { return block / kPeriodLength }

// hashSeed computes the Keccak-f[800]-based seed digest and its packed
// 64-bit form, per §4.J's "Seed computation".
func hashSeed(header ethash.Hash256, nonce uint64) (digest [8]uint32, seed64 uint64) {
	var state [25]uint32
	for i := 0; i < 8; i++ {
		state[i] = binary.LittleEndian.Uint32(header[i*4:])
	}
	state[8] = uint32(nonce)
	state[9] = uint32(nonce >> 32)
	state[10] = 0x00000001
	state[18] = 0x80008081

	keccak.Permute800(&state)

	copy(digest[:], state[:8])
	seed64 = uint64(digest[0]) | uint64(digest[1])<<32
	return digest, seed64
}

// initMix builds the kLanes x kRegs register file, each lane independently
// seeded from seed64 and its own lane index per §4.J's "Mix initialisation".
func initMix(seed64 uint64) [kLanes][kRegs]uint32 {
	low := uint32(seed64)
	high := uint32(seed64 >> 32)

	var mix [kLanes][kRegs]uint32
	for l := 0; l < kLanes; l++ {
		z := powbits.FNV1a(powbits.FNVOffsetBasis, low)
		w := powbits.FNV1a(z, high)
		jsr := powbits.FNV1a(w, uint32(l))
		jcong := powbits.FNV1a(jsr, uint32(l))

		gen := kiss99.New(z, w, jsr, jcong)
		for r := 0; r < kRegs; r++ {
			mix[l][r] = gen.Next()
		}
	}
	return mix
}

// round runs one of the 64 mixing rounds against mix in place.
func round(ctx *ethash.EpochContext, r int, mix *[kLanes][kRegs]uint32, roundRng *MixRNGState) {
	indexLimit := ctx.Params.FullDatasetNumItems / 2
	itemIndex := uint64(mix[r%kLanes][0]) % indexLimit
	item := ctx.Lookup2048(itemIndex)

	maxOps := kCacheCount
	if kMathCount > maxOps {
		maxOps = kMathCount
	}

	for i := 0; i < maxOps; i++ {
		if i < kCacheCount {
			src := roundRng.NextSrc()
			dst := roundRng.NextDst()
			sel := roundRng.Next()
			for l := 0; l < kLanes; l++ {
				offset := int(mix[l][src] % kCacheWords)
				mix[l][dst] = randomMerge(mix[l][dst], ctx.L1Word32(offset), sel)
			}
		}
		if i < kMathCount {
			srcRnd := roundRng.Next() % (kRegs * (kRegs - 1))
			src1 := srcRnd % kRegs
			src2 := srcRnd / kRegs
			if src2 >= src1 {
				src2++
			}
			sel1 := roundRng.Next()
			dst := roundRng.NextDst()
			sel2 := roundRng.Next()
			for l := 0; l < kLanes; l++ {
				data := randomMath(mix[l][src1], mix[l][src2], sel1)
				mix[l][dst] = randomMerge(mix[l][dst], data, sel2)
			}
		}
	}

	var dsts [kWordsPerLane]uint32
	var sels [kWordsPerLane]uint32
	dsts[0] = 0
	for k := 1; k < kWordsPerLane; k++ {
		dsts[k] = roundRng.NextDst()
	}
	for k := 0; k < kWordsPerLane; k++ {
		sels[k] = roundRng.Next()
	}

	for l := 0; l < kLanes; l++ {
		laneOffset := ((l ^ r) % kLanes) * kWordsPerLane
		for k := 0; k < kWordsPerLane; k++ {
			word := binary.LittleEndian.Uint32(item[(laneOffset+k)*4:])
			mix[l][dsts[k]] = randomMerge(mix[l][dsts[k]], word, sels[k])
		}
	}
}

// reduceMix folds the kLanes x kRegs register file down to a 256-bit mix
// hash via nested FNV-1a folds.
func reduceMix(mix [kLanes][kRegs]uint32) ethash.Hash256 {
	var laneHash [kLanes]uint32
	for l := 0; l < kLanes; l++ {
		h := uint32(powbits.FNVOffsetBasis)
		for r := 0; r < kRegs; r++ {
			h = powbits.FNV1a(h, mix[l][r])
		}
		laneHash[l] = h
	}

	var mixHashWords [8]uint32
	for i := range mixHashWords {
		mixHashWords[i] = powbits.FNVOffsetBasis
	}
	for l := 0; l < kLanes; l++ {
		mixHashWords[l%8] = powbits.FNV1a(mixHashWords[l%8], laneHash[l])
	}

	var out ethash.Hash256
	for i, w := range mixHashWords {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}

// hashFinal re-runs Keccak-f[800] over header, seed64 and mixHash to
// produce the final 256-bit digest. This follows the ProgPoW v0.9.4
// specification's state layout, not the reference source's hash_final
// (which drops seed_64 and mix_hash entirely); see the design notes on
// why that source behavior is not replicated.
func hashFinal(header ethash.Hash256, seed64 uint64, mixHash ethash.Hash256) ethash.Hash256 {
	var state [25]uint32
	for i := 0; i < 8; i++ {
		state[i] = binary.LittleEndian.Uint32(header[i*4:])
	}
	state[8] = uint32(seed64)
	state[9] = uint32(seed64 >> 32)
	for i := 0; i < 7; i++ {
		state[10+i] = mixHash.Word32(i)
	}
	state[17] = 0x00000001
	state[24] = 0x80008081

	keccak.Permute800(&state)

	var out ethash.Hash256
	for i := 0; i < 8; i++ {
		out.SetWord32(i, state[i])
	}
	return out
}

// Hash runs the full ProgPoW v0.9.4 mix: seed computation, mix
// initialisation, 64 rounds of cache/math/DAG-merge operations, reduction
// to a mix hash, and final hashing.
func Hash(ctx *ethash.EpochContext, period uint64, header ethash.Hash256, nonce uint64) Result {
	_, seed64 := hashSeed(header, nonce)
	mix := initMix(seed64)
	roundRng := NewMixRNGState(period)

	for r := 0; r < kDagCount; r++ {
		round(ctx, r, &mix, roundRng)
	}

	mixHash := reduceMix(mix)
	final := hashFinal(header, seed64, mixHash)
	return Result{Final: final, Mix: mixHash}
}

// VerifyFull recomputes the hash and checks both the mix hash and the
// final digest against boundary.
func VerifyFull(ctx *ethash.EpochContext, period uint64, header ethash.Hash256, mix ethash.Hash256, nonce uint64, boundary ethash.Hash256) VerificationResult {
	result := Hash(ctx, period, header, nonce)
	if !ethash.IsEqual(result.Mix, mix) {
		return InvalidMixHash
	}
	if !ethash.IsLessOrEqual(result.Final, boundary) {
		return InvalidNonce
	}
	return OK
}
