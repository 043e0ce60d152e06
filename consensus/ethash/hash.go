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

	powbits "github.com/erigontech/erigon-pow/crypto/bits"
)

const numDatasetAccesses = 256

// Result is the output of a hash evaluation: the final 256-bit digest
// compared against the boundary, and the 256-bit mix hash that a full
// verification recomputes and checks.
type Result struct {
	Final Hash256
	Mix   Hash256
}

// seed512 computes seed512 = keccak512(header || nonce_le), the first step
// of Ethash hashing. ProgPoW derives its seed separately, with Keccak-f[800]
// (see hashSeed in consensus/progpow).
func seed512(header Hash256, nonce uint64) Hash512 {
	var nonceBytes [8]byte
	binary.LittleEndian.PutUint64(nonceBytes[:], nonce)
	return keccak512(header[:], nonceBytes[:])
}

// Hash runs the Ethash mix: 256 DAG-item accesses folding the dataset into
// a 1024-bit mix, compressed to a 256-bit mix hash, then combined with the
// seed into the final digest.
func Hash(ctx *EpochContext, header Hash256, nonce uint64) Result {
	seed := seed512(header, nonce)
	indexLimit := ctx.Params.FullDatasetNumItems

	var mix [32]uint32
	for i := 0; i < 16; i++ {
		mix[i] = seed.Word32(i)
		mix[16+i] = seed.Word32(i)
	}

	for i := uint32(0); i < numDatasetAccesses; i++ {
		p := uint64(powbits.FNV1(i^seed.Word32(0), mix[i%32])) % indexLimit
		item := ctx.lookup1024(p)
		for j := 0; j < 32; j++ {
			itemWord := binary.LittleEndian.Uint32(item[j*4:])
			mix[j] = powbits.FNV1(mix[j], itemWord)
		}
	}

	var mixHash Hash256
	for i := 0; i < 8; i++ {
		w := powbits.FNV1(powbits.FNV1(powbits.FNV1(mix[i*4], mix[i*4+1]), mix[i*4+2]), mix[i*4+3])
		mixHash.SetWord32(i, w)
	}

	final := keccak256(seed[:], mixHash[:])
	return Result{Final: final, Mix: mixHash}
}

// VerifyLight recomputes only the seed and final hash, using the supplied
// mix hash, and checks the final digest against boundary. It does not
// require an epoch context or DAG access.
func VerifyLight(header Hash256, mix Hash256, nonce uint64, boundary Hash256) bool {
	seed := seed512(header, nonce)
	final := keccak256(seed[:], mix[:])
	return IsLessOrEqual(final, boundary)
}

// VerifyFull recomputes both the mix hash and final hash and requires the
// mix hash to match the one supplied by the caller.
func VerifyFull(ctx *EpochContext, header Hash256, mix Hash256, nonce uint64, boundary Hash256) VerificationResult {
	result := Hash(ctx, header, nonce)
	if !IsEqual(result.Mix, mix) {
		return InvalidMixHash
	}
	if !IsLessOrEqual(result.Final, boundary) {
		return InvalidNonce
	}
	return OK
}
