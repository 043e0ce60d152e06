// Copyright 2017 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package ethash

import (
	"errors"

	"github.com/holiman/uint256"

	"github.com/erigontech/erigon-pow/crypto/keccak"
	ethashrules "github.com/erigontech/erigon-pow/execution/protocol/rules/ethash"
)

// Header carries the subset of block-header fields the proof-of-work
// engine needs to reproduce a seal hash and check a solution. It is
// deliberately not a full chain header: block validation, state
// transition and uncle/reward accounting are out of this module's scope.
type Header struct {
	ParentHash Hash256
	UncleHash  Hash256
	Coinbase   [20]byte
	Root       Hash256
	TxHash     Hash256
	Number     uint64
	Difficulty *uint256.Int
	GasLimit   uint64
	GasUsed    uint64
	Time       uint64
	Extra      []byte
	MixDigest  Hash256
	Nonce      uint64

	// Parent, when set, lets VerifySeal also check that Difficulty is the
	// value Fork's retarget rules derive from the parent header; left nil,
	// VerifySeal only checks the proof-of-work boundary.
	Parent *ParentInfo
	Fork   ethashrules.Fork
}

// ParentInfo carries the parent-header fields the difficulty retarget
// formulas in execution/protocol/rules/ethash need.
type ParentInfo struct {
	Time       uint64
	Difficulty uint256.Int
	Number     uint64
	UncleHash  [32]byte
}

var (
	errInvalidDifficulty = errors.New("non-positive difficulty")
	errWrongDifficulty   = errors.New("difficulty does not match parent-derived value")
	errInvalidMixDigest  = errors.New("invalid mix digest")
	errInvalidPoW        = errors.New("invalid proof-of-work")
)

// SealHash returns the hash of a block header prior to it being sealed,
// the preimage VerifySeal feeds into Hash or VerifyFull alongside
// the nonce. The teacher builds this via rlp.Encode into a Keccak-256
// hasher; this module carries no RLP encoder, so the same fields are
// instead written in a fixed order directly into the sponge.
func (h *Header) SealHash() Hash256 {
	hasher := hasher256Pool.Get().(*keccak.Hasher)
	defer hasher256Pool.Put(hasher)
	hasher.Reset()

	hasher.Write(h.ParentHash[:])
	hasher.Write(h.UncleHash[:])
	hasher.Write(h.Coinbase[:])
	hasher.Write(h.Root[:])
	hasher.Write(h.TxHash[:])
	writeUint64(hasher, h.Number)
	writeUint256(hasher, h.Difficulty)
	writeUint64(hasher, h.GasLimit)
	writeUint64(hasher, h.GasUsed)
	writeUint64(hasher, h.Time)
	hasher.Write(h.Extra)

	var out Hash256
	hasher.Sum(out[:0])
	return out
}

func writeUint64(hasher *keccak.Hasher, v uint64) {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (56 - 8*i))
	}
	hasher.Write(buf[:])
}

func writeUint256(hasher *keccak.Hasher, v *uint256.Int) {
	if v == nil {
		v = new(uint256.Int)
	}
	b := v.Bytes32()
	hasher.Write(b[:])
}

// Engine binds the proof-of-work core to a header verification surface,
// mirroring the teacher's *Ethash wiring but built on this module's own
// EpochContext cache instead of turbo-geth's mmap'd cache/dataset files.
type Engine struct {
	Epochs *EpochCache
	local  *LocalCache
	full   bool
}

// NewEngine builds an Engine backed by a shared epoch cache of the given
// capacity (number of epoch contexts kept resident). full selects whether
// VerifySeal uses the full in-memory DAG (fast, memory-heavy) or light
// cache lookups (slow, memory-light) for verification.
func NewEngine(epochCacheSize int, full bool) *Engine {
	epochs := NewEpochCache(epochCacheSize)
	return &Engine{
		Epochs: epochs,
		local:  NewLocalCache(epochs),
		full:   full,
	}
}

// VerifySeal checks whether header satisfies its own difficulty's
// proof-of-work boundary, using the Ethash light/full hash path. If
// header.Parent is set, it first checks that header.Difficulty is the
// value the fork's retarget rules derive from the parent.
func (e *Engine) VerifySeal(header *Header) error {
	if header.Difficulty == nil || header.Difficulty.Sign() <= 0 {
		return errInvalidDifficulty
	}
	if header.Parent != nil {
		want := ethashrules.CalcDifficulty(header.Fork, header.Time, header.Parent.Time,
			header.Parent.Difficulty, header.Parent.Number, header.Parent.UncleHash)
		if header.Difficulty.Cmp(&want) != 0 {
			return errWrongDifficulty
		}
	}
	epoch := GetEpochFromBlock(header.Number)
	ctx := e.local.Get(epoch, e.full)

	boundary := BoundaryFromDifficulty(header.Difficulty)
	seal := header.SealHash()

	if e.full {
		switch VerifyFull(ctx, seal, header.MixDigest, header.Nonce, boundary) {
		case InvalidMixHash:
			return errInvalidMixDigest
		case InvalidNonce:
			return errInvalidPoW
		}
		return nil
	}

	result := Hash(ctx, seal, header.Nonce)
	if result.Mix != header.MixDigest {
		return errInvalidMixDigest
	}
	if !IsLessOrEqual(result.Final, boundary) {
		return errInvalidPoW
	}
	return nil
}

// Close releases the engine's epoch-context handle back to the shared cache.
func (e *Engine) Close() {
	e.local.Close()
}
