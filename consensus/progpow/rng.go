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

import (
	powbits "github.com/erigontech/erigon-pow/crypto/bits"
	"github.com/erigontech/erigon-pow/crypto/kiss99"
)

// kRegs is the number of mix registers per lane; dst/src permutations are
// built once per hash over {0..kRegs-1} and consumed sequentially.
const kRegs = 32

// MixRNGState holds a KISS99 generator plus the Fisher-Yates-shuffled
// destination and source register-index permutations it derives once per
// hash (not per lane, not per round, matching ProgPoW v0.9.4). Calls to
// Next, NextDst and NextSrc must happen in the exact sequence the mixing
// round demands; identical seeds always produce identical sequences.
type MixRNGState struct {
	rng    *kiss99.Kiss99
	dstSeq [kRegs]uint32
	srcSeq [kRegs]uint32
	dstCtr int
	srcCtr int
}

// NewMixRNGState seeds a generator from a 64-bit value the way the
// hash-level mix state is derived: z,w,jsr,jcong folded from seed via
// FNV-1a, then the two register-index permutations built with Fisher-Yates
// shuffles driven by successive RNG draws.
func NewMixRNGState(seed uint64) *MixRNGState {
	low := uint32(seed)
	high := uint32(seed >> 32)

	z := powbits.FNV1a(powbits.FNVOffsetBasis, low)
	w := powbits.FNV1a(z, high)
	jsr := powbits.FNV1a(w, low)
	jcong := powbits.FNV1a(jsr, high)

	s := &MixRNGState{rng: kiss99.New(z, w, jsr, jcong)}
	for i := range s.dstSeq {
		s.dstSeq[i] = uint32(i)
		s.srcSeq[i] = uint32(i)
	}
	fisherYates(s.dstSeq[:], s.rng)
	fisherYates(s.srcSeq[:], s.rng)
	return s
}

// fisherYates shuffles seq in place: for i = len..2, swap index i-1 with
// rng() mod i.
func fisherYates(seq []uint32, rng *kiss99.Kiss99) {
	for i := len(seq); i >= 2; i-- {
		j := rng.Next() % uint32(i)
		seq[i-1], seq[j] = seq[j], seq[i-1]
	}
}

// Next returns the next raw KISS99 output.
func (s *MixRNGState) Next() uint32 { return s.rng.Next() }

// NextDst returns the next destination register index, cycling through
// the shuffled permutation.
func (s *MixRNGState) NextDst() uint32 {
	v := s.dstSeq[s.dstCtr%kRegs]
	s.dstCtr++
	return v
}

// NextSrc returns the next source register index, cycling through the
// shuffled permutation.
func (s *MixRNGState) NextSrc() uint32 {
	v := s.srcSeq[s.srcCtr%kRegs]
	s.srcCtr++
	return v
}
