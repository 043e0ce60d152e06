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

import "errors"

// ErrUnknownEpochSeed is returned by EpochFromSeed when no epoch within
// maxEpochSeedIterates produces the given seed.
var ErrUnknownEpochSeed = errors.New("ethash: unknown epoch seed")

// VerificationResult is the tagged outcome of a verify_full-style check.
type VerificationResult int

const (
	// OK indicates the final hash is within the boundary and, for a full
	// verification, that the recomputed mix hash matches the supplied one.
	OK VerificationResult = iota
	// InvalidNonce indicates the final hash exceeds the boundary.
	InvalidNonce
	// InvalidMixHash indicates the recomputed mix hash differs from the
	// one supplied by the caller.
	InvalidMixHash
)

func (r VerificationResult) String() string {
	switch r {
	case OK:
		return "OK"
	case InvalidNonce:
		return "InvalidNonce"
	case InvalidMixHash:
		return "InvalidMixHash"
	default:
		return "Unknown"
	}
}
