package keccak

import "encoding/binary"

// This package implements the non-standard Keccak sponge the Ethereum
// ecosystem inherited from the original Keccak submission: a single 0x01
// domain-separation byte followed by zero padding and a final 0x80 on the
// last byte of the block, NOT SHA3's 0x06 (see FIPS 202 vs. the original
// Keccak spec). golang.org/x/crypto/sha3's NewLegacyKeccak256/512 implement
// the same padding and are used in this module's tests as a cross-check,
// but carry no optimized assembly, which is why the sponge itself is
// hand-rolled here; see keccak_test.go.
const (
	rate256 = (1600 - 2*256) / 8 // 136
	rate512 = (1600 - 2*512) / 8 // 72
)

// Hasher is a streaming, resettable Keccak sponge of fixed output size,
// grounded on the reusable hash.Hash wrapper pattern in
// erigon-lib/common/hasher.go and the streaming API shape of
// fastkeccak's Hasher.
type Hasher struct {
	state    [25]uint64
	buf      [200]byte
	rate     int
	bufLen   int
	outBytes int
}

// NewKeccak256 returns a Hasher producing 32-byte (256-bit) digests.
func NewKeccak256() *Hasher { return &Hasher{rate: rate256, outBytes: 32} }

// NewKeccak512 returns a Hasher producing 64-byte (512-bit) digests.
func NewKeccak512() *Hasher { return &Hasher{rate: rate512, outBytes: 64} }

// Reset returns the hasher to its initial state, ready for reuse.
func (h *Hasher) Reset() {
	h.state = [25]uint64{}
	h.bufLen = 0
}

// Size returns the number of bytes Sum will return.
func (h *Hasher) Size() int { return h.outBytes }

// BlockSize returns the sponge's rate in bytes.
func (h *Hasher) BlockSize() int { return h.rate }

// Write absorbs p into the sponge. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	n := len(p)
	if h.bufLen > 0 {
		fill := h.rate - h.bufLen
		if fill > len(p) {
			fill = len(p)
		}
		copy(h.buf[h.bufLen:], p[:fill])
		h.bufLen += fill
		p = p[fill:]
		if h.bufLen == h.rate {
			absorbBlock(&h.state, h.buf[:h.rate])
			h.bufLen = 0
		}
	}
	for len(p) >= h.rate {
		absorbBlock(&h.state, p[:h.rate])
		p = p[h.rate:]
	}
	if len(p) > 0 {
		copy(h.buf[h.bufLen:], p)
		h.bufLen += len(p)
	}
	return n, nil
}

// Sum appends the digest of all data written so far to b and returns the
// result, without mutating the receiver, so callers may keep writing.
func (h *Hasher) Sum(b []byte) []byte {
	cp := *h
	return append(b, cp.finalize()...)
}

// finalize pads, absorbs the last block and squeezes outBytes of output.
// It mutates the receiver, so Sum always calls it on a copy.
func (h *Hasher) finalize() []byte {
	var last [200]byte
	copy(last[:], h.buf[:h.bufLen])
	last[h.bufLen] ^= 0x01
	last[h.rate-1] ^= 0x80
	absorbBlock(&h.state, last[:h.rate])

	out := make([]byte, 0, h.outBytes)
	for len(out) < h.outBytes {
		need := h.outBytes - len(out)
		if need > h.rate {
			need = h.rate
		}
		out = append(out, squeezeBlock(&h.state, need)...)
		if len(out) < h.outBytes {
			Permute1600(&h.state)
		}
	}
	return out
}

// absorbBlock xors a rate-sized block into the sponge state (little-endian
// lane packing) and runs the permutation.
func absorbBlock(state *[25]uint64, block []byte) {
	for i := 0; i*8 < len(block); i++ {
		state[i] ^= binary.LittleEndian.Uint64(block[i*8:])
	}
	Permute1600(state)
}

// squeezeBlock reads n bytes (n <= rate) out of the sponge state in
// little-endian lane order, without permuting.
func squeezeBlock(state *[25]uint64, n int) []byte {
	out := make([]byte, n)
	var lane [8]byte
	for i := 0; i < n; i += 8 {
		binary.LittleEndian.PutUint64(lane[:], state[i/8])
		copy(out[i:], lane[:min(8, n-i)])
	}
	return out
}

// Sum256 returns the Keccak-256 digest of data.
func Sum256(data []byte) [32]byte {
	h := NewKeccak256()
	h.Write(data)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Sum512 returns the Keccak-512 digest of data.
func Sum512(data []byte) [64]byte {
	h := NewKeccak512()
	h.Write(data)
	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out
}
