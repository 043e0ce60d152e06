package ethash

import "testing"

// newTestContext builds a small, fast-to-construct EpochContext exercising
// the real lookup1024/lookup2048 code paths, rather than a real mainnet
// epoch (whose ~16 MiB light cache and ~1 GiB DAG are unsuited to a fast
// unit test).
func newTestContext(numItems uint64) *EpochContext {
	seed := EpochSeed(0)
	cache := BuildLightCache(41, seed)
	l1Tiles := (numItems + 1) / 2
	l1 := make([]Hash2048, l1Tiles)
	for i := range l1 {
		l1[i] = Dataset2048(cache, uint64(i))
	}
	ctx := &EpochContext{
		Params: EpochParams{FullDatasetNumItems: numItems, LightCacheNumItems: 41},
		Cache:  cache,
		L1:     l1,
	}
	ctx.refs.Store(1)
	return ctx
}

func TestHashRoundTripLight(t *testing.T) {
	ctx := newTestContext(37)
	var header Hash256
	header[0] = 0x01
	result := Hash(ctx, header, 0)

	boundary := result.Final
	if VerifyLight(header, result.Mix, 0, boundary) != true {
		t.Errorf("VerifyLight should accept the nonce's own final hash as boundary")
	}
	if got := VerifyFull(ctx, header, result.Mix, 0, boundary); got != OK {
		t.Errorf("VerifyFull = %v, want OK", got)
	}
}

func TestHashRoundTripZeroAndMaxHeader(t *testing.T) {
	ctx := newTestContext(37)

	var zero Hash256
	r1 := Hash(ctx, zero, 0)
	if VerifyFull(ctx, zero, r1.Mix, 0, r1.Final) != OK {
		t.Errorf("zero header round trip failed")
	}

	var max Hash256
	for i := range max {
		max[i] = 0xff
	}
	r2 := Hash(ctx, max, ^uint64(0))
	if VerifyFull(ctx, max, r2.Mix, ^uint64(0), r2.Final) != OK {
		t.Errorf("max header round trip failed")
	}
}

func TestMixHashSensitivity(t *testing.T) {
	ctx := newTestContext(37)
	var header Hash256
	result := Hash(ctx, header, 5)

	flipped := result.Mix
	flipped[0] ^= 0x01

	boundary := result.Final
	if got := VerifyFull(ctx, header, flipped, 5, boundary); got != InvalidMixHash {
		t.Errorf("VerifyFull with flipped mix = %v, want InvalidMixHash", got)
	}
}

func TestVerifyFullInvalidNonce(t *testing.T) {
	ctx := newTestContext(37)
	var header Hash256
	result := Hash(ctx, header, 9)

	var tinyBoundary Hash256 // all-zero: nothing satisfies final <= 0 except final == 0
	if got := VerifyFull(ctx, header, result.Mix, 9, tinyBoundary); got != InvalidNonce {
		t.Errorf("VerifyFull with impossible boundary = %v, want InvalidNonce", got)
	}
}

func TestDeterministicAcrossContexts(t *testing.T) {
	ctx1 := newTestContext(37)
	ctx2 := newTestContext(37)
	var header Hash256
	header[5] = 0x42

	r1 := Hash(ctx1, header, 123)
	r2 := Hash(ctx2, header, 123)
	if r1 != r2 {
		t.Fatalf("independently built contexts produced different results: %+v vs %+v", r1, r2)
	}
}
