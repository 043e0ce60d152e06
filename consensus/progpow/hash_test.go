package progpow

import (
	"testing"

	"github.com/erigontech/erigon-pow/consensus/ethash"
)

// newTestContext builds a small epoch context sized for fast tests,
// exercising the real L1/DAG lookup paths rather than a real mainnet
// epoch's ~16 MiB light cache / ~1 GiB DAG.
func newTestContext(numItems uint64) *ethash.EpochContext {
	seed := ethash.EpochSeed(0)
	cache := ethash.BuildLightCache(41, seed)
	// The full 16 KiB L1 (64 tiles): round() reads any word of it via L1Word32.
	l1Tiles := kCacheBytes / len(ethash.Hash2048{})
	l1 := make([]ethash.Hash2048, l1Tiles)
	for i := range l1 {
		l1[i] = ethash.Dataset2048(cache, uint64(i))
	}
	return &ethash.EpochContext{
		Params: ethash.EpochParams{FullDatasetNumItems: numItems, LightCacheNumItems: 41},
		Cache:  cache,
		L1:     l1,
	}
}

func TestProgPoWRoundTrip(t *testing.T) {
	ctx := newTestContext(37)
	var header ethash.Hash256
	header[0] = 0x07

	result := Hash(ctx, 30000, header, 42)
	if got := VerifyFull(ctx, 30000, header, result.Mix, 42, result.Final); got != OK {
		t.Errorf("VerifyFull = %v, want OK", got)
	}
}

func TestProgPoWMixSensitivity(t *testing.T) {
	ctx := newTestContext(37)
	var header ethash.Hash256
	result := Hash(ctx, 30000, header, 1)

	flipped := result.Mix
	flipped[3] ^= 0x80

	if got := VerifyFull(ctx, 30000, header, flipped, 1, result.Final); got != InvalidMixHash {
		t.Errorf("VerifyFull with flipped mix = %v, want InvalidMixHash", got)
	}
}

func TestProgPoWInvalidNonce(t *testing.T) {
	ctx := newTestContext(37)
	var header ethash.Hash256
	result := Hash(ctx, 30000, header, 2)

	var zeroBoundary ethash.Hash256
	if got := VerifyFull(ctx, 30000, header, result.Mix, 2, zeroBoundary); got != InvalidNonce {
		t.Errorf("VerifyFull with zero boundary = %v, want InvalidNonce", got)
	}
}

func TestProgPoWDeterministic(t *testing.T) {
	ctx1 := newTestContext(37)
	ctx2 := newTestContext(37)
	var header ethash.Hash256
	header[9] = 0x42

	r1 := Hash(ctx1, 10, header, 777)
	r2 := Hash(ctx2, 10, header, 777)
	if r1 != r2 {
		t.Fatalf("independently built contexts produced different ProgPoW results")
	}
}

func TestProgPoWPeriodChangesHash(t *testing.T) {
	ctx := newTestContext(37)
	var header ethash.Hash256

	r1 := Hash(ctx, 10, header, 1)
	r2 := Hash(ctx, 11, header, 1)
	if r1 == r2 {
		t.Fatalf("different periods should (overwhelmingly likely) produce different hashes")
	}
}

func TestPeriodFromBlock(t *testing.T) {
	if got := PeriodFromBlock(30000); got != 30000 {
		t.Errorf("PeriodFromBlock(30000) = %d, want 30000 (kPeriodLength=1)", got)
	}
}
