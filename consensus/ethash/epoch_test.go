package ethash

import "testing"

func TestFindLargestPrimeBelow(t *testing.T) {
	cases := []struct{ in, want uint64 }{
		{10, 7},
		{7, 7},
		{100, 97},
		{2, 2},
		{3, 3},
	}
	for _, c := range cases {
		if got := FindLargestPrimeBelow(c.in); got != c.want {
			t.Errorf("FindLargestPrimeBelow(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestEpochParamsPrimeAndMonotonic(t *testing.T) {
	prev := CalcEpochParams(0)
	if !isPrime(prev.LightCacheNumItems) || prev.LightCacheNumItems%2 == 0 {
		t.Fatalf("epoch 0 light cache item count %d is not an odd prime", prev.LightCacheNumItems)
	}
	if !isPrime(prev.FullDatasetNumItems) || prev.FullDatasetNumItems%2 == 0 {
		t.Fatalf("epoch 0 full dataset item count %d is not an odd prime", prev.FullDatasetNumItems)
	}
	for e := uint64(1); e <= 5; e++ {
		cur := CalcEpochParams(e)
		if cur.LightCacheNumItems < prev.LightCacheNumItems {
			t.Fatalf("epoch %d light cache items %d < epoch %d items %d", e, cur.LightCacheNumItems, e-1, prev.LightCacheNumItems)
		}
		if cur.FullDatasetNumItems < prev.FullDatasetNumItems {
			t.Fatalf("epoch %d full dataset items %d < epoch %d items %d", e, cur.FullDatasetNumItems, e-1, prev.FullDatasetNumItems)
		}
		prev = cur
	}
}

func TestGetEpochFromBlock(t *testing.T) {
	if got := GetEpochFromBlock(0); got != 0 {
		t.Errorf("GetEpochFromBlock(0) = %d, want 0", got)
	}
	if got := GetEpochFromBlock(7499); got != 0 {
		t.Errorf("GetEpochFromBlock(7499) = %d, want 0", got)
	}
	if got := GetEpochFromBlock(7500); got != 1 {
		t.Errorf("GetEpochFromBlock(7500) = %d, want 1", got)
	}
	if got := GetEpochFromBlock(1282500); got != 171 {
		t.Errorf("GetEpochFromBlock(1282500) = %d, want 171", got)
	}
}

func TestEpochSeedChains(t *testing.T) {
	seed0 := EpochSeed(0)
	if seed0 != (Hash256{}) {
		t.Errorf("EpochSeed(0) should be 32 zero bytes, got %x", seed0)
	}
	seed1 := EpochSeed(1)
	want1 := keccak256(seed0[:])
	if seed1 != want1 {
		t.Errorf("EpochSeed(1) = %x, want keccak256(EpochSeed(0)) = %x", seed1, want1)
	}
	seed3 := EpochSeed(3)
	w1 := keccak256(seed0[:])
	w2 := keccak256(w1[:])
	want3 := keccak256(w2[:])
	if seed3 != want3 {
		t.Errorf("EpochSeed(3) = %x, want %x", seed3, want3)
	}
}

func TestEpochFromSeedRoundTrip(t *testing.T) {
	for e := uint64(0); e < 5; e++ {
		seed := EpochSeed(e)
		got, err := EpochFromSeed(seed)
		if err != nil {
			t.Fatalf("EpochFromSeed(EpochSeed(%d)) not found: %v", e, err)
		}
		if got != e {
			t.Errorf("EpochFromSeed(EpochSeed(%d)) = %d, want %d", e, got, e)
		}
	}
}

func TestEpochFromSeedUnknown(t *testing.T) {
	var bogus Hash256
	bogus[0] = 0xff
	if _, err := EpochFromSeed(bogus); err != ErrUnknownEpochSeed {
		t.Errorf("EpochFromSeed should return ErrUnknownEpochSeed for a seed unreachable within the iterate bound, got %v", err)
	}
}
