package ethash

import "testing"

func TestEpochCacheHitsAndBuilds(t *testing.T) {
	cache := NewEpochCache(4)

	ctx1 := cache.Get(0, false)
	defer ctx1.Release()
	builds, hits := cache.Stats()
	if builds != 1 || hits != 0 {
		t.Fatalf("after first Get: builds=%d hits=%d, want 1,0", builds, hits)
	}

	ctx2 := cache.Get(0, false)
	defer ctx2.Release()
	builds, hits = cache.Stats()
	if builds != 1 || hits != 1 {
		t.Fatalf("after second Get: builds=%d hits=%d, want 1,1", builds, hits)
	}
	if ctx1 != ctx2 {
		t.Fatalf("Get(0,false) twice should return the same context")
	}
}

func TestEpochCacheReplacesOppositeFullness(t *testing.T) {
	cache := NewEpochCache(4)

	light := cache.Get(0, false)
	if light.Full != nil {
		t.Fatalf("full=false context should have a nil Full dataset")
	}

	full := cache.Get(0, true)
	if full.Full == nil {
		t.Fatalf("full=true context should have a non-nil Full dataset")
	}
	if full == light {
		t.Fatalf("requesting the opposite fullness should rebuild, not reuse, the cached context")
	}
	light.Release()

	builds, _ := cache.Stats()
	if builds != 2 {
		t.Fatalf("building the opposite fullness should evict and rebuild: builds=%d, want 2", builds)
	}

	again := cache.Get(0, true)
	defer again.Release()
	if again != full {
		t.Fatalf("a repeated Get with the now-cached fullness should hit, not rebuild")
	}
	full.Release()

	backToLight := cache.Get(0, false)
	defer backToLight.Release()
	if backToLight == full {
		t.Fatalf("switching back to full=false should again evict and rebuild, not reuse the full context")
	}
	builds, _ = cache.Stats()
	if builds != 3 {
		t.Fatalf("switching fullness twice should have triggered 3 total builds: builds=%d", builds)
	}
}

func TestLocalCacheReusesMatchingEpoch(t *testing.T) {
	shared := NewEpochCache(4)
	local := NewLocalCache(shared)
	defer local.Close()

	a := local.Get(0, false)
	_, hitsBefore := shared.Stats()
	b := local.Get(0, false)
	_, hitsAfter := shared.Stats()

	if a != b {
		t.Fatalf("LocalCache should return the same context for a repeated (epoch,full)")
	}
	if hitsAfter != hitsBefore {
		t.Fatalf("LocalCache hit on the local slot should not touch the shared cache's hit counter")
	}
}

func TestReferenceCountingPanicsOnOverRelease(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on over-release")
		}
	}()
	ctx := newEpochContext(0, false)
	ctx.Release()
	ctx.Release()
}
