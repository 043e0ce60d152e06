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
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/erigontech/erigon-pow/erigon-lib/log/v3"
	"golang.org/x/sync/singleflight"
)

// l1CacheItems is the number of DAG items (64 2048-bit tiles = 16 KiB)
// eagerly populated into every epoch context's L1 cache, regardless of
// whether the full DAG is also materialised.
const l1CacheItems = 64

// EpochContext is the immutable (from the consumer's perspective) handle
// to one epoch's derived data: the light cache, an eagerly-built 16 KiB L1
// cache slice, and optionally the full DAG. It is shared by reference
// count; the count is bookkeeping only, and the backing slices are
// reclaimed by the GC once nothing references the context.
type EpochContext struct {
	Params EpochParams
	Cache  []Hash512
	L1     []Hash2048
	Full   *fullDataset // nil unless built with full=true

	refs atomic.Int32
}

// newEpochContext builds a fresh context for epoch, optionally also
// materialising (lazily) the full dataset.
func newEpochContext(epoch uint64, full bool) *EpochContext {
	params := CalcEpochParams(epoch)
	seed := EpochSeed(epoch)
	cache := BuildLightCache(params.LightCacheNumItems, seed)

	l1 := make([]Hash2048, l1CacheItems)
	for i := range l1 {
		l1[i] = Dataset2048(cache, uint64(i))
	}

	ctx := &EpochContext{Params: params, Cache: cache, L1: l1}
	ctx.refs.Store(1)
	if full {
		ctx.Full = newFullDataset(cache, params.FullDatasetNumItems)
	}
	return ctx
}

// Acquire increments the context's reference count. Callers that hand a
// context to another goroutine/thread-local slot must Acquire first.
func (c *EpochContext) Acquire() *EpochContext {
	c.refs.Add(1)
	return c
}

// Release decrements the reference count and panics if it drops below
// zero. Reaching zero frees nothing by itself.
func (c *EpochContext) Release() {
	if c.refs.Add(-1) < 0 {
		panic("ethash: EpochContext released more times than acquired")
	}
}

// isFull reports whether this context was built with the full dataset
// materialised, i.e. which bucket of the (epoch, fullness) space it serves.
func (c *EpochContext) isFull() bool { return c.Full != nil }

// Lookup1024 exposes lookup1024 to other packages (progpow's DAG-item
// selection shares the same L1/full/on-the-fly resolution as Ethash's mix).
func (c *EpochContext) Lookup1024(p uint64) Hash1024 { return c.lookup1024(p) }

// Lookup2048 exposes lookup2048 to other packages.
func (c *EpochContext) Lookup2048(i uint64) Hash2048 { return c.lookup2048(i) }

// L1Word32 reads the little-endian 32-bit word at offset (in 4-byte units)
// from the flattened L1 cache, treating the 64 2048-bit tiles as one
// contiguous 16 KiB byte buffer. Used by ProgPoW's per-round cache reads.
func (c *EpochContext) L1Word32(offset int) uint32 {
	const tileWords = 2048 / 8 / 4 // 64 32-bit words per Hash2048 tile
	tile := c.L1[offset/tileWords]
	within := (offset % tileWords) * 4
	return uint32(tile[within]) | uint32(tile[within+1])<<8 | uint32(tile[within+2])<<16 | uint32(tile[within+3])<<24
}

// lookup1024 resolves DAG item p for the Ethash mix: from the L1 cache if
// p < l1CacheItems*2 (since each L1 tile is two 1024-bit items), from the
// full DAG if present, or derived on the fly otherwise.
func (c *EpochContext) lookup1024(p uint64) Hash1024 {
	if p < l1CacheItems*2 {
		tile := c.L1[p/2]
		var out Hash1024
		if p%2 == 0 {
			copy(out[:], tile[:128])
		} else {
			copy(out[:], tile[128:])
		}
		return out
	}
	if c.Full != nil {
		return c.Full.item1024(p)
	}
	return Dataset1024(c.Cache, p)
}

// lookup2048 resolves a 2048-bit DAG tile for ProgPoW's DAG-merge step.
func (c *EpochContext) lookup2048(i uint64) Hash2048 {
	if i < l1CacheItems {
		return c.L1[i]
	}
	if c.Full != nil {
		return c.Full.item2048(i)
	}
	return Dataset2048(c.Cache, i)
}

// EpochCache is the process-wide tier of the epoch context cache: an LRU
// keyed by epoch number alone, with concurrent builds for the same epoch
// collapsed via singleflight, so a burst of requests for a not-yet-cached
// epoch triggers exactly one (expensive) build. A single entry is kept per
// epoch: requesting a fullness that doesn't match the cached entry evicts
// it and rebuilds, matching the reference's single shared-pointer-per-epoch
// model rather than caching light and full contexts independently.
type EpochCache struct {
	lru   *lru.Cache[uint64, *EpochContext]
	group singleflight.Group

	builds atomic.Uint64
	hits   atomic.Uint64
}

// NewEpochCache returns a process-wide cache holding at most size distinct
// epoch contexts. Evicted or replaced contexts have their reference count
// released.
func NewEpochCache(size int) *EpochCache {
	c := &EpochCache{}
	l, err := lru.NewWithEvict[uint64, *EpochContext](size, func(_ uint64, ctx *EpochContext) {
		ctx.Release()
	})
	if err != nil {
		// size <= 0; a programming error, not a runtime condition.
		panic(fmt.Sprintf("ethash: NewEpochCache: %v", err))
	}
	c.lru = l
	return c
}

// Get returns a reference-counted handle to the context for epoch with the
// requested fullness, building it if necessary. If epoch is cached with the
// opposite fullness, that entry is evicted and replaced: only one context
// per epoch is ever held. The caller owns the returned reference and must
// Release it when done.
func (c *EpochCache) Get(epoch uint64, full bool) *EpochContext {
	if ctx, ok := c.lru.Get(epoch); ok && ctx.isFull() == full {
		c.hits.Add(1)
		return ctx.Acquire()
	}

	groupKey := fmt.Sprintf("%d-%v", epoch, full)
	v, _, _ := c.group.Do(groupKey, func() (any, error) {
		if ctx, ok := c.lru.Get(epoch); ok {
			if ctx.isFull() == full {
				return ctx, nil
			}
			c.lru.Remove(epoch)
		}
		c.builds.Add(1)
		log.Info("building ethash epoch context", "epoch", epoch, "full", full)
		ctx := newEpochContext(epoch, full)
		c.lru.Add(epoch, ctx)
		return ctx, nil
	})
	return v.(*EpochContext).Acquire()
}

// Stats returns the cumulative build and hit counters, for callers that
// want to surface epoch-context cache effectiveness as a metric.
func (c *EpochCache) Stats() (builds, hits uint64) {
	return c.builds.Load(), c.hits.Load()
}

// epochKey identifies a LocalCache's currently held slot. It has no
// bearing on the shared EpochCache's keying (which is epoch-only, per its
// single-context-per-epoch replacement rule): a LocalCache simply tracks
// which (epoch, full) pair its one cached reference was fetched for.
type epochKey struct {
	epoch uint64
	full  bool
}

// LocalCache is a caller-owned, single-slot fast path standing in for the
// reference's thread-local handle: Go has no stable goroutine identity, so
// callers that want the "last-used context" optimisation hold one of these
// per worker goroutine instead of relying on implicit TLS.
type LocalCache struct {
	shared *EpochCache
	key    epochKey
	ctx    *EpochContext
}

// NewLocalCache returns a LocalCache drawing from shared on a miss.
func NewLocalCache(shared *EpochCache) *LocalCache {
	return &LocalCache{shared: shared}
}

// Get returns the context for (epoch, full), reusing the locally held
// context if it already matches, otherwise fetching from the shared
// process-wide cache and releasing the stale local reference.
func (l *LocalCache) Get(epoch uint64, full bool) *EpochContext {
	key := epochKey{epoch, full}
	if l.ctx != nil && l.key == key {
		return l.ctx
	}
	if l.ctx != nil {
		l.ctx.Release()
	}
	l.ctx = l.shared.Get(epoch, full)
	l.key = key
	return l.ctx
}

// Close releases the locally held reference, if any.
func (l *LocalCache) Close() {
	if l.ctx != nil {
		l.ctx.Release()
		l.ctx = nil
	}
}
