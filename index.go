// Package otter implements a generational entity index: the identifier
// allocator at the core of an Entity-Component-System.
//
// Features:
// - Slot plus version identifiers; stale handles fail validation on lookup.
// - Paged sparse Records, each page allocated on first touch of its range.
// - Dense array of live entities with an in-place recycle pool.
// - O(1) create, destroy and lookup; zero allocations when recycling.
package otter

import "math"

// ----------------------------------------
// Constants and Types
// ----------------------------------------

// DefaultPageBits sizes pages at 1024 Records (4 KiB) when an Index is
// built with NewIndex.
const DefaultPageBits = 10

// slotLimit is the highest slot an Index will mint. One below the uint32
// maximum, so aliveCount, which counts the sentinel on top of every live
// slot, cannot wrap.
const slotLimit = math.MaxUint32 - 1

// Index is a paged sparse set over entity slots. The sparse side is a page
// table of Records keyed by slot; the dense side packs all live entities
// contiguously, followed by a pool of already-recycled identifiers waiting
// for reuse.
type Index struct {
	dense      []Entity   // [0] sentinel, [1, aliveCount) live, rest is the recycle pool
	pages      [][]Record // one page per 1<<pageBits slots, indexed by slot >> pageBits
	aliveCount uint32     // live entities + 1 for the sentinel at dense[0]
	maxSlot    uint32     // highest slot ever minted
	pageBits   uint32
	pageSize   uint32
	pageMask   uint32
}

// ----------------------------------------
// Index
// ----------------------------------------

// NewIndex returns an empty Index with DefaultPageBits. Capacity grows
// lazily as entities are created.
func NewIndex() *Index {
	return NewIndexPageBits(DefaultPageBits)
}

// NewIndexPageBits returns an empty Index whose pages hold 1<<pageBits
// Records each, fixed for the Index's lifetime. Larger pages mean fewer
// allocations, smaller pages waste less memory on sparse slot ranges; 6 to
// 12 is a reasonable range for most workloads.
func NewIndexPageBits(pageBits int) *Index {
	if pageBits < 1 || pageBits > 16 {
		panic("otter: page bits must be between 1 and 16")
	}
	x := &Index{
		dense:      make([]Entity, 1),
		aliveCount: 1,
		pageBits:   uint32(pageBits),
		pageSize:   1 << pageBits,
	}
	x.pageMask = x.pageSize - 1
	return x
}

// Create returns a live entity, reusing a recycled slot when one is pooled
// and minting a fresh slot otherwise.
// Zero allocations on the recycling path.
func (x *Index) Create() Entity {
	if x.aliveCount != uint32(len(x.dense)) {
		// pop the pool head; its Record already points at this position
		e := x.dense[x.aliveCount]
		x.aliveCount++
		return e
	}
	if x.maxSlot == slotLimit {
		panic("otter: slot space exhausted")
	}
	slot := x.maxSlot + 1
	e := Entity{ID: slot}
	// grow the page table and dense array before any state commits
	x.ensurePage(slot)
	x.dense = append(x.dense, e)
	x.recordFor(slot).DensePos = x.aliveCount
	x.maxSlot = slot
	x.aliveCount++
	return e
}

// CreateMany creates count entities at once, draining the recycle pool
// before minting fresh slots. Pooled identifiers come back in whatever
// order earlier removals left them; no ordering is guaranteed.
//
// Parameters:
//   - count: the number of entities to create. Non-positive counts return
//     nil without touching the Index; counts beyond the remaining slot
//     space panic before any state changes.
//
// Returns:
//   - A contiguous view of exactly count identifiers, sliced from internal
//     storage. The view is valid until the next mutating call; copy it (or
//     use CreateManyTo) to retain it.
func (x *Index) CreateMany(count int) []Entity {
	if count <= 0 {
		return nil
	}
	pooled := uint32(len(x.dense)) - x.aliveCount
	// capacity check in uint64, before count is narrowed to uint32
	if uint64(count) > uint64(pooled)+uint64(slotLimit-x.maxSlot) {
		panic("otter: slot space exhausted")
	}
	n := uint32(count)
	start := x.aliveCount
	if n > pooled {
		fresh := n - pooled
		// grow the page table and dense array before any state commits
		x.ensurePage(x.maxSlot + fresh)
		x.dense = extendSlice(x.dense, int(fresh))
		for i := uint32(0); i < fresh; i++ {
			slot := x.maxSlot + 1 + i
			pos := start + pooled + i
			x.dense[pos] = Entity{ID: slot}
			x.recordFor(slot).DensePos = pos
		}
		x.maxSlot += fresh
	}
	x.aliveCount += n
	return x.dense[start : start+n : start+n]
}

// CreateManyTo appends count freshly created entities to dst and returns
// the extended slice. Unlike CreateMany's view, the result is the caller's
// to keep.
func (x *Index) CreateManyTo(count int, dst []Entity) []Entity {
	if count <= 0 {
		return dst
	}
	return append(dst, x.CreateMany(count)...)
}

// Destroy removes e from the index and pools its slot for reuse under a
// bumped version. Entities that are not live, including ones already
// destroyed, are ignored.
// Zero allocations on hot path.
func (x *Index) Destroy(e Entity) {
	rec, ok := x.Lookup(e)
	if !ok {
		return
	}
	pos := rec.DensePos
	x.aliveCount--
	// swap the last live entity into the vacated position; when e was the
	// last one, both Record writes land on e's own Record
	boundary := x.dense[x.aliveCount]
	x.recordFor(boundary.ID).DensePos = pos
	rec.DensePos = x.aliveCount
	x.dense[pos] = boundary
	x.dense[x.aliveCount] = e.bumped()
}

// Lookup resolves e to its Record and reports whether e is live. It fails
// for entities that were never allocated, have been destroyed, or carry a
// stale version for a recycled slot.
//
// Returns:
//   - The entity's Record. Treat it as read-only: its contents are
//     invalidated by any later call that creates or destroys entities,
//     though its address stays valid since pages never move.
//   - true if e is live, false otherwise.
func (x *Index) Lookup(e Entity) (*Record, bool) {
	pi := e.ID >> x.pageBits
	if pi >= uint32(len(x.pages)) {
		return nil, false
	}
	rec := &x.pages[pi][e.ID&x.pageMask]
	pos := rec.DensePos
	if pos == 0 || pos >= x.aliveCount {
		return nil, false
	}
	if x.dense[pos] != e {
		// slot is live under a different version
		return nil, false
	}
	return rec, true
}

// LookupUnchecked resolves e's Record without validating liveness. The
// caller must already know e is live this call; anything else reads an
// unrelated Record or panics on an untouched page range.
func (x *Index) LookupUnchecked(e Entity) *Record {
	return x.recordFor(e.ID)
}

// IsAlive reports whether e is currently live in the index.
func (x *Index) IsAlive(e Entity) bool {
	_, ok := x.Lookup(e)
	return ok
}

// Count returns the number of live entities.
func (x *Index) Count() int {
	return int(x.aliveCount) - 1
}

// Reset destroys all entities and empties the recycle pool while keeping
// every allocated page and the dense array's capacity. This is an
// efficient way to reuse an Index without deallocating. All identifiers
// handed out before the reset must be discarded: version counters restart,
// so a retained handle could alias a future entity.
func (x *Index) Reset() {
	for _, p := range x.pages {
		for i := range p {
			p[i] = Record{}
		}
	}
	x.dense = x.dense[:1]
	x.aliveCount = 1
	x.maxSlot = 0
}

// recordFor returns the Record for slot. The covering page must exist.
func (x *Index) recordFor(slot uint32) *Record {
	return &x.pages[slot>>x.pageBits][slot&x.pageMask]
}

// ensurePage grows the page table until the page covering slot exists.
// Slots are minted sequentially, so pages fill in order and the table
// never holds gaps.
func (x *Index) ensurePage(slot uint32) {
	pi := int(slot >> x.pageBits)
	for pi >= len(x.pages) {
		x.pages = append(x.pages, make([]Record, x.pageSize))
	}
}
