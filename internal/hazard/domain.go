// File: internal/hazard/domain.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Domain owns the slot table for one (T, MaxObjects) instantiation and
// coordinates reclamation. Every Domain is independent: nothing here is
// a process-wide singleton, matching the spec's stated safe default
// that distinct instantiations get independent tables.

package hazard

import (
	"runtime"
	"sync/atomic"

	"github.com/momentics/hzconc/api"
)

// Domain owns a per-type protection slot table and a set of retire-list
// shards, and coordinates deferred deletion of retired pointers.
type Domain[T any] struct {
	cfg      api.DomainConfig
	slots    []cell[T]
	sentinel *T

	shards []*retireShard[T]
	rr     atomic.Uint64

	liveHandles    atomic.Int64
	totalReclaimed atomic.Uint64
	totalScans     atomic.Uint64
}

// NewDomain constructs a domain with the given configuration. Each call
// produces a fresh, independent slot table.
func NewDomain[T any](cfg api.DomainConfig) *Domain[T] {
	if cfg.MaxObjects <= 0 {
		cfg.MaxObjects = api.DefaultDomainConfig().MaxObjects
	}
	if cfg.RetireStartThreshold <= 0 {
		cfg.RetireStartThreshold = 2 * cfg.MaxObjects
	}
	if cfg.RetireCap <= 0 {
		cfg.RetireCap = 32 * cfg.MaxObjects
	}

	d := &Domain[T]{
		cfg:      cfg,
		slots:    make([]cell[T], cfg.MaxObjects),
		sentinel: new(T),
	}

	numShards := runtime.GOMAXPROCS(0)
	if numShards < 1 {
		numShards = 1
	}
	if numShards > cfg.MaxObjects {
		numShards = cfg.MaxObjects
	}
	d.shards = make([]*retireShard[T], numShards)
	for i := range d.shards {
		d.shards[i] = newRetireShard[T](cfg.RetireStartThreshold)
	}
	return d
}

// tryCaptureCell scans the slot table for a free cell and attempts to
// claim it with a CAS from nil (Free) to the domain's sentinel
// (Reserved). It never blocks; its only allocation is the returned
// Handle.
func (d *Domain[T]) tryCaptureCell() (*Handle[T], bool) {
	start := int(d.rr.Add(1)) % len(d.slots)
	n := len(d.slots)
	for i := 0; i < n; i++ {
		c := &d.slots[(start+i)%n]
		if c.pointer.CompareAndSwap(nil, d.sentinel) {
			d.liveHandles.Add(1)
			return &Handle[T]{domain: d, cell: c}, true
		}
	}
	return nil, false
}

// CaptureCell acquires a free protection cell. Slot exhaustion is a
// contract violation the caller must never reach in production (the
// live-handle count is guaranteed not to exceed MaxObjects), so it
// panics rather than returning an error on the hot path; see
// tryCaptureCell for the non-panicking primitive used by tests.
func (d *Domain[T]) CaptureCell() *Handle[T] {
	h, ok := d.tryCaptureCell()
	if !ok {
		panic(api.ErrSlotsExhausted)
	}
	return h
}

// Retire appends p to one of the domain's retire-list shards. Retiring
// nil is a no-op; retiring the same address twice is undefined and must
// be prevented by the caller.
func (d *Domain[T]) Retire(p *T) {
	if p == nil {
		return
	}
	idx := d.rr.Add(1) % uint64(len(d.shards))
	sh := d.shards[idx]

	sh.mu.Lock()
	sh.q.Add(p)
	needScan := sh.q.Length() > sh.threshold
	sh.mu.Unlock()

	if needScan {
		d.scanShard(sh)
	}
}

// scanShard implements scan_and_delete for one shard: it takes an
// acquire-ordered snapshot of every hazardous address, then walks the
// shard's pending entries once, keeping only those still hazardous.
// Entries dropped here are simply no longer referenced by the engine;
// Go's garbage collector reclaims the backing memory once nothing else
// holds a reference, which is this module's realization of "delete".
func (d *Domain[T]) scanShard(sh *retireShard[T]) {
	snapshot := d.snapshotProtected()

	sh.mu.Lock()
	n := sh.q.Length()
	for i := 0; i < n; i++ {
		p := sh.q.Remove().(*T)
		if _, hazardous := snapshot[p]; hazardous {
			sh.q.Add(p)
			continue
		}
		d.totalReclaimed.Add(1)
	}
	sh.parity = !sh.parity
	sh.threshold *= 2
	if sh.threshold > d.cfg.RetireCap {
		sh.threshold = d.cfg.RetireCap
	}
	sh.mu.Unlock()

	d.totalScans.Add(1)
}

// snapshotProtected loads every slot once (acquire ordering via
// atomic.Pointer.Load) and returns the set of addresses currently
// published. Free (nil) and Reserved (sentinel) cells are skipped, so
// the sentinel never appears in the returned set.
func (d *Domain[T]) snapshotProtected() map[*T]struct{} {
	out := make(map[*T]struct{}, len(d.slots))
	for i := range d.slots {
		p := d.slots[i].pointer.Load()
		if p == nil || p == d.sentinel {
			continue
		}
		out[p] = struct{}{}
	}
	return out
}

// DeleteAll force-clears every slot and drains every retire shard
// unconditionally. It is a test/benchmark-teardown hook only: safe
// exclusively when no other goroutine may be concurrently protecting
// or retiring against this domain.
func (d *Domain[T]) DeleteAll() {
	for i := range d.slots {
		d.slots[i].pointer.Store(nil)
	}
	for _, sh := range d.shards {
		sh.mu.Lock()
		n := sh.q.Length()
		for i := 0; i < n; i++ {
			sh.q.Remove()
			d.totalReclaimed.Add(1)
		}
		sh.mu.Unlock()
	}
	d.totalScans.Add(1)
}

// Stats returns a snapshot of domain bookkeeping.
func (d *Domain[T]) Stats() api.DomainStats {
	pending := 0
	for _, sh := range d.shards {
		pending += sh.length()
	}
	return api.DomainStats{
		LiveHandles:    int(d.liveHandles.Load()),
		RetiredPending: pending,
		TotalReclaimed: d.totalReclaimed.Load(),
		TotalScans:     d.totalScans.Load(),
	}
}
