// File: internal/hazard/domain_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package hazard

import (
	"sync"
	"testing"

	"github.com/momentics/hzconc/api"
)

type testNode struct {
	value int
}

func smallConfig(maxObjects int) api.DomainConfig {
	return api.DomainConfig{
		MaxObjects:           maxObjects,
		RetireStartThreshold: 4,
		RetireCap:            64,
	}
}

func TestCaptureCell_BasicAcquire(t *testing.T) {
	d := NewDomain[testNode](smallConfig(4))
	h, ok := d.tryCaptureCell()
	if !ok {
		t.Fatalf("expected capture to succeed")
	}
	if h.Empty() != true {
		t.Errorf("freshly captured handle should report Empty (Reserved, not Protecting)")
	}
	h.Release()
}

func TestCaptureCell_ExhaustionReportedByTryCapture(t *testing.T) {
	d := NewDomain[testNode](smallConfig(2))
	var handles []*Handle[testNode]
	for i := 0; i < 2; i++ {
		h, ok := d.tryCaptureCell()
		if !ok {
			t.Fatalf("capture %d: expected success", i)
		}
		handles = append(handles, h)
	}
	if _, ok := d.tryCaptureCell(); ok {
		t.Fatalf("expected slot exhaustion on 3rd capture of a 2-slot table")
	}
	for _, h := range handles {
		h.Release()
	}
}

func TestCaptureCell_PanicsOnExhaustion(t *testing.T) {
	d := NewDomain[testNode](smallConfig(1))
	h := d.CaptureCell()
	defer h.Release()

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected CaptureCell to panic on an exhausted table")
		}
	}()
	_ = d.CaptureCell()
}

// A handle that has cleared its own protection (Empty() == true) must
// still occupy its cell: clearing returns a live handle to Reserved,
// never to Free, so concurrent capture must not steal it.
func TestResetProtectionNeverReturnsLiveCellToFree(t *testing.T) {
	d := NewDomain[testNode](smallConfig(2))
	h1 := d.CaptureCell()
	h2 := d.CaptureCell()

	h1.ResetProtection(nil)
	h2.ResetProtection(nil)

	if !h1.Empty() || !h2.Empty() {
		t.Fatalf("expected both handles to be Empty after ResetProtection(nil)")
	}
	if _, ok := d.tryCaptureCell(); ok {
		t.Fatalf("Empty handles must still hold their cells; table should remain exhausted")
	}

	h1.Release()
	h2.Release()
	if _, ok := d.tryCaptureCell(); !ok {
		t.Fatalf("releasing a handle must free its cell for capture")
	}
}

func TestRetire_NilIsNoOp(t *testing.T) {
	d := NewDomain[testNode](smallConfig(4))
	d.Retire(nil)
	if stats := d.Stats(); stats.RetiredPending != 0 {
		t.Errorf("expected no pending retirement, got %d", stats.RetiredPending)
	}
}

func TestRetire_ProtectedNodeSurvivesScan(t *testing.T) {
	d := NewDomain[testNode](smallConfig(4))
	n := &testNode{value: 99}

	h := d.CaptureCell()
	h.ResetProtection(n)

	d.Retire(n)
	for i := 0; i < 300; i++ {
		d.Retire(&testNode{value: i})
	}

	if got := n.value; got != 99 {
		t.Fatalf("protected node was mutated/corrupted: got %d", got)
	}
	stats := d.Stats()
	if stats.RetiredPending == 0 {
		t.Errorf("expected the protected node to still be pending reclamation")
	}

	h.ResetProtection(nil)
	h.Release()
}

func TestRetire_UnprotectedNodesEventuallyReclaimed(t *testing.T) {
	d := NewDomain[testNode](smallConfig(4))
	for i := 0; i < 50; i++ {
		d.Retire(&testNode{value: i})
	}
	stats := d.Stats()
	if stats.TotalReclaimed == 0 {
		t.Errorf("expected at least one reclamation after retiring well past the threshold")
	}
}

func TestRetire_ConcurrentRetireDoesNotCrash(t *testing.T) {
	d := NewDomain[testNode](smallConfig(8))
	const numGoroutines = 8
	const perGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for g := 0; g < numGoroutines; g++ {
		go func(g int) {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				d.Retire(&testNode{value: g*perGoroutine + j})
			}
		}(g)
	}
	wg.Wait()
}

func TestDeleteAll_DrainsEverything(t *testing.T) {
	d := NewDomain[testNode](smallConfig(4))
	h := d.CaptureCell()
	h.ResetProtection(&testNode{value: 1})
	for i := 0; i < 10; i++ {
		d.Retire(&testNode{value: i})
	}

	h.ResetProtection(nil)
	h.Release()
	d.DeleteAll()

	stats := d.Stats()
	if stats.RetiredPending != 0 {
		t.Errorf("expected DeleteAll to drain all pending entries, got %d", stats.RetiredPending)
	}
}

func TestStats_LiveHandleCount(t *testing.T) {
	d := NewDomain[testNode](smallConfig(4))
	h1 := d.CaptureCell()
	h2 := d.CaptureCell()
	if got := d.Stats().LiveHandles; got != 2 {
		t.Errorf("expected 2 live handles, got %d", got)
	}
	h1.Release()
	if got := d.Stats().LiveHandles; got != 1 {
		t.Errorf("expected 1 live handle after release, got %d", got)
	}
	h2.Release()
}
