// File: internal/hazard/handle_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package hazard

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestHandle_FactoryYieldsEmpty(t *testing.T) {
	d := NewDomain[testNode](smallConfig(4))
	h := d.CaptureCell()
	defer h.Release()

	if !h.Empty() {
		t.Fatalf("a freshly made handle holds the sentinel, not a real pointer: expected Empty")
	}
}

func TestHandle_ProtectThenResetRoundTrip(t *testing.T) {
	d := NewDomain[testNode](smallConfig(4))
	h := d.CaptureCell()
	defer h.Release()

	n := &testNode{value: 7}
	var src atomic.Pointer[testNode]
	src.Store(n)

	got := h.Protect(&src)
	if got != n {
		t.Fatalf("Protect returned %p, want %p", got, n)
	}
	if h.Empty() {
		t.Fatalf("handle should not be Empty while actively protecting")
	}

	h.ResetProtection(nil)
	if !h.Empty() {
		t.Fatalf("expected Empty after ResetProtection(nil)")
	}
}

func TestHandle_TryProtectDetectsConcurrentSwing(t *testing.T) {
	d := NewDomain[testNode](smallConfig(4))
	h := d.CaptureCell()
	defer h.Release()

	n1 := &testNode{value: 1}
	n2 := &testNode{value: 2}
	var src atomic.Pointer[testNode]
	src.Store(n1)

	// Simulate a writer swinging src between the publish and the reload
	// by swapping it out right before calling TryProtect.
	loaded := src.Load()
	src.Store(n2)
	reloaded, ok := h.TryProtect(loaded, &src)
	if ok {
		t.Fatalf("expected TryProtect to detect the mismatch and fail")
	}
	if reloaded != n2 {
		t.Fatalf("expected reloaded value to be the fresh pointer, got %p", reloaded)
	}
	if !h.Empty() {
		t.Fatalf("a failed TryProtect must clear the cell back to Reserved")
	}
}

func TestHandle_ReleaseIsIdempotent(t *testing.T) {
	d := NewDomain[testNode](smallConfig(2))
	h := d.CaptureCell()
	h.Release()
	h.Release()

	if got := d.Stats().LiveHandles; got != 0 {
		t.Errorf("expected 0 live handles, got %d", got)
	}
}

func TestGuard_ClosesRetiresExactlyOnce(t *testing.T) {
	d := NewDomain[testNode](smallConfig(4))
	n := &testNode{value: 5}
	g := NewGuard(d, n)
	g.Close()
	g.Close()

	for i := 0; i < 20; i++ {
		d.Retire(&testNode{value: i})
	}
	// 1 guarded pointer + 20 direct retires: every retired entry is either
	// reclaimed or still pending, so a double retire would total 22.
	stats := d.Stats()
	if got := stats.TotalReclaimed + uint64(stats.RetiredPending); got != 21 {
		t.Errorf("expected guarded pointer to be retired exactly once (21 entries total), got %d", got)
	}
}

func TestGuard_DisarmPreventsRetire(t *testing.T) {
	d := NewDomain[testNode](smallConfig(4))
	n := &testNode{value: 5}
	g := NewGuard(d, n)
	g.Disarm()
	g.Close()

	if stats := d.Stats(); stats.RetiredPending != 0 {
		t.Errorf("disarmed guard must not retire, got pending=%d", stats.RetiredPending)
	}
}

func TestHandle_ConcurrentProtectVsRetire(t *testing.T) {
	d := NewDomain[testNode](smallConfig(16))
	var src atomic.Pointer[testNode]
	src.Store(&testNode{value: 0})

	const readers = 8
	const writes = 200
	var wg sync.WaitGroup
	wg.Add(readers + 1)

	stop := make(chan struct{})
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			h := d.CaptureCell()
			defer h.Release()
			for {
				select {
				case <-stop:
					return
				default:
				}
				n := h.Protect(&src)
				if n.value < 0 {
					t.Errorf("read a corrupted node value %d", n.value)
				}
				h.ResetProtection(nil)
			}
		}()
	}

	go func() {
		defer wg.Done()
		for i := 1; i <= writes; i++ {
			old := src.Swap(&testNode{value: i})
			d.Retire(old)
		}
		close(stop)
	}()

	wg.Wait()
}
