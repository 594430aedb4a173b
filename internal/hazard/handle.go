// File: internal/hazard/handle.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Handle is the scoped owner of exactly one protection cell. A Handle
// is move-only in spirit: callers hold it by pointer, pass that pointer
// around instead of copying the Handle value, and release it from the
// same goroutine that made it — the same single-goroutine-only
// convention this codebase documents elsewhere rather than enforcing
// through the type system.

package hazard

import "sync/atomic"

// Handle owns one cell of a Domain's slot table.
type Handle[T any] struct {
	domain *Domain[T]
	cell   *cell[T]
}

// Make acquires a handle on d. Slot exhaustion is a contract violation
// and panics; see Domain.CaptureCell.
func Make[T any](d *Domain[T]) *Handle[T] {
	return d.CaptureCell()
}

// Protect repeatedly loads src, publishes the snapshot into the cell,
// and reloads src until the reload matches the published snapshot. The
// loop terminates once src stops changing out from under the handle;
// each iteration still makes system progress (another writer has swung
// src), so the loop is lock-free even though it is not wait-free.
func (h *Handle[T]) Protect(src *atomic.Pointer[T]) *T {
	ptr := src.Load()
	for {
		next, ok := h.TryProtect(ptr, src)
		if ok {
			return next
		}
		ptr = next
	}
}

// TryProtect is the single-iteration validating load underlying Protect.
// It publishes ptr into the cell, reloads src, and reports whether the
// reload still matches ptr. On mismatch the cell is cleared (returned to
// the Reserved, not-publishing state) and the fresh reload is returned
// so the caller can retry without an extra load of src.
func (h *Handle[T]) TryProtect(ptr *T, src *atomic.Pointer[T]) (*T, bool) {
	h.ResetProtection(ptr)
	reloaded := src.Load()
	if reloaded == ptr {
		return reloaded, true
	}
	h.ResetProtection(nil)
	return reloaded, false
}

// ResetProtection publishes ptr into the cell. Passing nil does not
// return the cell to Free — it returns the cell to Reserved (the
// domain's sentinel), because a live handle must stay distinguishable
// from a genuinely free cell for as long as it exists. Only Release
// stores true nil and hands the cell back to the table.
func (h *Handle[T]) ResetProtection(ptr *T) {
	if ptr == nil {
		h.cell.pointer.Store(h.domain.sentinel)
		return
	}
	h.cell.pointer.Store(ptr)
}

// Empty reports whether the cell is not currently publishing a real
// protected address — true for both Free and Reserved, false only
// while the handle is actively protecting a pointer.
func (h *Handle[T]) Empty() bool {
	p := h.cell.pointer.Load()
	return p == nil || p == h.domain.sentinel
}

// Release returns the cell to Free. Using the handle after Release is
// a programmer error. Release is idempotent.
func (h *Handle[T]) Release() {
	if h.cell == nil {
		return
	}
	h.cell.pointer.Store(nil)
	h.domain.liveHandles.Add(-1)
	h.cell = nil
}

// Guard wraps a pointer slated for retirement so that pop/dequeue code
// can read linearly: acquire the guard right after unlinking a node,
// defer its Close, and every return path retires exactly once.
type Guard[T any] struct {
	domain *Domain[T]
	ptr    *T
}

// NewGuard wraps ptr for deferred retirement against d.
func NewGuard[T any](d *Domain[T], ptr *T) *Guard[T] {
	return &Guard[T]{domain: d, ptr: ptr}
}

// Disarm cancels the pending retire, e.g. when ownership of the pointer
// transfers elsewhere instead of being deleted.
func (g *Guard[T]) Disarm() {
	g.ptr = nil
}

// Close retires the wrapped pointer if still armed.
func (g *Guard[T]) Close() {
	if g.ptr == nil {
		return
	}
	g.domain.Retire(g.ptr)
	g.ptr = nil
}
