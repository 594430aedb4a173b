// File: internal/container/stack.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Treiber stack: a singly linked LIFO built from one atomic top pointer
// and CAS-retry push/pop. Pop must dereference the top node (to read its
// next link) before it knows whether the CAS will succeed, so it protects
// that node with a hazard handle before touching it and retires the
// popped node instead of freeing it outright.

package container

import (
	"sync/atomic"

	"github.com/momentics/hzconc/api"
	"github.com/momentics/hzconc/internal/hazard"
)

type stackNode[T any] struct {
	value T
	next  atomic.Pointer[stackNode[T]]
}

// Stack is a lock-free LIFO. The zero value is not usable; construct
// with NewStack.
type Stack[T any] struct {
	top    atomic.Pointer[stackNode[T]]
	domain *hazard.Domain[stackNode[T]]
}

var _ api.Stack[int] = (*Stack[int])(nil)

// NewStack constructs an empty stack backed by its own hazard domain.
func NewStack[T any](cfg api.DomainConfig) *Stack[T] {
	return &Stack[T]{domain: hazard.NewDomain[stackNode[T]](cfg)}
}

// Push links v onto the top of the stack. Push never races with
// reclamation: a node only becomes visible to other goroutines once
// it is fully initialized and CAS-linked, so it needs no hazard
// protection of its own.
func (s *Stack[T]) Push(v T) {
	n := &stackNode[T]{value: v}
	for {
		top := s.top.Load()
		n.next.Store(top)
		if s.top.CompareAndSwap(top, n) {
			return
		}
	}
}

// Pop removes and returns the top value, or the zero value and false if
// the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	h := s.domain.CaptureCell()
	defer h.Release()

	for {
		top := h.Protect(&s.top)
		if top == nil {
			var zero T
			return zero, false
		}
		next := top.next.Load()
		if s.top.CompareAndSwap(top, next) {
			v := top.value
			h.ResetProtection(nil)
			s.domain.Retire(top)
			return v, true
		}
	}
}

// Stats returns a snapshot of the stack's hazard domain bookkeeping.
func (s *Stack[T]) Stats() api.DomainStats {
	return s.domain.Stats()
}

// Close reclaims every remaining node and releases the stack's hazard
// domain. Close is a teardown-only operation: calling it while another
// goroutine is still pushing or popping is undefined.
func (s *Stack[T]) Close() {
	for {
		top := s.top.Load()
		if top == nil {
			break
		}
		if s.top.CompareAndSwap(top, top.next.Load()) {
			s.domain.Retire(top)
		}
	}
	s.domain.DeleteAll()
}
