// File: internal/container/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Michael-Scott queue: atomic head and tail over a singly linked list
// with a dummy head node. head always points at a node whose element
// has already been consumed; the live value, if any, lives in
// head.next. Dequeue needs two hazard handles: one to keep head alive
// while it is read, a second to keep head.next alive while its element
// is copied out, because another dequeuer can swing and retire head
// past us between the two loads.

package container

import (
	"sync/atomic"

	"github.com/momentics/hzconc/api"
	"github.com/momentics/hzconc/internal/hazard"
)

type queueNode[T any] struct {
	hasValue bool
	value    T
	next     atomic.Pointer[queueNode[T]]
}

// Queue is a lock-free Michael-Scott FIFO. Construct with NewQueue.
type Queue[T any] struct {
	head   atomic.Pointer[queueNode[T]]
	tail   atomic.Pointer[queueNode[T]]
	domain *hazard.Domain[queueNode[T]]
}

var _ api.Queue[int] = (*Queue[int])(nil)

// NewQueue constructs an empty queue, allocating the dummy node and its
// own hazard domain. cfg.MaxObjects should budget at least two cells per
// concurrently dequeuing goroutine.
func NewQueue[T any](cfg api.DomainConfig) *Queue[T] {
	q := &Queue[T]{domain: hazard.NewDomain[queueNode[T]](cfg)}
	dummy := &queueNode[T]{}
	q.head.Store(dummy)
	q.tail.Store(dummy)
	return q
}

// Enqueue appends v as the new tail.
func (q *Queue[T]) Enqueue(v T) {
	n := &queueNode[T]{hasValue: true, value: v}

	h := q.domain.CaptureCell()
	defer h.Release()

	for {
		tail := h.Protect(&q.tail)
		next := tail.next.Load()
		if next != nil {
			q.tail.CompareAndSwap(tail, next)
			continue
		}
		if tail.next.CompareAndSwap(nil, n) {
			q.tail.CompareAndSwap(tail, n)
			return
		}
	}
}

// Dequeue removes and returns the value at the head of the queue, or
// the zero value and false if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	hHead := q.domain.CaptureCell()
	defer hHead.Release()
	hNext := q.domain.CaptureCell()
	defer hNext.Release()

	for {
		head := hHead.Protect(&q.head)
		next := hNext.Protect(&head.next)
		if next == nil {
			var zero T
			return zero, false
		}
		if q.head.CompareAndSwap(head, next) {
			v := next.value
			hHead.ResetProtection(nil)
			hNext.ResetProtection(nil)
			q.domain.Retire(head)
			return v, true
		}
	}
}

// Stats returns a snapshot of the queue's hazard domain bookkeeping.
func (q *Queue[T]) Stats() api.DomainStats {
	return q.domain.Stats()
}

// Close reclaims every remaining node, including the current dummy, and
// releases the queue's hazard domain. Close is teardown-only: calling
// it while another goroutine is still enqueuing or dequeuing is
// undefined.
func (q *Queue[T]) Close() {
	for {
		head := q.head.Load()
		if head == nil {
			break
		}
		q.head.Store(head.next.Load())
		q.domain.Retire(head)
	}
	q.domain.DeleteAll()
}
