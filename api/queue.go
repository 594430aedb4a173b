// File: api/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free Michael-Scott FIFO queue contract.

package api

// Queue is a Michael-Scott lock-free FIFO. Not copyable, not movable.
// Close requires exclusive access and is not itself hazard-protected.
type Queue[T any] interface {
	// Enqueue places v at the tail of the queue.
	Enqueue(v T)
	// Dequeue removes and returns the head value, or ok=false if empty.
	Dequeue() (v T, ok bool)
	// Close releases every node still linked into the queue.
	Close()
}
