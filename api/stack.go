// File: api/stack.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free LIFO stack contract.

package api

// Stack is a Treiber-style lock-free LIFO. Not copyable, not movable:
// callers hold a *Stack[T]. Close requires exclusive access (no
// concurrent Push/Pop in flight) and is not itself hazard-protected.
type Stack[T any] interface {
	// Push places v on top of the stack.
	Push(v T)
	// Pop removes and returns the top value, or ok=false if empty.
	Pop() (v T, ok bool)
	// Close releases every node still linked into the stack.
	Close()
}
