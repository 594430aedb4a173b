// File: internal/hazard/retirelist.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Sharded retire lists. Go has no thread-local storage, so the
// per-thread retire list of the design is realized as a small, fixed
// set of shards selected by round robin; correctness never depends on
// which shard holds a given entry because scanShard always checks
// a retired address against the domain-wide slot snapshot, never a
// per-shard one. Each shard wraps a plain, non-concurrent eapache/queue
// ring buffer behind its own mutex. The mutex is required: round-robin
// selection lets concurrent Retire calls land on the same shard, and
// scanShard, DeleteAll and Stats visit shards from whichever goroutine
// calls them.

package hazard

import (
	"sync"

	"github.com/eapache/queue"
)

type retireShard[T any] struct {
	mu        sync.Mutex
	q         *queue.Queue
	threshold int
	parity    bool
}

func newRetireShard[T any](startThreshold int) *retireShard[T] {
	return &retireShard[T]{q: queue.New(), threshold: startThreshold}
}

// length reports the number of pending entries under the shard's lock.
func (s *retireShard[T]) length() int {
	s.mu.Lock()
	n := s.q.Length()
	s.mu.Unlock()
	return n
}
