// File: queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package hzconc

import (
	"github.com/momentics/hzconc/api"
	"github.com/momentics/hzconc/internal/container"
)

// NewQueue constructs a lock-free Michael-Scott FIFO queue with default
// domain tunables (api.DefaultDomainConfig).
func NewQueue[T any]() api.Queue[T] {
	return container.NewQueue[T](api.DefaultDomainConfig())
}

// NewQueueWithConfig constructs a lock-free FIFO queue with caller-
// supplied domain tunables. A dequeue needs two live handles per
// goroutine, so cfg.MaxObjects should be at least twice the expected
// number of concurrent dequeuers.
func NewQueueWithConfig[T any](cfg api.DomainConfig) api.Queue[T] {
	return container.NewQueue[T](cfg)
}
