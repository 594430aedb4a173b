// File: stack.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package hzconc

import (
	"github.com/momentics/hzconc/api"
	"github.com/momentics/hzconc/internal/container"
)

// NewStack constructs a lock-free LIFO stack with default domain
// tunables (api.DefaultDomainConfig).
func NewStack[T any]() api.Stack[T] {
	return container.NewStack[T](api.DefaultDomainConfig())
}

// NewStackWithConfig constructs a lock-free LIFO stack with caller-
// supplied domain tunables, for workloads whose concurrency or node
// churn exceeds the defaults.
func NewStackWithConfig[T any](cfg api.DomainConfig) api.Stack[T] {
	return container.NewStack[T](cfg)
}
