// File: internal/container/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package container implements the two lock-free data structures built
// on top of the internal/hazard slot table and retire lists: a Treiber
// LIFO stack and a Michael-Scott FIFO queue. Both structures own a
// private, independent hazard domain whose slot table is sized by the
// caller-supplied api.DomainConfig. Each Pop and Enqueue holds one
// handle while it runs, and each Dequeue holds two.
package container
