// File: api/hazard.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Tunables and observability types for the hazard-pointer domain.
// Domain and Handle themselves are concrete generic types under
// internal/hazard: the spec calls them out as "implicit" external
// interfaces reached only through the Stack/Queue facades and the
// handle factory, so there is no separate interface to satisfy here.

package api

// DomainConfig carries the compile-time-style tunables of a hazard domain.
// There is no file or environment configuration surface; every field is
// set once at construction time by the caller.
type DomainConfig struct {
	// MaxObjects bounds the number of protection cells in the slot table.
	// Typical values run 32-1024; the default is 128.
	MaxObjects int
	// RetireStartThreshold is the initial per-list amortisation threshold.
	// It doubles after every scan, capped at RetireCap.
	RetireStartThreshold int
	// RetireCap bounds how large the amortisation threshold may grow.
	RetireCap int
}

// DefaultDomainConfig returns the spec's default tunables.
func DefaultDomainConfig() DomainConfig {
	const maxObjects = 128
	return DomainConfig{
		MaxObjects:           maxObjects,
		RetireStartThreshold: 2 * maxObjects,
		RetireCap:            32 * maxObjects,
	}
}

// DomainStats is a point-in-time snapshot of a domain's bookkeeping,
// useful for tests and benchmark reporting.
type DomainStats struct {
	LiveHandles    int
	RetiredPending int
	TotalReclaimed uint64
	TotalScans     uint64
}
