// File: internal/diag/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package diag is a thin wrapper over the standard library logger used
// only by command-line entry points. Library code under api, internal/
// hazard, and internal/container stays silent: a lock-free data
// structure logging on its hot path would defeat the point of it.
package diag
