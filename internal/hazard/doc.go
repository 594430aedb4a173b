// File: internal/hazard/doc.go
// Package hazard implements a hazard-pointer safe memory reclamation
// engine: a per-type protection slot table, sharded retire lists with
// an amortised scan-and-delete procedure, and the scoped handle that
// client containers use to protect a node across a load-then-dereference
// window.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package hazard
