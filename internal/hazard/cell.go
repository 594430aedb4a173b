// File: internal/hazard/cell.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The protection slot table: a fixed-size array of cache-line-isolated
// cells, each holding one atomic pointer-to-T.

package hazard

import "sync/atomic"

// cacheLinePad separates independent cells so they never share a cache
// line, the same flat-byte-array idiom used for hot/cold field separation
// elsewhere in this codebase's lineage.
const cacheLinePad = 64

// cell is one entry of a slot table. A cell's pointer is either nil
// (Free), a domain's sentinel (Reserved: captured but not publishing),
// or a real *T (Protecting: the pointee must not be reclaimed).
type cell[T any] struct {
	pointer atomic.Pointer[T]
	_       [cacheLinePad]byte
}
