// File: doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package hzconc is the public facade over a hazard-pointer-backed
// safe memory reclamation engine and the two lock-free containers built
// on it: a Treiber stack and a Michael-Scott queue. The engine and the
// containers live under internal/; this package only wires concrete
// domain configuration into constructors returning the api interfaces.
package hzconc
