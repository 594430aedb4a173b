// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared sentinel errors for the hazard-pointer engine.

package api

import "errors"

// ErrSlotsExhausted is the value CaptureCell panics with when a domain's
// protection slot table has no free cell left. Exhaustion is a programmer
// error (the caller guarantees live handles never exceed MaxObjects);
// whitebox tests observe it without a panic through the unexported
// tryCaptureCell, which reports it as a bool.
var ErrSlotsExhausted = errors.New("hazard: protection slot table exhausted")
