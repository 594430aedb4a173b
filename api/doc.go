// Package api defines the public contracts of the hazard-pointer safe
// memory reclamation engine and the lock-free containers built on it.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Implementations live under internal/hazard and internal/container;
// this package only declares the shapes callers and tests depend on.
package api
