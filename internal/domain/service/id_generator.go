// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "time"

// IDGenerator hands out record identifiers derived from the millisecond clock.
// An implementation never returns the same id twice within one process.
type IDGenerator interface {
	NewID() string
}

// Clock abstracts the current time so records get deterministic timestamps in tests.
type Clock interface {
	Now() time.Time
}
