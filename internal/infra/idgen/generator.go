// Package idgen derives record identifiers from the millisecond clock.
package idgen

import (
	"strconv"
	"sync"
	"time"

	"agrox/internal/domain/service"
)

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Generator returns decimal millisecond timestamps, bumped by one whenever the
// clock has not advanced since the previous id.
type Generator struct {
	mu    sync.Mutex
	clock service.Clock
	last  int64
}

// New creates a Generator on clock.
func New(clock service.Clock) *Generator {
	return &Generator{clock: clock}
}

// NewSystem creates a Generator on the wall clock.
func NewSystem() *Generator {
	return New(SystemClock{})
}

func (g *Generator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.clock.Now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms

	return strconv.FormatInt(ms, 10)
}
