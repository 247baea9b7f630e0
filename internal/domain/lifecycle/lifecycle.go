// Package lifecycle holds shared startup and shutdown bounds.
package lifecycle

import "time"

// DefaultTimeout bounds fx start/stop hooks such as backend pings and server shutdown.
const DefaultTimeout = 10 * time.Second
