// Package lifecycle holds shared timing constants for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start/stop hooks such as pinging the database or draining the HTTP server.
const DefaultTimeout = 10 * time.Second

// SideEffectTimeout bounds a single best-effort side effect (event publish, notification send)
// that runs after a state transition has been committed.
const SideEffectTimeout = 5 * time.Second
