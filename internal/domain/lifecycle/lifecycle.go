// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown operations such as the
// database ping and graceful HTTP shutdown.
const DefaultTimeout = 10 * time.Second
