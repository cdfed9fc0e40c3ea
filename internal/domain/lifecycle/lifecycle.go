// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful-shutdown and startup probes.
const DefaultTimeout = 10 * time.Second
