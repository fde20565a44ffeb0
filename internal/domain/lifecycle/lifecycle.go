// Package lifecycle holds shared start and stop conventions for fx-managed components.
package lifecycle

import "time"

// DefaultTimeout bounds component startup and graceful shutdown.
const DefaultTimeout = 30 * time.Second
