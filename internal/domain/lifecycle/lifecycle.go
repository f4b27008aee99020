// Package lifecycle holds shared startup and shutdown settings.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of one component.
const DefaultTimeout = 10 * time.Second
