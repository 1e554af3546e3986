// Package lifecycle holds timing constants for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start-up pings and graceful shutdown of servers and clients.
const DefaultTimeout = 10 * time.Second
