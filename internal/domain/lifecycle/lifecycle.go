// Package lifecycle holds shared lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown operations such as DB pings and
// HTTP server drains.
const DefaultTimeout = 10 * time.Second
