// Package lifecycle holds shared timing rules for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook (DB ping, server shutdown, publisher flush).
const DefaultTimeout = 10 * time.Second
