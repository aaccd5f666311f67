// Package lifecycle holds shared timeouts for fx start/stop hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds a single OnStart/OnStop hook.
	DefaultTimeout = 10 * time.Second

	// ShutdownTimeout bounds graceful HTTP shutdown.
	ShutdownTimeout = 15 * time.Second
)
