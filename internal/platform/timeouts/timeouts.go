// Package timeouts defines shared timeout constants used across commands.
package timeouts

import "time"

// TelemetryShutdown limits how long a command waits for pending spans to
// flush before exiting.
const TelemetryShutdown = 5 * time.Second

// MinIdleInput is the shortest accepted idle timeout for an awaited move.
// Anything shorter would expire before a human could type.
const MinIdleInput = time.Second
