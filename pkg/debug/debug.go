// Package debug provides a toggleable trace logger for the search engines.
//
// It mirrors the original implementation's Utils/Debug.h: a variadic trace
// helper that is a no-op unless explicitly enabled, so the A* search loops
// can narrate their own state without paying for it (or cluttering output)
// in normal operation.
package debug

import (
	"log"
	"os"
)

var (
	enabled = os.Getenv("VIMFICIENCY_DEBUG") != ""
	logger  = log.New(os.Stderr, "vimficiency: ", 0)
)

// Enable turns tracing on or off for the remainder of the process.
func Enable(on bool) {
	enabled = on
}

// Enabled reports whether tracing is currently active.
func Enabled() bool {
	return enabled
}

// Trace logs args space-separated, mirroring the original's debug(...).
// It is a no-op unless tracing has been enabled.
func Trace(args ...any) {
	if !enabled {
		return
	}
	logger.Println(args...)
}
