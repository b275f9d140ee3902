// Package debug provides opt-in trace logging for the parser pipeline and
// batch tooling. Every function takes an enabled flag so call sites stay
// free of conditionals.
package debug

import (
	"fmt"
	"log"
	"time"
)

// Header marks the start of a debug section.
func Header(enabled bool) {
	if enabled {
		log.Printf("=== DEBUG START ===")
	}
}

// Footer marks the end of a debug section.
func Footer(enabled bool) {
	if enabled {
		log.Printf("=== DEBUG END ===")
	}
}

// Logf logs a formatted message with a millisecond timestamp.
func Logf(enabled bool, format string, args ...interface{}) {
	if enabled {
		log.Printf("[%s] %s", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
	}
}

// Timing logs the duration of an operation; call the returned func when the
// operation finishes.
func Timing(enabled bool, operation string) func() {
	if !enabled {
		return func() {}
	}
	start := time.Now()
	Logf(enabled, "starting: %s", operation)
	return func() {
		Logf(enabled, "completed: %s (took %v)", operation, time.Since(start))
	}
}
