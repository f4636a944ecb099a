package common

import (
	"fmt"
	"os"
	"runtime/debug"
)

// RecoverPanic recovers from a panic, logging it to the global logger and to
// stderr. It returns true if a panic was recovered.
//
// This function should be used in deferred calls to catch panics: the URL
// handler is usually launched by the OS with no terminal attached, so an
// uncaught panic would otherwise vanish silently.
func RecoverPanic() bool {
	if r := recover(); r != nil {
		stackTrace := debug.Stack()

		logger := GetLogger()
		logger.Error("PANIC RECOVERED: %v", r)
		logger.Error("Stack trace:\n%s", stackTrace)

		// Always log to stderr for immediate visibility
		fmt.Fprintf(os.Stderr, "PANIC RECOVERED: %v\n", r)
		if logger.FilePath() != "" {
			fmt.Fprintf(os.Stderr, "Stack trace has been written to the log file: %s\n", logger.FilePath())
		} else {
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", stackTrace)
		}

		return true
	}

	return false
}
