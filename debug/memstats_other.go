//go:build !windows

package debug

import (
	"log/slog"
	"time"
)

// StartMemLogger is a no-op outside Windows; the runtime logger still reports
// Go heap figures.
func StartMemLogger(_ time.Duration, logger *slog.Logger) (stop func()) {
	if logger != nil {
		logger.Debug("memlog: working set not available on this platform")
	}
	return func() {}
}
