package telegram

import (
	"fmt"
	"log/slog"
)

// telegoLogger routes telego's internal logging into slog.
type telegoLogger struct {
	log *slog.Logger
}

func (l telegoLogger) Debugf(format string, args ...any) {
	l.log.Debug("telego", "message", formatMessage(format, args...))
}

func (l telegoLogger) Errorf(format string, args ...any) {
	l.log.Warn("telego", "message", formatMessage(format, args...))
}

func formatMessage(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
