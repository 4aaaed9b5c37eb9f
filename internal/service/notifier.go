package service

import (
	"context"
	"log/slog"
)

// Notifier receives user-facing outcome messages for store mutations.
type Notifier interface {
	Success(ctx context.Context, message string)
	Failure(ctx context.Context, message string, err error)
}

// LogNotifier writes notifications to a slog logger.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier logs through logger, or through slog.Default() when nil.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Success(ctx context.Context, message string) {
	n.logger.InfoContext(ctx, message, "notification", "success")
}

func (n *LogNotifier) Failure(ctx context.Context, message string, err error) {
	n.logger.WarnContext(ctx, message, "notification", "error", "error", err)
}
