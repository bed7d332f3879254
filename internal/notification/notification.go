package notification

import (
	"context"
	"log/slog"
)

const (
	// KindTaskCompleted is sent when a task moves to the completed status.
	KindTaskCompleted = "task_completed"
)

// Message describes a notification payload addressed to a user.
type Message struct {
	Kind   string
	UserID string
	TaskID string
	Body   string
}

// Notifier delivers notifications to downstream systems.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// LoggerNotifier writes notifications to the structured logger. It stands in
// for a real delivery channel.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the message to the structured logger.
func (n *LoggerNotifier) Send(ctx context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.InfoContext(ctx, "notification",
		slog.String("kind", message.Kind),
		slog.String("user_id", message.UserID),
		slog.String("task_id", message.TaskID),
		slog.String("body", message.Body),
	)
	return nil
}
