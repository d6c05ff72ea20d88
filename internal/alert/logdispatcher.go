package alert

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/couchcryptid/sos-alert-service/internal/domain"
)

// LogDispatcher is the development backend: delivery is a structured log
// line. Used when neither FCM credentials nor brokers are configured.
type LogDispatcher struct {
	logger *slog.Logger
}

func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

// Dispatch implements domain.Dispatcher.
func (d *LogDispatcher) Dispatch(_ context.Context, p domain.NotificationPayload) (string, error) {
	id := "log-" + uuid.NewString()
	d.logger.Info("notification (log backend)",
		"topic", p.Topic,
		"title", p.Title,
		"body", p.Body,
		"data", p.Data,
		"message_id", id,
	)
	return id, nil
}
