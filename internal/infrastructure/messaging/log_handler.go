package messaging

import (
	"log/slog"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// NewLogHandler returns a handler that writes every event to logger at
// debug level. Subscribe it with SubscribeAll.
func NewLogHandler(logger *slog.Logger) shared.EventHandler {
	return func(event shared.Event) error {
		attrs := []any{
			"event_type", event.EventType(),
			"aggregate_id", event.AggregateID(),
			"occurred_at", event.OccurredAt(),
		}
		for k, v := range event.Payload() {
			attrs = append(attrs, k, v)
		}
		logger.Debug("domain event", attrs...)
		return nil
	}
}
