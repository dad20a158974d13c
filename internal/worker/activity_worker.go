package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/shopfront-labs/storefront/internal/events"
	"github.com/shopfront-labs/storefront/internal/observability"
)

// StartActivityLog subscribes an audit logger to every storefront event.
func StartActivityLog(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) {
	if dispatcher == nil || logger == nil {
		return
	}
	handler := func(_ context.Context, e events.Event) error {
		metrics.RecordActivity(string(e.Type))
		logger.Info("activity",
			zap.String("event_id", e.ID),
			zap.String("type", string(e.Type)),
			zap.Int64("user_id", e.Actor.UserID),
			zap.String("username", e.Actor.Username),
			zap.String("level", e.Actor.Level),
			zap.Int64("subject_id", e.SubjectID),
			zap.Any("payload", e.Payload),
		)
		return nil
	}
	for _, t := range events.AllTypes {
		dispatcher.Subscribe(t, handler)
	}
}
