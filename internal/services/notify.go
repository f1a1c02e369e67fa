package services

//go:generate mockgen -source=notify.go -destination=notify_mock.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/safety-hub/internal/logger"
	"github.com/sbilibin2017/safety-hub/internal/models"
)

// Domain event types.
const (
	EventSOSStarted     = "sos.started"
	EventSOSStopped     = "sos.stopped"
	EventMatchRequested = "match.requested"
	EventMatchAccepted  = "match.accepted"
	EventMatchRejected  = "match.rejected"
)

// Notifier delivers a user-facing notification, synchronously or through a queue.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification) error
}

// EventPublisher publishes domain events for downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, evt models.Event) error
}

// sendEmail hands an email to the notifier. Delivery failures are logged and never retried here.
func sendEmail(ctx context.Context, notifier Notifier, to, subject, body string) {
	if notifier == nil {
		logger.Log.Warnw("notifier not configured, skipping email", "to", to, "subject", subject)
		return
	}

	n := models.Notification{
		ID:        uuid.NewString(),
		Channel:   models.ChannelEmail,
		To:        to,
		Subject:   subject,
		Body:      body,
		Timestamp: time.Now().Unix(),
	}
	if err := notifier.Notify(ctx, n); err != nil {
		logger.Log.Errorw("failed to send email", "notification_id", n.ID, "to", to, "error", err)
		return
	}
	logger.Log.Infow("email queued", "notification_id", n.ID, "to", to)
}

// publishEvent publishes a domain event on a best-effort basis.
func publishEvent(ctx context.Context, pub EventPublisher, eventType string, userID, entityID int64, payload map[string]any) {
	if pub == nil {
		logger.Log.Warnw("event publisher not configured, skipping publishing", "type", eventType, "entity_id", entityID)
		return
	}

	evt := models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		EntityID:  entityID,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
	if err := pub.Publish(ctx, evt); err != nil {
		logger.Log.Errorw("failed to publish event", "event_id", evt.EventID, "type", eventType, "error", err)
		return
	}
	logger.Log.Infow("event published", "event_id", evt.EventID, "type", eventType)
}
