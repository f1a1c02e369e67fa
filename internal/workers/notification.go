package workers

//go:generate mockgen -source=notification.go -destination=notification_mock.go -package=workers

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sbilibin2017/safety-hub/internal/logger"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/segmentio/kafka-go"
)

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = time.Second
	maxDelay           = 30 * time.Second
	fetchErrorDelay    = time.Second
)

// KafkaReader defines a Kafka consumer abstraction.
type KafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Mailer sends a single email.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NewKafkaReader creates a consumer group reader for a topic.
func NewKafkaReader(brokers []string, groupID, topic string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}

// NotificationWorker delivers queued notifications with bounded retry.
type NotificationWorker struct {
	reader      KafkaReader
	mailer      Mailer
	maxAttempts int
	baseDelay   time.Duration
}

// Opt configures a NotificationWorker.
type Opt func(*NotificationWorker)

// WithMaxAttempts overrides the number of delivery attempts per message.
func WithMaxAttempts(n int) Opt {
	return func(w *NotificationWorker) {
		if n > 0 {
			w.maxAttempts = n
		}
	}
}

// WithBaseDelay overrides the delay before the first retry.
func WithBaseDelay(d time.Duration) Opt {
	return func(w *NotificationWorker) {
		if d > 0 {
			w.baseDelay = d
		}
	}
}

// NewNotificationWorker creates a new NotificationWorker.
func NewNotificationWorker(reader KafkaReader, mailer Mailer, opts ...Opt) *NotificationWorker {
	w := &NotificationWorker{
		reader:      reader,
		mailer:      mailer,
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultBaseDelay,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run consumes messages until ctx is canceled. A message is committed once it was
// delivered, found undecodable, or failed on every attempt.
func (w *NotificationWorker) Run(ctx context.Context) error {
	logger.Log.Infow("notification worker started", "max_attempts", w.maxAttempts)
	defer logger.Log.Infow("notification worker stopped")

	for {
		msg, err := w.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Log.Errorw("failed to fetch notification", "error", err)
			if !sleep(ctx, fetchErrorDelay) {
				return nil
			}
			continue
		}

		if !w.handle(ctx, msg) {
			return nil
		}

		if err := w.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Log.Errorw("failed to commit notification", "offset", msg.Offset, "error", err)
		}
	}
}

// handle reports false when ctx was canceled before the message was settled.
func (w *NotificationWorker) handle(ctx context.Context, msg kafka.Message) bool {
	var n models.Notification
	if err := json.Unmarshal(msg.Value, &n); err != nil {
		logger.Log.Errorw("dropping undecodable notification", "offset", msg.Offset, "error", err)
		return true
	}

	err := w.deliver(ctx, n)
	switch {
	case err == nil:
		logger.Log.Infow("notification delivered", "notification_id", n.ID, "to", n.To)
		return true
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	default:
		logger.Log.Errorw("notification failed after retries",
			"notification_id", n.ID, "to", n.To, "attempts", w.maxAttempts, "error", err)
		return true
	}
}

func (w *NotificationWorker) deliver(ctx context.Context, n models.Notification) error {
	var err error
	for attempt := 1; attempt <= w.maxAttempts; attempt++ {
		if err = w.mailer.Send(ctx, n.To, n.Subject, n.Body); err == nil {
			return nil
		}
		logger.Log.Warnw("notification attempt failed", "notification_id", n.ID, "attempt", attempt, "error", err)

		if attempt == w.maxAttempts {
			break
		}
		if !sleep(ctx, Backoff(w.baseDelay, attempt)) {
			return ctx.Err()
		}
	}
	return err
}

// Backoff returns base * 2^(attempt-1), capped at 30s.
func Backoff(base time.Duration, attempt int) time.Duration {
	if attempt <= 1 {
		return base
	}
	d := base << uint(attempt-1)
	if d > maxDelay || d <= 0 {
		return maxDelay
	}
	return d
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
