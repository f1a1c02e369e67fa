package facades

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/sbilibin2017/safety-hub/internal/logger"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/segmentio/kafka-go"
)

// Kafka topics.
const (
	TopicNotifications = "notifications"
	TopicEvents        = "safety-events"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// NewKafkaWriter creates a writer for one topic.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// KafkaNotifier queues notifications for the notification worker.
type KafkaNotifier struct {
	writer KafkaWriter
}

// NewKafkaNotifier creates a new KafkaNotifier.
func NewKafkaNotifier(writer KafkaWriter) *KafkaNotifier {
	return &KafkaNotifier{writer: writer}
}

// Notify publishes the notification keyed by its id.
func (n *KafkaNotifier) Notify(ctx context.Context, msg models.Notification) error {
	value, err := json.Marshal(msg)
	if err != nil {
		logger.Log.Errorw("failed to marshal notification", "notification_id", msg.ID, "error", err)
		return err
	}

	if err := n.writer.WriteMessages(ctx, kafka.Message{Key: []byte(msg.ID), Value: value}); err != nil {
		logger.Log.Errorw("failed to publish notification to Kafka", "notification_id", msg.ID, "error", err)
		return err
	}
	return nil
}

// KafkaEventPublisher publishes domain events keyed by the entity id,
// so events of one alert or match stay ordered within a partition.
type KafkaEventPublisher struct {
	writer KafkaWriter
}

// NewKafkaEventPublisher creates a new KafkaEventPublisher.
func NewKafkaEventPublisher(writer KafkaWriter) *KafkaEventPublisher {
	return &KafkaEventPublisher{writer: writer}
}

// Publish writes the event to Kafka.
func (p *KafkaEventPublisher) Publish(ctx context.Context, evt models.Event) error {
	value, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("failed to marshal event", "event_id", evt.EventID, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:     []byte(strconv.FormatInt(evt.EntityID, 10)),
		Value:   value,
		Headers: []kafka.Header{{Key: "type", Value: []byte(evt.Type)}},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event to Kafka", "event_id", evt.EventID, "type", evt.Type, "error", err)
		return err
	}
	return nil
}

// Mailer sends a single email.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// DirectNotifier delivers notifications synchronously. Used when no brokers are configured.
type DirectNotifier struct {
	mailer Mailer
}

// NewDirectNotifier creates a new DirectNotifier.
func NewDirectNotifier(mailer Mailer) *DirectNotifier {
	return &DirectNotifier{mailer: mailer}
}

// Notify sends the notification through the mailer.
func (n *DirectNotifier) Notify(ctx context.Context, msg models.Notification) error {
	return n.mailer.Send(ctx, msg.To, msg.Subject, msg.Body)
}
