package models

// Notification channels.
const (
	ChannelEmail = "email"
)

// Notification is an outbound message queued for delivery.
type Notification struct {
	ID        string `json:"id"`        // ID is a unique identifier used as the Kafka message key.
	Channel   string `json:"channel"`   // Channel is the delivery channel, currently only "email".
	To        string `json:"to"`        // To is the recipient address.
	Subject   string `json:"subject"`   // Subject line.
	Body      string `json:"body"`      // Body text.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time the notification was created.
}

// Event is a domain event published for downstream consumers.
type Event struct {
	EventID   string         `json:"event_id"`  // EventID is a unique identifier for the event.
	Type      string         `json:"type"`      // Type, e.g. "sos.started" or "match.accepted".
	UserID    int64          `json:"user_id"`   // UserID is the user who caused the event.
	EntityID  int64          `json:"entity_id"` // EntityID is the alert or match id.
	Timestamp int64          `json:"timestamp"` // Timestamp is the Unix time of the event.
	Payload   map[string]any `json:"payload,omitempty"`
}
