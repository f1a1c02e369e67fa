package facades

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKafkaWriter struct {
	msgs []kafka.Message
	err  error
}

func (f *fakeKafkaWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeKafkaWriter) Close() error { return nil }

type fakeMailer struct {
	to, subject, body string
	err               error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	f.to, f.subject, f.body = to, subject, body
	return f.err
}

func TestKafkaNotifier_Notify(t *testing.T) {
	w := &fakeKafkaWriter{}
	n := NewKafkaNotifier(w)
	msg := models.Notification{ID: "n-1", Channel: models.ChannelEmail, To: "a@example.com", Subject: "s", Body: "b"}

	require.NoError(t, n.Notify(context.Background(), msg))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, []byte("n-1"), w.msgs[0].Key)

	var decoded models.Notification
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &decoded))
	assert.Equal(t, msg, decoded)
}

func TestKafkaNotifier_WriteError(t *testing.T) {
	n := NewKafkaNotifier(&fakeKafkaWriter{err: errors.New("broker down")})
	assert.Error(t, n.Notify(context.Background(), models.Notification{ID: "n-1"}))
}

func TestKafkaEventPublisher_Publish(t *testing.T) {
	w := &fakeKafkaWriter{}
	p := NewKafkaEventPublisher(w)
	evt := models.Event{EventID: "e-1", Type: "sos.started", UserID: 3, EntityID: 42}

	require.NoError(t, p.Publish(context.Background(), evt))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, []byte("42"), w.msgs[0].Key)
	assert.Equal(t, []kafka.Header{{Key: "type", Value: []byte("sos.started")}}, w.msgs[0].Headers)
}

func TestDirectNotifier_Notify(t *testing.T) {
	m := &fakeMailer{}
	n := NewDirectNotifier(m)

	require.NoError(t, n.Notify(context.Background(), models.Notification{To: "a@example.com", Subject: "s", Body: "b"}))
	assert.Equal(t, "a@example.com", m.to)

	m.err = errors.New("smtp down")
	assert.Error(t, n.Notify(context.Background(), models.Notification{To: "a@example.com"}))
}

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter([]string{"localhost:9092"}, TopicEvents)
	assert.Equal(t, TopicEvents, w.Topic)
	assert.NoError(t, w.Close())
}
