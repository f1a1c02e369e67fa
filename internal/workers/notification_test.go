package workers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type chanReader struct {
	msgs      chan kafka.Message
	committed chan kafka.Message
}

func newChanReader() *chanReader {
	return &chanReader{msgs: make(chan kafka.Message, 4), committed: make(chan kafka.Message, 4)}
}

func (r *chanReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case m := <-r.msgs:
		return m, nil
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	}
}

func (r *chanReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		r.committed <- m
	}
	return nil
}

func (r *chanReader) Close() error { return nil }

func notificationMessage(t *testing.T, offset int64) kafka.Message {
	value, err := json.Marshal(models.Notification{ID: "n-1", To: "a@example.com", Subject: "OTP", Body: "123456"})
	require.NoError(t, err)
	return kafka.Message{Offset: offset, Value: value}
}

// runWorker starts the worker and returns a stop func that cancels it and waits for Run to return.
func runWorker(t *testing.T, w *NotificationWorker) func() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	return func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("worker did not stop")
		}
	}
}

func waitCommit(t *testing.T, r *chanReader) kafka.Message {
	select {
	case m := <-r.committed:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("message was not committed")
		return kafka.Message{}
	}
}

func TestNotificationWorker_Delivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := NewMockMailer(ctrl)
	reader := newChanReader()

	mailer.EXPECT().Send(gomock.Any(), "a@example.com", "OTP", "123456").Return(nil).Times(1)

	stop := runWorker(t, NewNotificationWorker(reader, mailer, WithBaseDelay(time.Millisecond)))
	defer stop()

	reader.msgs <- notificationMessage(t, 7)
	assert.Equal(t, int64(7), waitCommit(t, reader).Offset)
}

func TestNotificationWorker_RetriesThenSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := NewMockMailer(ctrl)
	reader := newChanReader()

	gomock.InOrder(
		mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("421 try later")).Times(2),
		mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
	)

	stop := runWorker(t, NewNotificationWorker(reader, mailer, WithBaseDelay(time.Millisecond)))
	defer stop()

	reader.msgs <- notificationMessage(t, 1)
	waitCommit(t, reader)
}

func TestNotificationWorker_GivesUpAfterMaxAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := NewMockMailer(ctrl)
	reader := newChanReader()

	mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("550 rejected")).Times(3)

	stop := runWorker(t, NewNotificationWorker(reader, mailer, WithBaseDelay(time.Millisecond)))
	defer stop()

	reader.msgs <- notificationMessage(t, 2)
	assert.Equal(t, int64(2), waitCommit(t, reader).Offset)
}

func TestNotificationWorker_SkipsUndecodable(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := NewMockMailer(ctrl)
	reader := newChanReader()

	mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	stop := runWorker(t, NewNotificationWorker(reader, mailer))
	defer stop()

	reader.msgs <- kafka.Message{Offset: 3, Value: []byte("{not json")}
	assert.Equal(t, int64(3), waitCommit(t, reader).Offset)
}

func TestNotificationWorker_CancelDuringBackoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := NewMockMailer(ctrl)
	reader := newChanReader()

	sent := make(chan struct{})
	mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string, string) error {
			close(sent)
			return errors.New("timeout")
		})

	stop := runWorker(t, NewNotificationWorker(reader, mailer, WithBaseDelay(time.Hour)))

	reader.msgs <- notificationMessage(t, 4)
	<-sent
	stop()

	assert.Empty(t, reader.committed)
}

func TestBackoff(t *testing.T) {
	assert.Equal(t, time.Second, Backoff(time.Second, 1))
	assert.Equal(t, 2*time.Second, Backoff(time.Second, 2))
	assert.Equal(t, 4*time.Second, Backoff(time.Second, 3))
	assert.Equal(t, 30*time.Second, Backoff(time.Second, 10))
}
