package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/notify"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	mu      sync.Mutex
	msgs    []kafka.Message
	block   chan struct{}
	failing bool
	closed  bool
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.block != nil {
		<-w.block
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.failing {
		return errors.New("broker unavailable")
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *recordingWriter) messages() []kafka.Message {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]kafka.Message(nil), w.msgs...)
}

func logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func notification(number string) entities.OrderNotification {
	return entities.OrderNotification{
		Kind:        entities.NotifyOrderConfirmed,
		OrderNumber: number,
		UserID:      "user-1",
		Total:       3281,
		Currency:    "usd",
		OccurredAt:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestKafkaNotifier_Delivers(t *testing.T) {
	w := &recordingWriter{}
	n := notify.New(logger(), w, 8)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, n.Start(ctx))

	n.Notify(notification("ORD-1"))

	require.Eventually(t, func() bool { return len(w.messages()) == 1 }, time.Second, 5*time.Millisecond)

	m := w.messages()[0]
	assert.Equal(t, "ORD-1", string(m.Key))
	assert.Equal(t, []kafka.Header{{Key: "kind", Value: []byte("order_confirmed")}}, m.Headers)

	var got entities.OrderNotification
	require.NoError(t, json.Unmarshal(m.Value, &got))
	assert.Equal(t, notification("ORD-1"), got)

	cancel()
	require.NoError(t, n.Close())
	assert.True(t, w.closed)
}

func TestKafkaNotifier_DropsWhenFull(t *testing.T) {
	w := &recordingWriter{block: make(chan struct{})}
	n := notify.New(logger(), w, 1)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, n.Start(ctx))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range 10 {
			n.Notify(notification("ORD-" + string(rune('A'+i))))
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full queue")
	}

	close(w.block)
	cancel()
	require.NoError(t, n.Close())
	assert.LessOrEqual(t, len(w.messages()), 2)
}

func TestKafkaNotifier_WriteErrorsAreSwallowed(t *testing.T) {
	w := &recordingWriter{failing: true}
	n := notify.New(logger(), w, 4)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, n.Start(ctx))
	n.Notify(notification("ORD-1"))

	cancel()
	require.NoError(t, n.Close())
	assert.Empty(t, w.messages())
}
