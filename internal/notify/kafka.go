package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

const flushTimeout = 5 * time.Second

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaNotifier publishes order notifications from a bounded in-memory queue.
// Notify never blocks: when the queue is full the notification is dropped and logged.
type kafkaNotifier struct {
	logger *slog.Logger
	writer MessageWriter
	inbox  chan kafka.Message

	closeOnce sync.Once
	done      chan struct{}
}

func NewKafkaNotifier(logger *slog.Logger, cfg config.Kafka) *kafkaNotifier {
	return New(logger, &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.NotificationTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: cfg.BatchTimeout,
	}, cfg.BufferSize)
}

func New(logger *slog.Logger, w MessageWriter, buffer int) *kafkaNotifier {
	return &kafkaNotifier{
		logger: logger.With(slog.String("component", "notifier")),
		writer: w,
		inbox:  make(chan kafka.Message, buffer),
		done:   make(chan struct{}),
	}
}

func (n *kafkaNotifier) Notify(msg entities.OrderNotification) {
	value, err := json.Marshal(msg)
	if err != nil {
		n.logger.Error("failed to marshal notification", slog.String("order", msg.OrderNumber), slog.Any("error", err))
		return
	}

	m := kafka.Message{
		Key:   []byte(msg.OrderNumber),
		Value: value,
		Time:  msg.OccurredAt,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(msg.Kind)},
		},
	}

	select {
	case n.inbox <- m:
	default:
		n.logger.Warn("notification queue full, dropping",
			slog.String("order", msg.OrderNumber),
			slog.String("kind", string(msg.Kind)),
		)
	}
}

// Start delivers queued notifications until ctx is done, then flushes what is left.
func (n *kafkaNotifier) Start(ctx context.Context) error {
	go func() {
		defer close(n.done)
		for {
			select {
			case <-ctx.Done():
				n.flush()
				return
			case m := <-n.inbox:
				n.write(context.Background(), m)
			}
		}
	}()
	return nil
}

func (n *kafkaNotifier) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	for {
		select {
		case m := <-n.inbox:
			n.write(ctx, m)
		default:
			return
		}
	}
}

func (n *kafkaNotifier) write(ctx context.Context, m kafka.Message) {
	if err := n.writer.WriteMessages(ctx, m); err != nil {
		n.logger.Error("failed to publish notification", slog.String("order", string(m.Key)), slog.Any("error", err))
	}
}

// Close waits for the delivery loop to drain and closes the writer.
func (n *kafkaNotifier) Close() error {
	var err error
	n.closeOnce.Do(func() {
		select {
		case <-n.done:
		case <-time.After(flushTimeout):
			n.logger.Warn("notifier did not drain in time")
		}
		err = n.writer.Close()
	})
	return err
}
