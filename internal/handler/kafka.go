package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// relayRetry covers failures that outlive the store-level retries, such as a database failover.
var relayRetry = utils.RetryConfig{
	MaxAttempts:  5,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	Multiplier:   2,
}

// kafkaHandler consumes payment events relayed from the processor. The message value is
// the raw event body and the signature travels in a header, so relayed events are verified
// exactly like webhook deliveries.
type kafkaHandler struct {
	dlq    MessageWriter
	reader MessageReader
	logger *slog.Logger
	events NotificationHandler
	retry  utils.RetryConfig
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, events NotificationHandler) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.PaymentTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return NewKafkaRelay(logger, reader, dlq, events, relayRetry)
}

func NewKafkaRelay(logger *slog.Logger, reader MessageReader, dlq MessageWriter, events NotificationHandler, retry utils.RetryConfig) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: reader,
		dlq:    dlq,
		events: events,
		retry:  retry,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handlePaymentEvent(ctx, m); err != nil {
			if ctx.Err() != nil {
				// uncommitted, the event is redelivered after restart
				break
			}
			eventsFailed.Inc()
			h.logger.Error("failed to handle message",
				slog.Any("error", err),
				slog.Int("partition", m.Partition),
				slog.Int64("offset", m.Offset),
			)

			if err := h.WriteToDLQ(ctx, m, err); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
		} else {
			eventsProcessed.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handlePaymentEvent(ctx context.Context, m kafka.Message) error {
	eventsInProgress.Inc()
	defer eventsInProgress.Dec()
	start := time.Now()
	defer func() { eventProcessingDuration.Observe(time.Since(start).Seconds()) }()

	signature := header(m, signatureHeader)

	var outcome string
	err := utils.Retry(ctx, h.retry, func() error {
		o, err := h.events.HandleNotification(ctx, m.Value, signature)
		outcome = string(o)
		return err
	}, entities.ErrInvalidSignature, entities.ErrMalformedEvent)

	switch {
	case err == nil:
		paymentEventsTotal.WithLabelValues("kafka", outcome).Inc()
		return nil
	case errors.Is(err, entities.ErrInvalidSignature), errors.Is(err, entities.ErrMalformedEvent):
		paymentEventsTotal.WithLabelValues("kafka", "rejected").Inc()
		return fmt.Errorf("invalid payment event: %w", err)
	default:
		paymentEventsTotal.WithLabelValues("kafka", "failed").Inc()
		return fmt.Errorf("failed to apply payment event: %w", err)
	}
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message, cause error) error {
	eventsDLQ.Inc()
	dead := kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: append(append([]kafka.Header(nil), m.Headers...), kafka.Header{Key: "error", Value: []byte(cause.Error())}),
	}
	return h.dlq.WriteMessages(ctx, dead)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}

func header(m kafka.Message, key string) string {
	for _, hd := range m.Headers {
		if hd.Key == key {
			return string(hd.Value)
		}
	}
	return ""
}
