package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stripe/stripe-go/v81/webhook"
)

var eventTypes = []string{
	"payment_intent.succeeded",
	"payment_intent.payment_failed",
	"payment_intent.canceled",
	"charge.refunded",
}

func eventPayload(id, typ, reference string) string {
	var object string
	switch typ {
	case "charge.refunded":
		object = fmt.Sprintf(`{"id":"ch_%s","object":"charge","payment_intent":%q}`, id[:8], reference)
	case "payment_intent.payment_failed":
		object = fmt.Sprintf(`{"id":%q,"object":"payment_intent","last_payment_error":{"message":"Your card was declined."}}`, reference)
	default:
		object = fmt.Sprintf(`{"id":%q,"object":"payment_intent"}`, reference)
	}
	return fmt.Sprintf(`{"id":"evt_%s","object":"event","type":%q,"data":{"object":%s}}`, id, typ, object)
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "payment-events", "relay topic")
	secret := flag.String("secret", os.Getenv("STRIPE_WEBHOOK_SECRET"), "webhook signing secret")
	refs := flag.String("refs", "", "comma separated payment intent ids to target")
	typ := flag.String("type", "", "event type, random when empty")
	interval := flag.Duration("interval", 2*time.Second, "delay between events")
	dup := flag.Bool("dup", false, "publish every event twice")
	flag.Parse()

	if *secret == "" || *refs == "" {
		log.Fatal("-secret and -refs are required")
	}
	references := strings.Split(*refs, ",")

	writer := &kafka.Writer{
		Addr:  kafka.TCP(strings.Split(*brokers, ",")...),
		Topic: *topic,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for i := 0; ; i++ {
		select {
		case <-ticker.C:
			eventType := *typ
			if eventType == "" {
				eventType = eventTypes[i%len(eventTypes)]
			}
			id := strings.ReplaceAll(uuid.NewString(), "-", "")
			payload := eventPayload(id, eventType, references[i%len(references)])
			signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
				Payload:   []byte(payload),
				Secret:    *secret,
				Timestamp: time.Now(),
			})

			msg := kafka.Message{
				Key:     []byte(id),
				Value:   signed.Payload,
				Headers: []kafka.Header{{Key: "Stripe-Signature", Value: []byte(signed.Header)}},
			}
			copies := 1
			if *dup {
				copies = 2
			}
			for range copies {
				if err := writer.WriteMessages(ctx, msg); err != nil {
					log.Println("failed to publish event:", err)
				}
			}
			log.Println("event published", eventType, "evt_"+id)
		case <-ctx.Done():
			return
		}
	}
}
