package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	eventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "kafka_consumer",
			Name:      "events_processed_total",
			Help:      "Total number of relayed payment events acknowledged",
		},
	)

	eventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "kafka_consumer",
			Name:      "events_failed_total",
			Help:      "Total number of failed payment event processing attempts",
		},
	)

	eventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "kafka_consumer",
			Name:      "events_dlq_total",
			Help:      "Total number of payment events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	eventProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "checkout_service",
			Subsystem: "kafka_consumer",
			Name:      "event_processing_duration_seconds",
			Help:      "Histogram of payment event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	eventsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "checkout_service",
			Subsystem: "kafka_consumer",
			Name:      "events_in_progress",
			Help:      "Number of payment events currently being processed",
		},
	)
)

var (
	checkoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "checkout",
			Name:      "checkouts_total",
			Help:      "Total number of checkout attempts by result",
		},
		[]string{"result"},
	)

	checkoutDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "checkout_service",
			Subsystem: "checkout",
			Name:      "checkout_duration_seconds",
			Help:      "Histogram of checkout durations including the payment request",
			Buckets:   prometheus.DefBuckets,
		},
	)

	cancellationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "checkout",
			Name:      "cancellations_total",
			Help:      "Total number of user cancellation attempts by result",
		},
		[]string{"result"},
	)

	paymentEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "payments",
			Name:      "events_total",
			Help:      "Total number of payment notifications by source and outcome",
		},
		[]string{"source", "outcome"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		eventsProcessed,
		eventsFailed,
		eventsDLQ,
		commitErrors,
		eventProcessingDuration,
		eventsInProgress,

		checkoutsTotal,
		checkoutDuration,
		cancellationsTotal,
		paymentEventsTotal,
	)
}
