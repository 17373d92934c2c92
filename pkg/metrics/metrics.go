package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripchat_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "tripchat_request_duration_seconds",
			Help: "HTTP request duration in seconds",
		},
		[]string{"method", "endpoint"},
	)

	ModelCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripchat_model_calls_total",
			Help: "Chat model calls by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	TurnDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tripchat_turn_duration_seconds",
			Help:    "Time to process one conversation turn",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
		},
		[]string{"kind"},
	)

	DuplicateReplies = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tripchat_duplicate_replies_total",
			Help: "Follow-up replies dropped because they repeated an earlier answer",
		},
	)

	ReferenceLinks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tripchat_reference_links_total",
			Help: "Encyclopedia links added to itineraries",
		},
	)

	SessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tripchat_sessions_started_total",
			Help: "Total number of chat sessions started",
		},
	)
)
