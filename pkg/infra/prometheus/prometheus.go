package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	scoreBuckets = []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

	BotScore = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "riskgate_bot_score",
			Help:    "Distribution of computed bot scores",
			Buckets: scoreBuckets,
		},
	)

	RequestEventsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskgate_request_events_total",
			Help: "Request events recorded, by suspicion flag",
		},
		[]string{"suspicious"},
	)

	SecurityEventsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskgate_security_events_total",
			Help: "Security events emitted",
		},
		[]string{"event_type", "severity"},
	)

	RateLimitDecisions = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskgate_rate_limit_decisions_total",
			Help: "Advisory rate limiter decisions",
		},
		[]string{"type", "limited"},
	)

	QuotaDecisions = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskgate_quota_decisions_total",
			Help: "Plan quota decisions",
		},
		[]string{"plan", "allowed"},
	)

	FailOpenTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskgate_fail_open_total",
			Help: "Decisions taken without the event store",
		},
		[]string{"component"},
	)

	NotificationsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskgate_notifications_total",
			Help: "Notifications handed to the sink",
		},
		[]string{"type", "priority"},
	)

	ExportsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskgate_exports_total",
			Help: "Security event exports by exporter and result",
		},
		[]string{"exporter", "result"},
	)

	PatternAnalysisFlagged = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskgate_pattern_analysis_flagged_total",
			Help: "IPs flagged by the hourly pattern analysis",
		},
		[]string{"severity"},
	)

	MaintenanceRuns = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskgate_maintenance_runs_total",
			Help: "Maintenance job runs",
		},
		[]string{"job", "result"},
	)

	UpstreamRequests = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskgate_upstream_requests_total",
			Help: "Requests forwarded to the backend, by status class",
		},
		[]string{"method", "status"},
	)
)

// Initialize registers the process collector and makes the registry the
// default gatherer served on /metrics.
func Initialize() {
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}
