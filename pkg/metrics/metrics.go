package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	DealsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deals_created_total",
			Help: "Total deals admitted, by offer direction.",
		},
		[]string{"direction"},
	)
	DealsSettled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deals_settled_total",
			Help: "Total deals settled, by currency family.",
		},
		[]string{"family"},
	)
	SettlementFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlement_failures_total",
			Help: "Settlement attempts that failed, by stage.",
		},
		[]string{"stage"},
	)
	DealsExpired = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "deals_expired_total",
			Help: "Deals force-expired by the sweeper.",
		},
	)
	ComplianceCasesOpened = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compliance_cases_opened_total",
			Help: "Compliance cases opened, by fired rule.",
		},
		[]string{"rule"},
	)
)

// Register installs all collectors on the registry.
func Register(registry *prometheus.Registry) {
	registry.MustRegister(
		RequestCount, RequestDuration,
		DealsCreated, DealsSettled, SettlementFailures,
		DealsExpired, ComplianceCasesOpened,
	)
}

// Handler serves the registry over HTTP.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
