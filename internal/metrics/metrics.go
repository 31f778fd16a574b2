package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the webhook service.
type Metrics struct {
	WebhookCalls   *prometheus.CounterVec
	LookupErrors   *prometheus.CounterVec
	LookupDuration prometheus.Histogram
}

// New registers the instruments on the default registry. Call it once per
// process.
func New() *Metrics {
	return &Metrics{
		WebhookCalls: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "concierge_webhook_calls_total",
			Help: "Total number of webhook function calls by function name",
		}, []string{"function"}),

		LookupErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "concierge_lookup_errors_total",
			Help: "Total number of failed lookup provider calls by kind",
		}, []string{"kind"}),

		LookupDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "concierge_lookup_duration_seconds",
			Help:    "Duration of lookup provider calls",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObserveCall increments the per-function counter. Nil receivers are
// allowed so tests can run handlers without a registry.
func (m *Metrics) ObserveCall(function string) {
	if m == nil {
		return
	}
	m.WebhookCalls.WithLabelValues(function).Inc()
}

// ObserveLookupError counts a failed provider call.
func (m *Metrics) ObserveLookupError(kind string) {
	if m == nil {
		return
	}
	m.LookupErrors.WithLabelValues(kind).Inc()
}

// ObserveLookupDuration records how long a provider call took.
func (m *Metrics) ObserveLookupDuration(seconds float64) {
	if m == nil {
		return
	}
	m.LookupDuration.Observe(seconds)
}
