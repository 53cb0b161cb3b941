// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Registry = prometheus.NewRegistry()

	OrderSubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "silo",
			Subsystem: "orders",
			Name:      "submissions_total",
			Help:      "Order submissions by workflow mode and result",
		},
		[]string{"mode", "result"},
	)

	PaymentRefreshTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "silo",
			Subsystem: "payments",
			Name:      "refresh_total",
			Help:      "Gateway payment status lookups by gateway and outcome",
		},
		[]string{"gateway", "outcome"},
	)

	ProvisioningEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "silo",
			Subsystem: "provisioning",
			Name:      "events_total",
			Help:      "Provisioning step events by entity kind and result",
		},
		[]string{"kind", "result"},
	)

	ActiveSubscriptions = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "silo",
			Subsystem: "provisioning",
			Name:      "active_subscriptions",
			Help:      "Open provisioning event channels by entity kind",
		},
		[]string{"kind"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		OrderSubmissionsTotal,
		PaymentRefreshTotal,
		ProvisioningEventsTotal,
		ActiveSubscriptions,
	)
}

// Handler serves the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
