// Package metrics exposes the counters operators alert on. A reconcile step
// failure never fails the webhook acknowledgment, so these counters are the
// only signal that the ledger and the entitlement projection may have
// diverged and need out-of-band reconciliation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	paymentEvents        *prometheus.CounterVec
	reconcileStepFailure *prometheus.CounterVec
	gatewayRequests      *prometheus.CounterVec
}

func New() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.paymentEvents,
		m.reconcileStepFailure,
		m.gatewayRequests,
	)
	return m
}

// NewUnregistered builds the instruments without touching the default
// registry, for tests that construct more than one service.
func NewUnregistered() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		paymentEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "netpass_payment_events_total",
			Help: "Inbound gateway events by type and outcome.",
		}, []string{"event_type", "status"}),
		reconcileStepFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "netpass_reconcile_step_failures_total",
			Help: "Reconciliation write steps that failed after the event was acknowledged.",
		}, []string{"step"}),
		gatewayRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "netpass_gateway_requests_total",
			Help: "Outbound payment gateway calls by operation and outcome.",
		}, []string{"operation", "status"}),
	}
}

func (m *Metrics) RecordPaymentEvent(eventType, status string) {
	if m == nil {
		return
	}
	m.paymentEvents.WithLabelValues(eventType, status).Inc()
}

func (m *Metrics) RecordReconcileStepFailure(step string) {
	if m == nil {
		return
	}
	m.reconcileStepFailure.WithLabelValues(step).Inc()
}

func (m *Metrics) RecordGatewayRequest(operation, status string) {
	if m == nil {
		return
	}
	m.gatewayRequests.WithLabelValues(operation, status).Inc()
}
