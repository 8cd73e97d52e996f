package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Registry = prometheus.NewRegistry()

	wizardSubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rentora",
			Subsystem: "wizard",
			Name:      "submissions_total",
			Help:      "Primary wizard actions by outcome",
		},
		[]string{"outcome"},
	)

	wizardSubmitDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "rentora",
			Subsystem: "wizard",
			Name:      "create_duration_seconds",
			Help:      "Time spent creating a listing from a finished draft",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~2.5s
		},
	)

	wizardSessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "rentora",
			Subsystem: "wizard",
			Name:      "sessions_active",
			Help:      "Open wizard sessions",
		},
	)

	reservationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rentora",
			Subsystem: "reservations",
			Name:      "total",
			Help:      "Reservation attempts by result",
		},
		[]string{"result"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		wizardSubmissionsTotal,
		wizardSubmitDuration,
		wizardSessionsActive,
		reservationsTotal,
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RecordWizardOutcome(outcome string) {
	wizardSubmissionsTotal.WithLabelValues(outcome).Inc()
}

func ObserveWizardCreate(seconds float64) {
	wizardSubmitDuration.Observe(seconds)
}

func SetWizardSessions(n int) {
	wizardSessionsActive.Set(float64(n))
}

func RecordReservation(result string) {
	reservationsTotal.WithLabelValues(result).Inc()
}
