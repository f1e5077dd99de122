package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the heat risk API.
type Metrics struct {
	Predictions   *prometheus.CounterVec // labels: city
	Fetches       *prometheus.CounterVec // labels: city, outcome={available,unavailable}
	Alerts        *prometheus.CounterVec // labels: outcome={sent,skipped,failed}
	CitiesSkipped *prometheus.CounterVec // labels: reason={unavailable,score_error,panic}

	ScoreDuration   prometheus.Histogram
	RequestDuration *prometheus.HistogramVec // labels: method, route, status
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heat_risk",
			Name:      "predictions_total",
			Help:      "Risk scores produced, by city.",
		}, []string{"city"}),
		Fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heat_risk",
			Name:      "weather_fetches_total",
			Help:      "Weather fetches by city and outcome.",
		}, []string{"city", "outcome"}),
		Alerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heat_risk",
			Name:      "alerts_total",
			Help:      "Alert notifications by outcome.",
		}, []string{"outcome"}),
		CitiesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heat_risk",
			Name:      "cities_skipped_total",
			Help:      "Cities omitted from a response, by reason.",
		}, []string{"reason"}),
		ScoreDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "heat_risk",
			Name:      "score_duration_seconds",
			Help:      "Duration of a single model prediction.",
			Buckets:   []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "heat_risk",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by method, route and status.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"method", "route", "status"}),
	}

	prometheus.MustRegister(
		m.Predictions,
		m.Fetches,
		m.Alerts,
		m.CitiesSkipped,
		m.ScoreDuration,
		m.RequestDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics that are not registered anywhere, so
// tests can build as many as they like.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		Predictions:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "heat_risk", Name: "predictions_total"}, []string{"city"}),
		Fetches:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "heat_risk", Name: "weather_fetches_total"}, []string{"city", "outcome"}),
		Alerts:          prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "heat_risk", Name: "alerts_total"}, []string{"outcome"}),
		CitiesSkipped:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "heat_risk", Name: "cities_skipped_total"}, []string{"reason"}),
		ScoreDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "heat_risk", Name: "score_duration_seconds"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "heat_risk", Name: "http_request_duration_seconds"}, []string{"method", "route", "status"}),
	}
}
