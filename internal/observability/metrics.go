package observability

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registerOnce       sync.Once
	evaluationDuration *prometheus.HistogramVec
	evaluationFailures *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors for practice evaluations.
func RegisterMetrics() {
	registerOnce.Do(func() {
		evaluationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "practice",
			Subsystem: "evaluation",
			Name:      "duration_seconds",
			Help:      "Duration of calls to the external scoring service.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"provider"})

		evaluationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "practice",
			Subsystem: "evaluation",
			Name:      "failures_total",
			Help:      "Number of failed evaluations by error kind.",
		}, []string{"provider", "kind"})

		prometheus.MustRegister(evaluationDuration, evaluationFailures)
	})
}

func EvaluationDuration() *prometheus.HistogramVec {
	RegisterMetrics()
	return evaluationDuration
}

func EvaluationFailures() *prometheus.CounterVec {
	RegisterMetrics()
	return evaluationFailures
}

// MetricsHandler exposes the Prometheus scrape endpoint via Fiber.
func MetricsHandler() fiber.Handler {
	RegisterMetrics()
	return adaptor.HTTPHandler(promhttp.Handler())
}
