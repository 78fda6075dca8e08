package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 15, 30},
		},
		[]string{"method", "endpoint"},
	)

	// QuizGenerations counts generate calls by outcome ("ok" or a failure kind).
	QuizGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_generations_total",
			Help: "Quiz generation attempts by result",
		},
		[]string{"result"},
	)

	HistoryTrimmed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "history_records_trimmed_total",
			Help: "History records removed by the per-user retention cap",
		},
	)
)

func Handler() http.Handler {
	return promhttp.Handler()
}
