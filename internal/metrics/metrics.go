package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los colectores del servicio en un registry propio.
type Metrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	assessmentsTotal   *prometheus.CounterVec
	assessmentProb     prometheus.Histogram
	assessmentDuration prometheus.Histogram
	moodEntriesTotal   *prometheus.CounterVec
	rateLimitedTotal   prometheus.Counter
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "burnout",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "burnout",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "burnout",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
		},
	)
	assessmentsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "burnout",
			Subsystem: "assessment",
			Name:      "total",
			Help:      "Completed assessments by risk tier.",
		},
		[]string{"tier"},
	)
	assessmentProb := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "burnout",
			Subsystem: "assessment",
			Name:      "probability_percent",
			Help:      "Distribution of predicted burnout probability.",
			Buckets:   []float64{10, 20, 30, 45, 50, 60, 70, 80, 90, 100},
		},
	)
	assessmentDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "burnout",
			Subsystem: "assessment",
			Name:      "duration_seconds",
			Help:      "Time spent predicting and building an assessment.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)
	moodEntriesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "burnout",
			Subsystem: "mood",
			Name:      "entries_total",
			Help:      "Mood entries appended by score.",
		},
		[]string{"mood"},
	)
	rateLimitedTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "burnout",
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Prediction requests rejected by the rate limiter.",
		},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		assessmentsTotal,
		assessmentProb,
		assessmentDuration,
		moodEntriesTotal,
		rateLimitedTotal,
	)

	return &Metrics{
		registry:           registry,
		requestTotal:       requestTotal,
		requestDuration:    requestDuration,
		requestInFlight:    requestInFlight,
		assessmentsTotal:   assessmentsTotal,
		assessmentProb:     assessmentProb,
		assessmentDuration: assessmentDuration,
		moodEntriesTotal:   moodEntriesTotal,
		rateLimitedTotal:   rateLimitedTotal,
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware registra conteo, latencia y concurrencia por ruta de gin.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.requestTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) ObserveAssessment(tierClass string, probability float64, duration time.Duration) {
	if tierClass == "" {
		tierClass = "unknown"
	}
	m.assessmentsTotal.WithLabelValues(tierClass).Inc()
	m.assessmentProb.Observe(probability)
	m.assessmentDuration.Observe(duration.Seconds())
}

func (m *Metrics) ObserveMood(score int) {
	m.moodEntriesTotal.WithLabelValues(strconv.Itoa(score)).Inc()
}

func (m *Metrics) ObserveRateLimited() {
	m.rateLimitedTotal.Inc()
}
