package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RequestMetrics counts and times every response the server writes, partitioned by status code and method
type RequestMetrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewRequestMetrics creates the collectors and registers them with reg
func NewRequestMetrics(reg prometheus.Registerer) (*RequestMetrics, error) {
	m := &RequestMetrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "coopserve",
				Name:      "http_requests_total",
				Help:      "How many HTTP requests were served, by status code and method",
			},
			[]string{"code", "method"}),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "coopserve",
				Name:      "http_request_duration_seconds",
				Help:      "Time spent serving HTTP requests, by status code and method",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"code", "method"}),
	}

	for _, c := range []prometheus.Collector{m.Requests, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Instrument wraps h so every response is counted and timed
func (m *RequestMetrics) Instrument(h http.Handler) http.Handler {
	return promhttp.InstrumentHandlerDuration(m.Duration,
		promhttp.InstrumentHandlerCounter(m.Requests, h))
}
