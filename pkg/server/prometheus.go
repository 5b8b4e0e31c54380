package server

import (
	"net/http"

	"github.com/hackercorplabs/coopserve/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// enablePrometheus sets up the /prometheus endpoint backed by a registry private to this server
func enablePrometheus(ps *coopServer) error {
	ps.registry = prometheus.NewRegistry()
	requestMetrics, err := metrics.NewRequestMetrics(ps.registry)
	if err != nil {
		return err
	}
	ps.requestMetrics = requestMetrics

	ps.router.Path(PrometheusPath).Name("prometheus").Methods(http.MethodGet, http.MethodHead).Handler(
		promhttp.HandlerFor(ps.registry, promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		}))
	return nil
}
