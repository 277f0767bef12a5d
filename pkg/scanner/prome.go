package scanner

import (
	"errors"

	"github.com/luscis/smartwifi/pkg/jnap"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Metrics       = prometheus.NewRegistry()
	refreshMetric = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "smartwifi_refresh_total",
		Help: "The total refresh attempts by result",
	}, []string{"host", "result"})
	devicesMetric = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "smartwifi_devices",
		Help: "The number of wireless devices in the last snapshot",
	}, []string{"host"})
	durationMetric = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "smartwifi_refresh_seconds",
		Help:    "The time spent querying the router",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"host"})
)

func resultOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrThrottled):
		return "throttled"
	case errors.Is(err, jnap.ErrTimeout):
		return "timeout"
	case errors.Is(err, jnap.ErrTransport):
		return "transport"
	case errors.Is(err, jnap.ErrStatus):
		return "status"
	case errors.Is(err, jnap.ErrMalformed):
		return "malformed"
	}
	return "error"
}

func init() {
	Metrics.MustRegister(refreshMetric, devicesMetric, durationMetric)
}
