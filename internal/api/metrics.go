package api

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"evalgo.org/maritime/internal/storage"
)

// Metrics holds the Prometheus collectors exposed by the server.
type Metrics struct {
	registry    *prometheus.Registry
	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge
}

// NewMetrics registers the HTTP collectors, Go runtime collectors and a
// record count collector backed by store on a private registry.
func NewMetrics(store *storage.Storage) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "maritime_api_requests_total",
			Help: "Total API requests by method/route/status.",
		}, []string{"method", "route", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "maritime_api_request_duration_seconds",
			Help:    "API request latency in seconds by method/route/status.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"method", "route", "status"}),
		apiInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "maritime_api_inflight_requests",
			Help: "In-flight API requests.",
		}),
	}

	m.registry.MustRegister(
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if store != nil {
		m.registry.MustRegister(&recordCollector{store: store})
	}
	return m
}

// Middleware records request count, latency and in-flight requests.
func (m *Metrics) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		m.apiInflight.Inc()
		defer m.apiInflight.Dec()

		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			status = statusOf(err)
		}
		route := c.Path()
		if route == "" {
			route = "unknown"
		}
		labels := []string{c.Request().Method, route, strconv.Itoa(status)}
		m.apiRequests.WithLabelValues(labels...).Inc()
		m.apiLatency.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

var recordsDesc = prometheus.NewDesc(
	"maritime_records",
	"Number of stored records by table.",
	[]string{"table"}, nil,
)

// recordCollector reports row counts at scrape time.
type recordCollector struct {
	store *storage.Storage
}

func (rc *recordCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- recordsDesc
}

func (rc *recordCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	counts, err := rc.store.Counts(ctx)
	if err != nil {
		ch <- prometheus.NewInvalidMetric(recordsDesc, err)
		return
	}
	ch <- prometheus.MustNewConstMetric(recordsDesc, prometheus.GaugeValue, float64(counts.Ships), "ships")
	ch <- prometheus.MustNewConstMetric(recordsDesc, prometheus.GaugeValue, float64(counts.Ports), "ports")
	ch <- prometheus.MustNewConstMetric(recordsDesc, prometheus.GaugeValue, float64(counts.Voyages), "voyages")
}
