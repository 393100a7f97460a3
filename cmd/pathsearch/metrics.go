package main

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/QSI-BAQS/pathsearch"
)

// PrometheusCollector implements pathsearch.MetricsCollector.
type PrometheusCollector struct {
	taskLatency   prometheus.Histogram
	tasks         *prometheus.CounterVec
	steps         *prometheus.CounterVec
	leaves        prometheus.Counter
	searchLatency *prometheus.HistogramVec
	frontier      prometheus.Gauge
}

var _ pathsearch.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheusCollector creates the collector and registers it with reg.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		taskLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathsearch_task_duration_seconds",
			Help:    "Duration of search tasks",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		tasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pathsearch_tasks_total",
			Help: "Finished search tasks",
		}, []string{"improved"}),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pathsearch_steps_total",
			Help: "Tree steps taken by search tasks",
		}, []string{"kind"}),
		leaves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pathsearch_leaves_total",
			Help: "Completed orderings reached",
		}),
		searchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathsearch_search_duration_seconds",
			Help:    "Duration of whole searches",
			Buckets: prometheus.DefBuckets,
		}, []string{"status"}),
		frontier: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pathsearch_frontier_size",
			Help: "Entries of the last Pareto frontier",
		}),
	}
	reg.MustRegister(c.taskLatency, c.tasks, c.steps, c.leaves, c.searchLatency, c.frontier)
	return c
}

func (c *PrometheusCollector) RecordTask(stats pathsearch.Stats, d time.Duration, improved bool) {
	c.taskLatency.Observe(d.Seconds())
	label := "false"
	if improved {
		label = "true"
	}
	c.tasks.WithLabelValues(label).Inc()
	c.steps.WithLabelValues("forward").Add(float64(stats.Forward))
	c.steps.WithLabelValues("backward").Add(float64(stats.Backward))
	c.steps.WithLabelValues("pruned").Add(float64(stats.Pruned))
	c.leaves.Add(float64(stats.Leaves))
}

func (c *PrometheusCollector) RecordSearch(frontier int, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.searchLatency.WithLabelValues(status).Observe(d.Seconds())
	if err == nil {
		c.frontier.Set(float64(frontier))
	}
}

// serveMetrics serves gatherer on addr until the returned server is shut down.
func serveMetrics(addr string, gatherer prometheus.Gatherer, log *slog.Logger) (*http.Server, net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", "addr", addr, "error", err)
		}
	}()
	return srv, ln.Addr(), nil
}
