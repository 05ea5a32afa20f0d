package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus exports engine timings as a latency histogram labelled by
// engine and status, and a counter of settled nodes labelled by engine.
type Prometheus struct {
	latency *prometheus.HistogramVec
	settled *prometheus.CounterVec
}

// NewPrometheus creates the collectors and registers them on reg.
// namespace prefixes every metric name and may be empty.
func NewPrometheus(reg prometheus.Registerer, namespace string) (*Prometheus, error) {
	p := &Prometheus{
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "shortest_path_duration_seconds",
			Help:      "Latency of single-source shortest distance queries",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"engine", "status"}),
		settled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settled_nodes_total",
			Help:      "Nodes whose shortest distance was finalized",
		}, []string{"engine"}),
	}

	for _, c := range []prometheus.Collector{p.latency, p.settled} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Observe implements Collector.
func (p *Prometheus) Observe(engine string, _, settled int, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	p.latency.WithLabelValues(engine, status).Observe(d.Seconds())
	p.settled.WithLabelValues(engine).Add(float64(settled))
}
