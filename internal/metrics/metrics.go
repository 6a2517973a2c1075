// Package metrics exposes prometheus collectors for the carving loop.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns a private registry and the seam-removal collectors.
// It satisfies carver.Observer.
type Recorder struct {
	reg *prometheus.Registry

	removed  *prometheus.CounterVec
	findTime *prometheus.HistogramVec
	energy   prometheus.Histogram
}

// New builds a Recorder with the Go runtime and process collectors
// registered alongside the seam metrics.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		removed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seamcarve_seams_removed_total",
			Help: "Seams removed, by orientation.",
		}, []string{"orientation"}),
		findTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "seamcarve_seam_find_seconds",
			Help:    "Time spent finding one seam, by orientation.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 16),
		}, []string{"orientation"}),
		energy: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "seamcarve_seam_energy",
			Help:    "Total energy of each removed seam.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}),
	}
	r.reg.MustRegister(
		r.removed, r.findTime, r.energy,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// SeamRemoved records one removed seam.
func (r *Recorder) SeamRemoved(orientation string, elapsed time.Duration, energy float64) {
	r.removed.WithLabelValues(orientation).Inc()
	r.findTime.WithLabelValues(orientation).Observe(elapsed.Seconds())
	r.energy.Observe(energy)
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Handler serves the registry in the prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
