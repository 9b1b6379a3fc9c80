// Package telemetry exposes prometheus instruments for the classification
// pipeline. All Provider methods are nil-safe so components can run without
// metrics (tests, CLI tools).
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Provider holds all prometheus instruments
type Provider struct {
	ClassificationsTotal   *prometheus.CounterVec
	ClassificationDuration prometheus.Histogram
	CacheHits              prometheus.Counter
	CacheMisses            prometheus.Counter
	URLAnalysesTotal       prometheus.Counter
}

// NewProvider registers the instruments on the given registerer
func NewProvider(reg prometheus.Registerer) *Provider {
	factory := promauto.With(reg)

	return &Provider{
		ClassificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "smishing_filter",
			Name:      "classifications_total",
			Help:      "Messages classified, partitioned by resulting label",
		}, []string{"label"}),
		ClassificationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "smishing_filter",
			Name:      "classification_duration_seconds",
			Help:      "Time spent classifying a single message",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "smishing_filter",
			Name:      "cache_hits_total",
			Help:      "Classification cache hits",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "smishing_filter",
			Name:      "cache_misses_total",
			Help:      "Classification cache misses",
		}),
		URLAnalysesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "smishing_filter",
			Name:      "url_analyses_total",
			Help:      "URL risk analyses performed",
		}),
	}
}

// RecordClassification counts one classified message
func (p *Provider) RecordClassification(label string, duration time.Duration) {
	if p == nil {
		return
	}
	p.ClassificationsTotal.WithLabelValues(label).Inc()
	p.ClassificationDuration.Observe(duration.Seconds())
}

// RecordCacheHit counts one cache hit
func (p *Provider) RecordCacheHit() {
	if p == nil {
		return
	}
	p.CacheHits.Inc()
}

// RecordCacheMiss counts one cache miss
func (p *Provider) RecordCacheMiss() {
	if p == nil {
		return
	}
	p.CacheMisses.Inc()
}

// RecordURLAnalysis counts one URL risk analysis
func (p *Provider) RecordURLAnalysis() {
	if p == nil {
		return
	}
	p.URLAnalysesTotal.Inc()
}
