// Package prometheus instruments wordseek services with Prometheus metrics.
package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/wordseek"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors shared by the instrumented services.
type Metrics struct {
	Fetches       *prometheus.CounterVec
	FetchDuration prometheus.Histogram
	Extractions   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordseek_page_fetches_total",
			Help: "Total number of page fetches by result code",
		}, []string{"code"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordseek_page_fetch_duration_seconds",
			Help:    "Duration of page fetches",
			Buckets: prometheus.DefBuckets,
		}),
		Extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordseek_extractions_total",
			Help: "Total number of entry extractions by result code",
		}, []string{"code"}),
	}
	reg.MustRegister(m.Fetches, m.FetchDuration, m.Extractions)
	return m
}

// code returns the label value for err.
func code(err error) string {
	if err == nil {
		return "ok"
	}
	return wordseek.ErrorCode(err)
}

// Ensure Fetcher implements wordseek.PageFetcher.
var _ wordseek.PageFetcher = (*Fetcher)(nil)

// Fetcher wraps a PageFetcher with metrics.
type Fetcher struct {
	next    wordseek.PageFetcher
	metrics *Metrics
}

// NewFetcher creates a new Fetcher.
func NewFetcher(next wordseek.PageFetcher, metrics *Metrics) *Fetcher {
	return &Fetcher{next: next, metrics: metrics}
}

// FetchPage delegates to the wrapped fetcher and records the outcome.
func (f *Fetcher) FetchPage(ctx context.Context, word, language string, proto bool) (page *wordseek.Page, err error) {
	defer func(begin time.Time) {
		f.metrics.FetchDuration.Observe(time.Since(begin).Seconds())
		f.metrics.Fetches.WithLabelValues(code(err)).Inc()
	}(time.Now())
	return f.next.FetchPage(ctx, word, language, proto)
}

// Ensure Extractor implements wordseek.Extractor.
var _ wordseek.Extractor = (*Extractor)(nil)

// Extractor wraps an Extractor with metrics.
type Extractor struct {
	next    wordseek.Extractor
	metrics *Metrics
}

// NewExtractor creates a new Extractor.
func NewExtractor(next wordseek.Extractor, metrics *Metrics) *Extractor {
	return &Extractor{next: next, metrics: metrics}
}

// Extract delegates to the wrapped extractor and records the outcome.
func (e *Extractor) Extract(html, canonicalURL, language string) (entry *wordseek.Entry, err error) {
	defer func() {
		e.metrics.Extractions.WithLabelValues(code(err)).Inc()
	}()
	return e.next.Extract(html, canonicalURL, language)
}
