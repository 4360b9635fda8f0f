package metrics

import (
	"net/http"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once          sync.Once
	registry      *prom.Registry
	stageDuration *prom.HistogramVec
	buildDuration prom.Histogram
	stageResults  *prom.CounterVec
	buildOutcome  *prom.CounterVec
	pagesRendered prom.Counter
	filesSkipped  prom.Counter
}

// NewPrometheusRecorder constructs and registers Prometheus metrics.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{registry: reg}
	pr.once.Do(func() {
		pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "sitegen",
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual build stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"})
		pr.buildDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "sitegen",
			Name:      "build_duration_seconds",
			Help:      "Total build duration",
			Buckets:   prom.DefBuckets,
		})
		pr.stageResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitegen",
			Name:      "stage_results_total",
			Help:      "Stage result counts by outcome",
		}, []string{"stage", "result"})
		pr.buildOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitegen",
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"outcome"})
		pr.pagesRendered = prom.NewCounter(prom.CounterOpts{
			Namespace: "sitegen",
			Name:      "pages_rendered_total",
			Help:      "Total pages rendered across builds",
		})
		pr.filesSkipped = prom.NewCounter(prom.CounterOpts{
			Namespace: "sitegen",
			Name:      "files_skipped_total",
			Help:      "Content files skipped due to read or parse problems",
		})
		reg.MustRegister(pr.stageDuration, pr.buildDuration, pr.stageResults, pr.buildOutcome, pr.pagesRendered, pr.filesSkipped)
	})
	return pr
}

func (pr *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	pr.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (pr *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	pr.buildDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	pr.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (pr *PrometheusRecorder) IncBuildOutcome(outcome string) {
	pr.buildOutcome.WithLabelValues(outcome).Inc()
}

func (pr *PrometheusRecorder) IncPagesRendered(n int) {
	pr.pagesRendered.Add(float64(n))
}

func (pr *PrometheusRecorder) IncFilesSkipped(n int) {
	pr.filesSkipped.Add(float64(n))
}

// HTTPHandler returns an http.Handler serving this recorder's registry.
func (pr *PrometheusRecorder) HTTPHandler() http.Handler {
	return promhttp.HandlerFor(pr.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
