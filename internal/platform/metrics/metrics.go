package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
	portssvc "github.com/SscSPs/greenpages_backend/internal/core/ports/services"
	"github.com/SscSPs/greenpages_backend/internal/middleware"
)

const namespace = "greenpages"

// Recorder owns the application's Prometheus collectors.
type Recorder struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	renewalTransitions *prometheus.CounterVec
	journalPosted      *prometheus.CounterVec
	schedulerItems     *prometheus.CounterVec
	schedulerRuns      *prometheus.CounterVec
}

var (
	_ middleware.HTTPObserver  = (*Recorder)(nil)
	_ portssvc.WorkflowMetrics = (*Recorder)(nil)
)

// New creates a Recorder with its own registry. Process and Go runtime
// collectors are included when withRuntime is set.
func New(withRuntime bool) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
			},
			[]string{"method", "route"},
		),
		renewalTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "renewal",
				Name:      "transitions_total",
				Help:      "Renewal operations applied, by operation and resulting status.",
			},
			[]string{"operation", "status"},
		),
		journalPosted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ledger",
				Name:      "entries_posted_total",
				Help:      "Journal entries persisted, by source.",
			},
			[]string{"source"},
		),
		schedulerItems: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "scheduler",
				Name:      "items_total",
				Help:      "Records handled by scheduler jobs, by job and result.",
			},
			[]string{"job", "result"},
		),
		schedulerRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "scheduler",
				Name:      "runs_total",
				Help:      "Scheduler job runs.",
			},
			[]string{"job"},
		),
	}

	r.registry.MustRegister(
		r.httpRequests,
		r.httpDuration,
		r.renewalTransitions,
		r.journalPosted,
		r.schedulerItems,
		r.schedulerRuns,
	)
	if withRuntime {
		r.registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		)
	}
	return r
}

// Handler returns an HTTP handler exposing the registered metrics.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records one finished HTTP request.
func (r *Recorder) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	method = strings.ToUpper(method)
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RenewalTransition counts a successful renewal operation.
func (r *Recorder) RenewalTransition(operation string, status domain.RenewalStatus) {
	r.renewalTransitions.WithLabelValues(operation, string(status)).Inc()
}

// JournalPosted counts a persisted journal entry.
func (r *Recorder) JournalPosted(source domain.JournalSource) {
	r.journalPosted.WithLabelValues(string(source)).Inc()
}

// SchedulerRun records the outcome of one scheduler job run.
func (r *Recorder) SchedulerRun(job string, processed, failed int) {
	r.schedulerRuns.WithLabelValues(job).Inc()
	r.schedulerItems.WithLabelValues(job, "processed").Add(float64(processed))
	r.schedulerItems.WithLabelValues(job, "failed").Add(float64(failed))
}
