// Package metrics records per-run teardown metrics in a private Prometheus
// registry and writes them in the node-exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "atlantis"

// Run collects the metrics of a single teardown run.
type Run struct {
	registry *prometheus.Registry

	gateFailures     *prometheus.CounterVec
	resourcesDeleted *prometheus.CounterVec
	resourcesSkipped *prometheus.CounterVec
	resourcesFailed  *prometheus.CounterVec
	stackDuration    *prometheus.HistogramVec
}

// NewRun creates a run with a fresh registry. target labels every series.
func NewRun(target string) *Run {
	constLabels := prometheus.Labels{"deployment": target}

	r := &Run{
		registry: prometheus.NewRegistry(),
		gateFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "teardown",
				Name:        "gate_failures_total",
				Help:        "Deletion gates that refused the run",
				ConstLabels: constLabels,
			},
			[]string{"gate"},
		),
		resourcesDeleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "teardown",
				Name:        "resources_deleted_total",
				Help:        "Resources deleted by category",
				ConstLabels: constLabels,
			},
			[]string{"category"},
		),
		resourcesSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "teardown",
				Name:        "resources_skipped_total",
				Help:        "Resources left in place by reason",
				ConstLabels: constLabels,
			},
			[]string{"reason"},
		),
		resourcesFailed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "teardown",
				Name:        "resources_failed_total",
				Help:        "Resource deletions that returned an error, by category",
				ConstLabels: constLabels,
			},
			[]string{"category"},
		),
		stackDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   namespace,
				Subsystem:   "teardown",
				Name:        "stack_delete_duration_seconds",
				Help:        "Time from DeleteStack to a terminal status",
				ConstLabels: constLabels,
				Buckets:     prometheus.ExponentialBuckets(10, 2, 8), // 10s to ~21min
			},
			[]string{"stack", "result"},
		),
	}

	r.registry.MustRegister(
		r.gateFailures,
		r.resourcesDeleted,
		r.resourcesSkipped,
		r.resourcesFailed,
		r.stackDuration,
	)
	return r
}

// Registry exposes the underlying registry.
func (r *Run) Registry() *prometheus.Registry {
	return r.registry
}

// GateFailed counts a refused gate.
func (r *Run) GateFailed(gate string) {
	r.gateFailures.WithLabelValues(gate).Inc()
}

// ResourceDeleted counts a deleted resource.
func (r *Run) ResourceDeleted(category string) {
	r.resourcesDeleted.WithLabelValues(category).Inc()
}

// ResourceSkipped counts a resource left in place.
func (r *Run) ResourceSkipped(reason string) {
	r.resourcesSkipped.WithLabelValues(reason).Inc()
}

// ResourceFailed counts a failed resource deletion.
func (r *Run) ResourceFailed(category string) {
	r.resourcesFailed.WithLabelValues(category).Inc()
}

// StackDeleted observes how long a stack deletion took.
func (r *Run) StackDeleted(stack string, d time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	r.stackDuration.WithLabelValues(stack, result).Observe(d.Seconds())
}

// WriteTextfile writes the registry to path atomically.
func (r *Run) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
