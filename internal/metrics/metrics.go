// Package metrics records per-session Prometheus metrics for the backpack
// stores and the component registry and renders them as text.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/vyrodovalexey/backpack/internal/sorting"
)

const namespace = "backpack"

// Operation outcomes.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

// Recorder owns a private registry. A nil *Recorder records nothing.
type Recorder struct {
	registry *prometheus.Registry

	comparisons  *prometheus.CounterVec
	operations   *prometheus.CounterVec
	sortDuration *prometheus.HistogramVec
	items        *prometheus.GaugeVec
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		comparisons: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "comparisons_total",
				Help:      "Total number of key comparisons performed by searches and sorts",
			},
			[]string{"collection", "operation"},
		),
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total number of collection operations by outcome",
			},
			[]string{"collection", "operation", "outcome"},
		),
		sortDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "sort_duration_seconds",
				Help:      "Wall-clock duration of sort runs in seconds",
				Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 8),
			},
			[]string{"collection", "algorithm"},
		),
		items: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "items",
				Help:      "Number of entries currently held by a collection",
			},
			[]string{"collection"},
		),
	}
}

// ObserveOperation counts one operation, failed when err is non-nil.
func (r *Recorder) ObserveOperation(collection, operation string, err error) {
	if r == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeFailed
	}
	r.operations.WithLabelValues(collection, operation, outcome).Inc()
}

// ObserveComparisons adds n comparisons to the operation's counter.
func (r *Recorder) ObserveComparisons(collection, operation string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.comparisons.WithLabelValues(collection, operation).Add(float64(n))
}

// ObserveSort records the comparisons and duration of one sort run.
func (r *Recorder) ObserveSort(collection, algorithm string, res sorting.Result) {
	if r == nil {
		return
	}
	r.ObserveComparisons(collection, "sort_"+algorithm, res.Comparisons)
	r.sortDuration.WithLabelValues(collection, algorithm).Observe(res.Seconds())
}

// SetSize publishes the current size of a collection.
func (r *Recorder) SetSize(collection string, n int) {
	if r == nil {
		return
	}
	r.items.WithLabelValues(collection).Set(float64(n))
}

// WriteText writes every gathered metric family in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	if r == nil {
		return nil
	}

	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metric %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
