// Package metrics provides Prometheus metrics for the version service.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the version service.
type Metrics struct {
	registry *prometheus.Registry

	VersionsAppendedTotal prometheus.Counter
	SavesSkippedTotal     prometheus.Counter
	VersionsEvictedTotal  prometheus.Counter
	VersionsRestoredTotal prometheus.Counter
	VersionsDeletedTotal  *prometheus.CounterVec

	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
}

// New creates all metrics on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{registry: reg}

	m.VersionsAppendedTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "moduleversion_versions_appended_total",
		Help: "Total number of module snapshots written",
	})

	m.SavesSkippedTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "moduleversion_saves_skipped_total",
		Help: "Total number of saves that did not change any tracked field",
	})

	m.VersionsEvictedTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "moduleversion_versions_evicted_total",
		Help: "Total number of versions removed by the retention policy",
	})

	m.VersionsRestoredTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "moduleversion_versions_restored_total",
		Help: "Total number of versions restored onto a live module",
	})

	m.VersionsDeletedTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "moduleversion_versions_deleted_total",
		Help: "Total number of versions deleted with their owner",
	}, []string{"reason"})

	m.OperationsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "moduleversion_operations_total",
		Help: "Total number of service operations",
	}, []string{"operation", "status"})

	m.OperationDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "moduleversion_operation_duration_seconds",
		Help:    "Duration of service operations in seconds",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation"})

	return m
}

// Registry exposes the registry the metrics live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// VersionAppended records a new snapshot.
func (m *Metrics) VersionAppended() { m.VersionsAppendedTotal.Inc() }

// SaveSkipped records a save with no tracked change.
func (m *Metrics) SaveSkipped() { m.SavesSkippedTotal.Inc() }

// VersionsEvicted records n versions removed by retention.
func (m *Metrics) VersionsEvicted(n int64) { m.VersionsEvictedTotal.Add(float64(n)) }

// VersionRestored records a restore.
func (m *Metrics) VersionRestored() { m.VersionsRestoredTotal.Inc() }

// VersionsDeleted records n versions removed with their owner; reason is
// "module" or "extension".
func (m *Metrics) VersionsDeleted(reason string, n int64) {
	m.VersionsDeletedTotal.WithLabelValues(reason).Add(float64(n))
}

// ObserveOperation records the outcome and latency of one service call.
func (m *Metrics) ObserveOperation(op string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.OperationsTotal.WithLabelValues(op, status).Inc()
	m.OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// WriteTextfile dumps every metric to path in the text exposition format,
// for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

// Nop is a recorder that discards everything.
type Nop struct{}

func (Nop) VersionAppended() {}
func (Nop) SaveSkipped() {}
func (Nop) VersionsEvicted(int64) {}
func (Nop) VersionRestored() {}
func (Nop) VersionsDeleted(string, int64) {}
func (Nop) ObserveOperation(string, time.Time, error) {}
