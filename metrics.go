package covertree

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// duration is the total time taken.
	RecordInsert(duration time.Duration)

	// RecordSearch is called after each nearest-neighbor query.
	// duration is the time taken, err is nil if successful.
	RecordSearch(duration time.Duration, err error)

	// RecordBatchSearch is called after each batch query.
	// count is the number of queries attempted, duration the total time taken,
	// err is nil if all queries succeeded.
	RecordBatchSearch(count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration) {}
func (NoopMetricsCollector) RecordSearch(time.Duration, error) {}
func (NoopMetricsCollector) RecordBatchSearch(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertTotalNanos atomic.Int64
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64
	BatchSearchCount atomic.Int64
	BatchSearchItems atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordBatchSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchSearch(count int, duration time.Duration, err error) {
	b.BatchSearchCount.Add(1)
	b.BatchSearchItems.Add(int64(count))
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	InsertCount      int64
	InsertAvgNanos   int64
	SearchCount      int64
	SearchErrors     int64
	SearchAvgNanos   int64
	BatchSearchCount int64
	BatchSearchItems int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		InsertCount:      b.InsertCount.Load(),
		SearchCount:      b.SearchCount.Load(),
		SearchErrors:     b.SearchErrors.Load(),
		BatchSearchCount: b.BatchSearchCount.Load(),
		BatchSearchItems: b.BatchSearchItems.Load(),
	}
	if s.InsertCount > 0 {
		s.InsertAvgNanos = b.InsertTotalNanos.Load() / s.InsertCount
	}
	if s.SearchCount > 0 {
		s.SearchAvgNanos = b.SearchTotalNanos.Load() / s.SearchCount
	}
	return s
}
