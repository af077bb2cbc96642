package clustervis

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordTick is called after each driver tick that performed work.
	RecordTick(duration time.Duration, err error)

	// RecordRun is called when a run completes, stops, or fails.
	// iterations is the number of completed steps.
	RecordRun(iterations int, duration time.Duration, err error)

	// RecordPredict is called after each predict call.
	RecordPredict(numPoints int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTick(time.Duration, error)         {}
func (NoopMetricsCollector) RecordRun(int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordPredict(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	TickCount       atomic.Int64
	TickErrors      atomic.Int64
	TickTotalNanos  atomic.Int64
	RunCount        atomic.Int64
	RunErrors       atomic.Int64
	RunIterations   atomic.Int64
	PredictCount    atomic.Int64
	PredictErrors   atomic.Int64
	PredictedPoints atomic.Int64
}

// RecordTick implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTick(duration time.Duration, err error) {
	b.TickCount.Add(1)
	b.TickTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.TickErrors.Add(1)
	}
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(iterations int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunIterations.Add(int64(iterations))
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// RecordPredict implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPredict(numPoints int, duration time.Duration, err error) {
	b.PredictCount.Add(1)
	b.PredictedPoints.Add(int64(numPoints))
	if err != nil {
		b.PredictErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		TickCount:       b.TickCount.Load(),
		TickErrors:      b.TickErrors.Load(),
		TickAvgNanos:    b.getAvgTickNanos(),
		RunCount:        b.RunCount.Load(),
		RunErrors:       b.RunErrors.Load(),
		RunIterations:   b.RunIterations.Load(),
		PredictCount:    b.PredictCount.Load(),
		PredictErrors:   b.PredictErrors.Load(),
		PredictedPoints: b.PredictedPoints.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgTickNanos() int64 {
	count := b.TickCount.Load()
	if count == 0 {
		return 0
	}
	return b.TickTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	TickCount       int64
	TickErrors      int64
	TickAvgNanos    int64
	RunCount        int64
	RunErrors       int64
	RunIterations   int64
	PredictCount    int64
	PredictErrors   int64
	PredictedPoints int64
}
