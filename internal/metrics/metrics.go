// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Per-image ingestion outcomes
	IncImageAccepted()
	IncImageDuplicate()
	IncImageNoSignal()
	IncOcrFailure()

	// Batch lifecycle
	IncBatchCompleted()
	IncBatchFailed()
	ObserveBatchSize(size int)
	ObserveBatchDuration(duration time.Duration)

	// OCR collaborator latency
	ObserveOcrDuration(duration time.Duration)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
