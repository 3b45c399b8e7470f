package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncImageAccepted is a no-op.
func (n *NoopRecorder) IncImageAccepted() {}

// IncImageDuplicate is a no-op.
func (n *NoopRecorder) IncImageDuplicate() {}

// IncImageNoSignal is a no-op.
func (n *NoopRecorder) IncImageNoSignal() {}

// IncOcrFailure is a no-op.
func (n *NoopRecorder) IncOcrFailure() {}

// IncBatchCompleted is a no-op.
func (n *NoopRecorder) IncBatchCompleted() {}

// IncBatchFailed is a no-op.
func (n *NoopRecorder) IncBatchFailed() {}

// ObserveBatchSize is a no-op.
func (n *NoopRecorder) ObserveBatchSize(size int) {}

// ObserveBatchDuration is a no-op.
func (n *NoopRecorder) ObserveBatchDuration(duration time.Duration) {}

// ObserveOcrDuration is a no-op.
func (n *NoopRecorder) ObserveOcrDuration(duration time.Duration) {}
