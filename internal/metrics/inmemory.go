package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	ImagesAccepted       uint64
	ImagesDuplicate      uint64
	ImagesNoSignal       uint64
	OcrFailures          uint64
	BatchesCompleted     uint64
	BatchesFailed        uint64
	BatchSizeCount       uint64
	BatchSizeTotal       int64
	BatchDurationCount   uint64
	BatchDurationTotalNs int64
	OcrDurationCount     uint64
	OcrDurationTotalNs   int64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	imagesAccepted       uint64
	imagesDuplicate      uint64
	imagesNoSignal       uint64
	ocrFailures          uint64
	batchesCompleted     uint64
	batchesFailed        uint64
	batchSizeCount       uint64
	batchSizeTotal       int64
	batchDurationCount   uint64
	batchDurationTotalNs int64
	ocrDurationCount     uint64
	ocrDurationTotalNs   int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		ImagesAccepted:       atomic.LoadUint64(&m.imagesAccepted),
		ImagesDuplicate:      atomic.LoadUint64(&m.imagesDuplicate),
		ImagesNoSignal:       atomic.LoadUint64(&m.imagesNoSignal),
		OcrFailures:          atomic.LoadUint64(&m.ocrFailures),
		BatchesCompleted:     atomic.LoadUint64(&m.batchesCompleted),
		BatchesFailed:        atomic.LoadUint64(&m.batchesFailed),
		BatchSizeCount:       atomic.LoadUint64(&m.batchSizeCount),
		BatchSizeTotal:       atomic.LoadInt64(&m.batchSizeTotal),
		BatchDurationCount:   atomic.LoadUint64(&m.batchDurationCount),
		BatchDurationTotalNs: atomic.LoadInt64(&m.batchDurationTotalNs),
		OcrDurationCount:     atomic.LoadUint64(&m.ocrDurationCount),
		OcrDurationTotalNs:   atomic.LoadInt64(&m.ocrDurationTotalNs),
	}
}

// IncImageAccepted increments the accepted image counter.
func (m *InMemoryRecorder) IncImageAccepted() {
	atomic.AddUint64(&m.imagesAccepted, 1)
}

// IncImageDuplicate increments the duplicate image counter.
func (m *InMemoryRecorder) IncImageDuplicate() {
	atomic.AddUint64(&m.imagesDuplicate, 1)
}

// IncImageNoSignal increments the no-signal image counter.
func (m *InMemoryRecorder) IncImageNoSignal() {
	atomic.AddUint64(&m.imagesNoSignal, 1)
}

// IncOcrFailure increments the OCR failure counter.
func (m *InMemoryRecorder) IncOcrFailure() {
	atomic.AddUint64(&m.ocrFailures, 1)
}

// IncBatchCompleted increments the completed batch counter.
func (m *InMemoryRecorder) IncBatchCompleted() {
	atomic.AddUint64(&m.batchesCompleted, 1)
}

// IncBatchFailed increments the failed batch counter.
func (m *InMemoryRecorder) IncBatchFailed() {
	atomic.AddUint64(&m.batchesFailed, 1)
}

// ObserveBatchSize records the number of images in a batch.
func (m *InMemoryRecorder) ObserveBatchSize(size int) {
	atomic.AddUint64(&m.batchSizeCount, 1)
	atomic.AddInt64(&m.batchSizeTotal, int64(size))
}

// ObserveBatchDuration records batch processing duration.
func (m *InMemoryRecorder) ObserveBatchDuration(duration time.Duration) {
	atomic.AddUint64(&m.batchDurationCount, 1)
	atomic.AddInt64(&m.batchDurationTotalNs, duration.Nanoseconds())
}

// ObserveOcrDuration records a single OCR call's duration.
func (m *InMemoryRecorder) ObserveOcrDuration(duration time.Duration) {
	atomic.AddUint64(&m.ocrDurationCount, 1)
	atomic.AddInt64(&m.ocrDurationTotalNs, duration.Nanoseconds())
}
