package handler

import (
	"fmt"
	"net/http"

	"github.com/imgvet/imgvet/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "imgvet_images_accepted_total %d\n", snap.ImagesAccepted)
	writeMetric(w, "imgvet_images_duplicate_total %d\n", snap.ImagesDuplicate)
	writeMetric(w, "imgvet_images_no_signal_total %d\n", snap.ImagesNoSignal)
	writeMetric(w, "imgvet_ocr_failures_total %d\n", snap.OcrFailures)

	writeMetric(w, "imgvet_batches_total{status=\"completed\"} %d\n", snap.BatchesCompleted)
	writeMetric(w, "imgvet_batches_total{status=\"failed\"} %d\n", snap.BatchesFailed)
	writeMetric(w, "imgvet_batch_size_count %d\n", snap.BatchSizeCount)
	writeMetric(w, "imgvet_batch_size_sum %d\n", snap.BatchSizeTotal)
	writeMetric(w, "imgvet_batch_duration_seconds_count %d\n", snap.BatchDurationCount)
	writeMetric(w, "imgvet_batch_duration_seconds_sum %.6f\n", float64(snap.BatchDurationTotalNs)/1e9)

	writeMetric(w, "imgvet_ocr_duration_seconds_count %d\n", snap.OcrDurationCount)
	writeMetric(w, "imgvet_ocr_duration_seconds_sum %.6f\n", float64(snap.OcrDurationTotalNs)/1e9)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
