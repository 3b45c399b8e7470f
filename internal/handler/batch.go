package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/imgvet/imgvet/internal/auth"
	"github.com/imgvet/imgvet/internal/handler/dto"
	"github.com/imgvet/imgvet/internal/service"
)

// BatchHandler handles HTTP requests for image batch ingestion.
type BatchHandler struct {
	svc            *service.IngestService
	logger         *slog.Logger
	maxUploadBytes int64
}

// NewBatchHandler creates a new BatchHandler.
func NewBatchHandler(svc *service.IngestService, logger *slog.Logger, maxUploadBytes int64) *BatchHandler {
	return &BatchHandler{
		svc:            svc,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

// Create handles POST /api/v1/batches.
//
// Expects multipart/form-data with a "username" field and one or more
// "images" file fields; files are processed in upload order.
func (h *BatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_MULTIPART", "Invalid or oversized multipart request body")
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	input := service.IngestInput{
		Username: r.FormValue("username"),
	}

	for _, header := range r.MultipartForm.File["images"] {
		file, err := header.Open()
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "INVALID_FILE", "Could not open uploaded file")
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "INVALID_FILE", "Could not read uploaded file")
			return
		}
		input.Images = append(input.Images, service.ImageUpload{
			Filename: header.Filename,
			Data:     data,
		})
	}

	result, err := h.svc.Ingest(r.Context(), input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("batch_processed",
		"key_id", auth.KeyIDFromContext(r.Context()),
		"user_id", result.User.ID,
		"username", result.User.Username,
		"batch_size", len(result.Images),
		"new_count", result.NewCount,
		"duplicate_count", result.DuplicateCount,
		"total_count", result.TotalCount,
	)

	writeJSON(w, http.StatusOK, dto.ToBatchResponse(result))
}

// handleServiceError maps service errors to HTTP responses.
func (h *BatchHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyUsername):
		h.writeError(w, http.StatusBadRequest, "MISSING_USERNAME", "Username is required")
	case errors.Is(err, service.ErrNoImages):
		h.writeError(w, http.StatusBadRequest, "NO_IMAGES", "At least one image file is required")
	case errors.Is(err, service.ErrBatchTooLarge):
		h.writeError(w, http.StatusRequestEntityTooLarge, "BATCH_TOO_LARGE", "Batch exceeds the image limit")
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes an error response.
func (h *BatchHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
