// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/imgvet/imgvet/internal/service"
)

// BatchSummary aggregates one processed batch.
type BatchSummary struct {
	NewCount       int   `json:"new_count"`
	DuplicateCount int   `json:"duplicate_count"`
	TotalCount     int64 `json:"total_count"`
}

// ImageOutcomeResponse is the per-image result in a batch response.
// Error is only set for the ocr_failure outcome.
type ImageOutcomeResponse struct {
	Filename string `json:"filename"`
	Outcome  string `json:"outcome"`
	Error    string `json:"error,omitempty"`
}

// BatchResponse represents one processed batch in API responses.
type BatchResponse struct {
	Username string                 `json:"username"`
	Summary  BatchSummary           `json:"summary"`
	Images   []ImageOutcomeResponse `json:"images"`
}

// ImageRecordResponse represents one accepted image record.
type ImageRecordResponse struct {
	ID             string    `json:"id"`
	RecognizedText string    `json:"recognized_text"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserImagesResponse lists a user's accepted image records.
type UserImagesResponse struct {
	Username string                `json:"username"`
	Total    int64                 `json:"total"`
	Images   []ImageRecordResponse `json:"images"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToBatchResponse converts a service BatchResult to a BatchResponse DTO.
func ToBatchResponse(result *service.BatchResult) *BatchResponse {
	images := make([]ImageOutcomeResponse, len(result.Images))
	for i, img := range result.Images {
		images[i] = ImageOutcomeResponse{
			Filename: img.Filename,
			Outcome:  string(img.Outcome),
			Error:    img.Err,
		}
	}
	return &BatchResponse{
		Username: result.User.Username,
		Summary: BatchSummary{
			NewCount:       result.NewCount,
			DuplicateCount: result.DuplicateCount,
			TotalCount:     result.TotalCount,
		},
		Images: images,
	}
}

// ToUserImagesResponse converts a service UserImages view to its DTO.
func ToUserImagesResponse(view *service.UserImages) *UserImagesResponse {
	images := make([]ImageRecordResponse, len(view.Records))
	for i, record := range view.Records {
		images[i] = ImageRecordResponse{
			ID:             record.ID,
			RecognizedText: record.RecognizedText,
			CreatedAt:      record.CreatedAt,
		}
	}
	return &UserImagesResponse{
		Username: view.User.Username,
		Total:    view.Total,
		Images:   images,
	}
}
